package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/page-signals/internal/common"
	"github.com/dtnitsch/page-signals/models"
	"github.com/dtnitsch/page-signals/pkg/caching"
	"github.com/dtnitsch/page-signals/pkg/db"
	"github.com/dtnitsch/page-signals/pkg/detector"
	"github.com/dtnitsch/page-signals/pkg/fetcher"
	"github.com/dtnitsch/page-signals/pkg/pipeline"
	"github.com/dtnitsch/page-signals/pkg/snapshot"
	"github.com/dtnitsch/page-signals/pkg/vector"
)

func configFromFlags(c *cli.Context) (*models.ExtractConfig, error) {
	config := &models.ExtractConfig{
		Targets:     append(c.Args().Slice(), common.SplitTargets(c.String("urls"))...),
		Source:      strings.ToLower(c.String("source")),
		WorkerCount: c.Int("workers"),
		Timeout:     c.Duration("timeout"),
		Settle:      c.Duration("settle"),
		CacheDir:    c.String("cache-dir"),
		CacheTTL:    c.Duration("cache-ttl"),
		Format:      strings.ToLower(c.String("format")),
		WithSignals: c.Bool("signals"),
		WithMeta:    !c.Bool("no-meta"),
		Store:       c.Bool("store"),
		DBPath:      c.String("db"),
		VocabPath:   c.String("vocab"),
	}

	if c.IsSet("input") {
		f, err := os.Open(c.String("input"))
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		targets, err := common.ReadTargets(f)
		if err != nil {
			return nil, err
		}
		config.Targets = append(config.Targets, targets...)
	}

	return config, nil
}

func newProvider(logger *slog.Logger, config *models.ExtractConfig) (snapshot.Provider, error) {
	switch snapshot.Source(config.Source) {
	case snapshot.SourceFile:
		return snapshot.FileProvider{}, nil
	case snapshot.SourceHTTP:
		p := &snapshot.HTTPProvider{Fetcher: fetcher.NewFetcher(config.Timeout), Logger: logger}
		if config.CacheDir != "" && config.CacheTTL > 0 {
			cache, err := caching.NewCache(config.CacheDir, config.CacheTTL)
			if err != nil {
				return nil, err
			}
			p.Cache = cache
		}
		return p, nil
	case snapshot.SourceBrowser:
		return &snapshot.BrowserProvider{Timeout: config.Timeout, Settle: config.Settle, Logger: logger}, nil
	}
	return nil, fmt.Errorf("unknown source %q (want file, http or browser)", config.Source)
}

func ExtractAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	startTime := time.Now()

	config, err := configFromFlags(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if len(config.Targets) == 0 {
		return cli.Exit(`no targets provided

Usage:
  page-signals extract --source file login.html
  page-signals extract --source http --urls "https://example.com/login,https://example.org/signup"
  page-signals extract --source browser --input targets.txt --store`, 1)
	}
	if err := config.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("invalid options: %v", err), 1)
	}

	if config.Source != string(snapshot.SourceFile) {
		valid, invalid := common.SanitizeAndValidateURLs(config.Targets)
		if len(invalid) > 0 {
			return cli.Exit(fmt.Sprintf("invalid URLs: %s", strings.Join(invalid, ", ")), 1)
		}
		config.Targets = valid
	}

	provider, err := newProvider(logger, config)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	lib, err := common.LoadVocabulary(config.VocabPath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	x, err := pipeline.NewExtractor(logger, lib)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	var d *detector.Detector
	if config.WithMeta {
		d = detector.New()
	}
	r, err := newRunner(logger, provider, x, d, config.WithSignals)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	results := r.run(ctx, config.Targets, config.WorkerCount)

	output := summarize(results, time.Since(startTime))
	if config.Store {
		runID, err := store(logger, config, output.Results)
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		output.RunID = runID
	}

	if err := writeOutput(c.App.Writer, config.Format, output); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write output: %v", err), 2)
	}

	if output.Stats.Failed == output.Stats.Total {
		return cli.Exit("all targets failed", 2)
	}
	if output.Stats.Failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d targets failed", output.Stats.Failed, output.Stats.Total), 1)
	}
	return nil
}

func summarize(results []Result, elapsed time.Duration) *models.RunOutput {
	output := &models.RunOutput{Results: make([]models.PageResult, 0, len(results))}
	for _, r := range results {
		output.Results = append(output.Results, r.Page)
		if r.Err != nil {
			output.Stats.Failed++
			continue
		}
		output.Stats.Successful++
		if r.Page.DuplicateOf != "" {
			output.Stats.Duplicates++
		}
	}
	output.Stats.Total = len(results)
	output.Stats.TotalTimeSeconds = elapsed.Seconds()
	output.Status = "success"
	if output.Stats.Failed > 0 {
		output.Status = "partial_failure"
	}
	return output
}

// store writes the run and its vectors to the database and fills in the
// stored vector ids.
func store(logger *slog.Logger, config *models.ExtractConfig, results []models.PageResult) (int64, error) {
	database, err := db.Open(config.DBPath)
	if err != nil {
		return 0, err
	}
	defer database.Close()

	runID, err := database.CreateRun(config.Source, len(results), config.VocabPath)
	if err != nil {
		return 0, err
	}

	success, failed := 0, 0
	for i := range results {
		page := &results[i]
		if page.Status != "success" {
			failed++
			if err := database.RecordFailure(runID, page.Target, page.Error); err != nil {
				logger.Warn("Failed to record failure", "target", page.Target, "error", err)
			}
			continue
		}
		success++

		rec := db.VectorRecord{
			RunID:       runID,
			URL:         page.Target,
			PageURL:     page.URL,
			CapturedAt:  page.CapturedAt,
			Source:      page.Source,
			Geometry:    page.Geometry,
			ContentHash: page.ContentHash,
			Bits:        page.Bits,
		}
		if page.Meta != nil {
			rec.Language = page.Meta.Language
			rec.LanguageConfidence = page.Meta.LanguageConfidence
			rec.Title = page.Meta.Title
			rec.SiteName = page.Meta.SiteName
		}
		id, err := database.InsertVector(rec)
		if err != nil {
			return runID, err
		}
		page.VectorID = id

		if page.Meta != nil {
			if urlID, err := database.GetURLID(page.Target); err == nil {
				if err := database.SetURLClassification(urlID, page.Meta.DomainType, page.Meta.Country); err != nil {
					logger.Warn("Failed to classify URL", "target", page.Target, "error", err)
				}
			}
		}
	}

	if err := database.UpdateRunStats(runID, success, failed); err != nil {
		return runID, err
	}
	logger.Info("Stored run", "run_id", runID, "db", database.Path(), "vectors", success, "failures", failed)
	return runID, nil
}

func writeOutput(w io.Writer, format string, output *models.RunOutput) error {
	switch format {
	case models.FormatBits:
		for _, page := range output.Results {
			if page.Status != "success" {
				if _, err := fmt.Fprintf(w, "failed\t%s\n", page.Target); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\n", page.Bits, page.Target); err != nil {
				return err
			}
		}
		return nil
	case models.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(output); err != nil {
			return err
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

// SchemaAction prints the vector's field names, one per line with its index.
func SchemaAction(c *cli.Context) error {
	names := vector.Describe()
	if strings.ToLower(c.String("format")) == models.FormatJSON {
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return cli.Exit(err.Error(), 2)
		}
		fmt.Fprintln(c.App.Writer, string(data))
		return nil
	}
	for i, name := range names {
		fmt.Fprintf(c.App.Writer, "%2d\t%s\n", i, name)
	}
	return nil
}

package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/page-signals/pkg/db"
	"github.com/dtnitsch/page-signals/pkg/vector"
)

// HistoryAction lists stored runs, or the vectors of one run with --vectors.
func HistoryAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open database: %v", err), 2)
	}
	defer database.Close()

	if c.Bool("vectors") || c.IsSet("domain") {
		return listVectors(c, database)
	}

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	w := c.App.Writer
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-20s %-8s %-6s %-8s %-8s %s\n",
		"ID", "Created", "Source", "URLs", "Success", "Failed", "Vocab")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range runs {
		vocab := r.Vocab
		if vocab == "" {
			vocab = "(embedded)"
		}
		fmt.Fprintf(w, "%-6d %-20s %-8s %-6d %-8d %-8d %s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Source,
			r.URLCount,
			r.SuccessCount,
			r.FailedCount,
			vocab,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
	fmt.Fprintf(w, "\nTip: Use 'page-signals history --vectors <run id>' to list a run's vectors\n")
	return nil
}

func listVectors(c *cli.Context, database *dbpkg.DB) error {
	filter := dbpkg.VectorFilter{Domain: c.String("domain"), Limit: c.Int("limit")}
	if c.NArg() > 0 {
		runID, err := GetRunIDOrLatest(c, database)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		filter.RunID = runID
	}

	vectors, err := database.ListVectors(filter)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	w := c.App.Writer
	if len(vectors) == 0 {
		fmt.Fprintln(w, "No vectors found")
		return nil
	}

	fmt.Fprintf(w, "%-6s %-6s %-20s %-8s %-4s %-5s %s\n",
		"ID", "Run", "Captured", "Source", "Set", "Lang", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 100))
	for _, v := range vectors {
		run := "-"
		if v.RunID != 0 {
			run = strconv.FormatInt(v.RunID, 10)
		}
		fmt.Fprintf(w, "%-6d %-6s %-20s %-8s %-4d %-5s %s\n",
			v.VectorID,
			run,
			v.CapturedAt.Format("2006-01-02 15:04:05"),
			v.Source,
			v.Positives,
			v.Language,
			v.URL,
		)
	}
	fmt.Fprintf(w, "\nTotal: %d vectors\n", len(vectors))
	return nil
}

// ShowAction prints one stored vector with the names of the entries that are set.
func ShowAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: page-signals show <vector id>", 1)
	}
	vectorID, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid vector ID: %s", c.Args().First()), 1)
	}

	database, err := openDB(c)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open database: %v", err), 2)
	}
	defer database.Close()

	v, err := database.GetVectorByID(vectorID)
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}
	vec, err := vector.ParseBits(v.Bits)
	if err != nil {
		return cli.Exit(fmt.Sprintf("stored vector %d is corrupt: %v", vectorID, err), 2)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "Vector %d\n", v.VectorID)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "URL:         %s\n", v.URL)
	if v.PageURL != v.URL {
		fmt.Fprintf(w, "Page URL:    %s\n", v.PageURL)
	}
	fmt.Fprintf(w, "Captured:    %s (%s", v.CapturedAt.Format("2006-01-02 15:04:05"), v.Source)
	if v.Geometry {
		fmt.Fprint(w, ", rendered geometry")
	}
	fmt.Fprintln(w, ")")
	if v.Title != "" {
		fmt.Fprintf(w, "Title:       %s\n", v.Title)
	}
	if v.SiteName != "" {
		fmt.Fprintf(w, "Site:        %s\n", v.SiteName)
	}
	if v.Language != "" {
		fmt.Fprintf(w, "Language:    %s (%.2f)\n", v.Language, v.LanguageConfidence)
	}
	fmt.Fprintf(w, "Hash:        %s\n", v.ContentHash)
	fmt.Fprintf(w, "Bits:        %s\n", v.Bits)

	names := vector.Describe()
	fmt.Fprintf(w, "\nSet entries (%d):\n", v.Positives)
	fmt.Fprintln(w, strings.Repeat("-", 60))
	for i, b := range vec {
		if b == 1 && i < len(names) {
			fmt.Fprintf(w, "%2d  %s\n", i, names[i])
		}
	}
	return nil
}

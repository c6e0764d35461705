package extract

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dtnitsch/page-signals/internal/common"
	"github.com/dtnitsch/page-signals/models"
	"github.com/dtnitsch/page-signals/pkg/detector"
	"github.com/dtnitsch/page-signals/pkg/pipeline"
	"github.com/dtnitsch/page-signals/pkg/snapshot"
	"github.com/dtnitsch/page-signals/pkg/vector"
)

// seenCacheSize bounds how many distinct snapshots a run remembers for dedup.
const seenCacheSize = 1024

// runner carries what every worker shares. All fields are safe for
// concurrent use.
type runner struct {
	logger      *slog.Logger
	provider    snapshot.Provider
	extractor   *pipeline.Extractor
	detector    *detector.Detector // nil skips page metadata
	withSignals bool
	seen        *lru.Cache[string, seenSnapshot]
}

func newRunner(logger *slog.Logger, provider snapshot.Provider, x *pipeline.Extractor, d *detector.Detector, withSignals bool) (*runner, error) {
	seen, err := lru.New[string, seenSnapshot](seenCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot cache: %w", err)
	}
	return &runner{
		logger:      logger,
		provider:    provider,
		extractor:   x,
		detector:    d,
		withSignals: withSignals,
		seen:        seen,
	}, nil
}

// run extracts every target with workerCount workers and returns the results
// in input order.
func (r *runner) run(ctx context.Context, targets []string, workerCount int) []Result {
	if workerCount < 1 {
		workerCount = 1
	}
	r.logger.Info("Starting concurrent extract phase", "target_count", len(targets), "workers", workerCount)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(targets))
	results := make(chan Result, len(targets))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go r.worker(ctx, w, &wg, jobs, results)
	}

	for i, target := range targets {
		jobs <- Job{Index: i, Target: target}
	}
	close(jobs)

	wg.Wait()
	close(results)
	r.logger.Info("All extract workers finished")

	all := make([]Result, 0, len(targets))
	for result := range results {
		all = append(all, result)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })
	return all
}

func (r *runner) worker(ctx context.Context, id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		r.logger.Info("Worker started job", "worker_id", id, "target", job.Target)
		page, err := r.process(ctx, id, job.Target)
		if err != nil {
			r.logger.Error("Error extracting page", "worker_id", id, "target", job.Target, "error", err)
			page.Status = "failed"
			page.Error = err.Error()
		}
		results <- Result{Index: job.Index, Page: page, Err: err}
	}
}

func (r *runner) process(ctx context.Context, id int, target string) (models.PageResult, error) {
	page := models.PageResult{Target: target, Status: "success"}
	if err := ctx.Err(); err != nil {
		return page, err
	}

	start := time.Now()
	snap, err := r.provider.Capture(ctx, target)
	if err != nil {
		return page, fmt.Errorf("failed to capture snapshot: %w", err)
	}
	page.URL = snap.URL
	page.Source = string(snap.Source)
	page.CapturedAt = snap.CapturedAt
	page.Geometry = snap.Geometry
	page.ContentHash = common.ContentHash(snap.HTML)

	sig, duplicateOf, err := r.signals(snap, page.ContentHash, target)
	if err != nil {
		return page, err
	}
	page.DuplicateOf = duplicateOf

	vec, err := vector.Assemble(sig, r.extractor.Library())
	if err != nil {
		return page, fmt.Errorf("failed to assemble vector: %w", err)
	}
	page.Vector = vec
	page.Bits = vec.Bits()
	if r.withSignals {
		page.Signals = sig
	}

	if r.detector != nil {
		meta, err := r.detector.Analyze(snap.URL, snap.HTML)
		if err != nil {
			r.logger.Warn("Failed to detect page metadata", "worker_id", id, "target", target, "error", err)
		} else {
			page.Meta = meta
		}
	}

	r.logger.Info("Worker finished processing", "worker_id", id, "target", target,
		"bits", page.Bits, "duplicate", duplicateOf != "", "duration_ms", time.Since(start).Milliseconds())
	return page, nil
}

// signals returns the records for a snapshot. HTML already extracted in this
// run is not walked again; its records are reused under the new page URL and
// the earlier target is returned.
func (r *runner) signals(snap *snapshot.Snapshot, hash, target string) (*vector.PageSignals, string, error) {
	if prev, ok := r.seen.Get(hash); ok {
		return rebased(prev.signals, snap.URL), prev.target, nil
	}

	doc, err := snap.Document()
	if err != nil {
		return nil, "", err
	}
	sig, err := r.extractor.Signals(doc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to extract signals: %w", err)
	}

	if prev, found, _ := r.seen.PeekOrAdd(hash, seenSnapshot{target: target, signals: sig}); found {
		return rebased(prev.signals, snap.URL), prev.target, nil
	}
	return sig, "", nil
}

func rebased(sig *vector.PageSignals, pageURL string) *vector.PageSignals {
	cp := *sig
	cp.URL = pageURL
	return &cp
}

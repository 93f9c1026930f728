// Package app wires the analyzer, the fingerprint cache and the
// file-loading worker pool into the single object cmd/cur drives.
// Adapted from the donor's App/StorageApp split: here the storage
// lifecycle (cache open/close) is folded directly into App since there is
// only one storage backend in play, rather than kept as a second
// indirection layer.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"curgo/config"
	"curgo/internal/analyzer"
	"curgo/internal/canon"
	"curgo/internal/cache/leveldb"
	"curgo/internal/domain/models"
	"curgo/internal/frequency"
	"curgo/internal/lib/logger/sl"
	"curgo/internal/metric"
	"curgo/internal/metrics"
	"curgo/internal/sevheap"
	"curgo/internal/suffixtrie"
	"curgo/internal/workers"
)

// App is the analyzer run wired up from a Config: canonicalizer, severity
// metric, optional fingerprint cache, and the file-loading worker pool.
type App struct {
	log      *slog.Logger
	cfg      *config.Config
	analyzer *analyzer.Analyzer
	metric   suffixtrie.CutoffMetric
	cache    *leveldb.Cache
}

// New builds an App from cfg. It panics if cfg names an unknown
// canonicalizer or an invalid metric expression — both are
// argument-validation failures that must surface before any file I/O
// happens, matching the donor's panic-on-unrecoverable-setup convention
// in app.New.
func New(log *slog.Logger, cfg *config.Config) *App {
	canonFn, ok := canon.ByName(cfg.Canon)
	if !ok {
		panic(fmt.Sprintf("app: unknown canonicalizer %q", cfg.Canon))
	}

	cutoff, err := metric.Compile(cfg.Metric)
	if err != nil {
		panic(fmt.Sprintf("app: %v", err))
	}

	a := &App{
		log:      log,
		cfg:      cfg,
		analyzer: analyzer.New(canonFn),
		metric:   cutoff,
	}

	if !cfg.NoCache {
		cache, err := leveldb.Open(log, cfg.CachePath)
		if err != nil {
			log.Error("failed to open fingerprint cache, continuing without it", "error", sl.Err(err))
		} else {
			a.cache = cache
		}
	}

	return a
}

// Close releases the fingerprint cache, if one is open.
func (a *App) Close() error {
	if a.cache == nil {
		return nil
	}
	return a.cache.Close()
}

// loadResult is what each file-loading worker job produces.
type loadResult struct {
	path       string
	lines      []string
	lineNumber []int
}

// LoadAll reads and canonicalizes every file in a.cfg.Files, using the
// fingerprint cache when available and a worker pool for the cache-miss
// I/O, then feeds each file's symbol stream into the trie sequentially
// and in original argument order — preserving deterministic string_id
// assignment regardless of which worker finished first.
func (a *App) LoadAll(ctx context.Context, onProgress suffixtrie.ProgressFunc) error {
	files := a.cfg.Files
	if len(files) == 0 {
		return fmt.Errorf("app: no input files given")
	}

	rate := &frequency.Frequency{Interval: 2 * time.Second, LastTime: time.Now()}
	lastReported := 0
	progress := func(nodesProcessed int) {
		rate.Add(nodesProcessed - lastReported)
		lastReported = nodesProcessed
		rate.Check(a.log)
		if onProgress != nil {
			onProgress(nodesProcessed)
		}
	}

	jobMetrics := &metrics.Metrics{}
	poolSize := workers.NumCPUBounded(len(files))
	if a.cfg.Workers > 0 {
		poolSize = min(a.cfg.Workers, len(files))
	}
	pool := workers.New[loadResult](poolSize)

	go func() {
		for i, path := range files {
			path := path
			idx := i
			pool.AddJob(workers.Job[loadResult]{
				Description: workers.JobDescriptor{ID: workers.JobID(fmt.Sprintf("load-%d", idx))},
				ExecFn: func(ctx context.Context, _ loadResult) (loadResult, error) {
					return a.loadOne(path)
				},
			})
		}
	}()

	start := time.Now()
	results := pool.Run(ctx, len(files))

	byPath := make(map[string]loadResult, len(results))
	for _, r := range results {
		if r.Err != nil {
			jobMetrics.RecordFailure()
			return fmt.Errorf("app: loading file: %w", r.Err)
		}
		jobMetrics.RecordSuccess()
		byPath[r.Value.path] = r.Value
	}
	jobMetrics.AddDuration(time.Since(start))
	jobMetrics.Log(a.log)

	for _, path := range files {
		res := byPath[path]
		lastReported = 0
		if err := a.analyzer.AddLoaded(res.path, res.lines, res.lineNumber, progress); err != nil {
			return fmt.Errorf("app: indexing %s: %w", path, err)
		}
	}

	return nil
}

func (a *App) loadOne(path string) (loadResult, error) {
	info, statErr := os.Stat(path)

	if a.cache != nil && statErr == nil {
		fp := leveldb.Fingerprint(path, info)
		if entry, err := a.cache.Get(fp); err == nil {
			return loadResult{path: path, lines: entry.Lines, lineNumber: entry.LineNumber}, nil
		}
	}

	lines, lineNumber, err := a.analyzer.LoadFile(path)
	if err != nil {
		return loadResult{}, err
	}

	if a.cache != nil && statErr == nil {
		fp := leveldb.Fingerprint(path, info)
		entry := leveldb.Entry{Lines: lines, LineNumber: lineNumber}
		if err := a.cache.Put(fp, entry); err != nil {
			a.log.Error("failed to write fingerprint cache entry", "path", path, "error", sl.Err(err))
		}
	}

	return loadResult{path: path, lines: lines, lineNumber: lineNumber}, nil
}

// Reports runs the extractor and renders every qualifying repeat, sorted
// by descending severity. If a.cfg.Top is positive, only the top N
// reports are returned, computed via the bounded sevheap without
// materializing a full sort of every repeat.
func (a *App) Reports() []models.Report {
	repeats := a.analyzer.Trie().MaximalRepeats(a.metric)

	if a.cfg.Top > 0 {
		h := sevheap.New[int, models.Report](a.cfg.Top)
		for _, r := range repeats {
			h.Add(a.metric(r.Count(), r.Length), a.analyzer.Render(a.metric, r))
		}
		return h.Sorted()
	}

	reports := make([]models.Report, len(repeats))
	for i, r := range repeats {
		reports[i] = a.analyzer.Render(a.metric, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Severity > reports[j].Severity
	})
	return reports
}

// Stats exposes the trie's structural statistics for diagnostics.
func (a *App) Stats() models.TrieStats {
	return a.analyzer.Trie().Stats()
}

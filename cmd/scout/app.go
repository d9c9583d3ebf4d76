// # cmd/scout/app.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"scout/internal/analyze"
	"scout/internal/config"
	"scout/internal/history"
	"scout/internal/report"
	"scout/internal/shared/observability"
	"scout/internal/shared/util"
	"scout/internal/tags"
	"scout/internal/walk"
	"scout/internal/watcher"
)

type App struct {
	Config *config.Config
	walker *walk.Walker
	store  *history.Store

	teaProgram *tea.Program

	mu       sync.Mutex
	lastScan *report.Scan
}

func NewApp(cfg *config.Config) (*App, error) {
	ignore := append([]string{}, cfg.Exclude.Dirs...)
	ignore = append(ignore, cfg.Exclude.Files...)

	walker, err := walk.New(walk.Options{
		MaxDepth:       cfg.Walk.MaxDepth,
		IncludeHidden:  cfg.Walk.IncludeHidden,
		FollowSymlinks: cfg.Walk.FollowSymlinks,
		Ignore:         ignore,
	})
	if err != nil {
		return nil, fmt.Errorf("build walker: %w", err)
	}

	app := &App{Config: cfg, walker: walker}

	if cfg.History.Path != "" {
		store, err := history.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		app.store = store
	}

	return app, nil
}

func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// RunScan walks every configured root, analyzes the files, and assembles the
// full scan result. Per-file failures surface as warnings on the result, not
// as errors.
func (a *App) RunScan(ctx context.Context) (*report.Scan, error) {
	ctx, span := observability.Tracer.Start(ctx, "app.RunScan", trace.WithAttributes(
		attribute.Int("scan.roots", len(a.Config.ScanPaths)),
	))
	defer span.End()

	start := time.Now()
	roots := util.DedupeRoots(a.Config.ScanPaths)

	scan := &report.Scan{GeneratedAt: start}
	if len(roots) > 0 {
		scan.Root = roots[0]
	}

	var records []walk.FileRecord
	for _, root := range roots {
		result, err := a.walker.Walk(root)
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
		records = append(records, result.Files...)
		scan.Errors = append(scan.Errors, result.Errors...)
		scan.Stats.TotalFiles += result.Stats.TotalFiles
		scan.Stats.TotalDirs += result.Stats.TotalDirs
		scan.Stats.TotalSize += result.Stats.TotalSize
	}

	infoByPath, warnings := a.analyzeFiles(ctx, records)
	scan.Errors = append(scan.Errors, warnings...)

	mapper := a.mapper(infoByPath)
	for _, record := range records {
		entry := report.Entry{
			Record: record,
			Tags:   mapper.Tags(record),
		}
		if !record.IsDir {
			entry.Info = infoByPath[record.Path]
		}
		scan.Entries = append(scan.Entries, entry)
	}

	elapsed := time.Since(start)
	scan.Stats.DurationMS = elapsed.Milliseconds()
	if seconds := elapsed.Seconds(); seconds > 0 {
		scan.Stats.FilesPerSecond = float64(scan.Stats.TotalFiles) / seconds
	}

	observability.ScanDuration.Observe(elapsed.Seconds())
	observability.FilesScannedTotal.Add(float64(scan.Stats.TotalFiles))
	observability.WalkErrorsTotal.Add(float64(len(scan.Errors)))
	observability.LastScanFiles.Set(float64(scan.Stats.TotalFiles))

	a.recordSnapshot(scan)

	a.mu.Lock()
	a.lastScan = scan
	a.mu.Unlock()

	slog.Debug("scan complete",
		"files", scan.Stats.TotalFiles,
		"dirs", scan.Stats.TotalDirs,
		"duration_ms", scan.Stats.DurationMS,
		"heap_mb", util.GetHeapAllocMB())

	return scan, nil
}

// analyzeFiles fans the file records out over a fixed worker pool. Analysis
// is per file and independent, so order does not matter.
func (a *App) analyzeFiles(ctx context.Context, records []walk.FileRecord) (map[string]*analyze.EnhancedInfo, []string) {
	if !a.Config.Analysis.Enhanced {
		return nil, nil
	}

	_, span := observability.Tracer.Start(ctx, "app.analyzeFiles")
	defer span.End()

	type result struct {
		path string
		info *analyze.EnhancedInfo
		err  error
	}

	jobs := make(chan walk.FileRecord)
	results := make(chan result)

	workers := a.Config.Analysis.Workers
	if workers <= 0 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				begin := time.Now()
				info, err := analyze.AnalyzeFile(record.Path, record.Size)
				if info != nil {
					observability.AnalysisDuration.
						WithLabelValues(info.Language).
						Observe(time.Since(begin).Seconds())
				}
				results <- result{path: record.Path, info: info, err: err}
			}
		}()
	}

	go func() {
		for _, record := range records {
			if record.IsDir {
				continue
			}
			jobs <- record
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	infoByPath := make(map[string]*analyze.EnhancedInfo)
	var warnings []string
	for r := range results {
		if r.err != nil {
			warnings = append(warnings, r.err.Error())
			continue
		}
		infoByPath[r.path] = r.info
	}
	return infoByPath, warnings
}

func (a *App) mapper(infoByPath map[string]*analyze.EnhancedInfo) tags.Mapper {
	if !a.Config.Analysis.Enhanced {
		return tags.GenericMapper{}
	}
	return tags.EnhancedMapper{
		Info: func(path string) *analyze.EnhancedInfo { return infoByPath[path] },
	}
}

// recordSnapshot persists the scan aggregate when a history store is open.
func (a *App) recordSnapshot(scan *report.Scan) {
	if a.store == nil {
		return
	}

	snapshot := history.Snapshot{
		ProjectKey: a.Config.History.ProjectKey,
		Timestamp:  scan.GeneratedAt.UTC(),
		FileCount:  scan.Stats.TotalFiles,
		DirCount:   scan.Stats.TotalDirs,
		TotalSize:  scan.Stats.TotalSize,
		DurationMS: scan.Stats.DurationMS,
	}

	analyzed := 0
	for _, entry := range scan.Entries {
		info := entry.Info
		if info == nil {
			continue
		}
		analyzed++
		snapshot.AvgComplexity += info.ComplexityScore
		snapshot.AvgImportance += info.ImportanceScore
		if info.ComplexityScore > snapshot.MaxComplexity {
			snapshot.MaxComplexity = info.ComplexityScore
		}
		if info.ComplexityScore > 5 {
			snapshot.HighComplexityCount++
		}
		snapshot.TotalBranches += info.Branching.TotalBranches
		snapshot.NonPureBranches += info.Branching.NonPureBranches
		snapshot.FutureLogicCount += info.Branching.FutureLogicCount
		snapshot.PastLogicCount += info.Branching.PastLogicCount
	}
	if analyzed > 0 {
		snapshot.AvgComplexity /= float64(analyzed)
		snapshot.AvgImportance /= float64(analyzed)
	}
	observability.LastScanHighComplexity.Set(float64(snapshot.HighComplexityCount))

	snapshot.CommitHash, snapshot.CommitTimestamp = history.ResolveGitMetadata(scan.Root)

	scanID, err := a.store.SaveSnapshot(snapshot)
	if err != nil {
		slog.Warn("failed to record scan snapshot", "error", err)
		return
	}
	slog.Debug("scan snapshot recorded", "scan_id", scanID)
}

// WriteOutputs renders the configured format to stdout-ready text and writes
// the optional TSV/JSON side outputs.
func (a *App) WriteOutputs(scan *report.Scan) (string, error) {
	out, err := report.Render(scan, a.Config.Output.Format)
	if err != nil {
		return "", err
	}

	if path := a.Config.Output.TSV; path != "" {
		tsv, err := report.Render(scan, report.FormatTSV)
		if err != nil {
			return "", err
		}
		if err := util.WriteStringWithDirs(path, tsv, 0o644); err != nil {
			return "", fmt.Errorf("write tsv output: %w", err)
		}
	}
	if path := a.Config.Output.JSON; path != "" {
		data, err := report.Render(scan, report.FormatJSON)
		if err != nil {
			return "", err
		}
		if err := util.WriteStringWithDirs(path, data, 0o644); err != nil {
			return "", fmt.Errorf("write json output: %w", err)
		}
	}

	return out, nil
}

// StartWatcher begins watch mode: every debounced change batch triggers a
// rescan, and each fresh result is pushed to the TUI when one is attached.
func (a *App) StartWatcher() error {
	w, err := watcher.New(watcher.Options{
		Debounce:         a.Config.Watch.Debounce,
		RescansPerMinute: a.Config.Watch.RescansPerMinute,
		ExcludeDirs:      a.Config.Exclude.Dirs,
		ExcludeFiles:     a.Config.Exclude.Files,
	}, a.handleChanges)
	if err != nil {
		return err
	}
	// Runs for the lifetime of the process; no Close here.
	return w.Watch(a.Config.ScanPaths)
}

func (a *App) handleChanges(changed []string) {
	observability.WatcherEventsTotal.Inc()
	slog.Info("changes detected, rescanning", "changed", len(changed))

	scan, err := a.RunScan(context.Background())
	if err != nil {
		slog.Error("rescan failed", "error", err)
		return
	}

	if a.teaProgram != nil {
		a.teaProgram.Send(scanMsg{scan: scan})
		return
	}

	out, err := a.WriteOutputs(scan)
	if err != nil {
		slog.Error("failed to render rescan", "error", err)
		return
	}
	fmt.Print(out)
}

func (a *App) RunUI() error {
	m := initialModel()
	p := tea.NewProgram(m, tea.WithAltScreen())
	a.teaProgram = p

	go func() {
		a.mu.Lock()
		scan := a.lastScan
		a.mu.Unlock()
		if scan != nil {
			p.Send(scanMsg{scan: scan})
		}
	}()

	_, err := p.Run()
	return err
}

// topByImportance returns the analyzed entries ranked for the TUI.
func topByImportance(scan *report.Scan, limit int) []report.Entry {
	ranked := make([]report.Entry, 0, len(scan.Entries))
	for _, entry := range scan.Entries {
		if entry.Record.IsDir || entry.Info == nil {
			continue
		}
		ranked = append(ranked, entry)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Info.ImportanceScore > ranked[j].Info.ImportanceScore
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

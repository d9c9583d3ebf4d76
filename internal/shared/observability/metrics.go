package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ScanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scout_scan_seconds",
		Help:    "Time spent on one full scan of the tree.",
		Buckets: prometheus.DefBuckets,
	})

	FilesScannedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout_files_scanned_total",
		Help: "Total number of files seen by the walker.",
	})

	AnalysisDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scout_analysis_seconds",
		Help:    "Time spent analyzing a single file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	WalkErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout_walk_errors_total",
		Help: "Total number of per-entry errors collected during walks.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scout_watcher_events_total",
		Help: "Total number of rescan batches delivered by the watcher.",
	})

	LastScanFiles = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scout_last_scan_files",
		Help: "Number of files in the most recent scan.",
	})

	LastScanHighComplexity = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scout_last_scan_high_complexity_files",
		Help: "Files whose complexity score exceeded 5 in the most recent scan.",
	})
)

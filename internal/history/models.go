// # internal/history/models.go
package history

import "time"

const SchemaVersion = 1

// Snapshot is the aggregate of one whole scan, persisted so score drift can
// be tracked over time.
type Snapshot struct {
	ScanID              string    `json:"scan_id"`
	ProjectKey          string    `json:"project_key"`
	SchemaVersion       int       `json:"schema_version"`
	Timestamp           time.Time `json:"timestamp"`
	CommitHash          string    `json:"commit_hash,omitempty"`
	CommitTimestamp     time.Time `json:"commit_timestamp,omitempty"`
	FileCount           int       `json:"file_count"`
	DirCount            int       `json:"dir_count"`
	TotalSize           int64     `json:"total_size"`
	AvgComplexity       float64   `json:"avg_complexity"`
	MaxComplexity       float64   `json:"max_complexity"`
	AvgImportance       float64   `json:"avg_importance"`
	HighComplexityCount int       `json:"high_complexity_count"`
	TotalBranches       int       `json:"total_branches"`
	NonPureBranches     int       `json:"non_pure_branches"`
	FutureLogicCount    int       `json:"future_logic_count"`
	PastLogicCount      int       `json:"past_logic_count"`
	DurationMS          int64     `json:"duration_ms"`
}

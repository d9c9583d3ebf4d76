// # internal/report/report.go
package report

import (
	"fmt"
	"time"

	"scout/internal/analyze"
	"scout/internal/walk"
)

// Entry is one scanned file or directory with everything derived for it.
// Info is nil for directories and for files the analyzer could not read.
type Entry struct {
	Record walk.FileRecord       `json:"record"`
	Tags   []string              `json:"tags,omitempty"`
	Info   *analyze.EnhancedInfo `json:"info,omitempty"`
}

// Scan is a full scan result, the input to every renderer.
type Scan struct {
	Root        string       `json:"root"`
	GeneratedAt time.Time    `json:"generated_at"`
	Entries     []Entry      `json:"entries"`
	Stats       walk.Stats   `json:"stats"`
	Errors      []string     `json:"errors,omitempty"`
}

const (
	FormatBasic    = "basic"
	FormatCompact  = "compact"
	FormatDetailed = "detailed"
	FormatTree     = "tree"
	FormatTSV      = "tsv"
	FormatJSON     = "json"
)

// Render dispatches on the format name.
func Render(scan *Scan, format string) (string, error) {
	switch format {
	case FormatBasic, "":
		return renderBasic(scan), nil
	case FormatCompact:
		return renderCompact(scan), nil
	case FormatDetailed:
		return renderDetailed(scan), nil
	case FormatTree:
		return renderTree(scan), nil
	case FormatTSV:
		return NewTSVGenerator(scan).Generate()
	case FormatJSON:
		return renderJSON(scan)
	default:
		return "", fmt.Errorf("unknown report format %q", format)
	}
}

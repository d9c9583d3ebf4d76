// # internal/walk/walker.go
package walk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

// FileRecord is one entry found by a walk. Directories are records too; the
// tag mapper and the tree report both want them.
type FileRecord struct {
	Path    string    `json:"path"`
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
	IsDir   bool      `json:"is_dir"`
}

// Stats summarizes one walk.
type Stats struct {
	TotalFiles     int     `json:"total_files"`
	TotalDirs      int     `json:"total_dirs"`
	TotalSize      int64   `json:"total_size"`
	DurationMS     int64   `json:"scan_duration_ms"`
	FilesPerSecond float64 `json:"files_per_second"`
}

// Result carries the records plus every per-entry failure. Errors never abort
// a walk; an unreadable subtree just goes missing from the records.
type Result struct {
	Root    string       `json:"root"`
	Files   []FileRecord `json:"files"`
	Errors  []string     `json:"errors,omitempty"`
	Stats   Stats        `json:"stats"`
	Started time.Time    `json:"started"`
}

// Options control traversal. The zero value walks everything except hidden
// entries and the default ignore set.
type Options struct {
	MaxDepth       int // 0 means unlimited
	IncludeHidden  bool
	FollowSymlinks bool
	Ignore         []string // glob patterns matched against entry names
}

// DefaultIgnores is applied when Options.Ignore is nil.
var DefaultIgnores = []string{".git", "node_modules", "target", ".DS_Store"}

type Walker struct {
	opts   Options
	ignore []glob.Glob
}

func New(opts Options) (*Walker, error) {
	patterns := opts.Ignore
	if patterns == nil {
		patterns = DefaultIgnores
	}

	w := &Walker{opts: opts}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", pattern, err)
		}
		w.ignore = append(w.ignore, g)
	}
	return w, nil
}

// Walk traverses root and returns every surviving record. Only a missing or
// unreadable root is a hard error; everything below it degrades to Errors.
func (w *Walker) Walk(root string) (*Result, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("stat root %s: %w", root, err)
	}

	result := &Result{Root: root, Started: time.Now()}
	start := time.Now()
	w.walkDir(root, 1, result)

	elapsed := time.Since(start)
	result.Stats.DurationMS = elapsed.Milliseconds()
	if seconds := elapsed.Seconds(); seconds > 0 {
		result.Stats.FilesPerSecond = float64(result.Stats.TotalFiles) / seconds
	}
	return result, nil
}

func (w *Walker) walkDir(dir string, depth int, result *Result) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("read %s: %v", dir, err))
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if w.skip(name) {
			continue
		}

		path := filepath.Join(dir, name)

		if entry.Type()&os.ModeSymlink != 0 {
			if !w.opts.FollowSymlinks {
				continue
			}
			resolved, err := os.Stat(path)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("resolve %s: %v", path, err))
				continue
			}
			w.record(path, resolved.IsDir(), resolved.Size(), resolved.ModTime(), depth, result)
			continue
		}

		info, err := entry.Info()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("stat %s: %v", path, err))
			continue
		}
		w.record(path, entry.IsDir(), info.Size(), info.ModTime(), depth, result)
	}
}

func (w *Walker) record(path string, isDir bool, size int64, modTime time.Time, depth int, result *Result) {
	record := FileRecord{
		Path:    path,
		Name:    filepath.Base(path),
		ModTime: modTime,
		IsDir:   isDir,
	}

	if isDir {
		result.Stats.TotalDirs++
		result.Files = append(result.Files, record)
		if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
			w.walkDir(path, depth+1, result)
		}
		return
	}

	record.Size = size
	result.Stats.TotalFiles++
	result.Stats.TotalSize += size
	result.Files = append(result.Files, record)
}

func (w *Walker) skip(name string) bool {
	if !w.opts.IncludeHidden && strings.HasPrefix(name, ".") {
		return true
	}
	for _, g := range w.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

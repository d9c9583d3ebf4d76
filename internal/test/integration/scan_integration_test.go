// # internal/test/integration/scan_integration_test.go
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scout/internal/analyze"
	"scout/internal/config"
	"scout/internal/history"
	"scout/internal/report"
	"scout/internal/tags"
	"scout/internal/walk"
)

func createTestFiles(t *testing.T, tmpDir string) {
	mainRs := `//! Fixture application with a mix of branch kinds.
use std::fs;

pub fn main() {
    let items = load();
    for item in items {
        if item.value > 42 {
            process(item);
        }
    }
    if fs::read("state.json").is_ok() {
        restore();
    }
    if release_date > "2025-06-01" {
        enable_new_flow();
    }
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "main.rs"), []byte(mainRs), 0644))

	utilPy := `# Helper routines shared by the fixture scripts.
def pick(xs):
    for x in xs:
        if x and x > 0.75:
            return x
    return None
`
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "scripts"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "scripts", "util.py"), []byte(utilPy), 0644))

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# fixture project\n"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "node_modules"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "node_modules", "x.js"), []byte("var x = 1\n"), 0644))
}

func TestFullScanPipeline(t *testing.T) {
	tmpDir := t.TempDir()
	createTestFiles(t, tmpDir)

	cfg := config.Default()
	cfg.ScanPaths = []string{tmpDir}
	cfg.History.Path = filepath.Join(tmpDir, "history.db")

	walker, err := walk.New(walk.Options{Ignore: cfg.Exclude.Dirs})
	require.NoError(t, err)

	result, err := walker.Walk(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Stats.TotalFiles, "node_modules must be ignored")
	assert.Equal(t, 1, result.Stats.TotalDirs)
	assert.Empty(t, result.Errors)

	infoByPath := make(map[string]*analyze.EnhancedInfo)
	for _, record := range result.Files {
		if record.IsDir {
			continue
		}
		info, err := analyze.AnalyzeFile(record.Path, record.Size)
		require.NoError(t, err)
		infoByPath[record.Path] = info
	}

	mainPath := filepath.Join(tmpDir, "main.rs")
	mainInfo := infoByPath[mainPath]
	require.NotNil(t, mainInfo)

	assert.Equal(t, "rust", mainInfo.Language)
	assert.Equal(t, 1, mainInfo.Branching.LoopCount)
	assert.Equal(t, 3, mainInfo.Branching.ConditionalCount)
	assert.Equal(t, 4, mainInfo.Branching.TotalBranches)
	assert.Equal(t, mainInfo.Branching.TotalBranches,
		mainInfo.Branching.PureBranches+mainInfo.Branching.NonPureBranches)
	assert.Equal(t, 1, mainInfo.Branching.NonPureBranches, "fs read branch is non-pure")
	assert.GreaterOrEqual(t, mainInfo.Branching.HardcodedValues, 1)
	assert.Equal(t, 1, mainInfo.Branching.FutureLogicCount)
	assert.Equal(t, 1, mainInfo.Branching.HardcodedDates)
	assert.Equal(t, 3, mainInfo.Branching.MaxNesting)

	assert.Greater(t, mainInfo.ComplexityScore, 0.0)
	assert.LessOrEqual(t, mainInfo.ComplexityScore, 10.0)
	assert.Greater(t, mainInfo.ImportanceScore, 0.0)
	assert.LessOrEqual(t, mainInfo.ImportanceScore, 10.0)

	mapper := tags.EnhancedMapper{Info: func(path string) *analyze.EnhancedInfo { return infoByPath[path] }}
	scan := &report.Scan{Root: tmpDir, GeneratedAt: time.Now(), Stats: result.Stats, Errors: result.Errors}
	for _, record := range result.Files {
		entry := report.Entry{Record: record, Tags: mapper.Tags(record)}
		if !record.IsDir {
			entry.Info = infoByPath[record.Path]
		}
		scan.Entries = append(scan.Entries, entry)
	}

	detailed, err := report.Render(scan, report.FormatDetailed)
	require.NoError(t, err)
	assert.Contains(t, detailed, "main.rs")
	assert.Contains(t, detailed, "branching: 4 total")
	assert.Contains(t, detailed, "purity: 3 pure / 1 non-pure")

	tsv, err := report.Render(scan, report.FormatTSV)
	require.NoError(t, err)
	rows := strings.Split(strings.TrimRight(tsv, "\n"), "\n")
	assert.Len(t, rows, 4, "header plus three analyzed files")

	store, err := history.Open(cfg.History.Path)
	require.NoError(t, err)
	defer store.Close()

	id, err := store.SaveSnapshot(history.Snapshot{
		ProjectKey:    "integration",
		FileCount:     result.Stats.TotalFiles,
		DirCount:      result.Stats.TotalDirs,
		TotalSize:     result.Stats.TotalSize,
		AvgComplexity: mainInfo.ComplexityScore,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	snapshots, err := store.LoadSnapshots("integration", time.Time{})
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, 3, snapshots[0].FileCount)
}

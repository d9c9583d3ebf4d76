// # cmd/scout/app_test.go
package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"scout/internal/config"
	"scout/internal/report"
)

func writeTestTree(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	rust := strings.Join([]string{
		"//! Small fixture crate for scan tests.",
		"pub fn check(x: i32) -> bool {",
		"    if x > 42 {",
		"        return true;",
		"    }",
		"    false",
		"}",
	}, "\n")
	os.WriteFile(filepath.Join(tmpDir, "lib.rs"), []byte(rust), 0644)
	os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# fixture\n"), 0644)
	os.MkdirAll(filepath.Join(tmpDir, "sub"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "sub", "util.py"), []byte("x = 1\n"), 0644)

	return tmpDir
}

func testConfig(tmpDir string) *config.Config {
	cfg := config.Default()
	cfg.ScanPaths = []string{tmpDir}
	cfg.Analysis.Workers = 2
	return cfg
}

func TestAppRunScan(t *testing.T) {
	tmpDir := writeTestTree(t)

	app, err := NewApp(testConfig(tmpDir))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	scan, err := app.RunScan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if scan.Stats.TotalFiles != 3 {
		t.Errorf("Expected 3 files, got %d", scan.Stats.TotalFiles)
	}
	if scan.Stats.TotalDirs != 1 {
		t.Errorf("Expected 1 dir, got %d", scan.Stats.TotalDirs)
	}

	var rust *report.Entry
	for i := range scan.Entries {
		if scan.Entries[i].Record.Name == "lib.rs" {
			rust = &scan.Entries[i]
		}
	}
	if rust == nil {
		t.Fatal("lib.rs missing from scan entries")
	}
	if rust.Info == nil {
		t.Fatal("lib.rs has no analysis info")
	}
	if rust.Info.Branching.ConditionalCount != 1 {
		t.Errorf("Expected 1 conditional, got %d", rust.Info.Branching.ConditionalCount)
	}
	if rust.Info.Branching.HardcodedValues == 0 {
		t.Error("Expected the 42 threshold to be flagged")
	}

	found := false
	for _, tag := range rust.Tags {
		if tag == "rust" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected rust tag, got %v", rust.Tags)
	}
}

func TestAppWriteOutputs(t *testing.T) {
	tmpDir := writeTestTree(t)

	cfg := testConfig(tmpDir)
	cfg.Output.TSV = filepath.Join(tmpDir, "out", "scores.tsv")
	cfg.Output.JSON = filepath.Join(tmpDir, "out", "scan.json")

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	scan, err := app.RunScan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	out, err := app.WriteOutputs(scan)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "lib.rs") {
		t.Errorf("report output missing lib.rs:\n%s", out)
	}

	if _, err := os.Stat(cfg.Output.TSV); os.IsNotExist(err) {
		t.Error("TSV file was not generated")
	}
	if _, err := os.Stat(cfg.Output.JSON); os.IsNotExist(err) {
		t.Error("JSON file was not generated")
	}
}

func TestAppRecordsHistory(t *testing.T) {
	tmpDir := writeTestTree(t)

	cfg := testConfig(tmpDir)
	cfg.History.Path = filepath.Join(tmpDir, "scout.db")
	cfg.History.ProjectKey = "fixture"

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	if _, err := app.RunScan(context.Background()); err != nil {
		t.Fatal(err)
	}

	snapshots, err := app.store.LoadSnapshots("fixture", time.Time{})
	if err != nil {
		t.Fatal(err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snapshots))
	}
	if snapshots[0].FileCount != 3 {
		t.Errorf("expected 3 files in snapshot, got %d", snapshots[0].FileCount)
	}
	if snapshots[0].ScanID == "" {
		t.Error("expected a scan ID on the snapshot")
	}
}

func TestAppBasicAnalysisSkipsInfo(t *testing.T) {
	tmpDir := writeTestTree(t)

	cfg := testConfig(tmpDir)
	cfg.Analysis.Enhanced = false

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	scan, err := app.RunScan(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range scan.Entries {
		if entry.Info != nil {
			t.Errorf("expected no analysis info for %s", entry.Record.Path)
		}
	}
}

func TestTopByImportance(t *testing.T) {
	tmpDir := writeTestTree(t)

	app, err := NewApp(testConfig(tmpDir))
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()

	scan, err := app.RunScan(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	top := topByImportance(scan, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 ranked entries, got %d", len(top))
	}
	if top[0].Info.ImportanceScore < top[1].Info.ImportanceScore {
		t.Error("entries not sorted by importance")
	}
}

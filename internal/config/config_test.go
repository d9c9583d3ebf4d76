// # internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scout.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	content := `
scan_paths = ["./src", "./docs"]

[walk]
max_depth = 4
include_hidden = true

[exclude]
dirs = [".git", "vendor"]
files = ["*.log"]

[analysis]
enhanced = false
workers = 8

[output]
format = "detailed"
tsv = "scores.tsv"
json = "scan.json"

[watch]
debounce = "1s"
rescans_per_minute = 10

[history]
path = "scout.db"
project_key = "myproject"

[observability]
listen_addr = ":9300"
otlp_endpoint = "localhost:4317"
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.ScanPaths) != 2 || cfg.ScanPaths[0] != "./src" {
		t.Errorf("Unexpected ScanPaths: %v", cfg.ScanPaths)
	}
	if cfg.Walk.MaxDepth != 4 || !cfg.Walk.IncludeHidden {
		t.Errorf("Unexpected walk options: %+v", cfg.Walk)
	}
	if len(cfg.Exclude.Dirs) != 2 || cfg.Exclude.Dirs[1] != "vendor" {
		t.Errorf("Unexpected exclude dirs: %v", cfg.Exclude.Dirs)
	}
	if cfg.Analysis.Enhanced {
		t.Error("Expected enhanced analysis disabled")
	}
	if cfg.Analysis.Workers != 8 {
		t.Errorf("Expected 8 workers, got %d", cfg.Analysis.Workers)
	}
	if cfg.Output.Format != "detailed" || cfg.Output.TSV != "scores.tsv" {
		t.Errorf("Unexpected output: %+v", cfg.Output)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("Expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
	if cfg.Watch.RescansPerMinute != 10 {
		t.Errorf("Expected 10 rescans/min, got %d", cfg.Watch.RescansPerMinute)
	}
	if cfg.History.Path != "scout.db" || cfg.History.ProjectKey != "myproject" {
		t.Errorf("Unexpected history: %+v", cfg.History)
	}
	if cfg.Observability.ListenAddr != ":9300" {
		t.Errorf("Unexpected observability: %+v", cfg.Observability)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `scan_paths = ["./src"]`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("Expected default debounce 500ms, got %v", cfg.Watch.Debounce)
	}
	if !cfg.Analysis.Enhanced {
		t.Error("Expected enhanced analysis on by default")
	}
	if cfg.Analysis.Workers != 4 {
		t.Errorf("Expected default workers 4, got %d", cfg.Analysis.Workers)
	}
	if cfg.Output.Format != "basic" {
		t.Errorf("Expected default format basic, got %q", cfg.Output.Format)
	}
}

func TestLoadError(t *testing.T) {
	if _, err := Load("nonexistent.toml"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDiscoverFallsBack(t *testing.T) {
	cfg, err := Discover(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(cfg.ScanPaths) != 1 || cfg.ScanPaths[0] != "." {
		t.Errorf("expected default scan paths, got %v", cfg.ScanPaths)
	}
}

func TestDiscoverLoadsExisting(t *testing.T) {
	path := writeConfig(t, `scan_paths = ["./x"]`)
	cfg, err := Discover(path)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if cfg.ScanPaths[0] != "./x" {
		t.Errorf("expected loaded config, got %v", cfg.ScanPaths)
	}
}

// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ScanPaths     []string      `toml:"scan_paths"`
	Walk          Walk          `toml:"walk"`
	Exclude       Exclude       `toml:"exclude"`
	Analysis      Analysis      `toml:"analysis"`
	Output        Output        `toml:"output"`
	Watch         WatchOpts     `toml:"watch"`
	History       History       `toml:"history"`
	Observability Observability `toml:"observability"`
}

type Walk struct {
	MaxDepth       int  `toml:"max_depth"`
	IncludeHidden  bool `toml:"include_hidden"`
	FollowSymlinks bool `toml:"follow_symlinks"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Analysis struct {
	Enhanced bool `toml:"enhanced"`
	Workers  int  `toml:"workers"`
}

type Output struct {
	Format string `toml:"format"`
	TSV    string `toml:"tsv"`
	JSON   string `toml:"json"`
}

type WatchOpts struct {
	Debounce         time.Duration `toml:"debounce"`
	RescansPerMinute int           `toml:"rescans_per_minute"`
}

type History struct {
	Path       string `toml:"path"`
	ProjectKey string `toml:"project_key"`
}

type Observability struct {
	ListenAddr   string `toml:"listen_addr"`
	OTLPEndpoint string `toml:"otlp_endpoint"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	return &Config{
		ScanPaths: []string{"."},
		Exclude: Exclude{
			Dirs: []string{".git", "node_modules", "target", ".DS_Store"},
		},
		Analysis: Analysis{Enhanced: true, Workers: 4},
		Output:   Output{Format: "basic"},
		Watch: WatchOpts{
			Debounce:         500 * time.Millisecond,
			RescansPerMinute: 30,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, err
	}

	// The zero value of a bool cannot be told apart from "absent", so the
	// enhanced toggle defaults on only when the file stays silent.
	if !md.IsDefined("analysis", "enhanced") {
		cfg.Analysis.Enhanced = true
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RescansPerMinute == 0 {
		cfg.Watch.RescansPerMinute = 30
	}
	if len(cfg.ScanPaths) == 0 {
		cfg.ScanPaths = []string{"."}
	}
	if cfg.Analysis.Workers <= 0 {
		cfg.Analysis.Workers = 4
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "basic"
	}

	return cfg, nil
}

// Discover loads the first config file that exists, falling back to the
// built-in defaults when none do.
func Discover(candidates ...string) (*Config, error) {
	if len(candidates) == 0 {
		candidates = []string{"scout.toml", "scout.example.toml"}
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

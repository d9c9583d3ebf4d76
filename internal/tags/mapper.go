// # internal/tags/mapper.go
package tags

import (
	"path/filepath"
	"sort"
	"strings"

	"scout/internal/analyze"
	"scout/internal/walk"
)

// Mapper turns a walk record into classification tags.
type Mapper interface {
	Tags(record walk.FileRecord) []string
}

// GenericMapper classifies by extension and path substrings alone; it needs
// no file content.
type GenericMapper struct{}

func (GenericMapper) Tags(record walk.FileRecord) []string {
	if record.IsDir {
		return []string{"directory"}
	}

	var out []string
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(record.Name), "."))
	lower := strings.ToLower(record.Path)

	switch ext {
	case "md", "rst", "txt":
		out = append(out, "documentation")
	case "json", "yaml", "yml", "toml", "ini":
		out = append(out, "configuration")
	case "sh", "bash", "ps1", "bat":
		out = append(out, "script")
	case "rs", "go", "py", "js", "jsx", "ts", "tsx", "java", "c", "h", "cpp", "hpp":
		out = append(out, "source")
	}

	if strings.Contains(lower, "test") {
		out = append(out, "test")
	}
	if strings.Contains(lower, "example") || strings.Contains(lower, "demo") {
		out = append(out, "example")
	}

	if len(out) == 0 {
		out = append(out, "unclassified")
	}
	return out
}

// EnhancedMapper layers analyzer-derived tags (language, purpose, score
// bands) on top of the generic ones. Records without enhanced info fall back
// to the generic set.
type EnhancedMapper struct {
	Generic GenericMapper
	Info    func(path string) *analyze.EnhancedInfo
}

func (m EnhancedMapper) Tags(record walk.FileRecord) []string {
	out := m.Generic.Tags(record)
	if record.IsDir || m.Info == nil {
		return out
	}
	info := m.Info(record.Path)
	if info == nil {
		return out
	}

	if info.Language != "" {
		out = append(out, info.Language)
	}

	switch info.Purpose {
	case "Application entry point":
		out = append(out, "entrypoint")
	case "Core library functionality":
		out = append(out, "core-api")
	case "Command-line interface":
		out = append(out, "cli")
	}

	if info.ImportanceScore > 5 {
		out = append(out, "high-importance")
	} else if info.ImportanceScore > 2 {
		out = append(out, "moderate-importance")
	}
	if info.ComplexityScore > 5 {
		out = append(out, "high-complexity")
	}

	return dedupe(out)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, tag := range in {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

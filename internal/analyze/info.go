// # internal/analyze/info.go
package analyze

import (
	"fmt"
	"os"
	"strings"
)

// EnhancedInfo is everything the analyzer derives from a file's content. It
// hangs off a walk record; files we cannot read simply carry none.
type EnhancedInfo struct {
	Language        string           `json:"language,omitempty"`
	LineCount       int              `json:"line_count"`
	Exports         []string         `json:"exports,omitempty"`
	Imports         []string         `json:"imports,omitempty"`
	APISurface      []string         `json:"api_surface,omitempty"`
	ContentSummary  string           `json:"content_summary,omitempty"`
	Purpose         string           `json:"purpose,omitempty"`
	ComplexityScore float64          `json:"complexity_score"`
	ImportanceScore float64          `json:"importance_score"`
	Branching       BranchingProfile `json:"branching"`
}

// AnalyzeFile reads path and derives its enhanced info. A read failure is
// returned to the caller, which records it as a scan warning and leaves the
// record without enhanced info.
func AnalyzeFile(path string, size int64) (*EnhancedInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return AnalyzeContent(path, string(data), size), nil
}

// AnalyzeContent is the pure half of AnalyzeFile, split out so tests and the
// watcher can feed content directly.
func AnalyzeContent(path, content string, size int64) *EnhancedInfo {
	language := DetectLanguage(path)
	info := &EnhancedInfo{
		Language:  language,
		LineCount: strings.Count(content, "\n") + 1,
	}

	extractDeclarations(info, language, content)

	info.Branching = AnalyzeBranches(content, DialectFor(language))
	info.ComplexityScore = ComplexityScore(content, language, info.Branching)
	info.ImportanceScore = ImportanceScore(path, size, info.ComplexityScore, len(info.APISurface))
	info.ContentSummary = summarize(content, language, info.LineCount)
	info.Purpose = inferPurpose(path, content, language)
	return info
}

func extractDeclarations(info *EnhancedInfo, language, content string) {
	switch language {
	case "rust":
		for _, line := range strings.Split(content, "\n") {
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "pub fn "):
				name := identAfter(trimmed, "pub fn ")
				info.Exports = append(info.Exports, name)
				info.APISurface = append(info.APISurface, name)
			case strings.HasPrefix(trimmed, "pub struct "):
				info.Exports = append(info.Exports, identAfter(trimmed, "pub struct "))
			case strings.HasPrefix(trimmed, "pub enum "):
				info.Exports = append(info.Exports, identAfter(trimmed, "pub enum "))
			case strings.HasPrefix(trimmed, "pub trait "):
				info.Exports = append(info.Exports, identAfter(trimmed, "pub trait "))
			case strings.HasPrefix(trimmed, "use "):
				info.Imports = append(info.Imports,
					strings.TrimSuffix(strings.TrimPrefix(trimmed, "use "), ";"))
			}
		}
	case "javascript", "typescript":
		for _, line := range strings.Split(content, "\n") {
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "export function "):
				name := identAfter(trimmed, "export function ")
				info.Exports = append(info.Exports, name)
				info.APISurface = append(info.APISurface, name)
			case strings.HasPrefix(trimmed, "export class "):
				info.Exports = append(info.Exports, identAfter(trimmed, "export class "))
			case strings.HasPrefix(trimmed, "export const "):
				info.Exports = append(info.Exports, identAfter(trimmed, "export const "))
			case strings.HasPrefix(trimmed, "export default "):
				info.Exports = append(info.Exports, identAfter(trimmed, "export default "))
			case strings.HasPrefix(trimmed, "import "):
				info.Imports = append(info.Imports, trimmed)
			}
		}
	case "go":
		for _, line := range strings.Split(content, "\n") {
			trimmed := strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(trimmed, "func "):
				name := identAfter(trimmed, "func ")
				// Skip methods; the receiver paren is not an identifier.
				if name != "" && name[0] >= 'A' && name[0] <= 'Z' {
					info.Exports = append(info.Exports, name)
					info.APISurface = append(info.APISurface, name)
				}
			case strings.HasPrefix(trimmed, "type "):
				name := identAfter(trimmed, "type ")
				if name != "" && name[0] >= 'A' && name[0] <= 'Z' {
					info.Exports = append(info.Exports, name)
				}
			case strings.HasPrefix(trimmed, "import "):
				info.Imports = append(info.Imports,
					strings.Trim(strings.TrimPrefix(trimmed, "import "), `"`))
			}
		}
	}
}

// identAfter returns the identifier that follows prefix, cut at the first
// non-identifier rune.
func identAfter(line, prefix string) string {
	rest := strings.TrimPrefix(line, prefix)
	for i := 0; i < len(rest); i++ {
		if !identByte(rest[i]) {
			return rest[:i]
		}
	}
	return rest
}

func identByte(ch byte) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9')
}

// summarize picks the first meaningful comment out of the file head, or falls
// back to a language phrase.
func summarize(content, language string, lineCount int) string {
	lines := strings.Split(content, "\n")
	limit := 10
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		trimmed := strings.TrimSpace(line)
		for _, marker := range []string{"///", "//!", "//", "/*", "#", "*"} {
			if strings.HasPrefix(trimmed, marker) {
				text := strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
				if len(text) > 10 {
					if len(text) > 100 {
						text = text[:100]
					}
					return text
				}
			}
		}
	}
	switch language {
	case "rust":
		return "Rust source code"
	case "python":
		return "Python script"
	case "javascript", "typescript":
		return "JavaScript code"
	case "markdown":
		return "Documentation file"
	case "json":
		return "JSON configuration"
	default:
		return fmt.Sprintf("%d lines of code", lineCount)
	}
}

// inferPurpose classifies a file by its path first, then by entry-point
// markers in the content, then by language.
func inferPurpose(path, content, language string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.Contains(lower, "test"):
		return "Test code"
	case strings.Contains(lower, "example"), strings.Contains(lower, "demo"):
		return "Example/demo code"
	case strings.Contains(lower, "lib"), strings.Contains(lower, "core"):
		return "Core library functionality"
	case strings.Contains(lower, "cli"), strings.Contains(lower, "bin"):
		return "Command-line interface"
	case strings.Contains(lower, "config"):
		return "Configuration"
	}
	if strings.Contains(content, "main(") || strings.Contains(content, "fn main") {
		return "Application entry point"
	}
	switch language {
	case "markdown":
		return "Documentation"
	case "json", "yaml", "toml":
		return "Configuration file"
	case "shell":
		return "Shell script"
	default:
		return "Source code"
	}
}

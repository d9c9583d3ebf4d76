// # internal/analyze/language.go
package analyze

import (
	"path/filepath"
	"strings"
)

// Language selects the recognizer set used by the branch classifier. It is a
// closed enumeration: unknown or non-code languages fall back to LangGeneric,
// which only knows the common keyword tokens.
type Language int

const (
	LangGeneric Language = iota
	LangRust
	LangJS
	LangPython
	LangJava
	LangGo
	LangC
)

func (l Language) String() string {
	switch l {
	case LangRust:
		return "rust"
	case LangJS:
		return "javascript"
	case LangPython:
		return "python"
	case LangJava:
		return "java"
	case LangGo:
		return "go"
	case LangC:
		return "c"
	default:
		return "generic"
	}
}

// DetectLanguage maps a file name to a display language name. It covers more
// than the branch classifier does (markdown, json, ...) because tags, summary
// and purpose inference also rely on it.
func DetectLanguage(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	switch ext {
	case "rs":
		return "rust"
	case "py":
		return "python"
	case "js", "jsx":
		return "javascript"
	case "ts", "tsx":
		return "typescript"
	case "go":
		return "go"
	case "java":
		return "java"
	case "c", "h", "hpp":
		return "c"
	case "cpp", "cxx", "cc":
		return "cpp"
	case "md":
		return "markdown"
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	case "sh", "bash":
		return "shell"
	default:
		return ""
	}
}

// DialectFor maps a detected language name onto the closed recognizer
// enumeration. Anything the classifier has no dedicated recognizer set for
// is treated as generic; that is not an error.
func DialectFor(language string) Language {
	switch language {
	case "rust":
		return LangRust
	case "javascript", "typescript":
		return LangJS
	case "python":
		return LangPython
	case "java":
		return LangJava
	case "go":
		return LangGo
	case "c", "cpp":
		return LangC
	default:
		return LangGeneric
	}
}

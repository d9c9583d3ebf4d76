// # internal/analyze/classify.go
package analyze

import (
	"strconv"
	"strings"
)

// The four per-branch judgments. All of them inspect the trimmed raw line,
// not the sanitized one: quote counting and date-shaped literals need the
// string contents the sanitizer strips.

// comparisonMarkers gate several judgments: a literal only counts as a
// decision threshold when the line actually compares something.
func hasComparison(line string) bool {
	return strings.Contains(line, " if ") ||
		strings.Contains(line, "==") ||
		strings.Contains(line, "!=") ||
		strings.Contains(line, ">") ||
		strings.Contains(line, "<")
}

// HasHardcodedDate reports whether a branch line appears to test against a
// literal calendar date or timestamp.
func HasHardcodedDate(line string) bool {
	// Date-shaped literal near the current era: 2024-06-01, 01/06/2024.
	if strings.Count(line, "-") >= 2 || strings.Count(line, "/") >= 2 {
		for year := 2019; year <= 2027; year++ {
			if strings.Contains(line, strconv.Itoa(year)) {
				return true
			}
		}
	}
	// Bare year in a comparison context.
	if hasComparison(line) {
		for year := 1990; year <= 2030; year++ {
			if strings.Contains(line, strconv.Itoa(year)) {
				return true
			}
		}
	}
	// Unix timestamp: a long all-digit token starting with 1.
	for _, token := range strings.Fields(line) {
		if len(token) >= 10 && token[0] == '1' && allDigits(token) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// commonValues are numbers too ordinary to flag: loop seeds, powers of two,
// sentinel -1.
var commonValues = map[string]bool{
	"0": true, "1": true, "2": true, "4": true, "8": true,
	"16": true, "32": true, "64": true, "128": true, "256": true,
	"512": true, "1024": true, "-1": true,
}

// CountHardcodedValues counts magic numbers and compared string literals on a
// branch line. Lines without a comparison contribute nothing.
func CountHardcodedValues(line string) int {
	if !hasComparison(line) {
		return 0
	}
	count := 0
	for _, word := range strings.Fields(line) {
		token := strings.TrimFunc(word, func(r rune) bool {
			return !(r >= '0' && r <= '9') && r != '-' && r != '.'
		})
		if token == "" || len(token) < 2 || commonValues[token] {
			continue
		}
		if !numericShape(token) {
			continue
		}
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			continue
		}
		// Year-sized integers are the date judgment's business.
		if value == float64(int64(value)) && value >= 1900 && value <= 2100 {
			continue
		}
		count++
	}
	// String literals compared with == or != are magic values too.
	if strings.Contains(line, `"`) && (strings.Contains(line, "==") || strings.Contains(line, "!=")) {
		count += strings.Count(line, `"`) / 2
	}
	return count
}

func numericShape(token string) bool {
	for i := 0; i < len(token); i++ {
		ch := token[i]
		if (ch < '0' || ch > '9') && ch != '-' && ch != '.' {
			return false
		}
	}
	return true
}

// nonPureMarkers are substrings whose presence on a branch line means the
// condition reads ambient state (filesystem, clock, environment, network,
// randomness) rather than only its inputs.
var nonPureMarkers = []string{
	"fs::", "File::", "Path::", "SystemTime::", "Instant::",
	"environment_var", "GLOBAL_",
	"rand::", ".gen_bool",
	".read(", ".write(",
	"http_client", "socket",
	"os.Getenv(", "time.Now(",
}

// IsPureBranch reports whether a branch condition depends only on values in
// scope. The default is pure; any side-effect marker flips it.
func IsPureBranch(line string) bool {
	for _, marker := range nonPureMarkers {
		if strings.Contains(line, marker) {
			return false
		}
	}
	return true
}

// HasFutureLogic flags branches gated on dates or versions that have not
// arrived yet: feature flags, rollout gates, "after release X" checks.
func HasFutureLogic(line string) bool {
	if !strings.Contains(line, "if") {
		return false
	}
	for _, year := range []string{"2025", "2026", "2027"} {
		if strings.Contains(line, year) {
			return true
		}
	}
	if strings.Contains(line, ">=") &&
		(strings.Contains(line, `"2.`) || strings.Contains(line, `"3.`)) {
		return true
	}
	if strings.Contains(line, "api_level >=") || strings.Contains(line, "api_version >=") {
		return true
	}
	if strings.Contains(line, "feature_flags") || strings.Contains(line, "beta_features") {
		return true
	}
	return false
}

// HasPastLogic flags branches keyed to dates or versions already behind us:
// legacy compatibility paths and deprecation shims.
func HasPastLogic(line string) bool {
	if !strings.Contains(line, "if") {
		return false
	}
	for _, year := range []string{"2020", "2021", "2022"} {
		if strings.Contains(line, year) {
			return true
		}
	}
	if strings.Contains(line, "<") &&
		(strings.Contains(line, `"1.`) || strings.Contains(line, `"0.`)) {
		return true
	}
	if strings.Contains(line, "api_level <") || strings.Contains(line, "api_version <") {
		return true
	}
	if strings.Contains(line, "deprecated") || strings.Contains(line, "end_of_life") ||
		strings.Contains(line, "support_end") {
		return true
	}
	return false
}

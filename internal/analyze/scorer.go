// # internal/analyze/scorer.go
package analyze

import (
	"math"
	"strings"
)

// ComplexityScore maps a file onto [0,10]: a size base term, the branching
// profile (capped so one pathological file cannot blow past the declaration
// bonuses), and a per-language declaration density bonus.
func ComplexityScore(content, language string, profile BranchingProfile) float64 {
	lines := strings.Count(content, "\n") + 1
	score := float64(lines)/100.0 + float64(len(content))/10000.0

	nestingPenalty := math.Pow(float64(profile.MaxNesting), 1.5) * 0.2
	branching := profile.CyclomaticComplexity*0.4 +
		profile.CognitiveComplexity*0.4 +
		nestingPenalty*0.2
	if branching > 8.0 {
		branching = 8.0
	}
	score += branching

	switch language {
	case "rust", "cpp", "c":
		score += float64(strings.Count(content, "impl ")) * 0.5
		score += float64(strings.Count(content, "trait ")) * 0.3
		score += float64(strings.Count(content, "struct ")) * 0.2
	case "javascript", "typescript":
		score += float64(strings.Count(content, "class ")) * 0.4
		score += float64(strings.Count(content, "function ")) * 0.3
		score += float64(strings.Count(content, "async ")) * 0.2
	case "go":
		score += float64(strings.Count(content, "func ")) * 0.3
		score += float64(strings.Count(content, "type ")) * 0.2
	}

	return clampScore(score)
}

// ImportanceScore ranks a file for retrieval: everything starts at 1, grows
// with size (bounded), complexity, exported surface, and path hints that mark
// entry points and core libraries.
func ImportanceScore(path string, size int64, complexity float64, apiSurface int) float64 {
	score := 1.0

	sizeBoost := float64(size) / 10000.0
	if sizeBoost > 2.0 {
		sizeBoost = 2.0
	}
	score += sizeBoost

	score += complexity * 0.3
	score += float64(apiSurface) * 0.1

	lower := strings.ToLower(path)
	if strings.Contains(lower, "main") || strings.Contains(lower, "lib") {
		score += 1.0
	}
	if strings.Contains(lower, "core") {
		score += 0.5
	}

	return clampScore(score)
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

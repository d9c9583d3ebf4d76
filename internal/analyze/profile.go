// # internal/analyze/profile.go
package analyze

import "strings"

// BranchingProfile is the per-file result of the branch scan: raw construct
// counts, the nesting shape, both complexity estimates and the four judgment
// tallies. PureBranches+NonPureBranches always equals TotalBranches.
type BranchingProfile struct {
	ConditionalCount     int         `json:"conditional_count"`
	LoopCount            int         `json:"loop_count"`
	SwitchCount          int         `json:"switch_count"`
	MaxNesting           int         `json:"max_nesting"`
	NestingDistribution  map[int]int `json:"nesting_distribution,omitempty"`
	LogicalOperators     int         `json:"logical_operators"`
	CyclomaticComplexity float64     `json:"cyclomatic_complexity"`
	CognitiveComplexity  float64     `json:"cognitive_complexity"`
	HardcodedDates       int         `json:"hardcoded_dates"`
	HardcodedValues      int         `json:"hardcoded_values"`
	PureBranches         int         `json:"pure_branches"`
	NonPureBranches      int         `json:"non_pure_branches"`
	FutureLogicCount     int         `json:"future_logic_count"`
	PastLogicCount       int         `json:"past_logic_count"`
	TotalBranches        int         `json:"total_branches"`
}

// AnalyzeBranches folds the whole file in one forward pass. Each line is
// trimmed, comment-skipped, sanitized, run through the nesting tracker, then
// through the language's recognizer set; branch lines additionally get the
// four raw-line judgments. Cyclomatic complexity starts at 1 for the single
// straight-line path.
func AnalyzeBranches(content string, lang Language) BranchingProfile {
	profile := BranchingProfile{
		CyclomaticComplexity: 1.0,
		NestingDistribution:  make(map[int]int),
	}

	depth := 0
	for _, raw := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(raw)
		if isSkippableLine(trimmed) {
			continue
		}
		cleaned := SanitizeLine(trimmed)

		// Nesting bookkeeping happens before recognition so a branch that
		// opens a block is attributed to the depth it creates. One step per
		// line in each direction, no matter how many braces it holds.
		opensBlock := strings.Contains(cleaned, "{")
		depthOpened := depth
		if opensBlock {
			depthOpened = depth + 1
			depth++
			if depth > profile.MaxNesting {
				profile.MaxNesting = depth
			}
		}
		if strings.Contains(cleaned, "}") && depth > 0 {
			depth--
		}

		match := recognize(lang, cleaned)
		profile.LogicalOperators += match.LogicalOps

		if !match.IsBranch() {
			continue
		}

		profile.TotalBranches++
		profile.ConditionalCount += match.Conditionals
		profile.LoopCount += match.Loops
		profile.SwitchCount += match.Switches
		profile.CyclomaticComplexity += float64(match.decisionPoints())

		weight := 1.0 + 0.5*float64(depth)
		if match.IsConditional() {
			profile.CognitiveComplexity += weight
		}
		if match.IsLoop() {
			profile.CognitiveComplexity += 1.5 * weight
		}
		if match.IsSwitch() {
			profile.CognitiveComplexity += weight
		}

		if opensBlock && match.IsConditional() && !match.IsLoop() {
			profile.NestingDistribution[depthOpened]++
		}

		if HasHardcodedDate(trimmed) {
			profile.HardcodedDates++
		}
		profile.HardcodedValues += CountHardcodedValues(trimmed)
		if IsPureBranch(trimmed) {
			profile.PureBranches++
		} else {
			profile.NonPureBranches++
		}
		if HasFutureLogic(trimmed) {
			profile.FutureLogicCount++
		}
		if HasPastLogic(trimmed) {
			profile.PastLogicCount++
		}
	}

	return profile
}

// # internal/report/tsv.go
package report

import (
	"fmt"
	"strings"
)

type TSVGenerator struct {
	scan *Scan
}

func NewTSVGenerator(scan *Scan) *TSVGenerator {
	return &TSVGenerator{scan: scan}
}

// Generate writes one row per analyzed file. Directories and unreadable files
// are left out; the format is meant for spreadsheet triage of scores.
func (t *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("Path\tLanguage\tLines\tSize\tComplexity\tImportance\tBranches\tMaxNesting\tNonPure\tTags\n")

	for _, entry := range t.scan.Entries {
		if entry.Record.IsDir || entry.Info == nil {
			continue
		}
		info := entry.Info
		buf.WriteString(fmt.Sprintf("%s\t%s\t%d\t%d\t%.2f\t%.2f\t%d\t%d\t%d\t%s\n",
			entry.Record.Path,
			info.Language,
			info.LineCount,
			entry.Record.Size,
			info.ComplexityScore,
			info.ImportanceScore,
			info.Branching.TotalBranches,
			info.Branching.MaxNesting,
			info.Branching.NonPureBranches,
			strings.Join(entry.Tags, ","),
		))
	}

	return buf.String(), nil
}

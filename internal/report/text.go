// # internal/report/text.go
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"scout/internal/analyze"
)

func renderBasic(scan *Scan) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Scan of %s\n\n", scan.Root)

	for _, entry := range scan.Entries {
		if entry.Record.IsDir {
			fmt.Fprintf(&buf, "%s/\n", entry.Record.Path)
			continue
		}
		fmt.Fprintf(&buf, "%s  [%s]  %s\n",
			entry.Record.Path,
			strings.Join(entry.Tags, ", "),
			humanize.Bytes(uint64(entry.Record.Size)))
	}

	writeSummary(&buf, scan)
	return buf.String()
}

func renderCompact(scan *Scan) string {
	var buf strings.Builder
	for _, entry := range scan.Entries {
		if entry.Record.IsDir {
			continue
		}
		fmt.Fprintf(&buf, "%s (%s, %s)\n",
			entry.Record.Path,
			humanize.Bytes(uint64(entry.Record.Size)),
			humanize.Time(entry.Record.ModTime))
	}
	return buf.String()
}

func renderDetailed(scan *Scan) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Scan of %s\n", scan.Root)

	for _, entry := range scan.Entries {
		if entry.Record.IsDir {
			continue
		}
		fmt.Fprintf(&buf, "\n%s\n", entry.Record.Path)
		fmt.Fprintf(&buf, "  size: %s  modified: %s  tags: [%s]\n",
			humanize.Bytes(uint64(entry.Record.Size)),
			humanize.Time(entry.Record.ModTime),
			strings.Join(entry.Tags, ", "))

		info := entry.Info
		if info == nil {
			buf.WriteString("  (no analysis available)\n")
			continue
		}

		if info.Language != "" {
			fmt.Fprintf(&buf, "  language: %s  lines: %d\n", info.Language, info.LineCount)
		}
		if info.Purpose != "" {
			fmt.Fprintf(&buf, "  purpose: %s\n", info.Purpose)
		}
		if info.ContentSummary != "" {
			fmt.Fprintf(&buf, "  summary: %s\n", info.ContentSummary)
		}
		fmt.Fprintf(&buf, "  complexity: %.1f  importance: %.1f\n",
			info.ComplexityScore, info.ImportanceScore)
		if len(info.APISurface) > 0 {
			fmt.Fprintf(&buf, "  api: %s\n", strings.Join(info.APISurface, ", "))
		}
		writeBranching(&buf, info)
	}

	writeSummary(&buf, scan)
	return buf.String()
}

// writeBranching prints the branching breakdown block for one file.
func writeBranching(buf *strings.Builder, info *analyze.EnhancedInfo) {
	b := info.Branching
	if b.TotalBranches == 0 {
		return
	}

	fmt.Fprintf(buf, "  branching: %d total (%d if, %d loop, %d switch), max nesting %d\n",
		b.TotalBranches, b.ConditionalCount, b.LoopCount, b.SwitchCount, b.MaxNesting)
	fmt.Fprintf(buf, "    cyclomatic: %.1f  cognitive: %.1f  logical ops: %d\n",
		b.CyclomaticComplexity, b.CognitiveComplexity, b.LogicalOperators)
	fmt.Fprintf(buf, "    purity: %d pure / %d non-pure\n", b.PureBranches, b.NonPureBranches)

	if len(b.NestingDistribution) > 0 {
		levels := make([]int, 0, len(b.NestingDistribution))
		for level := range b.NestingDistribution {
			levels = append(levels, level)
		}
		sort.Ints(levels)
		parts := make([]string, 0, len(levels))
		for _, level := range levels {
			parts = append(parts, fmt.Sprintf("%d:%d", level, b.NestingDistribution[level]))
		}
		fmt.Fprintf(buf, "    nesting: %s\n", strings.Join(parts, " "))
	}
	if b.HardcodedDates > 0 || b.HardcodedValues > 0 {
		fmt.Fprintf(buf, "    hardcoded: %d dates, %d values\n", b.HardcodedDates, b.HardcodedValues)
	}
	if b.FutureLogicCount > 0 || b.PastLogicCount > 0 {
		fmt.Fprintf(buf, "    temporal: %d future, %d past\n", b.FutureLogicCount, b.PastLogicCount)
	}
}

func writeSummary(buf *strings.Builder, scan *Scan) {
	fmt.Fprintf(buf, "\n%d files, %d dirs, %s in %dms (%.0f files/s)\n",
		scan.Stats.TotalFiles,
		scan.Stats.TotalDirs,
		humanize.Bytes(uint64(scan.Stats.TotalSize)),
		scan.Stats.DurationMS,
		scan.Stats.FilesPerSecond)

	for _, msg := range scan.Errors {
		fmt.Fprintf(buf, "warning: %s\n", msg)
	}
}

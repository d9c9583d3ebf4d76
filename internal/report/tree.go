// # internal/report/tree.go
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

type treeNode struct {
	name     string
	entry    *Entry
	children map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, children: make(map[string]*treeNode)}
}

// renderTree prints the scanned entries as an indented hierarchy rooted at
// the scan root. Intermediate directories that were filtered out of the
// records still appear as bare names so the shape stays connected.
func renderTree(scan *Scan) string {
	root := newTreeNode(scan.Root)

	for i := range scan.Entries {
		entry := &scan.Entries[i]
		rel, err := filepath.Rel(scan.Root, entry.Record.Path)
		if err != nil || rel == "." {
			continue
		}
		node := root
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			child, ok := node.children[part]
			if !ok {
				child = newTreeNode(part)
				node.children[part] = child
			}
			node = child
		}
		node.entry = entry
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s\n", scan.Root)
	writeTreeChildren(&buf, root, "")
	return buf.String()
}

func writeTreeChildren(buf *strings.Builder, node *treeNode, prefix string) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		child := node.children[name]
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(names)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		label := child.name
		if child.entry != nil && !child.entry.Record.IsDir {
			label = fmt.Sprintf("%s (%s)", child.name, humanize.Bytes(uint64(child.entry.Record.Size)))
			if info := child.entry.Info; info != nil {
				label = fmt.Sprintf("%s (%s, c=%.1f i=%.1f)",
					child.name,
					humanize.Bytes(uint64(child.entry.Record.Size)),
					info.ComplexityScore,
					info.ImportanceScore)
			}
		}

		fmt.Fprintf(buf, "%s%s%s\n", prefix, connector, label)
		writeTreeChildren(buf, child, childPrefix)
	}
}

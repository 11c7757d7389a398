// Package diagrams renders dependency data as mermaid diagrams for reports
// and MCP clients.
package diagrams

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/depviz/internal/dataset"
	"github.com/ziadkadry99/depviz/internal/index"
)

// categoryClass holds the mermaid classDef colours per import category.
var categoryClass = map[dataset.Category]string{
	dataset.Stdlib:   "fill:#1f6f43,stroke:#3fb950,color:#fff",
	dataset.Internal: "fill:#4b2f7a,stroke:#a371f7,color:#fff",
	dataset.Private:  "fill:#1c4f8a,stroke:#58a6ff,color:#fff",
	dataset.External: "fill:#7a4310,stroke:#f0883e,color:#fff",
}

// DependencyDiagram generates a mermaid graph of resolved internal imports.
// With a non-empty focus only edges touching that file are drawn. Nodes and
// edges keep the order of edges.
func DependencyDiagram(edges []index.Edge, focus string) string {
	var b strings.Builder
	b.WriteString("graph LR\n")

	declared := make(map[string]bool)
	node := func(file string) string {
		id := sanitizeID(file)
		if !declared[id] {
			declared[id] = true
			b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeMermaid(file)))
		}
		return id
	}

	for _, e := range edges {
		if focus != "" && e.From != focus && e.To != focus {
			continue
		}
		from := node(e.From)
		to := node(e.To)
		b.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
	}

	if focus != "" && declared[sanitizeID(focus)] {
		b.WriteString(fmt.Sprintf("    style %s stroke-width:3px\n", sanitizeID(focus)))
	}
	return b.String()
}

// FileImportsDiagram draws one file and each of its imports, coloured by
// category. Repeated imports are drawn once.
func FileImportsDiagram(f dataset.FileRecord) string {
	var b strings.Builder
	b.WriteString("graph LR\n")

	fromID := sanitizeID(f.File)
	b.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", fromID, escapeMermaid(f.File)))

	seen := make(map[string]bool)
	used := make(map[dataset.Category]bool)
	for _, imp := range f.Imports {
		if seen[imp.Name] {
			continue
		}
		seen[imp.Name] = true
		used[imp.Category] = true
		depID := "imp_" + sanitizeID(imp.Name)
		b.WriteString(fmt.Sprintf("    %s --> %s[\"%s\"]:::%s\n", fromID, depID, escapeMermaid(imp.Name), imp.Category))
	}

	for _, c := range dataset.AllCategories {
		if used[c] {
			b.WriteString(fmt.Sprintf("    classDef %s %s\n", c, categoryClass[c]))
		}
	}
	return b.String()
}

// CategoryPie renders the category breakdown as a mermaid pie chart.
// Empty categories are left out.
func CategoryPie(shares []index.CategoryShare) string {
	var b strings.Builder
	b.WriteString("pie title Imports by category\n")
	for _, s := range shares {
		if s.Count == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("    \"%s\" : %d\n", s.Category, s.Count))
	}
	return b.String()
}

// sanitizeID converts a string into a safe mermaid node ID.
func sanitizeID(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		".", "_",
		"-", "_",
		" ", "_",
		"@", "_",
		"(", "_",
		")", "_",
		"[", "_",
		"]", "_",
		"{", "_",
		"}", "_",
		":", "_",
	)
	return replacer.Replace(s)
}

// escapeMermaid escapes characters that have special meaning in mermaid labels.
func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	s = strings.ReplaceAll(s, "(", "#lpar;")
	s = strings.ReplaceAll(s, ")", "#rpar;")
	s = strings.ReplaceAll(s, "[", "#lsqb;")
	s = strings.ReplaceAll(s, "]", "#rsqb;")
	s = strings.ReplaceAll(s, "{", "#lbrace;")
	s = strings.ReplaceAll(s, "}", "#rbrace;")
	s = strings.ReplaceAll(s, "<", "#lt;")
	s = strings.ReplaceAll(s, ">", "#gt;")
	return s
}

// Package report renders a dataset snapshot as a Markdown dependency report,
// and converts that report to HTML or styled terminal output.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/diagrams"
)

// Options tune the report contents.
type Options struct {
	Title     string
	Hotspots  int  // coupling hotspots listed; 0 uses 5
	Graph     bool // include the internal dependency graph
	FileTable bool // include the per-file table
}

// DefaultOptions returns the options used by the CLI and the static site.
func DefaultOptions() Options {
	return Options{Title: "Dependency report", Hotspots: 5, Graph: true, FileTable: true}
}

// Hotspot is a file that both imports and is imported heavily.
type Hotspot struct {
	File       string `json:"file"`
	Imports    int    `json:"imports"`
	DependedOn int    `json:"depended_on"`
	Score      int    `json:"score"`
}

// Hotspots ranks files by imports plus depended-on count. Files with no
// internal dependents are skipped. Ties keep dataset order.
func Hotspots(snap *dashboard.Snapshot, n int) []Hotspot {
	var out []Hotspot
	for _, f := range snap.Dataset.Files {
		dep := snap.Index.Depended(f.File)
		if dep == 0 {
			continue
		}
		out = append(out, Hotspot{
			File:       f.File,
			Imports:    len(f.Imports),
			DependedOn: dep,
			Score:      len(f.Imports) + dep,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Markdown renders the report for snap.
func Markdown(snap *dashboard.Snapshot, opts Options) string {
	if opts.Title == "" {
		opts.Title = DefaultOptions().Title
	}
	if opts.Hotspots <= 0 {
		opts.Hotspots = 5
	}
	idx := snap.Index
	st := idx.Stats

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", opts.Title)
	if snap.Dataset.Root != "" {
		fmt.Fprintf(&b, "Project root: `%s`\n\n", snap.Dataset.Root)
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Files | %s |\n", humanize.Comma(int64(st.Files)))
	fmt.Fprintf(&b, "| Imports | %s |\n", humanize.Comma(int64(st.Imports)))
	fmt.Fprintf(&b, "| Unique imports | %s |\n", humanize.Comma(int64(st.UniqueImports)))
	fmt.Fprintf(&b, "| Exports | %s |\n", humanize.Comma(int64(st.Exports)))
	fmt.Fprintf(&b, "| Avg imports per file | %s |\n", avg(st.AvgImports))
	fmt.Fprintf(&b, "| Total lines | %s |\n\n", humanize.Comma(int64(st.TotalLines)))

	b.WriteString("## Imports by category\n\n")
	b.WriteString("| Category | Imports | Share |\n|---|---:|---:|\n")
	shares := idx.CategoryShares()
	for _, s := range shares {
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", s.Category, s.Count, s.Percent)
	}
	b.WriteString("\n")
	if st.Imports > 0 {
		b.WriteString("```mermaid\n" + diagrams.CategoryPie(shares) + "```\n\n")
	}

	if len(st.Languages) > 0 {
		b.WriteString("## Languages\n\n")
		b.WriteString("| Language | Lines | Share |\n|---|---:|---:|\n")
		for _, l := range st.Languages {
			fmt.Fprintf(&b, "| %s | %s | %.1f%% |\n", cell(l.Name), humanize.Comma(int64(l.Lines)), l.Percent)
		}
		b.WriteString("\n")
	}

	if len(idx.TopImports) > 0 {
		b.WriteString("## Top imports\n\n")
		for i, t := range idx.TopImports {
			fmt.Fprintf(&b, "%d. `%s` (%s, used by %s)\n", i+1, t.Name, plural(t.Count, "import"), plural(len(idx.FilesImporting(t.Name)), "file"))
		}
		b.WriteString("\n")
	}

	if len(idx.GodFiles) > 0 {
		b.WriteString("## God files\n\n")
		b.WriteString("| File | Imports |\n|---|---:|\n")
		for _, g := range idx.GodFiles {
			fmt.Fprintf(&b, "| %s | %d |\n", cell(g.Name), g.Count)
		}
		b.WriteString("\n")
	}

	if hs := Hotspots(snap, opts.Hotspots); len(hs) > 0 {
		b.WriteString("## Coupling hotspots\n\n")
		b.WriteString("| File | Imports | Depended on | Score |\n|---|---:|---:|---:|\n")
		for _, h := range hs {
			fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", cell(h.File), h.Imports, h.DependedOn, h.Score)
		}
		b.WriteString("\n")
	}

	if opts.Graph && len(idx.Edges) > 0 {
		b.WriteString("## Internal dependency graph\n\n")
		b.WriteString("```mermaid\n" + diagrams.DependencyDiagram(idx.Edges, "") + "```\n\n")
	}

	if opts.FileTable && len(snap.Dataset.Files) > 0 {
		b.WriteString("## Files\n\n")
		b.WriteString("| File | Lines | Imports | Exports | Depended on |\n|---|---:|---:|---:|---:|\n")
		for _, f := range snap.Dataset.Files {
			fmt.Fprintf(&b, "| %s | %d | %d | %d | %d |\n", cell(f.File), f.Lines, len(f.Imports), len(f.Exports), idx.Depended(f.File))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HTML converts report Markdown to an HTML fragment. Mermaid code blocks are
// emitted as <div class="mermaid"> elements for mermaid.js.
func HTML(md string) (string, error) {
	conv := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	var buf bytes.Buffer
	if err := conv.Convert([]byte(mermaidBlocks(md)), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return buf.String(), nil
}

// Terminal renders report Markdown for a terminal of the given width.
func Terminal(md string, width int) (string, error) {
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

// mermaidBlocks replaces ```mermaid fences with raw HTML blocks so the
// highlighter leaves them alone.
func mermaidBlocks(md string) string {
	const openFence = "```mermaid\n"
	const closeFence = "```\n"

	var b strings.Builder
	for {
		start := strings.Index(md, openFence)
		if start == -1 {
			break
		}
		end := strings.Index(md[start+len(openFence):], closeFence)
		if end == -1 {
			break
		}
		end += start + len(openFence)
		b.WriteString(md[:start])
		b.WriteString(`<div class="mermaid">` + "\n")
		b.WriteString(md[start+len(openFence) : end])
		b.WriteString("</div>\n\n")
		md = md[end+len(closeFence):]
	}
	b.WriteString(md)
	return b.String()
}

func avg(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", v)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// cell escapes a value for use inside a Markdown table.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

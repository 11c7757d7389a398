// Package cli renders dataset summaries for the terminal.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/dataset"
	"github.com/ziadkadry99/depviz/internal/report"
)

const barWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#58A6FF")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BD93F9")).
			Bold(true).
			MarginTop(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B949E"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F87171")).
			Bold(true)

	dirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#58A6FF"))

	categoryColors = map[dataset.Category]lipgloss.Color{
		dataset.Stdlib:   lipgloss.Color("#3FB950"),
		dataset.Internal: lipgloss.Color("#A371F7"),
		dataset.Private:  lipgloss.Color("#58A6FF"),
		dataset.External: lipgloss.Color("#F0883E"),
	}
)

// Stats renders the terminal statistics dashboard for snap.
func Stats(snap *dashboard.Snapshot) string {
	idx := snap.Index
	st := idx.Stats
	var b strings.Builder

	b.WriteString(titleStyle.Render("Dependency stats"))
	if snap.Dataset.Root != "" {
		b.WriteString(" " + mutedStyle.Render(snap.Dataset.Root))
	}
	b.WriteString("\n")

	avg := "0"
	if st.Files > 0 {
		avg = fmt.Sprintf("%.1f", st.AvgImports)
	}
	rows := [][2]string{
		{"Files", humanize.Comma(int64(st.Files))},
		{"Imports", fmt.Sprintf("%s (%s unique)", humanize.Comma(int64(st.Imports)), humanize.Comma(int64(st.UniqueImports)))},
		{"Exports", humanize.Comma(int64(st.Exports))},
		{"Avg imports/file", avg},
		{"Total lines", humanize.Comma(int64(st.TotalLines))},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-18s %s\n", r[0], r[1]))
	}

	b.WriteString(sectionStyle.Render("Categories") + "\n")
	for _, c := range idx.CategoryShares() {
		bar := lipgloss.NewStyle().Foreground(categoryColors[c.Category]).Render(Bar(c.Percent, barWidth))
		b.WriteString(fmt.Sprintf("  %-9s %s %5.1f%% %s\n", c.Category, bar, c.Percent, mutedStyle.Render(fmt.Sprintf("(%d)", c.Count))))
	}

	if len(st.Languages) > 0 {
		b.WriteString(sectionStyle.Render("Languages") + "\n")
		for _, l := range st.Languages {
			bar := lipgloss.NewStyle().Foreground(lipgloss.Color(l.Color)).Render(Bar(l.Percent, barWidth))
			b.WriteString(fmt.Sprintf("  %-10s %s %5.1f%%\n", l.Name, bar, l.Percent))
		}
	}

	if len(idx.TopImports) > 0 {
		b.WriteString(sectionStyle.Render("Top imports") + "\n")
		for i, t := range idx.TopImports {
			b.WriteString(fmt.Sprintf("  %d. %s %s\n", i+1, t.Name, mutedStyle.Render(fmt.Sprintf("x%d", t.Count))))
		}
	}

	if len(idx.GodFiles) > 0 {
		b.WriteString(sectionStyle.Render("God files") + "\n")
		for _, g := range idx.GodFiles {
			b.WriteString(fmt.Sprintf("  %s %s\n", warnStyle.Render(g.Name), mutedStyle.Render(fmt.Sprintf("%d imports", g.Count))))
		}
	}

	if hs := report.Hotspots(snap, 5); len(hs) > 0 {
		b.WriteString(sectionStyle.Render("Coupling hotspots") + "\n")
		for _, h := range hs {
			b.WriteString(fmt.Sprintf("  %s %s\n", h.File, mutedStyle.Render(fmt.Sprintf("%d imports, depended on by %d", h.Imports, h.DependedOn))))
		}
	}

	return b.String()
}

// Bar draws a horizontal bar of width cells filled to percent.
func Bar(percent float64, width int) string {
	filled := int(math.Round(percent / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Tree renders a file tree with box-drawing connectors. Directories show
// their recursive file count.
func Tree(root *dashboard.FileTree) string {
	var b strings.Builder
	writeTree(&b, root.Children, "")
	return b.String()
}

func writeTree(b *strings.Builder, nodes []*dashboard.FileTree, prefix string) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		connector, childPrefix := "├── ", "│   "
		if last {
			connector, childPrefix = "└── ", "    "
		}
		if n.IsDir {
			b.WriteString(prefix + connector + dirStyle.Render(n.Name+"/") + " " + mutedStyle.Render(fmt.Sprintf("(%d)", n.Count)) + "\n")
			writeTree(b, n.Children, prefix+childPrefix)
			continue
		}
		b.WriteString(prefix + connector + n.Name + "\n")
	}
}

// Lookup renders a reverse lookup panel.
func Lookup(p *dashboard.ReversePanel) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Title) + " " + mutedStyle.Render(p.CountLabel) + "\n")
	for _, f := range p.Files {
		b.WriteString("  " + f.File + "\n")
	}
	return b.String()
}

package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/dataset"
)

func sampleSnapshot() *dashboard.Snapshot {
	ds := &dataset.Dataset{Root: "/repo", Files: []dataset.FileRecord{
		{File: "src/app.ts", Lines: 120, Imports: []dataset.ImportRecord{
			{Name: "react", Category: dataset.External},
			{Name: "./util", Category: dataset.Internal},
			{Name: "./api", Category: dataset.Internal},
		}},
		{File: "src/api.ts", Lines: 40, Imports: []dataset.ImportRecord{
			{Name: "./util", Category: dataset.Internal},
			{Name: "fs", Category: dataset.Stdlib},
		}},
		{File: "src/util.ts", Lines: 40, Exports: []dataset.ExportRecord{{Name: "clamp", Kind: "function"}}},
	}}
	return dashboard.NewSnapshot(ds, dashboard.Config{})
}

func TestHotspots(t *testing.T) {
	hs := Hotspots(sampleSnapshot(), 0)
	require.Len(t, hs, 2)
	assert.Equal(t, Hotspot{File: "src/api.ts", Imports: 2, DependedOn: 1, Score: 3}, hs[0])
	assert.Equal(t, Hotspot{File: "src/util.ts", Imports: 0, DependedOn: 2, Score: 2}, hs[1])

	assert.Len(t, Hotspots(sampleSnapshot(), 1), 1)
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sampleSnapshot(), DefaultOptions())

	assert.True(t, strings.HasPrefix(md, "# Dependency report\n"))
	assert.Contains(t, md, "Project root: `/repo`")
	assert.Contains(t, md, "| Files | 3 |")
	assert.Contains(t, md, "| Avg imports per file | 1.7 |")
	assert.Contains(t, md, "| internal | 3 | 60.0% |")
	assert.Contains(t, md, "1. `./util` (2 imports, used by 2 files)")
	assert.Contains(t, md, "## Coupling hotspots")
	assert.Contains(t, md, "```mermaid\ngraph LR\n")
	assert.Contains(t, md, "| src/util.ts | 40 | 0 | 1 | 2 |")
	assert.NotContains(t, md, "## God files")
}

func TestMarkdownEmptyDataset(t *testing.T) {
	md := Markdown(dashboard.NewSnapshot(nil, dashboard.Config{}), Options{})

	assert.Contains(t, md, "# Dependency report")
	assert.Contains(t, md, "| Avg imports per file | 0 |")
	assert.NotContains(t, md, "```mermaid")
	assert.NotContains(t, md, "## Files")
	assert.NotContains(t, md, "## Top imports")
}

func TestMarkdownEscapesTableCells(t *testing.T) {
	ds := &dataset.Dataset{Files: []dataset.FileRecord{{File: "odd|name.go"}}}
	md := Markdown(dashboard.NewSnapshot(ds, dashboard.Config{}), DefaultOptions())
	assert.Contains(t, md, `| odd\|name.go |`)
}

func TestHTML(t *testing.T) {
	out, err := HTML(Markdown(sampleSnapshot(), DefaultOptions()))
	require.NoError(t, err)

	assert.Contains(t, out, `<h1 id="dependency-report">Dependency report</h1>`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, `<div class="mermaid">`)
	assert.Contains(t, out, "src_app_ts --> src_util_ts")
}

func TestMermaidBlocks(t *testing.T) {
	in := "intro\n```mermaid\ngraph LR\n    a --> b\n```\noutro\n"
	want := "intro\n<div class=\"mermaid\">\ngraph LR\n    a --> b\n</div>\n\noutro\n"
	assert.Equal(t, want, mermaidBlocks(in))

	unterminated := "```mermaid\ngraph LR\n"
	assert.Equal(t, unterminated, mermaidBlocks(unterminated))
}

func TestTerminal(t *testing.T) {
	out, err := Terminal("# Title\n\nSome *text*.\n", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")
}

package dashboard

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ziadkadry99/depviz/internal/dataset"
	"github.com/ziadkadry99/depviz/internal/index"
	"github.com/ziadkadry99/depviz/internal/viewstate"
)

func exampleSnapshot() *Snapshot {
	return NewSnapshot(&dataset.Dataset{Root: "/project", Files: []dataset.FileRecord{
		{File: "a.ts", Imports: []dataset.ImportRecord{
			{Name: "react", Category: dataset.External, Kind: "default", Snippet: "import React from 'react';", Line: 1},
			{Name: "./b", Category: dataset.Internal},
		}},
		{File: "b.ts", Exports: []dataset.ExportRecord{{Name: "foo", Kind: "function", Line: 3}}},
	}}, Config{Index: index.DefaultOptions()})
}

func cardFiles(p Page) []string {
	out := []string{}
	for _, c := range p.Cards {
		out = append(out, c.File)
	}
	return out
}

func withState(fragment string, snap *Snapshot) View {
	return View{State: viewstate.Read(fragment, snap.Index.Has)}
}

func TestRenderDefault(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, View{State: viewstate.Default()})

	assert.Equal(t, []string{"a.ts", "b.ts"}, cardFiles(p))
	assert.Equal(t, "2 of 2 files", p.ResultCount)
	assert.False(t, p.NoResults)
	assert.Equal(t, "", p.Fragment)
	assert.Equal(t, 2, p.Cards[0].Count)
	assert.Equal(t, 1, p.Cards[1].Count)
	assert.Equal(t, "dark", p.Theme)
	assert.False(t, p.ShowGodFiles)
	assert.Nil(t, p.Reverse)
}

func TestRenderExportsView(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, withState("view=exports", snap))
	require.Equal(t, []string{"b.ts"}, cardFiles(p))
	assert.Equal(t, 1, p.Cards[0].Count)
	assert.False(t, p.Cards[0].ShowImports)
	assert.Equal(t, "view=exports", p.Fragment)
}

func TestRenderSearch(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, withState("q=FOO", snap))
	require.Equal(t, []string{"b.ts"}, cardFiles(p))
	assert.True(t, p.Cards[0].Exports[0].Match)

	p = Render(snap, withState("q=rea", snap))
	require.Equal(t, []string{"a.ts"}, cardFiles(p))
	assert.True(t, p.Cards[0].Imports[0].Match)
	assert.False(t, p.Cards[0].Imports[1].Match)

	p = Render(snap, withState("q=nothing-here", snap))
	assert.Empty(t, p.Cards)
	assert.True(t, p.NoResults)
	assert.Equal(t, "0 of 2 files", p.ResultCount)
}

func TestRenderSearchIgnoresHiddenCategories(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, withState("q=react&cats=internal", snap))
	assert.Empty(t, p.Cards)
}

func TestRenderReverseSelection(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, withState("rev=react", snap))

	require.Equal(t, []string{"a.ts"}, cardFiles(p))
	assert.True(t, p.Cards[0].Highlighted)
	assert.True(t, p.Cards[0].Imports[0].Selected)
	assert.Equal(t, "rev=react", p.Fragment)
	require.NotNil(t, p.Reverse)
	assert.Equal(t, "react", p.Reverse.Title)
	assert.Equal(t, "1 file use this import", p.Reverse.CountLabel)
	assert.Equal(t, "vscode://file/project/a.ts", string(p.Reverse.Files[0].Link))
}

func TestRenderCategoryFilter(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, withState("cats=stdlib", snap))
	assert.Equal(t, []string{"b.ts"}, cardFiles(p))
	assert.Equal(t, "cats=stdlib", p.Fragment)

	p = Render(snap, withState("cats=external,internal", snap))
	assert.Equal(t, 2, p.Cards[0].Count)
	assert.Equal(t, "cats=external%2Cinternal", p.Fragment)
}

func TestRenderCollapsed(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, View{State: viewstate.Default(), Collapsed: map[string]bool{"b.ts": true}})
	assert.False(t, p.Cards[0].Collapsed)
	assert.True(t, p.Cards[1].Collapsed)
}

func TestRenderSortModes(t *testing.T) {
	ds := &dataset.Dataset{Files: []dataset.FileRecord{
		{File: "b.go", Imports: []dataset.ImportRecord{{Name: "fmt", Category: dataset.Stdlib}}},
		{File: "c.go", Imports: []dataset.ImportRecord{{Name: "./a", Category: dataset.Internal}, {Name: "os", Category: dataset.Stdlib}}},
		{File: "a.go", Imports: []dataset.ImportRecord{{Name: "io", Category: dataset.Stdlib}}},
	}}
	snap := NewSnapshot(ds, Config{})

	tests := []struct {
		sort string
		want []string
	}{
		{"name-asc", []string{"a.go", "b.go", "c.go"}},
		{"name-desc", []string{"c.go", "b.go", "a.go"}},
		{"imports-desc", []string{"c.go", "b.go", "a.go"}},
		{"imports-asc", []string{"b.go", "a.go", "c.go"}},
		{"depended-desc", []string{"a.go", "b.go", "c.go"}},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			p := Render(snap, withState("sort="+tt.sort, snap))
			assert.Equal(t, tt.want, cardFiles(p))
		})
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	snap := NewSnapshot(nil, Config{})
	p := Render(snap, View{State: viewstate.Default()})
	assert.Empty(t, p.Cards)
	assert.Equal(t, "0 of 0 files", p.ResultCount)
	assert.Equal(t, "0 avg imports/file", p.Stats.AvgImports)
	assert.Equal(t, "0 total lines", p.Stats.TotalLines)
	for _, seg := range p.CategoryBar {
		assert.Equal(t, "0.0", seg.Width)
	}
}

func TestRenderStats(t *testing.T) {
	ds := &dataset.Dataset{Files: []dataset.FileRecord{
		{File: "a.go", Lines: 1200, Imports: []dataset.ImportRecord{{Name: "fmt", Category: dataset.Stdlib}}},
		{File: "b.go", Lines: 34, Imports: []dataset.ImportRecord{{Name: "fmt", Category: dataset.Stdlib}, {Name: "os", Category: dataset.Stdlib}}},
	}}
	p := Render(NewSnapshot(ds, Config{}), View{State: viewstate.Default()})
	assert.Equal(t, StatLines{
		Files:      "2 files",
		Imports:    "2 unique imports",
		Exports:    "0 exports",
		AvgImports: "1.5 avg imports/file",
		TotalLines: "1,234 total lines",
	}, p.Stats)
	assert.Equal(t, "stdlib 100%", p.CategoryBar[0].Legend)
	assert.Equal(t, "Go 100%", p.LanguageBar[0].Legend)
}

func TestRenderGodFilesShown(t *testing.T) {
	f := dataset.FileRecord{File: "god.go"}
	for i := 0; i < 12; i++ {
		f.Imports = append(f.Imports, dataset.ImportRecord{Name: fmt.Sprintf("m%d", i), Category: dataset.External})
	}
	p := Render(NewSnapshot(&dataset.Dataset{Files: []dataset.FileRecord{f}}, Config{}), View{State: viewstate.Default()})
	assert.True(t, p.ShowGodFiles)
	assert.Equal(t, []index.NameCount{{Name: "god.go", Count: 12}}, p.GodFiles)
}

func TestSnapshotExcludeAndRoot(t *testing.T) {
	ds := &dataset.Dataset{Files: []dataset.FileRecord{{File: "vendor/x.go"}, {File: "main.go"}}}
	snap := NewSnapshot(ds, Config{Root: "/srv", Exclude: []string{"vendor/**"}, LinkScheme: "idea://open?file="})
	assert.Equal(t, []string{"main.go"}, snap.Dataset.Paths())
	assert.Equal(t, "/srv", snap.Dataset.Root)
	assert.Empty(t, ds.Root, "input dataset must not be modified")
	assert.Len(t, ds.Files, 2)
}

func TestWritePage(t *testing.T) {
	snap := exampleSnapshot()
	p := Render(snap, withState("rev=react&q=<script>", snap))

	var buf bytes.Buffer
	require.NoError(t, WritePage(&buf, p))
	html := buf.String()
	assert.Contains(t, html, `data-theme="dark"`)
	assert.Contains(t, html, `href="vscode://file/project/a.ts"`)
	assert.Contains(t, html, `class="reverse-panel visible"`)
	assert.NotContains(t, html, "<script>\"")
	assert.NotContains(t, html, `value="<script>"`)
	assert.NotContains(t, html, "god-files-section")

	buf.Reset()
	require.NoError(t, WriteGrid(&buf, Render(snap, View{State: viewstate.Default()})))
	grid := buf.String()
	assert.Equal(t, 2, strings.Count(grid, `<div class="card"`))
	assert.Contains(t, grid, `data-import="react"`)
	assert.Contains(t, grid, `<span class="detail-kind">default</span>`)
	assert.Contains(t, grid, `data-href="vscode://file/project/b.ts:3"`)
}

// genSnapshot draws a dataset with unique file names.
func genSnapshot(t *rapid.T) *Snapshot {
	n := rapid.IntRange(0, 10).Draw(t, "files")
	names := []string{"react", "./util", "fmt", "@org/lib", "lodash", "os"}
	ds := &dataset.Dataset{}
	for i := 0; i < n; i++ {
		f := dataset.FileRecord{File: fmt.Sprintf("%s/f%02d.ts", rapid.SampledFrom([]string{"src", "lib", "util"}).Draw(t, "dir"), i)}
		for j := rapid.IntRange(0, 4).Draw(t, "imports"); j > 0; j-- {
			f.Imports = append(f.Imports, dataset.ImportRecord{
				Name:     rapid.SampledFrom(names).Draw(t, "name"),
				Category: rapid.SampledFrom(dataset.AllCategories).Draw(t, "cat"),
			})
		}
		for j := rapid.IntRange(0, 2).Draw(t, "exports"); j > 0; j-- {
			f.Exports = append(f.Exports, dataset.ExportRecord{Name: fmt.Sprintf("E%d", j), Kind: "const"})
		}
		ds.Files = append(ds.Files, f)
	}
	return NewSnapshot(ds, Config{})
}

func TestNameSortsAreReversed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		snap := genSnapshot(t)
		asc := cardFiles(Render(snap, View{State: viewstate.Read("sort=name-asc", nil)}))
		desc := cardFiles(Render(snap, View{State: viewstate.Read("sort=name-desc", nil)}))
		if len(asc) != len(desc) {
			t.Fatalf("different sizes: %v vs %v", asc, desc)
		}
		for i := range asc {
			if asc[i] != desc[len(desc)-1-i] {
				t.Fatalf("not reversed: %v vs %v", asc, desc)
			}
		}
	})
}

func TestAllFiltersShowEveryNonEmptyFile(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		snap := genSnapshot(t)
		view := rapid.SampledFrom([]viewstate.View{viewstate.ViewImports, viewstate.ViewExports, viewstate.ViewBoth}).Draw(t, "view")
		st := viewstate.Default()
		st.View = view

		want := 0
		for _, f := range snap.Dataset.Files {
			if (view.ShowImports() && len(f.Imports) > 0) || (view.ShowExports() && len(f.Exports) > 0) {
				want++
			}
		}
		if got := Render(snap, View{State: st}).Shown; got != want {
			t.Fatalf("view %s: shown %d, want %d", view, got, want)
		}
	})
}

func TestFilterToggleRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		snap := genSnapshot(t)
		st := viewstate.Default()
		st.Sort = rapid.SampledFrom(viewstate.SortModes).Draw(t, "sort")
		before := cardFiles(Render(snap, View{State: st}))

		c := rapid.SampledFrom(dataset.AllCategories).Draw(t, "toggle")
		st.Cats.Toggle(c)
		Render(snap, View{State: st})
		st.Cats.Toggle(c)
		after := cardFiles(Render(snap, View{State: st}))

		if strings.Join(before, ",") != strings.Join(after, ",") {
			t.Fatalf("toggle %s changed the grid: %v vs %v", c, before, after)
		}
	})
}

package dashboard

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/ziadkadry99/depviz/internal/dataset"
	"github.com/ziadkadry99/depviz/internal/index"
	"github.com/ziadkadry99/depviz/internal/viewstate"
)

// View is everything a render depends on besides the snapshot.
type View struct {
	State     viewstate.State
	Collapsed map[string]bool
	Theme     string
}

// Page is the view model of the whole dashboard.
type Page struct {
	Root        string
	Theme       string
	Themes      []string
	State       viewstate.State
	Fragment    string
	Cards       []Card
	Shown       int
	Total       int
	ResultCount string
	NoResults   bool

	Filters      []CategoryFilter
	ViewModes    []Option
	SortModes    []Option
	Stats        StatLines
	CategoryBar  []BarSegment
	LanguageBar  []BarSegment
	TopImports   []index.NameCount
	GodFiles     []index.NameCount
	ShowGodFiles bool
	Reverse      *ReversePanel
	TreeHTML     template.HTML
}

// Card is one file of the grid.
type Card struct {
	File        string
	Link        template.URL
	Icon        string
	Count       int
	Collapsed   bool
	Highlighted bool
	ShowImports bool
	ShowExports bool
	Imports     []ImportTag
	Exports     []ExportTag
}

// ImportTag is one visible import of a card.
type ImportTag struct {
	Name     string
	Category dataset.Category
	Kind     string
	Alias    string
	Names    []string
	Selected bool
	Match    bool
}

// ExportTag is one export of a card.
type ExportTag struct {
	Name    string
	Kind    string
	Private bool
	Line    int
	Link    template.URL
	Match   bool
}

// CategoryFilter is a category toggle button.
type CategoryFilter struct {
	Category dataset.Category
	Count    int
	Active   bool
}

// Option is one entry of a selector.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// StatLines are the formatted sidebar counters.
type StatLines struct {
	Files      string
	Imports    string
	Exports    string
	AvgImports string
	TotalLines string
}

// BarSegment is one part of a stacked percentage bar.
type BarSegment struct {
	Label  string
	Color  template.CSS
	Width  string
	Legend string
}

var sortLabels = map[viewstate.SortMode]string{
	viewstate.SortNameAsc:      "Name A→Z",
	viewstate.SortNameDesc:     "Name Z→A",
	viewstate.SortImportsDesc:  "Most imports",
	viewstate.SortImportsAsc:   "Fewest imports",
	viewstate.SortDependedDesc: "Most depended on",
}

// Render turns a snapshot and a view into a page. It has no side effects.
func Render(snap *Snapshot, v View) Page {
	st := v.State
	if st.Cats == nil {
		st.Cats = viewstate.AllActive()
	}
	if !st.View.Valid() {
		st.View = viewstate.ViewBoth
	}
	if !st.Sort.Valid() {
		st.Sort = viewstate.SortNameAsc
	}

	p := Page{
		Root:     snap.Dataset.Root,
		Theme:    ResolveTheme(v.Theme, DefaultTheme),
		Themes:   Themes,
		State:    st,
		Fragment: viewstate.Write(st),
		Total:    len(snap.Dataset.Files),
		TreeHTML: template.HTML(snap.Tree.ToHTML()),
	}

	p.Cards = renderCards(snap, st, v.Collapsed)
	p.Shown = len(p.Cards)
	p.ResultCount = fmt.Sprintf("%d of %d files", p.Shown, p.Total)
	p.NoResults = p.Shown == 0

	if st.Reverse != "" {
		p.Reverse = ReverseFor(snap.Index, st.Reverse, snap.Links)
	}

	for _, c := range dataset.AllCategories {
		p.Filters = append(p.Filters, CategoryFilter{Category: c, Count: snap.Index.CategoryTotals[c], Active: st.Cats.Has(c)})
	}
	for _, m := range []viewstate.View{viewstate.ViewImports, viewstate.ViewExports, viewstate.ViewBoth} {
		p.ViewModes = append(p.ViewModes, Option{Value: string(m), Label: strings.ToUpper(string(m[:1])) + string(m[1:]), Selected: st.View == m})
	}
	for _, m := range viewstate.SortModes {
		p.SortModes = append(p.SortModes, Option{Value: string(m), Label: sortLabels[m], Selected: st.Sort == m})
	}

	p.Stats = statLines(snap.Index.Stats)
	p.CategoryBar = categoryBar(snap.Index)
	p.LanguageBar = languageBar(snap.Index.Stats)
	p.TopImports = snap.Index.TopImports
	p.GodFiles = snap.Index.GodFiles
	p.ShowGodFiles = len(p.GodFiles) > 0
	return p
}

func renderCards(snap *Snapshot, st viewstate.State, collapsed map[string]bool) []Card {
	q := strings.ToLower(st.Query)
	showImports := st.View.ShowImports()
	showExports := st.View.ShowExports()

	var reverse map[string]bool
	if st.Reverse != "" {
		reverse = make(map[string]bool)
		for _, f := range snap.Index.FilesImporting(st.Reverse) {
			reverse[f] = true
		}
	}

	cards := []Card{}
	for _, f := range sortFiles(snap, st.Sort) {
		visible := make([]dataset.ImportRecord, 0, len(f.Imports))
		for _, imp := range f.Imports {
			if st.Cats.Has(imp.Category) {
				visible = append(visible, imp)
			}
		}

		if !(showImports && len(visible) > 0) && !(showExports && len(f.Exports) > 0) {
			continue
		}
		if reverse != nil && !reverse[f.File] {
			continue
		}
		if q != "" && !matchesQuery(f, visible, q) {
			continue
		}

		card := Card{
			File:        f.File,
			Link:        template.URL(snap.Links.File(f.File, 0)),
			Icon:        FileIcon(f.File),
			Collapsed:   collapsed[f.File],
			Highlighted: reverse != nil,
			ShowImports: showImports,
			ShowExports: showExports,
		}
		if showImports {
			card.Count += len(visible)
			for _, imp := range visible {
				card.Imports = append(card.Imports, ImportTag{
					Name:     imp.Name,
					Category: imp.Category,
					Kind:     imp.Kind,
					Alias:    imp.Alias,
					Names:    imp.Names,
					Selected: imp.Name == st.Reverse,
					Match:    q != "" && strings.Contains(strings.ToLower(imp.Name), q),
				})
			}
		}
		if showExports {
			card.Count += len(f.Exports)
			for _, e := range f.Exports {
				card.Exports = append(card.Exports, ExportTag{
					Name:    e.Name,
					Kind:    e.Kind,
					Private: e.Private,
					Line:    e.Line,
					Link:    template.URL(snap.Links.File(f.File, e.Line)),
					Match:   q != "" && strings.Contains(strings.ToLower(e.Name), q),
				})
			}
		}
		cards = append(cards, card)
	}
	return cards
}

func matchesQuery(f dataset.FileRecord, visible []dataset.ImportRecord, q string) bool {
	if strings.Contains(strings.ToLower(f.File), q) {
		return true
	}
	for _, imp := range visible {
		if strings.Contains(strings.ToLower(imp.Name), q) {
			return true
		}
	}
	for _, e := range f.Exports {
		if strings.Contains(strings.ToLower(e.Name), q) {
			return true
		}
	}
	return false
}

// sortFiles returns a sorted copy of the dataset files. Ties keep dataset
// order.
func sortFiles(snap *Snapshot, mode viewstate.SortMode) []dataset.FileRecord {
	files := make([]dataset.FileRecord, len(snap.Dataset.Files))
	copy(files, snap.Dataset.Files)

	var less func(a, b dataset.FileRecord) bool
	switch mode {
	case viewstate.SortNameDesc:
		less = func(a, b dataset.FileRecord) bool { return a.File > b.File }
	case viewstate.SortImportsDesc:
		less = func(a, b dataset.FileRecord) bool { return len(a.Imports) > len(b.Imports) }
	case viewstate.SortImportsAsc:
		less = func(a, b dataset.FileRecord) bool { return len(a.Imports) < len(b.Imports) }
	case viewstate.SortDependedDesc:
		less = func(a, b dataset.FileRecord) bool {
			return snap.Index.Depended(a.File) > snap.Index.Depended(b.File)
		}
	default:
		less = func(a, b dataset.FileRecord) bool { return a.File < b.File }
	}
	sort.SliceStable(files, func(i, j int) bool { return less(files[i], files[j]) })
	return files
}

func statLines(st index.Stats) StatLines {
	avg := "0"
	if st.Files > 0 {
		avg = fmt.Sprintf("%.1f", st.AvgImports)
	}
	return StatLines{
		Files:      fmt.Sprintf("%d files", st.Files),
		Imports:    fmt.Sprintf("%d unique imports", st.UniqueImports),
		Exports:    fmt.Sprintf("%d exports", st.Exports),
		AvgImports: avg + " avg imports/file",
		TotalLines: humanize.Comma(int64(st.TotalLines)) + " total lines",
	}
}

func categoryBar(idx *index.Index) []BarSegment {
	var out []BarSegment
	for _, s := range idx.CategoryShares() {
		out = append(out, BarSegment{
			Label:  string(s.Category),
			Color:  template.CSS(s.Color),
			Width:  fmt.Sprintf("%.1f", s.Percent),
			Legend: fmt.Sprintf("%s %.0f%%", s.Category, s.Percent),
		})
	}
	return out
}

func languageBar(st index.Stats) []BarSegment {
	var out []BarSegment
	for _, l := range st.Languages {
		out = append(out, BarSegment{
			Label:  l.Name,
			Color:  template.CSS(l.Color),
			Width:  fmt.Sprintf("%.1f", l.Percent),
			Legend: fmt.Sprintf("%s %.0f%%", l.Name, l.Percent),
		})
	}
	return out
}

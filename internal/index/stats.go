package index

import (
	"path"
	"sort"

	"github.com/ziadkadry99/depviz/internal/dataset"
)

// Stats are the filter-independent aggregates shown in the sidebar.
type Stats struct {
	Files         int             `json:"files"`
	Imports       int             `json:"imports"`
	UniqueImports int             `json:"unique_imports"`
	Exports       int             `json:"exports"`
	AvgImports    float64         `json:"avg_imports"`
	TotalLines    int             `json:"total_lines"`
	Languages     []LanguageShare `json:"languages"`
}

// LanguageShare is the line count of one file extension.
type LanguageShare struct {
	Ext     string  `json:"ext"`
	Name    string  `json:"name"`
	Color   string  `json:"color"`
	Lines   int     `json:"lines"`
	Percent float64 `json:"percent"`
}

// CategoryShare is one segment of the category breakdown.
type CategoryShare struct {
	Category dataset.Category `json:"category"`
	Count    int              `json:"count"`
	Percent  float64          `json:"percent"`
	Color    string           `json:"color"`
}

// Percent returns part/whole*100, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func buildStats(ds *dataset.Dataset, unique int) Stats {
	st := Stats{Files: len(ds.Files), UniqueImports: unique}

	lines := make(map[string]int)
	var exts []string
	for _, f := range ds.Files {
		st.Imports += len(f.Imports)
		st.Exports += len(f.Exports)
		st.TotalLines += f.Lines

		ext := path.Ext(f.File)
		if _, ok := lines[ext]; !ok {
			exts = append(exts, ext)
		}
		lines[ext] += f.Lines
	}

	if st.Files > 0 {
		st.AvgImports = float64(st.Imports) / float64(st.Files)
	}

	st.Languages = make([]LanguageShare, 0, len(exts))
	for _, ext := range exts {
		st.Languages = append(st.Languages, LanguageShare{
			Ext:     ext,
			Name:    LanguageName(ext),
			Color:   LanguageColor(ext),
			Lines:   lines[ext],
			Percent: Percent(lines[ext], st.TotalLines),
		})
	}
	sort.SliceStable(st.Languages, func(i, j int) bool {
		return st.Languages[i].Lines > st.Languages[j].Lines
	})
	return st
}

// CategoryShares returns the four categories in display order. Percentages
// are relative to the total import count.
func (idx *Index) CategoryShares() []CategoryShare {
	total := idx.Stats.Imports
	out := make([]CategoryShare, 0, len(dataset.AllCategories))
	for _, c := range dataset.AllCategories {
		n := idx.CategoryTotals[c]
		out = append(out, CategoryShare{
			Category: c,
			Count:    n,
			Percent:  Percent(n, total),
			Color:    CategoryColor(c),
		})
	}
	return out
}

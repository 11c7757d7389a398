// Package index derives the read-only lookup structures the dashboard needs
// from a dataset: reverse imports, depended-on counts, category totals,
// aggregate statistics, the most imported names and the god files.
package index

import (
	"sort"
	"strings"

	"github.com/ziadkadry99/depviz/internal/dataset"
)

// Options tunes the derived lists.
type Options struct {
	GodFileThreshold int // minimum import count for a god file
	GodFileLimit     int // how many god files to keep
	TopImports       int // how many most-imported names to keep
}

// DefaultOptions returns the thresholds used by the dashboard.
func DefaultOptions() Options {
	return Options{GodFileThreshold: 10, GodFileLimit: 5, TopImports: 5}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.GodFileThreshold <= 0 {
		o.GodFileThreshold = d.GodFileThreshold
	}
	if o.GodFileLimit <= 0 {
		o.GodFileLimit = d.GodFileLimit
	}
	if o.TopImports <= 0 {
		o.TopImports = d.TopImports
	}
	return o
}

// NameCount pairs a name (import or file) with a count.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Snippet is the source text of one import.
type Snippet struct {
	Text string `json:"snippet"`
	Kind string `json:"kind,omitempty"`
	Line int    `json:"line,omitempty"`
}

type snippetKey struct {
	file string
	name string
}

// Edge is an internal import resolved to a dataset file.
type Edge struct {
	From string
	To   string
}

// Index is built once per dataset and never mutated afterwards.
type Index struct {
	Reverse        map[string][]string
	DependedOn     map[string]int
	CategoryTotals map[dataset.Category]int
	Stats          Stats
	TopImports     []NameCount
	GodFiles       []NameCount
	Edges          []Edge

	snippets map[snippetKey]Snippet
}

// Build derives every structure from ds. It never fails: an empty dataset
// yields zero counts and empty lists.
func Build(ds *dataset.Dataset, opts Options) *Index {
	if ds == nil {
		ds = &dataset.Dataset{}
	}
	opts = opts.withDefaults()
	idx := &Index{
		Reverse:        make(map[string][]string),
		DependedOn:     make(map[string]int),
		CategoryTotals: make(map[dataset.Category]int, len(dataset.AllCategories)),
		snippets:       make(map[snippetKey]Snippet),
	}
	for _, c := range dataset.AllCategories {
		idx.CategoryTotals[c] = 0
	}

	freq := make(map[string]int)
	var order []string // first-appearance order of import names

	for _, f := range ds.Files {
		seen := make(map[string]bool, len(f.Imports))
		for _, imp := range f.Imports {
			if _, ok := freq[imp.Name]; !ok {
				order = append(order, imp.Name)
			}
			freq[imp.Name]++
			idx.CategoryTotals[imp.Category]++

			if !seen[imp.Name] {
				seen[imp.Name] = true
				idx.Reverse[imp.Name] = append(idx.Reverse[imp.Name], f.File)
			}
			if imp.Snippet != "" {
				idx.snippets[snippetKey{f.File, imp.Name}] = Snippet{Text: imp.Snippet, Kind: imp.Kind, Line: imp.Line}
			}
		}
	}

	idx.buildDependedOn(ds)
	idx.Stats = buildStats(ds, len(order))
	idx.TopImports = topImports(order, freq, opts.TopImports)
	idx.GodFiles = godFiles(ds, opts.GodFileThreshold, opts.GodFileLimit)
	return idx
}

// NormalizeInternal strips one leading "./" or "../" from an internal import name.
func NormalizeInternal(name string) string {
	if rest, ok := strings.CutPrefix(name, "../"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(name, "./"); ok {
		return rest
	}
	return name
}

// buildDependedOn applies the substring heuristic: every internal import is
// credited to the first file, in dataset order, whose path contains the
// normalized import name. Approximate on purpose; see Resolve.
func (idx *Index) buildDependedOn(ds *dataset.Dataset) {
	for _, f := range ds.Files {
		for _, imp := range f.Imports {
			if imp.Category != dataset.Internal {
				continue
			}
			target, ok := resolve(ds, imp.Name)
			if !ok {
				continue
			}
			idx.DependedOn[target]++
			idx.Edges = append(idx.Edges, Edge{From: f.File, To: target})
		}
	}
}

func resolve(ds *dataset.Dataset, name string) (string, bool) {
	norm := NormalizeInternal(name)
	for _, f := range ds.Files {
		if strings.Contains(f.File, norm) {
			return f.File, true
		}
	}
	return "", false
}

func topImports(order []string, freq map[string]int, n int) []NameCount {
	items := make([]NameCount, 0, len(order))
	for _, name := range order {
		items = append(items, NameCount{Name: name, Count: freq[name]})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })
	if len(items) > n {
		items = items[:n]
	}
	return items
}

func godFiles(ds *dataset.Dataset, threshold, limit int) []NameCount {
	var out []NameCount
	for _, f := range ds.Files {
		if len(f.Imports) >= threshold {
			out = append(out, NameCount{Name: f.File, Count: len(f.Imports)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilesImporting returns the files importing name, or nil for unknown names.
func (idx *Index) FilesImporting(name string) []string {
	return idx.Reverse[name]
}

// Has reports whether name is imported anywhere in the dataset.
func (idx *Index) Has(name string) bool {
	_, ok := idx.Reverse[name]
	return ok
}

// Depended returns the depended-on count of file; missing files count 0.
func (idx *Index) Depended(file string) int {
	return idx.DependedOn[file]
}

// Snippet returns the source snippet of name as imported by file.
func (idx *Index) Snippet(file, name string) (Snippet, bool) {
	s, ok := idx.snippets[snippetKey{file, name}]
	return s, ok
}

// ImportNames returns every distinct import name, sorted.
func (idx *Index) ImportNames() []string {
	names := make([]string, 0, len(idx.Reverse))
	for n := range idx.Reverse {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

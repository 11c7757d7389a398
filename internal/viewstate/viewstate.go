// Package viewstate models the dashboard's UI state and its query-string
// encoding in the URL fragment.
package viewstate

import (
	"net/url"
	"sort"
	"strings"

	"github.com/ziadkadry99/depviz/internal/dataset"
)

// View selects which card sections are shown.
type View string

const (
	ViewImports View = "imports"
	ViewExports View = "exports"
	ViewBoth    View = "both"
)

// Valid reports whether v is a known view mode.
func (v View) Valid() bool {
	return v == ViewImports || v == ViewExports || v == ViewBoth
}

// ShowImports reports whether the imports section is visible.
func (v View) ShowImports() bool { return v != ViewExports }

// ShowExports reports whether the exports section is visible.
func (v View) ShowExports() bool { return v != ViewImports }

// SortMode orders the card grid.
type SortMode string

const (
	SortNameAsc      SortMode = "name-asc"
	SortNameDesc     SortMode = "name-desc"
	SortImportsDesc  SortMode = "imports-desc"
	SortImportsAsc   SortMode = "imports-asc"
	SortDependedDesc SortMode = "depended-desc"
)

// SortModes lists every sort mode in selector order.
var SortModes = []SortMode{SortNameAsc, SortNameDesc, SortImportsDesc, SortImportsAsc, SortDependedDesc}

// Valid reports whether s is a known sort mode.
func (s SortMode) Valid() bool {
	for _, m := range SortModes {
		if s == m {
			return true
		}
	}
	return false
}

// CategorySet is the set of active category filters.
type CategorySet map[dataset.Category]bool

// AllActive returns a set containing every category.
func AllActive() CategorySet {
	s := make(CategorySet, len(dataset.AllCategories))
	for _, c := range dataset.AllCategories {
		s[c] = true
	}
	return s
}

// Has reports whether c is active.
func (s CategorySet) Has(c dataset.Category) bool { return s[c] }

// Toggle flips c and returns the new membership.
func (s CategorySet) Toggle(c dataset.Category) bool {
	if s[c] {
		delete(s, c)
		return false
	}
	s[c] = true
	return true
}

// Full reports whether all four categories are active.
func (s CategorySet) Full() bool {
	for _, c := range dataset.AllCategories {
		if !s[c] {
			return false
		}
	}
	return true
}

// Sorted returns the active category names in lexicographic order.
func (s CategorySet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c, on := range s {
		if on {
			out = append(out, string(c))
		}
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy of s.
func (s CategorySet) Clone() CategorySet {
	out := make(CategorySet, len(s))
	for c, on := range s {
		if on {
			out[c] = true
		}
	}
	return out
}

// State is the part of the UI state that is shareable through the URL.
type State struct {
	Query   string
	View    View
	Sort    SortMode
	Cats    CategorySet
	Reverse string
}

// Default returns the state of a freshly loaded page.
func Default() State {
	return State{View: ViewBoth, Sort: SortNameAsc, Cats: AllActive()}
}

// Clone returns a deep copy of st.
func (st State) Clone() State {
	st.Cats = st.Cats.Clone()
	return st
}

// Read decodes a fragment into a State, starting from Default. A leading "#"
// or "?" is tolerated. Malformed or unknown values are ignored field by field.
// A "rev" value is only kept when known reports it as an indexed import; a nil
// known accepts any value.
func Read(fragment string, known func(string) bool) State {
	st := Default()
	fragment = strings.TrimPrefix(strings.TrimPrefix(fragment, "#"), "?")
	// ParseQuery keeps every pair it could decode even when it returns an error.
	p, _ := url.ParseQuery(fragment)

	if p.Has("q") {
		st.Query = p.Get("q")
	}
	if v := View(p.Get("view")); v.Valid() {
		st.View = v
	}
	if s := SortMode(p.Get("sort")); s.Valid() {
		st.Sort = s
	}
	if p.Has("cats") {
		if cats, ok := parseCats(p.Get("cats")); ok {
			st.Cats = cats
		}
	}
	if rev := p.Get("rev"); rev != "" && (known == nil || known(rev)) {
		st.Reverse = rev
	}
	return st
}

// parseCats accepts an empty value as "no categories". A value naming only
// unknown categories is rejected so the default set stays in place.
func parseCats(raw string) (CategorySet, bool) {
	cats := make(CategorySet)
	if raw == "" {
		return cats, true
	}
	for _, name := range strings.Split(raw, ",") {
		c := dataset.Category(strings.TrimSpace(name))
		if c.Valid() {
			cats[c] = true
		}
	}
	if len(cats) == 0 {
		return nil, false
	}
	return cats, true
}

// Write encodes st as a fragment without the leading "#". Default-valued
// fields are omitted, so the default state encodes to "".
func Write(st State) string {
	p := url.Values{}
	if st.Query != "" {
		p.Set("q", st.Query)
	}
	if st.View != "" && st.View != ViewBoth {
		p.Set("view", string(st.View))
	}
	if st.Sort != "" && st.Sort != SortNameAsc {
		p.Set("sort", string(st.Sort))
	}
	if st.Cats != nil && !st.Cats.Full() {
		p.Set("cats", strings.Join(st.Cats.Sorted(), ","))
	}
	if st.Reverse != "" {
		p.Set("rev", st.Reverse)
	}
	return p.Encode()
}

// Equal reports whether a and b describe the same observable state.
func Equal(a, b State) bool {
	if a.Query != b.Query || a.View != b.View || a.Sort != b.Sort || a.Reverse != b.Reverse {
		return false
	}
	return strings.Join(a.Cats.Sorted(), ",") == strings.Join(b.Cats.Sorted(), ",")
}

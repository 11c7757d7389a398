package site

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/ziadkadry99/depviz/internal/dashboard"
)

// SearchEntry is one searchable file of the static export.
type SearchEntry struct {
	Path    string `json:"path"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex lists every file with its import and export names, in
// dataset order.
func BuildSearchIndex(snap *dashboard.Snapshot) []SearchEntry {
	entries := make([]SearchEntry, 0, len(snap.Dataset.Files))
	for _, f := range snap.Dataset.Files {
		terms := make([]string, 0, len(f.Imports)+len(f.Exports))
		for _, imp := range f.Imports {
			terms = append(terms, imp.Name)
		}
		for _, e := range f.Exports {
			terms = append(terms, e.Name)
		}
		entries = append(entries, SearchEntry{
			Path:    f.File,
			Link:    snap.Links.File(f.File, 0),
			Summary: fmt.Sprintf("%d imports, %d exports, depended on by %d", len(f.Imports), len(f.Exports), snap.Index.Depended(f.File)),
			Content: strings.Join(terms, " "),
		})
	}
	return entries
}

// MarshalSearchIndex encodes entries as indented JSON.
func MarshalSearchIndex(entries []SearchEntry) ([]byte, error) {
	return json.MarshalIndent(entries, "", "  ")
}

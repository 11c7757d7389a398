// Package dataset holds the precomputed per-file import/export records the
// dashboard renders. Records are supplied by an external scanner; this package
// only decodes and filters them.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Category classifies where an import comes from.
type Category string

const (
	Stdlib   Category = "stdlib"
	Internal Category = "internal"
	Private  Category = "private"
	External Category = "external"
)

// AllCategories is the fixed display order of the four categories.
var AllCategories = []Category{Stdlib, Internal, Private, External}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case Stdlib, Internal, Private, External:
		return true
	}
	return false
}

// ImportRecord is a single import statement of a file.
type ImportRecord struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Kind     string   `json:"kind,omitempty"`
	Alias    string   `json:"alias,omitempty"`
	Names    []string `json:"names,omitempty"`
	Snippet  string   `json:"snippet,omitempty"`
	Line     int      `json:"line,omitempty"`
}

// ExportRecord is a single exported (or top-level private) symbol.
type ExportRecord struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Private bool   `json:"private,omitempty"`
	Line    int    `json:"line,omitempty"`
}

// FileRecord is one source file with its imports and exports.
type FileRecord struct {
	File    string         `json:"file"`
	Imports []ImportRecord `json:"imports"`
	Exports []ExportRecord `json:"exports,omitempty"`
	Lines   int            `json:"lines,omitempty"`
}

// Dataset is the ordered file sequence plus the project root used for links.
type Dataset struct {
	Root  string       `json:"root"`
	Files []FileRecord `json:"files"`
}

// ErrUnknownFormat is returned when input is neither a dataset object nor a
// bare array of file records.
var ErrUnknownFormat = errors.New("unrecognised dataset format")

// Load reads and decodes a dataset file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	ds, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode accepts either {"root": ..., "files": [...]} or a bare array of file
// records. A JSON null decodes to an empty dataset.
func Decode(data []byte) (*Dataset, error) {
	data = bytes.TrimSpace(data)
	ds := &Dataset{}

	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return ds, nil
	case data[0] == '[':
		if err := json.Unmarshal(data, &ds.Files); err != nil {
			return nil, err
		}
	case data[0] == '{':
		if err := json.Unmarshal(data, ds); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}

	ds.normalize()
	return ds, nil
}

// normalize fills zero values the renderer relies on. Unknown categories are
// folded into External so category totals always cover every import.
func (d *Dataset) normalize() {
	for i := range d.Files {
		f := &d.Files[i]
		if f.Lines < 0 {
			f.Lines = 0
		}
		for j := range f.Imports {
			if !f.Imports[j].Category.Valid() {
				f.Imports[j].Category = External
			}
		}
	}
}

// Paths returns the file paths in dataset order.
func (d *Dataset) Paths() []string {
	out := make([]string, len(d.Files))
	for i, f := range d.Files {
		out[i] = f.File
	}
	return out
}

// Lookup returns the record for file, if present.
func (d *Dataset) Lookup(file string) (*FileRecord, bool) {
	for i := range d.Files {
		if d.Files[i].File == file {
			return &d.Files[i], true
		}
	}
	return nil, false
}

// WithRoot returns d with Root set to root when the dataset carries none.
func (d *Dataset) WithRoot(root string) *Dataset {
	if d.Root == "" {
		d.Root = root
	}
	return d
}

package dashboard

import (
	"fmt"
	"html/template"
	"strconv"

	"github.com/ziadkadry99/depviz/internal/index"
)

// ReversePanel lists every file importing one name.
type ReversePanel struct {
	Title      string        `json:"title"`
	CountLabel string        `json:"countLabel"`
	Files      []ReverseFile `json:"files"`
}

// ReverseFile is one entry of the reverse panel.
type ReverseFile struct {
	File string       `json:"file"`
	Link template.URL `json:"link"`
}

// ReverseFor builds the panel for name. Unknown names produce an empty list.
func ReverseFor(idx *index.Index, name string, links Links) *ReversePanel {
	files := idx.FilesImporting(name)
	p := &ReversePanel{
		Title:      name,
		CountLabel: usageLabel(len(files)),
		Files:      make([]ReverseFile, 0, len(files)),
	}
	for _, f := range files {
		p.Files = append(p.Files, ReverseFile{File: f, Link: template.URL(links.File(f, 0))})
	}
	return p
}

func usageLabel(n int) string {
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%d file%s use this import", n, suffix)
}

func itoa(n int) string { return strconv.Itoa(n) }

package dashboard

import (
	"html"
	"html/template"
	"regexp"
	"strings"
)

// Panel size used for viewport clamping.
const (
	panelWidth  = 500
	panelHeight = 300
)

// Point is a pointer position in CSS pixels.
type Point struct {
	X, Y int
}

// Viewport is the browser window size. A zero dimension disables clamping on
// that axis.
type Viewport struct {
	W, H int
}

// CodePanel is the snippet popup for one import of one file.
type CodePanel struct {
	Title      string        `json:"title"`
	Kind       string        `json:"kind"`
	HTML       template.HTML `json:"html"`
	Snippet    string        `json:"snippet"`
	Link       template.URL  `json:"link"`
	LinkText   string        `json:"linkText"`
	Usages     int           `json:"usages"`
	UsageLabel string        `json:"usageLabel,omitempty"`
	X          int           `json:"x"`
	Y          int           `json:"y"`
}

// CodeFor builds the code panel for name as imported by file. It reports
// false when no snippet is recorded, in which case the panel stays hidden.
func CodeFor(snap *Snapshot, file, name string, at Point, vp Viewport) (*CodePanel, bool) {
	s, ok := snap.Index.Snippet(file, name)
	if !ok || s.Text == "" {
		return nil, false
	}
	linkText := file
	if s.Line > 0 {
		linkText = file + ":" + itoa(s.Line)
	}
	p := &CodePanel{
		Title:    name,
		Kind:     s.Kind,
		HTML:     Highlight(s.Text),
		Snippet:  s.Text,
		Link:     template.URL(snap.Links.File(file, s.Line)),
		LinkText: linkText,
		Usages:   len(snap.Index.FilesImporting(name)),
	}
	if p.Usages > 0 {
		p.UsageLabel = usageLabel(p.Usages)
	}
	p.X, p.Y = ClampPanel(at, vp)
	return p, true
}

// ClampPanel positions the panel just below the pointer while keeping it
// inside the viewport. Coordinates never go negative.
func ClampPanel(at Point, vp Viewport) (x, y int) {
	x, y = at.X, at.Y+10
	if vp.W > 0 {
		x = min(x, vp.W-panelWidth)
	}
	if vp.H > 0 {
		y = min(y, vp.H-panelHeight)
	}
	return max(0, x), max(0, y)
}

var tokenRe = regexp.MustCompile(
	`\b(import|export|from|as|const|let|var|require|type|default|await)\b` +
		`|("(?:[^"'` + "`" + `\\]|\\.)*"|'(?:[^"'` + "`" + `\\]|\\.)*'|` + "`" + `(?:[^"'` + "`" + `\\]|\\.)*` + "`" + `)` +
		`|([{}(),;*])`)

// Highlight wraps keywords, string literals and punctuation of an import
// snippet in kw/str/punct spans. Everything else is HTML-escaped.
func Highlight(code string) template.HTML {
	var b strings.Builder
	last := 0
	for _, m := range tokenRe.FindAllStringSubmatchIndex(code, -1) {
		b.WriteString(html.EscapeString(code[last:m[0]]))
		class := "punct"
		switch {
		case m[2] >= 0:
			class = "kw"
		case m[4] >= 0:
			class = "str"
		}
		b.WriteString(`<span class="` + class + `">`)
		b.WriteString(html.EscapeString(code[m[0]:m[1]]))
		b.WriteString("</span>")
		last = m[1]
	}
	b.WriteString(html.EscapeString(code[last:]))
	return template.HTML(b.String())
}

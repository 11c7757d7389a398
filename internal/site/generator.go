// Package site writes a static, self-contained export of the dashboard and
// the dependency report.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/progress"
	"github.com/ziadkadry99/depviz/internal/report"
	"github.com/ziadkadry99/depviz/internal/viewstate"
)

// Generator renders a snapshot into a static site directory.
type Generator struct {
	OutputDir string
	Title     string
	Theme     string
	State     viewstate.State
	Progress  progress.Reporter
}

// NewGenerator creates a Generator rendering the default view.
func NewGenerator(outputDir, title string) *Generator {
	return &Generator{
		OutputDir: outputDir,
		Title:     title,
		Theme:     dashboard.DefaultTheme,
		State:     viewstate.Default(),
		Progress:  progress.Nop{},
	}
}

// reportPage holds the data passed to the report template.
type reportPage struct {
	Title   string
	Theme   string
	Content template.HTML
}

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// Generate writes index.html, report.html, report.md and search-index.json.
// It returns the written file names.
func (g *Generator) Generate(snap *dashboard.Snapshot) ([]string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	bar := g.Progress
	if bar == nil {
		bar = progress.Nop{}
	}
	bar.Start(4)
	defer bar.Finish()

	var written []string
	write := func(name string, data []byte) error {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		written = append(written, name)
		bar.Update(len(written), name)
		return nil
	}

	var page bytes.Buffer
	p := dashboard.Render(snap, dashboard.View{State: g.State, Theme: g.Theme})
	if err := dashboard.WriteStaticPage(&page, p); err != nil {
		return nil, fmt.Errorf("rendering dashboard: %w", err)
	}
	if err := write("index.html", page.Bytes()); err != nil {
		return nil, err
	}

	opts := report.DefaultOptions()
	if g.Title != "" {
		opts.Title = g.Title
	}
	md := report.Markdown(snap, opts)
	if err := write("report.md", []byte(md)); err != nil {
		return nil, err
	}

	htmlContent, err := report.HTML(md)
	if err != nil {
		return nil, err
	}
	var rep bytes.Buffer
	data := reportPage{
		Title:   opts.Title,
		Theme:   dashboard.ResolveTheme(g.Theme, dashboard.DefaultTheme),
		Content: template.HTML(htmlContent),
	}
	if err := reportTmpl.Execute(&rep, data); err != nil {
		return nil, fmt.Errorf("rendering report page: %w", err)
	}
	if err := write("report.html", rep.Bytes()); err != nil {
		return nil, err
	}

	idx, err := MarshalSearchIndex(BuildSearchIndex(snap))
	if err != nil {
		return nil, fmt.Errorf("encoding search index: %w", err)
	}
	if err := write("search-index.json", idx); err != nil {
		return nil, err
	}

	return written, nil
}

package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/diagrams"
	"github.com/ziadkadry99/depviz/internal/index"
	"github.com/ziadkadry99/depviz/internal/viewstate"
)

const maxSuggestions = 5

// handleReverseLookup lists the files importing a module.
func (s *Server) handleReverseLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("import_name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: import_name"), nil
	}

	snap := s.store.Current()
	if !snap.Index.Has(name) {
		return mcp.NewToolResultError(notFound("import", name, index.Suggest(name, snap.Index.ImportNames(), maxSuggestions))), nil
	}

	panel := dashboard.ReverseFor(snap.Index, name, snap.Links)
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s: %s\n", panel.Title, panel.CountLabel))
	for _, f := range panel.Files {
		sb.WriteString(fmt.Sprintf("- %s\n", f.File))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleDatasetStats summarizes the loaded dataset.
func (s *Server) handleDatasetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap := s.store.Current()
	idx := snap.Index
	st := idx.Stats

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Files: %d\nImports: %d (%d unique)\nExports: %d\nAvg imports/file: %.1f\nTotal lines: %d\n",
		st.Files, st.Imports, st.UniqueImports, st.Exports, st.AvgImports, st.TotalLines))

	sb.WriteString("\nCategories:\n")
	for _, c := range idx.CategoryShares() {
		sb.WriteString(fmt.Sprintf("- %s: %d (%.1f%%)\n", c.Category, c.Count, c.Percent))
	}

	if len(st.Languages) > 0 {
		sb.WriteString("\nLanguages:\n")
		for _, l := range st.Languages {
			sb.WriteString(fmt.Sprintf("- %s: %d lines (%.1f%%)\n", l.Name, l.Lines, l.Percent))
		}
	}

	if len(idx.TopImports) > 0 {
		sb.WriteString("\nTop imports:\n")
		for _, t := range idx.TopImports {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", t.Name, t.Count))
		}
	}

	if len(idx.GodFiles) > 0 {
		sb.WriteString("\nGod files:\n")
		for _, g := range idx.GodFiles {
			sb.WriteString(fmt.Sprintf("- %s: %d imports\n", g.Name, g.Count))
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleFileDetail describes one file of the dataset.
func (s *Server) handleFileDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("file_path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: file_path"), nil
	}

	snap := s.store.Current()
	f, ok := snap.Dataset.Lookup(path)
	if !ok {
		return mcp.NewToolResultError(notFound("file", path, index.Suggest(path, snap.Dataset.Paths(), maxSuggestions))), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File: %s\n", f.File))
	if f.Lines > 0 {
		sb.WriteString(fmt.Sprintf("Lines: %d\n", f.Lines))
	}
	sb.WriteString(fmt.Sprintf("Depended on by: %d\n", snap.Index.Depended(f.File)))
	if link := snap.Links.File(f.File, 0); link != "" {
		sb.WriteString(fmt.Sprintf("Open: %s\n", link))
	}

	sb.WriteString(fmt.Sprintf("\nImports (%d):\n", len(f.Imports)))
	for _, imp := range f.Imports {
		line := fmt.Sprintf("- %s [%s]", imp.Name, imp.Category)
		if imp.Kind != "" {
			line += " " + imp.Kind
		}
		if len(imp.Names) > 0 {
			line += " {" + strings.Join(imp.Names, ", ") + "}"
		}
		if imp.Line > 0 {
			line += fmt.Sprintf(" line %d", imp.Line)
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString(fmt.Sprintf("\nExports (%d):\n", len(f.Exports)))
	for _, e := range f.Exports {
		line := fmt.Sprintf("- %s (%s)", e.Name, e.Kind)
		if e.Private {
			line += " private"
		}
		if e.Line > 0 {
			line += fmt.Sprintf(" line %d", e.Line)
		}
		sb.WriteString(line + "\n")
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// handleSearchFiles filters files with the same rules as the dashboard grid.
func (s *Server) handleSearchFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 20)
	if limit <= 0 {
		limit = 20
	}

	params := url.Values{}
	if q := request.GetString("query", ""); q != "" {
		params.Set("q", q)
	}
	if cats := request.GetString("categories", ""); cats != "" {
		params.Set("cats", cats)
	}
	if sortMode := request.GetString("sort", ""); sortMode != "" {
		params.Set("sort", sortMode)
	}

	snap := s.store.Current()
	st := viewstate.Read(params.Encode(), snap.Index.Has)
	page := dashboard.Render(snap, dashboard.View{State: st})

	if page.NoResults {
		return mcp.NewToolResultText(fmt.Sprintf("No files match (%s).", page.ResultCount)), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %s:\n", page.ResultCount))
	for i, c := range page.Cards {
		if i == limit {
			sb.WriteString(fmt.Sprintf("... %d more\n", len(page.Cards)-limit))
			break
		}
		sb.WriteString(fmt.Sprintf("- %s (%d imports, %d exports)\n", c.File, len(c.Imports), len(c.Exports)))
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleDependencyDiagram returns a Mermaid diagram of the dataset.
func (s *Server) handleDependencyDiagram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	diagramType, err := request.RequireString("diagram_type")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: diagram_type"), nil
	}
	path := request.GetString("file_path", "")
	snap := s.store.Current()

	switch diagramType {
	case "graph":
		if len(snap.Index.Edges) == 0 {
			return mcp.NewToolResultText("No internal imports could be resolved to dataset files."), nil
		}
		return mcp.NewToolResultText(diagrams.DependencyDiagram(snap.Index.Edges, path)), nil
	case "file":
		if path == "" {
			return mcp.NewToolResultError("file_path is required for a file diagram"), nil
		}
		f, ok := snap.Dataset.Lookup(path)
		if !ok {
			return mcp.NewToolResultError(notFound("file", path, index.Suggest(path, snap.Dataset.Paths(), maxSuggestions))), nil
		}
		return mcp.NewToolResultText(diagrams.FileImportsDiagram(*f)), nil
	case "categories":
		return mcp.NewToolResultText(diagrams.CategoryPie(snap.Index.CategoryShares())), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown diagram_type %q: must be one of graph, file, categories", diagramType)), nil
	}
}

func notFound(kind, name string, suggestions []string) string {
	msg := fmt.Sprintf("No %s named %q in the dataset.", kind, name)
	if len(suggestions) > 0 {
		msg += " Did you mean: " + strings.Join(suggestions, ", ") + "?"
	}
	return msg
}

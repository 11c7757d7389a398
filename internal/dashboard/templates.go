package dashboard

import (
	"html/template"
	"io"
	"strings"
)

// pageData wraps a Page with the inline assets.
type pageData struct {
	Page
	Static bool
	CSS    template.CSS
	JS     template.JS
}

var pageTmpl = template.Must(template.New("page").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(pageTemplate))

// WritePage renders the full dashboard document served over HTTP.
func WritePage(w io.Writer, p Page) error {
	return pageTmpl.ExecuteTemplate(w, "page", pageData{Page: p, CSS: template.CSS(cssContent), JS: template.JS(jsContent)})
}

// WriteStaticPage renders a self-contained document for the static export.
// Controls that need the server are disabled.
func WriteStaticPage(w io.Writer, p Page) error {
	return pageTmpl.ExecuteTemplate(w, "page", pageData{Page: p, Static: true, CSS: template.CSS(cssContent), JS: template.JS(jsContent)})
}

// WriteGrid renders only the card grid, for partial updates.
func WriteGrid(w io.Writer, p Page) error {
	return pageTmpl.ExecuteTemplate(w, "grid", p)
}

// pageTemplate is the html/template for the dashboard document and its grid.
const pageTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>depviz: {{.Root}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/gh/devicons/devicon@latest/devicon.min.css">
  <style>{{.CSS}}</style>
</head>
<body data-fragment="{{.Fragment}}" data-rev="{{.State.Reverse}}"{{if .Static}} data-static="true"{{end}}>
  <aside class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <h2 class="project-title">depviz</h2>
      <div class="root-path" id="root-path">{{.Root}}</div>
    </div>
    <section class="side-section">
      <div class="stats">
        <div id="stat-files">{{.Stats.Files}}</div>
        <div id="stat-imports">{{.Stats.Imports}}</div>
        <div id="stat-exports">{{.Stats.Exports}}</div>
        <div id="stat-avg">{{.Stats.AvgImports}}</div>
        <div id="stat-lines">{{.Stats.TotalLines}}</div>
      </div>
    </section>
    <section class="side-section">
      <h3>Categories</h3>
      <div class="bar" id="cat-bar">{{range .CategoryBar}}<span style="width:{{.Width}}%;background:{{.Color}}" title="{{.Legend}}"></span>{{end}}</div>
      <div class="bar-legend" id="cat-bar-legend">{{range .CategoryBar}}<span style="color:{{.Color}}">{{.Legend}}</span>{{end}}</div>
    </section>
    <section class="side-section">
      <h3>Languages</h3>
      <div class="bar" id="lang-bar">{{range .LanguageBar}}<span style="width:{{.Width}}%;background:{{.Color}}" title="{{.Legend}}"></span>{{end}}</div>
      <div class="bar-legend" id="lang-legend">{{range .LanguageBar}}<span style="color:{{.Color}}">{{.Legend}}</span>{{end}}</div>
    </section>
    <section class="side-section">
      <h3>Most imported</h3>
      <ul class="top-list" id="top-imports">{{range .TopImports}}<li title="{{.Name}}"><span>{{.Name}}</span><span class="ti-count">{{.Count}}</span></li>{{end}}</ul>
    </section>
    {{if .ShowGodFiles}}<section class="side-section" id="god-files-section">
      <h3>God files</h3>
      <ul class="top-list" id="god-files">{{range .GodFiles}}<li title="{{.Name}}"><span>{{.Name}}</span><span class="ti-count">{{.Count}}</span></li>{{end}}</ul>
    </section>{{end}}
    <section class="side-section">
      <h3>Files</h3>
      <div class="file-tree" id="file-tree">{{.TreeHTML}}</div>
    </section>
  </aside>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <header class="toolbar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle sidebar">☰</button>
      <input type="text" id="search" placeholder="Search files, imports, exports… (/)" autocomplete="off" value="{{.State.Query}}"{{if .Static}} disabled{{end}}>
      <select id="sort"{{if .Static}} disabled{{end}}>{{range .SortModes}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>
      <div class="view-modes">{{range .ViewModes}}<button class="view-btn{{if .Selected}} active{{end}}" data-view="{{.Value}}"{{if $.Static}} disabled{{end}}>{{.Label}}</button>{{end}}</div>
      <div class="filters">{{range .Filters}}<button class="filter-btn cat-{{.Category}}{{if .Active}} active{{end}}" data-cat="{{.Category}}"{{if $.Static}} disabled{{end}}>{{.Category}} <span class="count" id="count-{{.Category}}">{{.Count}}</span></button>{{end}}</div>
      <select id="theme-select" aria-label="Theme">{{range .Themes}}<option value="{{.}}"{{if eq . $.Theme}} selected{{end}}>{{.}}</option>{{end}}</select>
      <span class="result-count" id="result-count">{{.ResultCount}}</span>
    </header>
    <aside class="reverse-panel{{if .Reverse}} visible{{end}}" id="reverse-panel">
      <button class="panel-close" id="reverse-close" aria-label="Close">×</button>
      <h3 id="reverse-title">{{with .Reverse}}{{.Title}}{{end}}</h3>
      <div class="reverse-count" id="reverse-count">{{with .Reverse}}{{.CountLabel}}{{end}}</div>
      <ul id="reverse-list">{{with .Reverse}}{{range .Files}}<li><a href="{{.Link}}">{{.File}}</a></li>{{end}}{{end}}</ul>
    </aside>
    <div class="grid" id="grid">{{template "grid" .}}</div>
    <div class="no-results" id="no-results"{{if not .NoResults}} style="display:none"{{end}}>No files match the current filters.</div>
  </main>
  <div class="code-panel" id="code-panel">
    <div class="code-header">
      <span class="code-title" id="code-title"></span>
      <span class="code-kind" id="code-kind"></span>
      <button class="code-copy" id="code-copy" title="Copy">⎘</button>
      <button class="panel-close" id="code-close" aria-label="Close">×</button>
    </div>
    <pre class="code-body" id="code-body"></pre>
    <div class="code-footer">
      <a id="code-link" href="#"></a>
      <span class="code-usages" id="code-usages"></span>
    </div>
  </div>
  <script>{{.JS}}</script>
</body>
</html>{{end}}

{{define "grid"}}{{range .Cards}}{{template "card" .}}{{end}}{{end}}

{{define "card"}}<div class="card{{if .Highlighted}} highlighted{{end}}{{if .Collapsed}} collapsed{{end}}" data-file="{{.File}}">
  <div class="card-header">
    <div class="file-info"><span class="file-icon">{{if .Icon}}<i class="{{.Icon}} colored"></i>{{else}}📄{{end}}</span><a href="{{.Link}}">{{.File}}</a></div>
    <div class="header-right"><span class="import-count">{{.Count}}</span><button class="collapse-btn" title="Collapse">▾</button></div>
  </div>
  {{if .ShowImports}}<div class="card-section"><div class="card-section-label">Imports ({{len .Imports}})</div><div class="tags">{{range .Imports}}<span class="tag tag-{{.Category}}{{if .Selected}} selected{{end}}{{if .Match}} match{{end}}" data-import="{{.Name}}" data-kind="{{.Kind}}">{{.Name}}{{if .Kind}}<span class="tag-detail"><span class="detail-kind">{{.Kind}}</span>{{if .Alias}}<div class="detail-names">as {{.Alias}}</div>{{end}}{{if .Names}}<div class="detail-names">{ {{join .Names ", "}} }</div>{{end}}</span>{{end}}</span>{{else}}<span class="section-empty">no imports</span>{{end}}</div></div>{{end}}
  {{if .ShowExports}}<div class="card-section"><div class="card-section-label">Exports ({{len .Exports}})</div><div class="export-row">{{range .Exports}}<span class="etag{{if .Private}} private{{end}}{{if .Match}} match{{end}}" data-href="{{.Link}}"{{if .Line}} data-line="{{.Line}}"{{end}}>{{.Name}}<span class="ekind">{{.Kind}}</span>{{if .Line}}<span class="etag-detail">line {{.Line}}</span>{{end}}</span>{{else}}<span class="section-empty">no exports</span>{{end}}</div></div>{{end}}
</div>
{{end}}`

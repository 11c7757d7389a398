package index

import "github.com/ziadkadry99/depviz/internal/dataset"

const fallbackColor = "#8b949e"

var languageColors = map[string]string{
	".ts": "#3178c6", ".tsx": "#61dafb", ".js": "#f7df1e", ".jsx": "#61dafb", ".mjs": "#f7df1e",
	".go": "#00add8", ".css": "#563d7c", ".scss": "#c6538c", ".html": "#e34c26", ".json": "#a8a8a8",
	".md": "#555", ".yml": "#cb171e", ".yaml": "#cb171e",
}

var languageNames = map[string]string{
	".ts": "TypeScript", ".tsx": "TSX", ".js": "JavaScript", ".jsx": "JSX", ".mjs": "JavaScript",
	".go": "Go", ".css": "CSS", ".scss": "SCSS", ".html": "HTML", ".json": "JSON",
	".md": "Markdown", ".yml": "YAML", ".yaml": "YAML",
}

// LanguageName returns the display name for a file extension.
func LanguageName(ext string) string {
	if n, ok := languageNames[ext]; ok {
		return n
	}
	if ext == "" {
		return "other"
	}
	return ext
}

// LanguageColor returns the bar colour for a file extension.
func LanguageColor(ext string) string {
	if c, ok := languageColors[ext]; ok {
		return c
	}
	return fallbackColor
}

var categoryColors = map[dataset.Category]string{
	dataset.Stdlib:   "var(--green)",
	dataset.Internal: "var(--purple)",
	dataset.Private:  "var(--blue)",
	dataset.External: "var(--orange)",
}

// CategoryColor returns the CSS colour of a category.
func CategoryColor(c dataset.Category) string {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return fallbackColor
}

package dashboard

import (
	"path"
	"regexp"
)

var nameIcons = []struct {
	re    *regexp.Regexp
	class string
}{
	{regexp.MustCompile(`vite\.config`), "devicon-vitejs-plain"},
	{regexp.MustCompile(`tailwind\.config`), "devicon-tailwindcss-original"},
	{regexp.MustCompile(`jest\.config|jest\.setup`), "devicon-jest-plain"},
	{regexp.MustCompile(`webpack\.config`), "devicon-webpack-plain"},
	{regexp.MustCompile(`babel\.config|\.babelrc`), "devicon-babel-plain"},
	{regexp.MustCompile(`\.eslintrc|eslint\.config`), "devicon-eslint-original"},
	{regexp.MustCompile(`next\.config`), "devicon-nextjs-plain"},
	{regexp.MustCompile(`nuxt\.config`), "devicon-nuxtjs-plain"},
	{regexp.MustCompile(`Dockerfile|\.dockerignore`), "devicon-docker-plain"},
	{regexp.MustCompile(`package\.json`), "devicon-npm-original-wordmark"},
}

var extIcons = map[string]string{
	".tsx": "devicon-react-original", ".jsx": "devicon-react-original",
	".ts": "devicon-typescript-plain", ".js": "devicon-javascript-plain", ".mjs": "devicon-javascript-plain",
	".go":  "devicon-go-original-wordmark",
	".css": "devicon-css3-plain", ".scss": "devicon-sass-original",
	".json": "devicon-json-plain", ".md": "devicon-markdown-original",
	".html": "devicon-html5-plain", ".yml": "devicon-yaml-plain", ".yaml": "devicon-yaml-plain",
}

// FileIcon returns the devicon class for a file path, or "" when the page
// should fall back to a generic glyph. Well-known config file names win over
// the extension.
func FileIcon(file string) string {
	name := path.Base(file)
	for _, ni := range nameIcons {
		if ni.re.MatchString(name) {
			return ni.class
		}
	}
	if dirHasGitHub(file) {
		return "devicon-github-original"
	}
	return extIcons[path.Ext(name)]
}

func dirHasGitHub(file string) bool {
	for dir := path.Dir(file); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if path.Base(dir) == ".github" {
			return true
		}
	}
	return false
}

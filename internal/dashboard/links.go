package dashboard

import (
	"strconv"
	"strings"
)

// DefaultLinkScheme opens files in VS Code.
const DefaultLinkScheme = "vscode://file"

// Links builds editor deep links for dataset files.
type Links struct {
	Scheme string
	Root   string
}

// File returns the link for file, with a ":line" suffix when line > 0.
func (l Links) File(file string, line int) string {
	scheme := l.Scheme
	if scheme == "" {
		scheme = DefaultLinkScheme
	}
	var b strings.Builder
	b.WriteString(strings.TrimRight(scheme, "/"))
	if root := strings.Trim(l.Root, "/"); root != "" {
		b.WriteString("/")
		b.WriteString(root)
	}
	b.WriteString("/")
	b.WriteString(strings.TrimLeft(file, "/"))
	if line > 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(line))
	}
	return b.String()
}

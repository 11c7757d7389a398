package dashboard

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// FileTree is a node of the sidebar directory view.
type FileTree struct {
	Name     string
	Path     string // full path for files, directory prefix for dirs
	IsDir    bool
	Count    int // recursive file count for directories
	Children []*FileTree
}

// BuildTree constructs a FileTree from flat slash-separated paths. Every path
// becomes exactly one file node, independent of any filters.
func BuildTree(paths []string) *FileTree {
	root := &FileTree{IsDir: true}

	for _, p := range paths {
		parts := strings.Split(p, "/")
		current := root
		for i, part := range parts {
			isLast := i == len(parts)-1
			var next *FileTree
			for _, child := range current.Children {
				if child.Name == part && child.IsDir == !isLast {
					next = child
					break
				}
			}
			if next == nil || isLast {
				next = &FileTree{Name: part, IsDir: !isLast}
				if isLast {
					next.Path = p
				} else {
					next.Path = strings.Join(parts[:i+1], "/")
				}
				current.Children = append(current.Children, next)
			}
			current = next
		}
	}

	sortTree(root)
	countFiles(root)
	return root
}

// sortTree recursively sorts children: directories first, then files, each
// group by name.
func sortTree(node *FileTree) {
	sort.SliceStable(node.Children, func(i, j int) bool {
		if node.Children[i].IsDir != node.Children[j].IsDir {
			return node.Children[i].IsDir
		}
		return node.Children[i].Name < node.Children[j].Name
	})
	for _, child := range node.Children {
		if child.IsDir {
			sortTree(child)
		}
	}
}

func countFiles(node *FileTree) int {
	if !node.IsDir {
		return 1
	}
	n := 0
	for _, child := range node.Children {
		n += countFiles(child)
	}
	node.Count = n
	return n
}

// Files returns the file paths in display order.
func (t *FileTree) Files() []string {
	var out []string
	var walk func(*FileTree)
	walk = func(n *FileTree) {
		if !n.IsDir {
			out = append(out, n.Path)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(t)
	return out
}

// ToHTML renders the tree fully expanded. Directory toggling and scrolling to
// a card are handled by the page script through the ft-* classes.
func (t *FileTree) ToHTML() string {
	var b strings.Builder
	renderDir(&b, t, 0)
	return b.String()
}

func renderDir(b *strings.Builder, node *FileTree, depth int) {
	for _, child := range node.Children {
		if child.IsDir {
			fmt.Fprintf(b, `<div class="ft-dir" data-depth="%d" style="padding-left:%.2frem">`+
				`<span class="ft-chevron">▾</span><span class="ft-label">📁 %s</span><span class="ft-count">%d</span></div>`+"\n",
				depth, 0.5+float64(depth)*0.75, html.EscapeString(child.Name), child.Count)
			b.WriteString(`<div class="ft-children">` + "\n")
			renderDir(b, child, depth+1)
			b.WriteString("</div>\n")
			continue
		}
		fmt.Fprintf(b, `<div class="ft-file" data-file="%s" style="padding-left:%.2frem"><span class="ft-label">%s %s</span></div>`+"\n",
			html.EscapeString(child.Path), 0.5+float64(depth)*0.75+0.8, iconHTML(child.Path), html.EscapeString(child.Name))
	}
}

func iconHTML(file string) string {
	if class := FileIcon(file); class != "" {
		return `<i class="` + class + ` colored"></i>`
	}
	return "📄"
}

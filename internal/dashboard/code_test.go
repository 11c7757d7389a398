package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	got := string(Highlight(`import { useState } from "react";`))
	want := `<span class="kw">import</span> <span class="punct">{</span> useState <span class="punct">}</span> ` +
		`<span class="kw">from</span> <span class="str">&#34;react&#34;</span><span class="punct">;</span>`
	assert.Equal(t, want, got)
}

func TestHighlightEscapes(t *testing.T) {
	got := string(Highlight(`const x = require('<b>') && y`))
	assert.Contains(t, got, `<span class="str">&#39;&lt;b&gt;&#39;</span>`)
	assert.Contains(t, got, `&amp;&amp; y`)
	assert.Contains(t, got, `<span class="kw">require</span><span class="punct">(</span>`)
}

func TestHighlightKeywordBoundaries(t *testing.T) {
	got := string(Highlight(`important exports`))
	assert.Equal(t, "important exports", got)
}

func TestClampPanel(t *testing.T) {
	tests := []struct {
		name   string
		at     Point
		vp     Viewport
		wx, wy int
	}{
		{"inside", Point{100, 100}, Viewport{1920, 1080}, 100, 110},
		{"right edge", Point{1800, 100}, Viewport{1920, 1080}, 1420, 110},
		{"bottom edge", Point{100, 1000}, Viewport{1920, 1080}, 100, 780},
		{"tiny viewport", Point{50, 50}, Viewport{300, 200}, 0, 0},
		{"no viewport", Point{3000, 3000}, Viewport{}, 3000, 3010},
		{"negative pointer", Point{-20, -30}, Viewport{1000, 1000}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampPanel(tt.at, tt.vp)
			assert.Equal(t, tt.wx, x)
			assert.Equal(t, tt.wy, y)
		})
	}
}

func TestCodeFor(t *testing.T) {
	snap := exampleSnapshot()

	p, ok := CodeFor(snap, "a.ts", "react", Point{10, 20}, Viewport{1200, 800})
	require.True(t, ok)
	assert.Equal(t, "react", p.Title)
	assert.Equal(t, "default", p.Kind)
	assert.Equal(t, "import React from 'react';", p.Snippet)
	assert.Equal(t, "vscode://file/project/a.ts:1", string(p.Link))
	assert.Equal(t, "a.ts:1", p.LinkText)
	assert.Equal(t, 1, p.Usages)
	assert.Equal(t, "1 file use this import", p.UsageLabel)
	assert.Equal(t, 10, p.X)
	assert.Equal(t, 30, p.Y)

	_, ok = CodeFor(snap, "a.ts", "./b", Point{}, Viewport{})
	assert.False(t, ok, "imports without a snippet hide the panel")
	_, ok = CodeFor(snap, "missing.ts", "react", Point{}, Viewport{})
	assert.False(t, ok)
}

func TestLinks(t *testing.T) {
	tests := []struct {
		links Links
		file  string
		line  int
		want  string
	}{
		{Links{Root: "/project"}, "a.ts", 0, "vscode://file/project/a.ts"},
		{Links{Root: "/project/"}, "src/a.ts", 12, "vscode://file/project/src/a.ts:12"},
		{Links{Scheme: "cursor://file/", Root: "/p"}, "a.go", 0, "cursor://file/p/a.go"},
		{Links{}, "a.go", 3, "vscode://file/a.go:3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.links.File(tt.file, tt.line))
	}
}

func TestReverseFor(t *testing.T) {
	snap := exampleSnapshot()
	p := ReverseFor(snap.Index, "lodash", snap.Links)
	assert.Equal(t, "0 files use this import", p.CountLabel)
	assert.Empty(t, p.Files)
}

func TestFileIcon(t *testing.T) {
	assert.Equal(t, "devicon-vitejs-plain", FileIcon("web/vite.config.ts"))
	assert.Equal(t, "devicon-docker-plain", FileIcon("Dockerfile"))
	assert.Equal(t, "devicon-npm-original-wordmark", FileIcon("package.json"))
	assert.Equal(t, "devicon-react-original", FileIcon("src/App.tsx"))
	assert.Equal(t, "devicon-go-original-wordmark", FileIcon("cmd/main.go"))
	assert.Equal(t, "devicon-github-original", FileIcon(".github/workflows/ci.yml"))
	assert.Equal(t, "", FileIcon("Makefile"))
}

func TestResolveTheme(t *testing.T) {
	assert.Equal(t, "nord", ResolveTheme("nord", "light"))
	assert.Equal(t, "light", ResolveTheme("bogus", "light"))
	assert.Equal(t, DefaultTheme, ResolveTheme("", "bogus"))
}

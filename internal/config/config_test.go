package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "dark" {
		t.Errorf("expected default theme %q, got %q", "dark", cfg.Theme)
	}
	if cfg.LinkScheme != "vscode://file" {
		t.Errorf("expected default link_scheme, got %q", cfg.LinkScheme)
	}
	if cfg.GodFileThreshold != 10 {
		t.Errorf("expected default god_file_threshold 10, got %d", cfg.GodFileThreshold)
	}
	if cfg.SearchDebounceMS != 150 {
		t.Errorf("expected default search_debounce_ms 150, got %d", cfg.SearchDebounceMS)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.depviz.yml")

	original := DefaultConfig()
	original.Dataset = "out/deps.json"
	original.Root = "/src/app"
	original.Theme = "nord"
	original.Port = 9000
	original.Exclude = []string{"**/*_test.go", "gen/**"}
	original.AllowAllOrigins = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Dataset != original.Dataset {
		t.Errorf("dataset: got %q, want %q", loaded.Dataset, original.Dataset)
	}
	if loaded.Root != original.Root {
		t.Errorf("root: got %q, want %q", loaded.Root, original.Root)
	}
	if loaded.Theme != original.Theme {
		t.Errorf("theme: got %q, want %q", loaded.Theme, original.Theme)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false")
	}
	if len(loaded.Exclude) != len(original.Exclude) {
		t.Fatalf("exclude length: got %d, want %d", len(loaded.Exclude), len(original.Exclude))
	}
	for i, v := range loaded.Exclude {
		if v != original.Exclude[i] {
			t.Errorf("exclude[%d]: got %q, want %q", i, v, original.Exclude[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.yml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DEPVIZ_THEME", "dracula")
	t.Setenv("DEPVIZ_LINK_SCHEME", "cursor://file")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Theme != "dracula" {
		t.Errorf("env override failed: got %q, want %q", loaded.Theme, "dracula")
	}
	if loaded.LinkScheme != "cursor://file" {
		t.Errorf("env override failed: got %q", loaded.LinkScheme)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"empty theme uses default", func(c *Config) { c.Theme = "" }, true},
		{"unknown theme", func(c *Config) { c.Theme = "neon" }, false},
		{"empty dataset", func(c *Config) { c.Dataset = "" }, false},
		{"port too large", func(c *Config) { c.Port = 70000 }, false},
		{"negative port", func(c *Config) { c.Port = -1 }, false},
		{"zero threshold", func(c *Config) { c.GodFileThreshold = 0 }, false},
		{"zero top imports", func(c *Config) { c.TopImports = 0 }, false},
		{"negative debounce", func(c *Config) { c.SearchDebounceMS = -5 }, false},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }, false},
		{"bad glob", func(c *Config) { c.Exclude = []string{"[abc"} }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSnapshotAndDashboardOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Root = "/repo"
	cfg.TopImports = 3
	cfg.SearchDebounceMS = 200

	snap := cfg.Snapshot()
	if snap.Root != "/repo" || snap.Index.TopImports != 3 || snap.Index.GodFileThreshold != 10 {
		t.Errorf("unexpected snapshot config %+v", snap)
	}
	if got := cfg.Dashboard().Debounce; got != 200*time.Millisecond {
		t.Errorf("debounce: got %v", got)
	}
}

func TestValidatePort(t *testing.T) {
	for _, s := range []string{"0", "8080", "65535"} {
		if err := validatePort(s); err != nil {
			t.Errorf("validatePort(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "abc", "-1", "65536"} {
		if err := validatePort(s); err == nil {
			t.Errorf("validatePort(%q) should fail", s)
		}
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.go", []string{"**/*.go"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}

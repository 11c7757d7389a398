// Package config loads and validates the .depviz.yml configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/depviz/internal/dashboard"
	"github.com/ziadkadry99/depviz/internal/dataset"
	"github.com/ziadkadry99/depviz/internal/index"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DEPVIZ_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// DEPVIZ_LINK_SCHEME -> link_scheme. Keys are flat, so "_" is not a delimiter.
	if err := k.Load(env.Provider("DEPVIZ_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "DEPVIZ_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Theme != "" && !dashboard.ValidTheme(c.Theme) {
		return fmt.Errorf("invalid theme %q: must be one of %s", c.Theme, strings.Join(dashboard.Themes, ", "))
	}
	if c.GodFileThreshold <= 0 {
		return fmt.Errorf("god_file_threshold must be positive")
	}
	if c.TopImports <= 0 {
		return fmt.Errorf("top_imports must be positive")
	}
	if c.SearchDebounceMS < 0 {
		return fmt.Errorf("search_debounce_ms must be non-negative")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if err := dataset.ValidatePatterns(c.Exclude); err != nil {
		return err
	}
	return nil
}

// Snapshot returns the settings used to build dashboard snapshots.
func (c *Config) Snapshot() dashboard.Config {
	return dashboard.Config{
		Index: index.Options{
			GodFileThreshold: c.GodFileThreshold,
			TopImports:       c.TopImports,
		},
		LinkScheme: c.LinkScheme,
		Root:       c.Root,
		Exclude:    c.Exclude,
	}
}

// Dashboard returns the live dashboard options.
func (c *Config) Dashboard() dashboard.Options {
	return dashboard.Options{
		Theme:    c.Theme,
		Debounce: time.Duration(c.SearchDebounceMS) * time.Millisecond,
	}
}

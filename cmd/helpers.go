package cmd

import (
	"fmt"
	"log/slog"

	"github.com/ziadkadry99/depviz/internal/config"
	"github.com/ziadkadry99/depviz/internal/dashboard"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `depviz init` to create a config file", err)
	}
	if datasetFile != "" {
		cfg.Dataset = datasetFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadSnapshot loads the config and builds the snapshot of its dataset.
func loadSnapshot() (*config.Config, *dashboard.Snapshot, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	snap, err := dashboard.LoadSnapshot(cfg.Dataset, cfg.Snapshot())
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("dataset loaded", "path", cfg.Dataset, "files", len(snap.Dataset.Files))
	return cfg, snap, nil
}

package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/depviz/internal/dashboard"
)

// datasetCandidates are file names a scanner commonly writes.
var datasetCandidates = []string{"depviz.json", "deps.json", "dependencies.json", "*.deps.json"}

// detectDataset returns the first dataset-looking file in the current directory.
func detectDataset() string {
	for _, pattern := range datasetCandidates {
		matches, _ := filepath.Glob(pattern)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to depviz! Let's configure your dashboard.")
	fmt.Println()

	cfg := DefaultConfig()
	if found := detectDataset(); found != "" {
		fmt.Printf("Found dataset: %s\n\n", found)
		cfg.Dataset = found
	}

	datasetPrompt := promptui.Prompt{
		Label:   "Dataset file",
		Default: cfg.Dataset,
	}
	ds, err := datasetPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	cfg.Dataset = ds

	rootPrompt := promptui.Prompt{
		Label:   "Project root for editor links (blank to use the dataset's)",
		Default: cfg.Root,
	}
	if cfg.Root, err = rootPrompt.Run(); err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}

	themePrompt := promptui.Select{
		Label: "Select theme",
		Items: dashboard.Themes,
	}
	if _, cfg.Theme, err = themePrompt.Run(); err != nil {
		return nil, fmt.Errorf("theme selection: %w", err)
	}

	schemePrompt := promptui.Select{
		Label: "Open files with",
		Items: []string{"vscode://file", "cursor://file", "idea://open?file=", "file://"},
	}
	if _, cfg.LinkScheme, err = schemePrompt.Run(); err != nil {
		return nil, fmt.Errorf("link scheme: %w", err)
	}

	portPrompt := promptui.Prompt{
		Label:    "Dashboard port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	cfg.Exclude = append(cfg.Exclude, splitAndTrim(excludeStr)...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("port must be a number between 0 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}

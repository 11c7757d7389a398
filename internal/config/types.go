package config

// Config is the top-level depviz configuration, corresponding to .depviz.yml.
type Config struct {
	Dataset          string   `yaml:"dataset" koanf:"dataset"`
	Root             string   `yaml:"root" koanf:"root"`
	Port             int      `yaml:"port" koanf:"port"`
	OutputDir        string   `yaml:"output_dir" koanf:"output_dir"`
	Theme            string   `yaml:"theme" koanf:"theme"`
	LinkScheme       string   `yaml:"link_scheme" koanf:"link_scheme"`
	Exclude          []string `yaml:"exclude" koanf:"exclude"`
	GodFileThreshold int      `yaml:"god_file_threshold" koanf:"god_file_threshold"`
	TopImports       int      `yaml:"top_imports" koanf:"top_imports"`
	SearchDebounceMS int      `yaml:"search_debounce_ms" koanf:"search_debounce_ms"`
	AllowAllOrigins  bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".depviz.yml"

// DefaultExcludes are glob patterns dropped from the dataset by default.
var DefaultExcludes = []string{
	"node_modules/**",
	"vendor/**",
	"dist/**",
	"*.min.js",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Dataset:          "depviz.json",
		Port:             8080,
		OutputDir:        "depviz-site",
		Theme:            "dark",
		LinkScheme:       "vscode://file",
		Exclude:          append([]string(nil), DefaultExcludes...),
		GodFileThreshold: 10,
		TopImports:       5,
		SearchDebounceMS: 150,
	}
}

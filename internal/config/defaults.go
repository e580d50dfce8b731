package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/gridsnake.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: Grid{Size: 30},
		Game: Game{StartLevel: 5},
		UI:   UI{ShowHelp: true},
	}
}

// defaultFromEmbed parses the embedded YAML, falling back to the hardcoded
// defaults if the embed is somehow unreadable.
func defaultFromEmbed() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	cfg.Normalize()
	return cfg
}

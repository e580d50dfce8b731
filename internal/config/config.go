// Package config provides YAML-based configuration loading for gridsnake.
package config

// Config contains all tunable settings for the game.
type Config struct {
	Grid Grid `yaml:"grid"`
	Game Game `yaml:"game"`
	UI   UI   `yaml:"ui"`
}

// Grid defines the board geometry. The board is always square.
type Grid struct {
	Size int `yaml:"size"` // cells per side
}

// Game defines gameplay parameters.
type Game struct {
	// StartLevel is the level the game begins (and restarts) with. The
	// in-game selector accepts 1-10; this is the initial slider position.
	StartLevel int `yaml:"start_level"`
}

// UI defines presentation options.
type UI struct {
	ShowHelp bool `yaml:"show_help"` // key help footer under the board
}

// Normalize replaces unusable values with defaults. Loading never fails on
// odd numbers in a config file; it degrades to something playable.
func (c *Config) Normalize() {
	def := Default()
	if c.Grid.Size < 5 {
		c.Grid.Size = def.Grid.Size
	}
	if c.Game.StartLevel < 1 || c.Game.StartLevel > 10 {
		c.Game.StartLevel = def.Game.StartLevel
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Grid.Size != 30 {
		t.Errorf("default grid size = %d, expected 30", cfg.Grid.Size)
	}
	if cfg.Game.StartLevel != 5 {
		t.Errorf("default start level = %d, expected 5", cfg.Game.StartLevel)
	}
	if !cfg.UI.ShowHelp {
		t.Error("help footer should be enabled by default")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	if got, want := defaultFromEmbed(), Default(); got != want {
		t.Errorf("embedded default = %+v, expected %+v", got, want)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "grid:\n  size: 12\ngame:\n  start_level: 3\nui:\n  show_help: false\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Size != 12 {
		t.Errorf("grid size = %d, expected 12", cfg.Grid.Size)
	}
	if cfg.Game.StartLevel != 3 {
		t.Errorf("start level = %d, expected 3", cfg.Game.StartLevel)
	}
	if cfg.UI.ShowHelp {
		t.Error("show_help should be false")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("unparseable explicit config should be an error")
	}
}

func TestNormalizeRepairsValues(t *testing.T) {
	cfg := Config{Grid: Grid{Size: 2}, Game: Game{StartLevel: 0}}
	cfg.Normalize()

	if cfg.Grid.Size != 30 {
		t.Errorf("grid size = %d, expected repair to 30", cfg.Grid.Size)
	}
	if cfg.Game.StartLevel != 5 {
		t.Errorf("start level = %d, expected repair to 5", cfg.Game.StartLevel)
	}
}

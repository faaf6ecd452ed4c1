package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != DefaultPongConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultPongConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
}

func TestLoadPongCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pong.yaml")
	data := []byte("gameplay:\n  win_score: 3\nball:\n  speed: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, src, err := LoadPong(path)
	if err != nil {
		t.Fatalf("LoadPong() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected %q", src, SourceCustom)
	}
	if cfg.Gameplay.WinScore != 3 {
		t.Errorf("WinScore = %d, expected 3", cfg.Gameplay.WinScore)
	}
	if cfg.Ball.Speed != 9 {
		t.Errorf("Ball.Speed = %v, expected 9", cfg.Ball.Speed)
	}
	// Unspecified keys keep their defaults
	if cfg.Paddles.Height != DefaultPongConfig().Paddles.Height {
		t.Errorf("Paddles.Height = %v, expected default", cfg.Paddles.Height)
	}
}

func TestLoadPongMissingCustomPath(t *testing.T) {
	_, _, err := LoadPong(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadPong() with missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadPongInvalidCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("paddles:\n  height: 5000\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, _, err := LoadPong(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadPong() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadPongMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("field: [unterminated"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, _, err := LoadPong(path); err == nil {
		t.Error("LoadPong() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero field", func(c *PongConfig) { c.Field.Width = 0 }},
		{"margin eats field", func(c *PongConfig) { c.Field.Margin = 400 }},
		{"paddle too tall", func(c *PongConfig) { c.Paddles.Height = 1000 }},
		{"zero paddle speed", func(c *PongConfig) { c.Paddles.Speed = 0 }},
		{"zero ball speed", func(c *PongConfig) { c.Ball.Speed = 0 }},
		{"zero min rise", func(c *PongConfig) { c.Ball.MinRise = 0 }},
		{"inverted rise range", func(c *PongConfig) { c.Ball.MinRise, c.Ball.MaxRise = 0.8, 0.2 }},
		{"cpu faster than paddle", func(c *PongConfig) { c.CPU.SpeedFactor = 1.5 }},
		{"zero win score", func(c *PongConfig) { c.Gameplay.WinScore = 0 }},
		{"loud volume", func(c *PongConfig) { c.Audio.Volume = 2 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

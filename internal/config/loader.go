package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is the project-relative config location.
const localConfigPath = "configs/pong.yaml"

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.pong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadPong(customPath string) (PongConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PongConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(localConfigPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML over the built-in defaults and validates the result.
func parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "configs", filename)
}

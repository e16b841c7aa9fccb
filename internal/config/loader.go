package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTron loads the light cycle configuration.
// Search order: customPath -> ~/.lightcycle/configs/tron.yaml -> ./configs/tron.yaml -> embedded default
func LoadTron(customPath string) (TronConfig, error) {
	// Start from defaults so partial files only override what they set
	cfg := DefaultTronConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tron.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "tron.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTronYAML, &cfg); err != nil {
		return DefaultTronConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; any failure means "not found".
func tryLoad(path string) (TronConfig, bool) {
	cfg := DefaultTronConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// Validate rejects configurations the engine cannot run with.
func (c TronConfig) Validate() error {
	if c.Grid.Width < 8 || c.Grid.Height < 8 {
		return fmt.Errorf("grid must be at least 8x8, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Trail.Length < 1 {
		return fmt.Errorf("trail length must be positive, got %d", c.Trail.Length)
	}
	if c.Timing.MinTickMS <= 0 || c.Timing.BaseTickMS < c.Timing.MinTickMS {
		return fmt.Errorf("invalid tick timing base=%d min=%d", c.Timing.BaseTickMS, c.Timing.MinTickMS)
	}
	if c.Scoring.BonusWindowMS <= 0 {
		return fmt.Errorf("bonus window must be positive, got %d", c.Scoring.BonusWindowMS)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lightcycle", "configs", filename)
}

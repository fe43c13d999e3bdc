package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRoadRage loads Road Rage configuration and validates it.
// Search order: customPath -> ~/.arcade/configs/roadrage.yaml -> ./configs/roadrage.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names.
func LoadRoadRage(customPath string) (RoadRageConfig, error) {
	cfg, err := loadRoadRage(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadRoadRage(customPath string) (RoadRageConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRoadRageConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseRoadRage(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("roadrage.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseRoadRage(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "roadrage.yaml")); err == nil {
		if cfg, err := ParseRoadRage(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseRoadRage(defaultRoadRageYAML)
	if err != nil {
		return DefaultRoadRageConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseRoadRage decodes YAML on top of the built-in defaults.
func ParseRoadRage(data []byte) (RoadRageConfig, error) {
	cfg := DefaultRoadRageConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRoadRageConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

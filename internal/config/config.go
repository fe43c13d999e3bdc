// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal renders the configuration back to YAML, in the same layout as
// the embedded defaults.
func (c RoadRageConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal roadrage config: %w", err)
	}
	return data, nil
}

package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseSettingsYAML parses Settings from YAML bytes and validates them.
func ParseSettingsYAML(data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings yaml: %w", err)
	}

	applyDefaults(&settings)

	if err := validateSettings(&settings); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &settings, nil
}

// ParseSettingsYAMLString parses Settings from a YAML string and validates them.
func ParseSettingsYAMLString(yamlText string) (*Settings, error) {
	return ParseSettingsYAML([]byte(yamlText))
}

func applyDefaults(settings *Settings) {
	if settings.LogLevel == "" {
		settings.LogLevel = "info"
	}
}

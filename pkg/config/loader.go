package config

import (
	"fmt"
	"net/url"
	"os"
)

// LoadSettings loads and parses a settings file
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	settings, err := ParseSettingsYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return settings, nil
}

// validateSettings performs validation on the settings
func validateSettings(settings *Settings) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[settings.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", settings.LogLevel)
	}

	if settings.Limits.NumberOfActors <= 0 {
		return fmt.Errorf("number_of_actors must be positive, got %d", settings.Limits.NumberOfActors)
	}
	if settings.Limits.MaxPostsPerActor <= 0 {
		return fmt.Errorf("max_posts_per_actor must be positive, got %d", settings.Limits.MaxPostsPerActor)
	}
	if settings.Limits.MaxLikesPerActor <= 0 {
		return fmt.Errorf("max_likes_per_actor must be positive, got %d", settings.Limits.MaxLikesPerActor)
	}

	if settings.API.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds cannot be negative, got %d", settings.API.TimeoutSeconds)
	}

	// The remote credentials only matter when the bot actually talks to the network
	if !settings.API.FakeMode {
		if settings.API.BaseURL == "" {
			return fmt.Errorf("base_url is required when fake_mode is off")
		}
		parsed, err := url.Parse(settings.API.BaseURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("base_url is not a valid absolute URL: %s", settings.API.BaseURL)
		}
		if settings.API.Password == "" {
			return fmt.Errorf("password is required when fake_mode is off")
		}
		if settings.API.Email == "" {
			return fmt.Errorf("email is required when fake_mode is off")
		}
	}

	return nil
}

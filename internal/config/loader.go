package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid jumper config")

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadJumper(customPath string) (JumperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return JumperConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "jumper.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return JumperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return JumperConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration describes a playable field.
func (c JumperConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have a positive size, got %vx%v", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player must have a positive size", ErrInvalidConfig)
	case c.Player.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed must not be negative", ErrInvalidConfig)
	case c.Platforms.Count < 1:
		return fmt.Errorf("%w: platforms.count must be at least 1, got %d", ErrInvalidConfig, c.Platforms.Count)
	case c.Platforms.Width <= 0 || c.Platforms.Height <= 0:
		return fmt.Errorf("%w: platforms must have a positive size", ErrInvalidConfig)
	case c.Platforms.Width > c.Field.Width:
		return fmt.Errorf("%w: platform width %v exceeds field width %v", ErrInvalidConfig, c.Platforms.Width, c.Field.Width)
	case c.Platforms.Spacing <= 0:
		return fmt.Errorf("%w: platforms.spacing must be positive", ErrInvalidConfig)
	case c.Camera.ScrollLine <= 0 || c.Camera.ScrollLine >= c.Field.Height:
		return fmt.Errorf("%w: camera.scroll_line must lie inside the field", ErrInvalidConfig)
	case c.Terminal.ReleaseTicks < 1:
		return fmt.Errorf("%w: terminal.release_ticks must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}

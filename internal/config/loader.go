package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "breakout.yaml"

// LoadBreakout loads the game configuration.
// Search order: customPath -> ~/.breakthrough/configs/breakout.yaml ->
// ./configs/breakout.yaml -> embedded default -> hardcoded default.
// Files only need to contain the keys they override.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first; errors here are reported, not skipped
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse overlays YAML on the hardcoded defaults and validates the result.
func parse(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakthrough", "configs", filename)
}

// Validate rejects values the simulation cannot work with.
func (c BreakoutConfig) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.Window.Width {
		errs = append(errs, fmt.Errorf("player width %v exceeds window width %v", c.Player.Width, c.Window.Width))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.Particles < 0 || c.Gameplay.ParticlesPerTick < 0 {
		errs = append(errs, errors.New("particle counts must not be negative"))
	}
	if c.Gameplay.LevelHeightRatio <= 0 || c.Gameplay.LevelHeightRatio > 1 {
		errs = append(errs, fmt.Errorf("level_height_ratio must be in (0, 1], got %v", c.Gameplay.LevelHeightRatio))
	}
	if c.PowerUps.Width <= 0 || c.PowerUps.Height <= 0 {
		errs = append(errs, fmt.Errorf("power-up size must be positive, got %vx%v", c.PowerUps.Width, c.PowerUps.Height))
	}
	for name, p := range c.PowerUps.Types {
		if p.Chance < 0 {
			errs = append(errs, fmt.Errorf("power-up %s: chance must not be negative, got %d", name, p.Chance))
		}
		if p.Duration < 0 {
			errs = append(errs, fmt.Errorf("power-up %s: duration must not be negative, got %v", name, p.Duration))
		}
	}

	return errors.Join(errs...)
}

package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the accepted preset names in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// presetScaling is how a preset changes the loaded config.
type presetScaling struct {
	lives       int
	paddleScale float32 // Multiplies paddle width
	speedScale  float32 // Multiplies ball launch velocity
	badChance   float32 // Multiplies the chance of confuse/chaos (higher = rarer)
}

var presets = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {lives: 5, paddleScale: 1.5, speedScale: 0.8, badChance: 2},
	DifficultyNormal: {lives: 3, paddleScale: 1, speedScale: 1, badChance: 1},
	DifficultyHard:   {lives: 2, paddleScale: 0.75, speedScale: 1.3, badChance: 0.5},
}

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	s, ok := presets[preset]
	if !ok {
		return
	}

	cfg.Gameplay.Lives = s.lives
	cfg.Player.Width *= s.paddleScale
	if cfg.Player.Width > cfg.Window.Width {
		cfg.Player.Width = cfg.Window.Width
	}
	cfg.Ball.VelocityX *= s.speedScale
	cfg.Ball.VelocityY *= s.speedScale

	for _, name := range []string{PowerUpConfuse, PowerUpChaos} {
		p, ok := cfg.PowerUps.Types[name]
		if !ok || p.Chance == 0 {
			continue
		}
		p.Chance = max(1, int(float32(p.Chance)*s.badChance))
		cfg.PowerUps.Types[name] = p
	}
}

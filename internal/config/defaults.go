package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// Power-up kind names used as keys in PowerUpsConfig.Types.
const (
	PowerUpSpeed       = "speed"
	PowerUpSticky      = "sticky"
	PowerUpPassThrough = "pass-through"
	PowerUpPadIncrease = "pad-size-increase"
	PowerUpConfuse     = "confuse"
	PowerUpChaos       = "chaos"
)

// DefaultBreakoutConfig returns the built-in configuration. It matches the
// embedded defaults/breakout.yaml and is used when that cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:    100,
			Height:   20,
			Velocity: 500,
		},
		Ball: BallConfig{
			Radius:    12.5,
			VelocityX: 100,
			VelocityY: -350,
		},
		Gameplay: GameplayConfig{
			Lives:            3,
			PaddleStrength:   2,
			ShakeDuration:    0.05,
			Particles:        500,
			ParticlesPerTick: 2,
			LevelHeightRatio: 0.5,
		},
		PowerUps: PowerUpsConfig{
			Width:           60,
			Height:          20,
			FallSpeed:       150,
			SpeedMultiplier: 1.2,
			PadIncrease:     50,
			Types: map[string]PowerUpConfig{
				PowerUpSpeed:       {Chance: 75, Duration: 0},
				PowerUpSticky:      {Chance: 75, Duration: 20},
				PowerUpPassThrough: {Chance: 75, Duration: 10},
				PowerUpPadIncrease: {Chance: 75, Duration: 0},
				PowerUpConfuse:     {Chance: 15, Duration: 15},
				PowerUpChaos:       {Chance: 15, Duration: 15},
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   true,
			Volume:  -1,
		},
		Log: LogConfig{
			Level:  "info",
			Buffer: 256,
		},
	}
}

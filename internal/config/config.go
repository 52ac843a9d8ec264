// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

// BreakoutConfig contains all tunable parameters of the game.
type BreakoutConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Player   PlayerConfig   `yaml:"player"`
	Ball     BallConfig     `yaml:"ball"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	PowerUps PowerUpsConfig `yaml:"powerups"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// WindowConfig is the size of the playfield in world pixels.
type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Width    float32 `yaml:"width"`
	Height   float32 `yaml:"height"`
	Velocity float32 `yaml:"velocity"` // Pixels per second
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius    float32 `yaml:"radius"`
	VelocityX float32 `yaml:"velocity_x"` // Launch velocity, pixels per second
	VelocityY float32 `yaml:"velocity_y"`
}

// GameplayConfig holds rules that are not tied to one object.
type GameplayConfig struct {
	Lives            int     `yaml:"lives"`
	PaddleStrength   float32 `yaml:"paddle_strength"`  // Horizontal deflection factor
	ShakeDuration    float32 `yaml:"shake_duration"`   // Seconds of shake on solid hits
	Particles        int     `yaml:"particles"`        // Trail pool size
	ParticlesPerTick int     `yaml:"particles_per_tick"`
	LevelHeightRatio float32 `yaml:"level_height_ratio"` // Share of the window used by bricks
}

// PowerUpsConfig defines falling power-ups and their effects.
type PowerUpsConfig struct {
	Width           float32                  `yaml:"width"`
	Height          float32                  `yaml:"height"`
	FallSpeed       float32                  `yaml:"fall_speed"`
	SpeedMultiplier float32                  `yaml:"speed_multiplier"`
	PadIncrease     float32                  `yaml:"pad_increase"`
	Types           map[string]PowerUpConfig `yaml:"types"`
}

// PowerUpConfig tunes one power-up kind. A chance of N means a 1 in N roll
// per destroyed brick; 0 disables the kind. Duration 0 marks a one-shot
// effect.
type PowerUpConfig struct {
	Chance   int     `yaml:"chance"`
	Duration float32 `yaml:"duration"`
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`
	Volume  float64 `yaml:"volume"` // Relative volume, 0 is unchanged, negative is quieter
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level  string `yaml:"level"` // debug, info, warn, error
	Buffer int    `yaml:"buffer"`
}

// LevelsConfig selects level files.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Empty means the built-in levels
}

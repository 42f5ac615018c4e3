// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for the catch game.
package config

import "time"

// CatchConfig contains all configuration for the catch game.
// All distances are world units; the platform scales them to the terminal.
type CatchConfig struct {
	Screen  ScreenConfig     `yaml:"screen"`
	Player  PlayerConfig     `yaml:"player"`
	Items   ItemsConfig      `yaml:"items"`
	Round   RoundConfig      `yaml:"round"`
	Catalog []ItemKindConfig `yaml:"catalog"`
	Grades  []GradeConfig    `yaml:"grades"`
}

// ScreenConfig defines the playfield size.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Ground float64 `yaml:"ground"` // Height of the ground strip at the bottom
}

// PlayerConfig defines the paddle.
type PlayerConfig struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`         // Units per tick
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the bottom edge to the paddle center
}

// ItemsConfig defines falling item geometry and spawn pacing.
type ItemsConfig struct {
	Size            float64 `yaml:"size"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// SpawnInterval returns the spawn interval as a duration.
func (c ItemsConfig) SpawnInterval() time.Duration {
	return time.Duration(c.SpawnIntervalMS) * time.Millisecond
}

// RoundConfig defines round length and lives.
type RoundConfig struct {
	DurationSecs int `yaml:"duration_secs"`
	Lives        int `yaml:"lives"`
}

// ItemKindConfig is one catalog entry. A negative score marks a bomb.
type ItemKindConfig struct {
	Name   string  `yaml:"name"`
	Symbol string  `yaml:"symbol"`
	Color  string  `yaml:"color"`
	Score  int     `yaml:"score"`
	Weight int     `yaml:"weight"` // Parts per 100
	Speed  float64 `yaml:"speed"`  // Fall distance per tick
}

// GradeConfig is one grade tier.
type GradeConfig struct {
	MinScore int    `yaml:"min_score"`
	Tier     string `yaml:"tier"`
	Title    string `yaml:"title"`
	Message  string `yaml:"message"`
}

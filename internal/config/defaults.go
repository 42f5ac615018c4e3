package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the default catch game configuration.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Screen: ScreenConfig{
			Width:  400,
			Height: 600,
			Ground: 40,
		},
		Player: PlayerConfig{
			Size:         50,
			Speed:        8,
			BottomOffset: 80,
		},
		Items: ItemsConfig{
			Size:            40,
			SpawnIntervalMS: 800,
		},
		Round: RoundConfig{
			DurationSecs: 60,
			Lives:        3,
		},
		Catalog: []ItemKindConfig{
			{Name: "pizza", Symbol: "P", Color: "orange", Score: 10, Weight: 40, Speed: 3},
			{Name: "burger", Symbol: "B", Color: "brown", Score: 20, Weight: 30, Speed: 4},
			{Name: "chicken", Symbol: "C", Color: "peach", Score: 30, Weight: 20, Speed: 5},
			{Name: "star", Symbol: "★", Color: "bright_yellow", Score: 100, Weight: 5, Speed: 6},
			{Name: "bomb", Symbol: "X", Color: "gray", Score: -1, Weight: 5, Speed: 4},
		},
		Grades: []GradeConfig{
			{MinScore: 500, Tier: "LEGEND", Title: "Legendary Glutton", Message: "The god of mukbang has descended!"},
			{MinScore: 300, Tier: "GOLD", Title: "Mukbang Star", Message: "Amazing!"},
			{MinScore: 100, Tier: "SILVER", Title: "Rising Eater", Message: "Not bad at all!"},
			{MinScore: 0, Tier: "BRONZE", Title: "Hungry Rookie", Message: "Eat harder next time!"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCatchYAML
}

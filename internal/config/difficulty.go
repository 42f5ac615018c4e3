package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
// Presets are applied once at load time; nothing adapts during a round.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetTuning holds the multipliers a preset applies to the loaded config.
type presetTuning struct {
	spawnInterval float64 // Multiplier on items.spawn_interval_ms
	playerSpeed   float64 // Multiplier on player.speed
	fallSpeed     float64 // Multiplier on every catalog speed
}

var presets = map[DifficultyPreset]presetTuning{
	DifficultyEasy:   {spawnInterval: 1.25, playerSpeed: 1.25, fallSpeed: 0.8},
	DifficultyNormal: {spawnInterval: 1, playerSpeed: 1, fallSpeed: 1},
	DifficultyHard:   {spawnInterval: 0.75, playerSpeed: 0.9, fallSpeed: 1.3},
}

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(s)
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
// The catalog slice is copied so the caller's entries are left untouched.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	t, ok := presets[preset]
	if !ok {
		return
	}

	cfg.Items.SpawnIntervalMS = int(math.Round(float64(cfg.Items.SpawnIntervalMS) * t.spawnInterval))
	cfg.Player.Speed *= t.playerSpeed

	catalog := make([]ItemKindConfig, len(cfg.Catalog))
	for i, k := range cfg.Catalog {
		k.Speed *= t.fallSpeed
		catalog[i] = k
	}
	cfg.Catalog = catalog
}

package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/mukbang/internal/core"
)

// TotalSpawnWeight is the required sum of catalog spawn weights.
const TotalSpawnWeight = 100

// ValidationError describes a configuration that cannot start a session.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks every invariant the game relies on and returns the first
// violation as a ValidationError.
func Validate(cfg CatchConfig) error {
	if err := validateDimensions(cfg); err != nil {
		return err
	}
	if err := validateCatalog(cfg.Catalog); err != nil {
		return err
	}
	return validateGrades(cfg.Grades)
}

func validateDimensions(cfg CatchConfig) error {
	positive := []struct {
		field string
		value float64
	}{
		{"screen.width", cfg.Screen.Width},
		{"screen.height", cfg.Screen.Height},
		{"player.size", cfg.Player.Size},
		{"player.speed", cfg.Player.Speed},
		{"items.size", cfg.Items.Size},
		{"items.spawn_interval_ms", float64(cfg.Items.SpawnIntervalMS)},
		{"round.duration_secs", float64(cfg.Round.DurationSecs)},
		{"round.lives", float64(cfg.Round.Lives)},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{
				Code:    "BAD_DIMENSION",
				Message: fmt.Sprintf("%s must be positive, got %v", p.field, p.value),
			}
		}
	}

	if cfg.Player.Size > cfg.Screen.Width {
		return ValidationError{
			Code:    "BAD_DIMENSION",
			Message: fmt.Sprintf("player.size %v is wider than screen.width %v", cfg.Player.Size, cfg.Screen.Width),
		}
	}
	if cfg.Player.BottomOffset < 0 || cfg.Player.BottomOffset > cfg.Screen.Height {
		return ValidationError{
			Code:    "BAD_DIMENSION",
			Message: fmt.Sprintf("player.bottom_offset %v must be within [0, %v]", cfg.Player.BottomOffset, cfg.Screen.Height),
		}
	}
	if cfg.Screen.Ground < 0 || cfg.Screen.Ground > cfg.Screen.Height {
		return ValidationError{
			Code:    "BAD_DIMENSION",
			Message: fmt.Sprintf("screen.ground %v must be within [0, %v]", cfg.Screen.Ground, cfg.Screen.Height),
		}
	}

	// Items spawn with x in [size, width-size].
	if 2*cfg.Items.Size > cfg.Screen.Width {
		return ValidationError{
			Code:    "SPAWN_RANGE",
			Message: fmt.Sprintf("items.size %v leaves no spawn column on a %v wide screen", cfg.Items.Size, cfg.Screen.Width),
		}
	}
	return nil
}

func validateCatalog(kinds []ItemKindConfig) error {
	if len(kinds) == 0 {
		return ValidationError{Code: "EMPTY_CATALOG", Message: "catalog has no item kinds"}
	}

	seen := make(map[string]bool, len(kinds))
	sum := 0
	for i, k := range kinds {
		if k.Name == "" {
			return ValidationError{
				Code:    "BAD_KIND",
				Message: fmt.Sprintf("catalog entry %d has no name", i),
			}
		}
		if seen[k.Name] {
			return ValidationError{
				Code:    "DUPLICATE_KIND",
				Message: fmt.Sprintf("item kind %q is declared twice", k.Name),
			}
		}
		seen[k.Name] = true

		if utf8.RuneCountInString(k.Symbol) != 1 {
			return ValidationError{
				Code:    "BAD_SYMBOL",
				Message: fmt.Sprintf("item kind %q: symbol must be a single character, got %q", k.Name, k.Symbol),
			}
		}
		if _, ok := core.ParseColor(k.Color); !ok {
			return ValidationError{
				Code:    "BAD_COLOR",
				Message: fmt.Sprintf("item kind %q: unknown color %q", k.Name, k.Color),
			}
		}
		if k.Weight < 1 || k.Weight > TotalSpawnWeight {
			return ValidationError{
				Code:    "WEIGHT_RANGE",
				Message: fmt.Sprintf("item kind %q: weight %d outside [1, %d]", k.Name, k.Weight, TotalSpawnWeight),
			}
		}
		if k.Speed <= 0 {
			return ValidationError{
				Code:    "BAD_DIMENSION",
				Message: fmt.Sprintf("item kind %q: speed must be positive, got %v", k.Name, k.Speed),
			}
		}
		sum += k.Weight
	}

	if sum != TotalSpawnWeight {
		return ValidationError{
			Code:    "WEIGHT_SUM",
			Message: fmt.Sprintf("catalog weights sum to %d, expected %d", sum, TotalSpawnWeight),
		}
	}
	return nil
}

func validateGrades(grades []GradeConfig) error {
	if len(grades) == 0 {
		return ValidationError{Code: "EMPTY_GRADES", Message: "grade table is empty"}
	}

	for i := 1; i < len(grades); i++ {
		if grades[i].MinScore >= grades[i-1].MinScore {
			return ValidationError{
				Code: "GRADE_ORDER",
				Message: fmt.Sprintf("grade %q (min %d) must be below %q (min %d)",
					grades[i].Title, grades[i].MinScore, grades[i-1].Title, grades[i-1].MinScore),
			}
		}
	}

	if last := grades[len(grades)-1]; last.MinScore != 0 {
		return ValidationError{
			Code:    "GRADE_FLOOR",
			Message: fmt.Sprintf("last grade %q must start at 0, got %d", last.Title, last.MinScore),
		}
	}
	return nil
}

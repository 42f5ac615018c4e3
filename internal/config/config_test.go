package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCatchConfig()) {
		t.Errorf("embedded YAML and DefaultCatchConfig() differ:\n%+v\n%+v", cfg, DefaultCatchConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Validate(DefaultCatchConfig()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatchConfig)
		code   string
	}{
		{
			name:   "weights below 100",
			mutate: func(c *CatchConfig) { c.Catalog[0].Weight = 39 },
			code:   "WEIGHT_SUM",
		},
		{
			name:   "weights above 100",
			mutate: func(c *CatchConfig) { c.Catalog[0].Weight = 41 },
			code:   "WEIGHT_SUM",
		},
		{
			name:   "zero weight",
			mutate: func(c *CatchConfig) { c.Catalog[4].Weight = 0; c.Catalog[0].Weight = 45 },
			code:   "WEIGHT_RANGE",
		},
		{
			name:   "empty catalog",
			mutate: func(c *CatchConfig) { c.Catalog = nil },
			code:   "EMPTY_CATALOG",
		},
		{
			name:   "duplicate kind",
			mutate: func(c *CatchConfig) { c.Catalog[1].Name = "pizza" },
			code:   "DUPLICATE_KIND",
		},
		{
			name:   "multi-character symbol",
			mutate: func(c *CatchConfig) { c.Catalog[0].Symbol = "PZ" },
			code:   "BAD_SYMBOL",
		},
		{
			name:   "unknown color",
			mutate: func(c *CatchConfig) { c.Catalog[0].Color = "chartreuse" },
			code:   "BAD_COLOR",
		},
		{
			name:   "grades not descending",
			mutate: func(c *CatchConfig) { c.Grades[0].MinScore, c.Grades[1].MinScore = 300, 500 },
			code:   "GRADE_ORDER",
		},
		{
			name:   "grades with duplicate threshold",
			mutate: func(c *CatchConfig) { c.Grades[1].MinScore = 500 },
			code:   "GRADE_ORDER",
		},
		{
			name:   "missing zero floor",
			mutate: func(c *CatchConfig) { c.Grades = c.Grades[:3] },
			code:   "GRADE_FLOOR",
		},
		{
			name:   "empty grade table",
			mutate: func(c *CatchConfig) { c.Grades = nil },
			code:   "EMPTY_GRADES",
		},
		{
			name:   "zero spawn interval",
			mutate: func(c *CatchConfig) { c.Items.SpawnIntervalMS = 0 },
			code:   "BAD_DIMENSION",
		},
		{
			name:   "player wider than screen",
			mutate: func(c *CatchConfig) { c.Player.Size = 500 },
			code:   "BAD_DIMENSION",
		},
		{
			name:   "no spawn column",
			mutate: func(c *CatchConfig) { c.Items.Size = 250 },
			code:   "SPAWN_RANGE",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultCatchConfig()
			tc.mutate(&cfg)

			err := Validate(cfg)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s (%s)", verr.Code, tc.code, verr.Message)
			}
		})
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("round:\n  duration_secs: 30\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Round.DurationSecs != 30 {
		t.Errorf("duration = %d, expected 30", cfg.Round.DurationSecs)
	}
	if cfg.Round.Lives != 3 || len(cfg.Catalog) != 5 {
		t.Error("fields absent from the file should keep their defaults")
	}
}

func TestParseReplacesCatalog(t *testing.T) {
	data := `
catalog:
  - name: rice
    symbol: R
    color: white
    score: 5
    weight: 100
    speed: 2
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(cfg.Catalog) != 1 || cfg.Catalog[0].Name != "rice" {
		t.Errorf("catalog should be replaced, got %+v", cfg.Catalog)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "screen:\n  widht: 400\n"},
		{"bad weights", "catalog:\n  - {name: a, symbol: A, color: red, score: 1, weight: 50, speed: 1}\n"},
		{"not yaml", "screen: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultCatchConfig()) {
		t.Error("empty input should yield the defaults")
	}
}

func TestLoadCatchCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catch.yaml")
	if err := os.WriteFile(path, []byte("items:\n  spawn_interval_ms: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadCatch(path)
	if err != nil {
		t.Fatalf("LoadCatch() error: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Items.SpawnIntervalMS != 500 {
		t.Errorf("spawn interval = %d, expected 500", cfg.Items.SpawnIntervalMS)
	}
}

func TestLoadCatchInvalidFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catch.yaml")
	if err := os.WriteFile(path, []byte("grades:\n  - {min_score: 10, tier: A, title: a, message: m}\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := LoadCatch(path)
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Code != "GRADE_FLOOR" {
		t.Fatalf("expected GRADE_FLOOR validation error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestLoadCatchMissingCustomPath(t *testing.T) {
	if _, _, err := LoadCatch(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestApplyCatchPreset(t *testing.T) {
	base := DefaultCatchConfig()

	hard := DefaultCatchConfig()
	ApplyCatchPreset(&hard, DifficultyHard)
	if hard.Items.SpawnIntervalMS != 600 {
		t.Errorf("hard spawn interval = %d, expected 600", hard.Items.SpawnIntervalMS)
	}
	if hard.Catalog[0].Speed <= base.Catalog[0].Speed {
		t.Error("hard should make items fall faster")
	}

	easy := DefaultCatchConfig()
	ApplyCatchPreset(&easy, DifficultyEasy)
	if easy.Items.SpawnIntervalMS != 1000 {
		t.Errorf("easy spawn interval = %d, expected 1000", easy.Items.SpawnIntervalMS)
	}
	if easy.Player.Speed != 10 {
		t.Errorf("easy player speed = %v, expected 10", easy.Player.Speed)
	}

	normal := DefaultCatchConfig()
	ApplyCatchPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}
	if err := Validate(hard); err != nil {
		t.Errorf("preset output should stay valid: %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names reported by LoadCatch when no file path applies.
const (
	SourceEmbedded = "embedded default"
)

// LoadCatch loads and validates the catch game configuration.
// Search order: customPath -> ~/.mukbang/configs/catch.yaml -> ./configs/catch.yaml -> embedded default.
// The second return value names where the configuration came from.
// A file that exists but fails to parse or validate is an error, never skipped.
func LoadCatch(customPath string) (CatchConfig, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatchConfig{}, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CatchConfig{}, customPath, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{"configs/catch.yaml"}
	if userCfgPath := userConfigPath("catch.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return CatchConfig{}, path, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CatchConfig{}, path, fmt.Errorf("config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	cfg, err := Parse(defaultCatchYAML)
	if err != nil {
		return DefaultCatchConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (CatchConfig, error) {
	cfg := DefaultCatchConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return CatchConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return CatchConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mukbang", "configs", filename)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const linesFile = "lines.yaml"

// LoadLines loads lines configuration.
// Search order: customPath -> ~/.lines/configs/lines.yaml -> ./configs/lines.yaml -> embedded default
//
// Files only need to set the keys they change; everything else keeps its
// default value.
func LoadLines(customPath string) (LinesConfig, error) {
	if customPath != "" {
		cfg, err := readLines(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User and local files are optional; broken ones are skipped.
	for _, path := range []string{userConfigPath(linesFile), filepath.Join("configs", linesFile)} {
		if path == "" {
			continue
		}
		if cfg, err := readLines(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultLinesConfig()
	if err := yaml.Unmarshal(defaultLinesYAML, &cfg); err != nil {
		return DefaultLinesConfig(), nil
	}
	return cfg, nil
}

// ParseLines decodes YAML on top of the defaults.
func ParseLines(data []byte) (LinesConfig, error) {
	cfg := DefaultLinesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, nil
}

func readLines(path string) (LinesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultLinesConfig(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := ParseLines(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lines", "configs", filename)
}

// ApplyLinesPreset modifies the config based on a difficulty preset.
func ApplyLinesPreset(cfg *LinesConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
		if cfg.Difficulty.Progression.Type == "" || cfg.Difficulty.Progression.Type == "none" {
			cfg.Difficulty.Progression.Type = "score"
		}
	}

	// Fewer colors line up more often.
	switch preset {
	case DifficultyEasy:
		cfg.Board.Colors = max(cfg.Board.Colors-1, 2)
		cfg.Difficulty.Scaling.ExtraSpawns = 1
	case DifficultyHard:
		cfg.Board.Colors = min(cfg.Board.Colors+1, MaxColors)
		cfg.Difficulty.Scaling.ExtraSpawns = 3
	}
}

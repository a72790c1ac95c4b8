// Package config provides YAML-based game configuration loading and
// difficulty management for lines.
package config

import (
	"errors"
	"fmt"
)

// LinesConfig contains all configuration for a lines game.
type LinesConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board and spawning rules.
type BoardConfig struct {
	Size          int `yaml:"size"`
	Colors        int `yaml:"colors"`
	InitialPieces int `yaml:"initial_pieces"`
	SpawnCount    int `yaml:"spawn_count"`
	RunLength     int `yaml:"run_length"`
	Preview       int `yaml:"preview"` // Upcoming pieces shown in the HUD
}

// ScoringConfig selects the scoring policy: "per_cell" or "classic".
type ScoringConfig struct {
	Policy string `yaml:"policy"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	ExtraSpawns int `yaml:"extra_spawns"` // Pieces added to each spawn at max difficulty
}

// MaxColors is the number of piece colors the terminal palette can tell apart.
const MaxColors = 8

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate rejects configurations no game can be played with.
func (c LinesConfig) Validate() error {
	b := c.Board
	switch {
	case b.Size < 1:
		return fmt.Errorf("%w: board.size must be positive, got %d", ErrInvalidConfig, b.Size)
	case b.Colors < 1 || b.Colors > MaxColors:
		return fmt.Errorf("%w: board.colors must be between 1 and %d, got %d", ErrInvalidConfig, MaxColors, b.Colors)
	case b.RunLength < 2 || b.RunLength > b.Size:
		return fmt.Errorf("%w: board.run_length %d does not fit size %d", ErrInvalidConfig, b.RunLength, b.Size)
	case b.InitialPieces < 0 || b.InitialPieces > b.Size*b.Size:
		return fmt.Errorf("%w: board.initial_pieces %d out of range", ErrInvalidConfig, b.InitialPieces)
	case b.SpawnCount < 0:
		return fmt.Errorf("%w: board.spawn_count must not be negative", ErrInvalidConfig)
	case b.Preview < 0:
		return fmt.Errorf("%w: board.preview must not be negative", ErrInvalidConfig)
	}

	switch c.Scoring.Policy {
	case "per_cell", "classic":
	default:
		return fmt.Errorf("%w: unknown scoring.policy %q", ErrInvalidConfig, c.Scoring.Policy)
	}

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "moves":
	default:
		return fmt.Errorf("%w: unknown difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	if c.Difficulty.Scaling.ExtraSpawns < 0 {
		return fmt.Errorf("%w: difficulty.scaling.extra_spawns must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. The empty string is allowed
// and means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

package config

import (
	_ "embed"
)

//go:embed defaults/lines.yaml
var defaultLinesYAML []byte

// DefaultLinesConfig returns the classic 9x9 configuration.
func DefaultLinesConfig() LinesConfig {
	return LinesConfig{
		Board: BoardConfig{
			Size:          9,
			Colors:        7,
			InitialPieces: 10,
			SpawnCount:    3,
			RunLength:     5,
			Preview:       3,
		},
		Scoring: ScoringConfig{
			Policy: "per_cell",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				ExtraSpawns: 2,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLinesYAML
}

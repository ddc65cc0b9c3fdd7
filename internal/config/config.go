// Package config provides YAML-based game configuration loading for the
// gemfall platform.
package config

import "fmt"

// Board limits mirrored from the rules engine so a bad config fails here,
// before a board is ever constructed.
const (
	minBoardSide = 3
	maxBoardSide = 32
	minColors    = 3
	maxColors    = 5
)

// Config contains all configuration for the gemfall game.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the board geometry and palette.
type BoardConfig struct {
	Rows   int `yaml:"rows"`
	Cols   int `yaml:"cols"`
	Colors int `yaml:"colors"`
}

// RulesConfig defines session parameters.
type RulesConfig struct {
	// MoveBudget is the number of resolved moves in a standard game.
	// Zen mode ignores it.
	MoveBudget int `yaml:"move_budget"`
}

// Validate checks the configuration against supported ranges.
func (c Config) Validate() error {
	b := c.Board
	if b.Rows < minBoardSide || b.Rows > maxBoardSide {
		return fmt.Errorf("board rows %d outside %d..%d", b.Rows, minBoardSide, maxBoardSide)
	}
	if b.Cols < minBoardSide || b.Cols > maxBoardSide {
		return fmt.Errorf("board cols %d outside %d..%d", b.Cols, minBoardSide, maxBoardSide)
	}
	if b.Colors < minColors || b.Colors > maxColors {
		return fmt.Errorf("board colors %d outside %d..%d", b.Colors, minColors, maxColors)
	}
	if c.Rules.MoveBudget < 1 {
		return fmt.Errorf("move budget %d must be positive", c.Rules.MoveBudget)
	}
	return nil
}

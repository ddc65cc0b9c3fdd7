// Package match3 implements the rules engine for a match-3 cascade puzzle:
// match detection, chain-reaction resolution with power-up tokens, gravity
// refill and scoring. The package is UI-agnostic and deterministic; all
// randomness flows through a pluggable RandomSource.
package match3

// Color identifies a token color. Valid values are [0, palette size).
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorBlue
	ColorYellow
	ColorPurple
	// MaxColors is the largest palette the engine supports.
	MaxColors = 5
)

// MinColors is the smallest palette that still guarantees the shuffle
// loop can reach a match-free board.
const MinColors = 3

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case ColorRed:
		return 'R'
	case ColorGreen:
		return 'G'
	case ColorBlue:
		return 'B'
	case ColorYellow:
		return 'Y'
	case ColorPurple:
		return 'P'
	default:
		return '?'
	}
}

// PowerUp tags a cell with a special destruction behavior.
type PowerUp uint8

const (
	PowerNone PowerUp = iota
	// PowerBomb destroys the 3x3 neighborhood around the cell.
	PowerBomb
	// PowerLine destroys the cell's full row and full column.
	PowerLine
)

// String returns the power-up name.
func (p PowerUp) String() string {
	switch p {
	case PowerNone:
		return "none"
	case PowerBomb:
		return "bomb"
	case PowerLine:
		return "line"
	default:
		return "unknown"
	}
}

// Cell is one board slot: a color plus an optional power-up tag.
// Filled is false only transiently, between destruction and refill.
type Cell struct {
	Filled bool
	Color  Color
	Power  PowerUp
}

// EmptyCell returns a cleared cell.
func EmptyCell() Cell {
	return Cell{}
}

// ColorCell returns a plain filled cell.
func ColorCell(c Color) Cell {
	return Cell{Filled: true, Color: c}
}

// PowerCell returns a filled cell carrying a power-up.
func PowerCell(c Color, p PowerUp) Cell {
	return Cell{Filled: true, Color: c, Power: p}
}

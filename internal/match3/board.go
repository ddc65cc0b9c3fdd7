package match3

import (
	"fmt"
	"strings"
)

// Board dimension limits. The lower bounds are the smallest sizes on which
// a run of three can exist at all; the upper bounds keep the engine's
// fixpoint loops comfortably small.
const (
	MinRows = 3
	MinCols = 3
	MaxRows = 32
	MaxCols = 32
)

// ConstructionError reports board parameters outside the supported range.
// It is only ever returned at initialization.
type ConstructionError struct {
	Rows   int
	Cols   int
	Colors int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("match3: unsupported board %dx%d with %d colors (rows %d-%d, cols %d-%d, colors %d-%d)",
		e.Rows, e.Cols, e.Colors, MinRows, MaxRows, MinCols, MaxCols, MinColors, MaxColors)
}

// Board is the full grid state: dimensions, palette size and cells in
// row-major order. It is a plain value owned by whoever drives the engine;
// nothing in this package keeps a reference to one between calls.
type Board struct {
	Rows   int
	Cols   int
	Colors int // palette size, colors are [0, Colors)
	cells  []Cell
}

// New builds a board with every cell filled so that no match of three
// exists and at least one valid swap does. Colors are drawn from rng with
// the placement constraint applied left-to-right, top-to-bottom; if the
// finished board has no valid move it is shuffled.
func New(rows, cols, colors int, rng RandomSource) (*Board, error) {
	if rows < MinRows || rows > MaxRows || cols < MinCols || cols > MaxCols ||
		colors < MinColors || colors > MaxColors {
		return nil, &ConstructionError{Rows: rows, Cols: cols, Colors: colors}
	}

	b := &Board{
		Rows:   rows,
		Cols:   cols,
		Colors: colors,
		cells:  make([]Cell, rows*cols),
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.Set(RC(r, c), ColorCell(b.safeColor(RC(r, c), rng)))
		}
	}

	if !HasValidMove(b) {
		b = Shuffle(b, rng)
	}
	return b, nil
}

// safeColor picks a random color for (r,c) that does not complete a
// horizontal or vertical run of three ending there, given the cells already
// placed above and to the left. Falls back to an unrestricted pick when
// every color is excluded.
func (b *Board) safeColor(at Coord, rng RandomSource) Color {
	excluded := make(map[Color]bool, 2)

	if at.Col >= 2 {
		left1 := b.At(RC(at.Row, at.Col-1))
		left2 := b.At(RC(at.Row, at.Col-2))
		if left1.Filled && left2.Filled && left1.Color == left2.Color {
			excluded[left1.Color] = true
		}
	}
	if at.Row >= 2 {
		up1 := b.At(RC(at.Row-1, at.Col))
		up2 := b.At(RC(at.Row-2, at.Col))
		if up1.Filled && up2.Filled && up1.Color == up2.Color {
			excluded[up1.Color] = true
		}
	}

	allowed := make([]Color, 0, b.Colors)
	for c := 0; c < b.Colors; c++ {
		if !excluded[Color(c)] {
			allowed = append(allowed, Color(c))
		}
	}
	if len(allowed) == 0 {
		return Color(rng.IntN(b.Colors))
	}
	return allowed[rng.IntN(len(allowed))]
}

// index converts a coordinate to a flat storage index.
// Coordinates are the unit of identity everywhere else; the flat layout
// never leaks out of the accessors.
func (b *Board) index(c Coord) int {
	return c.Row*b.Cols + c.Col
}

// InBounds reports whether the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// At returns the cell at the coordinate, or an empty cell out of bounds.
func (b *Board) At(c Coord) Cell {
	if !b.InBounds(c) {
		return EmptyCell()
	}
	return b.cells[b.index(c)]
}

// Set writes the cell at the coordinate. Out of bounds writes are ignored.
func (b *Board) Set(c Coord, cell Cell) {
	if b.InBounds(c) {
		b.cells[b.index(c)] = cell
	}
}

// Swap exchanges the cells at the two coordinates.
func (b *Board) Swap(a, c Coord) {
	if !b.InBounds(a) || !b.InBounds(c) {
		return
	}
	i, j := b.index(a), b.index(c)
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		Rows:   b.Rows,
		Cols:   b.Cols,
		Colors: b.Colors,
		cells:  cells,
	}
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if b.Rows != other.Rows || b.Cols != other.Cols {
		return false
	}
	for i, cell := range b.cells {
		if cell != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board as text, one row per line: uppercase letters for
// plain cells, lowercase for bombs, '|' for line power-ups, '.' for empty.
// Exists for tests and debug logs.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Cols; c++ {
			cell := b.At(RC(r, c))
			switch {
			case !cell.Filled:
				sb.WriteByte('.')
			case cell.Power == PowerBomb:
				sb.WriteRune(cell.Color.Char() + ('a' - 'A'))
			case cell.Power == PowerLine:
				sb.WriteByte('|')
			default:
				sb.WriteRune(cell.Color.Char())
			}
		}
	}
	return sb.String()
}

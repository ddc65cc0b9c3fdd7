package match3

import "fmt"

// Coord addresses a board cell by row and column.
// Row 0 is the top of the board, Col 0 the left edge.
type Coord struct {
	Row int
	Col int
}

// RC is a convenience constructor for Coord.
func RC(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a "(row,col)" representation.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Adjacent reports whether the other coordinate is 4-adjacent
// (shares an edge, not a diagonal).
func (c Coord) Adjacent(other Coord) bool {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Less orders coordinates row-major. Used to keep emitted cell lists
// deterministic regardless of how they were accumulated.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

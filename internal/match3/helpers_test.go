package match3

import "testing"

// mustBoard builds a board from one string per row. Uppercase letters are
// plain cells, lowercase letters are bombs of that color, '.' is empty.
// Line power-ups are set explicitly by tests that need them.
func mustBoard(t *testing.T, rows []string) *Board {
	t.Helper()

	if len(rows) == 0 {
		t.Fatal("mustBoard: no rows")
	}
	b := &Board{
		Rows:   len(rows),
		Cols:   len(rows[0]),
		Colors: MinColors,
		cells:  make([]Cell, len(rows)*len(rows[0])),
	}

	for r, row := range rows {
		if len(row) != b.Cols {
			t.Fatalf("mustBoard: row %d has %d cells, want %d", r, len(row), b.Cols)
		}
		for c, ch := range row {
			if ch == '.' {
				continue
			}
			power := PowerNone
			if ch >= 'a' && ch <= 'z' {
				power = PowerBomb
				ch -= 'a' - 'A'
			}
			color, ok := parseColorChar(ch)
			if !ok {
				t.Fatalf("mustBoard: unknown cell %q at (%d,%d)", ch, r, c)
			}
			if int(color) >= b.Colors {
				b.Colors = int(color) + 1
			}
			b.Set(RC(r, c), PowerCell(color, power))
		}
	}
	return b
}

func parseColorChar(ch rune) (Color, bool) {
	switch ch {
	case 'R':
		return ColorRed, true
	case 'G':
		return ColorGreen, true
	case 'B':
		return ColorBlue, true
	case 'Y':
		return ColorYellow, true
	case 'P':
		return ColorPurple, true
	default:
		return 0, false
	}
}

// stubRand replays a fixed sequence of values, reduced modulo n, and wraps
// around at the end. Gives tests full control over "random" choices.
type stubRand struct {
	vals []int
	i    int
}

func (s *stubRand) IntN(n int) int {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

// coordsContain reports whether the slice holds the coordinate.
func coordsContain(cells []Coord, c Coord) bool {
	for _, cc := range cells {
		if cc == c {
			return true
		}
	}
	return false
}

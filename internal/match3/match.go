package match3

// Group is one contiguous run of three or more same-colored cells in a
// single orientation.
type Group struct {
	Cells      []Coord
	Run        int  // run length, always len(Cells)
	Horizontal bool // false means a vertical run
}

// FindMatches returns the flat set of all cells that belong to some run of
// three or more. It is the cheap existence check used by move validation
// and board construction; FindMatchGroups is the structured form.
func FindMatches(b *Board) map[Coord]bool {
	matched := make(map[Coord]bool)
	for _, g := range FindMatchGroups(b) {
		for _, c := range g.Cells {
			matched[c] = true
		}
	}
	return matched
}

// FindMatchGroups scans every row and every column for runs of three or
// more identical colors. Empty cells never match anything and always close
// the current run.
func FindMatchGroups(b *Board) []Group {
	var groups []Group

	// Row scan, left to right.
	for r := 0; r < b.Rows; r++ {
		runStart := 0
		for c := 1; c <= b.Cols; c++ {
			if c < b.Cols && sameColor(b.At(RC(r, c)), b.At(RC(r, runStart))) {
				continue
			}
			if length := c - runStart; length >= 3 && b.At(RC(r, runStart)).Filled {
				groups = append(groups, rowGroup(r, runStart, length))
			}
			runStart = c
		}
	}

	// Column scan, top to bottom.
	for c := 0; c < b.Cols; c++ {
		runStart := 0
		for r := 1; r <= b.Rows; r++ {
			if r < b.Rows && sameColor(b.At(RC(r, c)), b.At(RC(runStart, c))) {
				continue
			}
			if length := r - runStart; length >= 3 && b.At(RC(runStart, c)).Filled {
				groups = append(groups, colGroup(c, runStart, length))
			}
			runStart = r
		}
	}

	return groups
}

// sameColor reports whether two cells hold the same real color.
func sameColor(a, b Cell) bool {
	return a.Filled && b.Filled && a.Color == b.Color
}

func rowGroup(row, startCol, length int) Group {
	cells := make([]Coord, length)
	for i := range cells {
		cells[i] = RC(row, startCol+i)
	}
	return Group{Cells: cells, Run: length, Horizontal: true}
}

func colGroup(col, startRow, length int) Group {
	cells := make([]Coord, length)
	for i := range cells {
		cells[i] = RC(startRow+i, col)
	}
	return Group{Cells: cells, Run: length, Horizontal: false}
}

package match3

// FallTrace maps each destination cell of a refill to the row its content
// fell from in the same column. Negative source rows mean the cell was
// spawned above the visible board. This is presentation-facing data for
// animating falls; it is not board state.
type FallTrace map[Coord]int

// CollapseAndFill compacts surviving cells to the bottom of each column,
// preserving their relative order, and fills the vacated top rows with
// newly generated cells. Pending power-ups are assigned to the new cells of
// their column top-down, one per cell, in the order given.
//
// The input board is not modified; a fresh board and the fall trace for the
// round are returned.
func CollapseAndFill(b *Board, pending []PendingPowerUp, rng RandomSource) (*Board, FallTrace) {
	nb := b.Clone()
	trace := make(FallTrace, b.Rows*b.Cols)

	for col := 0; col < b.Cols; col++ {
		// Surviving cells top to bottom, with their source rows.
		survivors := make([]Cell, 0, b.Rows)
		sourceRows := make([]int, 0, b.Rows)
		for row := 0; row < b.Rows; row++ {
			if cell := b.At(RC(row, col)); cell.Filled {
				survivors = append(survivors, cell)
				sourceRows = append(sourceRows, row)
			}
		}

		newCount := b.Rows - len(survivors)

		// Survivors land in the bottom rows, original order preserved.
		for i, cell := range survivors {
			dest := RC(newCount+i, col)
			nb.Set(dest, cell)
			trace[dest] = sourceRows[i]
		}

		// New cells fill the top rows. Filling top-down means the two rows
		// above a candidate are already resolved when it is placed.
		powers := pendingForColumn(pending, col)
		for row := 0; row < newCount; row++ {
			dest := RC(row, col)
			cell := ColorCell(refillColor(nb, dest, rng))
			if row < len(powers) {
				cell.Power = powers[row]
			}
			nb.Set(dest, cell)
			trace[dest] = row - newCount
		}
	}

	return nb, trace
}

// pendingForColumn returns the power-up kinds destined for a column, in the
// order they were earned.
func pendingForColumn(pending []PendingPowerUp, col int) []PowerUp {
	var kinds []PowerUp
	for _, p := range pending {
		if p.Col == col {
			kinds = append(kinds, p.Kind)
		}
	}
	return kinds
}

// refillColor picks a color for a newly generated cell that avoids the
// obvious immediate runs: a pair directly above it in the column, and a
// sandwich between the resolved cells above and below it. These checks
// reduce, not eliminate, instant chains; the cascade loop catches whatever
// slips through. If every color is excluded the pick is unrestricted.
func refillColor(b *Board, at Coord, rng RandomSource) Color {
	excluded := make(map[Color]bool, 2)

	up1 := b.At(RC(at.Row-1, at.Col))
	up2 := b.At(RC(at.Row-2, at.Col))
	if up1.Filled && up2.Filled && up1.Color == up2.Color {
		excluded[up1.Color] = true
	}

	down1 := b.At(RC(at.Row+1, at.Col))
	if up1.Filled && down1.Filled && up1.Color == down1.Color {
		excluded[up1.Color] = true
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

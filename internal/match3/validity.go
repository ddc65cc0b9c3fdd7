package match3

// shuffleRetryCap bounds each round of re-randomization inside Shuffle.
// The loop terminates almost surely without it, but a bound turns
// "almost surely" into "provably eventually": after the cap is exhausted
// the palette is widened by one color and the cap restarts, which strictly
// raises the probability of a match-free board each round.
const shuffleRetryCap = 64

// HasValidMove reports whether any adjacent swap would create a match.
// It probes every cell's right and below neighbor, testing and swapping
// back immediately; the board is unchanged when it returns.
func HasValidMove(b *Board) bool {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			at := RC(r, c)
			for _, next := range []Coord{RC(r, c+1), RC(r+1, c)} {
				if !b.InBounds(next) {
					continue
				}
				b.Swap(at, next)
				matched := len(FindMatches(b)) > 0
				b.Swap(at, next)
				if matched {
					return true
				}
			}
		}
	}
	return false
}

// Shuffle returns a board with the same cell colors permuted so that no
// match exists and at least one valid move does. Power-ups do not survive
// a shuffle. The input board is not modified.
func Shuffle(b *Board, rng RandomSource) *Board {
	nb := b.Clone()

	// Drop power-up tags, then Fisher-Yates the colors in place.
	coords := make([]Coord, 0, nb.Rows*nb.Cols)
	for r := 0; r < nb.Rows; r++ {
		for c := 0; c < nb.Cols; c++ {
			at := RC(r, c)
			cell := nb.At(at)
			cell.Power = PowerNone
			nb.Set(at, cell)
			coords = append(coords, at)
		}
	}
	for i := len(coords) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		nb.Swap(coords[i], coords[j])
	}

	// Re-randomize until the board is match-free and a move exists.
	// Each exhausted retry round widens the palette by one color, up to the
	// engine maximum, so the loop cannot spin forever on a pathological
	// combination of dimensions and colors.
	palette := nb.Colors
	for {
		for attempt := 0; attempt < shuffleRetryCap; attempt++ {
			if len(FindMatches(nb)) == 0 && HasValidMove(nb) {
				return nb
			}
			randomizeColors(nb, palette, rng)
		}
		if palette < MaxColors {
			palette++
		}
	}
}

// EnsurePlayable reshuffles the board if it has no valid move left.
// Called after every resolved move; boards with a move pass through
// untouched.
func EnsurePlayable(b *Board, rng RandomSource) *Board {
	if HasValidMove(b) {
		return b
	}
	return Shuffle(b, rng)
}

// randomizeColors assigns every cell a fresh uniform color from the given
// palette size.
func randomizeColors(b *Board, palette int, rng RandomSource) {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			at := RC(r, c)
			cell := b.At(at)
			cell.Color = Color(rng.IntN(palette))
			b.Set(at, cell)
		}
	}
}

package match3

import (
	"errors"
	"sort"
)

// ErrInvalidMove reports a move request whose coordinates are out of bounds
// or not 4-adjacent. The board is never mutated for such a request.
var ErrInvalidMove = errors.New("match3: move cells must be distinct, in bounds and adjacent")

// Step records the effects of one cascade round. The presentation layer
// consumes the sequence at its own pace; the engine computes all of them
// synchronously and never owns a timer.
type Step struct {
	Chain     int     // 1-based cascade round index
	Matched   []Coord // cells matched by runs this round
	Activated []Coord // power-up cells triggered by chain activation
	Destroyed []Coord // full destroyed set, superset of Matched
	Score     int     // points earned this round
	Board     *Board  // board snapshot after destruction and refill
	Trace     FallTrace
}

// MoveResult is the outcome of resolving one move to its fixpoint.
type MoveResult struct {
	Board    *Board
	Steps    []Step
	Score    int
	Reverted bool // the swap produced no match and was undone
}

// IsMoveValid reports whether the two coordinates name a structurally legal
// swap: both in bounds and 4-adjacent. It does not look at colors; a legal
// swap that produces no match is resolved as a revert, not rejected here.
func IsMoveValid(b *Board, a, c Coord) bool {
	return b.InBounds(a) && b.InBounds(c) && a.Adjacent(c)
}

// ResolveMove applies a swap and drives the destroy / activate / score /
// refill loop until the board is stable. The input board is not modified;
// the result carries the final board and one Step per cascade round.
//
// A structurally invalid request returns ErrInvalidMove with no steps. A
// valid swap that creates no match is swapped back and reported with
// Reverted set, zero score and no steps.
func ResolveMove(b *Board, a, c Coord, rng RandomSource) (MoveResult, error) {
	if !IsMoveValid(b, a, c) {
		return MoveResult{}, ErrInvalidMove
	}

	work := b.Clone()
	work.Swap(a, c)

	swapCtx := &SwapContext{A: a, B: c}
	result := MoveResult{}
	chain := 0

	for {
		groups := FindMatchGroups(work)
		if len(groups) == 0 {
			break
		}
		chain++

		regions := MergeGroups(groups)

		var pending []PendingPowerUp
		matched := make(map[Coord]bool)
		for _, region := range regions {
			if p, ok := ClassifyPowerUp(region, swapCtx); ok {
				pending = append(pending, p)
			}
			for _, cell := range region.Cells {
				matched[cell] = true
			}
		}
		swapCtx = nil // only the first round knows about the swap

		destroyed, activated := expandChain(work, matched)

		score := Points(len(destroyed), chain)
		result.Score += score

		for _, cell := range destroyed {
			work.Set(cell, EmptyCell())
		}

		next, trace := CollapseAndFill(work, pending, rng)
		work = next

		result.Steps = append(result.Steps, Step{
			Chain:     chain,
			Matched:   sortedCoords(matched),
			Activated: activated,
			Destroyed: destroyed,
			Score:     score,
			Board:     work.Clone(),
			Trace:     trace,
		})
	}

	if chain == 0 {
		// No match: undo the swap. The two cells exchange twice, so the
		// returned board is identical to the input.
		work.Swap(a, c)
		result.Reverted = true
	}

	result.Board = work
	return result, nil
}

// expandChain grows the destroyed set from the matched cells by activating
// every power-up it reaches: a bomb adds its 3x3 neighborhood, a line adds
// its full row and column. Activation is monotone and bounded by the board,
// so the scan reaches a fixpoint. Returns the destroyed set (sorted) and
// the power-up cells that fired, in activation order.
func expandChain(b *Board, matched map[Coord]bool) (destroyed, activated []Coord) {
	inSet := make(map[Coord]bool, len(matched))
	queue := sortedCoords(matched)
	for _, c := range queue {
		inSet[c] = true
	}

	fired := make(map[Coord]bool)
	for {
		grew := false
		for _, at := range queue {
			cell := b.At(at)
			if cell.Power == PowerNone || fired[at] {
				continue
			}
			fired[at] = true
			activated = append(activated, at)

			var blast []Coord
			switch cell.Power {
			case PowerBomb:
				for dr := -1; dr <= 1; dr++ {
					for dc := -1; dc <= 1; dc++ {
						blast = append(blast, RC(at.Row+dr, at.Col+dc))
					}
				}
			case PowerLine:
				for col := 0; col < b.Cols; col++ {
					blast = append(blast, RC(at.Row, col))
				}
				for row := 0; row < b.Rows; row++ {
					blast = append(blast, RC(row, at.Col))
				}
			}

			for _, hit := range blast {
				if b.InBounds(hit) && !inSet[hit] {
					inSet[hit] = true
					queue = append(queue, hit)
					grew = true
				}
			}
		}
		if !grew {
			break
		}
	}

	destroyed = make([]Coord, len(queue))
	copy(destroyed, queue)
	sort.Slice(destroyed, func(i, j int) bool { return destroyed[i].Less(destroyed[j]) })
	return destroyed, activated
}

// sortedCoords flattens a coordinate set into row-major order.
func sortedCoords(set map[Coord]bool) []Coord {
	out := make([]Coord, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

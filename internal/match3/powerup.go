package match3

// PendingPowerUp is a power-up earned this round, to be materialized in the
// given column during the next refill.
type PendingPowerUp struct {
	Kind PowerUp
	Col  int
}

// SwapContext carries the two swapped cells into the first cascade round so
// power-ups earned by the player's own match spawn in the column they acted
// on. Later rounds pass nil and fall back to the middle-cell heuristic.
type SwapContext struct {
	A Coord
	B Coord
}

// ClassifyPowerUp maps a merged region to the power-up it earns, if any.
//
// A Line is earned by a run of six or more, or by an L/T shape of total
// size six or more. A Bomb is earned by any L/T shape, or a run of four or
// more. Smaller regions earn nothing.
func ClassifyPowerUp(region Region, swap *SwapContext) (PendingPowerUp, bool) {
	var kind PowerUp
	switch {
	case region.MaxRun >= 6 || (region.LShape() && region.Size >= 6):
		kind = PowerLine
	case region.LShape() || region.MaxRun >= 4:
		kind = PowerBomb
	default:
		return PendingPowerUp{}, false
	}

	return PendingPowerUp{Kind: kind, Col: spawnColumn(region, swap)}, true
}

// spawnColumn picks the column the power-up falls into: the swapped cell's
// column when the region contains one, otherwise the column of the cell at
// the middle index of the region's cell list. The middle index is a
// deterministic tie-break, not a geometric centroid.
func spawnColumn(region Region, swap *SwapContext) int {
	if swap != nil {
		if region.Contains(swap.A) {
			return swap.A.Col
		}
		if region.Contains(swap.B) {
			return swap.B.Col
		}
	}
	return region.Cells[len(region.Cells)/2].Col
}

package match3

import "math"

// Points computes the score for one cascade round: ten points per destroyed
// cell, scaled by a chain bonus of +50% per round after the first.
// chain is 1-based.
func Points(destroyed, chain int) int {
	return int(math.Round(float64(destroyed) * 10 * (1 + float64(chain-1)*0.5)))
}

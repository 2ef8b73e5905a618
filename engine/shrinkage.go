package engine

import "math"

// FTE converts a productive agent count into total full-time equivalents
// given a shrinkage fraction: total = productive / (1 - shrinkage).
//
// Shrinkage at or beyond 1 means no productive time at all, so the result
// fails toward math.Inf(1) rather than erroring; negative shrinkage is
// clamped to 0.
func FTE(productiveAgents, shrinkage float64) float64 {
	if productiveAgents <= 0 {
		return 0
	}
	if shrinkage < 0 {
		shrinkage = 0
	}
	if shrinkage >= 1 {
		return math.Inf(1)
	}
	return productiveAgents / (1 - shrinkage)
}

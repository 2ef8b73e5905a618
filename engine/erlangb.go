package engine

// ErlangB returns the blocking probability of a loss system (no queue)
// with the given number of agents and offered load in Erlangs.
//
// It uses the stable recursion B(0)=1, B(k) = A*B(k-1) / (k + A*B(k-1)),
// which avoids the factorial overflow a direct A^n/n! evaluation would hit
// at large agent counts.
//
// Fractional agent counts are truncated at the loop bound: ErlangB(10.9, A)
// equals ErlangB(10, A). This is the "effective integer agents" semantic;
// callers wanting strict integer agents should round before calling.
//
// Edge cases: agents <= 0 blocks everything (1.0); intensity <= 0 blocks
// nothing (0.0).
func ErlangB(agents, intensity float64) float64 {
	if intensity <= 0 {
		return 0
	}
	n := int(agents)
	if n <= 0 {
		return 1
	}
	b := 1.0
	for k := 1; k <= n; k++ {
		ab := intensity * b
		b = ab / (float64(k) + ab)
	}
	return clampProb(b)
}

// clampProb absorbs floating-point drift so derived probabilities stay
// within [0,1].
func clampProb(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

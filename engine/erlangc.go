package engine

import "math"

// ErlangC returns the probability that an arriving contact has to wait in
// an infinite-patience queue with the given agents and offered load.
//
// The value is derived from Erlang B through the canonical relationship
//
//	C = B*c / (c - A + A*B)
//
// rather than the direct inverse-probability iteration, which diverges from
// this form at high agent counts. An unstable queue (agents <= intensity)
// short-circuits to 1: every contact waits, without bound.
func ErlangC(agents, intensity float64) float64 {
	if intensity <= 0 {
		return 0
	}
	if agents <= intensity {
		return 1
	}
	b := ErlangB(agents, intensity)
	c := (b * agents) / (agents - intensity + intensity*b)
	return clampProb(c)
}

// WaitProbabilityExceeds returns P(wait > thresholdSeconds) for an
// Erlang C queue, using the exponential tail of the waiting-time
// distribution.
func WaitProbabilityExceeds(agents, intensity, ahtSeconds, thresholdSeconds float64) float64 {
	if intensity <= 0 {
		return 0
	}
	if agents <= intensity {
		return 1
	}
	c := ErlangC(agents, intensity)
	tail := c * math.Exp(-(agents-intensity)*thresholdSeconds/ahtSeconds)
	return clampProb(tail)
}

// ServiceLevel returns the fraction of contacts answered within
// thresholdSeconds. No load or no agents with no load means perfect
// service (1); an unstable queue collapses to 0.
func ServiceLevel(agents, intensity, ahtSeconds, thresholdSeconds float64) float64 {
	if agents <= 0 || intensity <= 0 {
		return 1
	}
	return clampProb(1 - WaitProbabilityExceeds(agents, intensity, ahtSeconds, thresholdSeconds))
}

// ASA returns the average speed of answer in seconds. An unstable queue
// yields math.Inf(1); callers must treat that as a sentinel, never average
// or otherwise combine it with finite values.
func ASA(agents, intensity, ahtSeconds float64) float64 {
	if intensity <= 0 {
		return 0
	}
	if agents <= intensity {
		return math.Inf(1)
	}
	return ErlangC(agents, intensity) * ahtSeconds / (agents - intensity)
}

// Occupancy returns the fraction of agent time spent handling contacts,
// clamped to [0,1].
func Occupancy(agents, intensity float64) float64 {
	if agents <= 0 {
		if intensity > 0 {
			return 1
		}
		return 0
	}
	return clampProb(intensity / agents)
}

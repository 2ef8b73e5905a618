package engine

import "math"

// erlangAMaxIterations bounds the fixed-point iteration; convergence is
// geometric, so this is never reached in practice.
const erlangAMaxIterations = 32

// erlangATolerance stops the fixed-point iteration once the effective
// intensity moves by less than this between rounds.
const erlangATolerance = 1e-9

// ErlangAResult carries the abandonment-aware queue probabilities.
type ErlangAResult struct {
	WaitProbability    float64 // P(wait > 0) against the abandonment-relieved load
	AbandonmentRate    float64 // fraction of offered contacts that abandon
	EffectiveIntensity float64 // offered load minus abandoned load, in Erlangs
}

// ErlangA evaluates the abandonment-aware queue model. It extends Erlang C
// with the abandonment-rate parameter theta = patience / AHT: the fraction
// of queued contacts that abandon is P(wait) * theta/(1+theta), the
// abandoned load is removed from the offered intensity, and the wait
// probability is recomputed against the relieved load until the fixed
// point converges.
//
// The model is undefined without a patience figure: patience <= 0 (or
// AHT <= 0) returns ok=false and the caller must branch on it. This is an
// expected configuration state, not an error.
//
// Abandonment only ever relieves the queue, so for any inputs the relieved
// load satisfies EffectiveIntensity <= intensity and the resulting service
// level is never below the plain Erlang C figure.
func ErlangA(agents, intensity, ahtSeconds, patienceSeconds float64) (ErlangAResult, bool) {
	if patienceSeconds <= 0 || ahtSeconds <= 0 {
		return ErlangAResult{}, false
	}
	if intensity <= 0 {
		return ErlangAResult{EffectiveIntensity: 0}, true
	}

	theta := patienceSeconds / ahtSeconds
	relief := theta / (1 + theta)

	effective := intensity
	abandon := 0.0
	for i := 0; i < erlangAMaxIterations; i++ {
		pw := ErlangC(agents, effective)
		abandon = pw * relief
		// Half-step damping keeps the iteration from oscillating where
		// Erlang C is steep, just above the stability boundary.
		next := (effective + intensity*(1-abandon)) / 2
		if math.Abs(next-effective) < erlangATolerance {
			effective = next
			break
		}
		effective = next
	}

	return ErlangAResult{
		WaitProbability:    ErlangC(agents, effective),
		AbandonmentRate:    clampProb(abandon),
		EffectiveIntensity: effective,
	}, true
}

// ErlangAServiceLevel returns the fraction of contacts answered within
// thresholdSeconds under the abandonment-aware model. Same edge semantics
// as ServiceLevel; ok=false when patience is unset.
func ErlangAServiceLevel(agents, intensity, ahtSeconds, patienceSeconds, thresholdSeconds float64) (float64, bool) {
	res, ok := ErlangA(agents, intensity, ahtSeconds, patienceSeconds)
	if !ok {
		return 0, false
	}
	if agents <= 0 || intensity <= 0 {
		return 1, true
	}
	if agents <= res.EffectiveIntensity {
		return 0, true
	}
	tail := res.WaitProbability * math.Exp(-(agents-res.EffectiveIntensity)*thresholdSeconds/ahtSeconds)
	return clampProb(1 - tail), true
}

// ErlangAASA returns the average speed of answer against the
// abandonment-relieved load; math.Inf(1) when still unstable.
func ErlangAASA(agents, intensity, ahtSeconds, patienceSeconds float64) (float64, bool) {
	res, ok := ErlangA(agents, intensity, ahtSeconds, patienceSeconds)
	if !ok {
		return 0, false
	}
	if intensity <= 0 {
		return 0, true
	}
	if agents <= res.EffectiveIntensity {
		return math.Inf(1), true
	}
	return res.WaitProbability * ahtSeconds / (agents - res.EffectiveIntensity), true
}

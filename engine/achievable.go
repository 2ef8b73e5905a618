package engine

import "math"

// occupancyCapTolerance keeps a hair of float noise from flagging the cap
// as violated when naive occupancy equals it exactly.
const occupancyCapTolerance = 1e-9

// AchievableMetrics is the reverse-solve result: the performance a fixed
// headcount can actually deliver once the occupancy ceiling is enforced.
// Invariant: EffectiveAgents <= ActualAgents.
type AchievableMetrics struct {
	ServiceLevel                  float64
	ASA                           float64 // math.Inf(1) when the staffing is unstable
	Occupancy                     float64 // what the actual agents experience, capped at 1
	AbandonmentRate               float64 // ModelA only
	EffectiveAgents               float64 // usable capacity after the cap penalty
	ActualAgents                  int
	OccupancyCapApplied           bool
	OccupancyPenalty              float64 // fraction of capacity lost to the cap, 0 when not applied
	RequiredAgentsForMaxOccupancy int     // headcount that would bring occupancy under the cap
}

// CalculateAchievableMetrics answers the planner's reverse question: given
// the headcount we actually have, what service level does it buy?
//
// When the naive occupancy A/actual exceeds the ceiling, agents cannot be
// run that hot, so usable capacity shrinks: effective agents scale down by
// maxOccupancy/naiveOccupancy and performance is recomputed against the
// reduced figure. A tighter cap therefore always reads as worse service
// and longer waits, and the gap to ceil(A/maxOccupancy) is reported as the
// hiring shortfall.
//
// ok=false only when the model is missing a required parameter (ModelA
// without patience); every other condition resolves to sentinel values in
// the result.
func CalculateAchievableMetrics(model Model, actualAgents int, w Workload, c Constraints, b Behavior) (*AchievableMetrics, bool) {
	p := NewProjector(model, w, c, b)
	c = p.Constraints()

	a := p.Intensity()
	if a <= 0 {
		m := &AchievableMetrics{
			ServiceLevel:    1,
			EffectiveAgents: float64(actualAgents),
			ActualAgents:    actualAgents,
		}
		if actualAgents < 0 {
			m.EffectiveAgents = 0
		}
		// Parameter check still applies with no load.
		if _, ok := p.Project(1); !ok {
			return nil, false
		}
		return m, true
	}

	if actualAgents <= 0 {
		if _, ok := p.Project(1); !ok {
			return nil, false
		}
		proj, _ := p.Project(0)
		return &AchievableMetrics{
			ServiceLevel: proj.ServiceLevel,
			ASA:          proj.ASA,
			Occupancy:    1,
			ActualAgents: actualAgents,
		}, true
	}

	naiveOccupancy := a / float64(actualAgents)
	effectiveAgents := float64(actualAgents)
	capApplied := false
	penalty := 0.0
	requiredForCap := 0

	if naiveOccupancy > c.MaxOccupancy+occupancyCapTolerance {
		capApplied = true
		penalty = 1 - c.MaxOccupancy/naiveOccupancy
		effectiveAgents = float64(actualAgents) * (1 - penalty)
		requiredForCap = ceilDiv(a, c.MaxOccupancy)
	}

	proj, ok := p.Project(effectiveAgents)
	if !ok {
		return nil, false
	}

	return &AchievableMetrics{
		ServiceLevel:                  proj.ServiceLevel,
		ASA:                           proj.ASA,
		Occupancy:                     clampProb(naiveOccupancy),
		AbandonmentRate:               proj.AbandonmentRate,
		EffectiveAgents:               effectiveAgents,
		ActualAgents:                  actualAgents,
		OccupancyCapApplied:           capApplied,
		OccupancyPenalty:              penalty,
		RequiredAgentsForMaxOccupancy: requiredForCap,
	}, true
}

func ceilDiv(a, b float64) int {
	return int(math.Ceil(a / b))
}

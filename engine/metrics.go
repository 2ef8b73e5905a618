package engine

import "math"

// StaffingMetrics is the forward-solve result: the minimum staffing that
// meets the target, plus the performance that staffing delivers. Computed
// fresh on every call and never mutated afterwards.
type StaffingMetrics struct {
	TrafficIntensity float64 // concurrency-adjusted offered load, Erlangs
	RequiredAgents   int     // minimum productive agents; 0 when infeasible
	TotalFTE         float64 // RequiredAgents grossed up for shrinkage
	ServiceLevel     float64
	ASA              float64 // seconds; math.Inf(1) when infeasible/unstable
	Occupancy        float64
	AbandonmentRate  float64 // ModelA only
	CanAchieveTarget bool
}

// CalculateStaffingMetrics is the primary forward entry point: it derives
// the traffic intensity, inverts "agents -> service level" through the
// monotone search, and grosses the result up for shrinkage.
//
// ok=false means the model is missing a required parameter (ModelA without
// patience). An infeasible target is NOT a failure: it comes back with
// ok=true, RequiredAgents=0, CanAchieveTarget=false and an infinite ASA,
// and the caller decides how to surface it.
func CalculateStaffingMetrics(model Model, w Workload, c Constraints, b Behavior) (*StaffingMetrics, bool) {
	return CalculateStaffingMetricsWith(model, w, c, b, DefaultSearchConfig)
}

// CalculateStaffingMetricsWith is CalculateStaffingMetrics with an
// explicit search ceiling, for callers chasing pathological targets.
func CalculateStaffingMetricsWith(model Model, w Workload, c Constraints, b Behavior, cfg SearchConfig) (*StaffingMetrics, bool) {
	p := NewProjector(model, w, c, b)
	b = b.Normalized()

	a := p.Intensity()
	if a <= 0 {
		// No load: trivially satisfied, no staffing needed.
		return &StaffingMetrics{
			ServiceLevel:     1,
			CanAchieveTarget: true,
		}, true
	}

	agents, ok := SolveAgents(p, cfg)
	if !ok {
		// Distinguish "missing parameter" from "infeasible target".
		if _, projOK := p.Project(a + 1); !projOK {
			return nil, false
		}
		return &StaffingMetrics{
			TrafficIntensity: a,
			ASA:              math.Inf(1),
			Occupancy:        1,
		}, true
	}

	proj, _ := p.Project(float64(agents))
	return &StaffingMetrics{
		TrafficIntensity: a,
		RequiredAgents:   agents,
		TotalFTE:         FTE(float64(agents), b.Shrinkage),
		ServiceLevel:     proj.ServiceLevel,
		ASA:              proj.ASA,
		Occupancy:        proj.Occupancy,
		AbandonmentRate:  proj.AbandonmentRate,
		CanAchieveTarget: true,
	}, true
}

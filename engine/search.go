package engine

import "math"

// SearchConfig sizes the upper bound of the staffing scan. The ceiling is
// CeilingMultiplier times the offered load, with CeilingFloor as an
// absolute minimum so fractional-Erlang workloads still get a real search
// window. Oversizing is cheap; undersizing turns reachable targets into
// false "infeasible" results, so the defaults are deliberately generous.
type SearchConfig struct {
	CeilingMultiplier float64
	CeilingFloor      int
}

// DefaultSearchConfig is wide enough for aggressive targets (99.9% service
// level) at any realistic occupancy ceiling.
var DefaultSearchConfig = SearchConfig{CeilingMultiplier: 10, CeilingFloor: 10}

// normalized applies the defaults for zero-valued fields.
func (c SearchConfig) normalized() SearchConfig {
	if c.CeilingMultiplier <= 0 {
		c.CeilingMultiplier = DefaultSearchConfig.CeilingMultiplier
	}
	if c.CeilingFloor <= 0 {
		c.CeilingFloor = DefaultSearchConfig.CeilingFloor
	}
	return c
}

// SolveAgents finds the minimum integer agent count whose projected
// service level meets the target, scanning upward from the occupancy
// floor ceil(A / maxOccupancy). The scan is linear and correct because
// service level is monotone non-decreasing in agents for a fixed load.
//
// ok=false is a first-class outcome, not an exception. It means either the
// target is infeasible within the search ceiling (surface as
// CanAchieveTarget=false) or the model is missing a required parameter.
func SolveAgents(p *Projector, cfg SearchConfig) (int, bool) {
	cfg = cfg.normalized()
	a := p.Intensity()

	minAgents := int(math.Ceil(a / p.Constraints().MaxOccupancy))
	if minAgents < 0 {
		minAgents = 0
	}

	ceiling := int(math.Ceil(a * cfg.CeilingMultiplier))
	if ceiling < minAgents+cfg.CeilingFloor {
		ceiling = minAgents + cfg.CeilingFloor
	}

	target := p.Constraints().TargetServiceLevel
	for agents := minAgents; agents <= ceiling; agents++ {
		proj, ok := p.Project(float64(agents))
		if !ok {
			return 0, false
		}
		if proj.ServiceLevel >= target {
			return agents, true
		}
	}
	return 0, false
}

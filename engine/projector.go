package engine

// Projection is one model's view of a candidate agent count. For ModelB
// the service level is reinterpreted as 1 - blocking probability and ASA
// is 0 (a loss system has no queue to wait in).
type Projection struct {
	ServiceLevel        float64
	ASA                 float64
	Occupancy           float64
	AbandonmentRate     float64 // ModelA only, 0 otherwise
	BlockingProbability float64 // ModelB only, 0 otherwise
}

// Projector wraps one queueing discipline behind a single evaluation
// surface so the staffing search and the reverse evaluator do not branch
// on the model themselves. Construct once per calculation; Project is pure
// and safe for concurrent use.
type Projector struct {
	model       Model
	workload    Workload
	constraints Constraints
	behavior    Behavior
	intensity   float64
}

// NewProjector builds a projector over normalized inputs. Agent
// concurrency divides the offered load: an agent handling two contacts at
// once absorbs two Erlangs of demand.
func NewProjector(model Model, w Workload, c Constraints, b Behavior) *Projector {
	b = b.Normalized()
	return &Projector{
		model:       model,
		workload:    w,
		constraints: c.Normalized(),
		behavior:    b,
		intensity:   w.Intensity() / float64(b.Concurrency),
	}
}

// Intensity returns the concurrency-adjusted offered load in Erlangs.
func (p *Projector) Intensity() float64 {
	return p.intensity
}

// Constraints returns the normalized constraints the projector solves
// against.
func (p *Projector) Constraints() Constraints {
	return p.constraints
}

// Project evaluates the selected model at a candidate agent count.
// ok is false only when the model needs a parameter that was not supplied
// (ModelA without average patience); callers branch on it rather than
// receiving an error.
func (p *Projector) Project(agents float64) (Projection, bool) {
	a := p.intensity
	aht := p.workload.AHTSeconds
	threshold := p.constraints.ThresholdSeconds

	switch p.model {
	case ModelB:
		blocking := ErlangB(agents, a)
		return Projection{
			ServiceLevel:        clampProb(1 - blocking),
			ASA:                 0,
			Occupancy:           Occupancy(agents, a),
			BlockingProbability: blocking,
		}, true

	case ModelA:
		patience := p.behavior.AveragePatienceSeconds
		res, ok := ErlangA(agents, a, aht, patience)
		if !ok {
			return Projection{}, false
		}
		sl, _ := ErlangAServiceLevel(agents, a, aht, patience, threshold)
		asa, _ := ErlangAASA(agents, a, aht, patience)
		return Projection{
			ServiceLevel:    sl,
			ASA:             asa,
			Occupancy:       Occupancy(agents, res.EffectiveIntensity),
			AbandonmentRate: res.AbandonmentRate,
		}, true

	default: // ModelC
		return Projection{
			ServiceLevel: ServiceLevel(agents, a, aht, threshold),
			ASA:          ASA(agents, a, aht),
			Occupancy:    Occupancy(agents, a),
		}, true
	}
}

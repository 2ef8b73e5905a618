package engine

// Workload describes the offered contact load for one interval.
// Immutable per calculation; produced by outside collaborators (UI, file
// import) and never mutated by the engine.
type Workload struct {
	Volume          float64 // expected contacts in the interval (>= 0)
	AHTSeconds      float64 // average handle time per contact (> 0)
	IntervalMinutes float64 // interval length (> 0)
}

// Constraints holds the service objectives a calculation solves against.
type Constraints struct {
	TargetServiceLevel float64 // fraction of contacts answered in time, [0,1]
	ThresholdSeconds   float64 // answer-time threshold (>= 0)
	MaxOccupancy       float64 // agent occupancy ceiling, (0,1]
}

// Behavior holds workforce and customer behavior parameters.
type Behavior struct {
	Shrinkage              float64 // fraction of paid time not productive, [0,1)
	AveragePatienceSeconds float64 // mean time before abandoning (Erlang A only)
	Concurrency            int     // simultaneous contacts per agent (>= 1)
}

// NewWorkload groups interval workload parameters.
func NewWorkload(volume, ahtSeconds, intervalMinutes float64) Workload {
	return Workload{Volume: volume, AHTSeconds: ahtSeconds, IntervalMinutes: intervalMinutes}
}

// NewConstraints groups service objective parameters.
func NewConstraints(targetServiceLevel, thresholdSeconds, maxOccupancy float64) Constraints {
	return Constraints{
		TargetServiceLevel: targetServiceLevel,
		ThresholdSeconds:   thresholdSeconds,
		MaxOccupancy:       maxOccupancy,
	}
}

// NewBehavior groups workforce behavior parameters.
func NewBehavior(shrinkage, averagePatienceSeconds float64, concurrency int) Behavior {
	return Behavior{
		Shrinkage:              shrinkage,
		AveragePatienceSeconds: averagePatienceSeconds,
		Concurrency:            concurrency,
	}
}

// IntervalSeconds returns the interval length in seconds.
func (w Workload) IntervalSeconds() float64 {
	return w.IntervalMinutes * 60
}

// Intensity returns the workload's offered load in Erlangs.
func (w Workload) Intensity() float64 {
	return TrafficIntensity(w.Volume, w.AHTSeconds, w.IntervalSeconds())
}

// Normalized clamps constraint values into their documented domains.
// An out-of-range occupancy ceiling falls back to 1 (no ceiling); the
// target and threshold clamp to their lower bounds.
func (c Constraints) Normalized() Constraints {
	if c.MaxOccupancy <= 0 || c.MaxOccupancy > 1 {
		c.MaxOccupancy = 1
	}
	c.TargetServiceLevel = clampProb(c.TargetServiceLevel)
	if c.ThresholdSeconds < 0 {
		c.ThresholdSeconds = 0
	}
	return c
}

// Normalized clamps behavior values into their documented domains.
// Negative shrinkage reads as 0; concurrency has a floor of 1.
func (b Behavior) Normalized() Behavior {
	if b.Shrinkage < 0 {
		b.Shrinkage = 0
	}
	if b.AveragePatienceSeconds < 0 {
		b.AveragePatienceSeconds = 0
	}
	if b.Concurrency < 1 {
		b.Concurrency = 1
	}
	return b
}

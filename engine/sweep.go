package engine

// IntervalWorkload labels one interval of a staffing table, typically a
// time-of-day bucket ("09:00", "09:30", ...).
type IntervalWorkload struct {
	Label    string
	Workload Workload
}

// IntervalMetrics pairs an interval label with its forward-solve result.
type IntervalMetrics struct {
	Label   string
	Metrics StaffingMetrics
}

// SweepResult is a full staffing table over a sequence of intervals, the
// shape a day-plan renderer consumes.
type SweepResult struct {
	Intervals  []IntervalMetrics
	PeakAgents int     // largest RequiredAgents across intervals
	PeakFTE    float64 // TotalFTE at the peak interval
}

// Sweep forward-solves a sequence of interval workloads under shared
// constraints and behavior. Intervals are independent, so results are
// order-preserving and the call stays pure. ok=false propagates a missing
// model parameter (same semantics as CalculateStaffingMetrics).
func Sweep(model Model, intervals []IntervalWorkload, c Constraints, b Behavior) (*SweepResult, bool) {
	out := &SweepResult{Intervals: make([]IntervalMetrics, 0, len(intervals))}
	for _, iv := range intervals {
		m, ok := CalculateStaffingMetrics(model, iv.Workload, c, b)
		if !ok {
			return nil, false
		}
		out.Intervals = append(out.Intervals, IntervalMetrics{Label: iv.Label, Metrics: *m})
		if m.RequiredAgents > out.PeakAgents {
			out.PeakAgents = m.RequiredAgents
			out.PeakFTE = m.TotalFTE
		}
	}
	return out, true
}

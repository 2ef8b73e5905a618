package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/erlang-staff/erlang-staff/engine"
)

// Result is one evaluated scenario. Exactly one of Forward or Reverse is
// set on success; Err carries a per-scenario failure (missing patience for
// an Erlang A case) without aborting the rest of the run.
type Result struct {
	Scenario Scenario
	Forward  *engine.StaffingMetrics
	Reverse  *engine.AchievableMetrics
	Err      error
}

// Run evaluates every scenario in the file, up to parallelism at a time
// (0 means unbounded). The engine is pure, so concurrent evaluation needs
// no coordination beyond slot-indexed result writes. Results come back in
// file order regardless of completion order.
func Run(ctx context.Context, f *File, parallelism int) ([]Result, error) {
	results := make([]Result, len(f.Scenarios))

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, s := range f.Scenarios {
		i, s := i, s
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Evaluate runs a single scenario through the engine.
func Evaluate(s Scenario) Result {
	model := engine.ParseModel(s.Model)
	workload := engine.NewWorkload(s.Volume, s.AHTSeconds, s.IntervalMinutes)
	constraints := engine.NewConstraints(s.TargetServiceLevel, s.ThresholdSeconds, s.MaxOccupancy)
	behavior := engine.NewBehavior(s.Shrinkage, s.AveragePatienceSeconds, s.Concurrency)

	res := Result{Scenario: s}
	if s.ActualAgents > 0 {
		m, ok := engine.CalculateAchievableMetrics(model, s.ActualAgents, workload, constraints, behavior)
		if !ok {
			res.Err = fmt.Errorf("scenario %q: model %s requires average_patience_seconds", s.Name, model)
			return res
		}
		res.Reverse = m
		return res
	}

	m, ok := engine.CalculateStaffingMetrics(model, workload, constraints, behavior)
	if !ok {
		res.Err = fmt.Errorf("scenario %q: model %s requires average_patience_seconds", s.Name, model)
		return res
	}
	res.Forward = m
	return res
}

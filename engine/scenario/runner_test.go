package scenario

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ForwardAndReverseInFileOrder(t *testing.T) {
	f, err := Parse([]byte(v2File))
	require.NoError(t, err)

	results, err := Run(context.Background(), f, 0)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Results follow file order regardless of which goroutine finished first.
	assert.Equal(t, "baseline", results[0].Scenario.Name)
	assert.Equal(t, "peak", results[1].Scenario.Name)
	assert.Equal(t, "headcount-check", results[2].Scenario.Name)

	require.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Forward)
	assert.Nil(t, results[0].Reverse)
	assert.Equal(t, 10.0, results[0].Forward.TrafficIntensity)
	assert.True(t, results[0].Forward.CanAchieveTarget)

	// actual_agents switches a scenario into reverse mode.
	require.NoError(t, results[2].Err)
	require.NotNil(t, results[2].Reverse)
	assert.Nil(t, results[2].Forward)
	assert.Equal(t, 30, results[2].Reverse.ActualAgents)
}

func TestRun_BoundedParallelism(t *testing.T) {
	f, err := Parse([]byte(v2File))
	require.NoError(t, err)

	bounded, err := Run(context.Background(), f, 1)
	require.NoError(t, err)
	unbounded, err := Run(context.Background(), f, 0)
	require.NoError(t, err)

	// Pure engine: the limit changes scheduling, never results.
	assert.Equal(t, unbounded, bounded)
}

func TestEvaluate_MissingPatienceIsPerScenario(t *testing.T) {
	// GIVEN an Erlang A scenario without patience
	r := Evaluate(Scenario{
		Name: "impatient", Model: "A",
		Volume: 100, AHTSeconds: 240, IntervalMinutes: 30,
		TargetServiceLevel: 0.8, ThresholdSeconds: 20, MaxOccupancy: 0.85,
	})

	// THEN the failure stays on that result instead of aborting the run
	assert.Error(t, r.Err)
	assert.Nil(t, r.Forward)
	assert.Nil(t, r.Reverse)
}

func TestRun_CancelledContext(t *testing.T) {
	f, err := Parse([]byte(v2File))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, f, 1)
	assert.Error(t, err)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWorkload_FieldEquivalence(t *testing.T) {
	got := NewWorkload(100, 240, 30)
	want := Workload{Volume: 100, AHTSeconds: 240, IntervalMinutes: 30}
	assert.Equal(t, want, got)
}

func TestNewConstraints_FieldEquivalence(t *testing.T) {
	got := NewConstraints(0.8, 20, 0.85)
	want := Constraints{TargetServiceLevel: 0.8, ThresholdSeconds: 20, MaxOccupancy: 0.85}
	assert.Equal(t, want, got)
}

func TestNewBehavior_FieldEquivalence(t *testing.T) {
	got := NewBehavior(0.3, 180, 2)
	want := Behavior{Shrinkage: 0.3, AveragePatienceSeconds: 180, Concurrency: 2}
	assert.Equal(t, want, got)
}

func TestConstraintsNormalized_OccupancyFallback(t *testing.T) {
	// Out-of-range ceilings fall back to "no ceiling".
	assert.Equal(t, 1.0, Constraints{MaxOccupancy: 0}.Normalized().MaxOccupancy)
	assert.Equal(t, 1.0, Constraints{MaxOccupancy: -0.2}.Normalized().MaxOccupancy)
	assert.Equal(t, 1.0, Constraints{MaxOccupancy: 1.3}.Normalized().MaxOccupancy)
	assert.Equal(t, 0.85, Constraints{MaxOccupancy: 0.85}.Normalized().MaxOccupancy)
}

func TestConstraintsNormalized_ClampsTargetAndThreshold(t *testing.T) {
	c := Constraints{TargetServiceLevel: 1.4, ThresholdSeconds: -5, MaxOccupancy: 0.9}.Normalized()
	assert.Equal(t, 1.0, c.TargetServiceLevel)
	assert.Equal(t, 0.0, c.ThresholdSeconds)
}

func TestBehaviorNormalized_Floors(t *testing.T) {
	b := Behavior{Shrinkage: -0.1, AveragePatienceSeconds: -60, Concurrency: 0}.Normalized()
	assert.Equal(t, 0.0, b.Shrinkage)
	assert.Equal(t, 0.0, b.AveragePatienceSeconds)
	assert.Equal(t, 1, b.Concurrency)
}

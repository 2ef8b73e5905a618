package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const v2File = `
version: "2"
defaults:
  model: C
  aht_seconds: 180
  interval_minutes: 30
  target_service_level: 0.8
  threshold_seconds: 20
  max_occupancy: 0.85
  shrinkage: 0.3
scenarios:
  - name: baseline
    volume: 100
  - name: peak
    volume: 160
    model: A
    average_patience_seconds: 180
  - name: headcount-check
    volume: 200
    actual_agents: 30
`

func TestParse_V2WithDefaults(t *testing.T) {
	f, err := Parse([]byte(v2File))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 3)

	// Defaults fill zero-valued fields; explicit fields stay.
	baseline := f.Scenarios[0]
	assert.Equal(t, "C", baseline.Model)
	assert.Equal(t, 180.0, baseline.AHTSeconds)
	assert.Equal(t, 0.8, baseline.TargetServiceLevel)
	assert.Equal(t, 0.3, baseline.Shrinkage)

	peak := f.Scenarios[1]
	assert.Equal(t, "A", peak.Model)
	assert.Equal(t, 180.0, peak.AveragePatienceSeconds)

	assert.Equal(t, 30, f.Scenarios[2].ActualAgents)
}

func TestParse_V1PercentUpgrade(t *testing.T) {
	// GIVEN a v1 file with percent-style fractions
	src := `
version: "1"
scenarios:
  - name: legacy
    volume: 100
    aht_seconds: 240
    interval_minutes: 30
    target_service_level: 80
    threshold_seconds: 20
    max_occupancy: 85
    shrinkage: 30
`
	// WHEN parsed
	f, err := Parse([]byte(src))
	require.NoError(t, err)

	// THEN values are converted to fractions and the file reads as v2
	assert.Equal(t, "2", f.Version)
	s := f.Scenarios[0]
	assert.Equal(t, 0.80, s.TargetServiceLevel)
	assert.Equal(t, 0.85, s.MaxOccupancy)
	assert.Equal(t, 0.30, s.Shrinkage)
}

func TestParse_V1DefaultsBlockConvertsAndWarns(t *testing.T) {
	// GIVEN a v1 file carrying percent-style values in its defaults block
	src := `
version: "1"
defaults:
  target_service_level: 80
  max_occupancy: 85
  shrinkage: 30
  aht_seconds: 180
  interval_minutes: 30
scenarios:
  - name: legacy
    volume: 100
`
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	// WHEN parsed
	f, err := Parse([]byte(src))
	require.NoError(t, err)

	// THEN the converted defaults flow into the scenario as fractions
	s := f.Scenarios[0]
	assert.Equal(t, 0.80, s.TargetServiceLevel)
	assert.Equal(t, 0.85, s.MaxOccupancy)
	assert.Equal(t, 0.30, s.Shrinkage)

	// AND the deprecation is called out for the defaults block itself
	warned := false
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, "defaults block") {
			warned = true
		}
	}
	assert.True(t, warned, "expected a deprecation warning for the defaults block")
}

func TestApplyDefaults_ExplicitZeroInheritsDefault(t *testing.T) {
	// Zero-valued merging: a scenario writing `shrinkage: 0` cannot be told
	// apart from one omitting the key, so the file default wins. Documented
	// on Defaults; this pins the behavior.
	src := `
version: "2"
defaults:
  aht_seconds: 180
  interval_minutes: 30
  shrinkage: 0.3
scenarios:
  - name: zero-shrinkage
    volume: 100
    shrinkage: 0
`
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, 0.3, f.Scenarios[0].Shrinkage)
}

func TestParse_MissingVersionTreatedAsV1(t *testing.T) {
	src := `
scenarios:
  - name: legacy
    volume: 100
    aht_seconds: 240
    interval_minutes: 30
    target_service_level: 80
`
	f, err := Parse([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "2", f.Version)
	assert.Equal(t, 0.80, f.Scenarios[0].TargetServiceLevel)
}

func TestParse_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"no scenarios", `version: "2"`},
		{"missing name", `{version: "2", scenarios: [{volume: 10, aht_seconds: 240, interval_minutes: 30}]}`},
		{"duplicate name", `{version: "2", scenarios: [
			{name: x, volume: 10, aht_seconds: 240, interval_minutes: 30},
			{name: x, volume: 20, aht_seconds: 240, interval_minutes: 30}]}`},
		{"zero aht", `{version: "2", scenarios: [{name: x, volume: 10, interval_minutes: 30}]}`},
		{"target above one", `{version: "2", scenarios: [{name: x, volume: 10, aht_seconds: 240, interval_minutes: 30, target_service_level: 1.4}]}`},
		{"not yaml", `:{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src))
			assert.Error(t, err)
		})
	}
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(v2File), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Scenarios, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

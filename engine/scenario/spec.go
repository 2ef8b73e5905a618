// Package scenario loads what-if scenario files and evaluates them
// against the staffing engine, concurrently when asked. It is the file
// format collaborator the pure engine deliberately does not own.
package scenario

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// File is the top-level scenario configuration, loaded from YAML via
// Load(path). Version "1" expressed percent-style fields as whole numbers
// (80 for 80%); version "2" uses fractions throughout.
type File struct {
	Version   string     `yaml:"version"`
	Defaults  *Defaults  `yaml:"defaults,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Defaults supply per-file fallbacks for fields a scenario leaves zero.
//
// Merging is zero-valued: an explicit `shrinkage: 0` in a scenario is
// indistinguishable from an omitted key and inherits the file default.
// Scenarios that need a literal zero against a non-zero default must drop
// that key from the defaults block instead.
type Defaults struct {
	Model                  string  `yaml:"model,omitempty"`
	AHTSeconds             float64 `yaml:"aht_seconds,omitempty"`
	IntervalMinutes        float64 `yaml:"interval_minutes,omitempty"`
	TargetServiceLevel     float64 `yaml:"target_service_level,omitempty"`
	ThresholdSeconds       float64 `yaml:"threshold_seconds,omitempty"`
	MaxOccupancy           float64 `yaml:"max_occupancy,omitempty"`
	Shrinkage              float64 `yaml:"shrinkage,omitempty"`
	AveragePatienceSeconds float64 `yaml:"average_patience_seconds,omitempty"`
	Concurrency            int     `yaml:"concurrency,omitempty"`
}

// Scenario is one what-if case. ActualAgents > 0 switches the case into
// reverse mode: evaluate what that headcount achieves instead of solving
// for a headcount.
type Scenario struct {
	Name                   string  `yaml:"name"`
	Model                  string  `yaml:"model,omitempty"`
	Volume                 float64 `yaml:"volume"`
	AHTSeconds             float64 `yaml:"aht_seconds,omitempty"`
	IntervalMinutes        float64 `yaml:"interval_minutes,omitempty"`
	TargetServiceLevel     float64 `yaml:"target_service_level,omitempty"`
	ThresholdSeconds       float64 `yaml:"threshold_seconds,omitempty"`
	MaxOccupancy           float64 `yaml:"max_occupancy,omitempty"`
	Shrinkage              float64 `yaml:"shrinkage,omitempty"`
	AveragePatienceSeconds float64 `yaml:"average_patience_seconds,omitempty"`
	Concurrency            int     `yaml:"concurrency,omitempty"`
	ActualAgents           int     `yaml:"actual_agents,omitempty"`
}

// percentScale converts the v1 format's whole-percent values to fractions.
const percentScale = 100.0

// UpgradeV1ToV2 auto-upgrades a v1 scenario file in-place: percent-style
// target_service_level, max_occupancy, and shrinkage values are divided
// down to fractions and the version field is set to "2". Idempotent on v2
// files. Emits logrus.Warn deprecation notices per converted scenario.
func UpgradeV1ToV2(f *File) {
	if f.Version != "" && f.Version != "1" {
		return
	}
	f.Version = "2"
	if d := f.Defaults; d != nil {
		if d.TargetServiceLevel != 0 || d.MaxOccupancy != 0 || d.Shrinkage != 0 {
			logrus.Warnf("defaults block uses the deprecated v1 percent format; converting to fractions, update your file to version 2")
		}
		d.TargetServiceLevel /= percentScale
		d.MaxOccupancy /= percentScale
		d.Shrinkage /= percentScale
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.TargetServiceLevel != 0 || s.MaxOccupancy != 0 || s.Shrinkage != 0 {
			logrus.Warnf("scenario %q uses the deprecated v1 percent format; converting to fractions, update your file to version 2", s.Name)
		}
		s.TargetServiceLevel /= percentScale
		s.MaxOccupancy /= percentScale
		s.Shrinkage /= percentScale
	}
}

// applyDefaults fills a scenario's zero-valued fields from the file
// defaults.
func (f *File) applyDefaults() {
	d := f.Defaults
	if d == nil {
		return
	}
	for i := range f.Scenarios {
		s := &f.Scenarios[i]
		if s.Model == "" {
			s.Model = d.Model
		}
		if s.AHTSeconds == 0 {
			s.AHTSeconds = d.AHTSeconds
		}
		if s.IntervalMinutes == 0 {
			s.IntervalMinutes = d.IntervalMinutes
		}
		if s.TargetServiceLevel == 0 {
			s.TargetServiceLevel = d.TargetServiceLevel
		}
		if s.ThresholdSeconds == 0 {
			s.ThresholdSeconds = d.ThresholdSeconds
		}
		if s.MaxOccupancy == 0 {
			s.MaxOccupancy = d.MaxOccupancy
		}
		if s.Shrinkage == 0 {
			s.Shrinkage = d.Shrinkage
		}
		if s.AveragePatienceSeconds == 0 {
			s.AveragePatienceSeconds = d.AveragePatienceSeconds
		}
		if s.Concurrency == 0 {
			s.Concurrency = d.Concurrency
		}
	}
}

// Validate checks structural invariants after upgrade and defaulting.
func (f *File) Validate() error {
	if len(f.Scenarios) == 0 {
		return fmt.Errorf("scenario file has no scenarios")
	}
	seen := make(map[string]bool, len(f.Scenarios))
	for i, s := range f.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if s.AHTSeconds <= 0 {
			return fmt.Errorf("scenario %q: aht_seconds must be > 0", s.Name)
		}
		if s.IntervalMinutes <= 0 {
			return fmt.Errorf("scenario %q: interval_minutes must be > 0", s.Name)
		}
		if s.TargetServiceLevel < 0 || s.TargetServiceLevel > 1 {
			return fmt.Errorf("scenario %q: target_service_level %v outside [0,1]", s.Name, s.TargetServiceLevel)
		}
	}
	return nil
}

// Load reads, upgrades, defaults, and validates a scenario file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return Parse(data)
}

// Parse is Load for in-memory bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	UpgradeV1ToV2(&f)
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

package validity

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for threshold-table loading and validation.
var (
	// ErrBadThreshold indicates a threshold value is non-finite or outside
	// its legal range.
	ErrBadThreshold = errors.New("validity: threshold out of range")
)

// Thresholds is the frozen ε-constants table supplied by the caller. The
// model itself is constant-free: every gate reads from this table, and a
// table is passed by value so callers cannot mutate a classification
// mid-flight.
type Thresholds struct {
	// EpsArea is the minimum projected overlap area for L1.
	EpsArea float64 `yaml:"eps_area"`
	// EpsFinite is the minimum average depth treated as non-degenerate.
	EpsFinite float64 `yaml:"eps_finite"`
	// RMin is the minimum baseline/depth parallax ratio for distinctness.
	RMin float64 `yaml:"r_min"`
	// ThetaMin is the minimum angular separation (radians).
	ThetaMin float64 `yaml:"theta_min"`
	// EpsRep is the maximum tolerated reprojection error (pixels).
	EpsRep float64 `yaml:"eps_rep"`
	// EpsGeom is the maximum tolerated triangulated variance.
	EpsGeom float64 `yaml:"eps_geom"`
	// EpsDepth is the maximum tolerated depth-sample variance.
	EpsDepth float64 `yaml:"eps_depth"`
	// EpsLum is the maximum tolerated luminance-sample variance.
	EpsLum float64 `yaml:"eps_lum"`
	// EpsLab is the maximum tolerated per-channel Lab variance.
	EpsLab float64 `yaml:"eps_lab"`
}

// DefaultThresholds returns the reference table used by tests and as a
// starting point for deployment tables.
func DefaultThresholds() Thresholds {
	return Thresholds{
		EpsArea:   0.01,
		EpsFinite: 1e-6,
		RMin:      0.05,
		ThetaMin:  0.0349, // ≈ 2°
		EpsRep:    2.0,
		EpsGeom:   0.05,
		EpsDepth:  0.04,
		EpsLum:    25.0,
		EpsLab:    40.0,
	}
}

// Validate checks every threshold is finite and positive.
func (th Thresholds) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"eps_area", th.EpsArea},
		{"eps_finite", th.EpsFinite},
		{"r_min", th.RMin},
		{"theta_min", th.ThetaMin},
		{"eps_rep", th.EpsRep},
		{"eps_geom", th.EpsGeom},
		{"eps_depth", th.EpsDepth},
		{"eps_lum", th.EpsLum},
		{"eps_lab", th.EpsLab},
	}
	for _, f := range fields {
		if !isFinite(f.v) || f.v <= 0 {
			return fmt.Errorf("%w: %s=%v", ErrBadThreshold, f.name, f.v)
		}
	}

	return nil
}

// LoadThresholds reads and validates a YAML threshold table. Unknown keys
// are rejected so a typo cannot silently fall back to a zero gate.
func LoadThresholds(path string) (Thresholds, error) {
	var th Thresholds

	raw, err := os.ReadFile(path)
	if err != nil {
		return th, fmt.Errorf("validity: read thresholds: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&th); err != nil {
		return th, fmt.Errorf("validity: decode thresholds: %w", err)
	}
	if err = th.Validate(); err != nil {
		return th, err
	}

	return th, nil
}

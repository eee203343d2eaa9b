package validity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Kyle-Wang0211/Aether3D-sub019/validity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestThresholds_DefaultValid verifies the reference table passes its own
// validation.
func TestThresholds_DefaultValid(t *testing.T) {
	assert.NoError(t, validity.DefaultThresholds().Validate())
}

// TestThresholds_ValidateRejects verifies zero and negative values are
// rejected.
func TestThresholds_ValidateRejects(t *testing.T) {
	th := validity.DefaultThresholds()
	th.EpsRep = 0
	assert.ErrorIs(t, th.Validate(), validity.ErrBadThreshold)

	th = validity.DefaultThresholds()
	th.RMin = -0.1
	assert.ErrorIs(t, th.Validate(), validity.ErrBadThreshold)
}

// TestLoadThresholds_YAML round-trips a deployment table from disk.
func TestLoadThresholds_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thresholds.yaml")
	doc := []byte(`
eps_area: 0.02
eps_finite: 1.0e-6
r_min: 0.1
theta_min: 0.05
eps_rep: 1.5
eps_geom: 0.04
eps_depth: 0.03
eps_lum: 20
eps_lab: 30
`)
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	th, err := validity.LoadThresholds(path)
	require.NoError(t, err)
	assert.Equal(t, 0.02, th.EpsArea)
	assert.Equal(t, 1.5, th.EpsRep)
	assert.Equal(t, 30.0, th.EpsLab)
}

// TestLoadThresholds_RejectsUnknownKey verifies a typo cannot silently
// zero a gate.
func TestLoadThresholds_RejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thresholds.yaml")
	doc := []byte("eps_area: 0.02\neps_tyop: 3\n")
	require.NoError(t, os.WriteFile(path, doc, 0o600))

	_, err := validity.LoadThresholds(path)
	assert.Error(t, err)
}

// TestLoadThresholds_RejectsIncomplete verifies a partial table fails
// validation (missing keys decode as zero).
func TestLoadThresholds_RejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thresholds.yaml")
	require.NoError(t, os.WriteFile(path, []byte("eps_area: 0.02\n"), 0o600))

	_, err := validity.LoadThresholds(path)
	assert.ErrorIs(t, err, validity.ErrBadThreshold)
}

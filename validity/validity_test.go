package validity_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/Kyle-Wang0211/Aether3D-sub019/validity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// obsAt builds an L1-valid observation at the given position, looking
// along forward, with optional depth/luminance/Lab samples attached.
func obsAt(id string, ts int64, pos, fwd validity.Vec3, depth float64) validity.Observation {
	hit := validity.Vec3{X: 0, Y: 0, Z: depth}
	d := depth
	lum := 50.0

	return validity.Observation{
		SchemaVersion: 0x0204,
		ID:            id,
		TimestampMs:   ts,
		PatchID:       "patch-A",
		Pose:          validity.SensorPose{Position: pos, Forward: fwd},
		Ray: validity.Ray{
			Origin:               pos,
			Direction:            fwd,
			Intersection:         &hit,
			ProjectedOverlapArea: 0.5,
		},
		Raw: validity.Raw{
			DepthM:      &d,
			LuminanceL:  &lum,
			SampleCount: 1,
		},
		Confidence: 0.9,
		Occlusion:  validity.NotOccluded,
	}
}

// spreadObs builds n L1-valid observations on a wide baseline so every
// pair is a distinct viewpoint under the default thresholds.
func spreadObs(n int) []validity.Observation {
	obs := make([]validity.Observation, 0, n)
	for i := 0; i < n; i++ {
		angle := 0.25 * float64(i)
		fwd, err := validity.NewForward(math.Sin(angle), 0, math.Cos(angle))
		if err != nil {
			panic(err)
		}
		pos := validity.Vec3{X: 2.0 * float64(i), Y: 0, Z: 0}
		obs = append(obs, obsAt(fmt.Sprintf("obs-%02d", i), int64(1000+i), pos, fwd, 4.0))
	}

	return obs
}

func TestNewForward_UnitCheck(t *testing.T) {
	_, err := validity.NewForward(0, 0, 1)
	assert.NoError(t, err)

	_, err = validity.NewForward(0, 0, 1.1)
	assert.ErrorIs(t, err, validity.ErrNonUnitForward)

	_, err = validity.NewForward(math.NaN(), 0, 1)
	assert.ErrorIs(t, err, validity.ErrNonUnitForward)
}

// TestL1_GateOrder verifies every L1 gate and that they trip in the fixed
// order.
func TestL1_GateOrder(t *testing.T) {
	th := validity.DefaultThresholds()
	base := spreadObs(1)[0]

	t.Run("valid", func(t *testing.T) {
		assert.Equal(t, validity.OutcomeL1, validity.L1(base, th))
	})

	t.Run("non_finite_input", func(t *testing.T) {
		o := base
		o.Ray.ProjectedOverlapArea = math.NaN()
		assert.Equal(t, validity.Invalid(validity.ReasonNonFiniteInput), validity.L1(o, th))

		o = base
		o.Pose.Position.X = math.Inf(1)
		assert.Equal(t, validity.Invalid(validity.ReasonNonFiniteInput), validity.L1(o, th))
	})

	t.Run("no_intersection", func(t *testing.T) {
		o := base
		o.Ray.Intersection = nil
		assert.Equal(t, validity.Invalid(validity.ReasonNoGeometricIntersection), validity.L1(o, th))

		bad := validity.Vec3{X: math.NaN()}
		o.Ray.Intersection = &bad
		assert.Equal(t, validity.Invalid(validity.ReasonNoGeometricIntersection), validity.L1(o, th))
	})

	t.Run("insufficient_overlap", func(t *testing.T) {
		o := base
		o.Ray.ProjectedOverlapArea = th.EpsArea / 2
		assert.Equal(t, validity.Invalid(validity.ReasonInsufficientOverlapArea), validity.L1(o, th))
	})

	t.Run("fully_occluded", func(t *testing.T) {
		o := base
		o.Occlusion = validity.FullyOccluded
		assert.Equal(t, validity.Invalid(validity.ReasonFullyOccluded), validity.L1(o, th))
	})

	t.Run("partial_occlusion_passes", func(t *testing.T) {
		o := base
		o.Occlusion = validity.PartiallyOccluded
		assert.Equal(t, validity.OutcomeL1, validity.L1(o, th))
	})
}

// TestAreDistinct covers the parallax and angular gates.
func TestAreDistinct(t *testing.T) {
	th := validity.DefaultThresholds()
	obs := spreadObs(2)

	assert.True(t, validity.AreDistinct(obs[0], obs[1], th))

	t.Run("missing_depth", func(t *testing.T) {
		a := obs[0]
		a.Raw.DepthM = nil
		assert.False(t, validity.AreDistinct(a, obs[1], th))
	})

	t.Run("non_positive_depth", func(t *testing.T) {
		a := obs[0]
		zero := 0.0
		a.Raw.DepthM = &zero
		assert.False(t, validity.AreDistinct(a, obs[1], th))
	})

	t.Run("parallax_too_small", func(t *testing.T) {
		// Same position: baseline 0 < r_min · depth.
		b := obs[1]
		b.Pose.Position = obs[0].Pose.Position
		assert.False(t, validity.AreDistinct(obs[0], b, th))
	})

	t.Run("angle_too_small", func(t *testing.T) {
		// Same forward: θ = 0 < θ_min.
		b := obs[1]
		b.Pose.Forward = obs[0].Pose.Forward
		assert.False(t, validity.AreDistinct(obs[0], b, th))
	})
}

// TestL2 covers support, skip-on-missing, fail-closed, and first-pair
// sufficiency.
func TestL2(t *testing.T) {
	th := validity.DefaultThresholds()
	obs := spreadObs(3)
	key01 := validity.NewPairKey(obs[0].ID, obs[1].ID)
	key02 := validity.NewPairKey(obs[0].ID, obs[2].ID)

	t.Run("insufficient_support", func(t *testing.T) {
		got := validity.L2(obs[:1], nil, th)
		assert.Equal(t, validity.Invalid(validity.ReasonInsufficientMultiViewSupport), got)
	})

	t.Run("no_metrics_at_all", func(t *testing.T) {
		got := validity.L2(obs, map[validity.PairKey]validity.PairMetrics{}, th)
		assert.Equal(t, validity.Invalid(validity.ReasonMissingPairMetrics), got)
	})

	t.Run("one_valid_pair_suffices", func(t *testing.T) {
		pairs := map[validity.PairKey]validity.PairMetrics{
			key02: {ReprojectionErrorPx: 1.0, TriangulatedVariance: 0.01},
		}
		assert.Equal(t, validity.OutcomeL2, validity.L2(obs, pairs, th))
	})

	t.Run("reprojection_fails_closed", func(t *testing.T) {
		pairs := map[validity.PairKey]validity.PairMetrics{
			key01: {ReprojectionErrorPx: th.EpsRep * 2, TriangulatedVariance: 0.01},
			// A later, perfectly good pair must never be reached.
			key02: {ReprojectionErrorPx: 0.1, TriangulatedVariance: 0.001},
		}
		got := validity.L2(obs, pairs, th)
		assert.Equal(t, validity.Invalid(validity.ReasonReprojectionErrorExceeded), got)
	})

	t.Run("variance_fails_closed", func(t *testing.T) {
		pairs := map[validity.PairKey]validity.PairMetrics{
			key01: {ReprojectionErrorPx: 0.5, TriangulatedVariance: th.EpsGeom * 3},
		}
		got := validity.L2(obs, pairs, th)
		assert.Equal(t, validity.Invalid(validity.ReasonGeometricVarianceExceeded), got)
	})
}

// TestL3 covers the distinct-viewpoint selection and the photometric
// gates through to core/strict.
func TestL3(t *testing.T) {
	th := validity.DefaultThresholds()

	t.Run("insufficient_support", func(t *testing.T) {
		got := validity.L3(spreadObs(2), th)
		assert.Equal(t, validity.Invalid(validity.ReasonInsufficientMultiViewSupport), got)
	})

	t.Run("insufficient_distinct_viewpoints", func(t *testing.T) {
		obs := spreadObs(3)
		// Collapse all positions: no pair is distinct.
		for i := range obs {
			obs[i].Pose.Position = validity.Vec3{}
		}
		got := validity.L3(obs, th)
		assert.Equal(t, validity.Invalid(validity.ReasonInsufficientDistinctViewpoints), got)
	})

	t.Run("core_without_lab", func(t *testing.T) {
		assert.Equal(t, validity.OutcomeL3Core, validity.L3(spreadObs(3), th))
	})

	t.Run("strict_with_lab", func(t *testing.T) {
		obs := spreadObs(3)
		for i := range obs {
			obs[i].Raw.Lab = &validity.Lab{L: 50, A: 10, B: -5}
		}
		assert.Equal(t, validity.OutcomeL3Strict, validity.L3(obs, th))
	})

	t.Run("lab_variance_exceeded", func(t *testing.T) {
		obs := spreadObs(3)
		for i := range obs {
			obs[i].Raw.Lab = &validity.Lab{L: 50, A: float64(i) * 100, B: 0}
		}
		got := validity.L3(obs, th)
		assert.Equal(t, validity.Invalid(validity.ReasonLabVarianceExceeded), got)
	})

	t.Run("depth_variance_exceeded", func(t *testing.T) {
		obs := spreadObs(3)
		for i := range obs {
			d := 4.0 + float64(i)*2.0
			obs[i].Raw.DepthM = &d
		}
		got := validity.L3(obs, th)
		assert.Equal(t, validity.Invalid(validity.ReasonDepthVarianceExceeded), got)
	})

	t.Run("luminance_variance_exceeded", func(t *testing.T) {
		obs := spreadObs(3)
		for i := range obs {
			l := 20.0 + float64(i)*30.0
			obs[i].Raw.LuminanceL = &l
		}
		got := validity.L3(obs, th)
		assert.Equal(t, validity.Invalid(validity.ReasonLuminanceVarianceExceeded), got)
	})

	t.Run("missing_luminance", func(t *testing.T) {
		obs := spreadObs(3)
		for i := range obs {
			obs[i].Raw.LuminanceL = nil
		}
		got := validity.L3(obs, th)
		assert.Equal(t, validity.Invalid(validity.ReasonLuminanceVarianceExceeded), got)
	})
}

// TestL3StrictImpliesCorePath: a strict outcome always passes every core
// gate: removing Lab from the same window yields core, never Invalid.
func TestL3StrictImpliesCorePath(t *testing.T) {
	th := validity.DefaultThresholds()
	obs := spreadObs(4)
	for i := range obs {
		obs[i].Raw.Lab = &validity.Lab{L: 50, A: 1, B: 1}
	}
	require.Equal(t, validity.OutcomeL3Strict, validity.L3(obs, th))

	for i := range obs {
		obs[i].Raw.Lab = nil
	}
	assert.Equal(t, validity.OutcomeL3Core, validity.L3(obs, th))
}

// TestPairKey_CanonicalOrder verifies lexicographic keying.
func TestPairKey_CanonicalOrder(t *testing.T) {
	assert.Equal(t, validity.NewPairKey("a", "b"), validity.NewPairKey("b", "a"))
	k := validity.NewPairKey("z", "a")
	assert.Equal(t, "a", k.Lo)
	assert.Equal(t, "z", k.Hi)
}

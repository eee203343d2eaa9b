package engine_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/Kyle-Wang0211/Aether3D-sub019/eeb"
	"github.com/Kyle-Wang0211/Aether3D-sub019/engine"
	"github.com/Kyle-Wang0211/Aether3D-sub019/validity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureObs builds an L1-valid observation for patch on a spread-out
// viewpoint ring, with depth and luminance attached.
func captureObs(patch, id string, ts int64, i int) validity.Observation {
	angle := 0.25 * float64(i)
	fwd, err := validity.NewForward(math.Sin(angle), 0, math.Cos(angle))
	if err != nil {
		panic(err)
	}
	pos := validity.Vec3{X: 2.0 * float64(i), Y: 0, Z: 0}
	hit := validity.Vec3{X: 0, Y: 0, Z: 4}
	depth := 4.0
	lum := 50.0

	return validity.Observation{
		SchemaVersion: 0x0204,
		ID:            id,
		TimestampMs:   ts,
		PatchID:       patch,
		Pose:          validity.SensorPose{Position: pos, Forward: fwd},
		Ray: validity.Ray{
			Origin:               pos,
			Direction:            fwd,
			Intersection:         &hit,
			ProjectedOverlapArea: 0.5,
		},
		Raw:        validity.Raw{DepthM: &depth, LuminanceL: &lum, SampleCount: 1},
		Confidence: 0.9,
		Occlusion:  validity.NotOccluded,
	}
}

func goodFrame(patch, id string, ts int64, i int, gate float64) engine.FrameInput {
	return engine.FrameInput{
		Observation:    captureObs(patch, id, ts, i),
		GateQuality:    gate,
		SoftQuality:    gate,
		Verdict:        engine.VerdictGood,
		AggregatedGate: gate,
		AggregatedSoft: gate,
	}
}

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.NewEngine(validity.DefaultThresholds())
	require.NoError(t, err)

	return e
}

// TestEvidence_MonotoneAndBestFrame verifies evidence never decreases and
// bestFrameId moves only on strict improvement.
func TestEvidence_MonotoneAndBestFrame(t *testing.T) {
	e := newEngine(t)

	require.NoError(t, e.ProcessObservation(goodFrame("p", "f1", 100, 0, 0.6)))
	s := e.Snapshot(100)
	assert.Equal(t, 0.6, s.Patches["p"].Evidence)
	assert.Equal(t, "f1", s.Patches["p"].BestFrameID)

	// A weaker good frame leaves evidence and best frame in place.
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f2", 200, 1, 0.4)))
	s = e.Snapshot(200)
	assert.Equal(t, 0.6, s.Patches["p"].Evidence)
	assert.Equal(t, "f1", s.Patches["p"].BestFrameID)
	assert.Equal(t, int64(200), s.Patches["p"].LastGoodUpdateMs)

	// An equal frame does not steal the best-frame slot.
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f3", 300, 2, 0.6)))
	s = e.Snapshot(300)
	assert.Equal(t, "f1", s.Patches["p"].BestFrameID)

	// A strictly better frame takes it.
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f4", 400, 3, 0.8)))
	s = e.Snapshot(400)
	assert.Equal(t, 0.8, s.Patches["p"].Evidence)
	assert.Equal(t, "f4", s.Patches["p"].BestFrameID)
	assert.Equal(t, uint64(4), s.Patches["p"].ObservationCount)
}

// TestVerdicts verifies suspect and reject bookkeeping.
func TestVerdicts(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f1", 100, 0, 0.5)))

	suspect := goodFrame("p", "f2", 200, 1, 0.9)
	suspect.Verdict = engine.VerdictSuspect
	require.NoError(t, e.ProcessObservation(suspect))

	s := e.Snapshot(200)
	entry := s.Patches["p"]
	assert.Equal(t, 0.5, entry.Evidence, "suspect frames leave evidence unchanged")
	assert.Equal(t, uint64(1), entry.ErrorCount)
	assert.Equal(t, uint32(1), entry.ErrorStreak)
	assert.Equal(t, int64(100), entry.LastGoodUpdateMs)
	assert.Equal(t, int64(200), entry.LastUpdateMs)

	reject := goodFrame("p", "f3", 300, 2, 0.9)
	reject.Verdict = engine.VerdictReject
	require.NoError(t, e.ProcessObservation(reject))
	entry = e.Snapshot(300).Patches["p"]
	assert.Equal(t, 0.5, entry.Evidence, "rejected frames are discarded from accumulation")
	assert.Equal(t, uint64(3), entry.ObservationCount, "rejected frames are still counted")
	assert.Equal(t, uint32(1), entry.ErrorStreak, "reject does not touch the streak")

	// A good frame resets the streak.
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f4", 400, 3, 0.4)))
	entry = e.Snapshot(400).Patches["p"]
	assert.Equal(t, uint32(0), entry.ErrorStreak)
}

// TestDisplays_NeverRetreat verifies gate/soft displays are max-monotone.
func TestDisplays_NeverRetreat(t *testing.T) {
	e := newEngine(t)

	f := goodFrame("p", "f1", 100, 0, 0.5)
	f.AggregatedGate, f.AggregatedSoft = 0.7, 0.6
	require.NoError(t, e.ProcessObservation(f))

	f = goodFrame("p", "f2", 200, 1, 0.5)
	f.AggregatedGate, f.AggregatedSoft = 0.3, 0.2
	require.NoError(t, e.ProcessObservation(f))

	s := e.Snapshot(200)
	assert.Equal(t, 0.7, s.GateDisplay)
	assert.Equal(t, 0.6, s.SoftDisplay)
}

// TestVisualState_Ladder verifies band mapping, monotonicity, and the
// dual threshold on the top state.
func TestVisualState_Ladder(t *testing.T) {
	e := newEngine(t)

	st, err := e.UpdateVisual(0.3)
	require.NoError(t, err)
	assert.Equal(t, engine.StateDarkGray, st)

	st, _ = e.UpdateVisual(0.8)
	assert.Equal(t, engine.StateWhite, st)

	// Lower coverage cannot pull the state back down.
	st, _ = e.UpdateVisual(0.1)
	assert.Equal(t, engine.StateWhite, st)

	// Coverage at the original band alone is not enough: softDisplay has
	// not passed the strict threshold.
	st, _ = e.UpdateVisual(0.99)
	assert.Equal(t, engine.StateWhite, st)

	// Push softDisplay over the strict gate, then the top state engages.
	f := goodFrame("p", "f1", 100, 0, 0.5)
	f.AggregatedSoft = 0.95
	require.NoError(t, e.ProcessObservation(f))
	st, _ = e.UpdateVisual(0.99)
	assert.Equal(t, engine.StateOriginal, st)

	s := e.Snapshot(100)
	assert.Equal(t, engine.StateOriginal, s.Visual)
	assert.Equal(t, 0.99, s.LastTotalDisplay)
}

// TestLevelEscalation drives one patch from L0 to L3 strict through real
// windows and pair metrics.
func TestLevelEscalation(t *testing.T) {
	e := newEngine(t)

	// First plausible frame: L1.
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f0", 100, 0, 0.5)))
	assert.Equal(t, eeb.L1, e.Snapshot(0).Patches["p"].Level)

	// Second distinct frame with in-threshold pair metrics: L2.
	f := goodFrame("p", "f1", 200, 1, 0.5)
	f.Pairs = map[validity.PairKey]validity.PairMetrics{
		validity.NewPairKey("f0", "f1"): {ReprojectionErrorPx: 0.5, TriangulatedVariance: 0.01},
	}
	require.NoError(t, e.ProcessObservation(f))
	assert.Equal(t, eeb.L2, e.Snapshot(0).Patches["p"].Level)

	// Third distinct frame: photometric gates pass without Lab → core.
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f2", 300, 2, 0.5)))
	assert.Equal(t, eeb.L3Core, e.Snapshot(0).Patches["p"].Level)
}

// TestLevelEscalation_Strict verifies the Lab-equipped path reaches
// L3 strict.
func TestLevelEscalation_Strict(t *testing.T) {
	e := newEngine(t)

	lab := func(in engine.FrameInput) engine.FrameInput {
		in.Observation.Raw.Lab = &validity.Lab{L: 50, A: 4, B: -3}
		return in
	}

	require.NoError(t, e.ProcessObservation(lab(goodFrame("p", "f0", 100, 0, 0.5))))
	f := lab(goodFrame("p", "f1", 200, 1, 0.5))
	f.Pairs = map[validity.PairKey]validity.PairMetrics{
		validity.NewPairKey("f0", "f1"): {ReprojectionErrorPx: 0.5, TriangulatedVariance: 0.01},
	}
	require.NoError(t, e.ProcessObservation(f))
	require.NoError(t, e.ProcessObservation(lab(goodFrame("p", "f2", 300, 2, 0.5))))

	assert.Equal(t, eeb.L3Strict, e.Snapshot(0).Patches["p"].Level)
}

// TestInheritLevel verifies the epoch-migration path honors the EEB
// predicate.
func TestInheritLevel(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f0", 100, 0, 0.5)))
	require.Equal(t, eeb.L1, e.Snapshot(0).Patches["p"].Level)

	// Same-epoch inheritance is rejected.
	ok, err := e.InheritLevel("p", eeb.L2, false)
	require.NoError(t, err)
	assert.False(t, ok)

	// Inheritance can never reach L3.
	ok, err = e.InheritLevel("p", eeb.L3Core, true)
	require.NoError(t, err)
	assert.False(t, ok)

	// Cross-epoch L1→L2 applies.
	ok, err = e.InheritLevel("p", eeb.L2, true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, eeb.L2, e.Snapshot(0).Patches["p"].Level)

	_, err = e.InheritLevel("ghost", eeb.L2, true)
	assert.ErrorIs(t, err, engine.ErrUnknownPatch)
}

// TestIngestValidation verifies bad scalars reject the frame atomically.
func TestIngestValidation(t *testing.T) {
	e := newEngine(t)

	f := goodFrame("p", "f1", 100, 0, 0.5)
	f.GateQuality = math.NaN()
	assert.ErrorIs(t, e.ProcessObservation(f), engine.ErrNonCanonicalNumber)

	f = goodFrame("p", "f1", 100, 0, 0.5)
	f.AggregatedSoft = 1.5
	assert.ErrorIs(t, e.ProcessObservation(f), engine.ErrNonCanonicalNumber)

	f = goodFrame("p", "f1", 100, 0, 0.5)
	f.SoftQuality = math.Inf(1)
	assert.ErrorIs(t, e.ProcessObservation(f), engine.ErrNonCanonicalNumber)

	// Nothing landed.
	assert.Empty(t, e.Snapshot(0).Patches)

	_, err := e.UpdateVisual(math.NaN())
	assert.ErrorIs(t, err, engine.ErrNonCanonicalNumber)
}

// TestSnapshot_Immutable verifies a snapshot does not track later engine
// mutation.
func TestSnapshot_Immutable(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f1", 100, 0, 0.5)))

	s := e.Snapshot(100)
	require.NoError(t, e.ProcessObservation(goodFrame("p", "f2", 200, 1, 0.9)))

	assert.Equal(t, 0.5, s.Patches["p"].Evidence, "snapshot must be frozen")
	assert.Equal(t, uint64(1), s.Patches["p"].ObservationCount)
}

// TestRingBuffer_OverwritesOldest verifies the fixed-capacity window.
func TestRingBuffer_OverwritesOldest(t *testing.T) {
	r, err := engine.NewRingBuffer(3)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Cap())

	for i := 0; i < 5; i++ {
		r.Push(captureObs("p", fmt.Sprintf("f%d", i), int64(i), i))
	}
	assert.Equal(t, 3, r.Len())

	items := r.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "f2", items[0].ID, "oldest surviving element first")
	assert.Equal(t, "f4", items[2].ID)

	_, err = engine.NewRingBuffer(0)
	assert.ErrorIs(t, err, engine.ErrRingCapacity)
}

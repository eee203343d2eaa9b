// Package validity defines observation types, pair metrics, and the
// classification outcome model.
package validity

import (
	"errors"
	"math"

	"github.com/Kyle-Wang0211/Aether3D-sub019/numkernel"
)

// Sentinel errors for observation construction.
var (
	// ErrNonUnitForward indicates a forward vector whose norm deviates
	// from 1 by more than the unit tolerance at construction time.
	ErrNonUnitForward = errors.New("validity: forward vector is not unit length")
)

// UnitEpsilon is the construction-time tolerance on forward-vector norm:
// ‖v‖ must satisfy |‖v‖ − 1| ≤ UnitEpsilon. Checked once, never after.
const UnitEpsilon = 1e-6

// Vec3 is a 3-component double-precision vector. Position vectors carry
// no unit constraint; forward vectors are normal-checked at construction
// through NewForward.
type Vec3 struct {
	X, Y, Z float64
}

// NewForward validates that v is unit length within UnitEpsilon and
// returns it. The check happens exactly once, here.
func NewForward(x, y, z float64) (Vec3, error) {
	v := Vec3{X: x, Y: y, Z: z}
	n := v.Norm()
	if math.IsNaN(n) || math.Abs(n-1.0) > UnitEpsilon {
		return Vec3{}, ErrNonUnitForward
	}

	return v, nil
}

// Sub returns a−b component-wise.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Dot returns the inner product ⟨a,b⟩.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Norm returns ‖a‖ through the guarded square root.
func (a Vec3) Norm() float64 {
	return numkernel.SqrtSafe(a.Dot(a))
}

// IsFinite reports whether every component is finite.
func (a Vec3) IsFinite() bool {
	return isFinite(a.X) && isFinite(a.Y) && isFinite(a.Z)
}

// Occlusion is the closed occlusion state of an observation.
type Occlusion uint8

const (
	// NotOccluded: the patch is fully visible in this frame.
	NotOccluded Occlusion = iota
	// PartiallyOccluded: some of the patch is blocked.
	PartiallyOccluded
	// FullyOccluded: the patch is entirely blocked; L1 rejects this.
	FullyOccluded
)

// SensorPose is the capture-time pose of the sensor.
type SensorPose struct {
	// Position of the sensor in world coordinates.
	Position Vec3
	// Forward is the unit viewing direction (validated at construction).
	Forward Vec3
}

// Ray is the observation ray cast toward the patch.
type Ray struct {
	// Origin and Direction define the ray.
	Origin    Vec3
	Direction Vec3
	// Intersection is the surface hit point, nil when the ray missed.
	Intersection *Vec3
	// ProjectedOverlapArea is the patch area covered by this frame's
	// projection, in normalized units.
	ProjectedOverlapArea float64
}

// Lab is a CIE L*a*b* color sample.
type Lab struct {
	L, A, B float64
}

// Raw carries the optional raw measurements attached to an observation.
type Raw struct {
	// DepthM is the metric depth, nil when the sensor produced none.
	DepthM *float64
	// LuminanceL is the L* luminance sample, nil when absent.
	LuminanceL *float64
	// Lab is the full color sample, nil when absent.
	Lab *Lab
	// SampleCount is the number of raw sensor samples aggregated.
	SampleCount int32
}

// Observation is one immutable per-frame measurement of a patch. It is
// produced by the capture layer, never mutated, and consumed by the
// validity model and the evidence engine.
type Observation struct {
	SchemaVersion uint16
	ID            string
	TimestampMs   int64
	PatchID       string
	Pose          SensorPose
	Ray           Ray
	Raw           Raw
	// Confidence is the producer's confidence in [0,1].
	Confidence float64
	Occlusion  Occlusion
}

// PairMetrics carries externally computed two-view consistency metrics
// for an unordered pair of observation ids.
type PairMetrics struct {
	ReprojectionErrorPx  float64
	TriangulatedVariance float64
}

// PairKey is the canonical unordered-pair key: the two observation ids in
// lexicographic order.
type PairKey struct {
	Lo, Hi string
}

// NewPairKey returns the canonically ordered key for ids a and b.
func NewPairKey(a, b string) PairKey {
	if a <= b {
		return PairKey{Lo: a, Hi: b}
	}

	return PairKey{Lo: b, Hi: a}
}

// isFinite reports whether x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

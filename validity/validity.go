// Package validity implements the L1/L2/L3 classification predicates.
package validity

import (
	"github.com/Kyle-Wang0211/Aether3D-sub019/numkernel"
)

// minMultiView is the number of L1-valid observations L2 requires.
const minMultiView = 2

// minViewpoints is the number of pairwise-distinct viewpoints (and depth,
// luminance, Lab samples) the L3 gates require.
const minViewpoints = 3

// L1 classifies a single observation as geometrically plausible.
//
// Gate order is fixed: non-finite input, missing intersection,
// insufficient overlap, full occlusion. Complexity: O(1).
func L1(o Observation, th Thresholds) Outcome {
	// 1) Every required geometric field must be finite.
	if !o.Pose.Position.IsFinite() || !o.Pose.Forward.IsFinite() ||
		!o.Ray.Origin.IsFinite() || !o.Ray.Direction.IsFinite() ||
		!isFinite(o.Ray.ProjectedOverlapArea) {
		return Invalid(ReasonNonFiniteInput)
	}

	// 2) A finite intersection must be present.
	if o.Ray.Intersection == nil || !o.Ray.Intersection.IsFinite() {
		return Invalid(ReasonNoGeometricIntersection)
	}

	// 3) Overlap must reach the area gate.
	if o.Ray.ProjectedOverlapArea < th.EpsArea {
		return Invalid(ReasonInsufficientOverlapArea)
	}

	// 4) Fully occluded frames carry no evidence.
	if o.Occlusion == FullyOccluded {
		return Invalid(ReasonFullyOccluded)
	}

	return OutcomeL1
}

// AreDistinct reports whether observations a and b constitute distinct
// viewpoints: finite poses, present strictly-positive depths, parallax
// ratio baseline/avgDepth ≥ r_min, and angular separation ≥ θ_min.
// The angle is always acos(clamp(⟨f_a,f_b⟩,−1,1)). Complexity: O(1).
func AreDistinct(a, b Observation, th Thresholds) bool {
	// 1) Finite poses.
	if !a.Pose.Position.IsFinite() || !a.Pose.Forward.IsFinite() ||
		!b.Pose.Position.IsFinite() || !b.Pose.Forward.IsFinite() {
		return false
	}

	// 2) Depths present, finite, strictly positive.
	if a.Raw.DepthM == nil || b.Raw.DepthM == nil {
		return false
	}
	da, db := *a.Raw.DepthM, *b.Raw.DepthM
	if !isFinite(da) || !isFinite(db) || da <= 0 || db <= 0 {
		return false
	}

	// 3) Parallax ratio gate.
	baseline := a.Pose.Position.Sub(b.Pose.Position).Norm()
	avgDepth := (da + db) / 2.0
	if avgDepth <= th.EpsFinite {
		return false
	}
	if baseline/avgDepth < th.RMin {
		return false
	}

	// 4) Angular separation gate.
	theta := numkernel.AcosClamped(a.Pose.Forward.Dot(b.Pose.Forward))
	if !isFinite(theta) || theta < th.ThetaMin {
		return false
	}

	return true
}

// L2 classifies an observation window as multi-view supported.
//
// Steps: gather the L1-valid subset V in input order; require |V| ≥ 2;
// walk pairs (i,j), i<j, in the order of V; missing metrics skip the
// pair, out-of-threshold metrics fail closed, and the first in-threshold
// pair suffices. Complexity: O(n²) pair visits worst case.
func L2(obs []Observation, pairs map[PairKey]PairMetrics, th Thresholds) Outcome {
	// 1) L1-valid subset, preserving input order.
	valid := l1Subset(obs, th)
	if len(valid) < minMultiView {
		return Invalid(ReasonInsufficientMultiViewSupport)
	}

	// 2+3) Walk canonically keyed pairs in the order of V.
	for i := 0; i < len(valid); i++ {
		for j := i + 1; j < len(valid); j++ {
			a, b := valid[i], valid[j]
			if a.ID == b.ID {
				continue // duplicate frame id; not a distinct pair
			}

			m, ok := pairs[NewPairKey(a.ID, b.ID)]
			if !ok {
				continue // missing metrics skip, they do not fail
			}
			if m.ReprojectionErrorPx > th.EpsRep {
				return Invalid(ReasonReprojectionErrorExceeded)
			}
			if m.TriangulatedVariance > th.EpsGeom {
				return Invalid(ReasonGeometricVarianceExceeded)
			}

			// One in-threshold pair suffices.
			return OutcomeL2
		}
	}

	// 4) Every candidate pair lacked metrics.
	return Invalid(ReasonMissingPairMetrics)
}

// L3 classifies an observation window as photometrically consistent.
//
// Deterministic selection: the L1-valid subset is ordered by
// (timestampMs, patchId, id) and viewpoints are selected greedily such
// that every selected pair is distinct. Depth and luminance variance
// gates follow; Lab availability decides core versus strict.
func L3(obs []Observation, th Thresholds) Outcome {
	// 1) L1-valid subset.
	valid := l1Subset(obs, th)
	if len(valid) < minViewpoints {
		return Invalid(ReasonInsufficientMultiViewSupport)
	}

	// 2) Fixed candidate order, then greedy distinct selection.
	sortObservations(valid)
	selected := make([]Observation, 0, len(valid))
	for _, cand := range valid {
		ok := true
		for _, s := range selected {
			if !AreDistinct(s, cand, th) {
				ok = false
				break
			}
		}
		if ok {
			selected = append(selected, cand)
		}
	}

	// 3) Three distinct viewpoints minimum.
	if len(selected) < minViewpoints {
		return Invalid(ReasonInsufficientDistinctViewpoints)
	}

	// 4) Depth gate.
	depths := make([]float64, 0, len(selected))
	for _, s := range selected {
		if s.Raw.DepthM != nil && isFinite(*s.Raw.DepthM) {
			depths = append(depths, *s.Raw.DepthM)
		}
	}
	if len(depths) < minViewpoints {
		return Invalid(ReasonMissingDepthMeasurement)
	}
	if variance(depths) > th.EpsDepth {
		return Invalid(ReasonDepthVarianceExceeded)
	}

	// 5) Luminance gate.
	lums := make([]float64, 0, len(selected))
	for _, s := range selected {
		if s.Raw.LuminanceL != nil && isFinite(*s.Raw.LuminanceL) {
			lums = append(lums, *s.Raw.LuminanceL)
		}
	}
	if len(lums) < minViewpoints || variance(lums) > th.EpsLum {
		return Invalid(ReasonLuminanceVarianceExceeded)
	}

	// 6) Lab gate: insufficient samples downgrade to core, not invalid.
	var ls, as, bs []float64
	for _, s := range selected {
		if s.Raw.Lab == nil {
			continue
		}
		if !isFinite(s.Raw.Lab.L) || !isFinite(s.Raw.Lab.A) || !isFinite(s.Raw.Lab.B) {
			continue
		}
		ls = append(ls, s.Raw.Lab.L)
		as = append(as, s.Raw.Lab.A)
		bs = append(bs, s.Raw.Lab.B)
	}
	if len(ls) < minViewpoints {
		return OutcomeL3Core
	}
	maxVar := variance(ls)
	if v := variance(as); numkernel.TotalOrder(v, maxVar) > 0 {
		maxVar = v
	}
	if v := variance(bs); numkernel.TotalOrder(v, maxVar) > 0 {
		maxVar = v
	}
	if maxVar > th.EpsLab {
		return Invalid(ReasonLabVarianceExceeded)
	}

	return OutcomeL3Strict
}

// l1Subset returns the observations classified L1, in input order.
func l1Subset(obs []Observation, th Thresholds) []Observation {
	out := make([]Observation, 0, len(obs))
	for _, o := range obs {
		if L1(o, th) == OutcomeL1 {
			out = append(out, o)
		}
	}

	return out
}

// sortObservations orders xs by (timestampMs, patchId, id) with a fixed
// insertion sort; the host sort is never used on the canonical path.
func sortObservations(xs []Observation) {
	var i, j int
	var v Observation
	for i = 1; i < len(xs); i++ {
		v = xs[i]
		for j = i - 1; j >= 0 && observationLess(v, xs[j]); j-- {
			xs[j+1] = xs[j]
		}
		xs[j+1] = v
	}
}

// observationLess is the (timestampMs, patchId, id) lexicographic order.
func observationLess(a, b Observation) bool {
	if a.TimestampMs != b.TimestampMs {
		return a.TimestampMs < b.TimestampMs
	}
	if a.PatchID != b.PatchID {
		return a.PatchID < b.PatchID
	}

	return a.ID < b.ID
}

// variance computes the population variance with fixed sequential
// summation in slice order; no parallel or reassociated reduction.
func variance(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0.0
	}

	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(n)

	var acc float64
	var d float64
	for _, x := range xs {
		d = x - mean
		acc += d * d
	}

	return acc / float64(n)
}

// Package validity classifies per-frame observations into multi-view
// validity tiers: L1 (geometrically plausible), L2 (multi-view supported),
// and L3 core/strict (photometrically consistent).
//
// What:
//
//   - L1: single-observation plausibility: finite geometry, a present
//     intersection, sufficient projected overlap, not fully occluded.
//   - AreDistinct: the distinct-viewpoints predicate of parallax ratio and
//     angular separation over a pair of observations.
//   - L2: at least two L1-valid observations and one distinct pair whose
//     pair metrics fall inside the reprojection and variance thresholds;
//     out-of-threshold metrics fail closed.
//   - L3: at least three pairwise-distinct viewpoints selected in a fixed
//     deterministic order, then depth/luminance/Lab variance gates; Lab
//     availability splits core from strict.
//
// Why:
//
//   - Every predicate is pure and constant-free: all ε thresholds arrive
//     through a frozen Thresholds table supplied by the caller, so the
//     same inputs classify identically on every platform and deployment.
//
// Determinism:
//
//   - Candidate ordering uses (timestampMs, patchId, id) with plain
//     integer/string comparison; float comparisons go through
//     numkernel.TotalOrder; angular separation is always
//     acos(clamp(dot,−1,1)).
//
// Errors:
//
//   - Classification failures are values (Outcome with one of the closed
//     InvalidReason tags), never Go errors. Go errors appear only at the
//     configuration boundary (threshold table loading and validation) and
//     at Vec3 forward-vector construction.
package validity

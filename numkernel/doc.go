// Package numkernel provides the deterministic numeric kernel used on the
// canonical decision path: a stable logistic, guarded transcendentals,
// clamps, a platform-neutral total order on float64, and deterministic
// median/MAD estimators.
//
// What:
//
//   - Sigmoid / ExpSafe: overflow-free logistic and exponential with pinned
//     behavior for NaN and infinities.
//   - Atan2Safe / AsinSafe / SqrtSafe: total functions over float64; any
//     non-finite input collapses to 0.
//   - TotalOrder: a total order on float64 distinguishing −0 from +0 and
//     ordering NaNs deterministically by payload.
//   - Median / MAD: order statistics computed with a fixed in-package sort
//     keyed by TotalOrder, never the host standard-library sort.
//   - SigmoidLUT: a 256-entry shadow lookup table, kept off the canonical
//     path for bounded-divergence benchmarking.
//
// Why:
//
//   - Decision digests must be bit-identical across platforms; every
//     floating-point result here is invariant to compiler flags, CPU vendor,
//     FMA availability, and libm quirks on the guarded domains.
//
// Determinism contract:
//
//   - No host sort over float64, no SIMD, no fused multiply-add on any path
//     a digest depends on. All transcendental use in the module goes through
//     this package.
//
// Errors:
//
//   - None. Every function is total and returns a finite number (or a pinned
//     ±Inf where the contract says so). Failure is expressed in-band.
package numkernel

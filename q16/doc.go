// Package q16 implements Q16.16 signed fixed-point arithmetic with
// saturation, an explicit 128-bit widening intermediate, and a cumulative
// rounding-error budget tracker.
//
// What:
//
//   - Q16: a 64-bit signed value scaled by 2¹⁶. The minimum-signed bit
//     pattern is reserved as the Invalid sentinel; every other pattern is a
//     legal number.
//   - Add / Sub / Mul / Div: saturating arithmetic. Mul widens through a
//     full 128-bit signed product and arithmetically shifts right by 16;
//     Div widens the dividend left by 16 before dividing.
//   - Int128: the widening intermediate as (Hi int64, Lo uint64) with
//     explicit split-32 unsigned multiplication and two's-complement
//     negation.
//   - BudgetTracker: accumulates |exact − rounded| in Q16 units against a
//     1000-unit budget (~0.015 normalized). Exceeding is reported, never
//     fatal.
//
// Why:
//
//   - Fixed-point evidence values serialize into decision digests; the
//     arithmetic must be bit-for-bit identical everywhere, so widening,
//     rounding, and saturation are spelled out rather than delegated to
//     platform-variant floating point.
//
// Errors:
//
//   - None as Go errors. Overflow is an in-band flag on each operation and
//     Invalid propagates through any operation that touches it.
package q16

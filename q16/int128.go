package q16

import (
	"math"
	"math/bits"
)

// Int128 is a signed 128-bit integer in two's-complement form, used as the
// widening intermediate for Q16 multiplication and division. Hi carries
// the sign; Lo carries the low 64 bits.
type Int128 struct {
	Hi int64
	Lo uint64
}

// Neg returns the two's-complement negation of v.
func (v Int128) Neg() Int128 {
	hi := ^uint64(v.Hi)
	lo := ^v.Lo + 1
	if lo == 0 {
		hi++
	}

	return Int128{Hi: int64(hi), Lo: lo}
}

// IsNegative reports whether v is below zero.
func (v Int128) IsNegative() bool { return v.Hi < 0 }

// mul64To128 computes the exact signed 128-bit product of a and b using
// explicit unsigned split-32 multiplication on the magnitudes, then
// applies the sign by two's-complement negation.
func mul64To128(a, b int64) Int128 {
	neg := (a < 0) != (b < 0)
	ua := absU64(a)
	ub := absU64(b)

	// Split each magnitude into 32-bit halves and accumulate the four
	// partial products with explicit carries.
	a0 := ua & 0xFFFFFFFF
	a1 := ua >> 32
	b0 := ub & 0xFFFFFFFF
	b1 := ub >> 32

	t := a0 * b0
	w0 := t & 0xFFFFFFFF
	k := t >> 32

	t = a1*b0 + k
	w1 := t & 0xFFFFFFFF
	w2 := t >> 32

	t = a0*b1 + w1
	k = t >> 32

	hi := a1*b1 + w2 + k
	lo := (t << 32) | w0

	p := Int128{Hi: int64(hi), Lo: lo}
	if neg {
		p = p.Neg()
	}

	return p
}

// shiftLeft16 widens x into an Int128 shifted left by 16 bits.
func shiftLeft16(x int64) Int128 {
	neg := x < 0
	ux := absU64(x)

	v := Int128{
		Hi: int64(ux >> (64 - 16)),
		Lo: ux << 16,
	}
	if neg {
		v = v.Neg()
	}

	return v
}

// ShiftRight16 returns v arithmetically shifted right by 16 bits; the
// sign fills from Hi.
func (v Int128) ShiftRight16() Int128 {
	return Int128{
		Hi: v.Hi >> 16,
		Lo: (v.Lo >> 16) | (uint64(v.Hi) << (64 - 16)),
	}
}

// SaturateQ16 narrows v to a Q16 value, saturating to [Min,Max] when the
// magnitude exceeds 64 bits and steering the reserved sentinel pattern to
// Min. The flag reports whether saturation occurred.
func (v Int128) SaturateQ16() (Q16, bool) {
	// In-range iff Hi is the sign extension of Lo's top bit.
	if v.Hi == 0 && v.Lo <= math.MaxInt64 {
		return Q16(v.Lo), false
	}
	if v.Hi == -1 && v.Lo > math.MaxInt64 {
		n := int64(v.Lo)
		if n == math.MinInt64 {
			return Min, true
		}

		return Q16(n), false
	}
	if v.Hi < 0 {
		return Min, true
	}

	return Max, true
}

// DivInt64 divides v by d (d must be non-zero; callers guard), truncating
// toward zero. The flag reports that the quotient magnitude exceeded
// 64 bits and the result is unusable as returned.
func (v Int128) DivInt64(d int64) (Int128, bool) {
	neg := v.IsNegative() != (d < 0)

	// 1) Work on magnitudes.
	uv := v
	if uv.IsNegative() {
		uv = uv.Neg()
	}
	ud := absU64(d)

	// 2) Long division of the 128-bit magnitude by the 64-bit divisor:
	//    the high quotient word first, then bits.Div64 with the remainder
	//    as the high half (remainder < divisor, so Div64 cannot trap).
	qHi := uint64(uv.Hi) / ud
	rem := uint64(uv.Hi) % ud
	qLo, _ := bits.Div64(rem, uv.Lo, ud)

	if qHi != 0 {
		return Int128{}, true
	}
	if qLo > math.MaxInt64 && !(neg && qLo == uint64(math.MaxInt64)+1) {
		return Int128{}, true
	}

	// 3) Reapply the sign.
	q := Int128{Hi: 0, Lo: qLo}
	if neg {
		q = q.Neg()
	}

	return q, false
}

// absU64 returns |x| as an unsigned 64-bit value; MinInt64 maps to 2⁶³
// without overflow.
func absU64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}

	return uint64(x)
}

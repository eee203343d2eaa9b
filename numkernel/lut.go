package numkernel

// SigmoidLUT is a 256-entry lookup approximation of Sigmoid on [−8,+8].
//
// It exists only for shadow benchmarking: results may diverge from the
// piecewise Sigmoid in a bounded way, and nothing on the digest path may
// consult it. The table is built once with a monotonicity guard and exact
// endpoint pinning; evaluation interpolates with a split multiply-then-add
// so the result is invariant to FMA code generation.
type SigmoidLUT struct {
	table [lutSize]float64
}

// NewSigmoidLUT constructs the shadow table.
func NewSigmoidLUT() *SigmoidLUT {
	l := &SigmoidLUT{}

	// 1) Sample the canonical sigmoid across the domain.
	step := (lutHi - lutLo) / float64(lutSize-1)
	for i := 0; i < lutSize; i++ {
		l.table[i] = Sigmoid(lutLo + float64(i)*step)
	}

	// 2) Monotonicity guard: rounding may not introduce a local decrease.
	for i := 1; i < lutSize; i++ {
		if l.table[i] < l.table[i-1] {
			l.table[i] = l.table[i-1]
		}
	}

	// 3) Pin the endpoints to the canonical values exactly.
	l.table[0] = Sigmoid(lutLo)
	l.table[lutSize-1] = Sigmoid(lutHi)

	return l
}

// Eval approximates Sigmoid(x) by linear interpolation in the table.
// Inputs outside [−8,+8] clamp to the endpoint entries; NaN maps to 0.5
// like the canonical sigmoid. Complexity: O(1).
func (l *SigmoidLUT) Eval(x float64) float64 {
	if x != x { // NaN
		return 0.5
	}
	if x <= lutLo {
		return l.table[0]
	}
	if x >= lutHi {
		return l.table[lutSize-1]
	}

	// Index the cell and interpolate. The multiply and add stay split
	// across statements so a compiler cannot legally fuse them.
	pos := (x - lutLo) / (lutHi - lutLo) * float64(lutSize-1)
	i := int(pos)
	if i >= lutSize-1 {
		i = lutSize - 2
	}
	frac := pos - float64(i)
	delta := l.table[i+1] - l.table[i]
	scaled := delta * frac

	return l.table[i] + scaled
}

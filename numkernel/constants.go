package numkernel

// expClampLimit bounds the argument of math.Exp so the result can never
// overflow to +Inf nor underflow to a subnormal on any IEEE-754 platform.
// exp(±80) stays comfortably inside the normal double range.
const expClampLimit = 80.0

// insertionSortMax is the largest slice length sorted by the fixed
// insertion sort; longer slices use the median-of-three quicksort.
// Both are keyed by TotalOrder.
const insertionSortMax = 32

// lutSize is the number of entries in the shadow sigmoid table.
const lutSize = 256

// lutLo and lutHi bound the shadow table's input domain.
const (
	lutLo = -8.0
	lutHi = 8.0
)

package numkernel

import "math"

// sortTotal sorts xs in place under TotalOrder. Slices up to
// insertionSortMax elements use a fixed insertion sort; longer slices use
// a median-of-three quicksort that recurses into the smaller partition
// first. The host standard-library sort is never used, so the comparison
// sequence, and therefore every derived statistic, is identical on all
// platforms. Complexity: O(n²) worst case, O(n log n) expected.
func sortTotal(xs []float64) {
	if len(xs) <= insertionSortMax {
		insertionSort(xs)
		return
	}
	quickSort(xs, 0, len(xs)-1)
}

// insertionSort is the fixed small-slice sort keyed by TotalOrder.
func insertionSort(xs []float64) {
	var i, j int
	var v float64
	for i = 1; i < len(xs); i++ {
		v = xs[i]
		for j = i - 1; j >= 0 && TotalOrder(xs[j], v) > 0; j-- {
			xs[j+1] = xs[j]
		}
		xs[j+1] = v
	}
}

// quickSort sorts xs[lo..hi] with median-of-three pivot selection.
// Sub-ranges at or below insertionSortMax fall back to insertionSort.
func quickSort(xs []float64, lo, hi int) {
	for lo < hi {
		if hi-lo+1 <= insertionSortMax {
			insertionSort(xs[lo : hi+1])
			return
		}
		p := partition(xs, lo, hi)
		// Recurse into the smaller side to bound stack depth.
		if p-lo < hi-p {
			quickSort(xs, lo, p-1)
			lo = p + 1
		} else {
			quickSort(xs, p+1, hi)
			hi = p - 1
		}
	}
}

// partition orders xs[lo..hi] around a median-of-three pivot and returns
// the pivot's final index.
func partition(xs []float64, lo, hi int) int {
	// 1) Median-of-three: order (lo, mid, hi) so the median lands at hi−1.
	mid := lo + (hi-lo)/2
	if TotalOrder(xs[mid], xs[lo]) < 0 {
		xs[mid], xs[lo] = xs[lo], xs[mid]
	}
	if TotalOrder(xs[hi], xs[lo]) < 0 {
		xs[hi], xs[lo] = xs[lo], xs[hi]
	}
	if TotalOrder(xs[hi], xs[mid]) < 0 {
		xs[hi], xs[mid] = xs[mid], xs[hi]
	}
	xs[mid], xs[hi-1] = xs[hi-1], xs[mid]
	pivot := xs[hi-1]

	// 2) Hoare-style scan toward the middle.
	i, j := lo, hi-1
	for {
		for i++; TotalOrder(xs[i], pivot) < 0; i++ {
		}
		for j--; TotalOrder(xs[j], pivot) > 0; j-- {
		}
		if i >= j {
			break
		}
		xs[i], xs[j] = xs[j], xs[i]
	}

	// 3) Restore the pivot between the partitions.
	xs[i], xs[hi-1] = xs[hi-1], xs[i]

	return i
}

// Median returns the middle order statistic of xs under TotalOrder, or 0
// for an empty slice. Even lengths average the two central elements. The
// input is not modified. Complexity: O(n log n) expected.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0.0
	}

	tmp := make([]float64, n)
	copy(tmp, xs)
	sortTotal(tmp)

	if n%2 == 1 {
		return tmp[n/2]
	}

	return (tmp[n/2-1] + tmp[n/2]) / 2.0
}

// MAD returns the median absolute deviation of xs: the median of
// |xᵢ − Median(xs)|. Empty input yields 0. Complexity: O(n log n) expected.
func MAD(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0.0
	}

	m := Median(xs)
	dev := make([]float64, n)
	for i, x := range xs {
		dev[i] = math.Abs(x - m)
	}

	return Median(dev)
}

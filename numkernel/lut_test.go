package numkernel_test

import (
	"math"
	"testing"

	"github.com/Kyle-Wang0211/Aether3D-sub019/numkernel"
	"github.com/stretchr/testify/assert"
)

// TestSigmoidLUT_Endpoints verifies exact endpoint pinning and clamping
// beyond the table domain.
func TestSigmoidLUT_Endpoints(t *testing.T) {
	lut := numkernel.NewSigmoidLUT()
	assert.Equal(t, numkernel.Sigmoid(-8.0), lut.Eval(-8.0))
	assert.Equal(t, numkernel.Sigmoid(8.0), lut.Eval(8.0))
	assert.Equal(t, numkernel.Sigmoid(-8.0), lut.Eval(-100.0), "below domain clamps to left endpoint")
	assert.Equal(t, numkernel.Sigmoid(8.0), lut.Eval(100.0), "above domain clamps to right endpoint")
	assert.Equal(t, 0.5, lut.Eval(math.NaN()))
}

// TestSigmoidLUT_Monotone verifies the table evaluation never decreases
// across a dense sweep of the domain.
func TestSigmoidLUT_Monotone(t *testing.T) {
	lut := numkernel.NewSigmoidLUT()
	prev := lut.Eval(-8.0)
	for x := -8.0; x <= 8.0; x += 0.005 {
		cur := lut.Eval(x)
		assert.GreaterOrEqual(t, cur, prev, "LUT must be monotone at x=%v", x)
		prev = cur
	}
}

// TestSigmoidLUT_BoundedDivergence verifies the shadow approximation stays
// close to the canonical sigmoid everywhere on the domain.
func TestSigmoidLUT_BoundedDivergence(t *testing.T) {
	lut := numkernel.NewSigmoidLUT()
	for x := -8.0; x <= 8.0; x += 0.01 {
		assert.InDelta(t, numkernel.Sigmoid(x), lut.Eval(x), 1e-3,
			"LUT divergence out of bounds at x=%v", x)
	}
}

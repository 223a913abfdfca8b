package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantile_LinearInterpolation(t *testing.T) {
	// Sorted [5, 20, 22]: h = (3-1)*0.75 = 1.5, so p75 = 20 + 0.5*(22-20) = 21
	values := []float64{20, 5, 22}
	assert.InDelta(t, 21.0, quantile(values, 0.75), 1e-9)

	// p25 of the same column: h = 0.5, 5 + 0.5*(20-5) = 12.5
	assert.InDelta(t, 12.5, quantile(values, 0.25), 1e-9)
}

func TestQuantile_Bounds(t *testing.T) {
	values := []float64{3, 1, 2}
	assert.Equal(t, 1.0, quantile(values, 0))
	assert.Equal(t, 3.0, quantile(values, 1))
	assert.Equal(t, 2.0, quantile(values, 0.5))
}

func TestQuantile_SingleValue(t *testing.T) {
	assert.Equal(t, 7.0, quantile([]float64{7}, 0.75))
}

func TestQuantile_Idempotent(t *testing.T) {
	values := []float64{44, 12, 88, 3, 60, 29}
	first := quantile(values, 0.75)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, quantile(values, 0.75))
	}
}

func TestQuantile_DoesNotMutateInput(t *testing.T) {
	values := []float64{9, 1, 5}
	quantile(values, 0.75)
	assert.Equal(t, []float64{9, 1, 5}, values)
}

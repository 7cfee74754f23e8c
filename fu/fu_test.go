package fu

import (
	"gotest.tools/v3/assert"
	"testing"
)

func Test_Mse(t *testing.T) {
	assert.Assert(t, Mse([]float64{1, 2, 3}, []float64{1, 2, 3}) == 0)
	assert.Assert(t, Mse([]float64{0, 0}, []float64{1, 3}) == 5)
}

func Test_Clip(t *testing.T) {
	assert.Assert(t, Clip(-1, 1e-15, 1-1e-15) == 1e-15)
	assert.Assert(t, Clip(2, 1e-15, 1-1e-15) == 1-1e-15)
	assert.Assert(t, Clip(0.5, 0, 1) == 0.5)
}

func Test_Ints(t *testing.T) {
	assert.Assert(t, Fnzi(0, 0, 3, 4) == 3)
	assert.Assert(t, Fnzf(0, 0.1) == 0.1)
	assert.Assert(t, Maxi(1, 5, 2) == 5)
	assert.Assert(t, Mini(4, 5, 2) == 2)
	assert.Assert(t, Indmaxd([]float64{1, 3, 3, 2}) == 1)
	assert.Assert(t, Indmaxd(nil) == -1)
}

func Test_Flatnr(t *testing.T) {
	assert.DeepEqual(t, Flatnr([][]float64{{1, 2}, {3}}), []float64{1, 2, 3})
	assert.DeepEqual(t, Flatnr(nil), []float64{})
}

package model

import (
	"gotest.tools/v3/assert"
	"math"
	"testing"
)

func Test_RMSE(t *testing.T) {
	assert.Assert(t, RMSE([]float64{1, 2, 3}, []float64{1, 2, 3}) == 0)
	assert.Assert(t, RMSE([]float64{0, 0}, []float64{3, 4}) == math.Sqrt(12.5))
}

func Test_NRMSE(t *testing.T) {
	v := NRMSE([]float64{0, 0}, []float64{3, 4})
	assert.Assert(t, v == math.Sqrt(12.5))
	v = NRMSE([]float64{0, 0, 0}, []float64{1, 2, 5})
	assert.Assert(t, math.Abs(v-math.Sqrt(10)/4) < 1e-12)
}

func Test_NRMSEConstantLabels(t *testing.T) {
	assert.Assert(t, math.IsInf(NRMSE([]float64{0, 0}, []float64{2, 2}), 1))
	assert.Assert(t, math.IsNaN(NRMSE([]float64{2, 2}, []float64{2, 2})))
}

func Test_Accuracy(t *testing.T) {
	assert.Assert(t, Accuracy([]float64{0.4, 0.6, 1.49, 2.5}, []float64{0, 1, 1, 2}) == 0.75)
	assert.Assert(t, Accuracy([]float64{-0.4}, []float64{0}) == 1)
}

func Test_Logger(t *testing.T) {
	var out []string
	l := LoggerOr(Printer(func(s string) { out = append(out, s) }))
	l.Verbose("hello")
	assert.Equal(t, out[0], "[DEBUG] hello")
	LoggerOr(nil).Verbose("nothing")
	assert.Assert(t, len(out) == 1)
}

package softmax

import (
	"gonum.org/v1/gonum/mat"
	"gotest.tools/v3/assert"
	"math"
	"math/rand"
	"testing"
)

func Test_SoftmaxRowStochastic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	logits := mat.NewDense(50, 4, nil)
	logits.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*20 - 10 }, logits)
	p := Softmax(logits)
	for i := 0; i < 50; i++ {
		assert.Assert(t, math.Abs(mat.Sum(p.RowView(i))-1) < 1e-9)
		for j := 0; j < 4; j++ {
			v := p.At(i, j)
			assert.Assert(t, v > 0 && v < 1)
		}
	}
}

func Test_SoftmaxStable(t *testing.T) {
	p := Softmax(mat.NewDense(2, 2, []float64{1000, 1001, 1000, 1000}))
	assert.Assert(t, math.Abs(p.At(0, 1)-1/(1+math.Exp(-1))) < 1e-12)
	assert.Assert(t, p.At(1, 0) == 0.5)
}

func Test_CrossEntropy(t *testing.T) {
	y := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 0, 1})
	p := mat.NewDense(2, 3, []float64{0.5, 0.25, 0.25, 0.2, 0.2, 0.6})
	j := CrossEntropy(y, p)
	assert.Assert(t, math.Abs(j-(-math.Log(0.5)-math.Log(0.6))) < 1e-12)

	// sum over rows, not mean
	y2 := mat.NewDense(2, 3, []float64{1, 0, 0, 1, 0, 0})
	p2 := mat.NewDense(2, 3, []float64{0.5, 0.25, 0.25, 0.5, 0.25, 0.25})
	assert.Assert(t, math.Abs(CrossEntropy(y2, p2)-2*math.Log(2)) < 1e-12)

	// clipped at zero probability
	z := CrossEntropy(mat.NewDense(1, 2, []float64{0, 1}), mat.NewDense(1, 2, []float64{1, 0}))
	assert.Assert(t, math.Abs(z+math.Log(ClipEpsilon)) < 1e-9)
}

func Test_CrossEntropyNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 100; n++ {
		logits := mat.NewDense(3, 5, nil)
		logits.Apply(func(_, _ int, _ float64) float64 { return rng.NormFloat64() * 5 }, logits)
		y := mat.NewDense(3, 5, nil)
		for i := 0; i < 3; i++ {
			y.Set(i, rng.Intn(5), 1)
		}
		assert.Assert(t, CrossEntropy(y, Softmax(logits)) >= 0)
	}
	z := CrossEntropy(mat.NewDense(1, 2, nil), mat.NewDense(1, 2, []float64{0.5, 0.5}))
	assert.Assert(t, z == 0 && !math.Signbit(z))
}

func Test_WithBias(t *testing.T) {
	xb := withBias(mat.NewDense(2, 2, []float64{3, 4, 5, 6}))
	assert.Assert(t, mat.Equal(xb, mat.NewDense(2, 3, []float64{1, 3, 4, 1, 5, 6})))
}

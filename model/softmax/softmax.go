package softmax

import (
	"go-ml.dev/pkg/linear/fu"
	"gonum.org/v1/gonum/mat"
	"math"
)

// ClipEpsilon keeps probabilities off 0 and 1 in cross-entropy
const ClipEpsilon = 1e-15

/*
Softmax normalizes every row of logits into a probability distribution.
The global maximum of logits is subtracted before exponentiation.
*/
func Softmax(logits mat.Matrix) *mat.Dense {
	r, _ := logits.Dims()
	top := mat.Max(logits)
	sm := &mat.Dense{}
	sm.Apply(func(_, _ int, v float64) float64 { return math.Exp(v - top) }, logits)
	sums := make([]float64, r)
	for i := range sums {
		sums[i] = mat.Sum(sm.RowView(i))
	}
	sm.Apply(func(i, _ int, v float64) float64 { return v / sums[i] }, sm)
	return sm
}

/*
CrossEntropy is the negative log-likelihood of one-hot targets summed over
all rows. Probabilities are clipped into [ClipEpsilon, 1-ClipEpsilon].
*/
func CrossEntropy(yOHM, probabilities mat.Matrix) float64 {
	r, c := yOHM.Dims()
	j := 0.0
	for i := 0; i < r; i++ {
		for k := 0; k < c; k++ {
			j += yOHM.At(i, k) * math.Log(fu.Clip(probabilities.At(i, k), ClipEpsilon, 1-ClipEpsilon))
		}
	}
	return 0 - j
}

func withBias(x mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	xb := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		xb.Set(i, 0, 1)
	}
	xb.Slice(0, r, 1, c+1).(*mat.Dense).Copy(x)
	return xb
}

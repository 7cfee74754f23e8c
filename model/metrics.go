package model

import (
	"go-ml.dev/pkg/linear/fu"
	"gonum.org/v1/gonum/floats"
	"math"
)

/*
RMSE is the root of mean squared difference between predictions and labels
*/
func RMSE(yhat, y []float64) float64 {
	return math.Sqrt(fu.Mse(y, yhat))
}

/*
NRMSE is RMSE normalized by the label range.
The result is not finite when all labels are equal.
*/
func NRMSE(yhat, y []float64) float64 {
	return RMSE(yhat, y) / (floats.Max(y) - floats.Min(y))
}

/*
Accuracy is the fraction of predictions which being rounded to the nearest
integer are exactly equal to labels
*/
func Accuracy(yhat, y []float64) float64 {
	positives := 0
	for i, v := range yhat {
		if math.Round(v) == y[i] {
			positives++
		}
	}
	return float64(positives) / float64(len(yhat))
}

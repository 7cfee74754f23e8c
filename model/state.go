package model

import (
	"fmt"
	"go-ml.dev/pkg/linear/fu"
	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"math"
)

/*
State is the bookkeeping shared by linear engines: single-output parameters
and the history of recorded losses
*/
type State struct {
	Log Logger // diagnostic output, Nolog if nil

	weights *mat.VecDense
	history []float64
}

func (s *State) Logger() Logger {
	return LoggerOr(s.Log)
}

/*
RecordLoss appends a loss value to the history
*/
func (s *State) RecordLoss(v float64) {
	s.history = append(s.history, v)
}

/*
LossHistory returns a copy of recorded losses in recording order
*/
func (s *State) LossHistory() []float64 {
	return append([]float64(nil), s.history...)
}

/*
Updates is the count of recorded losses
*/
func (s *State) Updates() int {
	return len(s.history)
}

/*
Weights returns a copy of single-output parameters or nil if not trained
*/
func (s *State) Weights() *mat.VecDense {
	if s.weights == nil {
		return nil
	}
	return mat.VecDenseCopyOf(s.weights)
}

/*
SetWeights replaces single-output parameters
*/
func (s *State) SetWeights(w *mat.VecDense) {
	s.weights = w
}

/*
PredictSingleOutput computes X·weights
*/
func (s *State) PredictSingleOutput(X mat.Matrix) (*mat.VecDense, error) {
	n := 0
	if s.weights != nil {
		n = s.weights.Len()
	}
	r, c := X.Dims()
	if c != n {
		return nil, xerrors.Errorf("%d features against %d weights: %w", c, n, ErrDimensionMismatch)
	}
	yhat := mat.NewVecDense(r, nil)
	yhat.MulVec(X, s.weights)
	return yhat, nil
}

/*
LuckyPredictSingleOutput predicts and panics on error
*/
func (s *State) LuckyPredictSingleOutput(X mat.Matrix) *mat.VecDense {
	yhat, err := s.PredictSingleOutput(X)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return yhat
}

/*
Evaluate scores single-output predictions on the subset. With classify it
returns the accuracy of rounded predictions, otherwise NRMSE. It returns 0
if the model has no parameters yet.
*/
func (s *State) Evaluate(src Splitter, subset Subset, classify bool) (float64, error) {
	if s.weights == nil {
		return 0, nil
	}
	X, y := src.Subset(subset)
	if X == nil {
		zlog.Warning(fmt.Sprintf("evaluating empty %v subset", subset))
		return math.NaN(), nil
	}
	yhat, err := s.PredictSingleOutput(X)
	if err != nil {
		return 0, err
	}
	log := s.Logger()
	r := y.Len()
	tail := fu.Mini(r, 3)
	cmp := mat.NewDense(tail, 2, nil)
	for i := 0; i < tail; i++ {
		cmp.Set(i, 0, yhat.AtVec(r-tail+i))
		cmp.Set(i, 1, y.AtVec(r-tail+i))
	}
	log.Matrix(fmt.Sprintf("%v y_hat vs y (last %d)", subset, tail), cmp)
	p, l := mat.Col(nil, 0, yhat), mat.Col(nil, 0, y)
	if classify {
		return Accuracy(p, l), nil
	}
	return NRMSE(p, l), nil
}

/*
LuckyEvaluate evaluates and panics on error
*/
func (s *State) LuckyEvaluate(src Splitter, subset Subset, classify bool) float64 {
	v, err := s.Evaluate(src, subset, classify)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return v
}

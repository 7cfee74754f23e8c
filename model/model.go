package model

import (
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

/*
ErrDimensionMismatch is returned when features do not match model parameters
*/
var ErrDimensionMismatch = xerrors.New("dimension mismatch")

/*
Subset selects a part of a loaded dataset
*/
type Subset int

const (
	TrainSubset Subset = iota
	TestSubset
)

func (s Subset) String() string {
	if s == TestSubset {
		return "test"
	}
	return "train"
}

/*
Splitter is a source of the training and held-out subsets.
Subset returns nil matrices when the requested subset has no rows.
*/
type Splitter interface {
	Subset(Subset) (*mat.Dense, *mat.VecDense)
}

/*
OnlineModel is a model trained by sequential presentation of training rows
*/
type OnlineModel interface {
	// SimulateOnlineTrain presents every row of the training subset once
	SimulateOnlineTrain(Splitter) error
	// LossHistory returns a copy of all recorded losses
	LossHistory() []float64
	// Accuracy scores the model on the subset
	Accuracy(Splitter, Subset) float64
}

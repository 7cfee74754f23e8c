/*
Package regression implements the batch linear regression solved in closed
form through the normal equations
*/
package regression

import (
	"fmt"
	"go-ml.dev/pkg/linear/model"
	"go-ml.dev/pkg/zorros"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
	"time"
)

const Name = "Batch Normal Regressor"

/*
Regressor is the batch normal equations regressor
*/
type Regressor struct {
	model.State
}

/*
New creates an untrained regressor writing diagnostics to the logger
*/
func New(log model.Logger) *Regressor {
	r := &Regressor{}
	r.Log = log
	r.Logger().Verbose("Generating object [" + Name + "]")
	return r
}

/*
Train solves weights for the training matrix X (bias included) and labels y
and records the training RMSE as the loss of the update.
Rank-deficient input gives the least-norm least-squares solution.
*/
func (r *Regressor) Train(X mat.Matrix, y mat.Vector) (*mat.VecDense, error) {
	rows, cols := X.Dims()
	if rows != y.Len() {
		return nil, xerrors.Errorf("%d rows against %d labels: %w", rows, y.Len(), model.ErrDimensionMismatch)
	}
	log := r.Logger()
	log.Verbose("Training: " + Name)
	xtx, xty := NormalEquations(X, y)

	t0 := time.Now()
	w, ok := SolveCholesky(xtx, xty)
	d0 := time.Since(t0)

	if !ok || log != model.Nolog {
		t1 := time.Now()
		w1 := SolvePseudoInverse(xtx, xty)
		d1 := time.Since(t1)
		if !ok {
			log.Verbose("XᵗX is singular, using pseudo-inverse solution")
			w = w1
		} else {
			log.Verbose(fmt.Sprintf("X data features size = %d", cols))
			log.Verbose(fmt.Sprintf("Theta PInv = %d microsec", d1.Microseconds()))
			log.Verbose(fmt.Sprintf("Theta Cholesky = %d microsec", d0.Microseconds()))
			cmp := mat.NewDense(cols, 2, nil)
			cmp.SetCol(0, w1.RawVector().Data)
			cmp.SetCol(1, w.RawVector().Data)
			log.Matrix("T1(pinv) T2(cholesky)", cmp)
		}
	}
	r.SetWeights(w)
	yhat := &mat.VecDense{}
	yhat.MulVec(X, w)
	r.RecordLoss(model.RMSE(mat.Col(nil, 0, yhat), mat.Col(nil, 0, y)))
	return w, nil
}

/*
LuckyTrain trains and panics on error
*/
func (r *Regressor) LuckyTrain(X mat.Matrix, y mat.Vector) *mat.VecDense {
	w, err := r.Train(X, y)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return w
}

/*
Fit trains the regressor on the training subset
*/
func (r *Regressor) Fit(src model.Splitter) (*mat.VecDense, error) {
	X, y := src.Subset(model.TrainSubset)
	if X == nil {
		return nil, xerrors.Errorf("empty training subset: %w", model.ErrDimensionMismatch)
	}
	return r.Train(X, y)
}

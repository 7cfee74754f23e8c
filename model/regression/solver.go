package regression

import (
	"go-ml.dev/pkg/linear/fu"
	"gonum.org/v1/gonum/mat"
	"math"
)

/*
SolveCholesky solves the normal equations (XᵗX)w = Xᵗy through the Cholesky
decomposition of XᵗX. It returns false when XᵗX is not positive definite or
is too ill-conditioned for the result to be trusted.
*/
func SolveCholesky(xtx *mat.SymDense, xty *mat.VecDense) (*mat.VecDense, bool) {
	var chol mat.Cholesky
	if !chol.Factorize(xtx) {
		return nil, false
	}
	w := &mat.VecDense{}
	if err := chol.SolveVecTo(w, xty); err != nil {
		return w, false
	}
	return w, true
}

/*
PseudoInverse computes the Moore-Penrose inverse of a through its singular
value decomposition. Singular values not greater than
eps * max(rows,cols) * s_max are treated as zero.
*/
func PseudoInverse(a mat.Matrix, eps float64) *mat.Dense {
	r, c := a.Dims()
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return mat.NewDense(c, r, nil)
	}
	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	tolerance := eps * float64(fu.Maxi(r, c)) * math.Abs(s[0])
	inv := make([]float64, len(s))
	for i, x := range s {
		if math.Abs(x) > tolerance {
			inv[i] = 1 / x
		}
	}
	// V·diag(inv)
	v.Apply(func(_, j int, x float64) float64 { return x * inv[j] }, &v)
	p := &mat.Dense{}
	p.Mul(&v, u.T())
	return p
}

/*
SolvePseudoInverse solves the normal equations through the pseudo-inverse of XᵗX
*/
func SolvePseudoInverse(xtx *mat.SymDense, xty *mat.VecDense) *mat.VecDense {
	w := &mat.VecDense{}
	w.MulVec(PseudoInverse(xtx, Epsilon), xty)
	return w
}

/*
NormalEquations returns XᵗX and Xᵗy
*/
func NormalEquations(X mat.Matrix, y mat.Vector) (*mat.SymDense, *mat.VecDense) {
	xtx := &mat.SymDense{}
	xtx.SymOuterK(1, X.T())
	xty := &mat.VecDense{}
	xty.MulVec(X.T(), y)
	return xtx, xty
}

// Epsilon is the machine epsilon for float64
const Epsilon = 2.220446049250313e-16

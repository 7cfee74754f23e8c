/*
Package dataset loads delimited tabular data into bias-augmented feature
matrices and label vectors split into training and held-out subsets
*/
package dataset

import (
	"go-ml.dev/pkg/linear/model"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/mat"
)

/*
ErrInvalidInput is returned when a source does not exist or cannot be read
*/
var ErrInvalidInput = xerrors.New("invalid input")

/*
Split is a row range of the loaded dataset materialized as an independent copy.
X and Y are nil for an empty split.
*/
type Split struct {
	X *mat.Dense
	Y *mat.VecDense
}

/*
Len is the count of rows in the split
*/
func (s Split) Len() int {
	if s.Y == nil {
		return 0
	}
	return s.Y.Len()
}

/*
Dataset is the loaded table with derived features and labels
*/
type Dataset struct {
	Header   []string      // field names
	Data     *mat.Dense    // numeric table in final (maybe shuffled) row order
	Features *mat.Dense    // all but the last field, column 0 is the bias
	Labels   *mat.VecDense // the last field
	Train    Split         // first SplitPos rows
	Test     Split         // remaining rows

	splitPos int
}

/*
Rows is the count of data rows
*/
func (d *Dataset) Rows() int {
	r, _ := d.Data.Dims()
	return r
}

/*
Fields is the count of loaded fields including the label
*/
func (d *Dataset) Fields() int {
	_, c := d.Data.Dims()
	return c
}

/*
SplitPos is the index of the first held-out row
*/
func (d *Dataset) SplitPos() int {
	return d.splitPos
}

/*
Subset implements model.Splitter
*/
func (d *Dataset) Subset(s model.Subset) (*mat.Dense, *mat.VecDense) {
	if s == model.TestSubset {
		return d.Test.X, d.Test.Y
	}
	return d.Train.X, d.Train.Y
}

func (d *Dataset) split(pos int) {
	r, c := d.Features.Dims()
	d.splitPos = pos
	if pos > 0 {
		d.Train = Split{
			X: mat.DenseCopyOf(d.Features.Slice(0, pos, 0, c)),
			Y: mat.VecDenseCopyOf(d.Labels.SliceVec(0, pos)),
		}
	}
	if pos < r {
		d.Test = Split{
			X: mat.DenseCopyOf(d.Features.Slice(pos, r, 0, c)),
			Y: mat.VecDenseCopyOf(d.Labels.SliceVec(pos, r)),
		}
	}
}

/*
Package softmax implements the online multinomial linear classifier trained
by gradient descent on the cross-entropy loss
*/
package softmax

import (
	"fmt"
	"go-ml.dev/pkg/linear/model"
	"go-ml.dev/pkg/zorros"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"math"
	"strconv"
	"strings"
)

const Name = "Online Linear Classifier"

/*
Config is the classifier definition
*/
type Config struct {
	Features     int          // count of features without bias, at least 1
	Classes      int          // count of classes
	Labels       []string     // class names in the order of parameter columns
	LearningRate float64      // gradient descent step
	Verbose      model.Logger // diagnostic output
}

/*
Classifier is the online softmax classifier. It is not safe for concurrent training.
*/
type Classifier struct {
	model.State

	features     int
	labels       []string
	learningRate float64
	theta        *mat.Dense // (features+1) × classes, row 0 holds biases
}

/*
New creates a classifier with all-zero parameters
*/
func New(features, classes int, labels []string, learningRate float64) (*Classifier, error) {
	return Config{Features: features, Classes: classes, Labels: labels, LearningRate: learningRate}.New()
}

/*
New creates a classifier with all-zero parameters
*/
func (cfg Config) New() (*Classifier, error) {
	if cfg.Features < 1 || cfg.Classes < 1 {
		return nil, xerrors.Errorf("%d features, %d classes: %w", cfg.Features, cfg.Classes, model.ErrDimensionMismatch)
	}
	if !(cfg.LearningRate > 0) {
		return nil, zorros.Errorf("learning rate must be positive, got %v", cfg.LearningRate)
	}
	c := &Classifier{
		features:     cfg.Features,
		labels:       append([]string(nil), cfg.Labels...),
		learningRate: cfg.LearningRate,
		theta:        mat.NewDense(cfg.Features+1, cfg.Classes, nil),
	}
	c.Log = cfg.Verbose
	c.Logger().Verbose("Generating object [" + Name + "]")
	return c, nil
}

/*
LuckyNew creates a classifier and panics on error
*/
func (cfg Config) LuckyNew() *Classifier {
	c, err := cfg.New()
	if err != nil {
		panic(zorros.Panic(err))
	}
	return c
}

/*
Labels returns the label catalog
*/
func (c *Classifier) Labels() []string {
	return append([]string(nil), c.labels...)
}

/*
Theta returns a copy of parameters
*/
func (c *Classifier) Theta() *mat.Dense {
	return mat.DenseCopyOf(c.theta)
}

/*
SetTheta replaces parameters keeping their shape
*/
func (c *Classifier) SetTheta(theta mat.Matrix) error {
	r, k := theta.Dims()
	if r0, k0 := c.theta.Dims(); r != r0 || k != k0 {
		return xerrors.Errorf("%dx%d parameters instead of %dx%d: %w", r, k, r0, k0, model.ErrDimensionMismatch)
	}
	c.theta.Copy(theta)
	return nil
}

/*
OneHotEncode sets 1 in the column of the matching catalog label.
Labels missing in the catalog give all-zero rows. Numeric labels match by
value, so "1" and "1.000000" name the same class.
*/
func (c *Classifier) OneHotEncode(labels []string) *mat.Dense {
	if len(labels) == 0 {
		return nil
	}
	_, classes := c.theta.Dims()
	yOHM := mat.NewDense(len(labels), classes, nil)
	for i, l := range labels {
		for j := 0; j < classes && j < len(c.labels); j++ {
			if SameLabel(l, c.labels[j]) {
				yOHM.Set(i, j, 1)
			}
		}
	}
	return yOHM
}

/*
Forward computes class probabilities for the features matrix without bias
*/
func (c *Classifier) Forward(x mat.Matrix) (*mat.Dense, error) {
	if _, cols := x.Dims(); cols != c.features {
		return nil, xerrors.Errorf("%d features instead of %d: %w", cols, c.features, model.ErrDimensionMismatch)
	}
	return c.forward(withBias(x)), nil
}

func (c *Classifier) forward(xb *mat.Dense) *mat.Dense {
	logits := &mat.Dense{}
	logits.Mul(xb, c.theta)
	return Softmax(logits)
}

/*
OnlineTrain makes one gradient descent step on the mini-batch
*/
func (c *Classifier) OnlineTrain(x mat.Matrix, labels []string) error {
	m, cols := x.Dims()
	if m != len(labels) || cols != c.features {
		return xerrors.Errorf("%dx%d batch with %d labels, %d features expected: %w",
			m, cols, len(labels), c.features, model.ErrDimensionMismatch)
	}
	yOHM := c.OneHotEncode(labels)
	xb := withBias(x)
	yhat := c.forward(xb)
	c.RecordLoss(CrossEntropy(yOHM, yhat))

	e := &mat.Dense{}
	e.Sub(yOHM, yhat)
	grad := &mat.Dense{}
	grad.Mul(xb.T(), e)
	grad.Scale(-c.learningRate/float64(m), grad)
	c.theta.Sub(c.theta, grad)
	return nil
}

/*
LuckyOnlineTrain trains and panics on error
*/
func (c *Classifier) LuckyOnlineTrain(x mat.Matrix, labels []string) {
	if err := c.OnlineTrain(x, labels); err != nil {
		panic(zorros.Panic(err))
	}
}

/*
SimulateOnlineTrain presents every training row once in order as a
single-row batch. Features of the subset are expected with the bias column.
*/
func (c *Classifier) SimulateOnlineTrain(src model.Splitter) error {
	X, y := src.Subset(model.TrainSubset)
	if X == nil {
		return nil
	}
	r, cols := X.Dims()
	if cols != c.features+1 {
		return xerrors.Errorf("%d columns with bias instead of %d: %w", cols, c.features+1, model.ErrDimensionMismatch)
	}
	log := c.Logger()
	log.Verbose(fmt.Sprintf("Online training on %d rows", r))
	for i := 0; i < r; i++ {
		xi := X.Slice(i, i+1, 1, cols)
		if err := c.OnlineTrain(xi, []string{LabelString(y.AtVec(i))}); err != nil {
			return err
		}
	}
	log.Verbose(fmt.Sprintf("Loss after %d updates: %v", c.Updates(), c.LossHistory()[c.Updates()-1]))
	return nil
}

/*
PredictLabels returns the catalog label of the most probable class for every row
*/
func (c *Classifier) PredictLabels(x mat.Matrix) ([]string, error) {
	p, err := c.Forward(x)
	if err != nil {
		return nil, err
	}
	return c.predictLabels(p), nil
}

func (c *Classifier) predictLabels(p *mat.Dense) []string {
	r, _ := p.Dims()
	labels := make([]string, r)
	for i := range labels {
		j := floats.MaxIdx(p.RawRowView(i))
		if j < len(c.labels) {
			labels[i] = c.labels[j]
		} else {
			labels[i] = strconv.Itoa(j)
		}
	}
	return labels
}

/*
Accuracy is the fraction of rows where the predicted label equals the label
column. Features of the subset are expected with the bias column.
*/
func (c *Classifier) Accuracy(src model.Splitter, subset model.Subset) float64 {
	X, y := src.Subset(subset)
	if X == nil {
		return math.NaN()
	}
	r, cols := X.Dims()
	if cols != c.features+1 {
		zlog.Warning(fmt.Sprintf("%v subset has %d columns with bias instead of %d", subset, cols, c.features+1))
		return math.NaN()
	}
	labels := c.predictLabels(c.forward(X))
	positives := 0
	for i, l := range labels {
		if SameLabel(l, LabelString(y.AtVec(i))) {
			positives++
		}
	}
	return float64(positives) / float64(r)
}

/*
LabelString is the decimal form of a numeric label used to match the catalog
*/
func LabelString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

/*
SameLabel compares labels literally or, when both are numbers, by value
*/
func SameLabel(a, b string) bool {
	if a == b {
		return true
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return false
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	return err == nil && x == y
}

package model

import (
	"fmt"
	"go-ml.dev/pkg/linear/fu"
	"go-ml.dev/pkg/zorros/zlog"
	"gonum.org/v1/gonum/stat"
	"math"
)

/*
Training is the default epoch driver for online models
*/
type Training struct {
	Iterations   int                   // maximum iterations
	Score        func(Metrics) float64 // score function, test accuracy by default
	ScoreHistory int                   // possible count of forehead training with lower score
	Verbose      func(string)          // print function
}

/*
Metrics is an iteration record
*/
type Metrics struct {
	Iteration   int
	Loss        float64 // mean loss over updates of the iteration
	Train, Test float64 // accuracy
}

/*
Report is an online training report
*/
type Report struct {
	History     []Metrics // all iterations history
	TheBest     int       // the best iteration
	Train, Test float64   // the best iteration metrics
	Score       float64   // the best score
}

const DefaultScoreHistory = 3

type training struct {
	Training
	done bool
}

type workout struct {
	iteration int
	training  *training
	perflog   []Metrics
	scorlog   []float64
}

/*
DefaultScore is the test accuracy or the train accuracy when no test rows exist
*/
func DefaultScore(m Metrics) float64 {
	if math.IsNaN(m.Test) {
		return m.Train
	}
	return m.Test
}

/*
Run trains the model one pass over the training subset per iteration until
the iterations limit or until the score stops improving
*/
func (t Training) Run(m OnlineModel, src Splitter) (*Report, error) {
	w := &workout{training: &training{Training: t}}
	for w != nil {
		from := len(m.LossHistory())
		if err := m.SimulateOnlineTrain(src); err != nil {
			return nil, err
		}
		metrics := Metrics{
			Iteration: w.iteration,
			Loss:      stat.Mean(m.LossHistory()[from:], nil),
			Train:     m.Accuracy(src, TrainSubset),
			Test:      m.Accuracy(src, TestSubset),
		}
		if report, done := w.complete(metrics); done {
			return report, nil
		}
		w = w.next()
	}
	return nil, nil
}

func (w *workout) report(j int) *Report {
	histlen := fu.Fnzi(w.training.ScoreHistory, DefaultScoreHistory)
	if j < 0 {
		l := fu.Mini(len(w.scorlog), histlen)
		lj := len(w.scorlog) - l
		j = fu.Indmaxd(w.scorlog[lj:]) + lj
	}
	return &Report{
		History: w.perflog,
		TheBest: j,
		Train:   w.perflog[j].Train,
		Test:    w.perflog[j].Test,
		Score:   w.scorlog[j],
	}
}

func (w *workout) complete(m Metrics) (report *Report, done bool) {
	histlen := fu.Fnzi(w.training.ScoreHistory, DefaultScoreHistory)
	maxiter := fu.Maxi(w.training.Iterations, 1)
	score := DefaultScore(m)
	if w.training.Score != nil {
		score = w.training.Score(m)
	}
	w.scorlog = append(w.scorlog, score)
	w.perflog = append(w.perflog, m)
	if w.iteration == maxiter-1 || (w.iteration > histlen && fu.Indmaxd(w.scorlog[len(w.scorlog)-histlen:]) == 0) {
		w.training.done = true
		done = true
		report = w.report(-1)
	}
	w.verbose(fmt.Sprintf(
		"[%3d] loss: %.5f, accuracy: %.5f/%.5f, score: %.5f",
		m.Iteration, m.Loss, m.Train, m.Test, score))
	return
}

func (w *workout) verbose(s string) {
	if w.training.Verbose != nil {
		w.training.Verbose(s)
	}
}

func (w *workout) next() *workout {
	if w.training.done {
		zlog.Warning("training is already done")
		return nil
	}
	return &workout{
		iteration: w.iteration + 1,
		training:  w.training,
		scorlog:   w.scorlog,
		perflog:   w.perflog,
	}
}

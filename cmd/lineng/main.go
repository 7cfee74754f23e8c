package main

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"go-ml.dev/pkg/linear/dataset"
	"go-ml.dev/pkg/linear/model"
	"go-ml.dev/pkg/linear/model/regression"
	"go-ml.dev/pkg/linear/model/softmax"
	"gonum.org/v1/gonum/mat"
	"os"
	"sort"
	"strings"
)

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "file", Usage: "delimited dataset file, .xz compressed is allowed"},
		&cli.StringFlag{Name: "db", Usage: "SQLite database file"},
		&cli.StringFlag{Name: "query", Usage: "SQL query selecting features and label"},
		&cli.BoolFlag{Name: "shuffle", Usage: "shuffle rows before splitting"},
		&cli.Int64Flag{Name: "seed", Usage: "shuffle seed"},
		&cli.Float64Flag{Name: "test", Value: dataset.DefaultTestSize, Usage: "held-out fraction, 0 keeps every row for training"},
		&cli.BoolFlag{Name: "verbose", Usage: "print diagnostics"},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lineng",
		Usage: "linear regression and online softmax classification",
		Commands: []*cli.Command{
			{
				Name:   "regress",
				Usage:  "solve the batch normal equations regression",
				Flags:  sourceFlags(),
				Action: regress,
			},
			{
				Name:  "classify",
				Usage: "train the online softmax classifier",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "labels", Usage: "comma separated label catalog, distinct labels if empty"},
					&cli.Float64Flag{Name: "lr", Value: 0.01, Usage: "learning rate"},
					&cli.IntFlag{Name: "epochs", Value: 1, Usage: "passes over the training subset"},
				}, sourceFlags()...),
				Action: classify,
			},
		},
	}
}

func logger(c *cli.Context) model.Logger {
	if c.Bool("verbose") {
		return model.Printer(func(s string) { fmt.Fprintln(os.Stderr, s) })
	}
	return model.Nolog
}

func load(c *cli.Context) (*dataset.Dataset, error) {
	l := dataset.Loader{
		Shuffle:  c.Bool("shuffle"),
		Seed:     c.Int64("seed"),
		TestSize: c.Float64("test"),
		Verbose:  logger(c),
	}
	if l.TestSize == 0 {
		l.TestSize = dataset.NoTest
	}
	if db := c.String("db"); db != "" {
		return l.Query(db, c.String("query"))
	}
	return l.Load(c.String("file"))
}

func regress(c *cli.Context) error {
	ds, err := load(c)
	if err != nil {
		return err
	}
	r := regression.New(logger(c))
	w, err := r.Fit(ds)
	if err != nil {
		return err
	}
	fmt.Printf("weights:\n%v\n", mat.Formatted(w.T()))
	for _, s := range []model.Subset{model.TrainSubset, model.TestSubset} {
		nrmse, err := r.Evaluate(ds, s, false)
		if err != nil {
			return err
		}
		acc, err := r.Evaluate(ds, s, true)
		if err != nil {
			return err
		}
		fmt.Printf("%v: nrmse %.5f, accuracy %.5f\n", s, nrmse, acc)
	}
	return nil
}

func classify(c *cli.Context) error {
	ds, err := load(c)
	if err != nil {
		return err
	}
	labels := catalog(c.String("labels"), ds)
	clf, err := softmax.Config{
		Features:     ds.Fields() - 1,
		Classes:      len(labels),
		Labels:       labels,
		LearningRate: c.Float64("lr"),
		Verbose:      logger(c),
	}.New()
	if err != nil {
		return err
	}
	report, err := model.Training{
		Iterations:   c.Int("epochs"),
		ScoreHistory: c.Int("epochs"),
		Verbose:      func(s string) { fmt.Println(s) },
	}.Run(clf, ds)
	if err != nil {
		return err
	}
	h := clf.LossHistory()
	fmt.Printf("updates: %d, first loss %.5f, last loss %.5f\n", len(h), h[0], h[len(h)-1])
	fmt.Printf("best epoch %d: accuracy %.5f/%.5f\n", report.TheBest, report.Train, report.Test)
	return nil
}

func catalog(s string, ds *dataset.Dataset) []string {
	if s != "" {
		return strings.Split(s, ",")
	}
	seen := map[string]bool{}
	labels := []string{}
	for _, v := range mat.Col(nil, 0, ds.Labels) {
		if l := softmax.LabelString(v); !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)
	return labels
}

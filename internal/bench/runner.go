// Package bench runs the solvers over a batch of TSPLIB instances and keeps
// the results file current after every instance.
//
// Per file: parse coordinates, build the distance matrix, run
// twice-around-tree and Christofides under the approximation time limit,
// optionally run branch-and-bound under the exact limit, rate the
// approximations against the known optimum, then append a results record.
// Cancellation is honoured between files only; a running solver is never
// interrupted.
package bench

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/tsplab/internal/config"
	"github.com/katalvlaran/tsplab/matrix"
	"github.com/katalvlaran/tsplab/optimum"
	"github.com/katalvlaran/tsplab/report"
	"github.com/katalvlaran/tsplab/tsp"
	"github.com/katalvlaran/tsplab/tsplib"
)

// Outcome is everything produced for one instance file.
type Outcome struct {
	File    string
	Cities  int
	Results map[tsp.Algorithm]tsp.Result
	Record  report.Record
}

// Runner owns the per-batch state: optima, results writer and metrics.
type Runner struct {
	cfg     config.Config
	log     logrus.FieldLogger
	optima  optimum.Table
	writer  *report.Writer
	metrics *Metrics
}

// New prepares a Runner. A missing optima file is logged and tolerated.
func New(cfg config.Config, log logrus.FieldLogger) (*Runner, error) {
	optima := optimum.Table{}
	if cfg.Optima != "" {
		t, found, err := optimum.Load(cfg.Optima)
		if err != nil {
			return nil, err
		}
		if !found {
			log.WithField("optima", cfg.Optima).Warn("optima file not found, optimal costs will be NA")
		}
		optima = t
	}

	return &Runner{
		cfg:     cfg,
		log:     log,
		optima:  optima,
		writer:  report.NewWriter(cfg.Output),
		metrics: NewMetrics(),
	}, nil
}

// Metrics exposes the runner's collectors.
func (r *Runner) Metrics() *Metrics { return r.metrics }

// Files returns the instance list: just single when set, otherwise every
// *.tsp file of the input directory in name order.
func (r *Runner) Files(single string) ([]string, error) {
	if single != "" {
		return []string{single}, nil
	}
	entries, err := os.ReadDir(r.cfg.InputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", r.cfg.InputDir)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".tsp" {
			continue
		}
		files = append(files, filepath.Join(r.cfg.InputDir, e.Name()))
	}
	sort.Strings(files)

	return files, nil
}

// Run processes files in order and returns the records written. The results
// file is rewritten after each file; metrics are exported at the end when a
// metrics file is configured, including after cancellation.
func (r *Runner) Run(ctx context.Context, files []string) ([]report.Record, error) {
	var runErr error
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			runErr = errors.Wrap(err, "batch interrupted")
			break
		}
		out, err := r.ProcessFile(f)
		if err != nil {
			runErr = err
			break
		}
		if err := r.writer.Append(out.Record); err != nil {
			runErr = err
			break
		}
		r.log.WithFields(logrus.Fields{"file": out.File, "output": r.writer.Path()}).Info("results saved")
	}

	if r.cfg.MetricsFile != "" {
		if err := r.metrics.WriteTextfile(r.cfg.MetricsFile); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr != nil {
		return r.writer.Records(), runErr
	}
	r.log.WithField("output", r.writer.Path()).Infof("all %d results saved", len(files))

	return r.writer.Records(), nil
}

// ProcessFile runs the solvers on one instance file.
func (r *Runner) ProcessFile(path string) (Outcome, error) {
	in, err := tsplib.ParseFile(path)
	if err != nil {
		return Outcome{}, err
	}
	name := filepath.Base(path)
	log := r.log.WithFields(logrus.Fields{"file": name, "cities": in.Len()})
	log.Info("processing instance")

	dist := tsp.DistanceMatrix(in.Coords)
	out := Outcome{File: name, Cities: in.Len(), Results: make(map[tsp.Algorithm]tsp.Result, 3)}

	approx := tsp.Options{TimeLimit: r.cfg.TimeLimit}
	for _, algo := range []tsp.Algorithm{tsp.TwiceAroundTreeAlgo, tsp.ChristofidesAlgo} {
		if out.Results[algo], err = r.solve(log, dist, algo, approx); err != nil {
			return Outcome{}, err
		}
	}
	if r.cfg.RunExact {
		exact := tsp.Options{TimeLimit: r.cfg.ExactTimeLimit}
		if out.Results[tsp.BranchAndBoundAlgo], err = r.solve(log, dist, tsp.BranchAndBoundAlgo, exact); err != nil {
			return Outcome{}, err
		}
	}

	opt, hasOpt := r.optima.Lookup(name)
	if hasOpt && opt > 0 {
		for _, algo := range []tsp.Algorithm{tsp.TwiceAroundTreeAlgo, tsp.ChristofidesAlgo} {
			if res := out.Results[algo]; res.Available {
				ratio := res.Cost / opt
				r.metrics.ObserveRatio(algo, name, ratio)
				log.WithFields(logrus.Fields{"algorithm": algo.String(), "ratio": ratio}).Debug("approximation ratio")
			}
		}
	}

	out.Record = report.NewRecord(name, in.Len(), opt, hasOpt,
		out.Results[tsp.TwiceAroundTreeAlgo], out.Results[tsp.ChristofidesAlgo])

	return out, nil
}

func (r *Runner) solve(log logrus.FieldLogger, dist matrix.Matrix, algo tsp.Algorithm, opts tsp.Options) (tsp.Result, error) {
	res, err := tsp.Solve(dist, algo, opts)
	if err != nil {
		return tsp.NotAvailable, errors.Wrapf(err, "%s failed", algo)
	}
	r.metrics.Observe(algo, res)

	entry := log.WithField("algorithm", algo.String())
	if !res.Available {
		entry.WithField("limit", opts.TimeLimit).Warn("time limit reached")
		return res, nil
	}
	entry.WithFields(logrus.Fields{"cost": res.Cost, "elapsed": res.Elapsed}).Info("solved")
	entry.WithField("route", res.Route).Debug("route")

	return res, nil
}

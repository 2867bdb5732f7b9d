package trials

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sitecover/search"
)

// Run executes Runs repetitions of every requested algorithm and returns
// the raw trials (grouped by algorithm, repetition order within each
// group) plus one summary per algorithm in Spec.Algorithms order.
//
// Repetition seeds derive from Spec.Opts.Seed and the repetition's slot,
// so results are reproducible run for run regardless of Parallelism; only
// the trial IDs differ between invocations. The first failing repetition
// aborts the suite.
func Run(spec Spec) ([]Trial, []Summary, error) {
	if spec.NewOracle == nil {
		return nil, nil, ErrNilFactory
	}
	if len(spec.Algorithms) == 0 {
		return nil, nil, ErrNoAlgorithms
	}
	if spec.Runs < 1 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadRuns, spec.Runs)
	}
	if spec.Parallelism < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadParallelism, spec.Parallelism)
	}

	total := len(spec.Algorithms) * spec.Runs
	out := make([]Trial, total)

	// runOne fills exactly one slot; slots never overlap, so concurrent
	// repetitions need no locking around out.
	runOne := func(slot int) error {
		algo := spec.Algorithms[slot/spec.Runs]
		rep := slot % spec.Runs

		oracle, err := spec.NewOracle()
		if err != nil {
			return fmt.Errorf("trials: oracle for %s repetition %d: %w", algo, rep, err)
		}

		opts := spec.Opts
		opts.Seed = search.DeriveSeed(spec.Opts.Seed, uint64(slot))
		res, err := search.Solve(oracle, spec.Sites, algo, opts)
		if err != nil {
			return fmt.Errorf("trials: %s repetition %d: %w", algo, rep, err)
		}

		out[slot] = Trial{
			ID:        uuid.New(),
			Algorithm: algo,
			Seed:      opts.Seed,
			Result:    res,
		}
		log.WithFields(logrus.Fields{
			"algorithm":   algo.String(),
			"repetition":  rep,
			"coverage":    res.BestStats.Ratio,
			"evaluations": res.Evaluations,
			"reason":      res.Reason.String(),
		}).Info("repetition finished")
		return nil
	}

	if spec.Parallelism > 1 {
		p := pool.New().WithErrors().WithMaxGoroutines(spec.Parallelism)
		for slot := 0; slot < total; slot++ {
			slot := slot
			p.Go(func() error { return runOne(slot) })
		}
		if err := p.Wait(); err != nil {
			return nil, nil, err
		}
	} else {
		for slot := 0; slot < total; slot++ {
			if err := runOne(slot); err != nil {
				return nil, nil, err
			}
		}
	}

	sums := make([]Summary, len(spec.Algorithms))
	for i, algo := range spec.Algorithms {
		sums[i] = summarize(algo, out[i*spec.Runs:(i+1)*spec.Runs], spec.Opts.RequiredCoverage)
		log.WithFields(logrus.Fields{
			"algorithm":     algo.String(),
			"runs":          sums[i].Runs,
			"mean_coverage": sums[i].MeanCoverage,
			"success_rate":  sums[i].SuccessRate,
		}).Info("algorithm summarized")
	}
	return out, sums, nil
}

// summarize folds one algorithm's repetitions into a Summary.
func summarize(algo search.Algorithm, group []Trial, required float64) Summary {
	var (
		n         = len(group)
		coverages = make([]float64, n)
		evals     = make([]float64, n)
		reasons   = make(map[search.TerminationReason]int)
		success   int
	)
	for i, tr := range group {
		coverages[i] = tr.Result.BestStats.Ratio
		evals[i] = float64(tr.Result.Evaluations)
		reasons[tr.Result.Reason]++
		if tr.Result.BestStats.Ratio >= required {
			success++
		}
	}

	s := Summary{
		Algorithm:       algo,
		Runs:            n,
		MeanCoverage:    stat.Mean(coverages, nil),
		MinCoverage:     floats.Min(coverages),
		MaxCoverage:     floats.Max(coverages),
		MeanEvaluations: stat.Mean(evals, nil),
		SuccessRate:     float64(success) / float64(n),
		Reasons:         reasons,
	}
	// Sample stddev needs at least two observations.
	if n > 1 {
		s.StdDevCoverage = stat.StdDev(coverages, nil)
	}
	return s
}

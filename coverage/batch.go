package coverage

import (
	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/sitecover/subset"
)

// EvaluateBatch scores a population against one oracle. With parallelism
// above one the work is spread over that many goroutines; otherwise the
// population is scored sequentially in order. Either way the result slice
// lines up with pop and the oracle's counter grows by exactly len(pop)
// on success.
//
// On the first evaluation error the batch is abandoned and that error
// returned; the counter then reflects only the evaluations that finished.
func EvaluateBatch(o Oracle, pop []subset.Subset, parallelism int) ([]Stats, error) {
	out := make([]Stats, len(pop))
	if parallelism <= 1 {
		for i, s := range pop {
			st, err := o.Evaluate(s)
			if err != nil {
				return nil, err
			}
			out[i] = st
		}
		return out, nil
	}

	p := pool.New().WithErrors().WithMaxGoroutines(parallelism)
	for i := range pop {
		i := i
		p.Go(func() error {
			st, err := o.Evaluate(pop[i])
			if err != nil {
				return err
			}
			out[i] = st
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

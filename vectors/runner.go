package vectors

import (
	"runtime"
	"slices"
	"sync"

	"github.com/go-errors/errors"
	"github.com/nPaBwaYT/kalyna/cripta"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Result of running one vector
type Result struct {
	Vector Vector
	Output []uint64
	Passed bool
	Err    error
}

// Runner checks vectors on a pool of goroutines. Every vector gets its own
// cipher context, so workers share nothing.
type Runner struct {
	Workers int
	Log     *logrus.Entry
}

// NewRunner returns a runner with the given number of workers; 0 means one
// per CPU
func NewRunner(workers int, log *logrus.Entry) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{Workers: workers, Log: log}
}

// Run checks all vectors. Results are in input order.
func (r *Runner) Run(vectors []Vector) []Result {
	results := make([]Result, len(vectors))
	if len(vectors) == 0 {
		return results
	}

	numWorkers := max(r.Workers, 1)
	perWorker := (len(vectors) + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		if start >= len(vectors) {
			break
		}
		end := min(start+perWorker, len(vectors))

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				results[i] = r.runOne(vectors[i])
			}
		}(start, end)
	}
	wg.Wait()

	return results
}

func (r *Runner) runOne(vector Vector) Result {
	result := Result{Vector: vector}

	output, err := Apply(vector.Params, vector.Direction, vector.Key, vector.Input, r.Log)
	if err != nil {
		result.Err = err
		if r.Log != nil {
			r.Log.WithField("vector", vector.Name).Error(err)
		}
		return result
	}

	result.Output = output
	result.Passed = slices.Equal(output, vector.Expected)

	if r.Log != nil {
		r.Log.WithFields(logrus.Fields{
			"vector": vector.Name,
			"passed": result.Passed,
		}).Debug("vector checked")
	}

	return result
}

// Apply runs one block through a fresh context and closes it
func Apply(params cripta.Params, direction Direction, key, input []uint64, log *logrus.Entry) ([]uint64, error) {
	ctx, err := cripta.NewCipherContext(params.BlockBits(), params.KeyBits())
	if err != nil {
		return nil, err
	}
	defer ctx.Close()

	if log != nil {
		ctx.SetLogger(log)
	}

	if err := ctx.ExpandKey(key); err != nil {
		return nil, err
	}

	if len(input) != params.Nb {
		return nil, errors.Wrap(cripta.BlockSizeError(len(input)*8), 0)
	}

	if direction == Decipher {
		return ctx.Decipher(input), nil
	}
	return ctx.Encipher(input), nil
}

// Summary counts passed vectors
func Summary(results []Result) (passed, total int) {
	passedResults := lo.Filter(results, func(result Result, _ int) bool {
		return result.Passed
	})
	return len(passedResults), len(results)
}

package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/japaniel/sentencer/pkg/sentence"
	"github.com/japaniel/sentencer/pkg/wordbank"
	"go.uber.org/zap"
)

// Options configures Generate.
type Options struct {
	// Workers defaults to GOMAXPROCS.
	Workers int
	// Seed is the base random seed; seed i uses Seed+i, so runs are reproducible.
	Seed   uint64
	Logger *zap.Logger
}

// Result is the outcome for one input seed. Err is set instead of the embedded result on failure.
type Result struct {
	Index int
	Input string
	sentence.Result
	Err error
}

var errNotRun = errors.New("job did not run")

// Generate builds one sentence per raw seed on a worker pool.
// Results are in input order. A failing seed only fails its own Result;
// the returned error is for pool failures and cancellation.
func Generate(ctx context.Context, bank wordbank.Bank, seeds []string, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(seeds))
	for i, raw := range seeds {
		results[i] = Result{Index: i, Input: raw, Err: errNotRun}
	}

	pool := NewWorkerPool(workers, len(seeds))
	pool.Start(ctx)
	for i, raw := range seeds {
		err := pool.Submit(func(ctx context.Context) error {
			gen := sentence.NewGenerator(bank, sentence.NewRandPicker(opts.Seed+uint64(i)))
			res, err := gen.Generate(raw)
			results[i].Result = res
			results[i].Err = err
			if err != nil {
				logger.Debug("seed failed", zap.Int("index", i), zap.String("seed", raw), zap.Error(err))
			}
			return err
		})
		if err != nil {
			pool.Close()
			return results, fmt.Errorf("submit seed %d: %w", i, err)
		}
	}
	pool.Close()

	if err := ctx.Err(); err != nil {
		for i := range results {
			if results[i].Err == errNotRun {
				results[i].Err = err
			}
		}
		return results, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Info("batch complete", zap.Int("seeds", len(seeds)), zap.Int("failed", failed), zap.Int("workers", workers))
	return results, nil
}

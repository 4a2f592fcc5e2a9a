package integrate

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Task is a single integration within a batch.
type Task struct {
	F            FallibleIntegrand
	Lower, Upper float64
}

// TaskResult is the result of a Task, in the form EvaluateFallible returns it.
type TaskResult struct {
	Outcome Outcome
	Err     error
}

// EvaluateAll integrates all tasks, using up to parallelism goroutines
// (unlimited if parallelism ≤ 0). Results are returned in the order of tasks.
//
// Cancelling ctx prevents tasks from being started; their result carries the
// context's error. Tasks already running are completed. The returned error is
// the context's error if at least one task has not been started, and nil
// otherwise.
//
// A runtime.Error panic of an integrand crashes the program, as it happens on
// a goroutine of its own.
func (integ *Integrator) EvaluateAll(ctx context.Context, tasks []Task, parallelism int) ([]TaskResult, error) {
	results := make([]TaskResult, len(tasks))
	skipped := make([]bool, len(tasks))
	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				skipped[i] = true
				return nil
			}
			results[i].Outcome, results[i].Err = integ.EvaluateFallible(task.F, task.Lower, task.Upper)
			return nil
		})
	}
	_ = g.Wait()
	tracer().Debugf("integrate: batch of %d tasks done", len(tasks))
	for i, skip := range skipped {
		if skip {
			return results, results[i].Err
		}
	}
	return results, nil
}

package integrate

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func expectation(lambda float64) FallibleIntegrand {
	return func(x float64) (float64, error) {
		return x * lambda * math.Exp(-lambda*x), nil
	}
}

func TestEvaluateAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	boom := errors.New("boom")
	tasks := []Task{
		{F: expectation(1), Lower: 0, Upper: math.Inf(1)},
		{F: expectation(2), Lower: 0, Upper: math.Inf(1)},
		{F: func(float64) (float64, error) { return 0, boom }, Lower: 0, Upper: 1},
		{F: expectation(5), Lower: 0, Upper: math.Inf(1)},
		{F: expectation(1), Lower: math.NaN(), Upper: 1},
	}
	integ := New(DefaultConfig())
	results, err := integ.EvaluateAll(context.Background(), tasks, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != len(tasks) {
		t.Fatalf("expected %d results, have %d", len(tasks), len(results))
	}
	for i, lambda := range map[int]float64{0: 1, 1: 2, 3: 5} {
		r := results[i]
		if r.Err != nil || math.Abs(r.Outcome.Value-1/lambda) > 1e-4 {
			t.Errorf("task %d: expected %g, have %v (%v)", i, 1/lambda, r.Outcome, r.Err)
		}
	}
	if !errors.Is(results[2].Err, boom) {
		t.Errorf("task 2: expected boom, have %v", results[2].Err)
	}
	if !errors.Is(results[4].Err, InvalidInput) {
		t.Errorf("task 4: expected invalid input, have %v", results[4].Err)
	}
}

func TestEvaluateAllCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	tasks := []Task{{F: func(x float64) (float64, error) {
		called = true
		return x, nil
	}, Lower: 0, Upper: 1}}
	results, err := New(DefaultConfig()).EvaluateAll(ctx, tasks, 0)
	if !errors.Is(err, context.Canceled) || !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("expected cancellation, have %v / %v", err, results[0].Err)
	}
	if called {
		t.Errorf("cancelled tasks must not be started")
	}
}

func TestEvaluateAllCancelledAfterLastTask(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "integrate")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var once sync.Once
	last := func(x float64) (float64, error) {
		once.Do(cancel)
		return x, nil
	}
	tasks := []Task{
		{F: expectation(1), Lower: 0, Upper: math.Inf(1)},
		{F: last, Lower: 0, Upper: 1},
	}
	results, err := New(DefaultConfig()).EvaluateAll(ctx, tasks, 1)
	if err != nil {
		t.Errorf("all tasks have run, expected no error, have %v", err)
	}
	for i, r := range results {
		if r.Err != nil {
			t.Errorf("task %d: unexpected error %v", i, r.Err)
		}
	}
	if math.Abs(results[1].Outcome.Value-0.5) > 1e-10 {
		t.Errorf("expected ∫_0^1 x dx = 0.5, have %v", results[1].Outcome)
	}
}

package integrate

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"runtime/debug"
)

// Integrand is a function to integrate.
type Integrand func(x float64) float64

// FallibleIntegrand is a function to integrate which may report a failure.
// A panic inside the function counts as failure as well, with the exception
// of runtime errors (out-of-range indexing, nil dereferencing, …), which are
// propagated as an *IntegrandPanic.
type FallibleIntegrand func(x float64) (float64, error)

// IntegrandPanic is the panic value for a runtime error raised by an
// integrand. It still is a runtime.Error. As the panic is raised anew while
// unwinding, its stack trace ends in this package; Stack holds the trace of
// the goroutine at the point where the integrand failed.
type IntegrandPanic struct {
	Err   runtime.Error
	Stack []byte
}

var _ runtime.Error = (*IntegrandPanic)(nil)

func newIntegrandPanic(rterr runtime.Error) *IntegrandPanic {
	if p, ok := rterr.(*IntegrandPanic); ok {
		return p // nested integration
	}
	return &IntegrandPanic{Err: rterr, Stack: debug.Stack()}
}

func (p *IntegrandPanic) Error() string {
	return p.Err.Error()
}

// RuntimeError marks p as a runtime.Error.
func (p *IntegrandPanic) RuntimeError() {}

// Unwrap returns the original runtime error.
func (p *IntegrandPanic) Unwrap() error {
	return p.Err
}

func infallible(f Integrand) FallibleIntegrand {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

// callContext is the per-call state handed to the kernel as its opaque
// context value. It stages the first failure of the integrand until the
// kernel has returned.
type callContext struct {
	f       FallibleIntegrand
	failure *Error
	calls   int
}

// bridge is the quadpack.Func for all integrations. The kernel calls it
// with ex set to a *callContext.
func bridge(x []float64, ex interface{}) {
	ex.(*callContext).evaluate(x)
}

// evaluate replaces every abscissa in x by the function value. On failure,
// or if an earlier batch already failed, the whole batch is set to 0, which
// is harmless to the kernel.
func (c *callContext) evaluate(x []float64) {
	if c.failure != nil {
		clear(x)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			if rterr, ok := r.(runtime.Error); ok {
				panic(newIntegrandPanic(rterr))
			}
			c.fail(&Error{Kind: EvaluationFailure, Cause: panicCause(r)})
			clear(x)
		}
	}()
	for i, xi := range x {
		y, err := c.f(xi)
		c.calls++
		if err != nil {
			c.fail(&Error{Kind: EvaluationFailure, Cause: err})
			clear(x)
			return
		}
		if math.IsNaN(y) || math.IsInf(y, 0) {
			c.fail(&Error{Kind: NonFiniteValue, Detail: fmt.Sprintf("f(%g) = %g", xi, y)})
			clear(x)
			return
		}
		x[i] = y
	}
}

func (c *callContext) fail(err *Error) {
	tracer().Infof("integrate: integrand failed after %d calls: %v", c.calls, err)
	c.failure = err
}

// rethrow returns the staged failure, if any, completed with the kernel's
// outcome.
func (c *callContext) rethrow(out Outcome) error {
	if c.failure == nil {
		return nil
	}
	c.failure.Outcome = out
	return c.failure
}

func panicCause(r interface{}) error {
	switch v := r.(type) {
	case error:
		return v
	case string:
		return errors.New(v)
	}
	return fmt.Errorf("panic: %v", r)
}

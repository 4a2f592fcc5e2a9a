package integrate

import (
	"math"

	"github.com/npillmayer/integrate/quadpack"
)

// Integrator integrates functions with a fixed configuration.
//
// An Integrator holds no state besides its configuration, so concurrent
// evaluations are safe. Setters must not be called concurrently with
// evaluations, though.
type Integrator struct {
	cfg    Config
	kernel Kernel
}

// Option configures an Integrator.
type Option func(*Integrator)

// UseKernel replaces the default quadrature kernel.
func UseKernel(k Kernel) Option {
	return func(integ *Integrator) {
		integ.kernel = k
	}
}

// New creates an integrator for configuration cfg. cfg is not checked here;
// an invalid configuration fails on evaluation with InvalidInput.
func New(cfg Config, opts ...Option) *Integrator {
	integ := &Integrator{cfg: cfg, kernel: Quadpack}
	for _, opt := range opts {
		opt(integ)
	}
	if integ.kernel == nil {
		integ.kernel = Quadpack
	}
	return integ
}

// Config returns the current configuration.
func (integ *Integrator) Config() Config {
	return integ.cfg
}

// MaxSubdivisions returns the maximum number of subintervals.
func (integ *Integrator) MaxSubdivisions() int { return integ.cfg.MaxSubdivisions() }

// RelativeAccuracy returns the requested relative accuracy.
func (integ *Integrator) RelativeAccuracy() float64 { return integ.cfg.RelativeAccuracy() }

// AbsoluteAccuracy returns the requested absolute accuracy.
func (integ *Integrator) AbsoluteAccuracy() float64 { return integ.cfg.AbsoluteAccuracy() }

// WorkSize returns the size of the working storage.
func (integ *Integrator) WorkSize() int { return integ.cfg.WorkSize() }

// IsValid reports whether the current configuration is valid.
func (integ *Integrator) IsValid() bool {
	return integ.cfg.IsValid()
}

// Validate returns an InvalidInput error if the current configuration is
// not valid.
func (integ *Integrator) Validate() error {
	return integ.cfg.Validate()
}

// SetConfig replaces the configuration. If cfg is invalid, the integrator is
// left unchanged and an InvalidInput error is returned.
func (integ *Integrator) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	integ.cfg = cfg
	return nil
}

// SetMaxSubdivisions changes the maximum number of subintervals, leaving the
// integrator unchanged if the result would be invalid. As the work size is
// not adapted, raising the number of subdivisions may require to raise the
// work size first.
func (integ *Integrator) SetMaxSubdivisions(n int) error {
	return integ.SetConfig(integ.cfg.WithMaxSubdivisions(n))
}

// SetRelativeAccuracy changes the relative accuracy, leaving the integrator
// unchanged if the result would be invalid.
func (integ *Integrator) SetRelativeAccuracy(x float64) error {
	return integ.SetConfig(integ.cfg.WithRelativeAccuracy(x))
}

// SetAbsoluteAccuracy changes the absolute accuracy, leaving the integrator
// unchanged if the result would be invalid.
func (integ *Integrator) SetAbsoluteAccuracy(x float64) error {
	return integ.SetConfig(integ.cfg.WithAbsoluteAccuracy(x))
}

// SetWorkSize changes the size of the working storage, leaving the
// integrator unchanged if the result would be invalid.
func (integ *Integrator) SetWorkSize(n int) error {
	return integ.SetConfig(integ.cfg.WithWorkSize(n))
}

// Evaluate integrates f from lower to upper. Either bound may be infinite.
//
// On failure, the error is an *Error, which carries the outcome computed so
// far. The returned Outcome equals that one.
func (integ *Integrator) Evaluate(f Integrand, lower, upper float64) (Outcome, error) {
	if f == nil {
		return Outcome{}, &Error{Kind: InvalidInput, Detail: "integrand is nil"}
	}
	return integ.EvaluateFallible(infallible(f), lower, upper)
}

// EvaluateFallible integrates f from lower to upper, like Evaluate. If f fails
// (by returning an error or by panicking), the first failure is returned as
// an EvaluationFailure wrapping the cause. If f returns a non-finite value, a
// NonFiniteValue error is returned.
//
// Panics carrying a runtime.Error are not caught.
func (integ *Integrator) EvaluateFallible(f FallibleIntegrand, lower, upper float64) (Outcome, error) {
	cfg := integ.cfg
	if err := cfg.Validate(); err != nil {
		return Outcome{}, err
	}
	if f == nil {
		return Outcome{}, &Error{Kind: InvalidInput, Detail: "integrand is nil"}
	}
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Outcome{}, &Error{Kind: InvalidInput, Detail: "a limit is NaN"}
	}
	kernel := integ.kernel
	if kernel == nil {
		kernel = Quadpack
	}
	ctx := &callContext{f: f}
	iwork := make([]int, cfg.limit)
	work := make([]float64, cfg.lenw)
	var r quadpack.Result
	if isFinite(lower) && isFinite(upper) {
		tracer().Debugf("integrate: ∫ over [%g, %g]", lower, upper)
		r = kernel.Finite(bridge, ctx, lower, upper, cfg.epsabs, cfg.epsrel, cfg.limit, iwork, work)
	} else {
		bound, inf := boundary(lower, upper)
		tracer().Debugf("integrate: ∫ over infinite range, bound=%g, %s", bound, inf)
		r = kernel.Infinite(bridge, ctx, bound, inf, cfg.epsabs, cfg.epsrel, cfg.limit, iwork, work)
	}
	out := Outcome{
		Value:        r.Value,
		AbsError:     r.AbsErr,
		Subdivisions: r.Last,
		Neval:        r.Neval,
	}
	if err := ctx.rethrow(out); err != nil {
		return out, err
	}
	if err := statusError(r.Ier, out); err != nil {
		tracer().Infof("integrate: %v (%v)", err, out)
		return out, err
	}
	return out, nil
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// boundary selects the infinite-range variant. A finite lower bound takes
// precedence over a finite upper bound; the orientation of the limits is not
// considered.
func boundary(lower, upper float64) (float64, quadpack.Boundary) {
	switch {
	case isFinite(lower):
		return lower, quadpack.LowerBounded
	case isFinite(upper):
		return upper, quadpack.UpperBounded
	}
	return 0, quadpack.DoublyInfinite
}

// Integrate integrates f from lower to upper with the default configuration.
func Integrate(f Integrand, lower, upper float64) (Outcome, error) {
	return IntegrateWith(DefaultConfig(), f, lower, upper)
}

// IntegrateWith integrates f from lower to upper with configuration cfg.
func IntegrateWith(cfg Config, f Integrand, lower, upper float64) (Outcome, error) {
	return New(cfg).Evaluate(f, lower, upper)
}

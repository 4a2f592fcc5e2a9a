package integrate

import (
	"fmt"
	"math"
)

// epsilon is the machine epsilon for float64.
const epsilon = 0x1p-52

// Defaults for configurations.
const (
	DefaultMaxSubdivisions = 100
	DefaultAccuracy        = 0x1p-13 // ε^¼
)

// minRelativeAccuracy is the smallest relative accuracy the kernel accepts if
// no positive absolute accuracy is requested: max(50ε, 0.5e-28).
const minRelativeAccuracy = 50 * epsilon

// maxSubdivisions bounds the number of subdivisions, so that the work size
// 4 × subdivisions is representable.
const maxSubdivisions = math.MaxInt / 4

// Config holds the tunable parameters of an integration:
//
//   - the maximum number of subdivisions (≥ 1),
//   - the requested relative and absolute accuracy,
//   - the size of the kernel's working storage (≥ 4 × maximum subdivisions).
//
// Config is a value type. Its With… methods return modified copies without
// checking them, so a Config may be temporarily invalid; use IsValid or
// Validate before relying on it. The zero value is invalid.
type Config struct {
	limit  int
	epsrel float64
	epsabs float64
	lenw   int
}

// DefaultConfig returns a configuration with 100 subdivisions, both accuracies
// set to ε^¼ and a working storage of 400.
func DefaultConfig() Config {
	return MakeConfig()
}

// ConfigOption sets a single parameter during construction of a Config.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	limit          int
	epsrel, epsabs float64
	lenw           int
	hasAbs         bool
	hasLenw        bool
}

// SubdivisionLimit sets the maximum number of subintervals.
func SubdivisionLimit(n int) ConfigOption {
	return func(b *configBuilder) {
		b.limit = n
	}
}

// RelativeAccuracy sets the requested relative accuracy. If no absolute
// accuracy is given, it will be set to the same value.
func RelativeAccuracy(x float64) ConfigOption {
	return func(b *configBuilder) {
		b.epsrel = x
	}
}

// AbsoluteAccuracy sets the requested absolute accuracy.
func AbsoluteAccuracy(x float64) ConfigOption {
	return func(b *configBuilder) {
		b.epsabs = x
		b.hasAbs = true
	}
}

// WorkSize sets the size of the working storage. If not given, it will be
// set to 4 × the maximum number of subdivisions.
func WorkSize(n int) ConfigOption {
	return func(b *configBuilder) {
		b.lenw = n
		b.hasLenw = true
	}
}

// MakeConfig creates a configuration from options without validating it.
// Parameters not given take their defaults.
func MakeConfig(opts ...ConfigOption) Config {
	b := configBuilder{
		limit:  DefaultMaxSubdivisions,
		epsrel: DefaultAccuracy,
	}
	for _, opt := range opts {
		opt(&b)
	}
	if !b.hasAbs {
		b.epsabs = b.epsrel
	}
	if !b.hasLenw {
		b.lenw = math.MaxInt
		if b.limit <= maxSubdivisions {
			b.lenw = 4 * b.limit
		}
	}
	return Config{
		limit:  b.limit,
		epsrel: b.epsrel,
		epsabs: b.epsabs,
		lenw:   b.lenw,
	}
}

// NewConfig creates a configuration from options, like MakeConfig, and fails
// with an InvalidInput error if the result is not valid. The configuration
// is returned in either case, to allow inspection.
func NewConfig(opts ...ConfigOption) (Config, error) {
	c := MakeConfig(opts...)
	return c, c.Validate()
}

// MaxSubdivisions returns the maximum number of subintervals.
func (c Config) MaxSubdivisions() int {
	return c.limit
}

// RelativeAccuracy returns the requested relative accuracy.
func (c Config) RelativeAccuracy() float64 {
	return c.epsrel
}

// AbsoluteAccuracy returns the requested absolute accuracy.
func (c Config) AbsoluteAccuracy() float64 {
	return c.epsabs
}

// WorkSize returns the size of the working storage.
func (c Config) WorkSize() int {
	return c.lenw
}

// WithMaxSubdivisions returns a copy of c with a new maximum number of
// subdivisions. The work size is left unchanged.
func (c Config) WithMaxSubdivisions(n int) Config {
	c.limit = n
	return c
}

// WithRelativeAccuracy returns a copy of c with a new relative accuracy.
func (c Config) WithRelativeAccuracy(x float64) Config {
	c.epsrel = x
	return c
}

// WithAbsoluteAccuracy returns a copy of c with a new absolute accuracy.
func (c Config) WithAbsoluteAccuracy(x float64) Config {
	c.epsabs = x
	return c
}

// WithWorkSize returns a copy of c with a new work size.
func (c Config) WithWorkSize(n int) Config {
	c.lenw = n
	return c
}

// IsValid is a predicate: may c be used for integration? It checks
//
//	max subdivisions ≥ 1
//	not (absolute accuracy ≤ 0 and relative accuracy < max(50ε, 0.5e-28))
//	work size ≥ 4 × max subdivisions
func (c Config) IsValid() bool {
	return c.violation() == ""
}

// Validate returns an InvalidInput error, carrying a zero Outcome, if c is
// not valid, and nil otherwise.
func (c Config) Validate() error {
	if v := c.violation(); v != "" {
		tracer().Debugf("integrate: invalid configuration %v: %s", c, v)
		return &Error{Kind: InvalidInput, Detail: v}
	}
	return nil
}

func (c Config) violation() string {
	switch {
	case c.limit < 1:
		return fmt.Sprintf("maximum number of subdivisions is %d, must be at least 1", c.limit)
	case c.limit > maxSubdivisions:
		return fmt.Sprintf("maximum number of subdivisions is %d, must be at most %d", c.limit, maxSubdivisions)
	case c.epsabs <= 0 && c.epsrel < minRelativeAccuracy:
		return fmt.Sprintf("relative accuracy %g is too small for absolute accuracy %g", c.epsrel, c.epsabs)
	case c.lenw < 4*c.limit:
		return fmt.Sprintf("work size %d is less than 4 × %d subdivisions", c.lenw, c.limit)
	}
	return ""
}

func (c Config) String() string {
	return fmt.Sprintf("Config{subdivisions=%d, rel.tol=%g, abs.tol=%g, work.size=%d}",
		c.limit, c.epsrel, c.epsabs, c.lenw)
}

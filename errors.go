package integrate

import (
	"errors"
	"fmt"

	"github.com/npillmayer/integrate/quadpack"
)

// Kind identifies a specific integration failure. Kinds are errors themselves,
// so clients may test with
//
//	errors.Is(err, integrate.Divergence)
type Kind uint8

// Kinds 1 to 6 correspond to the status codes of the quadrature kernel.
const (
	MaxSubdivisions       Kind = iota + 1 // maximum number of subdivisions reached
	Roundoff                              // roundoff error was detected
	BadIntegrand                          // extremely bad integrand behaviour
	ExtrapolationRoundoff                 // roundoff error in the extrapolation table
	Divergence                            // the integral is probably divergent
	InvalidInput                          // the input is invalid
	NonFiniteValue                        // the integrand returned NaN or ±Inf
	EvaluationFailure                     // the integrand failed
)

var kindMessages = [...]string{
	MaxSubdivisions:       "maximum number of subdivisions reached",
	Roundoff:              "roundoff error was detected",
	BadIntegrand:          "extremely bad integrand behaviour",
	ExtrapolationRoundoff: "roundoff error is detected in the extrapolation table",
	Divergence:            "the integral is probably divergent",
	InvalidInput:          "the input is invalid",
	NonFiniteValue:        "non-finite function value",
	EvaluationFailure:     "evaluation of integrand failed",
}

var kindNames = [...]string{
	MaxSubdivisions:       "MaxSubdivisions",
	Roundoff:              "Roundoff",
	BadIntegrand:          "BadIntegrand",
	ExtrapolationRoundoff: "ExtrapolationRoundoff",
	Divergence:            "Divergence",
	InvalidInput:          "InvalidInput",
	NonFiniteValue:        "NonFiniteValue",
	EvaluationFailure:     "EvaluationFailure",
}

func (k Kind) valid() bool {
	return k >= MaxSubdivisions && k <= EvaluationFailure
}

// Error returns the message of k, which is the message clients see.
func (k Kind) Error() string {
	if !k.valid() {
		return fmt.Sprintf("unknown integration failure %d", uint8(k))
	}
	return kindMessages[k]
}

// String returns the name of the constant for k.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Class returns the class of failures k belongs to. InvalidInput is the only
// logic failure.
func (k Kind) Class() Class {
	if k == InvalidInput {
		return LogicFailure
	}
	return RuntimeFailure
}

// Class partitions the kinds of failures into runtime failures, stemming from
// the numerical process or the integrand, and logic failures, stemming from
// violated preconditions. Classes are errors, too.
type Class uint8

const (
	RuntimeFailure Class = iota + 1
	LogicFailure
)

func (c Class) Error() string {
	switch c {
	case RuntimeFailure:
		return "integration runtime error"
	case LogicFailure:
		return "integration logic error"
	}
	return "integration error"
}

// Failure is the behaviour common to all integration errors.
type Failure interface {
	error
	Result() Outcome // outcome at the time of failure
	Class() Class
}

// Error is the single concrete error type of this package.
type Error struct {
	Kind    Kind
	Outcome Outcome
	Detail  string // optional, additional information
	Cause   error  // optional, set for EvaluationFailure
}

var _ Failure = (*Error)(nil)

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Result returns the outcome at the time of failure.
func (e *Error) Result() Outcome {
	return e.Outcome
}

// Class returns the class of e's kind.
func (e *Error) Class() Class {
	return e.Kind.Class()
}

// Unwrap returns the cause of an EvaluationFailure, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches e against its Kind and its Class.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return t == e.Kind
	case Class:
		return t == e.Kind.Class()
	}
	return false
}

// ResultOf extracts the outcome attached to an integration error.
func ResultOf(err error) (Outcome, bool) {
	var f Failure
	if errors.As(err, &f) {
		return f.Result(), true
	}
	return Outcome{}, false
}

// KindOf returns the kind of an integration error, or 0 if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ErrKernelContract is the panic value raised if the kernel returns a status
// code outside 0…6. It is intentionally not an *Error.
var ErrKernelContract = errors.New("integrate: quadrature kernel violated its contract")

var statusKinds = [...]Kind{
	quadpack.IerMaxSubdivisions: MaxSubdivisions,
	quadpack.IerRoundoff:        Roundoff,
	quadpack.IerBadIntegrand:    BadIntegrand,
	quadpack.IerExtrapolation:   ExtrapolationRoundoff,
	quadpack.IerDivergence:      Divergence,
	quadpack.IerInvalid:         InvalidInput,
}

// statusError translates a kernel status code into an error carrying out.
// It panics for codes the kernel is not allowed to return.
func statusError(ier int, out Outcome) error {
	if ier == quadpack.IerOK {
		return nil
	}
	if ier > 0 && ier < len(statusKinds) {
		return &Error{Kind: statusKinds[ier], Outcome: out}
	}
	tracer().Errorf("integrate: kernel returned undefined status code %d", ier)
	panic(fmt.Errorf("%w: undefined status code %d", ErrKernelContract, ier))
}

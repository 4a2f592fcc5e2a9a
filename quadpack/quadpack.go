package quadpack

// Func is the vectorized form of an integrand. It receives a batch of
// abscissae in x and has to overwrite every element with the function value
// at that point. ex is the opaque context value given to QAGS or QAGI.
//
// A Func must return normally; the routines of this package do not recover
// from panics.
type Func func(x []float64, ex interface{})

// Boundary encodes which end points of an integration range are infinite.
type Boundary int

const (
	UpperBounded   Boundary = -1 // (-∞, bound]
	LowerBounded   Boundary = 1  // [bound, +∞)
	DoublyInfinite Boundary = 2  // (-∞, +∞)
)

func (b Boundary) String() string {
	switch b {
	case UpperBounded:
		return "upper-bounded"
	case LowerBounded:
		return "lower-bounded"
	case DoublyInfinite:
		return "doubly-infinite"
	}
	return "invalid-boundary"
}

// Status codes returned in Result.Ier.
const (
	IerOK              = 0
	IerMaxSubdivisions = 1
	IerRoundoff        = 2
	IerBadIntegrand    = 3
	IerExtrapolation   = 4
	IerDivergence      = 5
	IerInvalid         = 6
)

// Result holds the output parameters of a quadrature routine.
type Result struct {
	Value  float64 // approximation to the integral
	AbsErr float64 // estimate of |I - Value|
	Neval  int     // number of integrand evaluations
	Ier    int     // status code
	Last   int     // number of subintervals produced
}

// QAGS integrates f over the finite interval [a,b], trying to satisfy
//
//	|I - Value| ≤ max(epsabs, epsrel·|I|).
//
// limit bounds the number of subintervals. iwork must provide at least
// limit elements and work at least 4·limit elements; both are used as
// scratch storage only. If the storage is too small, or if both tolerances
// are unattainable, QAGS returns with Ier = IerInvalid without evaluating f.
func QAGS(f Func, ex interface{}, a, b, epsabs, epsrel float64, limit int,
	iwork []int, work []float64) Result {
	//
	w, ok := newWorkspace(limit, iwork, work)
	if !ok {
		tracer().Debugf("quadpack: insufficient workspace for limit=%d", limit)
		return Result{Ier: IerInvalid}
	}
	e := &evaluator{f: f, ex: ex}
	value, abserr, ier, last := adapt(e.qk21, a, b, epsabs, epsrel, limit, w)
	r := Result{Value: value, AbsErr: abserr, Ier: ier, Last: last}
	if last > 0 {
		r.Neval = 42*last - 21
	}
	return r
}

// QAGI integrates f over an infinite range: [bound,+∞) for inf =
// LowerBounded, (-∞,bound] for inf = UpperBounded and (-∞,+∞) for inf =
// DoublyInfinite (bound is ignored then). Tolerances and storage follow the
// conventions of QAGS.
func QAGI(f Func, ex interface{}, bound float64, inf Boundary, epsabs, epsrel float64,
	limit int, iwork []int, work []float64) Result {
	//
	w, ok := newWorkspace(limit, iwork, work)
	if !ok {
		tracer().Debugf("quadpack: insufficient workspace for limit=%d", limit)
		return Result{Ier: IerInvalid}
	}
	if inf != LowerBounded && inf != UpperBounded && inf != DoublyInfinite {
		tracer().Debugf("quadpack: illegal boundary code %d", int(inf))
		return Result{Ier: IerInvalid}
	}
	boun := bound
	if inf == DoublyInfinite {
		boun = 0
	}
	e := &evaluator{f: f, ex: ex, boun: boun, inf: inf}
	value, abserr, ier, last := adapt(e.qk15i, 0, 1, epsabs, epsrel, limit, w)
	r := Result{Value: value, AbsErr: abserr, Ier: ier, Last: last}
	if last > 0 {
		r.Neval = 30*last - 15
		if inf == DoublyInfinite {
			r.Neval *= 2
		}
	}
	return r
}

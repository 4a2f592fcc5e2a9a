package integrate

import "github.com/npillmayer/integrate/quadpack"

// Kernel is an adaptive quadrature engine. Its methods have the contract of
// quadpack.QAGS and quadpack.QAGI: they call f with batches of abscissae and
// the context value ex, and report a status code between 0 and 6 in the
// result's Ier field.
type Kernel interface {
	Finite(f quadpack.Func, ex interface{}, lower, upper float64,
		epsabs, epsrel float64, limit int, iwork []int, work []float64) quadpack.Result
	Infinite(f quadpack.Func, ex interface{}, bound float64, inf quadpack.Boundary,
		epsabs, epsrel float64, limit int, iwork []int, work []float64) quadpack.Result
}

// Quadpack is the default kernel, package quadpack.
var Quadpack Kernel = quadpackKernel{}

type quadpackKernel struct{}

func (quadpackKernel) Finite(f quadpack.Func, ex interface{}, lower, upper float64,
	epsabs, epsrel float64, limit int, iwork []int, work []float64) quadpack.Result {
	return quadpack.QAGS(f, ex, lower, upper, epsabs, epsrel, limit, iwork, work)
}

func (quadpackKernel) Infinite(f quadpack.Func, ex interface{}, bound float64, inf quadpack.Boundary,
	epsabs, epsrel float64, limit int, iwork []int, work []float64) quadpack.Result {
	return quadpack.QAGI(f, ex, bound, inf, epsabs, epsrel, limit, iwork, work)
}

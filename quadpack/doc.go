/*
Package quadpack implements the two adaptive quadrature routines of QUADPACK
which are needed to integrate a univariate function over finite and
infinite intervals.

QAGS integrates over a finite interval [a,b]. It bisects the subinterval
with the largest error estimate, applying a 21-point Gauss–Kronrod rule to
each half, and accelerates convergence with Wynn's epsilon algorithm.

QAGI integrates over (bound,+∞), (-∞,bound) or (-∞,+∞). The interval is
mapped onto (0,1] by x = bound + (1-t)/t and then handled like QAGS, using a
15-point Gauss–Kronrod rule on the transformed integrand.

Both routines talk to the integrand through a vectorized callback of type
Func: the routine hands over a slice of abscissae and expects it to be
overwritten with function values. An opaque context value is passed through
unchanged. The routines never inspect it and never recover from panics
raised by the callback; callers have to make sure a callback returns
normally.

Results are reported with an integer status code, following the QUADPACK
conventions:

	0  normal termination
	1  maximum number of subdivisions reached
	2  roundoff error prevents reaching the requested tolerance
	3  extremely bad integrand behaviour somewhere in the interval
	4  roundoff error in the extrapolation table
	5  the integral is probably divergent or slowly convergent
	6  the input is invalid

References

R. Piessens, E. de Doncker-Kapenga, C. Überhuber, D. Kahaner:
QUADPACK, A Subroutine Package for Automatic Integration. Springer, 1983.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2022, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package quadpack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'integrate'
func tracer() tracing.Trace {
	return tracing.Select("integrate")
}

/*
Package integrate approximates definite integrals of univariate real
functions over finite, semi-infinite and infinite intervals.

Integration

The heavy lifting is done by an adaptive quadrature kernel (package
quadpack, a rendition of the QUADPACK routines QAGS and QAGI). Package
integrate is a thin but careful layer on top of it:

▪︎ it validates the tunable parameters before they ever reach the kernel,

▪︎ it chooses the kernel entry point from the finiteness of the bounds,

▪︎ it adapts a plain Go function to the vectorized callback the kernel
calls, catching failures of the integrand instead of letting them run
through the kernel, and

▪︎ it translates the kernel's numeric status codes into typed errors which
keep the partial result computed so far.

A typical call looks like this:

	lambda := 2.0
	f := func(x float64) float64 { return x * lambda * math.Exp(-lambda*x) }
	out, err := integrate.Integrate(f, 0, math.Inf(1))
	if err != nil {
	    // err carries an Outcome as well, see ResultOf
	}
	fmt.Println(out) // 0.5 with absolute error < …

Configuration

Config holds the maximum number of subdivisions, the requested relative
and absolute accuracy and the size of the kernel's working storage. A Config
may be created fail-fast with NewConfig or leniently with MakeConfig; in the
latter case IsValid and Validate let clients inspect and correct it before
use. An Integrator re-validates on every evaluation and on every setter
call.

Errors

Every error produced by this package is an *Error. Errors fall into two
classes: runtime failures, which stem from the numerical process itself, and
logic failures, which signal violated preconditions. Each error carries the
Outcome known at the time of failure, which often still is a usable
approximation (e.g., if the maximum number of subdivisions has been
reached). Use errors.Is with a Kind or a Class to classify errors.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2022, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package integrate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'integrate'
func tracer() tracing.Trace {
	return tracing.Select("integrate")
}

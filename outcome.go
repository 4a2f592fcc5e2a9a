package integrate

import (
	"fmt"
	"strconv"
)

// Outcome is the result of an integration. It is attached to every error as
// well, so clients may inspect the partial result of a failed integration.
type Outcome struct {
	Value        float64 // approximation to the integral
	AbsError     float64 // estimate of the modulus of the absolute error
	Subdivisions int     // number of subintervals produced by the kernel
	Neval        int     // number of integrand evaluations requested
}

// String formats an outcome like
//
//	0.5 with absolute error < 1.9e-05
func (o Outcome) String() string {
	return fmt.Sprintf("%s with absolute error < %s",
		strconv.FormatFloat(o.Value, 'g', 7, 64),
		strconv.FormatFloat(o.AbsError, 'g', 2, 64))
}

package integrate_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/integrate"
)

func ExampleIntegrate() {
	lambda := 2.0
	f := func(x float64) float64 {
		return x * lambda * math.Exp(-lambda*x)
	}
	out, err := integrate.Integrate(f, 0, math.Inf(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", out.Value)
	// Output: 0.500
}

func ExampleError() {
	cfg := integrate.MakeConfig(integrate.SubdivisionLimit(1))
	_, err := integrate.IntegrateWith(cfg, func(x float64) float64 {
		return math.Sin(50 * x)
	}, 0, 10)
	if errors.Is(err, integrate.MaxSubdivisions) {
		out, _ := integrate.ResultOf(err)
		fmt.Println(err)
		fmt.Println(out.Subdivisions)
	}
	// Output:
	// maximum number of subdivisions reached
	// 1
}

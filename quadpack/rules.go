package quadpack

import "math"

// Machine constants (d1mach(1), d1mach(2), d1mach(4) in the Fortran sources).
const (
	epmach = 2.220446049250313e-16
	uflow  = 2.2250738585072014e-308
	oflow  = math.MaxFloat64
)

// Abscissae and weights of the 21-point Kronrod rule and the embedded
// 10-point Gauss rule. Gauss nodes are xgk21[1], xgk21[3], …, xgk21[9].
var (
	xgk21 = [11]float64{
		0.995657163025808080735527280689003,
		0.973906528517171720077964012084452,
		0.930157491355708226001207180059508,
		0.865063366688984510732096688423493,
		0.780817726586416897063717578345042,
		0.679409568299024406234327365114874,
		0.562757134668604683339000099272694,
		0.433395394129247190799265943165784,
		0.294392862701460198131126603103866,
		0.148874338981631210884826001129720,
		0.000000000000000000000000000000000,
	}
	wgk21 = [11]float64{
		0.011694638867371874278064396062192,
		0.032558162307964727478818972459390,
		0.054755896574351996031381300244580,
		0.075039674810919952767043140916190,
		0.093125454583697605535065465083366,
		0.109387158802297641899210590325805,
		0.123491976262065851077600525185311,
		0.134709217311473325928054001771707,
		0.142775938577060080797094273138717,
		0.147739104901338491374841515972068,
		0.149445554002916905664936468389821,
	}
	wg10 = [5]float64{
		0.066671344308688137593568809893332,
		0.149451349150580593145776339657697,
		0.219086362515982043995534934228163,
		0.269266719309996355091226921569469,
		0.295524224714752870173892994651338,
	}
)

// Abscissae and weights of the 15-point Kronrod rule and the embedded
// 7-point Gauss rule (zero weights at the Kronrod-only nodes).
var (
	xgk15 = [8]float64{
		0.991455371120812639206854697526329,
		0.949107912342758524526189684047851,
		0.864864423359769072789712788640926,
		0.741531185599394439863864773280788,
		0.586087235467691130294144845693013,
		0.405845151377397166906606412076961,
		0.207784955007898467600689403773245,
		0.000000000000000000000000000000000,
	}
	wgk15 = [8]float64{
		0.022935322010529224963732008058970,
		0.063092092629978553290700663189204,
		0.104790010322250183839876322541518,
		0.140653259715525918745189590510238,
		0.169004726639267902826583426598550,
		0.190350578064785409913256402421014,
		0.204432940075298892414161999234649,
		0.209482141084727828012999174891714,
	}
	wg7 = [8]float64{
		0.0,
		0.129484966168869693270611432679082,
		0.0,
		0.279705391489276667901467771423780,
		0.0,
		0.381830050505118944950369775488975,
		0.0,
		0.417959183673469387755102040816327,
	}
)

// estimate is what a single application of a Gauss–Kronrod rule yields.
//
// resabs approximates the integral of |f|, resasc approximates the integral
// of |f - mean(f)| over the same interval.
type estimate struct {
	result, abserr float64
	resabs, resasc float64
}

// evaluator binds an integrand and its context to the quadrature rules.
// buf holds the abscissae handed to the integrand in one batch.
type evaluator struct {
	f    Func
	ex   interface{}
	boun float64
	inf  Boundary
	buf  [30]float64
}

// qk21 applies the 21-point Gauss–Kronrod rule to [a,b].
func (e *evaluator) qk21(a, b float64) estimate {
	centr := 0.5 * (a + b)
	hlgth := 0.5 * (b - a)
	dhlgth := math.Abs(hlgth)
	fv := e.buf[:21]
	fv[0] = centr
	for k := 0; k < 10; k++ {
		absc := hlgth * xgk21[k]
		fv[1+2*k] = centr - absc
		fv[2+2*k] = centr + absc
	}
	e.f(fv, e.ex)
	fc := fv[0]
	resg := 0.0
	resk := wgk21[10] * fc
	resabs := math.Abs(resk)
	for k := 0; k < 10; k++ {
		fval1, fval2 := fv[1+2*k], fv[2+2*k]
		fsum := fval1 + fval2
		resk += wgk21[k] * fsum
		resabs += wgk21[k] * (math.Abs(fval1) + math.Abs(fval2))
		if k%2 == 1 {
			resg += wg10[k/2] * fsum
		}
	}
	reskh := 0.5 * resk
	resasc := wgk21[10] * math.Abs(fc-reskh)
	for k := 0; k < 10; k++ {
		resasc += wgk21[k] * (math.Abs(fv[1+2*k]-reskh) + math.Abs(fv[2+2*k]-reskh))
	}
	est := estimate{
		result: resk * hlgth,
		abserr: math.Abs((resk - resg) * hlgth),
		resabs: resabs * dhlgth,
		resasc: resasc * dhlgth,
	}
	est.abserr = adjustError(est)
	return est
}

// qk15i applies the 15-point Gauss–Kronrod rule to the subinterval [a,b] of
// (0,1], after the (semi-)infinite range has been mapped onto (0,1]
// by x = boun + dinf*(1-t)/t. For a doubly infinite range the integrand is
// folded: f(x) + f(-x).
func (e *evaluator) qk15i(a, b float64) estimate {
	dinf := float64(e.inf)
	if dinf > 1 {
		dinf = 1
	}
	centr := 0.5 * (a + b)
	hlgth := 0.5 * (b - a)
	n := 15
	if e.inf == DoublyInfinite {
		n = 30
	}
	fv := e.buf[:n]
	fv[0] = e.boun + dinf*(1-centr)/centr
	for k := 0; k < 7; k++ {
		absc := hlgth * xgk15[k]
		absc1, absc2 := centr-absc, centr+absc
		fv[1+2*k] = e.boun + dinf*(1-absc1)/absc1
		fv[2+2*k] = e.boun + dinf*(1-absc2)/absc2
	}
	if e.inf == DoublyInfinite {
		for i := 0; i < 15; i++ {
			fv[15+i] = -fv[i]
		}
	}
	e.f(fv, e.ex)
	fval := func(i int) float64 {
		if e.inf == DoublyInfinite {
			return fv[i] + fv[15+i]
		}
		return fv[i]
	}
	fc := (fval(0) / centr) / centr
	resg := wg7[7] * fc
	resk := wgk15[7] * fc
	resabs := math.Abs(resk)
	var fv1, fv2 [7]float64
	for k := 0; k < 7; k++ {
		absc := hlgth * xgk15[k]
		absc1, absc2 := centr-absc, centr+absc
		fval1 := (fval(1+2*k) / absc1) / absc1
		fval2 := (fval(2+2*k) / absc2) / absc2
		fv1[k], fv2[k] = fval1, fval2
		fsum := fval1 + fval2
		resg += wg7[k] * fsum
		resk += wgk15[k] * fsum
		resabs += wgk15[k] * (math.Abs(fval1) + math.Abs(fval2))
	}
	reskh := 0.5 * resk
	resasc := wgk15[7] * math.Abs(fc-reskh)
	for k := 0; k < 7; k++ {
		resasc += wgk15[k] * (math.Abs(fv1[k]-reskh) + math.Abs(fv2[k]-reskh))
	}
	est := estimate{
		result: resk * hlgth,
		abserr: math.Abs((resk - resg) * hlgth),
		resabs: resabs * hlgth,
		resasc: resasc * hlgth,
	}
	est.abserr = adjustError(est)
	return est
}

// adjustError scales the raw Gauss/Kronrod difference into the more
// realistic error estimate QUADPACK uses, bounded below by roundoff.
func adjustError(est estimate) float64 {
	abserr := est.abserr
	if est.resasc != 0 && abserr != 0 {
		abserr = est.resasc * math.Min(1, math.Pow(200*abserr/est.resasc, 1.5))
	}
	if est.resabs > uflow/(50*epmach) {
		abserr = math.Max(epmach*50*est.resabs, abserr)
	}
	return abserr
}

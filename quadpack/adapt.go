package quadpack

import "math"

// workspace partitions the caller-supplied scratch storage.
type workspace struct {
	alist, blist []float64 // left and right end points of the subintervals
	rlist, elist []float64 // integral approximations and error estimates
	iord         []int     // ordering of elist, descending
}

// newWorkspace carves the lists out of work and iwork. It fails if the
// storage is too small for limit subintervals.
func newWorkspace(limit int, iwork []int, work []float64) (*workspace, bool) {
	if limit < 1 || limit > len(work)/4 || len(iwork) < limit {
		return nil, false
	}
	return &workspace{
		alist: work[:limit],
		blist: work[limit : 2*limit],
		rlist: work[2*limit : 3*limit],
		elist: work[3*limit : 4*limit],
		iord:  iwork[:limit],
	}, true
}

type rule func(a, b float64) estimate

// where control continues after the main loop of adapt
type exit int

const (
	exitNone exit = iota
	exitFinal
	exitSum
)

// adapt is the globally adaptive bisection scheme with extrapolation, common
// to QAGS and QAGI. It integrates over [a,b] using rule q and returns the
// approximation, its error estimate, the status code and the number of
// subintervals used.
func adapt(q rule, a, b, epsabs, epsrel float64, limit int, w *workspace) (
	result, abserr float64, ier, last int) {
	//
	alist, blist, rlist, elist, iord := w.alist, w.blist, w.rlist, w.elist, w.iord
	alist[0], blist[0], rlist[0], elist[0] = a, b, 0, 0
	if epsabs <= 0 && epsrel < math.Max(50*epmach, 0.5e-28) {
		return 0, 0, IerInvalid, 0
	}
	// first approximation to the integral
	first := q(a, b)
	result, abserr = first.result, first.abserr
	defabs, resabs := first.resabs, first.resasc
	dres := math.Abs(result)
	errbnd := math.Max(epsabs, epsrel*dres)
	last = 1
	rlist[0], elist[0], iord[0] = result, abserr, 0
	if abserr <= 100*epmach*defabs && abserr > errbnd {
		ier = IerRoundoff
	}
	if limit == 1 {
		ier = IerMaxSubdivisions
	}
	if ier != 0 || (abserr <= errbnd && abserr != resabs) || abserr == 0 {
		return
	}
	tracer().Debugf("quadpack: first estimate %g ± %g does not meet %g, subdividing", result, abserr, errbnd)
	//
	var eps epsilonTable
	eps.tab[1] = result
	eps.n = 2
	errmax, maxerr := abserr, 0
	area, errsum := result, abserr
	abserr = oflow
	nrmax, ktmin := 0, 0
	extrap, noext := false, false
	ierro, iroff1, iroff2, iroff3 := 0, 0, 0, 0
	ksgn := -1
	if dres >= (1-50*epmach)*defabs {
		ksgn = 1
	}
	var small, erlarg, ertest, correc float64
	jump := exitNone
	for last = 2; last <= limit; last++ {
		// bisect the subinterval with the nrmax-th largest error estimate
		a1 := alist[maxerr]
		b1 := 0.5 * (alist[maxerr] + blist[maxerr])
		a2, b2 := b1, blist[maxerr]
		erlast := errmax
		lo, hi := q(a1, b1), q(a2, b2)
		area1, error1 := lo.result, lo.abserr
		area2, error2 := hi.result, hi.abserr
		// improve previous approximations to integral and error
		area12 := area1 + area2
		erro12 := error1 + error2
		errsum += erro12 - errmax
		area += area12 - rlist[maxerr]
		if lo.resasc != error1 && hi.resasc != error2 {
			if math.Abs(rlist[maxerr]-area12) <= 1e-5*math.Abs(area12) && erro12 >= 0.99*errmax {
				if extrap {
					iroff2++
				} else {
					iroff1++
				}
			}
			if last > 10 && erro12 > errmax {
				iroff3++
			}
		}
		rlist[maxerr] = area1
		rlist[last-1] = area2
		errbnd = math.Max(epsabs, epsrel*math.Abs(area))
		if iroff1+iroff2 >= 10 || iroff3 >= 20 {
			ier = IerRoundoff
		}
		if iroff2 >= 5 {
			ierro = 3
		}
		if last == limit {
			ier = IerMaxSubdivisions
		}
		// bad integrand behaviour at a point of the integration range
		if math.Max(math.Abs(a1), math.Abs(b2)) <= (1+100*epmach)*(math.Abs(a2)+1000*uflow) {
			ier = IerExtrapolation // shifted down to IerBadIntegrand below
		}
		// append the newly-created intervals to the list
		if error2 > error1 {
			alist[maxerr] = a2
			alist[last-1], blist[last-1] = a1, b1
			rlist[maxerr], rlist[last-1] = area2, area1
			elist[maxerr], elist[last-1] = error2, error1
		} else {
			alist[last-1] = a2
			blist[maxerr], blist[last-1] = b1, b2
			elist[maxerr], elist[last-1] = error1, error2
		}
		maxerr, errmax, nrmax = sortErrors(limit, last, maxerr, elist, iord, nrmax)
		if errsum <= errbnd {
			jump = exitSum
			break
		}
		if ier != 0 {
			jump = exitFinal
			break
		}
		if last == 2 {
			small = math.Abs(b-a) * 0.375
			erlarg, ertest = errsum, errbnd
			eps.tab[2] = area
			continue
		}
		if noext {
			continue
		}
		erlarg -= erlast
		if math.Abs(b1-a1) > small {
			erlarg += erro12
		}
		if !extrap {
			// is the interval to be bisected next the smallest one?
			if math.Abs(blist[maxerr]-alist[maxerr]) > small {
				continue
			}
			extrap = true
			nrmax = 1
		}
		if ierro != 3 && erlarg > ertest {
			// The smallest interval has the largest error. Before bisecting,
			// decrease the sum of the errors over the larger intervals (erlarg)
			// and perform extrapolation.
			jupbnd := last
			if last > 2+limit/2 {
				jupbnd = limit + 3 - last
			}
			large := false
			for k := nrmax + 1; k <= jupbnd; k++ {
				maxerr = iord[nrmax]
				errmax = elist[maxerr]
				if math.Abs(blist[maxerr]-alist[maxerr]) > small {
					large = true
					break
				}
				nrmax++
			}
			if large {
				continue
			}
		}
		// perform extrapolation
		eps.n++
		eps.tab[eps.n] = area
		reseps, abseps := eps.extrapolate()
		ktmin++
		if ktmin > 5 && abserr < 1e-3*errsum {
			ier = IerDivergence // shifted down to IerExtrapolation below
		}
		if abseps < abserr {
			ktmin = 0
			abserr, result = abseps, reseps
			correc = erlarg
			ertest = math.Max(epsabs, epsrel*math.Abs(reseps))
			if abserr <= ertest {
				jump = exitFinal
				break
			}
		}
		// prepare bisection of the smallest interval
		if eps.n == 1 {
			noext = true
		}
		if ier == IerDivergence {
			jump = exitFinal
			break
		}
		maxerr = iord[0]
		errmax = elist[maxerr]
		nrmax = 0
		extrap = false
		small *= 0.5
		erlarg = errsum
	}
	if last > limit {
		last, jump = limit, exitFinal
	}
	// set final result and error estimate
	if jump == exitFinal {
		switch {
		case abserr == oflow:
			jump = exitSum
		case ier+ierro == 0:
			ier = testDivergence(ier, ksgn, result, area, defabs, errsum)
		default:
			if ierro == 3 {
				abserr += correc
			}
			if ier == 0 {
				ier = IerBadIntegrand // shifted down to IerRoundoff below
			}
			switch {
			case result != 0 && area != 0:
				if abserr/math.Abs(result) > errsum/math.Abs(area) {
					jump = exitSum
				} else {
					ier = testDivergence(ier, ksgn, result, area, defabs, errsum)
				}
			case abserr > errsum:
				jump = exitSum
			case area == 0:
			default:
				ier = testDivergence(ier, ksgn, result, area, defabs, errsum)
			}
		}
	}
	if jump == exitSum {
		// compute global integral sum
		result = 0
		for k := 0; k < last; k++ {
			result += rlist[k]
		}
		abserr = errsum
	}
	if ier > 2 {
		ier--
	}
	return
}

// testDivergence flags a probably divergent integral. It returns the
// internal code IerInvalid, which is shifted down to IerDivergence by the
// caller.
func testDivergence(ier, ksgn int, result, area, defabs, errsum float64) int {
	if ksgn == -1 && math.Max(math.Abs(result), math.Abs(area)) <= defabs*0.01 {
		return ier
	}
	if 0.01 > result/area || result/area > 100 || errsum > math.Abs(area) {
		return IerInvalid
	}
	return ier
}

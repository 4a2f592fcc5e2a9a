package quadpack

import "math"

// limexp is the maximum number of elements the epsilon table may hold.
const limexp = 50

// epsilonTable keeps the state of Wynn's epsilon algorithm across calls.
//
// tab and res3la are indexed from 1, mirroring the classic formulation of
// the algorithm; index 0 is unused.
type epsilonTable struct {
	tab    [limexp + 3]float64
	res3la [4]float64
	n      int // number of elements currently in tab
	nres   int // number of calls to extrapolate
}

// extrapolate determines the limit of the sequence of partial sums in
// tab[1..n], where the caller has stored the newest one at tab[n]. It returns
// the extrapolated limit and an estimate of its absolute error, and shrinks
// or shifts the table as needed.
func (t *epsilonTable) extrapolate() (result, abserr float64) {
	t.nres++
	abserr = oflow
	n := t.n
	result = t.tab[n]
	if n < 3 {
		abserr = math.Max(abserr, 5*epmach*math.Abs(result))
		return
	}
	t.tab[n+2] = t.tab[n]
	newelm := (n - 1) / 2
	t.tab[n] = oflow
	num := n
	k1 := n
	converged := false
	for i := 1; i <= newelm; i++ {
		k2, k3 := k1-1, k1-2
		res := t.tab[k1+2]
		e0, e1, e2 := t.tab[k3], t.tab[k2], res
		e1abs := math.Abs(e1)
		delta2 := e2 - e1
		err2 := math.Abs(delta2)
		tol2 := math.Max(math.Abs(e2), e1abs) * epmach
		delta3 := e1 - e0
		err3 := math.Abs(delta3)
		tol3 := math.Max(e1abs, math.Abs(e0)) * epmach
		if err2 <= tol2 && err3 <= tol3 {
			// e0, e1 and e2 are equal to within machine accuracy
			result = res
			abserr = err2 + err3
			converged = true
			break
		}
		e3 := t.tab[k1]
		t.tab[k1] = e1
		delta1 := e1 - e3
		err1 := math.Abs(delta1)
		tol1 := math.Max(e1abs, math.Abs(e3)) * epmach
		if err1 <= tol1 || err2 <= tol2 || err3 <= tol3 {
			n = i + i - 1
			break
		}
		ss := 1/delta1 + 1/delta2 - 1/delta3
		epsinf := math.Abs(ss * e1)
		if epsinf <= 1e-4 {
			// irregular behaviour in the table
			n = i + i - 1
			break
		}
		res = e1 + 1/ss
		t.tab[k1] = res
		k1 -= 2
		errest := err2 + math.Abs(res-e2) + err3
		if errest <= abserr {
			abserr = errest
			result = res
		}
	}
	if converged {
		t.n = n
		abserr = math.Max(abserr, 5*epmach*math.Abs(result))
		return
	}
	// shift the table
	if n == limexp {
		n = 2*(limexp/2) - 1
	}
	ib := 1
	if (num/2)*2 == num {
		ib = 2
	}
	ie := newelm + 1
	for i := 1; i <= ie; i++ {
		t.tab[ib] = t.tab[ib+2]
		ib += 2
	}
	if num != n {
		indx := num - n + 1
		for i := 1; i <= n; i++ {
			t.tab[i] = t.tab[indx]
			indx++
		}
	}
	t.n = n
	if t.nres < 4 {
		t.res3la[t.nres] = result
		abserr = oflow
	} else {
		abserr = math.Abs(result-t.res3la[3]) + math.Abs(result-t.res3la[2]) +
			math.Abs(result-t.res3la[1])
		t.res3la[1] = t.res3la[2]
		t.res3la[2] = t.res3la[3]
		t.res3la[3] = result
	}
	abserr = math.Max(abserr, 5*epmach*math.Abs(result))
	return
}

// sortErrors maintains the descending ordering of the error estimates in
// elist, as referenced through iord, after the interval at position maxerr
// has been bisected into maxerr and last-1. It returns the index of the
// interval to bisect next together with its error estimate and the updated
// nrmax. last counts the intervals; all indices are 0-based.
func sortErrors(limit, last, maxerr int, elist []float64, iord []int, nrmax int) (int, float64, int) {
	finish := func() (int, float64, int) {
		maxerr = iord[nrmax]
		return maxerr, elist[maxerr], nrmax
	}
	if last <= 2 {
		iord[0] = 0
		iord[1] = 1
		return finish()
	}
	// Only executed if, due to a difficult integrand, subdivision increased
	// the error estimate. Normally insertion starts after the nrmax-th
	// largest error estimate.
	errmax := elist[maxerr]
	for ido := nrmax; ido > 0; ido-- {
		isucc := iord[nrmax-1]
		if errmax <= elist[isucc] {
			break
		}
		iord[nrmax] = isucc
		nrmax--
	}
	// Number of elements to keep in descending order; depends on the number
	// of subdivisions still allowed. Positions below are 1-based.
	jupbn := last
	if last > limit/2+2 {
		jupbn = limit + 3 - last
	}
	errmin := elist[last-1]
	jbnd := jupbn - 1
	ibeg := nrmax + 2
	for i := ibeg; i <= jbnd; i++ {
		isucc := iord[i-1]
		if errmax >= elist[isucc] {
			// insert errmin by traversing the list bottom-up
			iord[i-2] = maxerr
			k := jbnd
			for j := i; j <= jbnd; j++ {
				isucc = iord[k-1]
				if errmin < elist[isucc] {
					iord[k] = last - 1
					return finish()
				}
				iord[k] = isucc
				k--
			}
			iord[i-1] = last - 1
			return finish()
		}
		iord[i-2] = isucc
	}
	iord[jbnd-1] = maxerr
	iord[jupbn-1] = last - 1
	return finish()
}

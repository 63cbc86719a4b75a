package energy

import (
	"fmt"
	"math"
	"sort"
)

// Interpolation is a continuous piecewise-linear least-squares fit: the
// simplest globally continuous model, with a stable derivative on each
// segment and no overfitting of noisy daily readings.
type Interpolation struct {
	xs []float64 // breakpoints, ascending
	ys []float64 // fitted values at the breakpoints
}

// fitPiecewiseLinear fits a continuous degree-1 spline through (x, y)
// with the given interior knots as the only allowed slope breaks. Knots
// outside the open data range are ignored. Requires len(x) >= 2; a
// breakpoint interval containing no observations leaves the normal
// system singular and fails.
func fitPiecewiseLinear(x, y []float64, knots []float64) (*Interpolation, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("mismatched inputs: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("need at least 2 points, have %d", len(x))
	}

	bps := make([]float64, 0, len(knots)+2)
	bps = append(bps, x[0])
	for _, k := range knots {
		if k > bps[len(bps)-1] && k < x[len(x)-1] {
			bps = append(bps, k)
		}
	}
	bps = append(bps, x[len(x)-1])

	// Normal equations over the hat-function basis: one basis function
	// per breakpoint, so the solved coefficients are the fitted values
	// at the breakpoints themselves.
	m := len(bps)
	a := make([][]float64, m)
	for i := range a {
		a[i] = make([]float64, m)
	}
	rhs := make([]float64, m)

	for i, xi := range x {
		j := segmentIndex(bps, xi)
		h := bps[j+1] - bps[j]
		wr := (xi - bps[j]) / h
		wl := 1 - wr
		a[j][j] += wl * wl
		a[j][j+1] += wl * wr
		a[j+1][j] += wl * wr
		a[j+1][j+1] += wr * wr
		rhs[j] += wl * y[i]
		rhs[j+1] += wr * y[i]
	}

	coeffs, err := solve(a, rhs)
	if err != nil {
		return nil, err
	}
	return &Interpolation{xs: bps, ys: coeffs}, nil
}

// Evaluate returns the fitted value at x, extrapolating the end
// segments linearly outside the data range.
func (sp *Interpolation) Evaluate(x float64) float64 {
	j := segmentIndex(sp.xs, x)
	h := sp.xs[j+1] - sp.xs[j]
	return sp.ys[j] + (x-sp.xs[j])*(sp.ys[j+1]-sp.ys[j])/h
}

// Coeffs returns the fitted values at the breakpoints.
func (sp *Interpolation) Coeffs() []float64 {
	out := make([]float64, len(sp.ys))
	copy(out, sp.ys)
	return out
}

// Breakpoints returns the x positions the fit may bend at.
func (sp *Interpolation) Breakpoints() []float64 {
	out := make([]float64, len(sp.xs))
	copy(out, sp.xs)
	return out
}

// segmentIndex picks the segment [bps[j], bps[j+1]] containing x,
// clamping to the end segments.
func segmentIndex(bps []float64, x float64) int {
	j := sort.SearchFloat64s(bps, x)
	// SearchFloat64s returns the insertion point; shift to the segment
	// whose left edge is at or before x.
	if j > 0 {
		j--
	}
	if j > len(bps)-2 {
		j = len(bps) - 2
	}
	return j
}

// solve runs Gaussian elimination with partial pivoting on a small
// dense system, in place.
func solve(a [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, fmt.Errorf("singular fit: no observations near breakpoint %d", col)
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			if f == 0 {
				continue
			}
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}
	x := make([]float64, n)
	for r := n - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < n; c++ {
			sum -= a[r][c] * x[c]
		}
		x[r] = sum / a[r][r]
	}
	return x, nil
}

package energy

import "math"

// lambertW0 evaluates the principal real branch of the Lambert W
// function, the inverse of w*exp(w), for x >= -1/e. Halley iteration
// from a piecewise initial guess; converges to machine precision in a
// handful of steps for the arguments the lean/fat partition produces.
func lambertW0(x float64) float64 {
	const branchPoint = -1 / math.E
	if math.IsNaN(x) || x < branchPoint {
		return math.NaN()
	}
	if x == 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return math.Inf(1)
	}

	if s := 1 + math.E*x; s < 1e-6 {
		// series around the branch point; Halley is unstable there
		if s < 0 {
			s = 0
		}
		p := math.Sqrt(2 * s)
		return -1 + p - p*p/3
	}

	var w float64
	switch {
	case x > math.E:
		lx := math.Log(x)
		w = lx - math.Log(lx)
	default:
		w = math.Log1p(x)
	}

	for i := 0; i < 64; i++ {
		ew := math.Exp(w)
		f := w*ew - x
		if math.Abs(f) <= 1e-13*(math.Abs(x)+1e-300) {
			break
		}
		wp1 := w + 1
		// Halley step
		step := f / (ew*wp1 - f*(w+2)/(2*wp1))
		w -= step
		if math.Abs(step) <= 1e-15*(math.Abs(w)+1) {
			break
		}
	}
	return w
}

// Package energy turns a weight series and a plan into a trend estimate
// and a daily calorie adjustment.
//
// The body-composition equations follow Hall (2008): the lean share of a
// cumulative body-weight change is a function of initial fat mass alone,
// which leaves the fat share and, with Hall's caloric densities, the
// energy balance behind the change.
// https://www.ncbi.nlm.nih.gov/pmc/articles/PMC2376744/
package energy

import "math"

// Caloric densities from Hall (2008), converted from 39.5 and 7.6 MJ/kg.
const (
	kcalPerKgFat  = 9441
	kcalPerKgLean = 1820
)

// leanLogCoeff is the empirical coefficient of the lean/fat relation
// L = 10.4*ln(F) + c.
const leanLogCoeff = 10.4

// DeltaLean estimates how much of a cumulative body-weight change (kg,
// from a fixed baseline) is lean mass, given the baseline fat mass (kg).
// Solving Hall's relation for the lean share requires Lambert W.
func DeltaLean(deltaBW, fatI float64) float64 {
	arg := math.Exp(deltaBW/leanLogCoeff) * fatI * math.Exp(fatI/leanLogCoeff) / leanLogCoeff
	return deltaBW + fatI - leanLogCoeff*lambertW0(arg)
}

// InitialBodyFat estimates body-fat mass in kg from the CUN-BAE
// regression: a sex-proportion-weighted blend of the sex-specific
// polynomials in BMI and age. Weight in kg, height in meters,
// sexProportion in [0, 1] with 1 meaning male.
// https://pubmed.ncbi.nlm.nih.gov/22179957/
func InitialBodyFat(weight float64, age int, height, sexProportion float64) float64 {
	bmi := weight / (height * height)
	a := float64(age)
	female := -34.299 + 0.503*a + 3.353*bmi - 0.031*bmi*bmi - 0.020*bmi*a + 0.00021*bmi*bmi*a
	male := -44.988 + 0.503*a + 3.172*bmi - 0.026*bmi*bmi - 0.020*bmi*a + 0.00021*bmi*bmi*a
	return weight * (male*sexProportion + female*(1-sexProportion)) / 100
}

// DeltaE is the caloric surplus or deficit for the incremental change
// from previousW to currentW, computed against the cumulative baseline
// initialW with initial fat mass fatI. All masses in kg. The partition
// is nonlinear in total change, so both endpoints are partitioned
// cumulatively and subtracted; the increment alone would be wrong.
func DeltaE(initialW, previousW, currentW, fatI float64) float64 {
	previousLean := DeltaLean(previousW-initialW, fatI)
	fullLean := DeltaLean(currentW-initialW, fatI)
	lean := fullLean - previousLean
	fat := (currentW - previousW) - lean
	return kcalPerKgFat*fat + kcalPerKgLean*lean
}

// DeltaEAuto is DeltaE with the baseline fat mass estimated from the
// CUN-BAE regression.
func DeltaEAuto(initialW, previousW, currentW float64, age int, height, sexProportion float64) float64 {
	fatI := InitialBodyFat(initialW, age, height, sexProportion)
	return DeltaE(initialW, previousW, currentW, fatI)
}

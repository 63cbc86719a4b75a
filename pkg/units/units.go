// Package units holds the measurement systems and exact conversion factors
// shared by the weight log and the energy model.
package units

import "fmt"

// Exact conversion constants. These must not be approximated further;
// file round-trips depend on them bit-for-bit.
const (
	KgPerLb = 0.45359237
	MPerIn  = 0.0254
	MPerCm  = 0.01
)

// System identifies the measurement system a user works in.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// WeightUnit returns the mass unit used for display in this system.
func (s System) WeightUnit() Weight {
	if s == Imperial {
		return Lbs
	}
	return Kg
}

// HeightUnit returns the length unit used for height entry in this system.
func (s System) HeightUnit() Height {
	if s == Imperial {
		return Inches
	}
	return Centimeters
}

// Valid reports whether the system is one of the known values.
func (s System) Valid() bool {
	return s == Metric || s == Imperial
}

// Weight is a mass presentation unit.
type Weight string

const (
	Kg  Weight = "kg"
	Lbs Weight = "lbs"
)

// ParseWeight maps a unit label to its enum value.
func ParseWeight(label string) (Weight, error) {
	switch label {
	case string(Kg):
		return Kg, nil
	case string(Lbs):
		return Lbs, nil
	}
	return "", fmt.Errorf("unknown weight unit %q", label)
}

// FromKg converts a canonical kilogram mass into this unit.
func (w Weight) FromKg(kg float64) float64 {
	if w == Lbs {
		return kg / KgPerLb
	}
	return kg
}

// ToKg converts a mass in this unit into canonical kilograms.
func (w Weight) ToKg(v float64) float64 {
	if w == Lbs {
		return v * KgPerLb
	}
	return v
}

// Height is a length presentation unit for body height.
type Height string

const (
	Inches      Height = "in"
	Centimeters Height = "cm"
)

// ToMeters converts a height in this unit into meters.
func (h Height) ToMeters(v float64) float64 {
	switch h {
	case Inches:
		return v * MPerIn
	case Centimeters:
		return v * MPerCm
	}
	return v
}

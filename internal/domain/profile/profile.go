// Package profile models the per-user plan consumed by the energy model:
// units, target rate, cycle length and the body-fat estimation inputs.
package profile

import (
	"errors"
	"fmt"

	"github.com/yanqian/weight-advisor/pkg/units"
)

// BodyFatMethod selects how the initial body-fat mass is obtained.
type BodyFatMethod string

const (
	// BodyFatAutomatic estimates body fat from age, height and sex
	// proportion via the CUN-BAE regression.
	BodyFatAutomatic BodyFatMethod = "automatic"
	// BodyFatManual uses a user-supplied body-fat fraction.
	BodyFatManual BodyFatMethod = "manual"
)

// SexSelection is the user's choice for the body-fat regression.
type SexSelection string

const (
	SexFemale SexSelection = "female"
	SexMale   SexSelection = "male"
	// SexOther blends the sex-specific regressions by SexProportion.
	SexOther SexSelection = "other"
	// SexUnset falls back to an even blend.
	SexUnset SexSelection = ""
)

// Profile is an explicit, passed-by-value settings struct. Canonical
// storage units: kilograms per day for the rate, meters for height.
type Profile struct {
	Units                units.System  `yaml:"units"`
	CycleDays            int           `yaml:"cycleDays"`
	TargetRateKgPerDay   float64       `yaml:"targetRateKgPerDay"`
	AlwaysShowAdjustment bool          `yaml:"alwaysShowAdjustment"`
	BodyFatMethod        BodyFatMethod `yaml:"bodyFatMethod"`
	AgeYears             int           `yaml:"ageYears"`
	HeightMeters         float64       `yaml:"heightMeters"`
	Sex                  SexSelection  `yaml:"sex"`
	SexProportion        float64       `yaml:"sexProportion"`
	ManualBodyFat        float64       `yaml:"manualBodyFat"`
}

// Default returns the plan given to new users: imperial units, a 14 day
// cycle, a target of losing one pound a week, and the automatic body-fat
// estimate for a 25 year old of average height.
func Default() Profile {
	return Profile{
		Units:                units.Imperial,
		CycleDays:            14,
		TargetRateKgPerDay:   -units.KgPerLb / 7,
		AlwaysShowAdjustment: true,
		BodyFatMethod:        BodyFatAutomatic,
		AgeYears:             25,
		HeightMeters:         units.Inches.ToMeters(65),
		Sex:                  SexUnset,
		SexProportion:        0.5,
		ManualBodyFat:        0.25,
	}
}

// SexProportionValue resolves the blend weight used by the CUN-BAE
// regression: 1 for male, 0 for female, the slider value for other, and
// an even 0.5 when nothing was chosen.
func (p Profile) SexProportionValue() float64 {
	switch p.Sex {
	case SexMale:
		return 1
	case SexFemale:
		return 0
	case SexOther:
		return p.SexProportion
	}
	return 0.5
}

// WeightUnit is the display unit implied by the unit system.
func (p Profile) WeightUnit() units.Weight {
	return p.Units.WeightUnit()
}

// Validate ensures the profile is safe to compute with.
func (p Profile) Validate() error {
	if !p.Units.Valid() {
		return fmt.Errorf("unknown unit system %q", p.Units)
	}
	if p.CycleDays <= 0 {
		return errors.New("cycleDays must be positive")
	}
	if p.BodyFatMethod != BodyFatAutomatic && p.BodyFatMethod != BodyFatManual {
		return fmt.Errorf("unknown body fat method %q", p.BodyFatMethod)
	}
	if p.AgeYears <= 0 {
		return errors.New("ageYears must be positive")
	}
	if p.HeightMeters <= 0 {
		return errors.New("heightMeters must be positive")
	}
	if p.SexProportion < 0 || p.SexProportion > 1 {
		return errors.New("sexProportion must lie in [0, 1]")
	}
	if p.BodyFatMethod == BodyFatManual && (p.ManualBodyFat <= 0 || p.ManualBodyFat >= 1) {
		return errors.New("manualBodyFat must lie in (0, 1)")
	}
	return nil
}

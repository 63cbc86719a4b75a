package energy

import (
	"fmt"
	"math"
	"time"

	"github.com/yanqian/weight-advisor/internal/domain/profile"
	"github.com/yanqian/weight-advisor/pkg/metrics"
	"github.com/yanqian/weight-advisor/pkg/units"
	"github.com/yanqian/weight-advisor/pkg/util"
)

// Series is the read-only view of the weight log the model consumes.
// *series.Store satisfies it.
type Series interface {
	DayNumbers() []int
	Weights() []float64
	StartDate() time.Time
	EndDate() time.Time
	Unit() units.Weight
}

// Model binds one series snapshot to one profile and derives the trend
// fit and the calorie adjustment, each computed once and cached for the
// life of the instance. It never mutates the series; when the data or
// the profile changes the host constructs a fresh Model.
type Model struct {
	data Series
	prof profile.Profile

	knots       []int
	knotsReady  bool
	interp      *Interpolation
	interpErr   error
	interpReady bool
	adjustment  int
	adjErr      error
	adjReady    bool
}

// NewModel binds a series snapshot and a profile.
func NewModel(data Series, prof profile.Profile) *Model {
	return &Model{data: data, prof: prof}
}

// Knots returns the day-numbers at which the trend may bend: one every
// cycle days of recorded history. Aligning bends to review cycles lets
// the fit track deliberate plan changes while staying far more
// constrained than a fit through every point.
func (m *Model) Knots() []int {
	if !m.knotsReady {
		cycle := m.prof.CycleDays
		historyDays := util.DaysBetween(m.data.StartDate(), m.data.EndDate())
		n := historyDays / cycle
		knots := make([]int, 0, n)
		for i := 1; i <= n; i++ {
			knots = append(knots, i*cycle)
		}
		m.knots = knots
		m.knotsReady = true
	}
	return m.knots
}

// Interpolation returns the least-squares piecewise-linear trend, or
// ErrNotEnoughData when fewer than two weights exist (or the history is
// too sparse to pin every segment down).
func (m *Model) Interpolation() (*Interpolation, error) {
	if !m.interpReady {
		m.interp, m.interpErr = m.fit()
		m.interpReady = true
	}
	return m.interp, m.interpErr
}

func (m *Model) fit() (*Interpolation, error) {
	dayNumbers := m.data.DayNumbers()
	if len(dayNumbers) < 2 {
		return nil, ErrNotEnoughData
	}
	xs := make([]float64, len(dayNumbers))
	for i, d := range dayNumbers {
		xs[i] = float64(d)
	}
	knots := m.Knots()
	ks := make([]float64, len(knots))
	for i, k := range knots {
		ks[i] = float64(k)
	}
	sp, err := fitPiecewiseLinear(xs, m.data.Weights(), ks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotEnoughData, err)
	}
	return sp, nil
}

// Adjustment is the recommended daily intake change in kcal: positive
// to eat more, negative to eat less. ErrNotEnoughData when no trend
// exists yet.
func (m *Model) Adjustment() (int, error) {
	if !m.adjReady {
		m.adjustment, m.adjErr = m.computeAdjustment()
		m.adjReady = true
	}
	return m.adjustment, m.adjErr
}

func (m *Model) computeAdjustment() (int, error) {
	interp, err := m.Interpolation()
	if err != nil {
		return 0, err
	}

	dayNumbers := m.data.DayNumbers()
	today := dayNumbers[len(dayNumbers)-1]
	firstDay := dayNumbers[0]
	lastCycle := firstDay
	if knots := m.Knots(); len(knots) > 0 {
		lastCycle = knots[len(knots)-1]
	}
	daysInCycle := today - lastCycle
	if daysInCycle < 1 {
		// the very first day of history carries no trend
		return 0, ErrNotEnoughData
	}

	// the physiological equations work in kilograms whatever the
	// display unit
	unit := m.data.Unit()
	todayWeight := unit.ToKg(interp.Evaluate(float64(today)))
	firstDayWeight := unit.ToKg(interp.Evaluate(float64(firstDay)))
	lastCycleWeight := unit.ToKg(interp.Evaluate(float64(lastCycle)))
	targetWeight := lastCycleWeight + m.prof.TargetRateKgPerDay*float64(daysInCycle)

	var fatI float64
	if m.prof.BodyFatMethod == profile.BodyFatAutomatic {
		fatI = InitialBodyFat(firstDayWeight, m.prof.AgeYears, m.prof.HeightMeters, m.prof.SexProportionValue())
	} else {
		fatI = m.prof.ManualBodyFat * firstDayWeight
	}

	actual := DeltaE(firstDayWeight, lastCycleWeight, todayWeight, fatI)
	desired := DeltaE(firstDayWeight, lastCycleWeight, targetWeight, fatI)
	return int(math.Round((desired - actual) / float64(daysInCycle))), nil
}

// TrendWeight evaluates the fitted trend at the given day-number, in
// the display unit.
func (m *Model) TrendWeight(day int) (float64, error) {
	interp, err := m.Interpolation()
	if err != nil {
		return 0, err
	}
	return interp.Evaluate(float64(day)), nil
}

// FitStats summarizes the fit for reporting. RMSE is in the display
// unit and zero when no fit exists.
func (m *Model) FitStats() metrics.FitStats {
	stats := metrics.FitStats{
		Points:   len(m.data.DayNumbers()),
		SpanDays: util.DaysBetween(m.data.StartDate(), m.data.EndDate()),
		Knots:    len(m.Knots()),
	}
	interp, err := m.Interpolation()
	if err != nil {
		return stats
	}
	weights := m.data.Weights()
	var sum float64
	for i, d := range m.data.DayNumbers() {
		r := weights[i] - interp.Evaluate(float64(d))
		sum += r * r
	}
	stats.RMSE = math.Sqrt(sum / float64(len(weights)))
	return stats
}

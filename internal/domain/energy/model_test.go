package energy

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weight-advisor/internal/domain/profile"
	"github.com/yanqian/weight-advisor/internal/domain/series"
	"github.com/yanqian/weight-advisor/pkg/units"
)

func testProfile() profile.Profile {
	p := profile.Default()
	p.Units = units.Metric
	p.CycleDays = 14
	p.TargetRateKgPerDay = -0.1
	p.HeightMeters = 1.5
	return p
}

// storeOf builds a metric store of consecutive days starting 2000/01/01.
func storeOf(t *testing.T, values ...string) *series.Store {
	t.Helper()
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]series.RawRow, 0, len(values))
	for i, v := range values {
		rows = append(rows, series.RawRow{
			Date:  start.AddDate(0, 0, i).Format(series.DateFormat),
			Value: v,
		})
	}
	s, err := series.New(units.Kg, rows)
	require.NoError(t, err)
	return s
}

// flatDays renders n identical weight entries.
func flatDays(n int, w float64) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%g", w)
	}
	return out
}

func TestKnotsAppearEveryCycle(t *testing.T) {
	prof := testProfile()

	// a full cycle of days spans cycle-1 day-distances: no knot yet
	m := NewModel(storeOf(t, flatDays(14, 100)...), prof)
	require.Empty(t, m.Knots())

	// one more day and the first knot lands exactly on the cycle
	m = NewModel(storeOf(t, flatDays(15, 100)...), prof)
	require.Equal(t, []int{14}, m.Knots())

	m = NewModel(storeOf(t, flatDays(31, 100)...), prof)
	require.Equal(t, []int{14, 28}, m.Knots())
}

func TestKnotsSurviveMissingDays(t *testing.T) {
	prof := testProfile()
	values := append(flatDays(6, 100), "", "")
	values = append(values, flatDays(7, 100)...)
	require.Len(t, values, 15)

	m := NewModel(storeOf(t, values...), prof)
	require.Equal(t, []int{14}, m.Knots())
}

func TestInterpolationNeedsTwoPoints(t *testing.T) {
	prof := testProfile()

	_, err := NewModel(storeOf(t, ""), prof).Interpolation()
	require.ErrorIs(t, err, ErrNotEnoughData)

	_, err = NewModel(storeOf(t, "100"), prof).Interpolation()
	require.ErrorIs(t, err, ErrNotEnoughData)

	_, err = NewModel(storeOf(t, "100"), prof).Adjustment()
	require.ErrorIs(t, err, ErrNotEnoughData)
}

func TestInterpolationCoefficients(t *testing.T) {
	prof := testProfile()
	values := flatDays(14, 100)
	w := 100.0
	for i := 0; i < 14; i++ {
		w += prof.TargetRateKgPerDay
		values = append(values, fmt.Sprintf("%g", w))
	}

	m := NewModel(storeOf(t, values...), prof)
	interp, err := m.Interpolation()
	require.NoError(t, err)

	coeffs := interp.Coeffs()
	require.Len(t, coeffs, 3)
	require.InDelta(t, 100, coeffs[0], 1e-9)
	require.InDelta(t, 100, coeffs[1], 1e-9)
	require.InDelta(t, 100+14*prof.TargetRateKgPerDay, coeffs[2], 1e-9)
}

func TestAdjustmentZeroOnPerfectAdherence(t *testing.T) {
	prof := testProfile()
	values := make([]string, 0, 14)
	w := 100.0
	for i := 0; i < 14; i++ {
		w += prof.TargetRateKgPerDay
		values = append(values, fmt.Sprintf("%g", w))
	}

	m := NewModel(storeOf(t, values...), prof)
	adj, err := m.Adjustment()
	require.NoError(t, err)
	require.Equal(t, 0, adj)
}

func TestAdjustmentFlatLineMatchesHandComputation(t *testing.T) {
	prof := testProfile()
	// two full cycles of no change: today is day 28, the last knot day
	// 14, so exactly one cycle separates them
	m := NewModel(storeOf(t, flatDays(28, 100)...), prof)

	adj, err := m.Adjustment()
	require.NoError(t, err)

	fatI := InitialBodyFat(100, prof.AgeYears, prof.HeightMeters, prof.SexProportionValue())
	target := 100 + prof.TargetRateKgPerDay*14
	expected := int(math.Round(DeltaE(100, 100, target, fatI) / 14))
	require.Equal(t, expected, adj)
	require.Negative(t, adj)
}

func TestAdjustmentManualBodyFat(t *testing.T) {
	prof := testProfile()
	prof.BodyFatMethod = profile.BodyFatManual
	prof.ManualBodyFat = 0.25

	m := NewModel(storeOf(t, flatDays(28, 100)...), prof)
	adj, err := m.Adjustment()
	require.NoError(t, err)

	target := 100 + prof.TargetRateKgPerDay*14
	expected := int(math.Round(DeltaE(100, 100, target, 0.25*100) / 14))
	require.Equal(t, expected, adj)
}

func TestAdjustmentIndependentOfDisplayUnit(t *testing.T) {
	metricProf := testProfile()
	imperialProf := metricProf
	imperialProf.Units = units.Imperial

	metricStore := storeOf(t, flatDays(28, 100)...)
	imperialStore := storeOf(t, flatDays(28, 100)...)
	imperialStore.SetUnits(units.Lbs)

	metricAdj, err := NewModel(metricStore, metricProf).Adjustment()
	require.NoError(t, err)
	imperialAdj, err := NewModel(imperialStore, imperialProf).Adjustment()
	require.NoError(t, err)
	require.Equal(t, metricAdj, imperialAdj)
}

func TestAdjustmentIsCached(t *testing.T) {
	m := NewModel(storeOf(t, flatDays(28, 100)...), testProfile())
	first, err := m.Adjustment()
	require.NoError(t, err)
	second, err := m.Adjustment()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestTrendWeightUsesDisplayUnit(t *testing.T) {
	s := storeOf(t, flatDays(10, 100)...)
	s.SetUnits(units.Lbs)

	m := NewModel(s, testProfile())
	trend, err := m.TrendWeight(10)
	require.NoError(t, err)
	require.InDelta(t, 100/units.KgPerLb, trend, 1e-6)
}

func TestFitStats(t *testing.T) {
	m := NewModel(storeOf(t, flatDays(15, 100)...), testProfile())
	stats := m.FitStats()
	require.Equal(t, 15, stats.Points)
	require.Equal(t, 14, stats.SpanDays)
	require.Equal(t, 1, stats.Knots)
	require.InDelta(t, 0, stats.RMSE, 1e-9)

	// no fit: counts still reported, error still soft
	m = NewModel(storeOf(t, "100"), testProfile())
	stats = m.FitStats()
	require.Equal(t, 1, stats.Points)
	require.Zero(t, stats.RMSE)
}

package unit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weight-advisor/internal/domain/advisor"
	"github.com/yanqian/weight-advisor/internal/domain/profile"
	"github.com/yanqian/weight-advisor/internal/domain/series"
	"github.com/yanqian/weight-advisor/internal/infra/profilefile"
	"github.com/yanqian/weight-advisor/internal/infra/seriesfile"
	"github.com/yanqian/weight-advisor/pkg/units"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFileBackedAdviceFlow exercises the full loop a host runs: seed a
// plan and a log on disk, record weights day by day, and read advice
// back out of the recomputed report.
func TestFileBackedAdviceFlow(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "weightlog.csv")
	profilePath := filepath.Join(dir, "profile.yaml")
	ctx := context.Background()

	prof := profile.Default()
	prof.Units = units.Metric
	prof.TargetRateKgPerDay = -0.1
	prof.HeightMeters = 1.7
	profileRepo := profilefile.NewFileRepository(profilePath, newTestLogger())
	require.NoError(t, profileRepo.Save(ctx, prof))

	seriesRepo := seriesfile.NewFileRepository(logPath, newTestLogger())
	svc := advisor.NewService(seriesRepo, profileRepo, newTestLogger())

	// anchor the log in the past so the dates below have slots
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	seed, err := series.New(units.Kg, []series.RawRow{{Date: start.Format(series.DateFormat)}})
	require.NoError(t, err)
	require.NoError(t, seriesRepo.Save(ctx, seed))

	// two weeks of slightly-too-slow loss, one entry per day
	for i := 0; i < 15; i++ {
		day := start.AddDate(0, 0, i)
		value := fmt.Sprintf("%g", 90-0.05*float64(i))
		require.NoError(t, svc.Record(ctx, day, value))
	}

	report, err := svc.Advise(ctx)
	require.NoError(t, err)
	require.True(t, report.Available)
	require.Equal(t, 15, report.Entries)
	require.Equal(t, "2024/03/01", report.StartDate)
	require.Equal(t, "2024/03/15", report.EndDate)
	require.Equal(t, units.Kg, report.Unit)
	require.Equal(t, 1, report.Fit.Knots)

	// losing slower than planned means eating less
	require.NotNil(t, report.Adjustment)
	require.Negative(t, *report.Adjustment)
	require.NotNil(t, report.TrendToday)
	require.InDelta(t, 90-0.05*14, *report.TrendToday, 0.05)

	// the log on disk is canonical metric and round-trips
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "Date,Weight (kg)\n"))
	require.Equal(t, 16, strings.Count(string(data), "\n"))

	// a correction to an old entry persists and changes the advice inputs
	require.NoError(t, svc.Record(ctx, start.AddDate(0, 0, 3), "91.2"))
	reloaded, err := seriesRepo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 91.2, reloaded.Weights()[3])

	again, err := svc.Advise(ctx)
	require.NoError(t, err)
	require.True(t, again.Available)
}

// TestFreshInstallFlow starts with no files at all.
func TestFreshInstallFlow(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	svc := advisor.NewService(
		seriesfile.NewFileRepository(filepath.Join(dir, "weightlog.csv"), newTestLogger()),
		profilefile.NewFileRepository(filepath.Join(dir, "profile.yaml"), newTestLogger()),
		newTestLogger())

	report, err := svc.Advise(ctx)
	require.NoError(t, err)
	require.False(t, report.Available)
	require.Zero(t, report.Entries)
	require.Equal(t, units.Lbs, report.Unit)

	// the first recorded weight lands in today's slot and hits the disk
	today := time.Now().UTC()
	require.NoError(t, svc.Record(ctx, today, "150.2"))

	store, err := seriesfile.NewFileRepository(filepath.Join(dir, "weightlog.csv"), newTestLogger()).Load(ctx)
	require.NoError(t, err)
	require.Len(t, store.Weights(), 1)
	require.InDelta(t, units.Lbs.ToKg(150.2), store.Weights()[0], 1e-9)
}

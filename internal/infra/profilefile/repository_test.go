package profilefile

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/weight-advisor/internal/domain/profile"
	apperrors "github.com/yanqian/weight-advisor/pkg/errors"
	"github.com/yanqian/weight-advisor/pkg/units"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "profile.yaml"), discardLogger())
	p, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, profile.Default(), p)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "profile.yaml"), discardLogger())

	p := profile.Default()
	p.Units = units.Metric
	p.CycleDays = 21
	p.Sex = profile.SexFemale
	p.TargetRateKgPerDay = -0.05

	require.NoError(t, repo.Save(context.Background(), p))
	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, p, loaded)
}

func TestLoadFillsUnsetFieldsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("units: metric\ncycleDays: 7\n"), 0o644))

	p, err := NewFileRepository(path, discardLogger()).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, units.Metric, p.Units)
	require.Equal(t, 7, p.CycleDays)

	// everything the document omits keeps its default
	require.Equal(t, profile.Default().AgeYears, p.AgeYears)
	require.Equal(t, profile.Default().HeightMeters, p.HeightMeters)
}

func TestLoadRejectsInvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cycleDays: -3\n"), 0o644))

	_, err := NewFileRepository(path, discardLogger()).Load(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidConfig))
}

func TestSaveRejectsInvalidProfile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "profile.yaml"), discardLogger())
	p := profile.Default()
	p.AgeYears = 0
	err := repo.Save(context.Background(), p)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidConfig))
}

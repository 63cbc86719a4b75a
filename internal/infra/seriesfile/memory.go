package seriesfile

import (
	"context"

	"github.com/yanqian/weight-advisor/internal/domain/series"
	"github.com/yanqian/weight-advisor/pkg/units"
)

// MemoryRepository is an in-memory implementation of the series
// repository for tests and development.
type MemoryRepository struct {
	unit units.Weight
	rows []series.RawRow

	// Saved holds the rows captured by the last Save call.
	Saved []series.DailyRecord
}

// NewMemoryRepository seeds a repository with raw rows in the given
// declared unit.
func NewMemoryRepository(unit units.Weight, rows []series.RawRow) *MemoryRepository {
	return &MemoryRepository{unit: unit, rows: rows}
}

// Load builds a fresh store from the seeded rows.
func (m *MemoryRepository) Load(_ context.Context) (*series.Store, error) {
	return series.New(m.unit, m.rows)
}

// Save captures the canonical rows instead of writing a file.
func (m *MemoryRepository) Save(_ context.Context, s *series.Store) error {
	m.Saved = s.FileRows()
	return nil
}

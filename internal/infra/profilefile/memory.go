package profilefile

import (
	"context"

	"github.com/yanqian/weight-advisor/internal/domain/profile"
)

// MemoryRepository holds a profile in process memory for tests and
// development.
type MemoryRepository struct {
	current profile.Profile
}

// NewMemoryRepository seeds a repository with the given profile.
func NewMemoryRepository(p profile.Profile) *MemoryRepository {
	return &MemoryRepository{current: p}
}

// Load returns the held profile.
func (m *MemoryRepository) Load(_ context.Context) (profile.Profile, error) {
	return m.current, nil
}

// Save replaces the held profile.
func (m *MemoryRepository) Save(_ context.Context, p profile.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	m.current = p
	return nil
}

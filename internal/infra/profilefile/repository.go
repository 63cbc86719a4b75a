// Package profilefile persists the user's plan as a YAML document.
package profilefile

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/weight-advisor/internal/domain/profile"
	apperrors "github.com/yanqian/weight-advisor/pkg/errors"
)

// FileRepository stores the profile at a fixed path.
type FileRepository struct {
	path   string
	logger *slog.Logger
}

// NewFileRepository builds a repository for the given path.
func NewFileRepository(path string, logger *slog.Logger) *FileRepository {
	return &FileRepository{
		path:   path,
		logger: logger.With("component", "profilefile.repository"),
	}
}

// Load reads the profile, filling unset fields from the defaults. A
// missing file yields the default plan.
func (r *FileRepository) Load(_ context.Context) (profile.Profile, error) {
	p := profile.Default()
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("profile not found, using defaults", "path", r.path)
		return p, nil
	}
	if err != nil {
		return profile.Profile{}, apperrors.Wrap(apperrors.CodeProfileIO, "read profile", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return profile.Profile{}, apperrors.Wrap(apperrors.CodeProfileIO, "parse profile", err)
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, apperrors.Wrap(apperrors.CodeInvalidConfig, "invalid profile", err)
	}
	return p, nil
}

// Save writes the profile atomically, temp-then-rename in the target
// directory.
func (r *FileRepository) Save(_ context.Context, p profile.Profile) error {
	if err := p.Validate(); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidConfig, "invalid profile", err)
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeProfileIO, "encode profile", err)
	}
	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".profile-*.tmp")
	if err != nil {
		return apperrors.Wrap(apperrors.CodeProfileIO, "create temp file", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.Wrap(apperrors.CodeProfileIO, "write profile", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrap(apperrors.CodeProfileIO, "close profile", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return apperrors.Wrap(apperrors.CodeProfileIO, "replace profile", err)
	}
	return nil
}

package seriesfile

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/yanqian/weight-advisor/internal/domain/series"
	apperrors "github.com/yanqian/weight-advisor/pkg/errors"
	"github.com/yanqian/weight-advisor/pkg/units"
	"github.com/yanqian/weight-advisor/pkg/util"
)

// FileRepository stores the weight log at a fixed path.
type FileRepository struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// NewFileRepository builds a repository for the given path.
func NewFileRepository(path string, logger *slog.Logger) *FileRepository {
	return &FileRepository{
		path:   path,
		logger: logger.With("component", "seriesfile.repository"),
		now:    util.NowUTC,
	}
}

// Load reads and parses the log. A missing file is not an error: a new
// log covering just today is returned, ready for its first entry.
func (r *FileRepository) Load(_ context.Context) (*series.Store, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.Info("weight log not found, starting a new one", "path", r.path)
		today := util.Midnight(r.now()).Format(series.DateFormat)
		return series.New(units.Kg, []series.RawRow{{Date: today}})
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeSeriesIO, "read weight log", err)
	}
	unit, rows, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return series.New(unit, rows)
}

// Save writes the canonical form next to the target and renames it into
// place, so a crash mid-write never corrupts the existing log.
func (r *FileRepository) Save(_ context.Context, s *series.Store) error {
	var buf bytes.Buffer
	if err := Encode(&buf, s.FileRows()); err != nil {
		return apperrors.Wrap(apperrors.CodeSeriesIO, "encode weight log", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".weightlog-*.tmp")
	if err != nil {
		return apperrors.Wrap(apperrors.CodeSeriesIO, "create temp file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return apperrors.Wrap(apperrors.CodeSeriesIO, "write weight log", err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrap(apperrors.CodeSeriesIO, "close weight log", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return apperrors.Wrap(apperrors.CodeSeriesIO, "replace weight log", err)
	}
	return nil
}

// Package advisor orchestrates the weight log, the profile and the
// energy model into a single advise operation for the host.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/yanqian/weight-advisor/internal/domain/energy"
	"github.com/yanqian/weight-advisor/internal/domain/profile"
	"github.com/yanqian/weight-advisor/internal/domain/series"
	apperrors "github.com/yanqian/weight-advisor/pkg/errors"
)

// SeriesRepository persists the weight log.
type SeriesRepository interface {
	Load(ctx context.Context) (*series.Store, error)
	Save(ctx context.Context, s *series.Store) error
}

// ProfileRepository persists the user's plan.
type ProfileRepository interface {
	Load(ctx context.Context) (profile.Profile, error)
	Save(ctx context.Context, p profile.Profile) error
}

// Service exposes the host-facing operations.
type Service interface {
	// Advise recomputes the trend and adjustment from current state.
	Advise(ctx context.Context) (Report, error)
	// Record stores one weight entry (blank clears) and persists the
	// log when the value actually changed.
	Record(ctx context.Context, date time.Time, value string) error
}

type service struct {
	series   SeriesRepository
	profiles ProfileRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the advisor domain.
func NewService(seriesRepo SeriesRepository, profileRepo ProfileRepository, logger *slog.Logger) Service {
	return &service{
		series:   seriesRepo,
		profiles: profileRepo,
		logger:   logger.With("component", "advisor.service"),
		now:      time.Now,
	}
}

func (s *service) Advise(ctx context.Context) (Report, error) {
	prof, store, err := s.loadState(ctx)
	if err != nil {
		return Report{}, err
	}

	// data or profile may have changed since the last report, so the
	// model is always rebuilt from scratch
	model := energy.NewModel(store, prof)
	store.ClearPlottableChange()

	report := Report{
		GeneratedAt: s.now(),
		StartDate:   store.StartDate().Format(series.DateFormat),
		EndDate:     store.EndDate().Format(series.DateFormat),
		Entries:     len(store.Dates()),
		Unit:        store.Unit(),
		CycleDays:   prof.CycleDays,
		Fit:         model.FitStats(),
	}

	adjustment, err := model.Adjustment()
	if errors.Is(err, energy.ErrNotEnoughData) {
		s.logger.Info("no trend yet", "entries", report.Entries)
		return report, nil
	}
	if err != nil {
		return Report{}, err
	}

	dayNumbers := store.DayNumbers()
	today := dayNumbers[len(dayNumbers)-1]
	trend, err := model.TrendWeight(today)
	if err != nil {
		return Report{}, err
	}

	report.Available = true
	report.TrendToday = &trend
	report.Adjustment = &adjustment
	report.Advice = adviceText(prof, today, adjustment)
	s.logger.Info("advice computed",
		"adjustment", adjustment, "trend", trend, "unit", store.Unit())
	return report, nil
}

func (s *service) Record(ctx context.Context, date time.Time, value string) error {
	_, store, err := s.loadState(ctx)
	if err != nil {
		return err
	}

	before := len(store.Mutations())
	if err := store.SetValueForDate(date, value); err != nil {
		return err
	}
	if len(store.Mutations()) == before {
		// no-op write, nothing to persist
		return nil
	}
	if err := s.series.Save(ctx, store); err != nil {
		return err
	}
	s.logger.Info("weight recorded",
		"date", date.Format(series.DateFormat), "mutations", len(store.Mutations()))
	return nil
}

// loadState reads profile and series and normalizes the session: the
// profile's display unit is applied and the log is extended through
// today so an entry slot always exists.
func (s *service) loadState(ctx context.Context) (profile.Profile, *series.Store, error) {
	prof, err := s.profiles.Load(ctx)
	if err != nil {
		return profile.Profile{}, nil, err
	}
	if err := prof.Validate(); err != nil {
		return profile.Profile{}, nil, apperrors.Wrap(apperrors.CodeInvalidConfig, "invalid profile", err)
	}
	store, err := s.series.Load(ctx)
	if err != nil {
		return profile.Profile{}, nil, err
	}
	store.SetUnits(prof.WeightUnit())
	store.ExtendToToday(s.now())
	return prof, store, nil
}

// adviceText mirrors the instruction cadence of the plot caption: plain
// direction on cycle-boundary days, a countdown otherwise.
func adviceText(prof profile.Profile, today, adjustment int) string {
	if today%prof.CycleDays == 0 {
		if adjustment == 0 {
			return "Stay the course."
		}
		direction := "increasing"
		if adjustment < 0 {
			direction = "decreasing"
		}
		return fmt.Sprintf("Consider %s intake by %d calories per day.", direction, abs(adjustment))
	}
	daysToGo := prof.CycleDays - today%prof.CycleDays
	plural := "s"
	if daysToGo == 1 {
		plural = ""
	}
	text := fmt.Sprintf("Continue current intake for next %d day%s.", daysToGo, plural)
	if prof.AlwaysShowAdjustment {
		text += fmt.Sprintf(" Adjustment value is %+d.", adjustment)
	}
	return text
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

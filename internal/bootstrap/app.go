package bootstrap

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/yanqian/weight-advisor/internal/domain/advisor"
	"github.com/yanqian/weight-advisor/internal/infra/config"
)

// App is the thin host around the advisor core: one advise run, report
// printed to stdout as JSON. Interactive frontends replace this layer,
// not the core.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	advisor advisor.Service
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, svc advisor.Service) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), advisor: svc}
}

// Run computes one report and writes it to stdout.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("advising", "data", a.cfg.Data.Path, "profile", a.cfg.Profile.Path)

	report, err := a.advisor.Advise(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

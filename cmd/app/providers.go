package main

import (
	"log/slog"

	"github.com/yanqian/weight-advisor/internal/infra/config"
	"github.com/yanqian/weight-advisor/internal/infra/profilefile"
	"github.com/yanqian/weight-advisor/internal/infra/seriesfile"
)

func provideSeriesRepository(cfg *config.Config, logger *slog.Logger) *seriesfile.FileRepository {
	return seriesfile.NewFileRepository(cfg.Data.Path, logger)
}

func provideProfileRepository(cfg *config.Config, logger *slog.Logger) *profilefile.FileRepository {
	return profilefile.NewFileRepository(cfg.Profile.Path, logger)
}

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/weight-advisor/internal/bootstrap"
	"github.com/yanqian/weight-advisor/internal/domain/advisor"
	"github.com/yanqian/weight-advisor/internal/infra/config"
	"github.com/yanqian/weight-advisor/internal/infra/profilefile"
	"github.com/yanqian/weight-advisor/internal/infra/seriesfile"
	"github.com/yanqian/weight-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSeriesRepository,
		provideProfileRepository,
		advisor.NewService,
		wire.Bind(new(advisor.SeriesRepository), new(*seriesfile.FileRepository)),
		wire.Bind(new(advisor.ProfileRepository), new(*profilefile.FileRepository)),
		bootstrap.NewApp,
	)
	return nil, nil
}

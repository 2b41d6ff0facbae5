//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/allermind/verdict/internal/bootstrap"
	"github.com/allermind/verdict/internal/domain/classification"
	"github.com/allermind/verdict/internal/domain/verdict"
	"github.com/allermind/verdict/internal/infra/config"
	"github.com/allermind/verdict/internal/infra/pollen"
	"github.com/allermind/verdict/internal/infra/predictor"
	"github.com/allermind/verdict/internal/infra/weather"
	httpiface "github.com/allermind/verdict/internal/interface/http"
	"github.com/allermind/verdict/internal/observability"
	"github.com/allermind/verdict/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		observability.NewMetrics,
		provideClassificationConfig,
		provideVerdictConfig,
		providePollenClient,
		provideWeatherClient,
		providePredictorClient,
		provideClassificationRepository,
		provideClassificationStore,
		classification.NewService,
		verdict.NewService,
		wire.Bind(new(verdict.ClassificationProvider), new(classification.Service)),
		wire.Bind(new(verdict.PollenProvider), new(*pollen.Client)),
		wire.Bind(new(verdict.WeatherProvider), new(*weather.Client)),
		wire.Bind(new(verdict.Predictor), new(*predictor.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

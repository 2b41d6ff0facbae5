package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/allermind/verdict/internal/domain/classification"
	"github.com/allermind/verdict/internal/domain/verdict"
	"github.com/allermind/verdict/internal/infra/classifrepo"
	"github.com/allermind/verdict/internal/infra/classifstore"
	"github.com/allermind/verdict/internal/infra/config"
	"github.com/allermind/verdict/internal/infra/pollen"
	"github.com/allermind/verdict/internal/infra/predictor"
	"github.com/allermind/verdict/internal/infra/weather"
)

func provideClassificationConfig(cfg *config.Config) classification.Config {
	return classification.Config{
		CacheTTL: cfg.Classification.CacheTTL,
	}
}

func provideVerdictConfig(cfg *config.Config) verdict.Config {
	return verdict.Config{
		UpstreamTimeout: cfg.Providers.UpstreamTimeout,
	}
}

func providePollenClient(cfg *config.Config) *pollen.Client {
	return pollen.NewClient(cfg.Providers.PollenBaseURL)
}

func provideWeatherClient(cfg *config.Config) *weather.Client {
	return weather.NewClient(cfg.Providers.WeatherBaseURL)
}

func providePredictorClient(cfg *config.Config) *predictor.Client {
	return predictor.NewClient(cfg.Providers.PredictorBaseURL)
}

func provideClassificationRepository(cfg *config.Config, logger *slog.Logger) classification.Repository {
	fallback := classifrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Classification.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Classification.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Classification.Postgres.MaxConns
	}
	if cfg.Classification.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Classification.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres profile repository enabled")
	return classifrepo.NewPostgresRepository(pool)
}

func provideClassificationStore(cfg *config.Config, logger *slog.Logger) classification.Store {
	if cfg.Classification.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return classifstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return classifstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("valkey classification store enabled", "addr", cfg.Classification.Valkey.Addr)
			return classifstore.NewValkeyStore(client, "classification")
		}
	}
	return classifstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Classification.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Classification.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Classification.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

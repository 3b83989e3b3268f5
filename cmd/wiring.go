package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skylark-hq/skylark/internal/catalog"
	"github.com/skylark-hq/skylark/internal/engine"
	"github.com/skylark-hq/skylark/internal/events"
	"github.com/skylark-hq/skylark/internal/models"
	"github.com/skylark-hq/skylark/internal/repositories"
	"github.com/skylark-hq/skylark/internal/repositories/localstore"
	"github.com/skylark-hq/skylark/internal/repositories/postgres"
	"go.uber.org/zap"
)

func newLogger(env string) (*zap.SugaredLogger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.Sugar(), nil
}

func newOrderRepository(ctx context.Context, cfg *models.Config) (repositories.OrderRepository, func(), error) {
	if cfg.PostgresEnabled {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return postgres.NewOrderRepository(pool), pool.Close, nil
	}
	return localstore.New(cfg.DataDir), func() {}, nil
}

// buildEngine assembles a fully wired engine: seed catalog, order storage
// and the configured event sink. The returned cleanup closes everything in
// reverse order.
func buildEngine(ctx context.Context, cfg *models.Config, logger *zap.SugaredLogger) (*engine.Engine, func(), error) {
	eng := engine.New(catalog.Menu(), catalog.Ingredients(), catalog.Recipes(), logger)

	repo, closeRepo, err := newOrderRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := eng.AttachRepository(ctx, repo); err != nil {
		closeRepo()
		return nil, nil, err
	}

	var sink events.Sink
	if cfg.KafkaEnabled {
		sink, err = events.NewKafkaSink(cfg.KafkaBrokerList, logger)
		if err != nil {
			closeRepo()
			return nil, nil, err
		}
	} else {
		sink = events.NewJSONSink(filepath.Join(cfg.DataDir, "events"))
	}
	eng.AttachSink(sink, cfg.EventTopic)

	cleanup := func() {
		if err := sink.Close(); err != nil {
			logger.Errorw("failed to close event sink", "error", err)
		}
		closeRepo()
	}
	return eng, cleanup, nil
}

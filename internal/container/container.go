package container

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/FACorreiaa/tailcircle-api/app/db"
	"github.com/FACorreiaa/tailcircle-api/config"
	"github.com/FACorreiaa/tailcircle-api/internal/api/entitlements"
	"github.com/FACorreiaa/tailcircle-api/internal/api/feed"
	"github.com/FACorreiaa/tailcircle-api/internal/demo"
)

// Container holds all application dependencies
type Container struct {
	Config              *config.Config
	Logger              *slog.Logger
	Pool                *pgxpool.Pool
	FeedHandler         *feed.HandlerImpl
	EntitlementsHandler *entitlements.HandlerImpl
}

// NewContainer opens the database pool and wires every handler on top of it.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		return nil, err
	}

	pool, err := database.Init(ctx, dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		return nil, err
	}

	c := NewWithRepository(cfg, feed.NewPostgresRepository(pool, logger), logger)
	c.Pool = pool
	return c, nil
}

// NewWithRepository wires the handlers over an arbitrary feed repository.
func NewWithRepository(cfg *config.Config, feedRepo feed.Repository, logger *slog.Logger) *Container {
	feedService := feed.NewServiceImpl(feedRepo, demo.NewGenerator(demo.DefaultCatalog(), nil), cfg.Feed, logger)
	feedHandler := feed.NewHandlerImpl(feedService, logger)

	entitlementsService := entitlements.NewServiceImpl(cfg.Entitlements, logger)
	entitlementsHandler := entitlements.NewHandlerImpl(entitlementsService, logger)

	return &Container{
		Config:              cfg,
		Logger:              logger,
		FeedHandler:         feedHandler,
		EntitlementsHandler: entitlementsHandler,
	}
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
	}
}

// WaitForDB waits for the database to be ready
func (c *Container) WaitForDB(ctx context.Context) bool {
	return database.WaitForDB(ctx, c.Pool, c.Logger)
}

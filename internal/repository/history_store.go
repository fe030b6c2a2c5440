package repository

import (
	"context"
	"fmt"
	"log/slog"

	"studybot/internal/config"
	"studybot/internal/domain"
	llmRepo "studybot/internal/domain/repositories/llm"
	"studybot/internal/repository/mongodb"
	"studybot/internal/repository/postgres"
	postgresLLM "studybot/internal/repository/postgres/llm"
	redisRepo "studybot/internal/repository/redis"
	"studybot/internal/repository/sqlite"
)

// Supported HISTORY_STORE values
const (
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
	StoreRedis    = "redis"
)

// OpenHistoryStore connects the backend selected by cfg.HistoryStore.
// The returned store is shared by every request; the caller must Close it.
func OpenHistoryStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (llmRepo.HistoryStore, error) {
	switch cfg.HistoryStore {
	case StoreMongo:
		if cfg.MongoDBURL == "" {
			return nil, fmt.Errorf("MONGODB_URL environment variable not set")
		}
		store, err := mongodb.NewTurnRepository(ctx, &mongodb.RepositoryConfig{
			URL:        cfg.MongoDBURL,
			Database:   cfg.MongoDBDatabase,
			Collection: cfg.MongoDBCollection,
			Logger:     logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("history store connected",
			"backend", StoreMongo,
			"database", cfg.MongoDBDatabase,
			"collection", cfg.MongoDBCollection,
		)
		return store, nil

	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable not set")
		}
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		tables := postgres.NewTableNames(cfg.TablePrefix)
		if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
			pool.Close()
			return nil, err
		}
		logger.Info("history store connected",
			"backend", StorePostgres,
			"table", tables.ChatTurns,
		)
		return postgresLLM.NewTurnRepository(&postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		}), nil

	case StoreSQLite:
		store, err := sqlite.NewTurnRepository(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("history store connected",
			"backend", StoreSQLite,
			"path", cfg.SQLitePath,
		)
		return store, nil

	case StoreRedis:
		if cfg.RedisURL == "" {
			return nil, fmt.Errorf("REDIS_URL environment variable not set")
		}
		store, err := redisRepo.NewTurnRepository(ctx, cfg.RedisURL, cfg.TablePrefix, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("history store connected",
			"backend", StoreRedis,
			"key_prefix", cfg.TablePrefix,
		)
		return store, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedStore, cfg.HistoryStore)
	}
}

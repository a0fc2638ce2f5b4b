package database

import (
	"context"
	"fmt"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/repository"
)

// OpenStore connects to the backend named by DB_TYPE, prepares its schema and
// returns the repositories together with a function that releases the connection.
func OpenStore(ctx context.Context, cfg *config.Config, log *logging.Logger) (*repository.Store, func(context.Context) error, error) {
	return openStore(ctx, cfg, log, true)
}

// ConnectStore is OpenStore without the schema step, for probes and tooling that must not migrate
func ConnectStore(ctx context.Context, cfg *config.Config, log *logging.Logger) (*repository.Store, func(context.Context) error, error) {
	return openStore(ctx, cfg, log, false)
}

func openStore(ctx context.Context, cfg *config.Config, log *logging.Logger, prepare bool) (*repository.Store, func(context.Context) error, error) {
	if cfg.IsMongo() {
		db, err := ConnectMongo(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		if prepare {
			if err := EnsureIndexes(ctx, db); err != nil {
				_ = Disconnect(ctx, db)
				return nil, nil, err
			}
		}
		return repository.NewMongoStore(db), func(ctx context.Context) error {
			return Disconnect(ctx, db)
		}, nil
	}

	db, err := Connect(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if prepare {
		if err := AutoMigrate(db); err != nil {
			_ = Close(db)
			return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return repository.NewGormStore(db), func(context.Context) error {
		return Close(db)
	}, nil
}

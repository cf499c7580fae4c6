package config

import (
	"context"
	"fmt"

	"todo-tracker.com/todo-tracker/internal/snapshot"
)

// OpenSnapshotStore connects the backend named by cfg.SnapshotDriver. The
// returned close function releases its connections.
func OpenSnapshotStore(ctx context.Context, cfg Config) (snapshot.Store, func(), error) {
	switch cfg.SnapshotDriver {
	case snapshot.DriverMemory:
		return snapshot.NewMemoryStore(), func() {}, nil

	case snapshot.DriverSQLite:
		db, err := NewDatabaseClient(cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return snapshot.NewSQLiteStore(db), closeFn, nil

	case snapshot.DriverRedis:
		client, err := NewRedisClient(cfg.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		return snapshot.NewRedisStore(client, cfg.RedisKeyPrefix), client.Close, nil

	case snapshot.DriverPostgres:
		pool, err := NewPostgresPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		store := snapshot.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown snapshot driver %q", cfg.SnapshotDriver)
}

package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	dbadapter "taskdesk/internal/adapter/db"
	firestoreadapter "taskdesk/internal/adapter/firestore"
	"taskdesk/internal/adapter/kv"
	"taskdesk/internal/config"
	"taskdesk/internal/core/ports"
)

// OpenStore builds the key-value backend named by cfg.StorageDriver. The
// returned close function releases any connection the backend holds.
func OpenStore(ctx context.Context, cfg *config.Config) (ports.KeyValueStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.StorageMemory:
		return kv.NewMemoryStore(), noop, nil

	case config.StorageFile:
		store, err := kv.NewFileStore(cfg.StorageFile)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil

	case config.StorageMySQL, config.StoragePostgres:
		db, err := dbadapter.ConnectDB(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to %s: %w", cfg.StorageDriver, err)
		}
		store := dbadapter.NewKVStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("prepare kv_entries table: %w", err)
		}
		return store, db.Close, nil

	case config.StorageFirestore:
		client, err := firestoreadapter.Connect(ctx, cfg.FirestoreProjectID, cfg.FirestoreCredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		store, err := firestoreadapter.NewKVStore(client, cfg.FirestoreCollection)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, client.Close, nil
	}

	zap.L().Error("unknown storage driver", zap.String("driver", cfg.StorageDriver))
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

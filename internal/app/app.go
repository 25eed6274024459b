// Package app assembles the application context: storage, repositories,
// services and the session issuer, built once at startup and handed to the
// HTTP layer.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskdesk/internal/adapter/storage"
	"taskdesk/internal/app/service"
	"taskdesk/internal/app/session"
	"taskdesk/internal/config"
	"taskdesk/internal/core/ports"
)

type App struct {
	Storage     *storage.Manager
	Tasks       *storage.TaskRepository
	Users       *storage.UserRepository
	TaskService *service.TaskService
	UserService *service.UserService
	DataService *service.DataService
	Sessions    *session.Issuer
}

// New wires the application on top of store. It fails when the store does
// not accept a write and read-back.
func New(ctx context.Context, cfg *config.Config, store ports.KeyValueStore) (*App, error) {
	manager, err := storage.NewManager(store, cfg.StorageNamespace, cfg.SchemaVersion)
	if err != nil {
		return nil, err
	}
	if err := manager.CheckAvailability(ctx); err != nil {
		return nil, err
	}

	sessions, err := session.NewIssuer(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	tasks := storage.NewTaskRepository(manager)
	users := storage.NewUserRepository(manager)

	a := &App{
		Storage:     manager,
		Tasks:       tasks,
		Users:       users,
		TaskService: service.NewTaskService(tasks, users),
		UserService: service.NewUserService(users),
		DataService: service.NewDataService(manager),
		Sessions:    sessions,
	}

	if cfg.SeedDemoUsers {
		if _, err := a.UserService.SeedDemoUsers(ctx); err != nil {
			return nil, fmt.Errorf("seed demo users: %w", err)
		}
	}

	zap.L().Info("application initialized",
		zap.String("namespace", manager.Namespace()),
		zap.String("schema_version", manager.Version()),
	)
	return a, nil
}

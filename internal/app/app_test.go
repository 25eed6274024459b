package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"taskdesk/internal/config"
	"taskdesk/internal/core/domain"

	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("unavailable")
}

func (brokenStore) Set(context.Context, string, []byte) error { return errors.New("quota exceeded") }

func (brokenStore) Delete(context.Context, string) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		StorageDriver:    config.StorageMemory,
		StorageNamespace: "taskAppDay2",
		SchemaVersion:    "2.0",
		SeedDemoUsers:    true,
		SessionSecret:    "secret",
		SessionTTL:       time.Hour,
	}
}

func TestNew_SeedsDemoUsers(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()

	store, closeStore, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, closeStore()) }()

	a, err := New(ctx, cfg, store)
	require.NoError(t, err)

	users, err := a.UserService.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	again, err := New(ctx, cfg, store)
	require.NoError(t, err)
	users, err = again.UserService.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
}

func TestNew_WithoutSeeding(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.SeedDemoUsers = false

	store, _, err := OpenStore(ctx, cfg)
	require.NoError(t, err)

	a, err := New(ctx, cfg, store)
	require.NoError(t, err)

	users, err := a.UserService.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)
}

func TestNew_FailsWhenStorageUnavailable(t *testing.T) {
	_, err := New(context.Background(), testConfig(), brokenStore{})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestOpenStore_File(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	cfg.StorageDriver = config.StorageFile
	cfg.StorageFile = filepath.Join(t.TempDir(), "taskdesk.json")

	store, closeStore, err := OpenStore(ctx, cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, closeStore()) }()

	_, err = New(ctx, cfg, store)
	require.NoError(t, err)
	require.FileExists(t, cfg.StorageFile)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.StorageDriver = "localstorage"

	_, _, err := OpenStore(context.Background(), cfg)
	require.Error(t, err)
}

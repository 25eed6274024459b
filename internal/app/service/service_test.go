package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"taskdesk/internal/adapter/kv"
	"taskdesk/internal/adapter/storage"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	tasks *TaskService
	users *UserService
	data  *DataService
	clock *fakeClock
	demo  domain.User
	john  domain.User
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithStore(t, kv.NewMemoryStore())
}

func newFixtureWithStore(t *testing.T, store ports.KeyValueStore) *fixture {
	t.Helper()

	manager, err := storage.NewManager(store, "taskAppDay2", "2.0")
	require.NoError(t, err)
	taskRepo := storage.NewTaskRepository(manager)
	userRepo := storage.NewUserRepository(manager)

	clock := &fakeClock{now: time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)}

	users := NewUserService(userRepo)
	users.now = clock.Now
	users.newID = sequentialIDs("user")

	tasks := NewTaskService(taskRepo, userRepo)
	tasks.now = clock.Now
	tasks.newID = sequentialIDs("task")

	created, err := users.SeedDemoUsers(context.Background())
	require.NoError(t, err)
	require.True(t, created)

	demo, err := users.Login(context.Background(), "demo")
	require.NoError(t, err)
	john, err := users.Login(context.Background(), "john")
	require.NoError(t, err)

	return &fixture{
		tasks: tasks,
		users: users,
		data:  NewDataService(manager),
		clock: clock,
		demo:  demo,
		john:  john,
	}
}

func strPtr(s string) *string { return &s }

package tests

import (
	"context"
	"time"

	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

var (
	createdAt = time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	updatedAt = time.Date(2026, 2, 13, 11, 20, 30, 0, time.UTC)

	demoUser = domain.User{ID: "u-demo", Username: "demo", FullName: strPtr("Demo User"), CreatedAt: createdAt}
	johnUser = domain.User{ID: "u-john", Username: "john", CreatedAt: createdAt}
)

func strPtr(value string) *string {
	return &value
}

// newRouter builds a router that behaves as if demoUser holds a valid session.
func newRouter() *gin.Engine {
	router := gin.New()
	router.Use(middleware.LanguageMiddleware(), func(c *gin.Context) {
		middleware.SetCurrentUser(c, demoUser)
		c.Next()
	})
	return router
}

type taskServiceMock struct {
	mock.Mock
}

func tasksResult(args mock.Arguments) ([]domain.Task, error) {
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	return tasksResult(m.Called(ctx, userID, filter))
}

func (m *taskServiceMock) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ToggleTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, userID, taskID string) error {
	return m.Called(ctx, userID, taskID).Error(0)
}

func (m *taskServiceMock) CategoryStats(ctx context.Context, userID string) (domain.CategoryStats, error) {
	args := m.Called(ctx, userID)
	var stats domain.CategoryStats
	if value := args.Get(0); value != nil {
		stats = value.(domain.CategoryStats)
	}
	return stats, args.Error(1)
}

func (m *taskServiceMock) Stats(ctx context.Context, userID string) (domain.TaskStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.TaskStats), args.Error(1)
}

func (m *taskServiceMock) OverdueTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return tasksResult(m.Called(ctx, userID))
}

func (m *taskServiceMock) DueSoonTasks(ctx context.Context, userID string, days int) ([]domain.Task, error) {
	return tasksResult(m.Called(ctx, userID, days))
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) Register(ctx context.Context, input domain.RegisterUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) Login(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) SeedDemoUsers(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

type dataServiceMock struct {
	mock.Mock
}

func (m *dataServiceMock) ExportData(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	var document []byte
	if value := args.Get(0); value != nil {
		document = value.([]byte)
	}
	return document, args.Error(1)
}

func (m *dataServiceMock) ImportData(ctx context.Context, document []byte) error {
	return m.Called(ctx, document).Error(0)
}

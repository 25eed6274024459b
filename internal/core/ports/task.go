package ports

import (
	"context"

	"taskdesk/internal/core/domain"
)

type TaskRepository interface {
	ListAll(ctx context.Context) ([]domain.Task, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Get(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, task domain.Task) error
	// Modify runs fn on the stored task and saves the result atomically.
	Modify(ctx context.Context, id string, fn func(task *domain.Task) error) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, userID, taskID string) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
	CategoryStats(ctx context.Context, userID string) (domain.CategoryStats, error)
	Stats(ctx context.Context, userID string) (domain.TaskStats, error)
	OverdueTasks(ctx context.Context, userID string) ([]domain.Task, error)
	DueSoonTasks(ctx context.Context, userID string, days int) ([]domain.Task, error)
}

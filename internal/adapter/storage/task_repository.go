package storage

import (
	"context"
	"fmt"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
)

type TaskRepository struct {
	manager *Manager
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(manager *Manager) *TaskRepository {
	return &TaskRepository{manager: manager}
}

// ListAll returns every stored task in insertion order.
func (r *TaskRepository) ListAll(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRecord
	if err := r.manager.read(ctx, tasksKey, &rows); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRecordToDomainTask(row))
	}
	return tasks, nil
}

// ListByUser returns the tasks the user owns or is assigned to.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(all))
	for _, task := range all {
		if task.VisibleTo(userID) {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (r *TaskRepository) Get(ctx context.Context, id string) (domain.Task, error) {
	var rows []taskRecord
	if err := r.manager.read(ctx, tasksKey, &rows); err != nil {
		return domain.Task{}, err
	}
	for _, row := range rows {
		if row.ID == id {
			return mapTaskRecordToDomainTask(row), nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	var rows []taskRecord
	return r.manager.mutate(ctx, tasksKey, &rows, func() error {
		for _, row := range rows {
			if row.ID == task.ID {
				return fmt.Errorf("task %q already exists", task.ID)
			}
		}
		rows = append(rows, toTaskRecord(task))
		return nil
	})
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	var rows []taskRecord
	return r.manager.mutate(ctx, tasksKey, &rows, func() error {
		for i, row := range rows {
			if row.ID == task.ID {
				rows[i] = toTaskRecord(task)
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	var rows []taskRecord
	return r.manager.mutate(ctx, tasksKey, &rows, func() error {
		for i, row := range rows {
			if row.ID == id {
				rows = append(rows[:i], rows[i+1:]...)
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

// Modify loads the task, applies fn and saves the result under a single
// manager lock. Nothing is written when fn fails.
func (r *TaskRepository) Modify(ctx context.Context, id string, fn func(task *domain.Task) error) (domain.Task, error) {
	var (
		rows    []taskRecord
		updated domain.Task
	)
	err := r.manager.mutate(ctx, tasksKey, &rows, func() error {
		for i, row := range rows {
			if row.ID != id {
				continue
			}
			task := mapTaskRecordToDomainTask(row)
			if err := fn(&task); err != nil {
				return err
			}
			task.ID = id
			rows[i] = toTaskRecord(task)
			updated = task
			return nil
		}
		return domain.ErrTaskNotFound
	})
	if err != nil {
		return domain.Task{}, err
	}
	return updated, nil
}

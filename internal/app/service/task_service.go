package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/internal/core/taskquery"
)

// AssigneeSelf assigns a task to the user creating it.
const AssigneeSelf = "self"

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
	now            func() time.Time
	newID          func() string
}

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		userRepository: userRepository,
		now:            time.Now,
		newID:          uuid.NewString,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return taskquery.Apply(tasks, filter), nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return domain.Task{}, err
	}

	priority := domain.PriorityMedium
	if input.Priority != "" {
		priority = input.Priority
	}
	if !priority.Valid() {
		return domain.Task{}, domain.NewValidationError("priority", "must be one of low, medium, high")
	}

	category := domain.CategoryOther
	if input.Category != "" {
		category = input.Category
	}
	if !category.Valid() {
		return domain.Task{}, domain.NewValidationError("category", "unknown category")
	}

	assigneeID, err := s.resolveAssignee(ctx, userID, input.AssigneeID)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.now().UTC()
	task := domain.Task{
		ID:          s.newID(),
		Title:       title,
		Description: normalizeOptional(input.Description),
		Priority:    priority,
		Category:    category,
		DueDate:     input.DueDate,
		OwnerID:     userID,
		AssigneeID:  assigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := s.taskRepository.Get(ctx, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	if !task.VisibleTo(userID) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.IsEmpty() {
		return domain.Task{}, domain.NewValidationError("payload", "no fields to update")
	}

	var title string
	if input.Title != nil {
		normalized, err := normalizeTitle(*input.Title)
		if err != nil {
			return domain.Task{}, err
		}
		title = normalized
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return domain.Task{}, domain.NewValidationError("priority", "must be one of low, medium, high")
	}
	if input.Category != nil && !input.Category.Valid() {
		return domain.Task{}, domain.NewValidationError("category", "unknown category")
	}

	// The owner never changes, so the assignee is resolved before taking
	// the storage lock.
	var assigneeID *string
	if input.AssigneeIDSet {
		current, err := s.GetTask(ctx, userID, taskID)
		if err != nil {
			return domain.Task{}, err
		}
		assigneeID, err = s.resolveAssignee(ctx, current.OwnerID, input.AssigneeID)
		if err != nil {
			return domain.Task{}, err
		}
	}

	now := s.now().UTC()
	return s.taskRepository.Modify(ctx, taskID, func(task *domain.Task) error {
		if !task.VisibleTo(userID) {
			return domain.ErrTaskNotFound
		}
		if input.Title != nil {
			task.Title = title
		}
		if input.DescriptionSet {
			task.Description = normalizeOptional(input.Description)
		}
		if input.Priority != nil {
			task.Priority = *input.Priority
		}
		if input.Category != nil {
			task.Category = *input.Category
		}
		if input.Completed != nil {
			task.Completed = *input.Completed
		}
		if input.DueDateSet {
			task.DueDate = input.DueDate
		}
		if input.AssigneeIDSet {
			task.AssigneeID = assigneeID
		}
		task.Touch(now)
		return nil
	})
}

func (s *TaskService) ToggleTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	now := s.now().UTC()
	return s.taskRepository.Modify(ctx, taskID, func(task *domain.Task) error {
		if !task.VisibleTo(userID) {
			return domain.ErrTaskNotFound
		}
		task.Completed = !task.Completed
		task.Touch(now)
		return nil
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if _, err := s.GetTask(ctx, userID, taskID); err != nil {
		return err
	}
	return s.taskRepository.Delete(ctx, taskID)
}

func (s *TaskService) CategoryStats(ctx context.Context, userID string) (domain.CategoryStats, error) {
	tasks, err := s.taskRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return taskquery.ByCategory(tasks), nil
}

func (s *TaskService) Stats(ctx context.Context, userID string) (domain.TaskStats, error) {
	tasks, err := s.taskRepository.ListByUser(ctx, userID)
	if err != nil {
		return domain.TaskStats{}, err
	}
	return taskquery.Summarize(tasks, s.now()), nil
}

func (s *TaskService) OverdueTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return taskquery.Overdue(tasks, s.now()), nil
}

func (s *TaskService) DueSoonTasks(ctx context.Context, userID string, days int) ([]domain.Task, error) {
	tasks, err := s.taskRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return taskquery.DueSoon(tasks, s.now(), days), nil
}

// resolveAssignee maps "self", the owner id and blank values to no assignee
// and checks that any other assignee exists.
func (s *TaskService) resolveAssignee(ctx context.Context, ownerID string, assigneeID *string) (*string, error) {
	if assigneeID == nil {
		return nil, nil
	}
	value := strings.TrimSpace(*assigneeID)
	if value == "" || value == AssigneeSelf || value == ownerID {
		return nil, nil
	}

	if _, err := s.userRepository.Get(ctx, value); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.NewValidationError("assigneeId", "unknown user")
		}
		return nil, err
	}
	return &value, nil
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.NewValidationError("title", "required")
	}
	return title, nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

var _ ports.TaskService = (*TaskService)(nil)

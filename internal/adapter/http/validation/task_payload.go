package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

const dueDateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	var priority domain.Priority
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	var category domain.Category
	if req.Category != nil {
		category = domain.Category(*req.Category)
	}

	var dueDate *time.Time
	if req.DueDate != nil {
		parsed, err := ParseDueDate(*req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Category:    category,
		DueDate:     dueDate,
		AssigneeID:  req.AssigneeID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var priority *domain.Priority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.Priority(*req.Priority)
		priority = &value
	}

	var category *domain.Category
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Category != nil {
		value := domain.Category(*req.Category)
		category = &value
	}

	if hasJSONField(raw, "completed") && req.Completed == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var dueDate *time.Time
	dueDateSet := hasJSONField(raw, "due_date")
	if dueDateSet && !isJSONNull(raw["due_date"]) {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := ParseDueDate(*req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsed
	}

	assigneeIDSet := hasJSONField(raw, "assignee_id")
	if assigneeIDSet && !isJSONNull(raw["assignee_id"]) && req.AssigneeID == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Priority:       priority,
		Category:       category,
		Completed:      req.Completed,
		DueDate:        dueDate,
		DueDateSet:     dueDateSet,
		AssigneeID:     req.AssigneeID,
		AssigneeIDSet:  assigneeIDSet,
	}, nil
}

// ParseDueDate reads a calendar date. The task stays due until the last
// second of that day, UTC.
func ParseDueDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dueDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, err
	}
	return parsed.Add(24*time.Hour - time.Second), nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "category") ||
		hasJSONField(raw, "completed") ||
		hasJSONField(raw, "due_date") ||
		hasJSONField(raw, "assignee_id")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

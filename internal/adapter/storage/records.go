package storage

import (
	"time"

	"taskdesk/internal/core/domain"
)

type taskRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	OwnerID     string     `json:"ownerId"`
	AssigneeID  *string    `json:"assigneeId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type userRecord struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email,omitempty"`
	FullName  *string   `json:"fullName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toTaskRecord(task domain.Task) taskRecord {
	return taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		Category:    string(task.Category),
		Completed:   task.Completed,
		DueDate:     task.DueDate,
		OwnerID:     task.OwnerID,
		AssigneeID:  task.AssigneeID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func mapTaskRecordToDomainTask(row taskRecord) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Priority:    domain.Priority(row.Priority),
		Category:    domain.Category(row.Category),
		Completed:   row.Completed,
		DueDate:     row.DueDate,
		OwnerID:     row.OwnerID,
		AssigneeID:  row.AssigneeID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toUserRecord(user domain.User) userRecord {
	return userRecord{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}

func mapUserRecordToDomainUser(row userRecord) domain.User {
	return domain.User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		FullName:  row.FullName,
		CreatedAt: row.CreatedAt,
	}
}

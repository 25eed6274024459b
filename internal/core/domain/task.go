package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the priority levels from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryStudy    Category = "study"
	CategoryHealth   Category = "health"
	CategoryFinance  Category = "finance"
	CategoryShopping Category = "shopping"
	CategoryOther    Category = "other"
)

// Categories is the fixed category enum. Its order is the display order of
// per-category statistics.
var Categories = []Category{
	CategoryWork,
	CategoryPersonal,
	CategoryStudy,
	CategoryHealth,
	CategoryFinance,
	CategoryShopping,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Task struct {
	ID          string
	Title       string
	Description *string
	Priority    Priority
	Category    Category
	Completed   bool
	DueDate     *time.Time
	OwnerID     string
	AssigneeID  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// VisibleTo reports whether the user owns the task or has it assigned.
func (t Task) VisibleTo(userID string) bool {
	if t.OwnerID == userID {
		return true
	}
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// Touch moves UpdatedAt forward to now, never before CreatedAt.
func (t *Task) Touch(now time.Time) {
	if now.Before(t.CreatedAt) {
		now = t.CreatedAt
	}
	t.UpdatedAt = now
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    Priority
	Category    Category
	DueDate     *time.Time
	AssigneeID  *string
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish an
// explicit null (clear the field) from an absent field.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *Priority
	Category       *Category
	Completed      *bool
	DueDate        *time.Time
	DueDateSet     bool
	AssigneeID     *string
	AssigneeIDSet  bool
}

// IsEmpty reports whether the update would change nothing.
func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		!in.DescriptionSet &&
		in.Priority == nil &&
		in.Category == nil &&
		in.Completed == nil &&
		!in.DueDateSet &&
		!in.AssigneeIDSet
}

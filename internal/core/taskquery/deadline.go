package taskquery

import (
	"slices"
	"time"

	"taskdesk/internal/core/domain"
)

// Overdue returns open tasks whose due date is before now, earliest due first.
func Overdue(tasks []domain.Task, now time.Time) []domain.Task {
	return byDueDate(tasks, func(t domain.Task) bool {
		return IsOverdue(t, now)
	})
}

// DueSoon returns open tasks due between now and now+days inclusive,
// earliest due first.
func DueSoon(tasks []domain.Task, now time.Time, days int) []domain.Task {
	if days <= 0 {
		return []domain.Task{}
	}
	limit := now.AddDate(0, 0, days)
	return byDueDate(tasks, func(t domain.Task) bool {
		if t.Completed || t.DueDate == nil {
			return false
		}
		return !t.DueDate.Before(now) && !t.DueDate.After(limit)
	})
}

// IsOverdue reports whether an open task is past its due date.
func IsOverdue(t domain.Task, now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

func byDueDate(tasks []domain.Task, keep func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0)
	for _, task := range tasks {
		if keep(task) {
			out = append(out, task)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Task) int {
		return a.DueDate.Compare(*b.DueDate)
	})
	return out
}

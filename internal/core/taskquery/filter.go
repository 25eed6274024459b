// Package taskquery holds the pure transforms the task views are built from:
// filtering and ordering, per-category aggregation and deadline queries.
// No function in this package mutates its input.
package taskquery

import (
	"slices"

	"taskdesk/internal/core/domain"
)

// Apply returns the tasks matching filter, newest first. Tasks created at the
// same instant keep their input order. An unknown filter kind matches
// everything.
func Apply(tasks []domain.Task, filter domain.TaskFilter) []domain.Task {
	match := predicate(filter)

	out := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if match(task) {
			out = append(out, task)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

func predicate(filter domain.TaskFilter) func(domain.Task) bool {
	switch filter.Kind {
	case domain.FilterPending:
		return func(t domain.Task) bool { return !t.Completed }
	case domain.FilterCompleted:
		return func(t domain.Task) bool { return t.Completed }
	case domain.FilterPriority:
		value := domain.Priority(filter.Value)
		return func(t domain.Task) bool { return t.Priority == value }
	case domain.FilterCategory:
		value := domain.Category(filter.Value)
		return func(t domain.Task) bool { return t.Category == value }
	default:
		return func(domain.Task) bool { return true }
	}
}

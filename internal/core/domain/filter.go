package domain

import "strings"

type FilterKind string

const (
	FilterAll       FilterKind = "all"
	FilterPending   FilterKind = "pending"
	FilterCompleted FilterKind = "completed"
	FilterPriority  FilterKind = "priority"
	FilterCategory  FilterKind = "category"
)

// TaskFilter selects which subset of tasks to display.
type TaskFilter struct {
	Kind  FilterKind
	Value string
}

// NewTaskFilter builds a normalized filter from raw query values.
//
// The legacy kinds "high", "medium" and "low" become priority filters.
// Any other unknown kind becomes FilterAll.
func NewTaskFilter(kind, value string) TaskFilter {
	k := FilterKind(strings.ToLower(strings.TrimSpace(kind)))
	value = strings.TrimSpace(value)

	switch k {
	case FilterAll, FilterPending, FilterCompleted:
		return TaskFilter{Kind: k}
	case FilterPriority, FilterCategory:
		return TaskFilter{Kind: k, Value: strings.ToLower(value)}
	}

	if p := Priority(k); p.Valid() {
		return TaskFilter{Kind: FilterPriority, Value: string(p)}
	}
	return TaskFilter{Kind: FilterAll}
}

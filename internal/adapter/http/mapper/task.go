package mapper

import (
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/taskquery"
	"taskdesk/pkg/translator"
)

const dateLayout = "2006-01-02"

var categoryLabels = map[domain.Category]string{
	domain.CategoryWork:     "Work",
	domain.CategoryPersonal: "Personal",
	domain.CategoryStudy:    "Study",
	domain.CategoryHealth:   "Health",
	domain.CategoryFinance:  "Finance",
	domain.CategoryShopping: "Shopping",
	domain.CategoryOther:    "Other",
}

var priorityLabels = map[domain.Priority]string{
	domain.PriorityLow:    "Low",
	domain.PriorityMedium: "Medium",
	domain.PriorityHigh:   "High",
}

// CategoryLabel returns the display name of c, or c itself when unknown.
func CategoryLabel(c domain.Category) string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func PriorityLabel(p domain.Priority) string {
	if label, ok := priorityLabels[p]; ok {
		return label
	}
	return string(p)
}

func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:            task.ID,
		Title:         task.Title,
		Priority:      string(task.Priority),
		PriorityLabel: PriorityLabel(task.Priority),
		PriorityClass: "priority-" + string(task.Priority),
		Category:      string(task.Category),
		CategoryLabel: CategoryLabel(task.Category),
		CategoryClass: "category-" + string(task.Category),
		Completed:     task.Completed,
		Overdue:       taskquery.IsOverdue(task, now),
		OwnerID:       task.OwnerID,
		CreatedAt:     task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(dateLayout)
		item.DueDate = &value
	}

	// The last update of a completed task is when it was completed.
	if task.Completed {
		value := task.UpdatedAt.Format(dateLayout)
		item.CompletedAt = &value
	}

	if task.AssigneeID != nil {
		value := *task.AssigneeID
		item.AssigneeID = &value
	}

	return item
}

func ToTaskList(tasks []domain.Task, filter domain.TaskFilter, now time.Time, lang string) dto.TaskList {
	list := dto.TaskList{
		Items:  ToTaskItems(tasks, now),
		Count:  len(tasks),
		Filter: string(filter.Kind),
		Value:  filter.Value,
	}
	if len(tasks) == 0 {
		list.EmptyMessage = emptyFilterMessage(filter, lang)
	}
	return list
}

// emptyFilterMessage names the active filter, e.g. "No tasks found in work
// category".
func emptyFilterMessage(filter domain.TaskFilter, lang string) string {
	key := "emptyFilter"
	switch filter.Kind {
	case domain.FilterCategory:
		key = "emptyCategoryFilter"
	case domain.FilterPriority:
		key = "emptyPriorityFilter"
	}
	return translator.Translate(lang, key, map[string]any{
		"Kind":  string(filter.Kind),
		"Value": filter.Value,
	})
}

func ToOverdueList(tasks []domain.Task, now time.Time, lang string) dto.DeadlineList {
	return dto.DeadlineList{
		Items:   ToTaskItems(tasks, now),
		Count:   len(tasks),
		Message: translator.Translate(lang, "overdueCount", map[string]any{"Count": len(tasks)}),
	}
}

func ToDueSoonList(tasks []domain.Task, days int, now time.Time, lang string) dto.DeadlineList {
	return dto.DeadlineList{
		Items: ToTaskItems(tasks, now),
		Count: len(tasks),
		Message: translator.Translate(lang, "dueSoonCount", map[string]any{
			"Count": len(tasks),
			"Days":  days,
		}),
	}
}

// ToCategoryStatList keeps only categories that have at least one task.
func ToCategoryStatList(stats domain.CategoryStats, lang string) dto.CategoryStatList {
	nonEmpty := stats.NonEmpty()
	list := dto.CategoryStatList{Items: make([]dto.CategoryStatItem, 0, len(nonEmpty))}
	for _, stat := range nonEmpty {
		list.Items = append(list.Items, dto.CategoryStatItem{
			Category:  string(stat.Category),
			Label:     CategoryLabel(stat.Category),
			Total:     stat.Total,
			Completed: stat.Completed,
		})
	}
	if len(list.Items) == 0 {
		list.EmptyMessage = translator.Translate(lang, "emptyCategory", nil)
	}
	return list
}

func ToTaskStats(stats domain.TaskStats) dto.TaskStats {
	out := dto.TaskStats{
		Total:     stats.Total,
		Completed: stats.Completed,
		Pending:   stats.Pending,
		Overdue:   stats.Overdue,
	}
	if stats.Total > 0 {
		out.CompletionRate = stats.Completed * 100 / stats.Total
	}
	return out
}

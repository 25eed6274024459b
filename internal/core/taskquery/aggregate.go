package taskquery

import (
	"time"

	"taskdesk/internal/core/domain"
)

// ByCategory counts tasks per category. Every known category is present in
// the result, in domain.Categories order. Tasks with an unknown or empty
// category are not counted.
func ByCategory(tasks []domain.Task) domain.CategoryStats {
	index := make(map[domain.Category]int, len(domain.Categories))
	stats := make(domain.CategoryStats, len(domain.Categories))
	for i, c := range domain.Categories {
		stats[i] = domain.CategoryStat{Category: c}
		index[c] = i
	}

	for _, task := range tasks {
		i, ok := index[task.Category]
		if !ok {
			continue
		}
		stats[i].Total++
		if task.Completed {
			stats[i].Completed++
		}
	}
	return stats
}

func Summarize(tasks []domain.Task, now time.Time) domain.TaskStats {
	var stats domain.TaskStats
	for _, task := range tasks {
		stats.Total++
		if task.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if IsOverdue(task, now) {
			stats.Overdue++
		}
	}
	return stats
}

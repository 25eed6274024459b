package taskquery_test

import (
	"testing"

	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/taskquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByCategory_Scenario(t *testing.T) {
	stats := taskquery.ByCategory(scenarioTasks())

	require.Len(t, stats, len(domain.Categories))
	assert.Equal(t, domain.CategoryStat{Category: domain.CategoryWork, Total: 2, Completed: 1}, stats.Get(domain.CategoryWork))
	assert.Equal(t, domain.CategoryStat{Category: domain.CategoryPersonal, Total: 1}, stats.Get(domain.CategoryPersonal))
	assert.Equal(t, domain.CategoryStat{Category: domain.CategoryStudy}, stats.Get(domain.CategoryStudy))
}

func TestByCategory_FollowsEnumOrder(t *testing.T) {
	tasks := []domain.Task{
		{ID: "1", Category: domain.CategoryOther},
		{ID: "2", Category: domain.CategoryShopping},
		{ID: "3", Category: domain.CategoryWork},
	}
	stats := taskquery.ByCategory(tasks)
	for i, c := range domain.Categories {
		require.Equal(t, c, stats[i].Category)
	}

	nonEmpty := stats.NonEmpty()
	require.Len(t, nonEmpty, 3)
	require.Equal(t, domain.CategoryWork, nonEmpty[0].Category)
	require.Equal(t, domain.CategoryShopping, nonEmpty[1].Category)
	require.Equal(t, domain.CategoryOther, nonEmpty[2].Category)
}

func TestByCategory_EmptyInputIsAllZero(t *testing.T) {
	stats := taskquery.ByCategory(nil)
	require.Len(t, stats, len(domain.Categories))
	for _, stat := range stats {
		require.Zero(t, stat.Total)
		require.Zero(t, stat.Completed)
	}
	require.Empty(t, stats.NonEmpty())
}

func TestByCategory_SkipsUnknownCategories(t *testing.T) {
	tasks := append(scenarioTasks(),
		domain.Task{ID: "4", Category: ""},
		domain.Task{ID: "5", Category: "errands", Completed: true},
	)
	stats := taskquery.ByCategory(tasks)

	total := 0
	for _, stat := range stats {
		total += stat.Total
		require.LessOrEqual(t, stat.Completed, stat.Total)
	}
	require.Equal(t, 3, total)
}

func TestSummarize(t *testing.T) {
	yesterday := at(-24 * 60)
	tomorrow := at(24 * 60)
	tasks := []domain.Task{
		{ID: "1", DueDate: &yesterday},
		{ID: "2", DueDate: &yesterday, Completed: true},
		{ID: "3", DueDate: &tomorrow},
		{ID: "4"},
	}

	got := taskquery.Summarize(tasks, base)
	require.Equal(t, domain.TaskStats{Total: 4, Completed: 1, Pending: 3, Overdue: 1}, got)
}

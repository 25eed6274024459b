package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPriority_Valid(t *testing.T) {
	for _, p := range Priorities {
		require.True(t, p.Valid(), p)
	}
	require.False(t, Priority("urgent").Valid())
	require.False(t, Priority("").Valid())
	require.False(t, Priority("High").Valid())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		require.True(t, c.Valid(), c)
	}
	require.False(t, Category("errands").Valid())
}

func TestTask_Touch(t *testing.T) {
	created := time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)
	task := Task{CreatedAt: created, UpdatedAt: created}

	task.Touch(created.Add(-time.Hour))
	require.Equal(t, created, task.UpdatedAt)

	task.Touch(created.Add(time.Minute))
	require.Equal(t, created.Add(time.Minute), task.UpdatedAt)
}

package validation

import (
	"encoding/json"
	"testing"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func rawOf(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return raw
}

func TestBuildCreateTaskInput_Defaults(t *testing.T) {
	in, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "  Write report  "}, rawOf(t, `{"title":"  Write report  "}`))
	require.NoError(t, err)
	require.Equal(t, "Write report", in.Title)
	require.Empty(t, in.Priority)
	require.Empty(t, in.Category)
	require.Nil(t, in.DueDate)
}

func TestBuildCreateTaskInput_AllFields(t *testing.T) {
	priority := "high"
	category := "work"
	due := "2026-02-20"
	assignee := "self"
	req := dto.CreateTaskRequest{Title: "Plan", Priority: &priority, Category: &category, DueDate: &due, AssigneeID: &assignee}

	in, err := BuildCreateTaskInput(req, rawOf(t, `{"title":"Plan","priority":"high","category":"work","due_date":"2026-02-20","assignee_id":"self"}`))
	require.NoError(t, err)
	require.Equal(t, domain.PriorityHigh, in.Priority)
	require.Equal(t, domain.CategoryWork, in.Category)
	require.Equal(t, time.Date(2026, 2, 20, 23, 59, 59, 0, time.UTC), *in.DueDate)
	require.Equal(t, "self", *in.AssigneeID)
}

func TestBuildCreateTaskInput_Rejects(t *testing.T) {
	_, err := BuildCreateTaskInput(dto.CreateTaskRequest{Title: "   "}, rawOf(t, `{"title":"   "}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)

	_, err = BuildCreateTaskInput(dto.CreateTaskRequest{Title: "x"}, rawOf(t, `{"title":"x","priority":null}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)

	bad := "2026-13-40"
	_, err = BuildCreateTaskInput(dto.CreateTaskRequest{Title: "x", DueDate: &bad}, rawOf(t, `{"title":"x","due_date":"2026-13-40"}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_ExplicitNullClears(t *testing.T) {
	in, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawOf(t, `{"description":null,"due_date":null,"assignee_id":null}`))
	require.NoError(t, err)
	require.True(t, in.DescriptionSet)
	require.Nil(t, in.Description)
	require.True(t, in.DueDateSet)
	require.Nil(t, in.DueDate)
	require.True(t, in.AssigneeIDSet)
	require.Nil(t, in.AssigneeID)
	require.False(t, in.IsEmpty())
}

func TestBuildUpdateTaskInput_PartialFields(t *testing.T) {
	title := " Renamed "
	completed := true
	in, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{Title: &title, Completed: &completed}, rawOf(t, `{"title":" Renamed ","completed":true}`))
	require.NoError(t, err)
	require.Equal(t, "Renamed", *in.Title)
	require.True(t, *in.Completed)
	require.False(t, in.DescriptionSet)
	require.False(t, in.DueDateSet)
	require.Nil(t, in.Priority)
}

func TestBuildUpdateTaskInput_Rejects(t *testing.T) {
	_, err := BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawOf(t, `{"unknown":1}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)

	_, err = BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawOf(t, `{"title":null}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)

	_, err = BuildUpdateTaskInput(dto.UpdateTaskRequest{}, rawOf(t, `{"completed":null}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)

	blank := " "
	_, err = BuildUpdateTaskInput(dto.UpdateTaskRequest{Title: &blank}, rawOf(t, `{"title":" "}`))
	require.ErrorIs(t, err, ErrInvalidTaskPayload)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"taskdesk/internal/adapter/http/dto"
	"taskdesk/internal/adapter/http/mapper"
	"taskdesk/internal/adapter/http/middleware"
	"taskdesk/internal/adapter/http/validation"
	"taskdesk/internal/core/domain"
	"taskdesk/internal/core/ports"
	"taskdesk/pkg/apierrors"
	"taskdesk/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const defaultDueSoonDays = 3

type TaskHandler struct {
	taskService ports.TaskService
	now         func() time.Time
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService, now: time.Now}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	filter := domain.NewTaskFilter(c.Query("filter"), c.Query("value"))

	tasks, err := h.taskService.ListTasks(c.Request.Context(), user.ID, filter)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list tasks", zap.String("user_id", user.ID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Data:    mapper.ToTaskList(tasks, filter, h.now(), middleware.GetLang(c)),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	task, err := h.taskService.GetTask(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to get task", zap.String("task_id", c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Data: mapper.ToTaskItem(task, h.now())})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, _ := middleware.CurrentUser(c)

	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	var req dto.CreateTaskRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), user.ID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailCreateTask, "failed to create task", zap.String("user_id", user.ID))
		return
	}

	c.JSON(http.StatusCreated, dto.Result{
		Success: true,
		Message: translator.Translate(lang, "taskCreated", nil),
		Data:    mapper.ToTaskItem(task, h.now()),
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, _ := middleware.CurrentUser(c)
	taskID := c.Param("id")

	body, err := c.GetRawData()
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	var req dto.UpdateTaskRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		badRequest(c, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), user.ID, taskID, input)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Message: translator.Translate(lang, "taskUpdated", nil),
		Data:    mapper.ToTaskItem(task, h.now()),
	})
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, _ := middleware.CurrentUser(c)
	taskID := c.Param("id")

	task, err := h.taskService.ToggleTask(c.Request.Context(), user.ID, taskID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailUpdateTask, "failed to toggle task", zap.String("task_id", taskID))
		return
	}

	message := "taskReopened"
	if task.Completed {
		message = "taskCompleted"
	}
	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Message: translator.Translate(lang, message, nil),
		Data:    mapper.ToTaskItem(task, h.now()),
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, _ := middleware.CurrentUser(c)
	taskID := c.Param("id")

	if err := h.taskService.DeleteTask(c.Request.Context(), user.ID, taskID); err != nil {
		respondError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Message: translator.Translate(lang, "taskDeleted", nil),
	})
}

func (h *TaskHandler) Stats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	stats, err := h.taskService.Stats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLoadStats, "failed to load task stats", zap.String("user_id", user.ID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{Success: true, Data: mapper.ToTaskStats(stats)})
}

func (h *TaskHandler) CategoryStats(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	stats, err := h.taskService.CategoryStats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailLoadStats, "failed to load category stats", zap.String("user_id", user.ID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Data:    mapper.ToCategoryStatList(stats, middleware.GetLang(c)),
	})
}

func (h *TaskHandler) OverdueTasks(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	tasks, err := h.taskService.OverdueTasks(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list overdue tasks", zap.String("user_id", user.ID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Data:    mapper.ToOverdueList(tasks, h.now(), middleware.GetLang(c)),
	})
}

func (h *TaskHandler) DueSoonTasks(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	days := defaultDueSoonDays
	if value := c.Query("days"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			badRequest(c, apierrors.MsgInvalidDays)
			return
		}
		days = parsed
	}

	tasks, err := h.taskService.DueSoonTasks(c.Request.Context(), user.ID, days)
	if err != nil {
		respondError(c, err, apierrors.MsgFailListTask, "failed to list tasks due soon", zap.String("user_id", user.ID))
		return
	}

	c.JSON(http.StatusOK, dto.Result{
		Success: true,
		Data:    mapper.ToDueSoonList(tasks, days, h.now(), middleware.GetLang(c)),
	})
}

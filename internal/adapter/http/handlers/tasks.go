package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/adapter/http/mapper"
	"taskflow/internal/adapter/http/middleware"
	"taskflow/internal/adapter/http/validation"
	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
	"taskflow/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// ListTasks composes the query parameters as an AND filter. With
// withProject=true the joined projection is returned instead.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	filter, ok := parseTaskFilter(c, lang)
	if !ok {
		return
	}

	if c.Query("withProject") == "true" {
		tasks, err := h.taskService.ListTasksWithProject(c.Request.Context(), filter)
		if err != nil {
			zap.L().Error("failed to list tasks with project", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
			)
			return
		}
		c.JSON(http.StatusOK, mapper.ToTaskWithProjectItems(tasks))
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTasks, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req, raw)
	if err != nil {
		respondTaskValidationError(c, lang, err)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		// The referenced project must exist; reject the payload otherwise.
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgProjectNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondTaskValidationError(c, lang, err)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), taskID, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrProjectNotFound):
			c.JSON(
				http.StatusUnprocessableEntity,
				apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgProjectNotFound, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.Int64("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Int64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseTaskID(c *gin.Context, lang string) (int64, bool) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || taskID <= 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}

func parseTaskFilter(c *gin.Context, lang string) (domain.TaskFilter, bool) {
	var filter domain.TaskFilter

	if value := c.Query("projectId"); value != "" {
		projectID, err := strconv.ParseInt(value, 10, 64)
		if err != nil || projectID <= 0 {
			respondTaskFilterError(c, lang, "projectId")
			return domain.TaskFilter{}, false
		}
		filter.ProjectID = &projectID
	}

	if value := c.Query("status"); value != "" {
		status := domain.TaskStatus(value)
		if !status.Valid() {
			respondTaskFilterError(c, lang, "status")
			return domain.TaskFilter{}, false
		}
		filter.Status = &status
	}

	if value := c.Query("priority"); value != "" {
		priority := domain.TaskPriority(value)
		if !priority.Valid() {
			respondTaskFilterError(c, lang, "priority")
			return domain.TaskFilter{}, false
		}
		filter.Priority = &priority
	}

	return filter, true
}

func respondTaskFilterError(c *gin.Context, lang string, field string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateFieldError(http.StatusBadRequest, apierrors.MsgInvalidTaskFilter, lang, field),
	)
}

func respondTaskValidationError(c *gin.Context, lang string, err error) {
	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		c.JSON(
			http.StatusUnprocessableEntity,
			apierrors.CreateFieldError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskField, lang, fieldErr.Field),
		)
		return
	}
	c.JSON(
		http.StatusUnprocessableEntity,
		apierrors.CreateError(http.StatusUnprocessableEntity, apierrors.MsgInvalidTaskPayload, lang),
	)
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sabique2003/Tasklite/internal/adapter/http/dto"
	"github.com/sabique2003/Tasklite/internal/adapter/http/mapper"
	"github.com/sabique2003/Tasklite/internal/adapter/http/middleware"
	"github.com/sabique2003/Tasklite/internal/adapter/http/validation"
	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
	"github.com/sabique2003/Tasklite/pkg/apierrors"
)

// TaskHandler serves the /tasks collection.
type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskRecords(tasks))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	input, ok := bindTaskInput(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		if isInvalidTask(err) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
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

	c.JSON(http.StatusCreated, mapper.ToTaskRecord(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	input, ok := bindTaskInput(c, lang)
	if !ok {
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
		case isInvalidTask(err):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
		default:
			zap.L().Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
			)
		}
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskRecord(task))
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

		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTaskResponse{ID: taskID, Deleted: true})
}

// parseTaskID accepts only the UUIDs this store hands out.
func parseTaskID(c *gin.Context, lang string) (string, bool) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return "", false
	}
	return taskID.String(), true
}

func bindTaskInput(c *gin.Context, lang string) (domain.TaskInput, bool) {
	var req dto.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return domain.TaskInput{}, false
	}

	input, err := validation.BuildTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return domain.TaskInput{}, false
	}
	return input, true
}

func isInvalidTask(err error) bool {
	return errors.Is(err, domain.ErrInvalidStatus) || errors.Is(err, domain.ErrInvalidPriority)
}

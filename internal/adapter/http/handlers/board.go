package handlers

import (
	"bytes"
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sabique2003/Tasklite/internal/adapter/http/dto"
	"github.com/sabique2003/Tasklite/internal/adapter/http/mapper"
	"github.com/sabique2003/Tasklite/internal/adapter/http/middleware"
	"github.com/sabique2003/Tasklite/internal/adapter/http/validation"
	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
	"github.com/sabique2003/Tasklite/pkg/apierrors"
	"github.com/sabique2003/Tasklite/pkg/translator"
)

const (
	BoardTemplate = "board.tmpl"
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var boardLabelIDs = []string{
	"boardTitle",
	"fieldTitle",
	"fieldDescription",
	"fieldPriority",
	"fieldDueDate",
	"actionAdd",
	"actionUpdate",
	"actionCancelEdit",
	"actionEdit",
	"actionDelete",
	"actionDownloadPDF",
	"actionExportBoard",
	"noDescription",
	"dueLabel",
}

// BoardPage is the data handed to the board template.
type BoardPage struct {
	Labels     map[string]string
	Lanes      []domain.Lane
	Form       domain.FormState
	Editing    bool
	Priorities []domain.TaskPriority
}

type BoardHandler struct {
	board    ports.BoardService
	pdf      ports.TaskExporter
	workbook ports.BoardExporter
}

func NewBoardHandler(board ports.BoardService, pdf ports.TaskExporter, workbook ports.BoardExporter) *BoardHandler {
	return &BoardHandler{board: board, pdf: pdf, workbook: workbook}
}

// ShowBoard refetches and renders. A failed fetch still renders the cached
// board.
func (h *BoardHandler) ShowBoard(c *gin.Context) {
	_ = h.board.Refresh(c.Request.Context())

	view := h.board.View()
	c.HTML(http.StatusOK, BoardTemplate, BoardPage{
		Labels:     translator.LocalizeAll(middleware.GetLang(c), boardLabelIDs),
		Lanes:      view.Lanes,
		Form:       view.Form,
		Editing:    view.Editing,
		Priorities: domain.Priorities,
	})
}

func (h *BoardHandler) GetBoard(c *gin.Context) {
	_ = h.board.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, mapper.ToBoardResponse(h.board.View()))
}

func (h *BoardHandler) SubmitForm(c *gin.Context) {
	var req dto.FormRequest
	if err := c.ShouldBind(&req); err != nil {
		zap.L().Debug("unreadable board form", zap.Error(err))
		redirectToBoard(c)
		return
	}

	err := h.board.Submit(c.Request.Context(), domain.FormState{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
	})
	switch {
	case errors.Is(err, domain.ErrIncompleteForm):
		zap.L().Debug("ignoring incomplete board form")
	case err != nil:
		zap.L().Error("failed to submit board form", zap.Error(err))
	}
	redirectToBoard(c)
}

func (h *BoardHandler) BeginEdit(c *gin.Context) {
	taskID := c.Param("id")
	if err := h.board.BeginEdit(taskID); err != nil {
		zap.L().Warn("cannot edit task", zap.String("task_id", taskID), zap.Error(err))
	}
	redirectToBoard(c)
}

func (h *BoardHandler) CancelEdit(c *gin.Context) {
	h.board.CancelEdit()
	redirectToBoard(c)
}

func (h *BoardHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if err := h.board.Remove(c.Request.Context(), taskID); err != nil {
		zap.L().Error("failed to delete task", zap.String("task_id", taskID), zap.Error(err))
	}
	redirectToBoard(c)
}

// Drop handles the JSON payload posted when a drag ends.
func (h *BoardHandler) Drop(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.DropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDrop, lang),
		)
		return
	}

	result, err := validation.BuildDropResult(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidDrop, lang),
		)
		return
	}

	if err := h.board.HandleDrop(c.Request.Context(), result); err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
		case errors.Is(err, domain.ErrInvalidStatus):
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidLane, lang),
			)
		default:
			zap.L().Error("failed to move task", zap.String("task_id", result.DraggableID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailMoveTask, lang),
			)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadPDF exports a cached task without contacting the store.
func (h *BoardHandler) DownloadPDF(c *gin.Context) {
	lang := middleware.GetLang(c)

	task, ok := h.board.Task(c.Param("id"))
	if !ok {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
		return
	}

	var buf bytes.Buffer
	if err := h.pdf.ExportTask(&buf, task); err != nil {
		zap.L().Error("failed to render task pdf", zap.String("task_id", task.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExportTask, lang),
		)
		return
	}

	sendAttachment(c, "application/pdf", h.pdf.FileName(task), buf.Bytes())
}

func (h *BoardHandler) ExportBoard(c *gin.Context) {
	lang := middleware.GetLang(c)

	var buf bytes.Buffer
	if err := h.workbook.ExportBoard(&buf, h.board.View().Lanes); err != nil {
		zap.L().Error("failed to render board workbook", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailExportBoard, lang),
		)
		return
	}

	sendAttachment(c, xlsxMediaType, "board.xlsx", buf.Bytes())
}

func sendAttachment(c *gin.Context, contentType, fileName string, data []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Data(http.StatusOK, contentType, data)
}

func redirectToBoard(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}

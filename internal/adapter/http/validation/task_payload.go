package validation

import (
	"errors"
	"strings"

	"github.com/sabique2003/Tasklite/internal/adapter/http/dto"
	"github.com/sabique2003/Tasklite/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildTaskInput checks a create or replace body. Missing priority and
// status are left empty so the service can apply its defaults.
func BuildTaskInput(req dto.TaskRequest) (domain.TaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.TaskPriority(strings.TrimSpace(req.Priority))
	if priority != "" && !priority.IsValid() {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatus(strings.TrimSpace(req.Status))
	if status != "" && !status.IsLane() {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	dueDate := strings.TrimSpace(req.DueDate)
	if _, err := domain.ParseDueDate(dueDate); err != nil {
		return domain.TaskInput{}, ErrInvalidTaskPayload
	}

	return domain.TaskInput{
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     dueDate,
		Status:      status,
	}, nil
}

// BuildDropResult checks a drop payload coming from the board script.
func BuildDropResult(req dto.DropRequest) (domain.DropResult, error) {
	if strings.TrimSpace(req.DraggableID) == "" {
		return domain.DropResult{}, ErrInvalidTaskPayload
	}
	if !domain.TaskStatus(req.Source.DroppableID).IsLane() {
		return domain.DropResult{}, ErrInvalidTaskPayload
	}

	result := domain.DropResult{
		DraggableID: req.DraggableID,
		Source: domain.DropLocation{
			DroppableID: req.Source.DroppableID,
			Index:       req.Source.Index,
		},
	}
	if req.Destination != nil {
		result.Destination = &domain.DropLocation{
			DroppableID: req.Destination.DroppableID,
			Index:       req.Destination.Index,
		}
	}
	return result, nil
}

package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx)
}

// CreateTask assigns a fresh identifier and fills in the Low/Todo defaults.
func (s *TaskService) CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	task, err := buildTask(uuid.NewString(), input)
	if err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.CreateTask(ctx, task)
}

// UpdateTask replaces every field of an existing task.
func (s *TaskService) UpdateTask(ctx context.Context, id string, input domain.TaskInput) (domain.Task, error) {
	task, err := buildTask(id, input)
	if err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.UpdateTask(ctx, task)
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepository.DeleteTask(ctx, id)
}

func buildTask(id string, input domain.TaskInput) (domain.Task, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.TaskPriorityLow
	}
	if !priority.IsValid() {
		return domain.Task{}, domain.ErrInvalidPriority
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo
	}
	if !status.IsLane() {
		return domain.Task{}, domain.ErrInvalidStatus
	}

	dueDate, err := domain.ParseDueDate(strings.TrimSpace(input.DueDate))
	if err != nil {
		return domain.Task{}, err
	}

	return domain.Task{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Priority:    priority,
		DueDate:     domain.FormatDueDate(dueDate),
		Status:      status,
	}, nil
}

var _ ports.TaskService = (*TaskService)(nil)

package domain

import "strings"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// Lanes lists the board columns in display order. Drop targets are keyed by
// these exact strings.
var Lanes = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusDone}

func (s TaskStatus) IsLane() bool {
	for _, lane := range Lanes {
		if s == lane {
			return true
		}
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

var Priorities = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}

func (p TaskPriority) IsValid() bool {
	for _, priority := range Priorities {
		if p == priority {
			return true
		}
	}
	return false
}

// Task is the client-side copy of a record owned by the task store.
// DueDate keeps the store's ISO timestamp verbatim.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	Status      TaskStatus
}

// DueDay returns the date portion of the due timestamp.
func (t Task) DueDay() string {
	return dateOnly(t.DueDate)
}

// TaskInput is the body sent to the store when creating a task.
type TaskInput struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
	Status      TaskStatus
}

// FormState is the scratch copy edited by the board form. It never carries
// a status: only drag and drop changes lanes.
type FormState struct {
	Title       string
	Description string
	Priority    TaskPriority
	DueDate     string
}

func EmptyForm() FormState {
	return FormState{Priority: TaskPriorityLow}
}

func FormFromTask(task Task) FormState {
	return FormState{
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		DueDate:     task.DueDay(),
	}
}

// IsSubmittable reports whether the required title and due date are present.
func (f FormState) IsSubmittable() bool {
	return strings.TrimSpace(f.Title) != "" && strings.TrimSpace(f.DueDate) != ""
}

// ApplyTo layers the form fields over task, keeping its id and status.
func (f FormState) ApplyTo(task Task) Task {
	task.Title = strings.TrimSpace(f.Title)
	task.Description = f.Description
	task.Priority = f.priorityOrDefault()
	task.DueDate = strings.TrimSpace(f.DueDate)
	return task
}

// NewTaskInput builds a create body. New tasks always start in Todo.
func (f FormState) NewTaskInput() TaskInput {
	return TaskInput{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Priority:    f.priorityOrDefault(),
		DueDate:     strings.TrimSpace(f.DueDate),
		Status:      TaskStatusTodo,
	}
}

func (f FormState) priorityOrDefault() TaskPriority {
	if f.Priority == "" {
		return TaskPriorityLow
	}
	return f.Priority
}

func dateOnly(value string) string {
	if len(value) > 10 {
		return value[:10]
	}
	return value
}

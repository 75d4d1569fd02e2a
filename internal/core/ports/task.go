package ports

import (
	"context"
	"io"

	"github.com/sabique2003/Tasklite/internal/core/domain"
)

// TaskStore is the remote /tasks collection the board syncs with.
type TaskStore interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	Update(ctx context.Context, id string, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type TaskRepository interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	CreateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// TaskService backs the reference /tasks store.
type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, input domain.TaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, id string, input domain.TaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// BoardService is the view-model driven by the board pages.
type BoardService interface {
	Refresh(ctx context.Context) error
	Submit(ctx context.Context, form domain.FormState) error
	Remove(ctx context.Context, id string) error
	BeginEdit(id string) error
	CancelEdit()
	Move(ctx context.Context, taskID string, status domain.TaskStatus) error
	HandleDrop(ctx context.Context, result domain.DropResult) error
	View() domain.BoardView
	Task(id string) (domain.Task, bool)
}

type TaskExporter interface {
	ExportTask(w io.Writer, task domain.Task) error
	FileName(task domain.Task) string
}

type BoardExporter interface {
	ExportBoard(w io.Writer, lanes []domain.Lane) error
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

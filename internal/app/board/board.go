package board

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
)

// Board caches the store's task collection together with the form state.
// Every successful mutation is followed by a full refetch; nothing is patched
// locally.
type Board struct {
	store ports.TaskStore

	mu      sync.RWMutex
	tasks   []domain.Task
	form    domain.FormState
	editing *domain.Task
}

func New(store ports.TaskStore) *Board {
	return &Board{
		store: store,
		tasks: []domain.Task{},
		form:  domain.EmptyForm(),
	}
}

var _ ports.BoardService = (*Board)(nil)

// Refresh replaces the cached collection. On failure the stale cache stays.
func (b *Board) Refresh(ctx context.Context) error {
	tasks, err := b.store.List(ctx)
	if err != nil {
		zap.L().Warn("failed to refresh board", zap.Error(err))
		return fmt.Errorf("refresh board: %w", err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	b.mu.Lock()
	b.tasks = tasks
	b.mu.Unlock()
	return nil
}

// Submit creates a task, or updates the one being edited. An incomplete form
// is kept as typed and nothing is sent.
func (b *Board) Submit(ctx context.Context, form domain.FormState) error {
	if !form.IsSubmittable() {
		b.keepForm(form)
		return domain.ErrIncompleteForm
	}

	b.mu.RLock()
	var target *domain.Task
	if b.editing != nil {
		// The cached record wins over the edit snapshot so a lane change made
		// while editing is not reverted.
		current, ok := b.lookup(b.editing.ID)
		if !ok {
			current = *b.editing
		}
		target = &current
	}
	b.mu.RUnlock()

	if target != nil {
		if _, err := b.store.Update(ctx, target.ID, form.ApplyTo(*target)); err != nil {
			b.keepForm(form)
			return fmt.Errorf("update task %s: %w", target.ID, err)
		}
	} else {
		if _, err := b.store.Create(ctx, form.NewTaskInput()); err != nil {
			b.keepForm(form)
			return fmt.Errorf("create task: %w", err)
		}
	}

	b.resetForm()
	return b.Refresh(ctx)
}

func (b *Board) Remove(ctx context.Context, id string) error {
	if err := b.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	b.mu.Lock()
	if b.editing != nil && b.editing.ID == id {
		b.editing = nil
		b.form = domain.EmptyForm()
	}
	b.mu.Unlock()

	return b.Refresh(ctx)
}

// BeginEdit loads a cached task into the form.
func (b *Board) BeginEdit(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	task, ok := b.lookup(id)
	if !ok {
		return domain.ErrTaskNotFound
	}
	b.form = domain.FormFromTask(task)
	b.editing = &task
	return nil
}

func (b *Board) CancelEdit() {
	b.resetForm()
}

// Move puts a cached task into another lane.
func (b *Board) Move(ctx context.Context, taskID string, status domain.TaskStatus) error {
	if !status.IsLane() {
		return domain.ErrInvalidStatus
	}

	b.mu.RLock()
	task, ok := b.lookup(taskID)
	b.mu.RUnlock()
	if !ok {
		return domain.ErrTaskNotFound
	}
	if task.Status == status {
		return nil
	}

	task.Status = status
	if _, err := b.store.Update(ctx, taskID, task); err != nil {
		return fmt.Errorf("move task %s: %w", taskID, err)
	}
	return b.Refresh(ctx)
}

// HandleDrop ignores drops outside any lane and drops back into the source
// lane. The index is never persisted.
func (b *Board) HandleDrop(ctx context.Context, result domain.DropResult) error {
	if !result.ChangesLane() {
		return nil
	}
	return b.Move(ctx, result.DraggableID, domain.TaskStatus(result.Destination.DroppableID))
}

func (b *Board) View() domain.BoardView {
	b.mu.RLock()
	defer b.mu.RUnlock()

	view := domain.BoardView{
		Lanes: domain.PartitionByLane(b.tasks),
		Form:  b.form,
	}
	if b.editing != nil {
		view.Editing = true
		view.EditingID = b.editing.ID
	}
	return view
}

func (b *Board) Task(id string) (domain.Task, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lookup(id)
}

func (b *Board) resetForm() {
	b.mu.Lock()
	b.form = domain.EmptyForm()
	b.editing = nil
	b.mu.Unlock()
}

func (b *Board) keepForm(form domain.FormState) {
	b.mu.Lock()
	b.form = form
	b.mu.Unlock()
}

// lookup expects b.mu to be held.
func (b *Board) lookup(id string) (domain.Task, bool) {
	for _, task := range b.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return domain.Task{}, false
}

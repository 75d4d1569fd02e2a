package board_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sabique2003/Tasklite/internal/app/board"
	"github.com/sabique2003/Tasklite/internal/core/domain"
)

type taskStoreMock struct {
	mock.Mock
}

func (m *taskStoreMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskStoreMock) Create(ctx context.Context, input domain.TaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) Update(ctx context.Context, id string, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, id, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskStoreMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	writeDocs = domain.Task{
		ID:          "t1",
		Title:       "Write docs",
		Description: "README",
		Priority:    domain.TaskPriorityMedium,
		DueDate:     "2026-11-02T00:00:00.000Z",
		Status:      domain.TaskStatusTodo,
	}
	shipRelease = domain.Task{
		ID:       "t2",
		Title:    "Ship release",
		Priority: domain.TaskPriorityHigh,
		DueDate:  "2026-11-05T00:00:00.000Z",
		Status:   domain.TaskStatusInProgress,
	}
)

func loadedBoard(t *testing.T, store *taskStoreMock, tasks ...domain.Task) *board.Board {
	t.Helper()

	store.On("List", mock.Anything).Return(tasks, nil).Once()
	b := board.New(store)
	require.NoError(t, b.Refresh(context.Background()))
	return b
}

func laneTasks(view domain.BoardView, status domain.TaskStatus) []domain.Task {
	for _, lane := range view.Lanes {
		if lane.Status == status {
			return lane.Tasks
		}
	}
	return nil
}

func TestBoard_New_StartsWithEmptyForm(t *testing.T) {
	b := board.New(new(taskStoreMock))

	view := b.View()
	require.Equal(t, domain.EmptyForm(), view.Form)
	require.False(t, view.Editing)
	require.Len(t, view.Lanes, 3)
	for _, lane := range view.Lanes {
		require.Empty(t, lane.Tasks)
	}
}

func TestBoard_Refresh_PartitionsByLane(t *testing.T) {
	store := new(taskStoreMock)
	stray := domain.Task{ID: "t3", Title: "Stray", Status: "Blocked"}
	b := loadedBoard(t, store, writeDocs, shipRelease, stray)

	view := b.View()
	require.Equal(t, []domain.Task{writeDocs}, laneTasks(view, domain.TaskStatusTodo))
	require.Equal(t, []domain.Task{shipRelease}, laneTasks(view, domain.TaskStatusInProgress))
	require.Empty(t, laneTasks(view, domain.TaskStatusDone))
	store.AssertExpectations(t)
}

func TestBoard_Refresh_KeepsStaleCacheOnError(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)

	store.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	require.Error(t, b.Refresh(context.Background()))

	require.Equal(t, []domain.Task{writeDocs}, laneTasks(b.View(), domain.TaskStatusTodo))
	store.AssertExpectations(t)
}

func TestBoard_Submit_RejectsIncompleteForm(t *testing.T) {
	for name, form := range map[string]domain.FormState{
		"empty title":    {Title: "", DueDate: "2026-11-02", Priority: domain.TaskPriorityLow},
		"blank title":    {Title: "   ", DueDate: "2026-11-02", Priority: domain.TaskPriorityLow},
		"empty due date": {Title: "Write docs", Priority: domain.TaskPriorityHigh},
	} {
		t.Run(name, func(t *testing.T) {
			store := new(taskStoreMock)
			b := board.New(store)

			err := b.Submit(context.Background(), form)

			require.ErrorIs(t, err, domain.ErrIncompleteForm)
			view := b.View()
			require.Equal(t, form, view.Form)
			require.False(t, view.Editing)
			store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "List", mock.Anything)
		})
	}
}

func TestBoard_Submit_CreatesInTodoAndResetsForm(t *testing.T) {
	store := new(taskStoreMock)
	b := board.New(store)

	created := domain.Task{
		ID:       "t9",
		Title:    "Book venue",
		Priority: domain.TaskPriorityHigh,
		DueDate:  "2026-12-01T00:00:00.000Z",
		Status:   domain.TaskStatusTodo,
	}
	store.On("Create", mock.Anything, domain.TaskInput{
		Title:    "Book venue",
		Priority: domain.TaskPriorityHigh,
		DueDate:  "2026-12-01",
		Status:   domain.TaskStatusTodo,
	}).Return(created, nil).Once()
	store.On("List", mock.Anything).Return([]domain.Task{created}, nil).Once()

	err := b.Submit(context.Background(), domain.FormState{
		Title:    "Book venue",
		Priority: domain.TaskPriorityHigh,
		DueDate:  "2026-12-01",
	})

	require.NoError(t, err)
	view := b.View()
	require.Equal(t, domain.EmptyForm(), view.Form)
	require.Equal(t, []domain.Task{created}, laneTasks(view, domain.TaskStatusTodo))
	store.AssertExpectations(t)
}

func TestBoard_Submit_WhileEditingUpdatesWithoutCreating(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs, shipRelease)

	require.NoError(t, b.BeginEdit("t2"))
	view := b.View()
	require.True(t, view.Editing)
	require.Equal(t, "t2", view.EditingID)
	require.Equal(t, domain.FormState{
		Title:    "Ship release",
		Priority: domain.TaskPriorityHigh,
		DueDate:  "2026-11-05",
	}, view.Form)

	want := domain.Task{
		ID:          "t2",
		Title:       "Ship release v2",
		Description: "tag and publish",
		Priority:    domain.TaskPriorityMedium,
		DueDate:     "2026-11-06",
		Status:      domain.TaskStatusInProgress,
	}
	store.On("Update", mock.Anything, "t2", want).Return(want, nil).Once()
	store.On("List", mock.Anything).Return([]domain.Task{writeDocs, want}, nil).Once()

	err := b.Submit(context.Background(), domain.FormState{
		Title:       "Ship release v2",
		Description: "tag and publish",
		Priority:    domain.TaskPriorityMedium,
		DueDate:     "2026-11-06",
	})

	require.NoError(t, err)
	view = b.View()
	require.False(t, view.Editing)
	require.Equal(t, domain.EmptyForm(), view.Form)
	require.Equal(t, []domain.Task{want}, laneTasks(view, domain.TaskStatusInProgress))
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestBoard_Submit_KeepsFormWhenStoreFails(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)
	require.NoError(t, b.BeginEdit("t1"))

	store.On("Update", mock.Anything, "t1", mock.Anything).Return(domain.Task{}, errors.New("bad gateway")).Once()

	typed := domain.FormState{Title: "Write docs", DueDate: "2026-11-02"}
	err := b.Submit(context.Background(), typed)

	require.Error(t, err)
	view := b.View()
	require.True(t, view.Editing)
	require.Equal(t, "t1", view.EditingID)
	require.Equal(t, typed, view.Form)
	store.AssertExpectations(t)
}

func TestBoard_Submit_KeepsTypedFormWhenIncompleteWhileEditing(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)
	require.NoError(t, b.BeginEdit("t1"))

	typed := domain.FormState{Title: "Write better docs", Priority: domain.TaskPriorityHigh}
	require.ErrorIs(t, b.Submit(context.Background(), typed), domain.ErrIncompleteForm)

	view := b.View()
	require.True(t, view.Editing)
	require.Equal(t, typed, view.Form)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoard_Submit_AfterDragKeepsNewLane(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)
	require.NoError(t, b.BeginEdit("t1"))

	moved := writeDocs
	moved.Status = domain.TaskStatusDone
	store.On("Update", mock.Anything, "t1", moved).Return(moved, nil).Once()
	store.On("List", mock.Anything).Return([]domain.Task{moved}, nil).Once()
	require.NoError(t, b.HandleDrop(context.Background(), domain.DropResult{
		DraggableID: "t1",
		Source:      domain.DropLocation{DroppableID: string(domain.TaskStatusTodo)},
		Destination: &domain.DropLocation{DroppableID: string(domain.TaskStatusDone)},
	}))
	require.True(t, b.View().Editing)

	edited := moved
	edited.Title = "Write API docs"
	edited.DueDate = "2026-11-02"
	store.On("Update", mock.Anything, "t1", edited).Return(edited, nil).Once()
	store.On("List", mock.Anything).Return([]domain.Task{edited}, nil).Once()

	form := b.View().Form
	form.Title = "Write API docs"
	require.NoError(t, b.Submit(context.Background(), form))

	require.Equal(t, []domain.Task{edited}, laneTasks(b.View(), domain.TaskStatusDone))
	store.AssertExpectations(t)
}

func TestBoard_BeginEdit_UnknownTask(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)

	require.ErrorIs(t, b.BeginEdit("missing"), domain.ErrTaskNotFound)
	require.False(t, b.View().Editing)
	require.Equal(t, domain.EmptyForm(), b.View().Form)
}

func TestBoard_CancelEdit_ResetsForm(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)
	require.NoError(t, b.BeginEdit("t1"))

	b.CancelEdit()

	view := b.View()
	require.False(t, view.Editing)
	require.Empty(t, view.EditingID)
	require.Equal(t, domain.EmptyForm(), view.Form)
}

func TestBoard_Remove_RefreshesWithoutDeletedTask(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs, shipRelease)

	store.On("Delete", mock.Anything, "t1").Return(nil).Once()
	store.On("List", mock.Anything).Return([]domain.Task{shipRelease}, nil).Once()

	require.NoError(t, b.Remove(context.Background(), "t1"))

	view := b.View()
	require.Empty(t, laneTasks(view, domain.TaskStatusTodo))
	require.Equal(t, []domain.Task{shipRelease}, laneTasks(view, domain.TaskStatusInProgress))
	store.AssertExpectations(t)
}

func TestBoard_Remove_CancelsEditOfDeletedTask(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)
	require.NoError(t, b.BeginEdit("t1"))

	store.On("Delete", mock.Anything, "t1").Return(nil).Once()
	store.On("List", mock.Anything).Return([]domain.Task{}, nil).Once()

	require.NoError(t, b.Remove(context.Background(), "t1"))
	require.False(t, b.View().Editing)
	store.AssertExpectations(t)
}

func TestBoard_HandleDrop_ChangesOnlyStatus(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs, shipRelease)

	moved := writeDocs
	moved.Status = domain.TaskStatusDone
	store.On("Update", mock.Anything, "t1", moved).Return(moved, nil).Once()
	store.On("List", mock.Anything).Return([]domain.Task{moved, shipRelease}, nil).Once()

	err := b.HandleDrop(context.Background(), domain.DropResult{
		DraggableID: "t1",
		Source:      domain.DropLocation{DroppableID: "Todo", Index: 0},
		Destination: &domain.DropLocation{DroppableID: "Done", Index: 0},
	})

	require.NoError(t, err)
	require.Equal(t, []domain.Task{moved}, laneTasks(b.View(), domain.TaskStatusDone))
	store.AssertExpectations(t)
}

func TestBoard_HandleDrop_SameLaneIsNoop(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)

	err := b.HandleDrop(context.Background(), domain.DropResult{
		DraggableID: "t1",
		Source:      domain.DropLocation{DroppableID: "Todo", Index: 0},
		Destination: &domain.DropLocation{DroppableID: "Todo", Index: 3},
	})

	require.NoError(t, err)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestBoard_HandleDrop_OutsideLanesIsNoop(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)

	err := b.HandleDrop(context.Background(), domain.DropResult{
		DraggableID: "t1",
		Source:      domain.DropLocation{DroppableID: "Todo"},
	})

	require.NoError(t, err)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoard_Move_UnknownTask(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)

	err := b.Move(context.Background(), "gone", domain.TaskStatusDone)

	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoard_Move_InvalidLane(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)

	err := b.Move(context.Background(), "t1", "Blocked")

	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestBoard_Task_LooksUpCache(t *testing.T) {
	store := new(taskStoreMock)
	b := loadedBoard(t, store, writeDocs)

	task, ok := b.Task("t1")
	require.True(t, ok)
	require.Equal(t, writeDocs, task)

	_, ok = b.Task("t2")
	require.False(t, ok)
}

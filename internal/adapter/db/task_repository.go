package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
)

const (
	listTasksQuery = `
SELECT id, title, description, priority, due_date, status
FROM tasks
ORDER BY created_at, id;
`
	getTaskQuery = `
SELECT id, title, description, priority, due_date, status
FROM tasks
WHERE id = ?;
`
	insertTaskQuery = `
INSERT INTO tasks (id, title, description, priority, due_date, status)
VALUES (?, ?, ?, ?, ?, ?);
`
	updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, priority = ?, due_date = ?, status = ?
WHERE id = ?;
`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?;`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Priority    string         `db:"priority"`
	DueDate     time.Time      `db:"due_date"`
	Status      string         `db:"status"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksQuery); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) CreateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	dueDate, err := domain.ParseDueDate(task.DueDate)
	if err != nil {
		return domain.Task{}, err
	}

	if _, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.ID,
		task.Title,
		nullableString(task.Description),
		string(task.Priority),
		dueDate.UTC(),
		string(task.Status),
	); err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return r.GetTask(ctx, task.ID)
}

// UpdateTask reads the row back afterwards: MySQL reports zero affected rows
// when nothing changed, so the read is what detects a missing task.
func (r *TaskRepository) UpdateTask(ctx context.Context, task domain.Task) (domain.Task, error) {
	dueDate, err := domain.ParseDueDate(task.DueDate)
	if err != nil {
		return domain.Task{}, err
	}

	if _, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		task.Title,
		nullableString(task.Description),
		string(task.Priority),
		dueDate.UTC(),
		string(task.Status),
		task.ID,
	); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	return r.GetTask(ctx, task.ID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:       row.ID,
		Title:    row.Title,
		Priority: domain.TaskPriority(row.Priority),
		DueDate:  domain.FormatDueDate(row.DueDate),
		Status:   domain.TaskStatus(row.Status),
	}

	if row.Description.Valid {
		task.Description = row.Description.String
	}

	return task
}

func nullableString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

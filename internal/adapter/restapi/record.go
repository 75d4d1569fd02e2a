package restapi

import "github.com/sabique2003/Tasklite/internal/core/domain"

// taskRecord is a task as the store sends it back. Unknown fields such as
// a document version are ignored.
type taskRecord struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

// createBody is the POST payload; the store assigns the id.
type createBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

func (r taskRecord) toDomain() domain.Task {
	return domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.TaskPriority(r.Priority),
		DueDate:     r.DueDate,
		Status:      domain.TaskStatus(r.Status),
	}
}

func recordFromTask(task domain.Task) taskRecord {
	return taskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		Status:      string(task.Status),
	}
}

func bodyFromInput(input domain.TaskInput) createBody {
	return createBody{
		Title:       input.Title,
		Description: input.Description,
		Priority:    string(input.Priority),
		DueDate:     input.DueDate,
		Status:      string(input.Status),
	}
}

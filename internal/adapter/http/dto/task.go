package dto

// TaskRecord is a task as it travels over the /tasks API.
type TaskRecord struct {
	ID          string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

type TaskRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=65535"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate" binding:"required"`
	Status      string `json:"status"`
}

type DeleteTaskResponse struct {
	ID      string `json:"_id"`
	Deleted bool   `json:"deleted"`
}

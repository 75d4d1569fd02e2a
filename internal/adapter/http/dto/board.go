package dto

// DropRequest is posted by the board script when a drag ends.
type DropRequest struct {
	DraggableID string        `json:"draggableId" binding:"required"`
	Source      DropLocation  `json:"source"`
	Destination *DropLocation `json:"destination"`
}

type DropLocation struct {
	DroppableID string `json:"droppableId"`
	Index       int    `json:"index"`
}

type FormItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

type LaneItem struct {
	Status string       `json:"status"`
	Tasks  []TaskRecord `json:"tasks"`
}

type BoardResponse struct {
	Lanes     []LaneItem `json:"lanes"`
	Form      FormItem   `json:"form"`
	Editing   bool       `json:"editing"`
	EditingID string     `json:"editingId,omitempty"`
}

// FormRequest is the urlencoded board form.
type FormRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Priority    string `form:"priority"`
	DueDate     string `form:"dueDate"`
}

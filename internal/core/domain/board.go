package domain

// Lane is one rendered board column.
type Lane struct {
	Status TaskStatus
	Tasks  []Task
}

// BoardView is a point-in-time snapshot of the board for rendering.
type BoardView struct {
	Lanes     []Lane
	Form      FormState
	Editing   bool
	EditingID string
}

// PartitionByLane splits tasks into the fixed lanes, keeping store order.
// Tasks whose status is not a lane are dropped.
func PartitionByLane(tasks []Task) []Lane {
	lanes := make([]Lane, 0, len(Lanes))
	for _, status := range Lanes {
		lane := Lane{Status: status, Tasks: []Task{}}
		for _, task := range tasks {
			if task.Status == status {
				lane.Tasks = append(lane.Tasks, task)
			}
		}
		lanes = append(lanes, lane)
	}
	return lanes
}

// DropLocation names a drop target and the position inside it.
type DropLocation struct {
	DroppableID string
	Index       int
}

// DropResult describes a finished drag. Destination is nil when the card was
// released outside every drop target.
type DropResult struct {
	DraggableID string
	Source      DropLocation
	Destination *DropLocation
}

// ChangesLane reports whether the drop ended in a different lane than it
// started.
func (r DropResult) ChangesLane() bool {
	return r.Destination != nil && r.Destination.DroppableID != r.Source.DroppableID
}

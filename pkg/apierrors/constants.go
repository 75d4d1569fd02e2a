package apierrors

const (
	MsgFailListTask       = "errorListTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgInvalidDrop        = "invalidDropPayload"
	MsgInvalidLane        = "invalidLane"
	MsgFailMoveTask       = "failMoveTask"
	MsgFailExportTask     = "failExportTask"
	MsgFailExportBoard    = "failExportBoard"
)

package domain

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrIncompleteForm  = errors.New("title and due date are required")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid task priority")
)

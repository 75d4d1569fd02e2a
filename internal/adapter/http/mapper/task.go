package mapper

import (
	"github.com/sabique2003/Tasklite/internal/adapter/http/dto"
	"github.com/sabique2003/Tasklite/internal/core/domain"
)

func ToTaskRecords(tasks []domain.Task) []dto.TaskRecord {
	records := make([]dto.TaskRecord, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, ToTaskRecord(task))
	}
	return records
}

func ToTaskRecord(task domain.Task) dto.TaskRecord {
	return dto.TaskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		Status:      string(task.Status),
	}
}

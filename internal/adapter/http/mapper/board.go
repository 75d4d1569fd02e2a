package mapper

import (
	"github.com/sabique2003/Tasklite/internal/adapter/http/dto"
	"github.com/sabique2003/Tasklite/internal/core/domain"
)

func ToBoardResponse(view domain.BoardView) dto.BoardResponse {
	lanes := make([]dto.LaneItem, 0, len(view.Lanes))
	for _, lane := range view.Lanes {
		lanes = append(lanes, dto.LaneItem{
			Status: string(lane.Status),
			Tasks:  ToTaskRecords(lane.Tasks),
		})
	}

	return dto.BoardResponse{
		Lanes: lanes,
		Form: dto.FormItem{
			Title:       view.Form.Title,
			Description: view.Form.Description,
			Priority:    string(view.Form.Priority),
			DueDate:     view.Form.DueDate,
		},
		Editing:   view.Editing,
		EditingID: view.EditingID,
	}
}

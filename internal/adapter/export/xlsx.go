package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
)

const boardSheet = "Board"

var boardHeader = []any{"Title", "Description", "Priority", "Due Date", "Status"}

// XLSXExporter writes the whole board to one sheet, lane by lane.
type XLSXExporter struct{}

func NewXLSXExporter() *XLSXExporter {
	return &XLSXExporter{}
}

var _ ports.BoardExporter = (*XLSXExporter)(nil)

func (e *XLSXExporter) ExportBoard(w io.Writer, lanes []domain.Lane) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", boardSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(boardSheet, "A1", &boardHeader); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(boardSheet, "A1", "E1", headerStyle); err != nil {
		return err
	}
	if err := f.SetColWidth(boardSheet, "A", "E", 22); err != nil {
		return err
	}

	row := 2
	for _, lane := range lanes {
		for _, task := range lane.Tasks {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []any{task.Title, task.Description, string(task.Priority), task.DueDay(), string(task.Status)}
			if err := f.SetSheetRow(boardSheet, cell, &values); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
			row++
		}
	}

	return f.Write(w)
}

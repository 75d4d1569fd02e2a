package export

import (
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sabique2003/Tasklite/internal/core/domain"
	"github.com/sabique2003/Tasklite/internal/core/ports"
)

const (
	pdfMarginLeft  = 14.0
	pdfHeadingY    = 20.0
	pdfTableStartY = 30.0
	pdfFieldWidth  = 50.0
	pdfValueWidth  = 132.0
	pdfLineHeight  = 8.0
	emptyValue     = "—"
)

// PDFExporter renders a single task as a two-column Field/Value table.
type PDFExporter struct {
	// Compress toggles stream compression in the output document.
	Compress bool
}

func NewPDFExporter() *PDFExporter {
	return &PDFExporter{Compress: true}
}

var _ ports.TaskExporter = (*PDFExporter)(nil)

func (e *PDFExporter) ExportTask(w io.Writer, task domain.Task) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(e.Compress)
	pdf.SetMargins(pdfMarginLeft, pdfMarginLeft, pdfMarginLeft)
	pdf.SetTitle(task.Title, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(pdfMarginLeft, pdfHeadingY, "Task Details")

	pdf.SetXY(pdfMarginLeft, pdfTableStartY)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(pdfFieldWidth, pdfLineHeight, "Field", "1", 0, "L", true, 0, "")
	pdf.CellFormat(pdfValueWidth, pdfLineHeight, "Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 245, 245)
	for i, row := range taskRows(task) {
		// Core fonts take cp1252 bytes, so wrapping is measured on the
		// translated bytes rather than on UTF-8 runes.
		value := tr(row[1])
		lines := pdf.SplitLines([]byte(value), pdfValueWidth-2)
		height := pdfLineHeight * float64(max(len(lines), 1))
		fill := i%2 == 1

		pdf.CellFormat(pdfFieldWidth, height, row[0], "1", 0, "L", fill, 0, "")
		pdf.MultiCell(pdfValueWidth, pdfLineHeight, value, "1", "L", fill)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// FileName names the download after the task title.
func (e *PDFExporter) FileName(task domain.Task) string {
	name := strings.TrimSpace(task.Title)
	if name == "" {
		name = "task"
	}
	name = strings.NewReplacer("/", "-", "\\", "-").Replace(name)
	return name + ".pdf"
}

func taskRows(task domain.Task) [][2]string {
	description := task.Description
	if strings.TrimSpace(description) == "" {
		description = emptyValue
	}
	return [][2]string{
		{"Title", task.Title},
		{"Description", description},
		{"Priority", string(task.Priority)},
		{"Due Date", task.DueDay()},
		{"Status", string(task.Status)},
	}
}

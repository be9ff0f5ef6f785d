package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"todo-app/internal/domain"
)

// PDFExporter renders a one-table A4 report
type PDFExporter struct {
	Title string
}

// NewPDFExporter creates a PDF exporter with the default title
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{Title: "Todo tasks"}
}

// Export draws a title and a table with ID, Name and Status columns.
// Completed task names are struck out.
func (e *PDFExporter) Export(w io.Writer, tasks []*domain.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; translate from UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, tr(e.Title))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(20, 7, "ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(130, 7, "Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Status", "1", 1, "L", false, 0, "")

	if len(tasks) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.CellFormat(180, 7, "No tasks!", "1", 1, "L", false, 0, "")
	}

	for _, task := range tasks {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(20, 7, strconv.FormatInt(task.ID, 10), "1", 0, "L", false, 0, "")
		if task.Completed {
			pdf.SetFont("Arial", "S", 10)
		}
		pdf.CellFormat(130, 7, tr(truncate(task.Name, 70)), "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(30, 7, task.Status(), "1", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// truncate shortens s to max runes so long names stay inside their cell
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

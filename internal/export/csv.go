package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"todo-app/internal/domain"
)

// CSVExporter writes an ID,Name,Status table
type CSVExporter struct{}

// Export writes a header row followed by one row per task
func (e *CSVExporter) Export(w io.Writer, tasks []*domain.Task) error {
	writer := csv.NewWriter(w)

	// Write header
	if err := writer.Write([]string{"ID", "Name", "Status"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.Name,
			task.Status(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

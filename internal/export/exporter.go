// Package export renders the task list as CSV, YAML or PDF.
package export

import (
	"fmt"
	"io"
	"strings"

	"todo-app/internal/domain"
	"todo-app/internal/errors"
)

// Supported formats
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
	FormatPDF  = "pdf"
)

// Formats lists the accepted format names in display order
var Formats = []string{FormatCSV, FormatYAML, FormatPDF}

// Exporter writes tasks to w in a single format
type Exporter interface {
	Export(w io.Writer, tasks []*domain.Task) error
}

// NewExporter returns the exporter for format. Matching ignores case and "yml" is accepted for YAML.
func NewExporter(format string) (Exporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV:
		return &CSVExporter{}, nil
	case FormatYAML, "yml":
		return &YAMLExporter{}, nil
	case FormatPDF:
		return NewPDFExporter(), nil
	default:
		return nil, errors.NewInvalidInputError("format",
			fmt.Sprintf("unsupported format %q, expected one of %s", format, strings.Join(Formats, ", ")))
	}
}

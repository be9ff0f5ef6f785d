package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"todo-app/internal/domain"
	"todo-app/internal/errors"
)

func sampleTasks() []*domain.Task {
	return []*domain.Task{
		{ID: 1, Name: "Buy milk", Completed: true},
		{ID: 2, Name: "Write report, draft"},
		{ID: 3, Name: "Café \"run\""},
	}
}

func TestNewExporter(t *testing.T) {
	tests := []struct {
		format   string
		expected Exporter
	}{
		{"csv", &CSVExporter{}},
		{"CSV", &CSVExporter{}},
		{"yaml", &YAMLExporter{}},
		{"yml", &YAMLExporter{}},
		{" pdf ", NewPDFExporter()},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			exporter, err := NewExporter(tt.format)
			require.NoError(t, err)
			assert.IsType(t, tt.expected, exporter)
		})
	}
}

func TestNewExporter_UnknownFormat(t *testing.T) {
	exporter, err := NewExporter("xml")
	assert.Nil(t, exporter)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Contains(t, err.Error(), "csv, yaml, pdf")
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVExporter{}).Export(&buf, sampleTasks()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"ID", "Name", "Status"},
		{"1", "Buy milk", "complete"},
		{"2", "Write report, draft", "open"},
		{"3", "Café \"run\"", "open"},
	}, records)
}

func TestCSVExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVExporter{}).Export(&buf, nil))
	assert.Equal(t, "ID,Name,Status\n", buf.String())
}

func TestYAMLExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLExporter{}).Export(&buf, sampleTasks()))

	assert.True(t, strings.HasPrefix(buf.String(), "tasks:\n  - id: 1\n    name: Buy milk\n    status: complete\n"))

	var doc yamlDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Tasks, 3)
	assert.Equal(t, yamlTask{ID: 3, Name: "Café \"run\"", Status: "open"}, doc.Tasks[2])
}

func TestYAMLExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&YAMLExporter{}).Export(&buf, []*domain.Task{}))
	assert.Equal(t, "tasks: []\n", buf.String())
}

func TestPDFExporter(t *testing.T) {
	tasks := append(sampleTasks(), &domain.Task{ID: 4, Name: strings.Repeat("long ", 40)})

	var buf bytes.Buffer
	require.NoError(t, NewPDFExporter().Export(&buf, tasks))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should be a PDF document")
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestPDFExporter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPDFExporter().Export(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}

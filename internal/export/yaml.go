package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"todo-app/internal/domain"
)

type yamlTask struct {
	ID     int64  `yaml:"id"`
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
}

type yamlDocument struct {
	Tasks []yamlTask `yaml:"tasks"`
}

// YAMLExporter writes a document with a top-level tasks list
type YAMLExporter struct{}

// Export encodes tasks as YAML with two-space indentation
func (e *YAMLExporter) Export(w io.Writer, tasks []*domain.Task) error {
	doc := yamlDocument{Tasks: make([]yamlTask, 0, len(tasks))}
	for _, task := range tasks {
		doc.Tasks = append(doc.Tasks, yamlTask{
			ID:     task.ID,
			Name:   task.Name,
			Status: task.Status(),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

package sqlite

// Task is a row of the tasks table.
// Status holds 0 for open and 1 for complete.
type Task struct {
	ID     int64
	Name   string
	Status int
}

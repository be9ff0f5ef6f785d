package domain

import "strings"

// strikeMark is the combining long stroke overlay placed after each rune of a
// completed task's name.
const strikeMark = '\u0336'

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID        int64
	Name      string
	Completed bool
}

// NewTask creates a new open Task with the given name.
func NewTask(name string) Task {
	return Task{
		Name: name,
	}
}

// Status returns "complete" or "open".
func (t Task) Status() string {
	if t.Completed {
		return "complete"
	}
	return "open"
}

// Label returns the name as shown in task lists. Completed tasks are struck
// through when strike is true.
func (t Task) Label(strike bool) string {
	if t.Completed && strike {
		return Strikethrough(t.Name)
	}
	return t.Name
}

// Strikethrough overlays a combining long stroke on every rune of s.
func Strikethrough(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(strikeMark)
	}
	return b.String()
}

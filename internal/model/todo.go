package model

// Todo is the domain model for a todo entry.
// Content must not contain a newline; the line format has no escaping.
type Todo struct {
	Completed bool   `json:"completed"`
	Content   string `json:"content"`
}

// Marker is the one-character completion indicator used on disk and on screen.
func (t Todo) Marker() string {
	if t.Completed {
		return "X"
	}
	return " "
}

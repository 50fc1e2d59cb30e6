package entity

import (
	"strings"
	"time"
)

const (
	StatusTodo    = "TO DO"
	StatusOngoing = "ONGOING"
	StatusDone    = "DONE"

	DefaultCategory = "Miscellaneous"
	DefaultPriority = 1
)

var statuses = map[string]struct{}{
	StatusTodo:    {},
	StatusOngoing: {},
	StatusDone:    {},
}

// ValidStatus reports whether s belongs to the status vocabulary.
func ValidStatus(s string) bool {
	_, ok := statuses[s]
	return ok
}

// Note is a task owned by exactly one user. A nil NotebookID means the note is unfiled.
type Note struct {
	ID         int64
	Title      string
	Content    string
	Category   string
	Status     string
	Priority   int
	DueDate    *time.Time
	OwnerID    int64
	NotebookID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewNote builds a note with the default status, priority and category applied.
func NewNote(ownerID int64, title string) *Note {
	return &Note{
		Title:    strings.TrimSpace(title),
		Category: DefaultCategory,
		Status:   StatusTodo,
		Priority: DefaultPriority,
		OwnerID:  ownerID,
	}
}

// Filed reports whether the note sits inside a notebook.
func (n *Note) Filed() bool { return n.NotebookID != nil }

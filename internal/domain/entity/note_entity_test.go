package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNoteDefaults(t *testing.T) {
	n := NewNote(7, "  Buy milk ")
	assert.Equal(t, "Buy milk", n.Title)
	assert.Equal(t, StatusTodo, n.Status)
	assert.Equal(t, DefaultPriority, n.Priority)
	assert.Equal(t, DefaultCategory, n.Category)
	assert.Equal(t, int64(7), n.OwnerID)
	assert.False(t, n.Filed())
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusTodo, StatusOngoing, StatusDone} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "todo", "IN PROGRESS", "done "} {
		assert.False(t, ValidStatus(s), s)
	}
}

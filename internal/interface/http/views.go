package handlers

import (
	"time"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/internal/domain/entity"
)

type userView struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture"`
}

func toUserView(u *entity.User) userView {
	return userView{ID: u.ID, Email: u.Email, Username: u.Username, ProfilePicture: u.ProfilePicture}
}

// tokenView follows RFC 6749 section 5.1.
type tokenView struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type noteView struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category"`
	Status     string     `json:"status"`
	Priority   int        `json:"priority"`
	DueDate    *time.Time `json:"due_date"`
	NotebookID *int64     `json:"notebook_id"`
	OwnerID    int64      `json:"owner_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func toNoteView(n *entity.Note) noteView {
	return noteView{
		ID:         n.ID,
		Title:      n.Title,
		Content:    n.Content,
		Category:   n.Category,
		Status:     n.Status,
		Priority:   n.Priority,
		DueDate:    n.DueDate,
		NotebookID: n.NotebookID,
		OwnerID:    n.OwnerID,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func toNoteViews(notes []entity.Note) []noteView {
	out := make([]noteView, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteView(&notes[i]))
	}
	return out
}

type notebookView struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toNotebookView(nb *entity.Notebook) notebookView {
	return notebookView{ID: nb.ID, Title: nb.Title, OwnerID: nb.OwnerID, CreatedAt: nb.CreatedAt}
}

type notebookDetailView struct {
	notebookView
	Notes []noteView `json:"notes"`
}

func toNotebookDetailView(d *application.NotebookDetail) notebookDetailView {
	return notebookDetailView{notebookView: toNotebookView(&d.Notebook), Notes: toNoteViews(d.Notes)}
}

package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	repo "github.com/oksasatya/go-task-manager/internal/domain/repository"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

// NoteService manages a user's notes. Every operation is scoped to the caller;
// another user's note behaves exactly like a missing one.
type NoteService struct {
	Notes     repo.NoteRepository
	Notebooks repo.NotebookRepository
	Logger    *logrus.Logger
}

func NewNoteService(notes repo.NoteRepository, notebooks repo.NotebookRepository, logger *logrus.Logger) *NoteService {
	return &NoteService{Notes: notes, Notebooks: notebooks, Logger: logger}
}

type CreateNoteInput struct {
	Title      string
	Content    string
	Category   string
	Status     string
	Priority   *int
	DueDate    *time.Time
	NotebookID *int64
}

// UpdateNoteInput carries a partial update. Nil pointers and unset Optionals
// leave the field unchanged; a null Optional clears it.
type UpdateNoteInput struct {
	Title      *string
	Content    *string
	Category   *string
	Status     *string
	Priority   *int
	DueDate    helpers.Optional[time.Time]
	NotebookID helpers.Optional[int64]
}

// ListNotes returns the caller's unfiled notes, or the notes in notebookID.
func (s *NoteService) ListNotes(ctx context.Context, ownerID int64, notebookID *int64) ([]entity.Note, error) {
	if notebookID != nil {
		if err := s.ensureNotebook(ctx, ownerID, *notebookID); err != nil {
			return nil, err
		}
	}
	return s.Notes.List(ctx, ownerID, notebookID)
}

func (s *NoteService) GetNote(ctx context.Context, ownerID, id int64) (*entity.Note, error) {
	n, err := s.Notes.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, notFound(err)
	}
	return n, nil
}

// CreateNote stores a note with status TO DO, priority 1 and category
// Miscellaneous unless the input says otherwise.
func (s *NoteService) CreateNote(ctx context.Context, ownerID int64, in CreateNoteInput) (*entity.Note, error) {
	n := entity.NewNote(ownerID, in.Title)
	if n.Title == "" {
		return nil, invalidInput("title is required")
	}
	n.Content = in.Content
	if c := strings.TrimSpace(in.Category); c != "" {
		n.Category = c
	}
	if in.Status != "" {
		if !entity.ValidStatus(in.Status) {
			return nil, invalidInput("unknown status %q", in.Status)
		}
		n.Status = in.Status
	}
	if in.Priority != nil {
		n.Priority = *in.Priority
	}
	n.DueDate = in.DueDate
	if in.NotebookID != nil {
		if err := s.ensureNotebook(ctx, ownerID, *in.NotebookID); err != nil {
			return nil, err
		}
		n.NotebookID = in.NotebookID
	}

	// the notebook can vanish between the check above and the insert
	if err := s.Notes.Create(ctx, n); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		helpers.LogError(s.Logger, "create note failed", err, logrus.Fields{"owner_id": ownerID})
		return nil, err
	}
	metricNotesCreated.Add(1)
	return n, nil
}

// UpdateNote applies a partial update and returns the stored note.
func (s *NoteService) UpdateNote(ctx context.Context, ownerID, id int64, in UpdateNoteInput) (*entity.Note, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, invalidInput("title must not be blank")
	}
	if in.Status != nil && !entity.ValidStatus(*in.Status) {
		return nil, invalidInput("unknown status %q", *in.Status)
	}
	// Checked before the repository transaction starts so a single-connection
	// backend never needs a second connection mid-update.
	if nb := in.NotebookID.Ptr(); nb != nil {
		if err := s.ensureNotebook(ctx, ownerID, *nb); err != nil {
			return nil, err
		}
	}

	n, err := s.Notes.Update(ctx, ownerID, id, func(n *entity.Note) error {
		if in.Title != nil {
			n.Title = strings.TrimSpace(*in.Title)
		}
		if in.Content != nil {
			n.Content = *in.Content
		}
		if in.Category != nil {
			n.Category = strings.TrimSpace(*in.Category)
			if n.Category == "" {
				n.Category = entity.DefaultCategory
			}
		}
		if in.Status != nil {
			n.Status = *in.Status
		}
		if in.Priority != nil {
			n.Priority = *in.Priority
		}
		if in.DueDate.Set {
			n.DueDate = in.DueDate.Ptr()
		}
		if in.NotebookID.Set {
			n.NotebookID = in.NotebookID.Ptr()
		}
		return nil
	})
	if err != nil {
		return nil, notFound(err)
	}
	return n, nil
}

// UpdateStatus moves a note to one of TO DO, ONGOING or DONE.
func (s *NoteService) UpdateStatus(ctx context.Context, ownerID, id int64, status string) (*entity.Note, error) {
	return s.UpdateNote(ctx, ownerID, id, UpdateNoteInput{Status: &status})
}

func (s *NoteService) DeleteNote(ctx context.Context, ownerID, id int64) error {
	return notFound(s.Notes.Delete(ctx, ownerID, id))
}

func (s *NoteService) ensureNotebook(ctx context.Context, ownerID, notebookID int64) error {
	if _, err := s.Notebooks.GetByID(ctx, ownerID, notebookID); err != nil {
		return notFound(err)
	}
	return nil
}

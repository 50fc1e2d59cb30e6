package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	repo "github.com/oksasatya/go-task-manager/internal/domain/repository"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
)

type NotebookService struct {
	Notebooks repo.NotebookRepository
	Notes     repo.NoteRepository
	Logger    *logrus.Logger
}

func NewNotebookService(notebooks repo.NotebookRepository, notes repo.NoteRepository, logger *logrus.Logger) *NotebookService {
	return &NotebookService{Notebooks: notebooks, Notes: notes, Logger: logger}
}

// NotebookDetail is a notebook together with the notes filed in it.
type NotebookDetail struct {
	Notebook entity.Notebook
	Notes    []entity.Note
}

// ListNotebooks returns the caller's notebooks sorted by title.
func (s *NotebookService) ListNotebooks(ctx context.Context, ownerID int64) ([]entity.Notebook, error) {
	return s.Notebooks.ListByOwner(ctx, ownerID)
}

func (s *NotebookService) CreateNotebook(ctx context.Context, ownerID int64, title string) (*entity.Notebook, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalidInput("title is required")
	}
	nb := &entity.Notebook{Title: title, OwnerID: ownerID}
	if err := s.Notebooks.Create(ctx, nb); err != nil {
		helpers.LogError(s.Logger, "create notebook failed", err, logrus.Fields{"owner_id": ownerID})
		return nil, err
	}
	return nb, nil
}

func (s *NotebookService) GetNotebookDetail(ctx context.Context, ownerID, id int64) (*NotebookDetail, error) {
	nb, err := s.Notebooks.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, notFound(err)
	}
	notes, err := s.Notes.List(ctx, ownerID, &nb.ID)
	if err != nil {
		return nil, err
	}
	return &NotebookDetail{Notebook: *nb, Notes: notes}, nil
}

// DeleteNotebook removes the notebook and every note filed in it.
func (s *NotebookService) DeleteNotebook(ctx context.Context, ownerID, id int64) error {
	if err := s.Notebooks.Delete(ctx, ownerID, id); err != nil {
		return notFound(err)
	}
	helpers.LogInfo(s.Logger, "notebook deleted", logrus.Fields{"owner_id": ownerID, "notebook_id": id})
	return nil
}

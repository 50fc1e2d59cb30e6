package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
	"github.com/oksasatya/go-task-manager/pkg/response"
)

type NoteHandler struct {
	Svc    *application.NoteService
	Logger *logrus.Logger
}

func NewNoteHandler(svc *application.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

type createNoteRequest struct {
	Title      string     `json:"title" binding:"title"`
	Content    string     `json:"content"`
	Category   string     `json:"category" binding:"max=100"`
	Status     string     `json:"status"`
	Priority   *int       `json:"priority"`
	DueDate    *time.Time `json:"due_date"`
	NotebookID *int64     `json:"notebook_id"`
}

// updateNoteRequest keeps omitted fields distinct from explicit nulls for
// due_date and notebook_id.
type updateNoteRequest struct {
	Title      *string                     `json:"title" binding:"omitempty,max=255"`
	Content    *string                     `json:"content"`
	Category   *string                     `json:"category" binding:"omitempty,max=100"`
	Status     *string                     `json:"status"`
	Priority   *int                        `json:"priority"`
	DueDate    helpers.Optional[time.Time] `json:"due_date"`
	NotebookID helpers.Optional[int64]     `json:"notebook_id"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List GET /notes/?notebook_id=
func (h *NoteHandler) List(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	var notebookID *int64
	if raw := c.Query("notebook_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, "invalid notebook_id", nil)
			return
		}
		notebookID = &id
	}
	notes, err := h.Svc.ListNotes(c.Request.Context(), me.ID, notebookID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toNoteViews(notes), "notes", nil)
}

// Create POST /notes/
func (h *NoteHandler) Create(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	n, err := h.Svc.CreateNote(c.Request.Context(), me.ID, application.CreateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Status:     req.Status,
		Priority:   req.Priority,
		DueDate:    req.DueDate,
		NotebookID: req.NotebookID,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toNoteView(n), "note created", nil)
}

// Update PUT /notes/:id
func (h *NoteHandler) Update(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req updateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	n, err := h.Svc.UpdateNote(c.Request.Context(), me.ID, id, application.UpdateNoteInput{
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Status:     req.Status,
		Priority:   req.Priority,
		DueDate:    req.DueDate,
		NotebookID: req.NotebookID,
	})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toNoteView(n), "note updated", nil)
}

// UpdateStatus PUT /notes/:id/status
func (h *NoteHandler) UpdateStatus(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	n, err := h.Svc.UpdateStatus(c.Request.Context(), me.ID, id, req.Status)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toNoteView(n), "status updated", nil)
}

// Delete DELETE /notes/:id
func (h *NoteHandler) Delete(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteNote(c.Request.Context(), me.ID, id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true, "id": id}, "note deleted", nil)
}

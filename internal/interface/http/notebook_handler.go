package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/pkg/response"
)

type NotebookHandler struct {
	Svc    *application.NotebookService
	Logger *logrus.Logger
}

func NewNotebookHandler(svc *application.NotebookService, logger *logrus.Logger) *NotebookHandler {
	return &NotebookHandler{Svc: svc, Logger: logger}
}

type createNotebookRequest struct {
	Title string `json:"title" binding:"title"`
}

// List GET /notebooks/
func (h *NotebookHandler) List(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	notebooks, err := h.Svc.ListNotebooks(c.Request.Context(), me.ID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	out := make([]notebookView, 0, len(notebooks))
	for i := range notebooks {
		out = append(out, toNotebookView(&notebooks[i]))
	}
	response.Success(c, http.StatusOK, out, "notebooks", nil)
}

// Create POST /notebooks/
func (h *NotebookHandler) Create(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	var req createNotebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	nb, err := h.Svc.CreateNotebook(c.Request.Context(), me.ID, req.Title)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toNotebookView(nb), "notebook created", nil)
}

// Detail GET /notebooks/:id/
func (h *NotebookHandler) Detail(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	d, err := h.Svc.GetNotebookDetail(c.Request.Context(), me.ID, id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toNotebookDetailView(d), "notebook", nil)
}

// Delete DELETE /notebooks/:id/
func (h *NotebookHandler) Delete(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteNotebook(c.Request.Context(), me.ID, id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true, "id": id}, "notebook deleted", nil)
}

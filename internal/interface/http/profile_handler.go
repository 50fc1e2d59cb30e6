package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/pkg/response"
)

const maxAvatarBytes = 5 << 20

type ProfileHandler struct {
	Svc    *application.ProfileService
	Logger *logrus.Logger
}

func NewProfileHandler(svc *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Logger: logger}
}

// updateProfileRequest only carries the username; other fields in the body are ignored.
type updateProfileRequest struct {
	Username *string `json:"username" binding:"omitempty,max=50"`
}

// GetProfile GET /me
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	u, err := h.Svc.GetProfile(c.Request.Context(), me.ID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "profile", nil)
}

// UpdateProfile PUT /me
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), me.ID, application.UpdateProfileInput{Username: req.Username})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "profile updated", nil)
}

// UploadAvatar PUT /me/avatar (multipart field "file")
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "is required"})
		return
	}
	if fh.Size > maxAvatarBytes {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"file": "must be at most 5MB"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	u, err := h.Svc.UploadAvatar(c.Request.Context(), me.ID, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "avatar updated", nil)
}

// DeleteAccount DELETE /me
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	me, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteAccount(c.Request.Context(), me.ID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "account deleted", nil)
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/pkg/response"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"pwd"`
}

// tokenRequest accepts the OAuth2 password form (username holds the email)
// or a JSON body using either username or email.
type tokenRequest struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password" binding:"pwd"`
}

// Register POST /users/
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserView(u), "user registered", nil)
}

// Token POST /token answers with a bare OAuth2 token body, not the envelope,
// so password-grant clients can read access_token at the top level.
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBind(&req); err != nil {
		writeBindError(c, err)
		return
	}
	email := req.Username
	if email == "" {
		email = req.Email
	}
	if email == "" {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", map[string]string{"username": "is required"})
		return
	}
	tok, err := h.Svc.Login(c.Request.Context(), email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(http.StatusOK, tokenView{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   int64(time.Until(tok.ExpiresAt).Round(time.Second) / time.Second),
		ExpiresAt:   tok.ExpiresAt,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
	"github.com/oksasatya/go-task-manager/pkg/response"
	"github.com/oksasatya/go-task-manager/pkg/validation"
)

// statusFor maps application errors to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, application.ErrDuplicateEmail):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, application.ErrUsernameTaken):
		return http.StatusConflict, "username already taken"
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized, "incorrect email or password"
	case errors.Is(err, application.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, application.ErrInvalidToken):
		return http.StatusUnauthorized, "could not validate credentials"
	case errors.Is(err, application.ErrUserNotFound):
		return http.StatusUnauthorized, "user not found"
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, application.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "avatar storage is not configured"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status, msg := statusFor(err)
	if status == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	if status == http.StatusInternalServerError {
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.FullPath(),
		})
	}
	response.Error[any](c, status, msg, nil)
}

func writeBindError(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}

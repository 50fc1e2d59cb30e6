package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-task-manager/internal/application"
	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/pkg/helpers"
	"github.com/oksasatya/go-task-manager/pkg/response"
)

const (
	CtxUserKey   = "user"
	CtxUserIDKey = "userID"
)

// TokenResolver turns a bearer token into the user it was issued to.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*entity.User, error)
}

// Auth requires an "Authorization: Bearer <token>" header and stores the
// resolved user in the Gin context under CtxUserKey.
// Failures other than a bad token or a missing user are logged and answered with 500.
func Auth(resolver TokenResolver, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "not authenticated")
			return
		}
		u, err := resolver.Resolve(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, application.ErrTokenExpired):
			unauthorized(c, "token expired")
			return
		case errors.Is(err, application.ErrInvalidToken):
			unauthorized(c, "could not validate credentials")
			return
		case errors.Is(err, application.ErrUserNotFound):
			unauthorized(c, "user not found")
			return
		default:
			helpers.LogError(logger, "resolve bearer token failed", err, logrus.Fields{
				"request_id": c.GetString(CtxRequestIDKey),
				"path":       c.FullPath(),
			})
			response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
			return
		}
		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth, or nil on public routes.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	response.Error[any](c, http.StatusUnauthorized, msg, nil)
}

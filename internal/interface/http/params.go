package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-task-manager/internal/domain/entity"
	"github.com/oksasatya/go-task-manager/internal/interface/middleware"
	"github.com/oksasatya/go-task-manager/pkg/response"
)

// idParam parses a positive integer path parameter, writing a 400 on failure.
func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated caller, writing a 401 when the route was not guarded.
func currentUser(c *gin.Context) (*entity.User, bool) {
	u := middleware.CurrentUser(c)
	if u == nil {
		c.Header("WWW-Authenticate", "Bearer")
		response.Error[any](c, http.StatusUnauthorized, "not authenticated", nil)
		return nil, false
	}
	return u, true
}

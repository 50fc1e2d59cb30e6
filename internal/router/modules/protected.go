package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-task-manager/internal/interface/middleware"
)

// protected returns a group behind the bearer guard with a soft per-user limit.
func protected(rg *gin.RouterGroup, auth gin.HandlerFunc, rdb *redis.Client) *gin.RouterGroup {
	g := rg.Group("/")
	g.Use(auth, middleware.RateLimit(rdb, 300, time.Minute, middleware.KeyByUserID(), nil))
	return g
}

package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-task-manager/internal/interface/http"
)

type NotebookModule struct {
	Handler *handlers.NotebookHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
}

func NewNotebookModule(h *handlers.NotebookHandler, auth gin.HandlerFunc, rdb *redis.Client) *NotebookModule {
	return &NotebookModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *NotebookModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, m.Auth, m.Redis)
	{
		g.GET("/notebooks/", m.Handler.List)
		g.POST("/notebooks/", m.Handler.Create)
		g.GET("/notebooks/:id/", m.Handler.Detail)
		g.DELETE("/notebooks/:id/", m.Handler.Delete)
	}
}

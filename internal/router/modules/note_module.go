package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-task-manager/internal/interface/http"
)

type NoteModule struct {
	Handler *handlers.NoteHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
}

func NewNoteModule(h *handlers.NoteHandler, auth gin.HandlerFunc, rdb *redis.Client) *NoteModule {
	return &NoteModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *NoteModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, m.Auth, m.Redis)
	{
		g.GET("/notes/", m.Handler.List)
		g.POST("/notes/", m.Handler.Create)
		g.PUT("/notes/:id", m.Handler.Update)
		g.PUT("/notes/:id/status", m.Handler.UpdateStatus)
		g.DELETE("/notes/:id", m.Handler.Delete)
	}
}

package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-task-manager/internal/interface/http"
)

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	Auth    gin.HandlerFunc
	Redis   *redis.Client
}

func NewProfileModule(h *handlers.ProfileHandler, auth gin.HandlerFunc, rdb *redis.Client) *ProfileModule {
	return &ProfileModule{Handler: h, Auth: auth, Redis: rdb}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	g := protected(rg, m.Auth, m.Redis)
	{
		g.GET("/me", m.Handler.GetProfile)
		g.PUT("/me", m.Handler.UpdateProfile)
		g.DELETE("/me", m.Handler.DeleteAccount)
		g.PUT("/me/avatar", m.Handler.UploadAvatar)
	}
}

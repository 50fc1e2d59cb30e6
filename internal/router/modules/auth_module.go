package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-task-manager/internal/interface/http"
	"github.com/oksasatya/go-task-manager/internal/interface/middleware"
)

// AuthModule exposes the two public routes: POST /users/ and POST /token.
type AuthModule struct {
	Handler        *handlers.AuthHandler
	Redis          *redis.Client
	LoginPerMin    int
	RegisterPerMin int
}

func NewAuthModule(h *handlers.AuthHandler, rdb *redis.Client, loginPerMin, registerPerMin int) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb, LoginPerMin: loginPerMin, RegisterPerMin: registerPerMin}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(m.Redis, m.RegisterPerMin, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(m.Redis, m.LoginPerMin, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/users/", registerLimiter, m.Handler.Register)
	rg.POST("/token", loginLimiter, m.Handler.Token)
}

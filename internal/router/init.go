package router

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-task-manager/internal/container"
	handlers "github.com/oksasatya/go-task-manager/internal/interface/http"
	"github.com/oksasatya/go-task-manager/internal/interface/middleware"
	"github.com/oksasatya/go-task-manager/internal/router/modules"
	"github.com/oksasatya/go-task-manager/pkg/validation"
)

// InitModules wires every feature module from the container.
// It should be called once during application startup.
func InitModules(r *Registry, c *container.Container) {
	auth := middleware.Auth(c.Auth, c.Logger)

	r.Add(modules.NewAuthModule(
		handlers.NewAuthHandler(c.Auth, c.Logger),
		c.Redis,
		c.Config.RateLimitLoginPerMin,
		c.Config.RateLimitRegisterPerMin,
	))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(c.Profile, c.Logger), auth, c.Redis))
	r.Add(modules.NewNoteModule(handlers.NewNoteHandler(c.Notes, c.Logger), auth, c.Redis))
	r.Add(modules.NewNotebookModule(handlers.NewNotebookHandler(c.Notebooks, c.Logger), auth, c.Redis))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}

// NewEngine builds the gin engine with global middleware and all modules registered.
func NewEngine(c *container.Container) (*gin.Engine, error) {
	validation.Init()

	engine := gin.New()
	// An empty list trusts no peer; forwarding headers are then ignored.
	if err := engine.SetTrustedProxies(c.Config.TrustedProxyList()); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	engine.TrustedPlatform = c.Config.TrustedPlatform
	engine.Use(gin.Recovery())
	engine.Use(cors.New(corsConfig(c.Config.CORSOrigins())))

	reg := NewRegistry(engine)
	reg.Use(middleware.RequestIDMiddleware(), middleware.RealIP())
	if c.Config.HTTPLogEnabled {
		reg.Use(middleware.AccessLog(c.Logger))
	}
	InitModules(reg, c)
	reg.RegisterAll()
	return engine, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

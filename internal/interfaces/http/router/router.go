package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/opsportal/backend/internal/infrastructure/auth"
	"github.com/opsportal/backend/internal/infrastructure/logger"
	"github.com/opsportal/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar registers a handler's routes on a router group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config holds router configuration
type Config struct {
	// JWTService guards the API when set; nil leaves routes open,
	// which is only sensible in tests
	JWTService *auth.JWTService
	Logger     *zap.Logger
	CORS       *middleware.CORSConfig
}

// Router assembles the HTTP API
type Router struct {
	engine     *gin.Engine
	registrars []RouteRegistrar
}

// New creates a router with the standard middleware chain. Custom
// binding tags are registered here so query and body validation works
// for every route the router serves.
func New(cfg Config) *Router {
	middleware.SetupValidator()
	engine := gin.New()

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	if cfg.CORS != nil {
		engine.Use(middleware.CORSWithConfig(*cfg.CORS))
	} else {
		engine.Use(middleware.CORS())
	}
	if cfg.JWTService != nil {
		jwtCfg := middleware.DefaultJWTConfig(cfg.JWTService)
		jwtCfg.Logger = log
		engine.Use(middleware.JWTAuthWithConfig(jwtCfg))
	}

	return &Router{engine: engine}
}

// Register adds a handler's routes to the API
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrars...)
	return r
}

// Engine builds the route table and returns the underlying engine
func (r *Router) Engine() *gin.Engine {
	api := r.engine.Group("/api/v1")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
	return r.engine
}

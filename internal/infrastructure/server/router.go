package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/photolog-dev/photolog-backend/internal/adapter/handler"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine       *gin.Engine
	authHandler  *handler.AuthHandler
	feedHandler  *handler.FeedHandler
	adminHandler *handler.AdminHandler
	logger       *zap.Logger
}

type RouterConfig struct {
	AuthHandler    *handler.AuthHandler
	FeedHandler    *handler.FeedHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Logger         *zap.Logger
	Environment    string

	// UnavailableReason, when non-empty, replaces every API route with a 503
	// carrying the reason. Health stays up so the condition is observable.
	UnavailableReason string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:       engine,
		authHandler:  cfg.AuthHandler,
		feedHandler:  cfg.FeedHandler,
		adminHandler: cfg.AdminHandler,
		logger:       cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes(cfg)

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
}

func (r *Router) setupRoutes(cfg RouterConfig) {
	r.engine.GET("/health", func(c *gin.Context) {
		if cfg.UnavailableReason != "" {
			c.JSON(503, gin.H{"status": "unavailable", "reason": cfg.UnavailableReason})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")

	if cfg.UnavailableReason != "" {
		api.Any("/*any", middleware.Unavailable(cfg.UnavailableReason))
		return
	}

	photos := api.Group("/photos")
	if cfg.RateLimiter != nil {
		photos.Use(cfg.RateLimiter.Limit())
	}
	{
		photos.GET("", r.feedHandler.List)
	}

	auth := api.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
	}

	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/photos", r.adminHandler.List)
		admin.POST("/photos", r.adminHandler.Upload)
		admin.PUT("/photos/:id", r.adminHandler.Update)
		admin.DELETE("/photos/:id", r.adminHandler.SoftDelete)
		admin.POST("/photos/:id/restore", r.adminHandler.Restore)
		admin.DELETE("/photos/:id/permanent", r.adminHandler.PermanentDelete)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

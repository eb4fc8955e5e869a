package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/photolog-dev/photolog-backend/internal/adapter/handler"
	"github.com/photolog-dev/photolog-backend/internal/adapter/repository/postgres"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/auth"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/cache"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/config"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/database"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/middleware"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/observability"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/server"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/storage"
	authUC "github.com/photolog-dev/photolog-backend/internal/usecase/auth"
	"github.com/photolog-dev/photolog-backend/internal/usecase/gallery"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	routerCfg := server.RouterConfig{
		Logger:      logger,
		Environment: cfg.Server.Environment,
	}

	// Missing backend configuration degrades the API to a persistent
	// unavailable state instead of crash-looping the process.
	if err := cfg.Validate(); err != nil {
		logger.Warn("starting unavailable", zap.Error(err))
		routerCfg.UnavailableReason = err.Error()
	} else {
		pool, err := database.NewPostgresPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := database.RunMigrations(ctx, pool, "migrations"); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}

		// Repositories
		photoRepo := postgres.NewPhotoRepo(pool)
		adminRepo := postgres.NewAdminRepo(pool)

		// Infrastructure services
		jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
		passwordHasher := auth.NewPasswordHasher(12)

		s3Storage, err := storage.NewS3Storage(cfg.S3)
		if err != nil {
			logger.Fatal("failed to create s3 storage", zap.Error(err))
		}

		// Use cases
		authSvc := authUC.NewService(adminRepo, jwtSvc, passwordHasher)
		gallerySvc := gallery.NewService(photoRepo, s3Storage)

		if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
			if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
				logger.Fatal("failed to seed admin", zap.Error(err))
			}
		}

		// Handlers
		routerCfg.AuthHandler = handler.NewAuthHandler(authSvc)
		routerCfg.FeedHandler = handler.NewFeedHandler(gallerySvc)
		routerCfg.AdminHandler = handler.NewAdminHandler(gallerySvc)
		routerCfg.AuthMiddleware = middleware.NewAuthMiddleware(jwtSvc, adminRepo)

		if cfg.RateLimit.Enabled {
			redisClient, err := cache.NewRedisClient(cfg.Redis)
			if err != nil {
				logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
			} else {
				defer redisClient.Close()
				routerCfg.RateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
			}
		}
	}

	router := server.NewRouter(routerCfg)

	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

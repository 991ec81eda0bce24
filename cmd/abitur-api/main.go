package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/abitur-api/api/swagger"
	"github.com/noah-isme/abitur-api/internal/handler"
	"github.com/noah-isme/abitur-api/internal/middleware"
	"github.com/noah-isme/abitur-api/internal/repository"
	"github.com/noah-isme/abitur-api/internal/service"
	"github.com/noah-isme/abitur-api/pkg/cache"
	"github.com/noah-isme/abitur-api/pkg/config"
	"github.com/noah-isme/abitur-api/pkg/database"
	"github.com/noah-isme/abitur-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/abitur-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/abitur-api/pkg/middleware/requestid"
)

// @title Abitur API
// @version 1.0.0
// @description Evaluates Abitur course selections and stores worksheets
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := service.NewMetricsService()
	validate := validator.New()
	evaluations := service.NewEvaluationService(validate, metrics, logr)
	exports := service.NewExportService(service.ExportConfig{
		Title:          cfg.Export.Title,
		FilenamePrefix: cfg.Export.FilenamePrefix,
	}, logr, nil, nil)

	checks := map[string]handler.ReadinessCheck{}
	deps := routeDeps{
		catalog:     handler.NewCatalogHandler(),
		evaluations: handler.NewEvaluationHandler(evaluations, exports),
	}

	if cfg.Worksheets.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			cancel()
			logr.Fatal("failed to connect to postgres", zap.Error(err))
		}
		defer db.Close()
		if err := database.RunMigrations(db.DB, logr); err != nil {
			cancel()
			logr.Fatal("failed to migrate database", zap.Error(err))
		}
		checks["postgres"] = db.PingContext

		var cacheRepo service.CacheRepository
		if cfg.Worksheets.CacheEnabled {
			client, err := cache.NewRedis(ctx, cfg.Redis)
			if err != nil {
				logr.Warn("redis unavailable, worksheet cache disabled", zap.Error(err))
			} else {
				redisRepo := repository.NewCacheRepository(client, "abitur")
				defer redisRepo.Close() //nolint:errcheck
				cacheRepo = redisRepo
				checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
			}
		}
		cancel()

		cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Worksheets.CacheTTL, logr, cacheRepo != nil)
		tokens := service.NewTokenService(service.TokenConfig{
			Secret: cfg.JWT.Secret,
			Expiry: cfg.JWT.Expiration,
			Issuer: cfg.JWT.Issuer,
		})
		worksheets := service.NewWorksheetService(repository.NewWorksheetRepository(db), cacheSvc, tokens, evaluations, exports, validate, metrics, logr, cfg.Worksheets.CacheTTL)
		deps.worksheets = handler.NewWorksheetHandler(worksheets)
		deps.tokens = tokens
	}
	deps.metrics = handler.NewMetricsHandler(metrics, checks)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))
	registerRoutes(r, cfg, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "worksheets", cfg.Worksheets.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}

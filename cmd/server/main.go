package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"riskprofile/internal/asset"
	"riskprofile/internal/cache"
	"riskprofile/internal/config"
	"riskprofile/internal/render"
	"riskprofile/internal/repository"
	"riskprofile/internal/service"
	"riskprofile/internal/transport/rest"
)

// @title Risk Profile API
// @version 1.0
// @description Risk tolerance and capacity questionnaire scoring and PDF reports
// @host localhost:8080
// @BasePath /v1
func main() {
	cfg := config.Load()

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	authSvc := service.NewAuthService(cfg.AdvisorUsername, cfg.AdvisorPassword, cfg.JWTSecret)
	assessmentSvc := service.NewAssessmentService(logger)

	var (
		resolver asset.Resolver
		assetSvc *service.AssetService
	)

	if cfg.UsesStore() {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		defer mongoClient.Disconnect(ctx)

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := mongoClient.Ping(pingCtx, nil); err != nil {
			logger.Fatal("Failed to ping MongoDB", zap.Error(err))
		}
		logger.Info("Connected to MongoDB", zap.String("db", cfg.MongoDB))

		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		defer rdb.Close()

		if _, err := rdb.Ping(ctx).Result(); err != nil {
			logger.Fatal("Failed to ping Redis", zap.Error(err))
		}
		logger.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))

		assetRepo := repository.NewAssetRepo(mongoClient.Database(cfg.MongoDB))
		assetCache := cache.NewAssetCache(rdb, cfg.AssetCacheTTL)
		assetSvc = service.NewAssetService(assetRepo, assetCache, logger)
		resolver = assetSvc.Resolver()
	} else {
		resolver = asset.NewDirResolver(cfg.AssetDir)
		logger.Info("Resolving assets from directory", zap.String("dir", cfg.AssetDir))
	}

	renderer := render.New(resolver, render.WithLogger(logger))
	reportSvc := service.NewReportService(assessmentSvc, renderer, logger)

	container := &rest.Container{
		AuthService:       authSvc,
		AssessmentService: assessmentSvc,
		ReportService:     reportSvc,
		AssetService:      assetSvc,
		Logger:            logger,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.HTTPPort), zap.String("assets", cfg.AssetSource))
		logger.Info("Endpoints",
			zap.Strings("routes", []string{
				"GET  /v1/questionnaire",
				"POST /v1/assessments/{section}/score",
				"POST /v1/assessments",
				"POST /v1/reports",
				"POST /v1/auth/login",
				"PUT  /v1/assets/{key}",
			}))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"riskprofile/internal/config"
	"riskprofile/internal/report"
	"riskprofile/internal/repository"
	"riskprofile/internal/service"
)

// seed uploads the pre-rendered summary chart into the GridFS asset store.
//
//	seed path/to/box_whisker_summary.png
func main() {
	cfg := config.Load()
	logger, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	path := report.ChartAssetKey + ".png"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("Failed to read chart", zap.String("path", path), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)

	assetRepo := repository.NewAssetRepo(client.Database(cfg.MongoDB))
	assetSvc := service.NewAssetService(assetRepo, nil, logger)

	if err := assetSvc.Upload(ctx, report.ChartAssetKey, data); err != nil {
		logger.Fatal("Failed to store chart", zap.Error(err))
	}

	fmt.Printf("Stored asset '%s' from %s in database '%s'\n", report.ChartAssetKey, path, cfg.MongoDB)
}

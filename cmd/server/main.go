package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"housinglake/server/config"
	"housinglake/server/internal/alerts"
	"housinglake/server/internal/api"
	"housinglake/server/internal/database"
	"housinglake/server/internal/pipeline"
	"housinglake/server/internal/processor"
	"housinglake/server/internal/queue"
	"housinglake/server/internal/snapshot"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Server.DBPath), 0o755); err != nil {
		logger.WithError(err).Fatal("Failed to create database directory")
	}

	db, err := database.NewDatabase(cfg.Server.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	ledger, err := database.OpenLedger(cfg.Server.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open seen-listing ledger")
	}
	if err := database.MigrateLedger(ledger); err != nil {
		logger.WithError(err).Fatal("Failed to migrate seen-listing ledger")
	}

	listingQueue := queue.NewListingQueue(cfg.BatchProcessing.MaxBatchSize, logger)
	listingQueue.Start()
	defer listingQueue.Close()

	batchProcessor := processor.NewBatchProcessor(ledger, listingQueue, cfg, logger)
	batchProcessor.Start()
	defer batchProcessor.Stop()

	store := snapshot.NewStore(cfg.Server.DataPath, logger)
	pipe := pipeline.New(store, logger)

	notifier := alerts.NewNotifier(cfg.Alerts.TelegramBotToken, logger)
	checker := alerts.NewChecker(
		pipe, db, ledger, listingQueue, notifier,
		time.Duration(cfg.Alerts.CheckInterval)*time.Second, logger,
	)
	checker.Start()
	defer checker.Stop()

	router := gin.Default()
	router.Use(cors.Default())

	handler := api.NewHandler(pipe, db, logger)
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shop_service/config"
	"shop_service/internal/delivery"
	grpcdelivery "shop_service/internal/delivery/grpc"
	"shop_service/internal/repository"
	"shop_service/internal/usecase"
	"shop_service/pkg/db"

	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env-file", config.DefaultEnvFile, "optional key=value file with settings")
	flag.Parse()

	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	//  Configuration and Logging Setup
	cfg, err := config.Load(*envFile)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}
	logger.SetLevel(cfg.Level())
	logger.Infof("Starting %s...", cfg.AppName)
	logger.Infof("Configuration loaded: HTTP Port=%s, gRPC Port=%s, LogLevel=%s, CORS=%v", cfg.HTTPPort, cfg.GrpcPort, cfg.LogLevel, cfg.CorsOrigins)
	if cfg.Debug {
		logger.Warn("DEBUG is enabled; internal error details are returned to clients")
	}

	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		logger.Fatalf("Failed to prepare images directory %s: %v", cfg.ImagesDir, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	if cfg.AutoMigrate {
		if err := db.Migrate(database, logger); err != nil {
			logger.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// --- Dependency Injection ---
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	productRepo := repository.NewPostgresProductRepository(database, logger)

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	cartUseCase := usecase.NewCartUseCase(productRepo, logger)

	router := delivery.NewRouter(cfg, logger, database,
		delivery.NewCategoryHandler(categoryUseCase, logger),
		delivery.NewProductHandler(productUseCase, logger),
		delivery.NewCartHandler(cartUseCase, logger),
	)
	logger.Info("API Routes registered.")

	// --- gRPC health ---
	healthServer := grpcdelivery.NewHealthServer(database, 10*time.Second, logger)
	grpcListener, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on gRPC port %s: %v", cfg.GrpcPort, err)
	}
	go healthServer.Watch(ctx)
	go func() {
		if err := healthServer.Serve(grpcListener); err != nil {
			logger.Errorf("gRPC health server stopped: %v", err)
		}
	}()

	//  Start Server
	srv := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Starting server on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("HTTP server shutdown failed: %v", err)
	}
	healthServer.Stop()
	logger.Info("Shutdown complete.")
}

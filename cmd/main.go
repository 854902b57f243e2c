package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/auladigital/backend/docs"
	"github.com/auladigital/backend/internal/config"
	"github.com/auladigital/backend/internal/database"
	"github.com/auladigital/backend/internal/handlers"
	"github.com/auladigital/backend/internal/logger"
	"github.com/auladigital/backend/internal/middlewares"
	"github.com/auladigital/backend/internal/repositories"
	"github.com/auladigital/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// The API is read-only; requests carry no bodies worth speaking of
const maxRequestSize = 1 * 1024 * 1024 // 1MB

// @title Aula.Digital Content API
// @version 1.0
// @description Read-only API serving learning modules and their activities
// @contact.name API Support

// @host localhost:8080
// @BasePath /api
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Aula.Digital content service")

	// The store is not opened here: the first repository call performs the
	// one-time open, schema creation and seed
	store := database.New(database.StorePath)

	// Initialize repositories
	moduleRepo := repositories.NewModuleRepository(store)
	activityRepo := repositories.NewActivityRepository(store)

	// Initialize services
	moduleService := services.NewModuleService(moduleRepo, activityRepo)

	// Initialize handlers
	moduleHandler := handlers.NewModuleHandler(moduleService, logger.Logger)
	pageHandler, err := handlers.NewPageHandler(moduleService, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize page handler", zap.Error(err))
	}

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(middlewares.LoggerMiddleware(logger.Logger))
	r.Use(middlewares.RecoveryMiddleware(logger.Logger))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// JSON API
	r.Route("/api", func(r chi.Router) {
		moduleHandler.RegisterRoutes(r)
	})

	// Rendered pages
	pageHandler.RegisterRoutes(r)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

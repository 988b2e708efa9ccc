package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kottakkal/traffic-backend/internal/delivery/http"
	"github.com/kottakkal/traffic-backend/internal/domain"
	filestore "github.com/kottakkal/traffic-backend/internal/repository/file"
	"github.com/kottakkal/traffic-backend/internal/repository/postgres"
	"github.com/kottakkal/traffic-backend/internal/service"
	"github.com/kottakkal/traffic-backend/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()
	log := logger.New(cfg.LogLevel)

	// Report repository: PostgreSQL when configured, file store otherwise
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo := buildRepository(ctx, cfg, log)

	// Static registry and services
	registry := domain.NewRegistry()
	baseline := filestore.NewBaselineStore(cfg.DataDir, log)

	trafficSvc := service.NewTrafficService(registry, nil, log)
	routeSvc := service.NewRouteService(log)
	reportSvc := service.NewReportService(repo, registry, log)
	analyticsSvc := service.NewAnalyticsService(trafficSvc, reportSvc, baseline, registry, log)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Kottakkal Traffic API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	handler := http.NewHandler(trafficSvc, routeSvc, reportSvc, analyticsSvc, repo, log)
	http.SetupRoutes(app, handler)

	go func() {
		log.Infof("Server starting on :%s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exited gracefully")
}

// buildRepository connects to PostgreSQL when DATABASE_URL is set and falls
// back to the JSON file store otherwise or on connection failure.
func buildRepository(ctx context.Context, cfg *Config, log *logrus.Logger) service.ReportRepository {
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			repo, schemaErr := postgres.NewReportRepository(ctx, pool)
			if schemaErr == nil {
				log.Info("Connected to PostgreSQL report store")
				return repo
			}
			err = schemaErr
			pool.Close()
		}
		log.WithError(err).Warn("Could not use PostgreSQL, falling back to file store")
	}

	store, err := filestore.NewReportStore(cfg.DataDir, log)
	if err != nil {
		log.Fatalf("Failed to initialize file report store: %v", err)
	}
	log.Infof("Using file report store in %s", cfg.DataDir)
	return store
}

type Config struct {
	DatabaseURL string
	DataDir     string
	Port        string
	LogLevel    string
	Env         string
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DataDir:     getEnv("DATA_DIR", "data"),
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Env:         getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}

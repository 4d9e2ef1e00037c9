package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/Disha-01-alt/PollutionBackend/internal/delivery/http"
	"github.com/Disha-01-alt/PollutionBackend/internal/domain"
	"github.com/Disha-01-alt/PollutionBackend/internal/observability"
	"github.com/Disha-01-alt/PollutionBackend/internal/repository/file"
	"github.com/Disha-01-alt/PollutionBackend/internal/repository/postgres"
	"github.com/Disha-01-alt/PollutionBackend/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg := loadConfig()

	// Dependency Injection: Repository
	// PostgreSQL when configured and reachable, JSON file otherwise.
	var datasetRepo domain.DatasetRepository
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err == nil {
			err = pool.Ping(ctx)
		}
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			log.Printf("Serving dataset from %s", cfg.DataFile)
		} else {
			defer pool.Close()
			log.Println("Connected to PostgreSQL")
			datasetRepo = postgres.NewRepository(pool)
		}
	}
	if datasetRepo == nil {
		datasetRepo = file.NewRepository(cfg.DataFile)
	}

	// Dependency Injection: Services
	metrics := observability.NewMetrics()
	pollutionSvc := service.NewPollutionService(datasetRepo, metrics)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "EcoMonitor API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, pollutionSvc, metrics)

	// Graceful shutdown
	go func() {
		port := cfg.Port
		if port == "" {
			port = "5000"
		}
		log.Printf("Server starting on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited gracefully")
}

type Config struct {
	DataFile    string
	DatabaseURL string
	Port        string
	Env         string
}

func loadConfig() *Config {
	return &Config{
		DataFile:    getEnv("DATA_FILE", "data/pollution_data.json"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func customErrorHandler(c *fiber.Ctx, err error) error {
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

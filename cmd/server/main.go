package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rosvend/REST-Api-NoSQL/internal/config"
	"github.com/Rosvend/REST-Api-NoSQL/internal/database"
	"github.com/Rosvend/REST-Api-NoSQL/internal/handlers"
	"github.com/Rosvend/REST-Api-NoSQL/internal/logging"
	"github.com/Rosvend/REST-Api-NoSQL/internal/middleware"
	"github.com/Rosvend/REST-Api-NoSQL/internal/scheduler"
	"github.com/ansrivas/fiberprometheus/v2"

	_ "github.com/Rosvend/REST-Api-NoSQL/docs/api" // Swagger docs
)

// @title Medicamentos y Compuestos API
// @version 1.0.0
// @description Catalog of medicamentos, compuestos and the concentration of each compuesto in each medicamento
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/Rosvend/REST-Api-NoSQL

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:8000
// @BasePath /api
// @schemes http https

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Connect to the store and prepare its schema
	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	store, closeStore, err := database.OpenStore(connectCtx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to open store", "db_type", cfg.DBType, "error", err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRate, cfg.RateLimitCapacity)

	// Create Fiber app
	app := handlers.NewApp(cfg, log)

	// Prometheus metrics
	prometheus := fiberprometheus.New("medicamentos")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	handlers.RegisterRoutes(app, handlers.Deps{
		Config:  cfg,
		Store:   store,
		Limiter: limiter,
		Log:     log,
	})

	// Background jobs
	jobs := scheduler.New(store.Asociaciones, limiter, cfg.OrphanSweepInterval, log)
	if err := jobs.Start(); err != nil {
		log.Fatal("Failed to start scheduler", "error", err)
	}

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Warn("Shutdown did not complete cleanly", "error", err)
		}
	}()

	// Start server
	log.Info("Starting server", "port", cfg.Port, "db_type", store.Backend, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("Failed to start server", "error", err)
	}

	jobs.Stop()

	closeCtx, cancelClose := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelClose()
	if err := closeStore(closeCtx); err != nil {
		log.Warn("Failed to close store", "error", err)
	}

	log.Info("Server stopped")
}

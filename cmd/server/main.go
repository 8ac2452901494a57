package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/pricing"
	"carrental-backend/internal/repository"
	"carrental-backend/internal/repository/jsonfile"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/service"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		log.Fatalf("car rental backend: %v", err)
	}
}

func run(configPath string) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting car rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Pricing configuration", "locale", cfg.Pricing.Locale, "currency", cfg.Pricing.Currency)

	// Initialize Repositories
	var (
		cars       repository.CarRepository
		categories repository.CategoryRepository
	)
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		store := postgres.NewStore(db)
		defer store.Close()

		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to ping database: %w", err)
		}
		logger.Info("Database connection established")

		cars, categories = store.CarRepository, store.CategoryRepository
	case config.DataSourceJSON:
		store, err := jsonfile.New(cfg.Data.Dir)
		if err != nil {
			return fmt.Errorf("failed to load dataset from %s: %w", cfg.Data.Dir, err)
		}
		cars, categories = store, store
	default:
		return fmt.Errorf("unsupported data source: %s", cfg.Data.Source)
	}

	// Initialize Services
	formatter, err := pricing.NewFormatter(cfg.Pricing.Locale, cfg.Pricing.Currency)
	if err != nil {
		return fmt.Errorf("failed to build currency formatter: %w", err)
	}
	brackets, err := cfg.Pricing.Brackets()
	if err != nil {
		return fmt.Errorf("failed to read tax brackets: %w", err)
	}
	rentalSvc, err := service.NewRentalService(cars, service.Options{
		Formatter:   formatter,
		TaxBrackets: brackets,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize rental service: %w", err)
	}

	// Set up HTTP server
	router := mux.NewRouter()
	httpapi.RegisterRentalRoutes(router, httpapi.NewRentalHandler(rentalSvc, categories))

	srv := &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"mesero_server/api"
	"mesero_server/config"
	"mesero_server/database"
	"mesero_server/messaging"
	"mesero_server/structs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger and database
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if cfg.Storage.Backend != "memory" {
		if err := database.Initialize(); err != nil {
			logger.Fatal("Failed to initialize database", gecho.Field("error", err))
		}
	} else {
		logger.Info("Using in-memory storage backend, skipping database initialization")
	}
}

func main() {
	events, err := messaging.Connect(cfg.Events.URL, cfg.Events.Exchange, logger)
	if err != nil {
		logger.Warn("Event publisher unavailable, continuing without events", gecho.Field("error", err))
	}

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(events),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	// Setup graceful shutdown BEFORE starting the server
	setupGracefulShutdown(logger, srv, events)

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// setupGracefulShutdown sets up signal handling for graceful application shutdown
func setupGracefulShutdown(logger *gecho.Logger, srv *http.Server, events *messaging.Publisher) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown failed", gecho.Field("error", err))
		}

		events.Close()

		if err := database.CloseInstance(); err != nil {
			logger.Error("Failed to close database", gecho.Field("error", err))
		}
	}()
}

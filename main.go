package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"watchmarket_server/api"
	"watchmarket_server/config"
	"watchmarket_server/database"
	"watchmarket_server/services"
	"watchmarket_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

var logger *gecho.Logger
var cfg *structs.Config

// init function to load environment variables and initialize logger and storage
func init() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if err := database.Initialize(context.Background()); err != nil {
		logger.Fatal("Failed to initialize storage", gecho.Field("error", err), gecho.Field("backend", cfg.Storage.Backend))
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sm := services.NewServiceManager(logger, cfg, database.GetInstance())
	sm.Load(ctx)

	if err := sm.BrandService.Start(); err != nil {
		logger.Warn("Brand refresh disabled", gecho.Field("error", err))
	}

	srv := &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        api.App(sm, cfg),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", gecho.Field("error", err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")
	shutdown(srv, sm)
}

func shutdown(srv *http.Server, sm *services.ServiceManager) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", gecho.Field("error", err))
	}

	sm.BrandService.Stop()

	if err := database.CloseInstance(); err != nil {
		logger.Error("Failed to close storage", gecho.Field("error", err))
	}

	logger.Info("Shutdown complete")
}

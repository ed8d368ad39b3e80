package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"encuestas-api/configs"
	"encuestas-api/routes"
	"encuestas-api/store"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		configs.InitLogger(false)
		configs.Logger.WithError(err).Fatal("Invalid configuration")
	}

	configs.InitLogger(cfg.Production())
	logger := configs.LogWithContext("encuestas-api", "startup")
	logger.WithField("env", cfg.AppEnv).Info("Starting service")

	client, err := configs.ConnectDB(cfg.MongoURI)
	if err != nil {
		logger.WithError(err).Fatal("Database connection failed")
	}

	db := store.NewMongo(client, cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.EnsureIndexes(ctx); err != nil {
		cancel()
		logger.WithError(err).Fatal("Index creation failed")
	}
	cancel()

	router := routes.NewRouter(cfg, db.Respuestas, db.Usuarios, db)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("addr", cfg.Addr()).Info("Service started")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Stop the listener before closing the store connection, with a
	// bounded window for in-flight requests.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	exitCode := 0
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
		exitCode = 1
	}
	if err := configs.DisconnectDB(client); err != nil {
		logger.WithError(err).Error("Database disconnect failed")
		exitCode = 1
	}

	if exitCode == 0 {
		logger.Info("Server shutdown complete")
	}
	os.Exit(exitCode)
}

// @title           Inventory API
// @version         1.0
// @description     Inventory CRUD API with token auth.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"inventory/internal/app"
	"inventory/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	_ "inventory/docs"

	applogger "inventory/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, cleanup := applogger.New(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File)
	defer cleanup()
	zlog.Info("config loaded, connecting to DB and Redis")

	application, err := app.New(cfg, zlog)
	if err != nil {
		zlog.Fatal("app init", zap.Error(err))
	}
	zlog.Info("app ready, starting HTTP server")
	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.HTTP.Port,
		Handler:      application.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout.Duration(),
		WriteTimeout: cfg.HTTP.WriteTimeout.Duration(),
		IdleTimeout:  cfg.HTTP.IdleTimeout.Duration(),
	}

	go func() {
		zlog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("HTTP server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Error("shutdown", zap.Error(err))
	}

	if err := application.Close(ctx); err != nil {
		zlog.Error("close", zap.Error(err))
	}
	zlog.Info("stopped gracefully")
}

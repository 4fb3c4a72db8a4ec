package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/pkg/config"
	"github.com/FACorreiaa/geoglobe/internal/server"
	"github.com/FACorreiaa/geoglobe/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel, zap.String("service", "geoglobe"), zap.String("env", cfg.Env)); err != nil {
		return err
	}
	defer logger.Log.Sync()
	zl := logger.L()

	otelShutdown, err := server.InitObservability(cfg.Observability, zl)
	if err != nil {
		return err
	}
	defer func() {
		if err := otelShutdown(context.Background()); err != nil {
			zl.Error("Failed to shutdown OpenTelemetry", zap.Error(err))
		}
	}()

	srv := server.New(cfg, zl)

	router := server.SetupRouter(cfg, zl)
	if err := server.SetupAssets(router); err != nil {
		zl.Error("Failed to setup assets", zap.Error(err))
		return err
	}
	srv.SetRouter(router)

	servers := []*http.Server{srv.HTTPServer()}
	// pprof stays on a separate port, not exposed publicly
	if cfg.Observability.PprofAddr != "" {
		servers = append(servers, server.PprofServer(cfg.Observability.PprofAddr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, zl, servers...); err != nil {
		zl.Error("Server error", zap.Error(err))
		return err
	}

	zl.Info("Graceful shutdown complete")
	return nil
}

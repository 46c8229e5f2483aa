package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"showroom/internal/cli"
	apphttp "showroom/internal/http"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, cleanup := cli.InitStore(ctx, logger, cfg)

	srv := apphttp.NewServer(":"+cfg.Port, st, apphttp.Options{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})

	go func() {
		_, done := cli.GracefulShutdown(logger, 30*time.Second, func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Server shutdown error", "error", err)
			}
			if cleanup != nil {
				if err := cleanup(); err != nil {
					logger.Error("Backend cleanup error", "error", err)
				}
			}
		})
		<-done
		cancel()
	}()

	logger.Info("Starting showroom server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}

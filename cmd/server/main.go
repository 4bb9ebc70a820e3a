package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	userapp "user-collection-service/internal/application/user"
	"user-collection-service/internal/infrastructure/config"
	httpserver "user-collection-service/internal/infrastructure/http"
	"user-collection-service/internal/infrastructure/logger"
	"user-collection-service/internal/infrastructure/persistence/memory"
	mem_uow "user-collection-service/internal/infrastructure/persistence/memory/uow"
	"user-collection-service/internal/infrastructure/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve the in-memory user collection over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.MustLoad(v, configPath)
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (default ./config/config.yaml)")
	cmd.Flags().Int("port", 9000, "HTTP listen port")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(cfg.Env)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Error("Failed to set up tracing", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("Tracing shutdown error", slog.String("error", err.Error()))
		}
	}()

	store := memory.NewSeededStore()
	uow := mem_uow.NewMemoryUOW(store, log)
	userService := userapp.NewService(uow, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTPServer.Address, cfg.HTTPServer.Port)
	server := httpserver.NewServer(addr, cfg, log, userService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan error, 1)

	go func() {
		log.Info(fmt.Sprintf("Server running at http://localhost:%d", cfg.HTTPServer.Port))
		done <- server.Run()
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		return err
	case <-quit:
	}
	log.Info("Shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	log.Info("Server exited")
	return nil
}

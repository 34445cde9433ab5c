package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jstrand/tradelog/internal/api"
	"github.com/jstrand/tradelog/internal/config"
	"github.com/jstrand/tradelog/internal/logger"
	"github.com/jstrand/tradelog/internal/metrics"
	"github.com/jstrand/tradelog/internal/storage/archive"
	"github.com/jstrand/tradelog/internal/storage/trade"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the journal server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	// Initialize logger
	log := logger.Must(debug)
	defer log.Sync()

	// Load config
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
		log.Warn("no config file specified, using defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	arch, err := newArchive(cfg)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}

	reg := metrics.NewRegistry()
	store := trade.NewMemoryStore()

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	log.Info("starting tradelog server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("archive", cfg.Archive.Type),
	)

	server := api.NewServer(api.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		APIKey:      cfg.Server.APIKey,
		MetricsPath: metricsPath,
	}, store, arch, reg, log)

	// Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Error("server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down tradelog server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

func newArchive(cfg *config.Config) (archive.Storage, error) {
	switch cfg.Archive.Type {
	case "s3":
		return archive.NewS3(archive.S3Config{
			Bucket:    cfg.Archive.S3.Bucket,
			Endpoint:  cfg.Archive.S3.Endpoint,
			Region:    cfg.Archive.S3.Region,
			AccessKey: cfg.Archive.S3.AccessKey,
			SecretKey: cfg.Archive.S3.SecretKey,
			Prefix:    cfg.Archive.S3.Prefix,
		})
	default:
		return archive.NewLocalFS(cfg.Archive.Path)
	}
}

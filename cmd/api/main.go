package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-rental-engine/internal/api/middleware"
	"github.com/feral-file/ff-rental-engine/internal/api/server"
	"github.com/feral-file/ff-rental-engine/internal/config"
	"github.com/feral-file/ff-rental-engine/internal/engine"
	"github.com/feral-file/ff-rental-engine/internal/ledger"
	"github.com/feral-file/ff-rental-engine/internal/logger"
	"github.com/feral-file/ff-rental-engine/internal/messaging"
	"github.com/feral-file/ff-rental-engine/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "rental-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Rental Engine API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to run migrations", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize the in-process ledger and start its height clock
	ledgerEnv := ledger.NewMemory(ledger.MemoryConfig{
		InitialHeight: cfg.Ledger.InitialHeight,
		BlockTime:     cfg.Ledger.BlockTime,
		FaucetAmount:  cfg.Ledger.FaucetAmount,
	})
	go func() {
		if err := ledgerEnv.Run(ctx); err != nil && ctx.Err() == nil {
			logger.ErrorCtx(ctx, err, zap.String("component", "ledger"))
		}
	}()

	// Connect to NATS for rental lifecycle events (optional)
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = messaging.NewNATSPublisher(ctx, messaging.NATSConfig{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
		})
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
		}
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, rental events will not be published")
		publisher = messaging.NewNoopPublisher()
	}
	defer publisher.Close()

	// Create the rental engine
	rentalEngine := engine.New(dataStore, ledgerEnv, publisher)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, rentalEngine)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

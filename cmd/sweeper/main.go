package main

import (
	"context"
	"errors"
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

	"github.com/feral-file/ff-rental-engine/internal/config"
	"github.com/feral-file/ff-rental-engine/internal/engine"
	"github.com/feral-file/ff-rental-engine/internal/ledger"
	"github.com/feral-file/ff-rental-engine/internal/logger"
	"github.com/feral-file/ff-rental-engine/internal/messaging"
	"github.com/feral-file/ff-rental-engine/internal/store"
	"github.com/feral-file/ff-rental-engine/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
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
			"service": "rental-sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Rental Engine sweeper")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

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

	// Create the rental engine and sweeper
	rentalEngine := engine.New(dataStore, ledgerEnv, publisher)
	reclaimSweeper := sweeper.NewReclaimSweeper(dataStore, ledgerEnv, rentalEngine, sweeper.Config{
		Interval:  cfg.ReclaimSweeper.Interval,
		BatchSize: cfg.ReclaimSweeper.BatchSize,
		PoolSize:  cfg.ReclaimSweeper.PoolSize,
	})

	// Run sweeper in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := reclaimSweeper.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()
	logger.InfoCtx(ctx, "Reclaim sweeper running",
		zap.Duration("interval", cfg.ReclaimSweeper.Interval),
		zap.Int("batch_size", cfg.ReclaimSweeper.BatchSize),
	)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "reclaim_sweeper"))
		cancel()
	}

	logger.Info("Sweeper stopped")
}

package sweeper

import (
	"context"
	"errors"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/engine"
	"github.com/feral-file/ff-rental-engine/internal/ledger"
	"github.com/feral-file/ff-rental-engine/internal/logger"
	"github.com/feral-file/ff-rental-engine/internal/store"
)

// Config holds the reclaim sweeper configuration
type Config struct {
	Interval  time.Duration // time between sweep passes
	BatchSize int           // max rentals examined per pass
	PoolSize  int           // concurrent reclaim workers
}

// ReclaimSweeper periodically deletes expired rental records, returning their
// assets to the relistable state. It changes no usage rights; it only clears
// records the oracle already treats as inactive.
type ReclaimSweeper struct {
	store  store.Store
	ledger ledger.Ledger
	engine engine.Engine
	config Config
}

// NewReclaimSweeper creates a new reclaim sweeper
func NewReclaimSweeper(st store.Store, lg ledger.Ledger, eng engine.Engine, cfg Config) *ReclaimSweeper {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 10
	}

	return &ReclaimSweeper{
		store:  st,
		ledger: lg,
		engine: eng,
		config: cfg,
	}
}

// Run sweeps on the configured interval until the context is canceled
func (s *ReclaimSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := s.Sweep(ctx); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "reclaim_sweeper"))
			} else if n > 0 {
				logger.InfoCtx(ctx, "Reclaimed expired rentals", zap.Int("count", n))
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Sweep runs a single pass and returns the number of rentals reclaimed
func (s *ReclaimSweeper) Sweep(ctx context.Context) (int, error) {
	height, err := s.ledger.CurrentHeight(ctx)
	if err != nil {
		return 0, err
	}

	expired, err := s.store.ListExpiredRentals(ctx, height, s.config.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(expired) == 0 {
		return 0, nil
	}

	pool := pond.NewPool(s.config.PoolSize)
	reclaimed := make(chan domain.AssetID, len(expired))

	for _, rental := range expired {
		id := rental.AssetID
		pool.Submit(func() {
			if _, err := s.engine.ReclaimExpired(ctx, id); err != nil {
				// Another caller may have reclaimed or relisted in the meantime
				if errors.Is(err, domain.ErrNotRented) || errors.Is(err, domain.ErrRentalActive) {
					return
				}
				logger.WarnCtx(ctx, "Failed to reclaim rental",
					zap.Error(err),
					zap.String("asset_id", id.String()),
				)
				return
			}
			reclaimed <- id
		})
	}

	pool.StopAndWait()
	close(reclaimed)

	return len(reclaimed), nil
}

package ledger

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/logger"
)

// MemoryConfig holds the in-process ledger configuration
type MemoryConfig struct {
	InitialHeight uint64
	BlockTime     time.Duration // height advances once per BlockTime when Run is active
	FaucetAmount  uint64        // balance credited to an identity on first use (0 disables)
}

// Memory is an in-process Ledger for development and tests. It keeps balances
// in a map and advances the height on a ticker, standing in for the hosting
// chain environment. Production deployments implement Ledger against the real
// environment instead.
type Memory struct {
	mu       sync.Mutex
	height   uint64
	balances map[domain.Identity]uint64
	config   MemoryConfig
}

// NewMemory creates a new in-process ledger
func NewMemory(cfg MemoryConfig) *Memory {
	return &Memory{
		height:   cfg.InitialHeight,
		balances: make(map[domain.Identity]uint64),
		config:   cfg,
	}
}

// Run advances the height once per configured block time until the context is canceled.
// With a zero block time the height only moves through AdvanceHeight.
func (m *Memory) Run(ctx context.Context) error {
	if m.config.BlockTime <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(m.config.BlockTime)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			h := m.AdvanceHeight(1)
			logger.Debug("Ledger height advanced", zap.Uint64("height", h))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// CurrentHeight returns the current height counter
func (m *Memory) CurrentHeight(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.height, nil
}

// AdvanceHeight moves the height counter forward by n and returns the new height
func (m *Memory) AdvanceHeight(n uint64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.height += n
	return m.height
}

// Credit adds amount to an identity's balance
func (m *Memory) Credit(identity domain.Identity, amount uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[identity] += amount
}

// Balance returns the current balance of an identity
func (m *Memory) Balance(identity domain.Identity) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seedLocked(identity)
	return m.balances[identity]
}

// Transfer atomically moves amount between identities.
// The balance check and the debit/credit happen under one lock, so a failed
// transfer leaves both balances untouched.
func (m *Memory) Transfer(ctx context.Context, from, to domain.Identity, amount uint64) error {
	if !from.Valid() || !to.Valid() {
		return domain.ErrInvalidIdentity
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.seedLocked(from)
	m.seedLocked(to)

	if m.balances[from] < amount {
		return domain.ErrInsufficientFunds
	}

	m.balances[from] -= amount
	m.balances[to] += amount
	return nil
}

// seedLocked credits the faucet amount the first time an identity is seen.
// Caller must hold m.mu.
func (m *Memory) seedLocked(identity domain.Identity) {
	if m.config.FaucetAmount == 0 {
		return
	}
	if _, ok := m.balances[identity]; !ok {
		m.balances[identity] = m.config.FaucetAmount
	}
}

package ledger

import (
	"context"

	"github.com/feral-file/ff-rental-engine/internal/domain"
)

// Ledger is the capability interface onto the hosting ledger environment.
// It supplies the monotonic height counter that serves as the engine's only
// notion of time, and the atomic value transfer used to settle rentals.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger
type Ledger interface {
	// CurrentHeight returns the environment's monotonically non-decreasing height counter
	CurrentHeight(ctx context.Context) (uint64, error)
	// Transfer atomically moves amount from one identity to another.
	// It returns domain.ErrInsufficientFunds when the payer balance cannot cover the amount;
	// on any error no value has moved.
	Transfer(ctx context.Context, from, to domain.Identity, amount uint64) error
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/ledger"
	"github.com/feral-file/ff-rental-engine/internal/logger"
	"github.com/feral-file/ff-rental-engine/internal/messaging"
	"github.com/feral-file/ff-rental-engine/internal/store"
)

// AssetView is the read model returned by GetAsset: the asset with its current
// listing and rental records (if any) and the ledger height they were read at.
type AssetView struct {
	Asset   domain.Asset    `json:"asset"`
	Listing *domain.Listing `json:"listing,omitempty"`
	Rental  *domain.Rental  `json:"rental,omitempty"`
	Height  uint64          `json:"height"`
}

// Engine is the rental state machine. Every mutating operation either fully
// commits or fully aborts with no partial effect; mutations against the same
// asset id are serialized by the store's per-asset lock.
//
//go:generate mockgen -source=engine.go -destination=../mocks/engine.go -package=mocks -mock_names=Engine=MockEngine
type Engine interface {
	// Mint creates a new asset owned by recipient and returns its sequential id
	Mint(ctx context.Context, recipient domain.Identity) (domain.AssetID, error)
	// OwnerOf returns the owner of an asset, or domain.ErrAssetNotFound
	OwnerOf(ctx context.Context, id domain.AssetID) (domain.Identity, error)
	// GetAsset returns the asset with its listing and rental state
	GetAsset(ctx context.Context, id domain.AssetID) (*AssetView, error)
	// ListForRent opens a rental offer for an asset the caller owns
	ListForRent(ctx context.Context, caller domain.Identity, id domain.AssetID, pricePerUnit, maxDuration uint64) error
	// CancelListing withdraws the caller's open offer
	CancelListing(ctx context.Context, caller domain.Identity, id domain.AssetID) error
	// Rent consumes the listing, settles payment through the ledger and creates the rental
	Rent(ctx context.Context, caller domain.Identity, id domain.AssetID, duration uint64) (*domain.Rental, error)
	// CanUse answers whether identity may use the asset at the current height
	CanUse(ctx context.Context, identity domain.Identity, id domain.AssetID) (bool, error)
	// ReclaimExpired deletes an expired rental record, returning the asset to the
	// relistable state. CanUse is unaffected: an expired rental grants nothing
	// whether or not it has been reclaimed.
	ReclaimExpired(ctx context.Context, id domain.AssetID) (*domain.Rental, error)
}

type engine struct {
	store     store.Store
	ledger    ledger.Ledger
	publisher messaging.Publisher
}

// New creates a new rental engine
func New(st store.Store, lg ledger.Ledger, pub messaging.Publisher) Engine {
	return &engine{
		store:     st,
		ledger:    lg,
		publisher: pub,
	}
}

// Mint creates a new asset owned by recipient and returns its sequential id
func (e *engine) Mint(ctx context.Context, recipient domain.Identity) (domain.AssetID, error) {
	if !recipient.Valid() {
		return 0, domain.ErrInvalidIdentity
	}

	id, err := e.store.CreateAsset(ctx, recipient)
	if err != nil {
		return 0, fmt.Errorf("failed to mint asset: %w", err)
	}

	e.publish(ctx, &domain.RentalEvent{
		Type:    domain.EventTypeMinted,
		AssetID: id,
		Owner:   recipient,
	})

	return id, nil
}

// OwnerOf returns the owner of an asset, or domain.ErrAssetNotFound
func (e *engine) OwnerOf(ctx context.Context, id domain.AssetID) (domain.Identity, error) {
	asset, err := e.store.GetAsset(ctx, id)
	if err != nil {
		return "", err
	}
	if asset == nil {
		return "", domain.ErrAssetNotFound
	}
	return asset.Owner, nil
}

// GetAsset returns the asset with its listing and rental state
func (e *engine) GetAsset(ctx context.Context, id domain.AssetID) (*AssetView, error) {
	asset, err := e.store.GetAsset(ctx, id)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, domain.ErrAssetNotFound
	}

	listing, err := e.store.GetListing(ctx, id)
	if err != nil {
		return nil, err
	}

	rental, err := e.store.GetRental(ctx, id)
	if err != nil {
		return nil, err
	}

	height, err := e.ledger.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger height: %w", err)
	}

	return &AssetView{
		Asset:   *asset,
		Listing: listing,
		Rental:  rental,
		Height:  height,
	}, nil
}

// ListForRent opens a rental offer for an asset the caller owns.
// An expired, unreclaimed rental does not block a new listing; it is reclaimed
// in the same transaction.
func (e *engine) ListForRent(ctx context.Context, caller domain.Identity, id domain.AssetID, pricePerUnit, maxDuration uint64) error {
	if !caller.Valid() {
		return domain.ErrInvalidIdentity
	}
	if maxDuration == 0 {
		return domain.ErrInvalidTerms
	}

	height, err := e.ledger.CurrentHeight(ctx)
	if err != nil {
		return fmt.Errorf("failed to read ledger height: %w", err)
	}

	err = e.store.WithAssetLock(ctx, id, func(ctx context.Context, tx store.Store) error {
		asset, err := tx.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrAssetNotFound
		}
		if asset.Owner != caller {
			return domain.ErrNotOwner
		}

		rental, err := tx.GetRental(ctx, id)
		if err != nil {
			return err
		}
		if rental != nil {
			if rental.ActiveAt(height) {
				return domain.ErrAlreadyRented
			}
			// Lazily observed expiry: clear the dead record before relisting
			if err := tx.DeleteRental(ctx, id); err != nil {
				return err
			}
		}

		listing, err := tx.GetListing(ctx, id)
		if err != nil {
			return err
		}
		if listing != nil {
			return domain.ErrAlreadyListed
		}

		return tx.CreateListing(ctx, &domain.Listing{
			AssetID:      id,
			PricePerUnit: pricePerUnit,
			MaxDuration:  maxDuration,
		})
	})
	if err != nil {
		return err
	}

	e.publish(ctx, &domain.RentalEvent{
		Type:         domain.EventTypeListed,
		AssetID:      id,
		Owner:        caller,
		PricePerUnit: pricePerUnit,
		MaxDuration:  maxDuration,
		Height:       height,
	})

	return nil
}

// CancelListing withdraws the caller's open offer
func (e *engine) CancelListing(ctx context.Context, caller domain.Identity, id domain.AssetID) error {
	if !caller.Valid() {
		return domain.ErrInvalidIdentity
	}

	err := e.store.WithAssetLock(ctx, id, func(ctx context.Context, tx store.Store) error {
		asset, err := tx.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrAssetNotFound
		}
		if asset.Owner != caller {
			return domain.ErrNotOwner
		}

		listing, err := tx.GetListing(ctx, id)
		if err != nil {
			return err
		}
		if listing == nil {
			return domain.ErrNotListed
		}

		return tx.DeleteListing(ctx, id)
	})
	if err != nil {
		return err
	}

	e.publish(ctx, &domain.RentalEvent{
		Type:    domain.EventTypeListingCancelled,
		AssetID: id,
		Owner:   caller,
	})

	return nil
}

// Rent consumes the listing, settles payment through the ledger and creates the rental.
// The ledger transfer is the final step inside the transaction: a rejected payment
// rolls back every store mutation, so no state moves without payment and no payment
// moves without the rental being recorded.
func (e *engine) Rent(ctx context.Context, caller domain.Identity, id domain.AssetID, duration uint64) (*domain.Rental, error) {
	if !caller.Valid() {
		return nil, domain.ErrInvalidIdentity
	}
	if duration == 0 {
		return nil, domain.ErrInvalidTerms
	}

	height, err := e.ledger.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger height: %w", err)
	}

	var rental *domain.Rental
	var owner domain.Identity

	err = e.store.WithAssetLock(ctx, id, func(ctx context.Context, tx store.Store) error {
		asset, err := tx.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrAssetNotFound
		}
		owner = asset.Owner

		listing, err := tx.GetListing(ctx, id)
		if err != nil {
			return err
		}
		if listing == nil {
			return domain.ErrNotListed
		}
		if duration > listing.MaxDuration {
			return domain.ErrDurationExceedsMax
		}

		cost, err := domain.RentalCost(listing.PricePerUnit, duration)
		if err != nil {
			return err
		}

		if err := tx.DeleteListing(ctx, id); err != nil {
			return err
		}

		rental = &domain.Rental{
			AssetID:     id,
			Renter:      caller,
			StartHeight: height,
			EndHeight:   height + duration,
			AmountPaid:  cost,
		}
		if err := tx.CreateRental(ctx, rental); err != nil {
			return err
		}

		if err := e.ledger.Transfer(ctx, caller, owner, cost); err != nil {
			if errors.Is(err, domain.ErrInsufficientFunds) {
				return fmt.Errorf("%w: %v", domain.ErrPaymentFailed, err)
			}
			return fmt.Errorf("%w: ledger transfer: %v", domain.ErrPaymentFailed, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, &domain.RentalEvent{
		Type:        domain.EventTypeRented,
		AssetID:     id,
		Owner:       owner,
		Renter:      caller,
		StartHeight: rental.StartHeight,
		EndHeight:   rental.EndHeight,
		AmountPaid:  rental.AmountPaid,
		Height:      height,
	})

	return rental, nil
}

// CanUse answers whether identity may use the asset at the current height.
// Ownership always grants usage rights; a rental grants them to the renter
// only while current height <= end height.
func (e *engine) CanUse(ctx context.Context, identity domain.Identity, id domain.AssetID) (bool, error) {
	asset, err := e.store.GetAsset(ctx, id)
	if err != nil {
		return false, err
	}
	if asset == nil {
		return false, domain.ErrAssetNotFound
	}

	if asset.Owner == identity {
		return true, nil
	}

	rental, err := e.store.GetRental(ctx, id)
	if err != nil {
		return false, err
	}
	if rental == nil || rental.Renter != identity {
		return false, nil
	}

	height, err := e.ledger.CurrentHeight(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read ledger height: %w", err)
	}

	return rental.ActiveAt(height), nil
}

// ReclaimExpired deletes an expired rental record. No caller authorization is
// required: removing an expired record changes nobody's usage rights.
func (e *engine) ReclaimExpired(ctx context.Context, id domain.AssetID) (*domain.Rental, error) {
	height, err := e.ledger.CurrentHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger height: %w", err)
	}

	var reclaimed *domain.Rental
	var owner domain.Identity

	err = e.store.WithAssetLock(ctx, id, func(ctx context.Context, tx store.Store) error {
		asset, err := tx.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if asset == nil {
			return domain.ErrAssetNotFound
		}
		owner = asset.Owner

		rental, err := tx.GetRental(ctx, id)
		if err != nil {
			return err
		}
		if rental == nil {
			return domain.ErrNotRented
		}
		if rental.ActiveAt(height) {
			return domain.ErrRentalActive
		}

		reclaimed = rental
		return tx.DeleteRental(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	e.publish(ctx, &domain.RentalEvent{
		Type:        domain.EventTypeReclaimed,
		AssetID:     id,
		Owner:       owner,
		Renter:      reclaimed.Renter,
		StartHeight: reclaimed.StartHeight,
		EndHeight:   reclaimed.EndHeight,
		Height:      height,
	})

	return reclaimed, nil
}

// publish sends a lifecycle event best-effort; a broker failure never fails
// the state transition it reports.
func (e *engine) publish(ctx context.Context, event *domain.RentalEvent) {
	if event.Height == 0 {
		if height, err := e.ledger.CurrentHeight(ctx); err == nil {
			event.Height = height
		}
	}
	event.Timestamp = time.Now().UTC()

	if err := e.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish rental event",
			zap.Error(err),
			zap.String("type", string(event.Type)),
			zap.String("asset_id", event.AssetID.String()),
		)
	}
}

package engine_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/engine"
	"github.com/feral-file/ff-rental-engine/internal/ledger"
	"github.com/feral-file/ff-rental-engine/internal/messaging"
	"github.com/feral-file/ff-rental-engine/internal/mocks"
	"github.com/feral-file/ff-rental-engine/internal/store"
)

const (
	owner  = domain.Identity("alice")
	renter = domain.Identity("bob")
	other  = domain.Identity("carol")
)

// newTestEngine wires a real in-memory store and ledger behind the engine,
// so tests exercise actual transaction and rollback behavior.
func newTestEngine(t *testing.T, initialHeight uint64) (engine.Engine, *store.MemoryStore, *ledger.Memory) {
	t.Helper()
	st := store.NewMemoryStore()
	lg := ledger.NewMemory(ledger.MemoryConfig{InitialHeight: initialHeight})
	eng := engine.New(st, lg, messaging.NewNoopPublisher())
	return eng, st, lg
}

// mintListed mints an asset for owner and lists it with the given terms
func mintListed(t *testing.T, eng engine.Engine, pricePerUnit, maxDuration uint64) domain.AssetID {
	t.Helper()
	ctx := context.Background()
	id, err := eng.Mint(ctx, owner)
	require.NoError(t, err)
	require.NoError(t, eng.ListForRent(ctx, owner, id, pricePerUnit, maxDuration))
	return id
}

func TestMint(t *testing.T) {
	ctx := context.Background()
	eng, _, _ := newTestEngine(t, 100)

	t.Run("assigns sequential ids", func(t *testing.T) {
		id1, err := eng.Mint(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetID(1), id1)

		id2, err := eng.Mint(ctx, renter)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetID(2), id2)

		got, err := eng.OwnerOf(ctx, id1)
		require.NoError(t, err)
		assert.Equal(t, owner, got)

		got, err = eng.OwnerOf(ctx, id2)
		require.NoError(t, err)
		assert.Equal(t, renter, got)
	})

	t.Run("rejects empty recipient", func(t *testing.T) {
		_, err := eng.Mint(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidIdentity)
	})

	t.Run("unknown asset has no owner", func(t *testing.T) {
		_, err := eng.OwnerOf(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestListForRent(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can list", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id, err := eng.Mint(ctx, owner)
		require.NoError(t, err)

		require.NoError(t, eng.ListForRent(ctx, owner, id, 10, 50))

		view, err := eng.GetAsset(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, view.Listing)
		assert.Equal(t, uint64(10), view.Listing.PricePerUnit)
		assert.Equal(t, uint64(50), view.Listing.MaxDuration)
	})

	t.Run("unknown asset", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		err := eng.ListForRent(ctx, owner, 999, 10, 50)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})

	t.Run("non-owner cannot list", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id, err := eng.Mint(ctx, owner)
		require.NoError(t, err)

		err = eng.ListForRent(ctx, other, id, 10, 50)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("zero max duration is invalid", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id, err := eng.Mint(ctx, owner)
		require.NoError(t, err)

		err = eng.ListForRent(ctx, owner, id, 10, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidTerms)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id, err := eng.Mint(ctx, owner)
		require.NoError(t, err)

		assert.NoError(t, eng.ListForRent(ctx, owner, id, 0, 50))
	})

	t.Run("double listing is rejected", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)

		err := eng.ListForRent(ctx, owner, id, 20, 60)
		assert.ErrorIs(t, err, domain.ErrAlreadyListed)
	})

	t.Run("active rental blocks listing", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)

		err = eng.ListForRent(ctx, owner, id, 10, 50)
		assert.ErrorIs(t, err, domain.ErrAlreadyRented)
	})

	t.Run("expired rental is reclaimed on relist", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)

		// Past the end height the stale record no longer blocks a new listing
		lg.AdvanceHeight(6)
		require.NoError(t, eng.ListForRent(ctx, owner, id, 20, 60))

		view, err := eng.GetAsset(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, view.Rental, "stale rental is cleared")
		require.NotNil(t, view.Listing)
		assert.Equal(t, uint64(20), view.Listing.PricePerUnit)
	})
}

func TestCancelListing(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can cancel and relist", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)

		require.NoError(t, eng.CancelListing(ctx, owner, id))

		view, err := eng.GetAsset(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, view.Listing)

		// Cancel again fails, relist succeeds
		assert.ErrorIs(t, eng.CancelListing(ctx, owner, id), domain.ErrNotListed)
		assert.NoError(t, eng.ListForRent(ctx, owner, id, 30, 10))
	})

	t.Run("non-owner cannot cancel", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)

		err := eng.CancelListing(ctx, other, id)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("unknown asset", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		err := eng.CancelListing(ctx, owner, 999)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestRent(t *testing.T) {
	ctx := context.Background()

	t.Run("settles payment and records the grant", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		rental, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)
		require.NotNil(t, rental)

		assert.Equal(t, renter, rental.Renter)
		assert.Equal(t, uint64(100), rental.StartHeight)
		assert.Equal(t, uint64(105), rental.EndHeight)
		assert.Equal(t, uint64(50), rental.AmountPaid)

		// Exact debit and credit
		assert.Equal(t, uint64(950), lg.Balance(renter))
		assert.Equal(t, uint64(50), lg.Balance(owner))

		// Listing is consumed
		view, err := eng.GetAsset(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, view.Listing)
		require.NotNil(t, view.Rental)
	})

	t.Run("duration at the listed maximum is accepted", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 1, 50)
		lg.Credit(renter, 1000)

		rental, err := eng.Rent(ctx, renter, id, 50)
		require.NoError(t, err)
		assert.Equal(t, uint64(150), rental.EndHeight)
	})

	t.Run("duration above the maximum is rejected", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 1, 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 51)
		assert.ErrorIs(t, err, domain.ErrDurationExceedsMax)
	})

	t.Run("zero duration is invalid", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id := mintListed(t, eng, 1, 50)

		_, err := eng.Rent(ctx, renter, id, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidTerms)
	})

	t.Run("unlisted asset cannot be rented", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id, err := eng.Mint(ctx, owner)
		require.NoError(t, err)

		_, err = eng.Rent(ctx, renter, id, 5)
		assert.ErrorIs(t, err, domain.ErrNotListed)
	})

	t.Run("renting a rented asset fails", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)
		lg.Credit(other, 1000)

		_, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)

		// The listing was consumed by the first rental
		_, err = eng.Rent(ctx, other, id, 5)
		assert.ErrorIs(t, err, domain.ErrNotListed)
	})

	t.Run("failed payment rolls everything back", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 49) // one unit short of 10*5

		_, err := eng.Rent(ctx, renter, id, 5)
		assert.ErrorIs(t, err, domain.ErrPaymentFailed)

		// Balances untouched
		assert.Equal(t, uint64(49), lg.Balance(renter))
		assert.Equal(t, uint64(0), lg.Balance(owner))

		// The listing survives and no rental was recorded
		view, err := eng.GetAsset(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, view.Listing)
		assert.Nil(t, view.Rental)

		// The asset is still rentable once funds arrive
		lg.Credit(renter, 1)
		_, err = eng.Rent(ctx, renter, id, 5)
		assert.NoError(t, err)
	})

	t.Run("cost overflow is rejected before payment", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, ^uint64(0), 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 2)
		assert.ErrorIs(t, err, domain.ErrOverflow)

		view, err := eng.GetAsset(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, view.Listing)
		assert.Equal(t, uint64(1000), lg.Balance(renter))
	})

	t.Run("free listing transfers nothing", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 0, 50)

		rental, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), rental.AmountPaid)
		assert.Equal(t, uint64(0), lg.Balance(renter))
	})
}

func TestCanUse(t *testing.T) {
	ctx := context.Background()

	t.Run("owner always has usage rights", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		canUse, err := eng.CanUse(ctx, owner, id)
		require.NoError(t, err)
		assert.True(t, canUse)

		// Renting the asset out does not revoke the owner
		_, err = eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)

		canUse, err = eng.CanUse(ctx, owner, id)
		require.NoError(t, err)
		assert.True(t, canUse)
	})

	t.Run("renter has rights through the end height", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 5) // end height 105
		require.NoError(t, err)

		canUse, err := eng.CanUse(ctx, renter, id)
		require.NoError(t, err)
		assert.True(t, canUse, "active at start")

		lg.AdvanceHeight(5) // height 105 == end height
		canUse, err = eng.CanUse(ctx, renter, id)
		require.NoError(t, err)
		assert.True(t, canUse, "still active at end height")

		lg.AdvanceHeight(1) // height 106 > end height
		canUse, err = eng.CanUse(ctx, renter, id)
		require.NoError(t, err)
		assert.False(t, canUse, "expired past end height")
	})

	t.Run("strangers have no rights", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)

		canUse, err := eng.CanUse(ctx, other, id)
		require.NoError(t, err)
		assert.False(t, canUse)
	})

	t.Run("unknown asset", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		_, err := eng.CanUse(ctx, owner, 999)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestReclaimExpired(t *testing.T) {
	ctx := context.Background()

	t.Run("active rental cannot be reclaimed", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)

		_, err = eng.ReclaimExpired(ctx, id)
		assert.ErrorIs(t, err, domain.ErrRentalActive)

		// Still active exactly at the end height
		lg.AdvanceHeight(5)
		_, err = eng.ReclaimExpired(ctx, id)
		assert.ErrorIs(t, err, domain.ErrRentalActive)
	})

	t.Run("expired rental is removed and asset is relistable", func(t *testing.T) {
		eng, _, lg := newTestEngine(t, 100)
		id := mintListed(t, eng, 10, 50)
		lg.Credit(renter, 1000)

		_, err := eng.Rent(ctx, renter, id, 5)
		require.NoError(t, err)

		lg.AdvanceHeight(6)
		reclaimed, err := eng.ReclaimExpired(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, reclaimed)
		assert.Equal(t, renter, reclaimed.Renter)
		assert.Equal(t, uint64(105), reclaimed.EndHeight)

		view, err := eng.GetAsset(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, view.Rental)

		assert.NoError(t, eng.ListForRent(ctx, owner, id, 10, 50))
	})

	t.Run("no rental to reclaim", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		id, err := eng.Mint(ctx, owner)
		require.NoError(t, err)

		_, err = eng.ReclaimExpired(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotRented)
	})

	t.Run("unknown asset", func(t *testing.T) {
		eng, _, _ := newTestEngine(t, 100)
		_, err := eng.ReclaimExpired(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestLifecycleEvents(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := store.NewMemoryStore()
	lg := ledger.NewMemory(ledger.MemoryConfig{InitialHeight: 100})
	lg.Credit(renter, 1000)
	publisher := mocks.NewMockPublisher(ctrl)
	eng := engine.New(st, lg, publisher)

	var events []domain.EventType
	publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.RentalEvent) error {
			require.True(t, event.Valid(), "engine must publish valid events")
			events = append(events, event.Type)
			return nil
		}).
		AnyTimes()

	id, err := eng.Mint(ctx, owner)
	require.NoError(t, err)
	require.NoError(t, eng.ListForRent(ctx, owner, id, 10, 50))
	require.NoError(t, eng.CancelListing(ctx, owner, id))
	require.NoError(t, eng.ListForRent(ctx, owner, id, 10, 50))
	_, err = eng.Rent(ctx, renter, id, 5)
	require.NoError(t, err)
	lg.AdvanceHeight(6)
	_, err = eng.ReclaimExpired(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, []domain.EventType{
		domain.EventTypeMinted,
		domain.EventTypeListed,
		domain.EventTypeListingCancelled,
		domain.EventTypeListed,
		domain.EventTypeRented,
		domain.EventTypeReclaimed,
	}, events)
}

func TestPublishFailureDoesNotFailTransition(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := store.NewMemoryStore()
	lg := ledger.NewMemory(ledger.MemoryConfig{InitialHeight: 100})
	publisher := mocks.NewMockPublisher(ctrl)
	eng := engine.New(st, lg, publisher)

	publisher.EXPECT().
		PublishEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	id, err := eng.Mint(ctx, owner)
	require.NoError(t, err)
	assert.True(t, id.Valid())
}

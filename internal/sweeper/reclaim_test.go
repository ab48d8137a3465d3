package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-rental-engine/internal/domain"
	"github.com/feral-file/ff-rental-engine/internal/mocks"
)

func TestSweep(t *testing.T) {
	ctx := context.Background()

	t.Run("reclaims every expired rental", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		lg := mocks.NewMockLedger(ctrl)
		eng := mocks.NewMockEngine(ctrl)

		expired := []*domain.Rental{
			{AssetID: 1, Renter: "bob", EndHeight: 150},
			{AssetID: 2, Renter: "carol", EndHeight: 180},
		}

		lg.EXPECT().CurrentHeight(gomock.Any()).Return(uint64(200), nil)
		st.EXPECT().ListExpiredRentals(gomock.Any(), uint64(200), 100).Return(expired, nil)
		eng.EXPECT().ReclaimExpired(gomock.Any(), domain.AssetID(1)).Return(expired[0], nil)
		eng.EXPECT().ReclaimExpired(gomock.Any(), domain.AssetID(2)).Return(expired[1], nil)

		s := NewReclaimSweeper(st, lg, eng, Config{})
		n, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("nothing to reclaim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		lg := mocks.NewMockLedger(ctrl)
		eng := mocks.NewMockEngine(ctrl)

		lg.EXPECT().CurrentHeight(gomock.Any()).Return(uint64(200), nil)
		st.EXPECT().ListExpiredRentals(gomock.Any(), uint64(200), 100).Return(nil, nil)

		s := NewReclaimSweeper(st, lg, eng, Config{})
		n, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("tolerates losing the race to another reclaimer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		lg := mocks.NewMockLedger(ctrl)
		eng := mocks.NewMockEngine(ctrl)

		expired := []*domain.Rental{
			{AssetID: 1, Renter: "bob", EndHeight: 150},
			{AssetID: 2, Renter: "carol", EndHeight: 180},
		}

		lg.EXPECT().CurrentHeight(gomock.Any()).Return(uint64(200), nil)
		st.EXPECT().ListExpiredRentals(gomock.Any(), uint64(200), 100).Return(expired, nil)
		// Asset 1 was already reclaimed elsewhere; asset 2 still goes through
		eng.EXPECT().ReclaimExpired(gomock.Any(), domain.AssetID(1)).Return(nil, domain.ErrNotRented)
		eng.EXPECT().ReclaimExpired(gomock.Any(), domain.AssetID(2)).Return(expired[1], nil)

		s := NewReclaimSweeper(st, lg, eng, Config{})
		n, err := s.Sweep(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("ledger failure aborts the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		st := mocks.NewMockStore(ctrl)
		lg := mocks.NewMockLedger(ctrl)
		eng := mocks.NewMockEngine(ctrl)

		lg.EXPECT().CurrentHeight(gomock.Any()).Return(uint64(0), assert.AnError)

		s := NewReclaimSweeper(st, lg, eng, Config{})
		_, err := s.Sweep(ctx)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	lg := mocks.NewMockLedger(ctrl)
	eng := mocks.NewMockEngine(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewReclaimSweeper(st, lg, eng, Config{Interval: time.Hour})
	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

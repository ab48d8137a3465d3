package store

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/feral-file/ff-rental-engine/internal/domain"
)

// memoryState holds the three maps without any locking; access goes through
// MemoryStore (locked) or the transaction view handed to WithAssetLock callbacks.
type memoryState struct {
	nextID   uint64
	assets   map[domain.AssetID]domain.Identity
	listings map[domain.AssetID]domain.Listing
	rentals  map[domain.AssetID]domain.Rental
}

// MemoryStore is an in-memory Store used by tests and the development ledger setup.
// A single mutex serializes all mutations, which trivially satisfies the per-asset
// serialization requirement.
type MemoryStore struct {
	mu    sync.Mutex
	state memoryState
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		state: memoryState{
			assets:   make(map[domain.AssetID]domain.Identity),
			listings: make(map[domain.AssetID]domain.Listing),
			rentals:  make(map[domain.AssetID]domain.Rental),
		},
	}
}

func (s *MemoryStore) CreateAsset(ctx context.Context, owner domain.Identity) (domain.AssetID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.createAsset(owner)
}

func (s *MemoryStore) GetAsset(ctx context.Context, id domain.AssetID) (*domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.getAsset(id)
}

func (s *MemoryStore) GetListing(ctx context.Context, id domain.AssetID) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.getListing(id)
}

func (s *MemoryStore) CreateListing(ctx context.Context, listing *domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.createListing(listing)
}

func (s *MemoryStore) DeleteListing(ctx context.Context, id domain.AssetID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.deleteListing(id)
}

func (s *MemoryStore) GetRental(ctx context.Context, id domain.AssetID) (*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.getRental(id)
}

func (s *MemoryStore) CreateRental(ctx context.Context, rental *domain.Rental) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.createRental(rental)
}

func (s *MemoryStore) DeleteRental(ctx context.Context, id domain.AssetID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.deleteRental(id)
}

func (s *MemoryStore) ListExpiredRentals(ctx context.Context, height uint64, limit int) ([]*domain.Rental, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.listExpiredRentals(height, limit)
}

// WithAssetLock holds the store mutex for the whole callback, giving fn an
// atomic view. The nested Store passed to fn operates without re-locking.
func (s *MemoryStore) WithAssetLock(ctx context.Context, id domain.AssetID, fn func(ctx context.Context, tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Mutate a copy so a failed callback leaves the committed state untouched
	snapshot := s.state.clone()
	tx := &memoryTx{state: &snapshot}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	s.state = snapshot
	return nil
}

// memoryTx is the unlocked transaction view handed to WithAssetLock callbacks
type memoryTx struct {
	state *memoryState
}

func (t *memoryTx) CreateAsset(ctx context.Context, owner domain.Identity) (domain.AssetID, error) {
	return t.state.createAsset(owner)
}

func (t *memoryTx) GetAsset(ctx context.Context, id domain.AssetID) (*domain.Asset, error) {
	return t.state.getAsset(id)
}

func (t *memoryTx) GetListing(ctx context.Context, id domain.AssetID) (*domain.Listing, error) {
	return t.state.getListing(id)
}

func (t *memoryTx) CreateListing(ctx context.Context, listing *domain.Listing) error {
	return t.state.createListing(listing)
}

func (t *memoryTx) DeleteListing(ctx context.Context, id domain.AssetID) error {
	return t.state.deleteListing(id)
}

func (t *memoryTx) GetRental(ctx context.Context, id domain.AssetID) (*domain.Rental, error) {
	return t.state.getRental(id)
}

func (t *memoryTx) CreateRental(ctx context.Context, rental *domain.Rental) error {
	return t.state.createRental(rental)
}

func (t *memoryTx) DeleteRental(ctx context.Context, id domain.AssetID) error {
	return t.state.deleteRental(id)
}

func (t *memoryTx) ListExpiredRentals(ctx context.Context, height uint64, limit int) ([]*domain.Rental, error) {
	return t.state.listExpiredRentals(height, limit)
}

func (t *memoryTx) WithAssetLock(ctx context.Context, id domain.AssetID, fn func(ctx context.Context, tx Store) error) error {
	// Already inside the locked transaction
	return fn(ctx, t)
}

func (st *memoryState) createAsset(owner domain.Identity) (domain.AssetID, error) {
	if st.nextID == math.MaxUint64 {
		// The id space is exhausted; continuing would reuse ids
		panic("store: asset id counter overflow")
	}
	st.nextID++
	id := domain.AssetID(st.nextID)
	st.assets[id] = owner
	return id, nil
}

func (st *memoryState) getAsset(id domain.AssetID) (*domain.Asset, error) {
	owner, ok := st.assets[id]
	if !ok {
		return nil, nil
	}
	return &domain.Asset{ID: id, Owner: owner}, nil
}

func (st *memoryState) getListing(id domain.AssetID) (*domain.Listing, error) {
	listing, ok := st.listings[id]
	if !ok {
		return nil, nil
	}
	return &listing, nil
}

func (st *memoryState) createListing(listing *domain.Listing) error {
	if _, ok := st.listings[listing.AssetID]; ok {
		return domain.ErrAlreadyListed
	}
	st.listings[listing.AssetID] = *listing
	return nil
}

func (st *memoryState) deleteListing(id domain.AssetID) error {
	delete(st.listings, id)
	return nil
}

func (st *memoryState) getRental(id domain.AssetID) (*domain.Rental, error) {
	rental, ok := st.rentals[id]
	if !ok {
		return nil, nil
	}
	return &rental, nil
}

func (st *memoryState) createRental(rental *domain.Rental) error {
	if _, ok := st.rentals[rental.AssetID]; ok {
		return domain.ErrAlreadyRented
	}
	st.rentals[rental.AssetID] = *rental
	return nil
}

func (st *memoryState) deleteRental(id domain.AssetID) error {
	delete(st.rentals, id)
	return nil
}

func (st *memoryState) listExpiredRentals(height uint64, limit int) ([]*domain.Rental, error) {
	var expired []*domain.Rental
	for _, rental := range st.rentals {
		if rental.EndHeight < height {
			r := rental
			expired = append(expired, &r)
		}
	}
	sort.Slice(expired, func(i, j int) bool { return expired[i].AssetID < expired[j].AssetID })
	if limit > 0 && len(expired) > limit {
		expired = expired[:limit]
	}
	return expired, nil
}

func (st *memoryState) clone() memoryState {
	cp := memoryState{
		nextID:   st.nextID,
		assets:   make(map[domain.AssetID]domain.Identity, len(st.assets)),
		listings: make(map[domain.AssetID]domain.Listing, len(st.listings)),
		rentals:  make(map[domain.AssetID]domain.Rental, len(st.rentals)),
	}
	for id, owner := range st.assets {
		cp.assets[id] = owner
	}
	for id, listing := range st.listings {
		cp.listings[id] = listing
	}
	for id, rental := range st.rentals {
		cp.rentals[id] = rental
	}
	return cp
}

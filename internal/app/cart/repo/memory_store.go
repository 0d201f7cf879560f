package repo

import (
	"context"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
)

// MemoryStore keeps the snapshot in memory. Used by tests and as the
// backend when no durable medium is configured.
type MemoryStore struct {
	snap      *domain.Snapshot
	saveCount int
}

// NewMemoryStore creates an empty in-memory SnapshotStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved snapshot, or (nil, nil) when nothing has
// been saved yet.
func (s *MemoryStore) Load(_ context.Context) (*domain.Snapshot, error) {
	return s.snap, nil
}

// Save replaces the held snapshot.
func (s *MemoryStore) Save(_ context.Context, snap *domain.Snapshot) error {
	s.snap = snap
	s.saveCount++
	return nil
}

// Seed installs a snapshot without counting as a save. Test helper.
func (s *MemoryStore) Seed(snap *domain.Snapshot) {
	s.snap = snap
}

// SaveCount reports how many times Save ran. Test helper for asserting
// write-through (and the absence of writes on no-ops).
func (s *MemoryStore) SaveCount() int {
	return s.saveCount
}

package contracts

import (
	"context"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
)

// SnapshotStore is the durable key-value collaborator for cart state.
// Save is a complete replacement of the stored snapshot; Load returns
// (nil, nil) when no snapshot has ever been written, which callers treat
// as a fresh cart rather than an error. Any backing medium satisfies the
// contract: a JSON file, a Spanner row, a Mongo document.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

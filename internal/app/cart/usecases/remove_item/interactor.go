package remove_item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
)

// Request identifies the row to remove.
type Request struct {
	CompositeKey string
}

// Interactor handles the remove-from-cart use case.
type Interactor struct {
	cart   *domain.Cart
	store  contracts.SnapshotStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewInteractor creates a new remove-from-cart interactor.
func NewInteractor(cart *domain.Cart, store contracts.SnapshotStore, clk clock.Clock, logger *slog.Logger) *Interactor {
	return &Interactor{
		cart:   cart,
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Execute removes the row and writes the snapshot through. Removing an
// absent key is idempotent: no change, no write, no error.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if !i.cart.RemoveItem(req.CompositeKey) {
		return nil
	}
	return i.persist(ctx)
}

func (i *Interactor) persist(ctx context.Context) error {
	snap := i.cart.Snapshot(uuid.New().String(), i.clock.Now())
	if err := i.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	for _, event := range i.cart.DrainEvents() {
		i.logger.InfoContext(ctx, "cart event",
			"event_type", event.EventType(),
			"cart_id", event.AggregateID(),
		)
	}
	return nil
}

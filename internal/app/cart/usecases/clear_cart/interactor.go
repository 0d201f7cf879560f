package clear_cart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
)

// Interactor handles the clear-cart use case (post-checkout reset).
type Interactor struct {
	cart   *domain.Cart
	store  contracts.SnapshotStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewInteractor creates a new clear-cart interactor.
func NewInteractor(cart *domain.Cart, store contracts.SnapshotStore, clk clock.Clock, logger *slog.Logger) *Interactor {
	return &Interactor{
		cart:   cart,
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Execute empties the cart and persists the empty snapshot.
func (i *Interactor) Execute(ctx context.Context) error {
	i.cart.Clear()

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

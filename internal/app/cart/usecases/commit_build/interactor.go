package commit_build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
)

// Interactor bridges the PC-builder selection into the cart: one unit per
// populated slot, no variant. The selection stays populated afterward, so
// a repeat commit merges the same rows up again. That mirrors the
// storefront's observed behavior and is pinned by test; do not clear the
// selection here without a product decision.
type Interactor struct {
	cart   *domain.Cart
	build  *domain.BuildSelection
	store  contracts.SnapshotStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewInteractor creates a new commit-build interactor.
func NewInteractor(cart *domain.Cart, build *domain.BuildSelection, store contracts.SnapshotStore, clk clock.Clock, logger *slog.Logger) *Interactor {
	return &Interactor{
		cart:   cart,
		build:  build,
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Execute adds every selected component to the cart and writes the
// snapshot through once for the whole batch. Returns the number of
// components committed; zero when no slot is populated (nothing is
// written then).
func (i *Interactor) Execute(ctx context.Context) (int, error) {
	committed := i.build.CommitTo(i.cart)
	if committed == 0 {
		return 0, nil
	}

	snap := i.cart.Snapshot(uuid.New().String(), i.clock.Now())
	if err := i.store.Save(ctx, snap); err != nil {
		return 0, fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	for _, event := range i.cart.DrainEvents() {
		i.logger.InfoContext(ctx, "cart event",
			"event_type", event.EventType(),
			"cart_id", event.AggregateID(),
		)
	}
	return committed, nil
}

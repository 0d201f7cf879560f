package add_item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
)

// Request contains the resolved product to add. Variant is optional and,
// when set, must belong to the product (trusted from the caller, which
// fetched both). Quantity below 1 counts as 1.
type Request struct {
	Product  *domain.Product
	Variant  *domain.Variant
	Quantity int64
}

// Interactor handles the add-to-cart use case.
type Interactor struct {
	cart   *domain.Cart
	store  contracts.SnapshotStore
	clock  clock.Clock
	logger *slog.Logger
}

// NewInteractor creates a new add-to-cart interactor.
func NewInteractor(cart *domain.Cart, store contracts.SnapshotStore, clk clock.Clock, logger *slog.Logger) *Interactor {
	return &Interactor{
		cart:   cart,
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// Execute merges or appends the row, then writes the snapshot through in
// the same logical step.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	if err := i.validate(req); err != nil {
		return "", err
	}

	li := i.cart.AddItem(req.Product, req.Variant, req.Quantity)

	if err := i.persist(ctx); err != nil {
		return "", err
	}
	return li.CompositeKey(), nil
}

func (i *Interactor) validate(req *Request) error {
	if req.Product == nil {
		return domain.ErrNilProduct
	}
	if req.Product.ID == "" {
		return domain.ErrMissingProductID
	}
	return nil
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

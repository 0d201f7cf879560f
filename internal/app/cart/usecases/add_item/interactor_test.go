package add_item

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/repo"
	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
)

func setup() (*Interactor, *domain.Cart, *repo.MemoryStore) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cart := domain.NewCart("cart-1", clk)
	store := repo.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewInteractor(cart, store, clk, logger), cart, store
}

func TestExecute_AddAndPersist(t *testing.T) {
	interactor, cart, store := setup()
	ctx := context.Background()

	key, err := interactor.Execute(ctx, &Request{
		Product:  &domain.Product{ID: "p1", Name: "SSD", Price: decimal.NewFromInt(1200)},
		Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "p1", key)

	// mutate and persist are one logical step
	assert.Equal(t, 1, store.SaveCount())
	snap, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "cart-1", snap.CartID)
	assert.NotEmpty(t, snap.Revision)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(1), snap.Items[0].Quantity)

	// events are drained after persisting
	assert.Empty(t, cart.DomainEvents())
}

func TestExecute_MergePersistsEachTime(t *testing.T) {
	interactor, _, store := setup()
	ctx := context.Background()
	p := &domain.Product{ID: "p1", Name: "SSD", Price: decimal.NewFromInt(1200)}

	_, err := interactor.Execute(ctx, &Request{Product: p, Quantity: 1})
	require.NoError(t, err)
	_, err = interactor.Execute(ctx, &Request{Product: p, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 2, store.SaveCount())
	snap, _ := store.Load(ctx)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(2), snap.Items[0].Quantity)
}

func TestExecute_VariantKey(t *testing.T) {
	interactor, _, _ := setup()

	key, err := interactor.Execute(context.Background(), &Request{
		Product: &domain.Product{ID: "p1", Name: "Keyboard", Price: decimal.NewFromInt(900)},
		Variant: &domain.Variant{ID: "red", Color: "Red", Price: decimal.NewFromInt(950)},
	})
	require.NoError(t, err)
	assert.Equal(t, "p1-red", key)
}

func TestExecute_Validation(t *testing.T) {
	interactor, _, store := setup()
	ctx := context.Background()

	_, err := interactor.Execute(ctx, &Request{Product: nil})
	assert.ErrorIs(t, err, domain.ErrNilProduct)

	_, err = interactor.Execute(ctx, &Request{Product: &domain.Product{Name: "no id"}})
	assert.ErrorIs(t, err, domain.ErrMissingProductID)

	assert.Equal(t, 0, store.SaveCount())
}

func TestExecute_ZeroQuantityDefaultsToOne(t *testing.T) {
	interactor, cart, _ := setup()

	_, err := interactor.Execute(context.Background(), &Request{
		Product: &domain.Product{ID: "p1", Name: "Fan", Price: decimal.NewFromInt(150)},
	})
	require.NoError(t, err)

	li, ok := cart.Item("p1")
	require.True(t, ok)
	assert.Equal(t, int64(1), li.Quantity())
}

package clear_cart

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

func TestExecute_ClearsAndPersistsEmptySnapshot(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cart := domain.NewCart("cart-1", clk)
	store := repo.NewMemoryStore()
	interactor := NewInteractor(cart, store, clk, slog.New(slog.NewTextHandler(io.Discard, nil)))

	cart.AddItem(&domain.Product{ID: "p1", Name: "SSD", Price: decimal.NewFromInt(1200)}, nil, 2)
	cart.DrainEvents()

	ctx := context.Background()
	require.NoError(t, interactor.Execute(ctx))

	assert.Equal(t, 0, cart.Len())
	snap, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Empty(t, snap.Items)
	assert.Equal(t, clk.Now(), snap.SavedAt)
}

package cart_summary

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
)

func TestExecute(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cart := domain.NewCart("cart-1", clk)
	cart.AddItem(&domain.Product{ID: "p1", Name: "SSD", Price: decimal.NewFromInt(1200)}, nil, 2)
	cart.AddItem(&domain.Product{ID: "p2", Name: "Mystery"}, nil, 1) // no price

	dto := NewQuery(cart).Execute(context.Background())

	assert.Equal(t, "cart-1", dto.CartID)
	assert.Equal(t, int64(3), dto.TotalItemCount)
	assert.True(t, dto.Subtotal.Equal(decimal.NewFromInt(2400)))

	require.Len(t, dto.Items, 2)
	assert.Equal(t, "p1", dto.Items[0].CompositeKey)
	assert.True(t, dto.Items[0].LineTotal.Equal(decimal.NewFromInt(2400)))
	assert.True(t, dto.Items[1].LineTotal.IsZero())
}

func TestExecute_RecomputedOnEveryRead(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	cart := domain.NewCart("cart-1", clk)
	query := NewQuery(cart)
	ctx := context.Background()

	assert.Equal(t, int64(0), query.Execute(ctx).TotalItemCount)

	cart.AddItem(&domain.Product{ID: "p1", Name: "Fan", Price: decimal.NewFromInt(150)}, nil, 5)
	assert.Equal(t, int64(5), query.Execute(ctx).TotalItemCount)
}

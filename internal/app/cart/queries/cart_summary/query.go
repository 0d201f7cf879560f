package cart_summary

import (
	"context"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
)

// Query derives the cart view pages render: rows in display order plus
// totals. Pure read, recomputed on every call, never cached.
type Query struct {
	cart *domain.Cart
}

// NewQuery creates a new cart summary query.
func NewQuery(cart *domain.Cart) *Query {
	return &Query{cart: cart}
}

// Execute builds the summary from the live cart state.
func (q *Query) Execute(_ context.Context) *contracts.CartSummaryDTO {
	items := q.cart.Items()
	dto := &contracts.CartSummaryDTO{
		CartID:         q.cart.ID(),
		Items:          make([]contracts.LineItemDTO, 0, len(items)),
		TotalItemCount: q.cart.TotalItemCount(),
		Subtotal:       q.cart.Subtotal(),
	}
	for _, li := range items {
		dto.Items = append(dto.Items, contracts.LineItemDTO{
			CompositeKey: li.CompositeKey(),
			Name:         li.Name(),
			UnitPrice:    li.UnitPrice(),
			ImageURL:     li.ImageURL(),
			Quantity:     li.Quantity(),
			LineTotal:    li.LineTotal(),
		})
	}
	return dto
}

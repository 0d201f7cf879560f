package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
)

// NewSnapshot builds a populated snapshot for store tests.
func NewSnapshot(cartID, revision string) *domain.Snapshot {
	return &domain.Snapshot{
		CartID:   cartID,
		Revision: revision,
		SavedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Items: []domain.LineItemRecord{
			{
				CompositeKey: "p1-red",
				ProductID:    "p1",
				VariantID:    "red",
				Name:         "Keyboard (Red)",
				UnitPrice:    decimal.RequireFromString("949.99"),
				ImageURL:     "kb-red.png",
				Quantity:     2,
			},
			{
				CompositeKey: "p2",
				ProductID:    "p2",
				Name:         "Mouse",
				UnitPrice:    decimal.NewFromInt(350),
				Quantity:     1,
			},
		},
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the full persisted cart state at a point in time. It is
// written as a complete replacement on every mutation and read once at
// startup; insertion order of Items is display order and survives the
// round trip untouched.
type Snapshot struct {
	CartID   string           `json:"cart_id"`
	Revision string           `json:"revision"`
	SavedAt  time.Time        `json:"saved_at"`
	Items    []LineItemRecord `json:"items"`
}

// LineItemRecord is the persistable shape of one cart row.
type LineItemRecord struct {
	CompositeKey string          `json:"composite_key"`
	ProductID    string          `json:"product_id"`
	VariantID    string          `json:"variant_id,omitempty"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ImageURL     string          `json:"image_url,omitempty"`
	Quantity     int64           `json:"quantity"`
}

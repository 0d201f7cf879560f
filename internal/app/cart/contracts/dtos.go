package contracts

import "github.com/shopspring/decimal"

// LineItemDTO is the read-side view of one cart row.
type LineItemDTO struct {
	CompositeKey string          `json:"composite_key"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ImageURL     string          `json:"image_url,omitempty"`
	Quantity     int64           `json:"quantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// CartSummaryDTO is the read-side view of the whole cart: the rows in
// display order plus the derived aggregates pages render.
type CartSummaryDTO struct {
	CartID         string          `json:"cart_id"`
	Items          []LineItemDTO   `json:"items"`
	TotalItemCount int64           `json:"total_item_count"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// BuildSlotDTO is the read-side view of one builder slot.
type BuildSlotDTO struct {
	SlotID      string          `json:"slot_id"`
	SlotName    string          `json:"slot_name"`
	ProductID   string          `json:"product_id,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Populated   bool            `json:"populated"`
}

// BuildSummaryDTO is the read-side view of the PC-builder selection.
type BuildSummaryDTO struct {
	Slots          []BuildSlotDTO  `json:"slots"`
	PopulatedCount int             `json:"populated_count"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Complete       bool            `json:"complete"`
}

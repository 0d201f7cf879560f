package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartEvent is the base interface for all cart domain events.
type CartEvent interface {
	EventType() string
	AggregateID() string
}

// ItemAddedEvent is emitted when an addition creates a new cart row.
type ItemAddedEvent struct {
	CartID       string
	CompositeKey string
	ProductID    string
	VariantID    string
	UnitPrice    decimal.Decimal
	Quantity     int64
	At           time.Time
}

func (e *ItemAddedEvent) EventType() string   { return "cart.item_added" }
func (e *ItemAddedEvent) AggregateID() string { return e.CartID }

// ItemMergedEvent is emitted when an addition folds into an existing row.
type ItemMergedEvent struct {
	CartID       string
	CompositeKey string
	AddedQty     int64
	NewQuantity  int64
	At           time.Time
}

func (e *ItemMergedEvent) EventType() string   { return "cart.item_merged" }
func (e *ItemMergedEvent) AggregateID() string { return e.CartID }

// QuantityAdjustedEvent is emitted when a row quantity changes by delta.
type QuantityAdjustedEvent struct {
	CartID       string
	CompositeKey string
	Delta        int64
	NewQuantity  int64
	At           time.Time
}

func (e *QuantityAdjustedEvent) EventType() string   { return "cart.quantity_adjusted" }
func (e *QuantityAdjustedEvent) AggregateID() string { return e.CartID }

// ItemRemovedEvent is emitted when a row is explicitly removed.
type ItemRemovedEvent struct {
	CartID       string
	CompositeKey string
	At           time.Time
}

func (e *ItemRemovedEvent) EventType() string   { return "cart.item_removed" }
func (e *ItemRemovedEvent) AggregateID() string { return e.CartID }

// CartClearedEvent is emitted when the cart is emptied in one action.
type CartClearedEvent struct {
	CartID       string
	RemovedRows  int
	At           time.Time
}

func (e *CartClearedEvent) EventType() string   { return "cart.cleared" }
func (e *CartClearedEvent) AggregateID() string { return e.CartID }

// BuildCommittedEvent is emitted when a PC build selection is pushed into
// the cart.
type BuildCommittedEvent struct {
	CartID         string
	ComponentCount int
	TotalPrice     decimal.Decimal
	At             time.Time
}

func (e *BuildCommittedEvent) EventType() string   { return "cart.build_committed" }
func (e *BuildCommittedEvent) AggregateID() string { return e.CartID }

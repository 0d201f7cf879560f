package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
)

// Cart is the aggregate root for shopper intent. It holds the ordered row
// sequence (insertion order is display order), records domain events for
// every mutation, and converts to/from the persisted Snapshot. It performs
// no I/O itself; use cases persist the snapshot after each mutation.
//
// The cart is a process-wide singleton with single-threaded callers; it
// carries no locking of its own.
type Cart struct {
	id    string
	items []*LineItem

	// Clock for event timestamps (injected for testability)
	clock clock.Clock

	// Domain events recorded since the last drain
	events []CartEvent
}

// NewCart creates an empty cart.
func NewCart(id string, clk clock.Clock) *Cart {
	return &Cart{
		id:     id,
		clock:  clk,
		events: make([]CartEvent, 0),
	}
}

// ReconstructCart rehydrates a cart verbatim from a persisted snapshot.
func ReconstructCart(snap *Snapshot, clk clock.Clock) *Cart {
	items := make([]*LineItem, 0, len(snap.Items))
	for _, rec := range snap.Items {
		items = append(items, lineItemFromRecord(rec))
	}
	return &Cart{
		id:     snap.CartID,
		items:  items,
		clock:  clk,
		events: make([]CartEvent, 0),
	}
}

// ID returns the cart identity.
func (c *Cart) ID() string { return c.id }

// Items returns the rows in display order. The slice is a copy; the rows
// are live and must not be mutated by callers.
func (c *Cart) Items() []*LineItem {
	out := make([]*LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Item looks up a row by composite key.
func (c *Cart) Item(compositeKey string) (*LineItem, bool) {
	for _, li := range c.items {
		if li.compositeKey == compositeKey {
			return li, true
		}
	}
	return nil, false
}

// Len returns the number of distinct rows.
func (c *Cart) Len() int { return len(c.items) }

// AddItem adds a product (with optional variant) to the cart. An addition
// whose composite key matches an existing row folds its quantity into that
// row and leaves every other field untouched; otherwise a new row is
// appended at the end. A requested quantity below 1 counts as 1.
func (c *Cart) AddItem(product *Product, variant *Variant, quantity int64) *LineItem {
	if quantity < 1 {
		quantity = 1
	}

	key := CompositeKey(product.ID, variant)
	if existing, ok := c.Item(key); ok {
		existing.addQuantity(quantity)
		c.recordEvent(&ItemMergedEvent{
			CartID:       c.id,
			CompositeKey: key,
			AddedQty:     quantity,
			NewQuantity:  existing.quantity,
			At:           c.now(),
		})
		return existing
	}

	li := NewLineItem(product, variant, quantity)
	c.items = append(c.items, li)
	c.recordEvent(&ItemAddedEvent{
		CartID:       c.id,
		CompositeKey: li.compositeKey,
		ProductID:    li.productID,
		VariantID:    li.variantID,
		UnitPrice:    li.unitPrice,
		Quantity:     li.quantity,
		At:           c.now(),
	})
	return li
}

// AdjustQuantity applies a signed delta to the row with the given key,
// clamped at a floor of 1. Unknown keys are a no-op and report false.
func (c *Cart) AdjustQuantity(compositeKey string, delta int64) bool {
	li, ok := c.Item(compositeKey)
	if !ok {
		return false
	}
	li.adjustQuantity(delta)
	c.recordEvent(&QuantityAdjustedEvent{
		CartID:       c.id,
		CompositeKey: compositeKey,
		Delta:        delta,
		NewQuantity:  li.quantity,
		At:           c.now(),
	})
	return true
}

// RemoveItem deletes the row with the given key. Unknown keys are a no-op
// and report false, so removal is idempotent.
func (c *Cart) RemoveItem(compositeKey string) bool {
	for i, li := range c.items {
		if li.compositeKey == compositeKey {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.recordEvent(&ItemRemovedEvent{
				CartID:       c.id,
				CompositeKey: compositeKey,
				At:           c.now(),
			})
			return true
		}
	}
	return false
}

// Clear empties the cart in one action (used after a successful checkout).
func (c *Cart) Clear() {
	removed := len(c.items)
	c.items = c.items[:0]
	c.recordEvent(&CartClearedEvent{
		CartID:      c.id,
		RemovedRows: removed,
		At:          c.now(),
	})
}

// TotalItemCount is the sum of all row quantities (badge display).
func (c *Cart) TotalItemCount() int64 {
	var total int64
	for _, li := range c.items {
		total += li.quantity
	}
	return total
}

// Subtotal is the sum of unitPrice*quantity over all rows. Rows with a
// missing price contribute 0; the decimal zero value makes that the
// arithmetic default rather than a special case.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.LineTotal())
	}
	return total
}

// Snapshot converts the cart to its persistable shape with the given
// revision stamp.
func (c *Cart) Snapshot(revision string, savedAt time.Time) *Snapshot {
	items := make([]LineItemRecord, 0, len(c.items))
	for _, li := range c.items {
		items = append(items, li.Record())
	}
	return &Snapshot{
		CartID:   c.id,
		Revision: revision,
		SavedAt:  savedAt,
		Items:    items,
	}
}

// DomainEvents returns the events recorded since the last DrainEvents.
func (c *Cart) DomainEvents() []CartEvent { return c.events }

// DrainEvents returns and clears the recorded events.
func (c *Cart) DrainEvents() []CartEvent {
	out := c.events
	c.events = make([]CartEvent, 0)
	return out
}

func (c *Cart) recordEvent(event CartEvent) {
	c.events = append(c.events, event)
}

func (c *Cart) now() time.Time {
	if c.clock == nil {
		return time.Time{}
	}
	return c.clock.Now()
}

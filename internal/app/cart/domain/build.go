package domain

import "github.com/shopspring/decimal"

// SlotDefinition names one component category in the PC builder.
type SlotDefinition struct {
	ID   string
	Name string
}

// DefaultSlots is the component lineup of the storefront builder, in
// display order.
var DefaultSlots = []SlotDefinition{
	{ID: "cpu", Name: "Processor"},
	{ID: "main", Name: "Mainboard"},
	{ID: "ram", Name: "RAM"},
	{ID: "vga", Name: "Graphics Card"},
	{ID: "ssd", Name: "SSD Storage"},
	{ID: "psu", Name: "Power Supply"},
	{ID: "case", Name: "Case"},
	{ID: "screen", Name: "Monitor"},
}

// BuildSelection is the PC-builder state: a fixed ordered set of named
// slots, each holding at most one selected product. It is in-memory only
// and never persisted; slots are independent of each other and of the
// cart until CommitTo is called.
type BuildSelection struct {
	slots []*buildSlot
	index map[string]*buildSlot
}

type buildSlot struct {
	def     SlotDefinition
	product *Product
}

// NewBuildSelection creates a selection over the default slot lineup.
func NewBuildSelection() *BuildSelection {
	return NewBuildSelectionWithSlots(DefaultSlots)
}

// NewBuildSelectionWithSlots creates a selection over a custom slot lineup.
func NewBuildSelectionWithSlots(defs []SlotDefinition) *BuildSelection {
	bs := &BuildSelection{
		slots: make([]*buildSlot, 0, len(defs)),
		index: make(map[string]*buildSlot, len(defs)),
	}
	for _, def := range defs {
		slot := &buildSlot{def: def}
		bs.slots = append(bs.slots, slot)
		bs.index[def.ID] = slot
	}
	return bs
}

// Select puts a product into a slot, replacing any prior selection there.
func (bs *BuildSelection) Select(slotID string, product *Product) error {
	if product == nil {
		return ErrNilProduct
	}
	slot, ok := bs.index[slotID]
	if !ok {
		return ErrUnknownSlot
	}
	slot.product = product
	return nil
}

// ClearSlot empties a slot.
func (bs *BuildSelection) ClearSlot(slotID string) error {
	slot, ok := bs.index[slotID]
	if !ok {
		return ErrUnknownSlot
	}
	slot.product = nil
	return nil
}

// Selected returns the product currently held by a slot, if any.
func (bs *BuildSelection) Selected(slotID string) (*Product, bool) {
	slot, ok := bs.index[slotID]
	if !ok || slot.product == nil {
		return nil, false
	}
	return slot.product, true
}

// Slots returns the slot definitions in display order.
func (bs *BuildSelection) Slots() []SlotDefinition {
	out := make([]SlotDefinition, 0, len(bs.slots))
	for _, slot := range bs.slots {
		out = append(out, slot.def)
	}
	return out
}

// Components returns the selected products in slot order.
func (bs *BuildSelection) Components() []*Product {
	out := make([]*Product, 0, len(bs.slots))
	for _, slot := range bs.slots {
		if slot.product != nil {
			out = append(out, slot.product)
		}
	}
	return out
}

// TotalPrice is the sum of selected product prices, recomputed on read.
func (bs *BuildSelection) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, slot := range bs.slots {
		if slot.product != nil {
			total = total.Add(slot.product.Price)
		}
	}
	return total
}

// PopulatedCount is the number of non-empty slots.
func (bs *BuildSelection) PopulatedCount() int {
	count := 0
	for _, slot := range bs.slots {
		if slot.product != nil {
			count++
		}
	}
	return count
}

// IsComplete reports whether every slot holds a product. Display state
// only; committing a partial build is allowed.
func (bs *BuildSelection) IsComplete() bool {
	return bs.PopulatedCount() == len(bs.slots)
}

// CommitTo pushes every selected component into the cart, one unit each,
// no variant, in slot order. The selection is kept afterward; committing
// again merges the same rows up by one unit each.
func (bs *BuildSelection) CommitTo(cart *Cart) int {
	committed := 0
	for _, slot := range bs.slots {
		if slot.product == nil {
			continue
		}
		cart.AddItem(slot.product, nil, 1)
		committed++
	}
	if committed > 0 {
		cart.recordEvent(&BuildCommittedEvent{
			CartID:         cart.id,
			ComponentCount: committed,
			TotalPrice:     bs.TotalPrice(),
			At:             cart.now(),
		})
	}
	return committed
}

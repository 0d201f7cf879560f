package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LineItem is one cart row: a product/variant pair with a quantity and the
// unit price resolved at the moment it was first added. A merge of a later
// addition only touches the quantity; name, price and image stay as they
// were at first add.
type LineItem struct {
	compositeKey string
	productID    string
	variantID    string
	name         string
	unitPrice    decimal.Decimal
	imageURL     string
	quantity     int64
}

// CompositeKey derives the cart-row identity for a product and optional
// variant. Two additions with the same key fold into one row.
func CompositeKey(productID string, variant *Variant) string {
	if variant == nil {
		return productID
	}
	return productID + "-" + variant.ID
}

// NewLineItem builds a row from a resolved product and optional variant.
// A requested quantity below 1 is treated as 1.
func NewLineItem(product *Product, variant *Variant, quantity int64) *LineItem {
	if quantity < 1 {
		quantity = 1
	}

	li := &LineItem{
		compositeKey: CompositeKey(product.ID, variant),
		productID:    product.ID,
		name:         product.Name,
		unitPrice:    product.Price,
		imageURL:     product.ImageURL,
		quantity:     quantity,
	}

	if variant != nil {
		li.variantID = variant.ID
		li.unitPrice = variant.Price
		if variant.Color != "" {
			li.name = fmt.Sprintf("%s (%s)", product.Name, variant.Color)
		}
		if variant.ImageURL != "" {
			li.imageURL = variant.ImageURL
		}
	}

	return li
}

// Getters
func (li *LineItem) CompositeKey() string        { return li.compositeKey }
func (li *LineItem) ProductID() string           { return li.productID }
func (li *LineItem) VariantID() string           { return li.variantID }
func (li *LineItem) Name() string                { return li.name }
func (li *LineItem) UnitPrice() decimal.Decimal  { return li.unitPrice }
func (li *LineItem) ImageURL() string            { return li.imageURL }
func (li *LineItem) Quantity() int64             { return li.quantity }

// LineTotal is unitPrice * quantity. The decimal zero value stands in for a
// missing price, so a malformed row contributes 0 rather than poisoning the
// subtotal.
func (li *LineItem) LineTotal() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt(li.quantity))
}

// addQuantity folds a later addition into this row. Only the quantity moves;
// price-at-first-add is preserved deliberately.
func (li *LineItem) addQuantity(quantity int64) {
	if quantity < 1 {
		quantity = 1
	}
	li.quantity += quantity
}

// adjustQuantity applies a signed delta, clamped at a floor of 1. Dropping
// a row entirely is a separate explicit removal.
func (li *LineItem) adjustQuantity(delta int64) {
	li.quantity += delta
	if li.quantity < 1 {
		li.quantity = 1
	}
}

// Record converts the row to its persistable shape.
func (li *LineItem) Record() LineItemRecord {
	return LineItemRecord{
		CompositeKey: li.compositeKey,
		ProductID:    li.productID,
		VariantID:    li.variantID,
		Name:         li.name,
		UnitPrice:    li.unitPrice,
		ImageURL:     li.imageURL,
		Quantity:     li.quantity,
	}
}

// lineItemFromRecord rehydrates a row verbatim from a persisted record.
func lineItemFromRecord(rec LineItemRecord) *LineItem {
	return &LineItem{
		compositeKey: rec.CompositeKey,
		productID:    rec.ProductID,
		variantID:    rec.VariantID,
		name:         rec.Name,
		unitPrice:    rec.UnitPrice,
		imageURL:     rec.ImageURL,
		quantity:     rec.Quantity,
	}
}

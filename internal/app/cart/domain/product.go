package domain

import "github.com/shopspring/decimal"

// Product is the read-only catalog record handed to the cart by callers.
// It is already fetched and decoded by the page/service layer; the cart
// never goes to the network for it.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"imageUrl,omitempty"`
	Category *Category       `json:"category,omitempty"`
	Variants []Variant       `json:"variants,omitempty"`
}

// Category is an optional grouping reference on a product.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Variant is a concrete purchasable flavor of a product (color, spec bundle).
// Its identifiers are unique within the parent product only.
type Variant struct {
	ID            string          `json:"id"`
	Color         string          `json:"color,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int64          `json:"stockQuantity,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
}

// Variant returns the variant with the given ID, or nil when the product
// has no such variant.
func (p *Product) Variant(variantID string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

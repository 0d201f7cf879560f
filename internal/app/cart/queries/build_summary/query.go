package build_summary

import (
	"context"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
)

// Query derives the PC-builder view: every slot in lineup order with its
// selection, plus total price, populated count and completeness.
type Query struct {
	build *domain.BuildSelection
}

// NewQuery creates a new build summary query.
func NewQuery(build *domain.BuildSelection) *Query {
	return &Query{build: build}
}

// Execute builds the summary from the live selection state.
func (q *Query) Execute(_ context.Context) *contracts.BuildSummaryDTO {
	defs := q.build.Slots()
	dto := &contracts.BuildSummaryDTO{
		Slots:          make([]contracts.BuildSlotDTO, 0, len(defs)),
		PopulatedCount: q.build.PopulatedCount(),
		TotalPrice:     q.build.TotalPrice(),
		Complete:       q.build.IsComplete(),
	}
	for _, def := range defs {
		slot := contracts.BuildSlotDTO{
			SlotID:   def.ID,
			SlotName: def.Name,
		}
		if product, ok := q.build.Selected(def.ID); ok {
			slot.ProductID = product.ID
			slot.ProductName = product.Name
			slot.Price = product.Price
			slot.Populated = true
		}
		dto.Slots = append(dto.Slots, slot)
	}
	return dto
}

package m_cart_snapshot

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the cart_snapshots
// table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns the full column list in Data order, for reads.
func (m *Model) Columns() []string {
	return []string{CartID, Revision, SavedAt, ItemsJSON}
}

// UpsertMut creates a Spanner mutation replacing the snapshot row.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{
			CartID,
			Revision,
			SavedAt,
			ItemsJSON,
			UpdatedAt,
		},
		[]interface{}{
			data.CartID,
			data.Revision,
			data.SavedAt,
			data.ItemsJSON,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation deleting the snapshot row.
func (m *Model) DeleteMut(cartID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{cartID})
}

package m_cart_snapshot

// Field name constants for the cart_snapshots table.
const (
	TableName = "cart_snapshots"

	CartID    = "cart_id"
	Revision  = "revision"
	SavedAt   = "saved_at"
	ItemsJSON = "items_json"
	UpdatedAt = "updated_at"
)

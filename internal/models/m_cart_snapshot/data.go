package m_cart_snapshot

import "time"

// Data is the database row for the cart_snapshots table. One row per
// cart; every save replaces the row wholesale. The row set is stored as a
// JSON payload because the snapshot is only ever read and written as a
// unit, never queried per item.
type Data struct {
	CartID    string
	Revision  string
	SavedAt   time.Time
	ItemsJSON string
	UpdatedAt time.Time
}

package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/models/m_cart_snapshot"
)

// SpannerStore persists the cart snapshot as a single row in the
// cart_snapshots table, keyed by cart ID. The row is replaced wholesale
// on every save.
type SpannerStore struct {
	client *spanner.Client
	model  *m_cart_snapshot.Model
	cartID string
}

// NewSpannerStore creates a SnapshotStore backed by Spanner for the
// given cart.
func NewSpannerStore(client *spanner.Client, cartID string) contracts.SnapshotStore {
	return &SpannerStore{
		client: client,
		model:  m_cart_snapshot.NewModel(),
		cartID: cartID,
	}
}

// Load reads the snapshot row. A missing row is the first-run case and
// returns (nil, nil).
func (s *SpannerStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	row, err := s.client.Single().ReadRow(ctx, m_cart_snapshot.TableName, spanner.Key{s.cartID}, s.model.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	var data m_cart_snapshot.Data
	if err := row.Columns(&data.CartID, &data.Revision, &data.SavedAt, &data.ItemsJSON); err != nil {
		return nil, fmt.Errorf("failed to parse cart snapshot row: %w", err)
	}

	snap := &domain.Snapshot{
		CartID:   data.CartID,
		Revision: data.Revision,
		SavedAt:  data.SavedAt,
		Items:    make([]domain.LineItemRecord, 0),
	}
	if err := json.Unmarshal([]byte(data.ItemsJSON), &snap.Items); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot items: %w", err)
	}
	return snap, nil
}

// Save replaces the snapshot row.
func (s *SpannerStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot items: %w", err)
	}

	mut := s.model.UpsertMut(&m_cart_snapshot.Data{
		CartID:    snap.CartID,
		Revision:  snap.Revision,
		SavedAt:   snap.SavedAt,
		ItemsJSON: string(payload),
	})

	if _, err := s.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

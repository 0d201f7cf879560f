package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
)

// snapshotDoc is the Mongo document for one cart snapshot. Items travel
// as a JSON blob so decimal prices keep their exact textual form instead
// of being coerced through BSON numeric types.
type snapshotDoc struct {
	CartID    string    `bson:"_id"`
	Revision  string    `bson:"revision"`
	SavedAt   time.Time `bson:"saved_at"`
	ItemsJSON string    `bson:"items_json"`
}

// MongoStore persists the cart snapshot as a single document keyed by
// cart ID, replaced wholesale on every save.
type MongoStore struct {
	collection *mongo.Collection
	cartID     string
}

// NewMongoStore creates a SnapshotStore backed by a Mongo collection for
// the given cart.
func NewMongoStore(collection *mongo.Collection, cartID string) contracts.SnapshotStore {
	return &MongoStore{
		collection: collection,
		cartID:     cartID,
	}
}

// Load reads the snapshot document. A missing document is the first-run
// case and returns (nil, nil).
func (s *MongoStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc snapshotDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": s.cartID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	snap := &domain.Snapshot{
		CartID:   doc.CartID,
		Revision: doc.Revision,
		SavedAt:  doc.SavedAt,
		Items:    make([]domain.LineItemRecord, 0),
	}
	if err := json.Unmarshal([]byte(doc.ItemsJSON), &snap.Items); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot items: %w", err)
	}
	return snap, nil
}

// Save replaces the snapshot document, creating it when absent.
func (s *MongoStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	payload, err := json.Marshal(snap.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot items: %w", err)
	}

	doc := snapshotDoc{
		CartID:    snap.CartID,
		Revision:  snap.Revision,
		SavedAt:   snap.SavedAt,
		ItemsJSON: string(payload),
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": s.cartID}, doc, opts); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/repo"
	"github.com/light-bringer/pcshop-cart/tests/testutil"
)

func setupMongo(t *testing.T) *mongo.Collection {
	t.Helper()

	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err)

	collection := client.Database("pcshop_cart_test").Collection("cart_snapshots")
	_, err = collection.DeleteMany(ctx, bson.M{})
	require.NoError(t, err)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, _ = collection.DeleteMany(ctx, bson.M{})
		_ = client.Disconnect(ctx)
	})

	return collection
}

func TestMongoStore_RoundTrip(t *testing.T) {
	collection := setupMongo(t)
	ctx := context.Background()
	store := repo.NewMongoStore(collection, "cart-it-1")

	want := testutil.NewSnapshot("cart-it-1", "rev-1")
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.CartID, got.CartID)
	assert.Equal(t, want.Revision, got.Revision)
	require.Equal(t, len(want.Items), len(got.Items))
	for i := range want.Items {
		assert.True(t, want.Items[i].UnitPrice.Equal(got.Items[i].UnitPrice))
	}
}

func TestMongoStore_FirstRun(t *testing.T) {
	collection := setupMongo(t)
	store := repo.NewMongoStore(collection, "cart-never-saved")

	snap, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestMongoStore_UpsertReplaces(t *testing.T) {
	collection := setupMongo(t)
	ctx := context.Background()
	store := repo.NewMongoStore(collection, "cart-it-2")

	require.NoError(t, store.Save(ctx, testutil.NewSnapshot("cart-it-2", "rev-1")))
	require.NoError(t, store.Save(ctx, testutil.NewSnapshot("cart-it-2", "rev-2")))

	count, err := collection.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rev-2", got.Revision)
}

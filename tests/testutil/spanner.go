package testutil

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/light-bringer/pcshop-cart/internal/models/m_cart_snapshot"
)

// SetupSpannerTest creates a Spanner client against the test database and
// returns it with a cleanup function. Tests using it are built with the
// integration tag and expect the emulator (SPANNER_EMULATOR_HOST) or a
// real test instance.
func SetupSpannerTest(t *testing.T) (*spanner.Client, func()) {
	t.Helper()

	ctx := context.Background()

	var opts []option.ClientOption
	if os.Getenv("SPANNER_EMULATOR_HOST") != "" {
		opts = append(opts, option.WithoutAuthentication())
	}

	client, err := spanner.NewClient(ctx, GetTestSpannerDB(), opts...)
	require.NoError(t, err, "failed to create Spanner client")

	CleanDatabase(t, client)

	cleanup := func() {
		CleanDatabase(t, client)
		client.Close()
	}

	return client, cleanup
}

// GetTestSpannerDB returns the test Spanner database string.
func GetTestSpannerDB() string {
	if db := os.Getenv("SPANNER_TEST_DB"); db != "" {
		return db
	}
	return "projects/test-project/instances/test-instance/databases/pcshop-cart-test"
}

// CleanDatabase wipes the snapshot table for test isolation.
func CleanDatabase(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()
	mutations := []*spanner.Mutation{
		spanner.Delete(m_cart_snapshot.TableName, spanner.AllKeys()),
	}

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to clean database")
}

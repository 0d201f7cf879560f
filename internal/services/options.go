package services

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	mongooptions "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/queries/build_summary"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/queries/cart_summary"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/repo"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/clear_cart"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/commit_build"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/pcshop-cart/internal/pkg/clock"
	"github.com/light-bringer/pcshop-cart/internal/pkg/config"
)

// ServiceOptions holds the wired application: the one cart instance every
// consumer shares, its builder selection, and the use cases and queries
// operating on them. Constructed once at startup; all pages and tools go
// through this container so there is a single source of truth for cart
// state.
type ServiceOptions struct {
	Cart  *domain.Cart
	Build *domain.BuildSelection
	Store contracts.SnapshotStore

	AddItem        *add_item.Interactor
	UpdateQuantity *update_quantity.Interactor
	RemoveItem     *remove_item.Interactor
	ClearCart      *clear_cart.Interactor
	CommitBuild    *commit_build.Interactor

	CartSummary  *cart_summary.Query
	BuildSummary *build_summary.Query

	spannerClient *spanner.Client
	mongoClient   *mongo.Client
}

// NewServiceOptions opens the configured snapshot store, rehydrates the
// cart from its last snapshot (or starts a fresh one), and wires up all
// use cases and queries.
func NewServiceOptions(ctx context.Context, cfg config.Config, logger *slog.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{}

	cartID := cfg.CartID
	if cartID == "" {
		cartID = uuid.New().String()
	}

	store, err := opts.openStore(ctx, cfg, cartID)
	if err != nil {
		return nil, err
	}
	opts.Store = store

	clk := clock.NewRealClock()

	snap, err := store.Load(ctx)
	if err != nil {
		opts.Close()
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}

	var cart *domain.Cart
	if snap != nil {
		cart = domain.ReconstructCart(snap, clk)
		logger.Info("cart rehydrated",
			"cart_id", cart.ID(),
			"rows", cart.Len(),
			"revision", snap.Revision,
		)
	} else {
		cart = domain.NewCart(cartID, clk)
		logger.Info("cart initialized", "cart_id", cart.ID())
	}

	build := domain.NewBuildSelection()

	opts.Cart = cart
	opts.Build = build
	opts.AddItem = add_item.NewInteractor(cart, store, clk, logger)
	opts.UpdateQuantity = update_quantity.NewInteractor(cart, store, clk, logger)
	opts.RemoveItem = remove_item.NewInteractor(cart, store, clk, logger)
	opts.ClearCart = clear_cart.NewInteractor(cart, store, clk, logger)
	opts.CommitBuild = commit_build.NewInteractor(cart, build, store, clk, logger)
	opts.CartSummary = cart_summary.NewQuery(cart)
	opts.BuildSummary = build_summary.NewQuery(build)

	return opts, nil
}

func (s *ServiceOptions) openStore(ctx context.Context, cfg config.Config, cartID string) (contracts.SnapshotStore, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return repo.NewFileStore(cfg.SnapshotPath), nil

	case config.BackendMemory:
		return repo.NewMemoryStore(), nil

	case config.BackendMongo:
		client, err := mongo.Connect(ctx, mongooptions.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Mongo: %w", err)
		}
		s.mongoClient = client
		collection := client.Database(cfg.MongoDB).Collection("cart_snapshots")
		return repo.NewMongoStore(collection, cartID), nil

	case config.BackendSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		s.spannerClient = client
		return repo.NewSpannerStore(client, cartID), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// Close releases storage clients.
func (s *ServiceOptions) Close() {
	if s.spannerClient != nil {
		s.spannerClient.Close()
	}
	if s.mongoClient != nil {
		_ = s.mongoClient.Disconnect(context.Background())
	}
}

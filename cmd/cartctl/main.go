package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/pcshop-cart/internal/pkg/config"
	"github.com/light-bringer/pcshop-cart/internal/pkg/logger"
	"github.com/light-bringer/pcshop-cart/internal/services"
)

const usage = `cartctl inspects and mutates a persisted cart snapshot.

Usage:
  cartctl show
  cartctl add -product <product.json> [-variant <variantID>] [-qty <n>]
  cartctl qty -key <compositeKey> -delta <n>
  cartctl remove -key <compositeKey>
  cartctl clear

Storage is selected by CART_STORAGE (file|memory|mongo|spanner); see
internal/pkg/config for the full variable list.
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cartctl:", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "cartctl",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx := context.Background()
	svc, err := services.NewServiceOptions(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer svc.Close()

	switch os.Args[1] {
	case "show":
		return printJSON(svc.CartSummary.Execute(ctx))

	case "add":
		fs := flag.NewFlagSet("add", flag.ExitOnError)
		productPath := fs.String("product", "", "path to a product JSON file")
		variantID := fs.String("variant", "", "variant ID within the product")
		qty := fs.Int64("qty", 1, "quantity to add")
		if err := fs.Parse(os.Args[2:]); err != nil {
			return err
		}

		product, err := readProduct(*productPath)
		if err != nil {
			return err
		}
		var variant *domain.Variant
		if *variantID != "" {
			if variant = product.Variant(*variantID); variant == nil {
				return fmt.Errorf("product %s has no variant %q", product.ID, *variantID)
			}
		}

		key, err := svc.AddItem.Execute(ctx, &add_item.Request{
			Product:  product,
			Variant:  variant,
			Quantity: *qty,
		})
		if err != nil {
			return err
		}
		fmt.Println(key)
		return nil

	case "qty":
		fs := flag.NewFlagSet("qty", flag.ExitOnError)
		key := fs.String("key", "", "composite key of the cart row")
		delta := fs.Int64("delta", 0, "signed quantity delta")
		if err := fs.Parse(os.Args[2:]); err != nil {
			return err
		}
		return svc.UpdateQuantity.Execute(ctx, &update_quantity.Request{
			CompositeKey: *key,
			Delta:        *delta,
		})

	case "remove":
		fs := flag.NewFlagSet("remove", flag.ExitOnError)
		key := fs.String("key", "", "composite key of the cart row")
		if err := fs.Parse(os.Args[2:]); err != nil {
			return err
		}
		return svc.RemoveItem.Execute(ctx, &remove_item.Request{CompositeKey: *key})

	case "clear":
		return svc.ClearCart.Execute(ctx)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", os.Args[1])
	}
}

func readProduct(path string) (*domain.Product, error) {
	if path == "" {
		return nil, fmt.Errorf("-product is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product file: %w", err)
	}
	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product file: %w", err)
	}
	return &product, nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// Command migrate creates the Spanner schema for the snapshot store.
// Against the emulator it also creates the instance and database first.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	"cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	instance "cloud.google.com/go/spanner/admin/instance/apiv1"
	"cloud.google.com/go/spanner/admin/instance/apiv1/instancepb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var ddl = []string{
	`CREATE TABLE cart_snapshots (
		cart_id    STRING(64) NOT NULL,
		revision   STRING(64) NOT NULL,
		saved_at   TIMESTAMP NOT NULL,
		items_json STRING(MAX) NOT NULL,
		updated_at TIMESTAMP NOT NULL OPTIONS (allow_commit_timestamp = true)
	) PRIMARY KEY (cart_id)`,
}

var (
	projectID  = flag.String("project", getEnvOrDefault("SPANNER_PROJECT_ID", "test-project"), "GCP project ID")
	instanceID = flag.String("instance", getEnvOrDefault("SPANNER_INSTANCE_ID", "dev-instance"), "Spanner instance ID")
	databaseID = flag.String("database", getEnvOrDefault("SPANNER_DATABASE_ID", "pcshop-cart-db"), "Spanner database ID")
)

func main() {
	flag.Parse()

	ctx := context.Background()

	if emulatorHost := os.Getenv("SPANNER_EMULATOR_HOST"); emulatorHost != "" {
		log.Printf("Using Spanner emulator at %s", emulatorHost)
	}

	if err := run(ctx); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully!")
}

func run(ctx context.Context) error {
	if err := ensureInstance(ctx); err != nil {
		return fmt.Errorf("failed to ensure instance: %w", err)
	}
	return ensureDatabase(ctx)
}

func ensureInstance(ctx context.Context) error {
	instanceAdmin, err := instance.NewInstanceAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create instance admin client: %w", err)
	}
	defer instanceAdmin.Close()

	instanceName := fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID)

	_, err = instanceAdmin.GetInstance(ctx, &instancepb.GetInstanceRequest{Name: instanceName})
	if err == nil {
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get instance: %w", err)
	}

	log.Printf("Creating instance %s...", *instanceID)
	op, err := instanceAdmin.CreateInstance(ctx, &instancepb.CreateInstanceRequest{
		Parent:     fmt.Sprintf("projects/%s", *projectID),
		InstanceId: *instanceID,
		Instance: &instancepb.Instance{
			Config:      fmt.Sprintf("projects/%s/instanceConfigs/emulator-config", *projectID),
			DisplayName: "Cart Development Instance",
			NodeCount:   1,
		},
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil
		}
		return fmt.Errorf("failed to create instance: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("instance creation failed: %w", err)
	}
	return nil
}

func ensureDatabase(ctx context.Context) error {
	databaseAdmin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("failed to create database admin client: %w", err)
	}
	defer databaseAdmin.Close()

	databaseName := fmt.Sprintf("projects/%s/instances/%s/databases/%s", *projectID, *instanceID, *databaseID)

	_, err = databaseAdmin.GetDatabase(ctx, &databasepb.GetDatabaseRequest{Name: databaseName})
	if err == nil {
		log.Println("Database already exists, leaving schema untouched")
		return nil
	}
	if status.Code(err) != codes.NotFound {
		return fmt.Errorf("failed to get database: %w", err)
	}

	log.Printf("Creating database %s with schema...", *databaseID)
	op, err := databaseAdmin.CreateDatabase(ctx, &databasepb.CreateDatabaseRequest{
		Parent:          fmt.Sprintf("projects/%s/instances/%s", *projectID, *instanceID),
		CreateStatement: fmt.Sprintf("CREATE DATABASE `%s`", *databaseID),
		ExtraStatements: ddl,
	})
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	if _, err := op.Wait(ctx); err != nil {
		return fmt.Errorf("database creation failed: %w", err)
	}
	return nil
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"travelmap-api/internal/config"
	"travelmap-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// importer copies an accounts JSON file (as written by the file account store)
// into the PostgreSQL accounts table, replacing its content.
func main() {
	file := flag.String("file", "", "Path to the accounts JSON file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	ctx := context.Background()

	if _, err := os.Stat(*file); err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}

	accounts, err := repository.NewFileAccountStore(*file).LoadAccounts(ctx)
	if err != nil {
		fmt.Printf("Error parsing accounts: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d accounts\n", len(accounts))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.DBSource == "" {
		fmt.Println("Error: DB_SOURCE is not configured")
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	store := repository.NewPostgresAccountStore(conn)

	// Ensure table exists
	if err := store.EnsureSchema(ctx); err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	count, err := store.SaveAccounts(ctx, accounts)
	if err != nil {
		fmt.Printf("Error inserting accounts: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	if err := verifyImport(ctx, store, count); err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d accounts\n", count)
}

func verifyImport(ctx context.Context, store *repository.PostgresAccountStore, expectedCount int) error {
	stored, err := store.LoadAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to read back accounts: %w", err)
	}

	if len(stored) != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, len(stored))
	}
	return nil
}

package storedb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dashboard.solarcredits.org/internal/logging"
	"dashboard.solarcredits.org/internal/models"
)

// Client is the main entry point for the library
type Client struct {
	config        Config
	DB            *sql.DB
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := InitDB(config)
	if err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		DB:     db,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ImportRuntime reports how long the last ImportFromFile took.
func (c *Client) ImportRuntime() time.Duration {
	return c.importRuntime
}

// ImportFromFile loads a JSON array of store records and upserts them in a
// single transaction.
func (c *Client) ImportFromFile(ctx context.Context, path string) (err error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading seed file: %w", err)
	}

	var stores []models.Store
	if err = json.Unmarshal(data, &stores); err != nil {
		return fmt.Errorf("error parsing seed file %s: %w", path, err)
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting import transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.config.Logger, "import_stores")

	for _, store := range stores {
		if err = upsertStore(ctx, tx, store); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing import: %w", err)
	}

	c.importRuntime = time.Since(start)
	logging.LogOperation(c.config.Logger, "stores_imported",
		slog.String("source", path),
		slog.Int("stores_count", len(stores)),
		slog.Duration("duration", c.importRuntime))

	return nil
}

package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
)

// Client represents the local SQLite store used for the catalog snapshot
// and the audit outbox. It is always available, connected or not.
type Client struct {
	db *sqlx.DB
}

// DB returns the underlying database handle.
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Close closes the database connection for graceful shutdown.
func (c *Client) Close() error {
	return c.db.Close()
}

// MustNewClient opens the local database and bootstraps its schema. The
// local store is a hard dependency, so failure to open it is fatal.
func MustNewClient() *Client {
	path := viper.GetString("sqlite.path")
	if path == "" {
		path = "storefront.db"
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		panic(fmt.Sprintf("failed to open local store %s: %v", path, err))
	}

	if err := bootstrap(db); err != nil {
		panic(fmt.Sprintf("failed to bootstrap local store: %v", err))
	}

	return &Client{
		db: db,
	}
}

func bootstrap(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS catalog_snapshot (
			key TEXT PRIMARY KEY,
			payload BLOB NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS outbox (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			queue_name TEXT NOT NULL,
			routing_key TEXT NOT NULL,
			payload BLOB NOT NULL,
			content_type TEXT NOT NULL,
			retry_count INTEGER NOT NULL DEFAULT 0,
			max_retries INTEGER NOT NULL DEFAULT 5,
			last_error TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			next_retry_at TIMESTAMP NOT NULL
		)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

package sqliterepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sabordecasa/storefront/internal/dal/sqlite"
	"github.com/sabordecasa/storefront/internal/service/models/product"
)

const catalogKey = "catalog"

// SnapshotRepository persists the catalog snapshot in the local store. The
// snapshot is only ever read as a disconnected-mode fallback; it is never
// the source of truth while the remote store is reachable.
type SnapshotRepository struct {
	client *sqlite.Client
}

// NewSnapshotRepository creates a new snapshot repository.
func NewSnapshotRepository(client *sqlite.Client) *SnapshotRepository {
	return &SnapshotRepository{
		client: client,
	}
}

// Save overwrites the stored catalog snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, products []product.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode catalog snapshot: %w", err)
	}

	_, err = r.client.DB().ExecContext(ctx, `
		INSERT INTO catalog_snapshot (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, catalogKey, payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save catalog snapshot: %w", err)
	}

	return nil
}

// Load returns the stored catalog snapshot, or nil when none exists yet.
func (r *SnapshotRepository) Load(ctx context.Context) ([]product.Product, error) {
	var payload []byte
	err := r.client.DB().GetContext(ctx, &payload,
		`SELECT payload FROM catalog_snapshot WHERE key = ?`, catalogKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	var products []product.Product
	if err := json.Unmarshal(payload, &products); err != nil {
		return nil, fmt.Errorf("failed to decode catalog snapshot: %w", err)
	}

	return products, nil
}

package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresCache keeps the snapshot as a single row keyed by SnapshotKey, for
// deployments where the service's disk is ephemeral.
type PostgresCache struct {
	db *sql.DB
}

func NewPostgresCache(db *sql.DB) *PostgresCache {
	return &PostgresCache{db: db}
}

func (c *PostgresCache) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return c.db.PingContext(ctx)
	})
}

// EnsureSchema creates the snapshot table when it does not exist yet.
func (c *PostgresCache) EnsureSchema(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := c.db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS snapshots (
				key     TEXT PRIMARY KEY,
				payload JSONB NOT NULL
			)
		`)
		return err
	})
}

func (c *PostgresCache) Save(ctx context.Context, products []Product) error {
	snap, err := newSnapshot(products)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		_, err := c.db.ExecContext(ctx, `
			INSERT INTO snapshots (key, payload)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload
		`, SnapshotKey, payload)
		return err
	})
}

func (c *PostgresCache) Load(ctx context.Context) ([]Product, bool, error) {
	var payload []byte

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return c.db.QueryRowContext(ctx, `
			SELECT payload
			FROM snapshots
			WHERE key = $1
		`, SnapshotKey).Scan(&payload)
	})

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, false, nil
	}
	if !snap.valid() {
		return nil, false, nil
	}
	return snap.Products, true, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

package catalog

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// SnapshotKey is the single fixed key the collection is cached under. The
// name carries over from the storefront's browser cache.
const SnapshotKey = "fan_market_data"

// Cache persists the most recently fetched collection. Load reports
// ok=false for a missing snapshot and for one that fails its integrity
// check; a corrupt cache is indistinguishable from an absent one. Save
// overwrites unconditionally, there is no TTL and no versioning.
type Cache interface {
	Ping(ctx context.Context) error
	Save(ctx context.Context, products []Product) error
	Load(ctx context.Context) ([]Product, bool, error)
}

// snapshot is the serialized envelope around the product collection.
type snapshot struct {
	ID       string    `json:"id"`
	SavedAt  time.Time `json:"saved_at"`
	Checksum string    `json:"checksum"`
	Products []Product `json:"products"`
}

func newSnapshot(products []Product) (snapshot, error) {
	payload, err := json.Marshal(products)
	if err != nil {
		return snapshot{}, err
	}
	return snapshot{
		ID:       uuid.NewString(),
		SavedAt:  time.Now().UTC(),
		Checksum: checksum(payload),
		Products: products,
	}, nil
}

func (s snapshot) valid() bool {
	payload, err := json.Marshal(s.Products)
	if err != nil {
		return false
	}
	return s.Checksum == checksum(payload)
}

func checksum(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultCachePath is where the file cache lands when nothing is configured.
const DefaultCachePath = SnapshotKey + ".json"

// FileCache keeps the snapshot in a single JSON file next to the service.
type FileCache struct {
	Path string
}

func NewFileCache(path string) *FileCache {
	if path == "" {
		path = DefaultCachePath
	}
	return &FileCache{Path: path}
}

func (c *FileCache) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(c.Path))
	return err
}

func (c *FileCache) Save(ctx context.Context, products []Product) error {
	snap, err := newSnapshot(products)
	if err != nil {
		return err
	}

	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-save never leaves a torn snapshot.
	tmp := c.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, c.Path)
}

func (c *FileCache) Load(ctx context.Context) ([]Product, bool, error) {
	b, err := os.ReadFile(c.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, false, nil
	}
	if !snap.valid() {
		return nil, false, nil
	}
	return snap.Products, true, nil
}

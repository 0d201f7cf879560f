package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/light-bringer/pcshop-cart/internal/app/cart/contracts"
	"github.com/light-bringer/pcshop-cart/internal/app/cart/domain"
)

// FileStore persists the cart snapshot as a JSON file, the local-storage
// analog for single-machine use. Saves go through a temp file and rename
// so a crash mid-write never leaves a torn snapshot behind.
type FileStore struct {
	path string
}

// NewFileStore creates a SnapshotStore writing to the given path.
func NewFileStore(path string) contracts.SnapshotStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. A missing file is the first-run case and
// returns (nil, nil).
func (s *FileStore) Load(_ context.Context) (*domain.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return &snap, nil
}

// Save replaces the snapshot file atomically.
func (s *FileStore) Save(_ context.Context, snap *domain.Snapshot) error {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace cart snapshot: %w", err)
	}
	return nil
}

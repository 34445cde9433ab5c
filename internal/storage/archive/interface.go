// internal/storage/archive/interface.go
package archive

import (
	"context"
	"fmt"
)

// Storage holds trade screenshots as opaque blobs keyed by path. The
// journal core only ever tracks key presence; nothing here decodes images.
type Storage interface {
	// Write stores a blob at the given key.
	Write(ctx context.Context, key string, data []byte) error

	// Read retrieves the blob at the given key.
	Read(ctx context.Context, key string) ([]byte, error)

	// Delete removes the blob at the given key.
	Delete(ctx context.Context, key string) error

	// Exists checks whether a blob exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// ImageKey builds the archive key for a trade's screenshot.
func ImageKey(tradeID string) string {
	return fmt.Sprintf("trades/%s/image", tradeID)
}

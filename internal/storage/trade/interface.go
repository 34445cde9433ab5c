// internal/storage/trade/interface.go
package trade

import (
	"context"

	"github.com/jstrand/tradelog/internal/journal"
)

// Store defines the journal's trade collection: append-only with a
// clear-all reset. Reads return snapshots; callers never see shared slices.
type Store interface {
	// Append adds a trade and assigns its ID.
	Append(ctx context.Context, rec journal.TradeRecord) (journal.TradeRecord, error)

	// GetByID retrieves a trade by its ID.
	GetByID(ctx context.Context, id string) (*journal.TradeRecord, error)

	// SetImageKey attaches an archive key to an existing trade.
	SetImageKey(ctx context.Context, id, key string) error

	// List returns a snapshot of all trades in insertion order.
	List(ctx context.Context) ([]journal.TradeRecord, error)

	// Count returns the number of trades.
	Count(ctx context.Context) (int, error)

	// Clear removes every trade.
	Clear(ctx context.Context) error
}

// internal/storage/trade/memory.go
package trade

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jstrand/tradelog/internal/core"
	"github.com/jstrand/tradelog/internal/journal"
)

// MemoryStore is an in-memory trade store. The journal lives for the
// lifetime of the process; durability is out of scope.
type MemoryStore struct {
	trades []journal.TradeRecord
	mu     sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds a trade to the store and assigns its ID.
func (m *MemoryStore) Append(ctx context.Context, rec journal.TradeRecord) (journal.TradeRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = uuid.NewString()
	m.trades = append(m.trades, rec)
	return rec, nil
}

// GetByID retrieves a trade by ID.
func (m *MemoryStore) GetByID(ctx context.Context, id string) (*journal.TradeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.trades {
		if m.trades[i].ID == id {
			rec := m.trades[i]
			return &rec, nil
		}
	}
	return nil, core.ErrTradeNotFound
}

// SetImageKey attaches an archive key to an existing trade.
func (m *MemoryStore) SetImageKey(ctx context.Context, id, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.trades {
		if m.trades[i].ID == id {
			m.trades[i].ImageKey = key
			return nil
		}
	}
	return core.ErrTradeNotFound
}

// List returns a snapshot of all trades in insertion order.
func (m *MemoryStore) List(ctx context.Context) ([]journal.TradeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]journal.TradeRecord, len(m.trades))
	copy(out, m.trades)
	return out, nil
}

// Count returns the number of trades.
func (m *MemoryStore) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trades), nil
}

// Clear removes every trade.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trades = nil
	return nil
}

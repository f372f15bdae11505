package blob

import (
	"context"
	"sync"
	"time"

	"github.com/davantedent/clinic-scheduler/internal/store"
)

// MemoryBlob is the dev default and the test substitute for the real
// substrates.
type MemoryBlob struct {
	mu    sync.Mutex
	value string
	set   bool
}

func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{}
}

func (b *MemoryBlob) Get(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.set {
		return "", store.ErrNoData
	}
	return b.value, nil
}

func (b *MemoryBlob) Set(ctx context.Context, value string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.value, b.set = value, true
	return nil
}

// Seed drops a raw blob straight into the slot, bypassing the store.
func (b *MemoryBlob) Seed(value string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.value, b.set = value, true
}

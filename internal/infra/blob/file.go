package blob

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/davantedent/clinic-scheduler/internal/store"
)

// FileBlob keeps the collection in a single local file. Writes go through a
// temp file plus rename so a crash never leaves a half-written slot.
type FileBlob struct {
	mu   sync.Mutex
	path string
}

func NewFileBlob(path string) *FileBlob {
	return &FileBlob{path: path}
}

func (b *FileBlob) Get(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", store.ErrNoData
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Set ignores the ttl: a local file does not expire.
func (b *FileBlob) Set(ctx context.Context, value string, _ time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, b.path)
}

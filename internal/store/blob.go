package store

import (
	"context"
	"errors"
	"time"
)

// ErrNoData reports an empty persistence slot: nothing was ever written, or
// the previous write expired.
var ErrNoData = errors.New("store: no data")

// Blob is the persistence substrate, a single named slot holding one string.
// The browser cookie of the widget, a redis key and a local file all satisfy
// it. Substrates that cannot expire data ignore the ttl.
type Blob interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, value string, ttl time.Duration) error
}

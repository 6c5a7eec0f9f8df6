// Package store shelves finished archives, so replication-style tasks
// can move AIPs between the packer workspace and longer-term locations
// one archive at a time.
package store

import (
	"context"
	"io"
)

// Store keeps archives under flat string keys.
//
// Typically this is something file system-like, local or remote.
// Implementations of this interface are assumed to be fairly simple.
type Store interface {
	String() string
	Has(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Put(ctx context.Context, key string, r io.Reader) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

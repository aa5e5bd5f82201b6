// Package blob persists a single named byte blob. The entry store writes its
// whole serialized collection through one of these on every mutation.
package blob

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
)

// Store gets and sets one named blob.
type Store interface {
	// Get returns the blob, or nil with no error when nothing has been stored yet.
	Get(ctx context.Context) ([]byte, error)
	// Set replaces the blob.
	Set(ctx context.Context, data []byte) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// IsValid reports whether b names a supported backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}

func (b Backend) String() string { return string(b) }

// Config selects and locates a backend.
type Config struct {
	Backend Backend
	Path    string // file path (file) or database path (sqlite); relative to Dir
	Key     string // blob name
	Dir     string // data directory
}

// Open returns the Store selected by cfg.
func Open(ctx context.Context, cfg Config) (Store, error) {
	path := cfg.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Dir, path)
	}

	switch cfg.Backend {
	case BackendFile:
		return NewFileStore(path), nil
	case BackendSQLite:
		return OpenSQLite(ctx, path, cfg.Key)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}

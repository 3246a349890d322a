// Package storage provides the persisted key-value collaborator the event
// store serializes into. Backends are interchangeable; the engine above
// them only ever sees Get/Set/Remove on opaque blobs.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("storage: key not found")

// Store is a durable key-value collection of serialized blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, blob []byte) error
	Remove(ctx context.Context, key string) error
}

// Package records provides the key-value document store backing all portal
// entities. Every entity collection lives under one well-known key as a
// single JSON document, mirroring the storage layout of the original portal.
package records

import (
	"context"
	"errors"
)

// Well-known document keys.
const (
	KeyLoggedIn     = "isLoggedIn"
	KeyUser         = "demoUser"
	KeyInventory    = "demoInventory"
	KeyTransactions = "demoTransactions"
)

// ErrNotFound indicates the requested key has no stored document.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract for named JSON documents. Implementations
// must treat values as opaque bytes; decoding tolerance lives in the helpers
// on top of this interface.
type Store interface {
	// Read returns the raw document stored under key, or ErrNotFound.
	Read(ctx context.Context, key string) ([]byte, error)
	// Write stores the raw document under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error
	// Delete removes the document under key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

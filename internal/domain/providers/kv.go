package providers

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get when no live record exists
// under the key.
var ErrKeyNotFound = errors.New("kv: key not found")

// KVStore is the only persistence primitive in the system. Records are
// whole JSON values under string keys of the form "<type>:<id>"; prefix
// scans emulate "list all records of type T". There are no multi-key
// transactions and no compare-and-swap: every caller does plain
// read-modify-write and the last write wins.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Deleting an absent key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// GetByPrefix returns the values of every live record whose key
	// starts with prefix. Order is unspecified.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}

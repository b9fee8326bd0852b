package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no record is stored under the key.
var ErrNotFound = errors.New("record not found")

// RecordTx reads and writes durable records. Values are opaque bytes;
// callers own the encoding.
type RecordTx interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// RecordRepo manages independently keyed durable records.
type RecordRepo interface {
	RecordTx

	// Update runs fn inside a single transaction. The transaction commits
	// when fn returns nil and rolls back otherwise.
	Update(ctx context.Context, fn func(tx RecordTx) error) error
}

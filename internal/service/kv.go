// Package service defines the interfaces shared between packages.
package service

import "context"

// KeyValueStore is the persistent substrate the history and progress stores
// are built on. Values are opaque strings, usually JSON documents.
type KeyValueStore interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

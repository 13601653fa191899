// Package kv is the string-keyed store every persisted value of the timer
// lives in. Keys are flat and values are opaque strings; callers own the
// encoding.
package kv

import "context"

// Store is a persistent string-keyed mapping.
//
// Get reports ok=false for an absent key; that is never an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes all entries atomically.
	SetMany(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Package kvstore provides the string key-value slot the cart persists
// through, with in-memory, Postgres and Redis implementations. The contract
// is a single global slot per key: last writer wins, no versioning.
package kvstore

import "context"

// Store reads and writes string values by key. Get returns
// domain.ErrNotFound when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

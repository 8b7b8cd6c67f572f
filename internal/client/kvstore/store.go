// Package kvstore is the persistent string-keyed store the client keeps on
// device. Session identity, remembered credentials, conversation logs and
// document submissions all live here.
package kvstore

import "context"

// Store is the contract consumed by the session manager and the local
// message/document stores. Get returns common.ErrNotFound when the key is
// absent; Remove of a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, keys ...string) error
}

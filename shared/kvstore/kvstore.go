// Package kvstore defines the persistent string key-value port backing the
// account directory and session store. The store survives restarts on one
// device and may be shared with other processes; callers never assume
// exclusive access.
package kvstore

import "errors"

// ErrKeyNotFound is returned by Get when the key has never been set
// (or was deleted). Absence is a normal state, not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Store is the storage port. Values are opaque strings; callers own the
// serialization. Delete on an absent key is a no-op.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

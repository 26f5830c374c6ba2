package store

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// KV is the storage port. Values are whole JSON documents; writes replace the
// previous value (last-write-wins).
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys(prefix string) ([]string, error)
	Close() error
}

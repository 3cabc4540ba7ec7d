// Package kv provides the small key-value contract the booking store is laid
// out on, with in-memory, PostgreSQL, Redis and MongoDB drivers.
package kv

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("kv: key not found")

// Entry is one key/value pair returned by List.
type Entry struct {
	Key   string
	Value []byte
}

// Store is a flat key-value namespace with prefix listing.
type Store interface {
	// Put creates or overwrites key.
	Put(ctx context.Context, key string, value []byte) error

	// Get returns the value for key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every entry whose key starts with prefix, sorted by key.
	List(ctx context.Context, prefix string) ([]Entry, error)

	// Ping checks connectivity.
	Ping(ctx context.Context) error

	// Close releases driver resources.
	Close() error
}

// Driver names accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMongo    = "mongo"
)

// ErrUnknownDriver is returned for an unsupported driver name.
var ErrUnknownDriver = errors.New("kv: unknown driver")

// UnknownDriver wraps ErrUnknownDriver with the offending name.
func UnknownDriver(name string) error {
	return fmt.Errorf("%w %q (want memory, postgres, redis or mongo)", ErrUnknownDriver, name)
}

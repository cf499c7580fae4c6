// Package snapshot is the key-value surface the todo list is persisted to,
// plus the codec for the serialized list.
package snapshot

import "context"

// Store is a key-value snapshot surface. Get reports ok=false when the key
// has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	Set(ctx context.Context, key string, value []byte) error
}

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

func ValidDriver(driver string) bool {
	switch driver {
	case DriverMemory, DriverSQLite, DriverRedis, DriverPostgres:
		return true
	}
	return false
}

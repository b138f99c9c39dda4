package backend

import (
	"context"

	"fintrack/internal/core"
)

// Store is the record store contract: load-once-at-open, append-only,
// insertion-ordered reads.
type Store interface {
	// Append validates the transaction, adds it to the collection, and
	// persists immediately.
	Append(ctx context.Context, tx core.Transaction) error
	// List returns the full record collection in insertion order.
	List(ctx context.Context) ([]core.Transaction, error)
	Close() error
}

// CleanupFunc represents a cleanup function for resources
type CleanupFunc func() error

// Result contains the store instance and its cleanup function
type Result struct {
	Store   Store
	Cleanup CleanupFunc
}

// Factory creates stores based on configuration
type Factory interface {
	CreateStore(ctx context.Context, config Config) (*Result, error)
}

// Config holds configuration for store creation
type Config struct {
	Type BackendType

	// JSON backend specific
	DataFile string

	// SQLite backend specific
	SQLiteDBPath string
}

// BackendType represents the type of record store backing
type BackendType string

const (
	JSONBackend   BackendType = "json"
	SQLiteBackend BackendType = "sqlite"
)

// String implements fmt.Stringer
func (bt BackendType) String() string {
	return string(bt)
}

// IsValid returns true if the backend type is valid
func (bt BackendType) IsValid() bool {
	switch bt {
	case JSONBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

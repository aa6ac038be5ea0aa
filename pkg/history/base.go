// Package history provides interfaces and types for query history storage.
//
// It defines the Store interface that all history backends must satisfy,
// along with the persisted record type.
package history

import (
	"context"
	"time"

	"github.com/agentforgood/sahayak-go/pkg/domain"
)

// Record is one answered query persisted in the history store.
//
// This type is defined in the history package so backend packages do not
// depend on the core package.
type Record struct {
	// ID is the unique identifier of the record (snowflake).
	ID int64

	// UserID identifies the user who asked the question.
	UserID string

	// Query is the raw question text as received.
	Query string

	// Domain is the domain tag assigned by the classifier.
	Domain domain.Domain

	// Answer is the formatted answer returned to the user.
	Answer string

	// Model is the upstream model that produced the answer.
	Model string

	// CreatedAt is when the record was stored.
	CreatedAt time.Time
}

// Store defines the interface for query history backends.
//
// All backends (SQLite, PostgreSQL, MySQL) must implement this interface.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists one record.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - rec: Record to persist; ID must be set by the caller
	//
	// Returns an error if the write fails.
	Save(ctx context.Context, rec *Record) error

	// RecentByUser returns the most recent records for a user, newest first.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - userID: User whose history to fetch
	//   - limit: Maximum number of records to return
	//
	// Returns the records and any error.
	RecentByUser(ctx context.Context, userID string, limit int) ([]*Record, error)

	// CountByDomain returns the number of stored records per domain tag.
	//
	// Used for usage reporting in the CLI.
	CountByDomain(ctx context.Context) (map[domain.Domain]int, error)

	// Close closes the store and releases resources.
	Close() error
}

// Package history records evaluations on an optional tape.
//
// A Store is handed to the calculator with rpncalc.WithHistory. Nothing is
// written unless a caller opts in.
package history

import (
	"errors"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Store persists evaluation records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save appends a record. The store assigns Sequence; a zero Timestamp
	// is replaced with the current time.
	Save(rec Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(id string) (Record, error)

	// List returns records newest first.
	// Returns an empty slice (not an error) when nothing matches.
	List(opts ListOptions) ([]Record, error)

	// Delete removes one record. Returns nil if it doesn't exist.
	Delete(id string) error

	// Clear removes every record.
	Clear() error

	// Close releases any resources (connections, files).
	Close() error
}

// Record is one tape entry.
type Record struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Digest     uint64    `json:"digest"`
	Postfix    string    `json:"postfix,omitempty"`
	Success    bool      `json:"success"`
	Value      float64   `json:"value"`
	Message    string    `json:"message,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Sequence   int64     `json:"sequence"`
}

// ListOptions narrows List.
type ListOptions struct {
	// Limit caps the number of records; zero or negative means no limit.
	Limit int
	// Expression keeps only records whose expression matches exactly.
	Expression string
}

// Sentinel errors for history operations.
var (
	ErrNotFound    = errors.New("history record not found")
	ErrStoreClosed = errors.New("history store closed")
)

// NewRecord builds a record for expression with a fresh ID and digest.
func NewRecord(expression string) Record {
	return Record{
		ID:         uuid.NewString(),
		Expression: expression,
		Digest:     Digest(expression),
		Timestamp:  time.Now().UTC(),
	}
}

// Digest hashes an expression for indexed lookup.
func Digest(expression string) uint64 {
	return xxhash.Sum64String(expression)
}

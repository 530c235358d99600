// Package historydb provides data access objects for persisting a log of
// chunks that have been run through the recognizer, for later retrieval
// via the server's history endpoints.
package historydb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrConstraintViolation = errors.New("a uniqueness constraint was violated")
	ErrNotFound            = errors.New("the requested record was not found")
	ErrDecodingFailure     = errors.New("field could not be decoded from DB storage format to model format")
)

// ParseRecord is one past invocation of the recognizer: the source that
// was submitted, whether it was accepted, and if not, where and why it
// was rejected.
type ParseRecord struct {
	ID uuid.UUID

	// Source is the chunk that was submitted for recognition, or empty
	// if the caller only recorded its Digest for privacy.
	Source string

	// Digest is the blake2b-256 hash of the submitted source, always
	// recorded regardless of whether Source itself is kept.
	Digest []byte

	// ByteLength is len(source) at submission time, kept even when
	// Source is not, so history listings can still report chunk size.
	ByteLength int

	// Accepted is true if the chunk was a valid Lua 5.3 chunk.
	Accepted bool

	// FailureIndex is the byte offset recognition stopped at. Meaningless
	// if Accepted is true.
	FailureIndex int

	// FailureMessage is a human-readable description of why recognition
	// failed. Empty if Accepted is true.
	FailureMessage string

	SubmittedAt time.Time
}

// Store holds the repositories available from a connected database.
type Store interface {
	History() HistoryRepository
	Close() error
}

// HistoryRepository records and retrieves ParseRecords.
type HistoryRepository interface {
	Create(ctx context.Context, rec ParseRecord) (ParseRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (ParseRecord, error)

	// GetAll retrieves all ParseRecords from persistence, most recent
	// first. If notBefore is non-nil, only records submitted on or after
	// that time are included. If notAfter is non-nil, only records
	// submitted on or before that time are included.
	GetAll(ctx context.Context, notBefore *time.Time, notAfter *time.Time) ([]ParseRecord, error)

	Close() error
}

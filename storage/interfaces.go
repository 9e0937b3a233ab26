package storage

import (
	"context"

	"github.com/jotline/jotline/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds notes belonging to userId that are similar to the
	// given vector. Returns matches with similarity >= minSimilarity, up to
	// limit results, ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, userId string, vector []float32, minSimilarity float32, limit int) ([]core.SimilarityMatch, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// NoteRepository provides operations for managing notes.
// All reads are scoped to a single user; a note is only ever visible
// under the user id it was stored with.
type NoteRepository interface {
	Repository
	// AddNotes adds one or more notes to storage.
	// For notes with an empty Id, derives a content-based ID.
	// Sets CreatedAt to now if not already set.
	// Returns the notes with IDs and timestamps populated.
	AddNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// UpdateNotes updates existing notes.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any note doesn't exist.
	UpdateNotes(ctx context.Context, notes ...*core.Note) ([]*core.Note, error)

	// DeleteNotes removes a user's notes by their IDs.
	// Returns ErrNotFound if any note doesn't exist.
	DeleteNotes(ctx context.Context, userId string, ids ...core.ID) error

	// GetNote retrieves a single note by ID.
	// Returns ErrNotFound if the note doesn't exist for this user.
	GetNote(ctx context.Context, userId string, id core.ID) (*core.Note, error)

	// GetNotes retrieves multiple notes by their IDs.
	// Returns only the notes that exist (no error for missing notes).
	GetNotes(ctx context.Context, userId string, ids ...core.ID) ([]*core.Note, error)

	// ListNotes retrieves all notes belonging to a user.
	ListNotes(ctx context.Context, userId string) ([]*core.Note, error)
}

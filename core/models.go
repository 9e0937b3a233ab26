package core

import (
	"encoding/hex"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique, opaque identifier for domain entities.
// Callers may supply their own IDs; notes ingested without one get a
// content-derived ID from IDFromContent.
type ID string

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	return ID(hex.EncodeToString(h.Sum(nil)))
}

// Note is the unit of content being searched. Each note belongs to
// exactly one user; searches never cross user boundaries.
type Note struct {
	Id        ID
	UserId    string
	Title     string    // optional display name
	Content   string    // body text, may contain markup
	Tags      []string  // short curation labels, order-irrelevant
	Vector    []float32 // embedding for semantic search (populated by processors)
	CreatedAt time.Time // set at ingestion, not mutated afterwards
	UpdatedAt time.Time
}

// MatchType records which scorer(s) contributed a search result.
type MatchType int

const (
	// MatchTypeLexical means only the TF-IDF scorer matched.
	MatchTypeLexical MatchType = iota + 1
	// MatchTypeSemantic means only the vector index matched.
	MatchTypeSemantic
	// MatchTypeBoth means both scorers matched the same note.
	MatchTypeBoth
)

// String returns the display name of the match type.
func (m MatchType) String() string {
	switch m {
	case MatchTypeLexical:
		return "lexical"
	case MatchTypeSemantic:
		return "semantic"
	case MatchTypeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// SimilarityMatch represents a note match from vector similarity search.
type SimilarityMatch struct {
	NoteId ID
	Score  float32
}

// ScoredNote is a note annotated with its relevance for one query.
// It is constructed fresh per search invocation and never persisted.
type ScoredNote struct {
	Note      *Note
	Score     float64
	MatchType MatchType
}

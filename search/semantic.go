package search

import (
	"context"

	"github.com/jotline/jotline/core"
)

// Filter restricts a vector index query to a single user's notes.
// The scoping is mandatory; the index must never search across users.
type Filter struct {
	UserId string
}

// VectorIndex is the external similarity index the semantic scorer
// queries. Implementations return matches ordered by similarity,
// highest first, and must be safe for concurrent use.
type VectorIndex interface {
	Search(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error)
}

// SemanticSearch queries the vector index for notes related to the
// query, scoped to userId, and resolves the returned identifiers back
// to notes in the supplied collection. Matches below the similarity
// threshold are dropped, as are duplicate identifiers and identifiers
// the collection no longer contains (the index may be stale relative
// to the source of truth).
//
// Index failures degrade to an empty result; lexical scoring can still
// produce results independently.
func (s *Searcher) SemanticSearch(ctx context.Context, query string, notes []*core.Note, userId string) []*core.Note {
	matches, err := s.index.Search(ctx, query, s.weights.TopK, Filter{UserId: userId})
	if err != nil {
		s.logger.Warn("semantic search failed, degrading to empty result", "err", err)
		return []*core.Note{}
	}

	byId := make(map[core.ID]*core.Note, len(notes))
	for _, note := range notes {
		if note != nil {
			byId[note.Id] = note
		}
	}

	results := make([]*core.Note, 0, len(matches))
	seen := make(map[core.ID]bool, len(matches))
	for _, match := range matches {
		if match.Score < s.weights.SimilarityThreshold {
			continue
		}
		if seen[match.NoteId] {
			s.logger.Debug("dropping duplicate index hit", "id", match.NoteId)
			continue
		}
		note, ok := byId[match.NoteId]
		if !ok {
			s.logger.Debug("dropping stale index hit", "id", match.NoteId)
			continue
		}
		seen[match.NoteId] = true
		results = append(results, note)
	}

	return results
}

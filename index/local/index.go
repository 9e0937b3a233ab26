package local

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jotline/jotline/ai"
	"github.com/jotline/jotline/core"
	"github.com/jotline/jotline/search"
	"github.com/jotline/jotline/storage"
)

var (
	// ErrEmbedderRequired indicates that no embedder was provided.
	ErrEmbedderRequired = errors.New("embedder is required")

	// ErrRepositoryRequired indicates that no repository was provided.
	ErrRepositoryRequired = errors.New("repository is required")
)

// Index implements search.VectorIndex on top of the local note store.
// It embeds the query text and scans the user's stored note vectors
// for cosine-similar candidates.
type Index struct {
	embedder ai.Embedder
	repo     storage.Repository
	logger   *slog.Logger
}

var _ search.VectorIndex = (*Index)(nil)

// NewIndex creates a vector index over the given repository, using
// embedder to vectorize queries.
func NewIndex(embedder ai.Embedder, repo storage.Repository) (*Index, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	return &Index{
		embedder: embedder,
		repo:     repo,
		logger:   slog.Default().With("component", "local-index"),
	}, nil
}

// Search embeds the query and returns up to topK similarity matches
// scoped to the filter's user. Raw matches are returned unthresholded;
// relevance filtering is the caller's concern.
func (i *Index) Search(ctx context.Context, query string, topK int, filter search.Filter) ([]core.SimilarityMatch, error) {
	vector, err := i.embedder.EmbedText(ctx, query)
	if err != nil {
		i.logger.Error("failed to embed query", "err", err)
		return nil, err
	}
	if len(vector) == 0 {
		i.logger.Warn("embedder returned empty vector for query")
		return []core.SimilarityMatch{}, nil
	}

	return i.repo.FindSimilar(ctx, filter.UserId, vector, 0, topK)
}

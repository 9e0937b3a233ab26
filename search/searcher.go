package search

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jotline/jotline/core"
)

// Searcher runs the hybrid retrieval pipeline: query gate, concurrent
// lexical and semantic scoring, then rank fusion.
type Searcher struct {
	index   VectorIndex
	gate    *Gate
	weights Weights
	clock   func() time.Time
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithWeights overrides the scoring configuration. Zero fields fall
// back to their defaults.
func WithWeights(weights Weights) Option {
	return func(s *Searcher) error {
		weights.ApplyDefaults()
		s.weights = weights
		return nil
	}
}

// WithGate overrides the query gate.
func WithGate(gate *Gate) Option {
	return func(s *Searcher) error {
		if gate == nil {
			gate = NewGate(GateConfig{})
		}
		s.gate = gate
		return nil
	}
}

// WithClock injects the notion of "now" used for recency boosting.
// Default is time.Now. Fixing the clock makes search results fully
// deterministic for a given query and note snapshot.
func WithClock(clock func() time.Time) Option {
	return func(s *Searcher) error {
		if clock == nil {
			clock = time.Now
		}
		s.clock = clock
		return nil
	}
}

// NewSearcher creates a new searcher backed by the given vector index.
func NewSearcher(index VectorIndex, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, ErrVectorIndexRequired
	}

	s := &Searcher{
		index:   index,
		gate:    NewGate(GateConfig{}),
		weights: DefaultWeights(),
		clock:   time.Now,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindRelevantNotes returns the notes most relevant to the query,
// scoped to userId, best first, at most MaxResults entries.
func (s *Searcher) FindRelevantNotes(ctx context.Context, query string, notes []*core.Note, userId string) ([]*core.ScoredNote, error) {
	return s.FindRelevantNotesWithMonitor(ctx, query, notes, userId, nil)
}

// FindRelevantNotesWithMonitor is FindRelevantNotes with observation
// hooks at each stage of the pipeline.
//
// The gate runs before any scorer, so trivial queries never reach the
// vector index. The two scorers run concurrently; each converts its
// own failures into an empty result, so fusion always sees two
// well-formed lists. If ctx is cancelled while the scorers are in
// flight the partial results are discarded, never merged.
func (s *Searcher) FindRelevantNotesWithMonitor(ctx context.Context, query string, notes []*core.Note, userId string, monitor SearchMonitor) ([]*core.ScoredNote, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	if s.gate.ShouldSkip(query) {
		s.logger.Debug("query gate skipped search", "query", query)
		monitor.Skipped(query)
		return []*core.ScoredNote{}, nil
	}

	if len(notes) == 0 {
		return []*core.ScoredNote{}, nil
	}

	var lexical, semantic []*core.Note

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lexical = lexicalSearch(query, notes, s.weights, s.logger)
		return nil
	})
	g.Go(func() error {
		semantic = s.SemanticSearch(gctx, query, notes, userId)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// A superseded query must not surface stale results.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	monitor.AfterLexicalSearch(lexical)
	monitor.AfterSemanticSearch(semantic)

	results := Fuse(lexical, semantic, s.clock(), s.weights)
	monitor.Finish(results)

	return results, nil
}

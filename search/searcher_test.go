package search

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotline/jotline/core"
)

func TestNewSearcher(t *testing.T) {
	index := &mockIndex{}

	t.Run("valid configuration", func(t *testing.T) {
		searcher, err := NewSearcher(index)
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with custom logger", func(t *testing.T) {
		searcher, err := NewSearcher(index, WithLogger(slog.Default()))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		searcher, err := NewSearcher(index, WithLogger(nil))
		require.NoError(t, err)
		assert.NotNil(t, searcher)
	})

	t.Run("nil index", func(t *testing.T) {
		_, err := NewSearcher(nil)
		assert.Equal(t, ErrVectorIndexRequired, err)
	})

	t.Run("partial weights get defaults", func(t *testing.T) {
		searcher, err := NewSearcher(index, WithWeights(Weights{TagWeight: 10}))
		require.NoError(t, err)
		assert.Equal(t, 10.0, searcher.weights.TagWeight)
		assert.Equal(t, 5, searcher.weights.MaxResults)
	})
}

func TestFindRelevantNotes_GateShortCircuits(t *testing.T) {
	index := &mockIndex{}
	searcher := newTestSearcher(t, index)

	results, err := searcher.FindRelevantNotes(context.Background(), "ok", sampleNotes(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, index.calls, "gated queries must not reach the vector index")
}

func TestFindRelevantNotes_EmptyCollection(t *testing.T) {
	index := &mockIndex{}
	searcher := newTestSearcher(t, index)

	results, err := searcher.FindRelevantNotes(context.Background(), "notes about the garden fence", nil, "user-1")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFindRelevantNotes_SemanticOnly(t *testing.T) {
	index := &mockIndex{
		SearchFunc: func(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error) {
			return []core.SimilarityMatch{
				{NoteId: "2", Score: 0.9},
				{NoteId: "8", Score: 0.6},
				{NoteId: "5", Score: 0.3},
			}, nil
		},
	}
	searcher := newTestSearcher(t, index, WithClock(func() time.Time { return fixtureNow }))

	// Nothing in the fixture matches this lexically.
	results, err := searcher.FindRelevantNotes(context.Background(), "velocity of async execution", sampleNotes(), "user-1")
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, core.ID("2"), results[0].Note.Id)
	for _, result := range results {
		assert.Equal(t, core.MatchTypeSemantic, result.MatchType)
	}
}

func TestFindRelevantNotes_HybridOverlap(t *testing.T) {
	index := &mockIndex{
		SearchFunc: func(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error) {
			return []core.SimilarityMatch{
				{NoteId: "1", Score: 0.9},
				{NoteId: "2", Score: 0.5},
			}, nil
		},
	}
	searcher := newTestSearcher(t, index, WithClock(func() time.Time { return fixtureNow }))

	results, err := searcher.FindRelevantNotes(context.Background(), "javascript language notes", sampleNotes(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	assert.Equal(t, core.ID("1"), results[0].Note.Id)
	assert.Equal(t, core.MatchTypeBoth, results[0].MatchType)

	seen := make(map[core.ID]bool)
	for _, result := range results {
		assert.False(t, seen[result.Note.Id], "note %s appears twice in fused output", result.Note.Id)
		seen[result.Note.Id] = true
	}
}

func TestFindRelevantNotes_IndexFailureKeepsLexical(t *testing.T) {
	index := &mockIndex{
		SearchFunc: func(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error) {
			return nil, errors.New("index unavailable")
		},
	}
	searcher := newTestSearcher(t, index, WithClock(func() time.Time { return fixtureNow }))

	results, err := searcher.FindRelevantNotes(context.Background(), "javascript language notes", sampleNotes(), "user-1")
	require.NoError(t, err, "a broken index must be invisible to the caller")
	require.Len(t, results, 3)
	for _, result := range results {
		assert.Equal(t, core.MatchTypeLexical, result.MatchType)
	}
}

func TestFindRelevantNotes_TruncatesToMaxResults(t *testing.T) {
	index := &mockIndex{
		SearchFunc: func(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error) {
			var matches []core.SimilarityMatch
			for _, id := range []string{"1", "2", "3", "4", "5", "6", "7", "8"} {
				matches = append(matches, core.SimilarityMatch{NoteId: core.ID(id), Score: 0.8})
			}
			return matches, nil
		},
	}
	searcher := newTestSearcher(t, index, WithClock(func() time.Time { return fixtureNow }))

	results, err := searcher.FindRelevantNotes(context.Background(), "everything at once please", sampleNotes(), "user-1")
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestFindRelevantNotes_CancelledContext(t *testing.T) {
	index := &mockIndex{}
	searcher := newTestSearcher(t, index)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := searcher.FindRelevantNotes(ctx, "notes about the garden fence", sampleNotes(), "user-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFindRelevantNotesWithMonitor(t *testing.T) {
	index := &mockIndex{
		SearchFunc: func(ctx context.Context, query string, topK int, filter Filter) ([]core.SimilarityMatch, error) {
			return []core.SimilarityMatch{{NoteId: "1", Score: 0.9}}, nil
		},
	}
	searcher := newTestSearcher(t, index, WithClock(func() time.Time { return fixtureNow }))

	monitor := &testMonitor{}
	results, err := searcher.FindRelevantNotesWithMonitor(context.Background(), "javascript language notes", sampleNotes(), "user-1", monitor)
	require.NoError(t, err)
	assert.NotEmpty(t, results)

	assert.True(t, monitor.startCalled)
	assert.False(t, monitor.skippedCalled)
	assert.True(t, monitor.finishCalled)
	assert.NotEmpty(t, monitor.lexical)
	assert.NotEmpty(t, monitor.semantic)
}

func TestFindRelevantNotesWithMonitor_Skipped(t *testing.T) {
	searcher := newTestSearcher(t, &mockIndex{})

	monitor := &testMonitor{}
	results, err := searcher.FindRelevantNotesWithMonitor(context.Background(), "ok", sampleNotes(), "user-1", monitor)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.True(t, monitor.skippedCalled)
	assert.False(t, monitor.finishCalled)
}

type testMonitor struct {
	startCalled   bool
	skippedCalled bool
	finishCalled  bool
	lexical       []*core.Note
	semantic      []*core.Note
}

func (m *testMonitor) Start(query string)   { m.startCalled = true }
func (m *testMonitor) Skipped(query string) { m.skippedCalled = true }

func (m *testMonitor) AfterLexicalSearch(notes []*core.Note)  { m.lexical = notes }
func (m *testMonitor) AfterSemanticSearch(notes []*core.Note) { m.semantic = notes }

func (m *testMonitor) Finish(results []*core.ScoredNote) { m.finishCalled = true }

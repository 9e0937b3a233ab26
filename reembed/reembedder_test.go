package reembed

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotline/jotline/ai/mock"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 100, config.BatchSize)
	assert.Equal(t, 100, config.ReportInterval)
	assert.Equal(t, 3, config.MaxRetries)
	assert.Equal(t, time.Second, config.RetryDelay)
}

func TestReembedder_Run(t *testing.T) {
	repo := seedNotes(t, 12)
	ctx := context.Background()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		vectors := make([][]float32, len(texts))
		for i := range texts {
			vectors[i] = []float32{2.0, 0.0}
		}
		return vectors, nil
	}

	var out bytes.Buffer
	config := &Config{BatchSize: 5, ReportInterval: 5, MaxRetries: 2, RetryDelay: time.Millisecond}
	reembedder := NewReembedder(repo, embedder, "user-1", config, &out)

	require.NoError(t, reembedder.Run(ctx))

	notes, err := repo.ListNotes(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, notes, 12)
	for _, note := range notes {
		require.Len(t, note.Vector, 2)
		assert.InDelta(t, 1.0, note.Vector[0], 1e-6, "vectors come back normalized")
	}

	assert.Contains(t, out.String(), "Starting reembedding of 12 notes")
	assert.Contains(t, out.String(), "Reembedding complete")
}

func TestReembedder_Run_NoNotes(t *testing.T) {
	repo := seedNotes(t, 0)

	var out bytes.Buffer
	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), "user-1", nil, &out)

	require.NoError(t, reembedder.Run(context.Background()))
	assert.Contains(t, out.String(), "No notes found")
}

func TestReembedder_Run_EmbedderFailure(t *testing.T) {
	repo := seedNotes(t, 3)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("model unavailable")
	}

	var out bytes.Buffer
	config := &Config{BatchSize: 10, ReportInterval: 10, MaxRetries: 2, RetryDelay: time.Millisecond}
	reembedder := NewReembedder(repo, embedder, "user-1", config, &out)

	err := reembedder.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process batch")
}

func TestReembedder_Run_NilConfigUsesDefaults(t *testing.T) {
	repo := seedNotes(t, 1)

	var out bytes.Buffer
	reembedder := NewReembedder(repo, mock.NewMockEmbedder(), "user-1", nil, &out)

	require.NoError(t, reembedder.Run(context.Background()))
	assert.Equal(t, DefaultConfig().BatchSize, reembedder.config.BatchSize)
}

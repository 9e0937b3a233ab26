package reembed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jotline/jotline/ai"
	"github.com/jotline/jotline/core"
	"github.com/jotline/jotline/storage"
)

// BatchProcessor handles embedding generation for batches of notes.
type BatchProcessor struct {
	repo           storage.NoteRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.NoteRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of notes and updates them in
// the database. Vectors are normalized after embedding so cosine
// similarity reduces to a dot product.
func (bp *BatchProcessor) Process(ctx context.Context, notes []*core.Note) error {
	if len(notes) == 0 {
		return nil
	}

	texts := make([]string, len(notes))
	for i, note := range notes {
		texts[i] = noteText(note)
	}

	var vectors [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		vectors, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(vectors) != len(notes) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(notes), len(vectors))
	}

	for i := range notes {
		notes[i].Vector = NormalizeVector(vectors[i])
	}

	if _, err = bp.repo.UpdateNotes(ctx, notes...); err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}

	return nil
}

// noteText builds the text that represents a note for embedding.
// Must match what the ingestion pipeline embeds, or re-embedded and
// freshly ingested notes end up in incompatible spaces.
func noteText(note *core.Note) string {
	if note.Title == "" {
		return note.Content
	}
	return strings.TrimSpace(note.Title + "\n\n" + note.Content)
}

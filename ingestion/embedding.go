package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/jotline/jotline/ai"
	"github.com/jotline/jotline/core"
	"github.com/jotline/jotline/storage"
)

// embeddingProcessor generates embeddings for stored notes.
type embeddingProcessor struct {
	notes    storage.NoteRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(notes storage.NoteRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if notes == nil {
		return nil, fmt.Errorf("note repository required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		notes:    notes,
		embedder: embedder,
		logger:   logger.With("processor", "embeddings"),
	}, nil
}

// process generates embeddings for the specified notes.
func (ep *embeddingProcessor) process(ctx context.Context, userId string, ids ...core.ID) error {
	ep.logger.Info("processing notes for embeddings", "notes", len(ids))

	slices.Sort(ids)

	notes, err := ep.notes.GetNotes(ctx, userId, ids...)
	if err != nil {
		ep.logger.Error("error retrieving notes", "err", err)
		return err
	}
	if len(notes) == 0 {
		return nil
	}

	texts := make([]string, len(notes))
	for i, note := range notes {
		texts[i] = embeddingText(note)
	}

	ep.logger.Debug("generating embeddings for notes", "notes", len(texts))
	vectors, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(vectors) != len(notes) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(notes), len(vectors))
	}

	for i := range vectors {
		notes[i].Vector = vectors[i]
	}

	_, err = ep.notes.UpdateNotes(ctx, notes...)
	return err
}

// embeddingText builds the text that represents a note for embedding.
// The title carries a lot of signal, so it is embedded alongside the
// body rather than discarded.
func embeddingText(note *core.Note) string {
	if note.Title == "" {
		return note.Content
	}
	return strings.TrimSpace(note.Title + "\n\n" + note.Content)
}

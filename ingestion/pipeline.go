package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/jotline/jotline/ai"
	"github.com/jotline/jotline/core"
	"github.com/jotline/jotline/storage"
)

// Pipeline orchestrates the ingestion of notes. Notes are validated
// and persisted synchronously; embedding generation happens on a
// worker pool so ingestion latency stays independent of the embedding
// service.
type Pipeline struct {
	notes         storage.NoteRepository
	embeddingPool *ants.Pool
	embeddingProc processor
	logger        *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(notes storage.NoteRepository, provider ai.Provider, opts ...Option) (*Pipeline, error) {
	if notes == nil {
		return nil, ErrNoteRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		notes:         notes,
		embeddingPool: embeddingPool,
		logger:        slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	embeddingProc, err := newEmbeddingProcessor(notes, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.embeddingProc = embeddingProc

	return p, nil
}

// Ingest validates and stores the given notes, then submits them for
// asynchronous embedding. Notes with an empty Id get a content-derived
// one; a zero CreatedAt defaults to now. Validation failures reject
// the whole batch before anything is written. Errors during async
// embedding are logged but do not fail the ingestion.
func (p *Pipeline) Ingest(ctx context.Context, notes ...*core.Note) error {
	if len(notes) == 0 {
		return nil
	}

	for _, note := range notes {
		if note.Id == "" {
			note.Id = core.IDFromContent(note.Content)
		}
		if note.CreatedAt.IsZero() {
			note.CreatedAt = time.Now().UTC()
		}
		if err := core.ValidateNote(note); err != nil {
			return fmt.Errorf("rejecting batch: %w", err)
		}
	}

	added, err := p.notes.AddNotes(ctx, notes...)
	if err != nil {
		return err
	}

	// Group by owner; the repository reads are user-scoped.
	byUser := make(map[string][]core.ID)
	for _, note := range added {
		byUser[note.UserId] = append(byUser[note.UserId], note.Id)
	}

	for userId, ids := range byUser {
		p.embeddingPool.Submit(func() {
			if err := p.embeddingProc.process(context.Background(), userId, ids...); err != nil {
				p.logger.Error("error processing embeddings", "user", userId, "err", err)
			}
		})
	}

	return nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}

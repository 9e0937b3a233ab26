// Copyright 2025 The Jotline Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package jotline

import (
	"context"
	"io"
	"log/slog"

	"github.com/jotline/jotline/ai"
	"github.com/jotline/jotline/ai/openai"
	"github.com/jotline/jotline/core"
	"github.com/jotline/jotline/index/local"
	"github.com/jotline/jotline/ingestion"
	"github.com/jotline/jotline/reembed"
	"github.com/jotline/jotline/search"
	"github.com/jotline/jotline/storage"
	"github.com/jotline/jotline/storage/badger"
)

// Notebook is the composition root: it owns the storage backend, the
// embedding provider and the vector index, and hands out the pipeline
// and searcher built on top of them.
type Notebook struct {
	backend  *badger.Backend
	notes    storage.NoteRepository
	provider ai.Provider
	index    *local.Index
	logger   *slog.Logger
}

// NotebookOption configures a Notebook.
type NotebookOption func(*notebookOptions)

type notebookOptions struct {
	aiConfig *ai.Config
	inMemory bool
	provider ai.Provider
}

// WithAIConfig overrides the embedding service configuration.
func WithAIConfig(config *ai.Config) NotebookOption {
	return func(o *notebookOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithInMemoryStorage uses an in-memory BadgerDB instead of a
// filesystem path. Intended for tests and experiments.
func WithInMemoryStorage() NotebookOption {
	return func(o *notebookOptions) {
		o.inMemory = true
	}
}

// WithProvider injects a pre-built embedding provider, bypassing the
// OpenAI-compatible default.
func WithProvider(provider ai.Provider) NotebookOption {
	return func(o *notebookOptions) {
		o.provider = provider
	}
}

// Open opens a notebook stored at filePath.
func Open(filePath string, opts ...NotebookOption) (*Notebook, error) {
	options := &notebookOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	notes := badger.NewNoteRepository(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			backend.Close()
			return nil, err
		}
	}

	index, err := local.NewIndex(provider.Embedder(), notes)
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	return &Notebook{
		backend:  backend,
		notes:    notes,
		provider: provider,
		index:    index,
		logger:   slog.Default(),
	}, nil
}

// Close shuts down the provider and the storage backend.
func (n *Notebook) Close() error {
	if err := n.provider.Close(); err != nil {
		n.logger.Error("error closing AI provider", "err", err)
	}

	if err := n.backend.Close(); err != nil {
		n.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// NoteRepository returns the note store.
func (n *Notebook) NoteRepository() storage.NoteRepository {
	return n.notes
}

// NewIngestionPipeline builds an ingestion pipeline over this notebook.
func (n *Notebook) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(n.notes, n.provider, opts...)
}

// NewSearcher builds a searcher over this notebook's vector index.
func (n *Notebook) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(n.index, opts...)
}

// NewReembedder builds a reembedder for one user's notes.
// progress: where to write progress output (typically os.Stderr)
func (n *Notebook) NewReembedder(userId string, config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(n.notes, n.provider.Embedder(), userId, config, progress)
}

// Search runs the full retrieval pipeline for one query against all of
// the user's notes.
func (n *Notebook) Search(ctx context.Context, query, userId string, opts ...search.Option) ([]*core.ScoredNote, error) {
	searcher, err := n.NewSearcher(opts...)
	if err != nil {
		return nil, err
	}

	notes, err := n.notes.ListNotes(ctx, userId)
	if err != nil {
		return nil, err
	}

	return searcher.FindRelevantNotes(ctx, query, notes, userId)
}

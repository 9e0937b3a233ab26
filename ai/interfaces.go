package ai

import "context"

// Embedder turns text into vectors for semantic similarity search.
// Implementations must be safe for concurrent use.
type Embedder interface {
	// EmbedText embeds a single string.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts embeds a batch in one round trip. The result is
	// ordered to match texts.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Provider owns the embedding service and its lifecycle. Close releases
// whatever the provider holds; the Embedder must not be used afterwards.
type Provider interface {
	Embedder() Embedder
	Close() error
}

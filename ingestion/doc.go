// Package ingestion provides pipeline orchestration for storing notes.
//
// The Pipeline type manages the ingestion workflow, including:
//   - Validating and persisting notes
//   - Generating embeddings asynchronously
//
// Embedding runs on a worker pool so the write path never blocks on
// the embedding service. Errors during async processing are logged but
// do not fail the ingestion operation.
package ingestion

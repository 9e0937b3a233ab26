// Package reembed provides functionality for regenerating note
// embeddings with new or updated embedding models.
//
// Vectors stored under one model are meaningless to another, so after
// an embedding model change every note has to be re-vectorized before
// semantic search gives sensible results again. This package supports
// batch processing, progress tracking, retry logic with exponential
// backoff, and vector normalization.
package reembed

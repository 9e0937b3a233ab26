package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// MockEmbedder is a test double for ai.Embedder. By default it returns
// deterministic unit vectors derived from the input text, so the same
// text always embeds to the same point. Set the function fields to
// override behavior per test.
type MockEmbedder struct {
	EmbedTextFunc  func(ctx context.Context, text string) ([]float32, error)
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

const mockVectorDim = 384

// NewMockEmbedder returns the concrete type so tests can reach the
// function fields and call counters.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText embeds one string, via EmbedTextFunc when set.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return deterministicVector(text), nil
}

// EmbedTexts embeds a batch, via EmbedTextsFunc when set.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = deterministicVector(text)
	}
	return vectors, nil
}

// CallCount reports how many times either embed method ran.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// deterministicVector expands an FNV hash of the text into a normalized
// pseudo-random vector. Normalization matters: the local index treats
// stored vectors as unit length.
func deterministicVector(text string) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	state := h.Sum32()

	vector := make([]float32, mockVectorDim)
	var sumSquares float64
	for i := range vector {
		state = state*1664525 + 1013904223 // LCG step
		vector[i] = float32(state%1000) / 1000.0
		sumSquares += float64(vector[i]) * float64(vector[i])
	}

	if sumSquares > 0 {
		inv := float32(1 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= inv
		}
	}
	return vector
}

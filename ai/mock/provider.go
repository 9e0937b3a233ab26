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


package mock

import "github.com/jotline/jotline/ai"

// MockProvider is a test double for ai.Provider.
type MockProvider struct {
	embedder *MockEmbedder
}

// NewMockProvider wraps a fresh MockEmbedder. It returns the ai.Provider
// interface to mirror the production constructors; use GetMockEmbedder
// for assertions against the concrete type.
func NewMockProvider() ai.Provider {
	return NewMockProviderWithEmbedder(NewMockEmbedder())
}

// NewMockProviderWithEmbedder wraps a caller-supplied mock embedder,
// giving the test full control over embedding behavior.
func NewMockProviderWithEmbedder(embedder *MockEmbedder) ai.Provider {
	return &MockProvider{embedder: embedder}
}

// Embedder returns the mock embedder as ai.Embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder exposes the concrete embedder so tests can check call
// counts or inject behavior after construction.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

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


package ai

import (
	"errors"
	"strings"
)

// Config describes the embedding service the notebook talks to. Any
// OpenAI-compatible endpoint works: Ollama, LocalAI, vLLM, or the real
// thing.
type Config struct {
	// EmbeddingHost is the base URL of the embedding API, e.g.
	// "http://localhost:11434/v1".
	EmbeddingHost string

	// EmbeddingModel names the embedding model, e.g. "embeddinggemma"
	// or "text-embedding-3-small".
	EmbeddingModel string
}

// ConfigOption is a functional option for Config.
type ConfigOption func(*Config)

// WithHost sets the embedding service base URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model name.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// DefaultConfig targets a local Ollama instance.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:  "http://localhost:11434/v1",
		EmbeddingModel: "embeddinggemma",
	}
}

// NewConfig starts from DefaultConfig and applies opts in order.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the host into canonical form. OpenAI-compatible
// servers expect the /v1 path prefix, so it is appended when missing.
func (c *Config) Normalize() {
	host := strings.TrimSuffix(c.EmbeddingHost, "/")
	if host != "" && !strings.HasSuffix(host, "/v1") {
		host += "/v1"
	}
	if host != "" {
		c.EmbeddingHost = host
	}
}

// Validate normalizes the config and reports missing fields.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	return nil
}

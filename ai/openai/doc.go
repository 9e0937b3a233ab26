// Package openai implements the ai interfaces using OpenAI-compatible
// HTTP APIs via langchaingo. It works against any service speaking the
// OpenAI embeddings protocol: OpenAI itself, Ollama, LocalAI, vLLM.
package openai

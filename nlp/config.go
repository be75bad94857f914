// Copyright 2025 Cuisinise
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


package nlp

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for NLP model providers.
// An empty model name disables the corresponding sub-model; the provider
// substitutes a no-op implementation and reports it in Capabilities.
type Config struct {
	// EmbeddingHost is the base URL for the embedding service API.
	// Example: "http://localhost:11434/v1" for local OpenAI-compatible server
	EmbeddingHost string

	// ChatHost is the base URL for the chat completion API used by the
	// contextual suggester and the mask predictor.
	ChatHost string

	// EmbeddingModel is the model identifier to use for text embeddings.
	// Example: "embeddinggemma", "text-embedding-3-small". Empty disables embeddings.
	EmbeddingModel string

	// SuggesterModel is the chat model used for contextual correction.
	// Example: "qwen2.5:3b", "gpt-4o-mini". Empty disables the suggester.
	SuggesterModel string

	// MaskModel is the chat model used for masked-token prediction.
	// Empty disables mask scoring.
	MaskModel string

	// RequestTimeout bounds every individual model call. A timed-out call
	// degrades the affected candidate or layer instead of failing the request.
	// Default: 10s
	RequestTimeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithChatHost sets the chat service host URL.
func WithChatHost(host string) ConfigOption {
	return func(c *Config) {
		c.ChatHost = host
	}
}

// WithHost sets both embedding and chat hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.ChatHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithSuggesterModel sets the contextual suggester model identifier.
func WithSuggesterModel(model string) ConfigOption {
	return func(c *Config) {
		c.SuggesterModel = model
	}
}

// WithMaskModel sets the mask prediction model identifier.
func WithMaskModel(model string) ConfigOption {
	return func(c *Config) {
		c.MaskModel = model
	}
}

// WithRequestTimeout sets the per-call timeout for model requests.
func WithRequestTimeout(d time.Duration) ConfigOption {
	return func(c *Config) {
		c.RequestTimeout = d
	}
}

// DefaultConfig returns a Config with sensible defaults for local OpenAI-compatible services.
// By default, all three sub-models are enabled against the same host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  defaultHost,
		ChatHost:       defaultHost,
		EmbeddingModel: "embeddinggemma",
		SuggesterModel: "qwen2.5:3b",
		MaskModel:      "qwen2.5:3b",
		RequestTimeout: 10 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithHost("http://localhost:11434/v1"),
//	    WithEmbeddingModel("text-embedding-3-small"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.EmbeddingHost != "" && !strings.HasSuffix(c.EmbeddingHost, "/v1") {
		c.EmbeddingHost = strings.TrimSuffix(c.EmbeddingHost, "/")
		c.EmbeddingHost = c.EmbeddingHost + "/v1"
	}
	if c.ChatHost != "" && !strings.HasSuffix(c.ChatHost, "/v1") {
		c.ChatHost = strings.TrimSuffix(c.ChatHost, "/")
		c.ChatHost = c.ChatHost + "/v1"
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 10 * time.Second
	}
}

// Validate checks that the configuration is valid.
// It automatically normalizes the configuration before validation.
// A configuration with every model disabled is valid; the pipeline then
// runs fully degraded on deterministic rules alone.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingModel != "" && c.EmbeddingHost == "" {
		return errors.New("nlp config: EmbeddingHost is required when EmbeddingModel is set")
	}
	if (c.SuggesterModel != "" || c.MaskModel != "") && c.ChatHost == "" {
		return errors.New("nlp config: ChatHost is required when a chat model is set")
	}
	return nil
}

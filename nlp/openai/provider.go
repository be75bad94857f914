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


package openai

import (
	"log/slog"

	"github.com/HeshalD/Cuisinise/nlp"
)

// Provider implements nlp.ModelProvider using OpenAI-compatible services.
// Sub-models with an empty model name in the config are replaced by no-op
// implementations and reported as absent in Capabilities; the pipeline then
// degrades per layer instead of failing.
type Provider struct {
	config    *nlp.Config
	embedder  nlp.Embedder
	suggester nlp.Suggester
	mask      nlp.MaskPredictor
	caps      nlp.Capabilities
	logger    *slog.Logger
}

// NewProvider creates a new model provider with OpenAI-compatible services.
// The config is validated and normalized before use.
//
// Returns nlp.ModelProvider interface (not *Provider) to enforce abstraction
// and prevent coupling to OpenAI-specific implementation details.
func NewProvider(config *nlp.Config) (nlp.ModelProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Provider{
		config:    config,
		embedder:  nlp.NoopEmbedder{},
		suggester: nlp.NoopSuggester{},
		mask:      nlp.NoopMaskPredictor{},
		logger:    slog.Default().With("component", "openai-provider"),
	}

	if config.EmbeddingModel != "" {
		embedder, err := newEmbedder(config)
		if err != nil {
			return nil, err
		}
		p.embedder = embedder
		p.caps.Embedder = true
	}

	if config.SuggesterModel != "" {
		suggester, err := newSuggester(config)
		if err != nil {
			return nil, err
		}
		p.suggester = suggester
		p.caps.Suggester = true
	}

	if config.MaskModel != "" {
		mask, err := newMaskPredictor(config)
		if err != nil {
			return nil, err
		}
		p.mask = mask
		p.caps.MaskPredictor = true
	}

	p.logger.Debug("provider initialized",
		"embedder", p.caps.Embedder,
		"suggester", p.caps.Suggester,
		"maskModel", p.caps.MaskPredictor)

	return p, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() nlp.Embedder {
	return p.embedder
}

// Suggester returns the contextual correction service.
func (p *Provider) Suggester() nlp.Suggester {
	return p.suggester
}

// MaskPredictor returns the fill-in-the-blank service.
func (p *Provider) MaskPredictor() nlp.MaskPredictor {
	return p.mask
}

// Capabilities reports which sub-models are live.
func (p *Provider) Capabilities() nlp.Capabilities {
	return p.caps
}

// Close releases resources held by the provider.
// Currently a no-op as the underlying clients don't require explicit cleanup.
func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}

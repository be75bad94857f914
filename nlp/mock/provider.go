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


package mock

import "github.com/HeshalD/Cuisinise/nlp"

// MockProvider is a test double for nlp.ModelProvider.
// It aggregates mock sub-model instances and reports all capabilities live.
type MockProvider struct {
	embedder  *MockEmbedder
	suggester *MockSuggester
	mask      *MockMaskPredictor
}

// NewMockProvider creates a new mock provider with default mock services.
//
// Returns nlp.ModelProvider interface for consistency with production
// constructors. Use GetMockEmbedder()/GetMockSuggester()/GetMockMaskPredictor()
// to access concrete types for test assertions.
func NewMockProvider() nlp.ModelProvider {
	return &MockProvider{
		embedder:  NewMockEmbedder(),
		suggester: NewMockSuggester(),
		mask:      NewMockMaskPredictor(),
	}
}

// NewMockProviderWithServices creates a mock provider with custom mock services.
// This allows full control over the behavior of each service.
func NewMockProviderWithServices(embedder *MockEmbedder, suggester *MockSuggester, mask *MockMaskPredictor) nlp.ModelProvider {
	return &MockProvider{
		embedder:  embedder,
		suggester: suggester,
		mask:      mask,
	}
}

// Embedder returns the mock embedder.
func (p *MockProvider) Embedder() nlp.Embedder {
	return p.embedder
}

// Suggester returns the mock suggester.
func (p *MockProvider) Suggester() nlp.Suggester {
	return p.suggester
}

// MaskPredictor returns the mock mask predictor.
func (p *MockProvider) MaskPredictor() nlp.MaskPredictor {
	return p.mask
}

// Capabilities reports every sub-model as live.
func (p *MockProvider) Capabilities() nlp.Capabilities {
	return nlp.Capabilities{Embedder: true, Suggester: true, MaskPredictor: true}
}

// Close is a no-op for mock provider.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder returns the underlying mock embedder for test assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockSuggester returns the underlying mock suggester for test assertions.
func (p *MockProvider) GetMockSuggester() *MockSuggester {
	return p.suggester
}

// GetMockMaskPredictor returns the underlying mock mask predictor for test assertions.
func (p *MockProvider) GetMockMaskPredictor() *MockMaskPredictor {
	return p.mask
}

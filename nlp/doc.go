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


// Package nlp provides abstractions for the optional scoring models used by
// the correction pipeline.
//
// This package defines interfaces for text embeddings, contextual correction
// suggestions, and masked-token prediction. It follows the dependency
// inversion principle: the pipeline layers depend on these abstractions
// rather than on concrete model clients.
//
// # Design Principles
//
// The package is designed around three sub-model interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - Suggester: proposes a context-driven correction for a query
//   - MaskPredictor: fills masked tokens, used for plausibility scoring
//
// Every sub-model is optional. A ModelProvider substitutes the package's
// no-op implementations for models that are not configured, and reports
// the live set via Capabilities. Pipeline layers therefore never branch
// on model presence at call time: they call the sub-model and translate
// ErrModelUnavailable (or any runtime failure) into the documented
// degradation for that layer.
//
// # Implementation Packages
//
// The nlp package includes two implementation sub-packages:
//
//   - nlp/openai: production implementation using OpenAI-compatible APIs
//   - nlp/mock: test doubles for unit testing without external services
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, etc.) return
// INTERFACE types to enforce abstraction and prevent accidental coupling to
// concrete implementations.
//
//	provider, err := openai.NewProvider(config)  // returns nlp.ModelProvider
//
// Test utility constructors (mock.NewMockEmbedder, mock.NewMockSuggester,
// mock.NewMockMaskPredictor) return CONCRETE types to enable test assertions
// and behavior injection via the mock's public fields and methods.
//
// # Usage Example
//
//	config := nlp.DefaultConfig()
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vec, err := provider.Embedder().EmbedText(ctx, "chicken curry")
//	fix, err := provider.Suggester().SuggestCorrection(ctx, "chiken curry")
package nlp

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


// Package openai provides nlp implementations backed by OpenAI-compatible
// APIs (Ollama, LocalAI, vLLM, OpenAI).
//
// Embeddings use the service's embedding endpoint via langchaingo. The
// contextual suggester and the mask predictor use JSON-mode chat completions
// with a strict response schema, stripping code fences and repairing common
// JSON defects before parsing, and retrying malformed responses up to three
// times.
//
// Every call is bounded by the configured request timeout. Callers treat any
// returned error, including timeouts, exactly like an absent model: the
// affected pipeline layer takes its documented fallback.
package openai

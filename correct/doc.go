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


// Package correct implements the layered "did you mean" pipeline for food
// search queries.
//
// A request flows through three layers:
//
//  1. Candidate generation: cheap deterministic per-token rules (gazetteer
//     protection, dictionary speller, edit-distance lexicon lookup, the
//     custom misspelling map, nearest-vocabulary fallback). Produces a
//     best-effort corrected string and a pool of candidate strings.
//  2. Context scoring: an optional contextual suggestion model plus
//     masked-token plausibility scoring of every pool candidate.
//  3. Domain reranking: fuses context scores with embedding similarity
//     against a synonym-expanded query vector, then applies the stability
//     bonus and per-user feedback boosts.
//
// Every optional model degrades independently: an absent suggester is
// skipped, an absent mask model scores all candidates neutrally, an absent
// embedder leaves ranking to the context scores. A well-formed request
// always gets a best-effort answer; only malformed requests and genuinely
// unexpected faults fail.
//
// The scoring weights are fixed, hand-tuned constants rather than a learned
// model, so any ranking can be explained by inspection.
package correct

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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidRequest indicates a CorrectionRequest failed validation.
	ErrInvalidRequest = errors.New("invalid correction request")

	// ErrEmptyText indicates the request text is empty after trimming.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrInvalidTopK indicates TopK is outside the allowed 1-10 range.
	ErrInvalidTopK = errors.New("top_k must be between 1 and 10")

	// ErrInvalidFeedback indicates a FeedbackRecord failed validation.
	ErrInvalidFeedback = errors.New("invalid feedback record")

	// ErrEmptySuggestion indicates the feedback suggestion is empty.
	ErrEmptySuggestion = errors.New("suggestion cannot be empty")

	// ErrInvalidLexiconEntry indicates a LexiconEntry failed validation.
	ErrInvalidLexiconEntry = errors.New("invalid lexicon entry")

	// ErrEmptyTerm indicates the lexicon term is empty.
	ErrEmptyTerm = errors.New("term cannot be empty")

	// ErrInvalidTermKind indicates an invalid TermKind value.
	ErrInvalidTermKind = errors.New("invalid term kind")
)

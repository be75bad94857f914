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

import (
	"fmt"
	"strings"
)

const (
	// DefaultTopK is the candidate count used when a request leaves TopK unset.
	DefaultTopK = 3
	// MaxTopK is the upper bound for requested candidate counts.
	MaxTopK = 10
)

// ValidateCorrectionRequest validates a CorrectionRequest according to domain rules.
//
// Validation rules:
//   - Text must not be empty after trimming
//   - TopK must be within [1, MaxTopK]
//
// NOT validated:
//   - UserID (any opaque string including "" is a valid lookup key)
//
// Validation failures are request errors, distinct from internal pipeline
// failures; callers report them as malformed requests.
func ValidateCorrectionRequest(req *CorrectionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidRequest)
	}

	if strings.TrimSpace(req.Text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, ErrEmptyText)
	}

	if req.TopK < 1 || req.TopK > MaxTopK {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidRequest, ErrInvalidTopK, req.TopK)
	}

	return nil
}

// ValidateFeedbackRecord validates a FeedbackRecord according to domain rules.
//
// Validation rules:
//   - Original must not be empty after trimming
//   - Suggested must not be empty after trimming
//
// NOT validated:
//   - UserID ("" is the anonymous bucket)
//   - Accepted (both outcomes are recorded for audit)
func ValidateFeedbackRecord(record *FeedbackRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidFeedback)
	}

	if strings.TrimSpace(record.Original) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, ErrEmptyText)
	}

	if strings.TrimSpace(record.Suggested) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidFeedback, ErrEmptySuggestion)
	}

	return nil
}

// ValidateLexiconEntry validates a LexiconEntry according to domain rules.
//
// Validation rules:
//   - Term must not be empty
//   - Kind must be a known TermKind
//
// NOT validated (populated by the builder):
//   - ID (0 is replaced by a content-based ID on insert)
//   - Canonical and Synsets (meaningful only for their respective kinds)
func ValidateLexiconEntry(entry *LexiconEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidLexiconEntry)
	}

	if entry.Term == "" {
		return fmt.Errorf("%w: %w", ErrInvalidLexiconEntry, ErrEmptyTerm)
	}

	if err := ValidateTermKind(entry.Kind); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLexiconEntry, err)
	}

	return nil
}

// ValidateTermKind validates that a TermKind has a valid value.
func ValidateTermKind(kind TermKind) error {
	switch kind {
	case KindVocabulary, KindProtected, KindMisspelling, KindSynonym:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidTermKind, kind)
	}
}

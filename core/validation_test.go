package core

import (
	"errors"
	"testing"
)

func TestValidateCorrectionRequest(t *testing.T) {
	tests := []struct {
		name    string
		request *CorrectionRequest
		wantErr error
	}{
		{
			name:    "valid request",
			request: &CorrectionRequest{Text: "chiken curry", TopK: 3},
			wantErr: nil,
		},
		{
			name:    "valid request with user",
			request: &CorrectionRequest{Text: "pzza", TopK: 1, UserID: "u1"},
			wantErr: nil,
		},
		{
			name:    "top_k at upper bound",
			request: &CorrectionRequest{Text: "ramen", TopK: MaxTopK},
			wantErr: nil,
		},
		{
			name:    "nil request",
			request: nil,
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "empty text",
			request: &CorrectionRequest{Text: "", TopK: 3},
			wantErr: ErrEmptyText,
		},
		{
			name:    "whitespace only text",
			request: &CorrectionRequest{Text: "   \t ", TopK: 3},
			wantErr: ErrEmptyText,
		},
		{
			name:    "top_k too small",
			request: &CorrectionRequest{Text: "sushi", TopK: 0},
			wantErr: ErrInvalidTopK,
		},
		{
			name:    "top_k too large",
			request: &CorrectionRequest{Text: "sushi", TopK: 11},
			wantErr: ErrInvalidTopK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCorrectionRequest(tt.request)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCorrectionRequest() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCorrectionRequest() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Errorf("ValidateCorrectionRequest() error = %v, want wrapped ErrInvalidRequest", err)
			}
		})
	}
}

func TestValidateFeedbackRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  *FeedbackRecord
		wantErr error
	}{
		{
			name:    "valid accepted record",
			record:  &FeedbackRecord{UserID: "u1", Original: "pzza", Suggested: "pizza", Accepted: true},
			wantErr: nil,
		},
		{
			name:    "valid rejected record",
			record:  &FeedbackRecord{Original: "berger", Suggested: "burger", Accepted: false},
			wantErr: nil,
		},
		{
			name:    "anonymous user is valid",
			record:  &FeedbackRecord{UserID: "", Original: "colmobo", Suggested: "colombo", Accepted: true},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidFeedback,
		},
		{
			name:    "empty original",
			record:  &FeedbackRecord{Original: " ", Suggested: "pizza"},
			wantErr: ErrEmptyText,
		},
		{
			name:    "empty suggestion",
			record:  &FeedbackRecord{Original: "pzza", Suggested: ""},
			wantErr: ErrEmptySuggestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFeedbackRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateFeedbackRecord() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateFeedbackRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateLexiconEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   *LexiconEntry
		wantErr error
	}{
		{
			name:    "valid vocabulary entry",
			entry:   &LexiconEntry{Term: "biryani", Kind: KindVocabulary},
			wantErr: nil,
		},
		{
			name:    "valid misspelling entry",
			entry:   &LexiconEntry{Term: "chiken", Kind: KindMisspelling, Canonical: "chicken"},
			wantErr: nil,
		},
		{
			name: "valid synonym entry",
			entry: &LexiconEntry{
				Term:    "burger",
				Kind:    KindSynonym,
				Synsets: []SynonymSet{{Lemmas: []string{"hamburger", "beefburger"}}},
			},
			wantErr: nil,
		},
		{
			name:    "nil entry",
			entry:   nil,
			wantErr: ErrInvalidLexiconEntry,
		},
		{
			name:    "empty term",
			entry:   &LexiconEntry{Term: "", Kind: KindVocabulary},
			wantErr: ErrEmptyTerm,
		},
		{
			name:    "invalid kind",
			entry:   &LexiconEntry{Term: "burger", Kind: TermKind(42)},
			wantErr: ErrInvalidTermKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLexiconEntry(tt.entry)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateLexiconEntry() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateLexiconEntry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

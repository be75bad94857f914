package mock

import "context"

// MockSuggester is a test double for nlp.Suggester.
// It allows custom behavior injection via function fields.
type MockSuggester struct {
	// SuggestFunc is called by SuggestCorrection if set.
	// If nil, the mock reports no suggestion.
	SuggestFunc func(ctx context.Context, text string) (string, error)

	// Suggestions maps input text to a canned suggestion, consulted when
	// SuggestFunc is nil.
	Suggestions map[string]string

	callCount int
}

// NewMockSuggester creates a mock suggester that proposes nothing by default.
// Note: Returns concrete type to allow test assertions.
func NewMockSuggester() *MockSuggester {
	return &MockSuggester{}
}

// SuggestCorrection returns the injected or canned suggestion, or "".
func (m *MockSuggester) SuggestCorrection(ctx context.Context, text string) (string, error) {
	m.callCount++

	if m.SuggestFunc != nil {
		return m.SuggestFunc(ctx, text)
	}

	return m.Suggestions[text], nil
}

// CallCount returns the number of times SuggestCorrection was called.
func (m *MockSuggester) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockSuggester) Reset() {
	m.callCount = 0
	m.SuggestFunc = nil
	m.Suggestions = nil
}

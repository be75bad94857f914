package mock

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockMaskPredictor is a test double for nlp.MaskPredictor.
// It allows custom behavior injection via function fields.
type MockMaskPredictor struct {
	// PredictFunc is called by PredictMasked if set.
	// If nil, uses default behavior: the hidden token is always the top
	// prediction, so every candidate scores a perfect reciprocal rank.
	PredictFunc func(ctx context.Context, tokens []string, index, topK int) ([]string, error)

	// Vocabulary, when set, replaces the default prediction list: the mock
	// returns up to topK vocabulary words in order, never the hidden token
	// unless it appears in Vocabulary.
	Vocabulary []string

	// mu guards callCount: predictions run concurrently from the scoring
	// worker pool.
	mu        sync.Mutex
	callCount int
}

// NewMockMaskPredictor creates a mock mask predictor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockMaskPredictor() *MockMaskPredictor {
	return &MockMaskPredictor{}
}

// PredictMasked returns predictions for the masked position.
func (m *MockMaskPredictor) PredictMasked(ctx context.Context, tokens []string, index, topK int) ([]string, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, tokens, index, topK)
	}

	if index < 0 || index >= len(tokens) {
		return nil, fmt.Errorf("mask index %d out of range for %d tokens", index, len(tokens))
	}

	if m.Vocabulary != nil {
		n := min(topK, len(m.Vocabulary))
		return m.Vocabulary[:n], nil
	}

	return []string{strings.ToLower(tokens[index])}, nil
}

// CallCount returns the number of times PredictMasked was called.
func (m *MockMaskPredictor) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockMaskPredictor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.PredictFunc = nil
	m.Vocabulary = nil
}

// Package mock provides test double implementations of NLP model interfaces.
//
// This package contains mock implementations of nlp.Embedder, nlp.Suggester,
// nlp.MaskPredictor, and nlp.ModelProvider for use in unit tests. The mocks
// allow tests to run without external model services and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vec, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockMask := mock.NewMockMaskPredictor()
//	mockMask.PredictFunc = func(ctx context.Context, tokens []string, index, topK int) ([]string, error) {
//	    return []string{"curry"}, nil
//	}
//
//	// Check call counts
//	count := mockMask.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockSuggester: Proposes no correction
//   - MockMaskPredictor: Predicts the hidden token at rank 1
//   - MockProvider: Aggregates the three mocks with all capabilities live
package mock

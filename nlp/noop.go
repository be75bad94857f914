package nlp

import "context"

// No-op sub-models substituted by providers when a model is not configured.
// They always return ErrModelUnavailable, which layers translate into their
// documented degradation path.

// NoopEmbedder is an Embedder with no backing model.
type NoopEmbedder struct{}

var _ Embedder = NoopEmbedder{}

// EmbedText always returns ErrModelUnavailable.
func (NoopEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, ErrModelUnavailable
}

// EmbedTexts always returns ErrModelUnavailable.
func (NoopEmbedder) EmbedTexts(_ context.Context, _ []string) ([][]float32, error) {
	return nil, ErrModelUnavailable
}

// NoopSuggester is a Suggester with no backing model.
type NoopSuggester struct{}

var _ Suggester = NoopSuggester{}

// SuggestCorrection always returns ErrModelUnavailable.
func (NoopSuggester) SuggestCorrection(_ context.Context, _ string) (string, error) {
	return "", ErrModelUnavailable
}

// NoopMaskPredictor is a MaskPredictor with no backing model.
type NoopMaskPredictor struct{}

var _ MaskPredictor = NoopMaskPredictor{}

// PredictMasked always returns ErrModelUnavailable.
func (NoopMaskPredictor) PredictMasked(_ context.Context, _ []string, _, _ int) ([]string, error) {
	return nil, ErrModelUnavailable
}

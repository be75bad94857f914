package nlp

import "context"

// Embedder generates vector embeddings from text for semantic similarity.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// Returns ErrModelUnavailable if no embedding model is configured.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns ErrModelUnavailable if no embedding model is configured.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Suggester proposes a context-driven correction for a whole query string.
// Implementations must be thread-safe for concurrent use.
type Suggester interface {
	// SuggestCorrection returns the model's corrected rendering of text,
	// or "" when the model sees nothing to fix.
	// Returns ErrModelUnavailable if no contextual model is configured.
	SuggestCorrection(ctx context.Context, text string) (string, error)
}

// MaskPredictor is a fill-in-the-blank model used to score how locally
// predictable a token is from its context.
// Implementations must be thread-safe for concurrent use.
type MaskPredictor interface {
	// PredictMasked masks tokens[index] and returns up to topK predicted
	// fillers, most likely first. The masked token itself is not revealed
	// to the model.
	// Returns ErrModelUnavailable if no mask model is configured.
	PredictMasked(ctx context.Context, tokens []string, index, topK int) ([]string, error)
}

// Capabilities reports which optional sub-models a provider actually backs
// with a live implementation. Layers degrade per the documented fallback
// when a capability is absent; this report exists for observability.
type Capabilities struct {
	Embedder      bool
	Suggester     bool
	MaskPredictor bool
}

// ModelProvider aggregates the optional NLP sub-models for convenient
// initialization and lifecycle management. Providers substitute no-op
// implementations for sub-models that are not configured, so callers
// never branch on model presence at call time.
type ModelProvider interface {
	// Embedder returns the text embedding service, never nil.
	Embedder() Embedder

	// Suggester returns the contextual correction service, never nil.
	Suggester() Suggester

	// MaskPredictor returns the fill-in-the-blank service, never nil.
	MaskPredictor() MaskPredictor

	// Capabilities reports which sub-models are live.
	Capabilities() Capabilities

	// Close releases resources held by the provider and its services.
	Close() error
}

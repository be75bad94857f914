package correct

import (
	"context"
	"log/slog"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/nlp"
	"github.com/HeshalD/Cuisinise/nlp/mock"
)

func newTestScorer(t *testing.T, provider nlp.ModelProvider) *scorer {
	t.Helper()
	workers, err := ants.NewPool(2)
	require.NoError(t, err)
	t.Cleanup(workers.Release)
	return newScorer(provider, workers, slog.Default())
}

func poolOf(items ...string) *candidatePool {
	p := newCandidatePool()
	for _, item := range items {
		p.Add(item)
	}
	return p
}

func findScored(scored []scoredCandidate, text string) (scoredCandidate, bool) {
	for _, s := range scored {
		if s.text == text {
			return s, true
		}
	}
	return scoredCandidate{}, false
}

func TestScorerMaskScoring(t *testing.T) {
	// Default mock predicts the hidden token at rank 1, so every candidate
	// scores a full 1.0
	provider := mock.NewMockProvider()
	s := newTestScorer(t, provider)

	scored := s.Score(context.Background(), "chicken curry", poolOf("chicken curry", "chicken"))

	require.Len(t, scored, 2)
	for _, cand := range scored {
		assert.InDelta(t, 1.0, cand.score, 1e-9)
		assert.Equal(t, core.SourceLexical, cand.source)
	}
}

func TestScorerReciprocalRank(t *testing.T) {
	mask := mock.NewMockMaskPredictor()
	// Hidden token always lands at rank 3
	mask.PredictFunc = func(ctx context.Context, tokens []string, index, topK int) ([]string, error) {
		return []string{"aaa", "bbb", tokens[index]}, nil
	}
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), mock.NewMockSuggester(), mask)
	s := newTestScorer(t, provider)

	scored := s.Score(context.Background(), "chicken curry", poolOf("chicken curry"))

	require.Len(t, scored, 1)
	assert.InDelta(t, 1.0/3.0, scored[0].score, 1e-9)
}

func TestScorerMissingTokenScoresZero(t *testing.T) {
	mask := mock.NewMockMaskPredictor()
	mask.Vocabulary = []string{"unrelated", "words", "only"}
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), mock.NewMockSuggester(), mask)
	s := newTestScorer(t, provider)

	scored := s.Score(context.Background(), "chicken curry", poolOf("chicken curry"))

	require.Len(t, scored, 1)
	assert.Zero(t, scored[0].score)
}

func TestScorerContextSuggestion(t *testing.T) {
	suggester := mock.NewMockSuggester()
	suggester.Suggestions = map[string]string{"chiken curry": "chicken curry"}
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), suggester, mock.NewMockMaskPredictor())
	s := newTestScorer(t, provider)

	pool := poolOf("chiken curry")
	scored := s.Score(context.Background(), "chiken curry", pool)

	suggestion, ok := findScored(scored, "chicken curry")
	require.True(t, ok, "contextual suggestion should be scored")
	assert.InDelta(t, contextScore, suggestion.score, 1e-9)
	assert.Equal(t, core.SourceContext, suggestion.source)

	// The suggestion also joins the pool for mask scoring
	assert.Contains(t, pool.Items(), "chicken curry")
}

func TestScorerUnchangedSuggestionIgnored(t *testing.T) {
	suggester := mock.NewMockSuggester()
	suggester.Suggestions = map[string]string{"chicken curry": "Chicken Curry"}
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), suggester, mock.NewMockMaskPredictor())
	s := newTestScorer(t, provider)

	scored := s.Score(context.Background(), "chicken curry", poolOf("chicken curry"))

	// Equivalent-after-normalization suggestions add nothing
	require.Len(t, scored, 1)
	assert.Equal(t, core.SourceLexical, scored[0].source)
}

func TestScorerDegradesToNeutral(t *testing.T) {
	mask := mock.NewMockMaskPredictor()
	mask.PredictFunc = func(ctx context.Context, tokens []string, index, topK int) ([]string, error) {
		return nil, nlp.ErrModelUnavailable
	}
	suggester := mock.NewMockSuggester()
	suggester.SuggestFunc = func(ctx context.Context, text string) (string, error) {
		return "", nlp.ErrModelUnavailable
	}
	provider := mock.NewMockProviderWithServices(mock.NewMockEmbedder(), suggester, mask)
	s := newTestScorer(t, provider)

	scored := s.Score(context.Background(), "chicken curry", poolOf("chicken curry", "chicken"))

	require.Len(t, scored, 2)
	for _, cand := range scored {
		assert.InDelta(t, neutralScore, cand.score, 1e-9)
		assert.Equal(t, core.SourceHeuristic, cand.source)
	}
}

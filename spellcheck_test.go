package cuisinise

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/nlp"
	"github.com/HeshalD/Cuisinise/storage/badger"
)

// offlineConfig disables every optional model so tests never touch the
// network; the pipeline runs on its deterministic layers alone.
func offlineConfig() *nlp.Config {
	return &nlp.Config{}
}

func newTestService(t *testing.T, opts ...ServiceOption) *Service {
	t.Helper()
	opts = append([]ServiceOption{WithNLPConfig(offlineConfig())}, opts...)
	svc, err := NewService(context.Background(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestServiceCorrectEndToEnd(t *testing.T) {
	svc := newTestService(t, WithFeedbackPath(filepath.Join(t.TempDir(), "feedback.tsv")))

	resp, err := svc.Pipeline().Correct(context.Background(), &core.CorrectionRequest{
		Text: "chiken curry in colmobo",
	})
	require.NoError(t, err)

	assert.Equal(t, "chicken curry in colombo", resp.Corrected)
	assert.True(t, resp.Changed)
	assert.NotEmpty(t, resp.Candidates)
}

func TestServiceFallsBackToDefaultLexicon(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-lexicon")
	svc := newTestService(t, WithLexiconPath(missing))

	stats := svc.Lexicon().Stats()
	assert.Positive(t, stats.Vocabulary, "built-in lexicon should load when the database is absent")
}

func TestServiceLoadsLexiconDatabase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "lexicon")

	// Build a small database the way vocabbuild does
	repo, err := badger.NewLexiconRepository(dir)
	require.NoError(t, err)
	err = repo.AddEntries(context.Background(), []*core.LexiconEntry{
		{Term: "kottu", Kind: core.KindVocabulary, Frequency: 9},
		{Term: "kotu", Kind: core.KindMisspelling, Canonical: "kottu"},
	})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	svc := newTestService(t, WithLexiconPath(dir))

	resp, err := svc.Pipeline().Correct(context.Background(), &core.CorrectionRequest{Text: "kotu"})
	require.NoError(t, err)
	assert.Equal(t, "kottu", resp.Corrected)
}

func TestServiceFeedbackRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.tsv")
	svc := newTestService(t, WithFeedbackPath(path))

	require.NoError(t, svc.Pipeline().Feedback(&core.FeedbackRecord{
		UserID:    "u1",
		Original:  "berger",
		Suggested: "burger",
		Accepted:  true,
	}))

	caps := svc.Pipeline().Capabilities()
	assert.False(t, caps.Embedder)
	assert.False(t, caps.Suggester)
	assert.False(t, caps.MaskPredictor)
}

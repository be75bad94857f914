package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeshalD/Cuisinise/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Default()
	require.NoError(t, err)
	return s
}

func TestDefaultStore(t *testing.T) {
	s := newTestStore(t)

	stats := s.Stats()
	assert.Equal(t, len(defaultVocabulary), stats.Vocabulary)
	assert.Equal(t, len(defaultProtected), stats.Protected)
	assert.Equal(t, len(defaultMisspellings), stats.Misspellings)
	assert.Equal(t, len(defaultSynonyms), stats.Synonyms)
}

func TestIsProtected(t *testing.T) {
	s := newTestStore(t)

	assert.True(t, s.IsProtected("biryani"))
	assert.True(t, s.IsProtected("  BIRYANI  "), "protection should apply after normalization")
	assert.False(t, s.IsProtected("burger"))
	assert.False(t, s.IsProtected(""))
}

func TestCanonical(t *testing.T) {
	s := newTestStore(t)

	canonical, ok := s.Canonical("chiken")
	require.True(t, ok)
	assert.Equal(t, "chicken", canonical)

	canonical, ok = s.Canonical("Colmobo")
	require.True(t, ok)
	assert.Equal(t, "colombo", canonical)

	_, ok = s.Canonical("chicken")
	assert.False(t, ok, "canonical terms are not misspellings of themselves")
}

func TestNearestVocabularyWord(t *testing.T) {
	s := newTestStore(t)

	t.Run("within distance", func(t *testing.T) {
		word, dist, ok := s.NearestVocabularyWord("pasto")
		require.True(t, ok)
		assert.Equal(t, "pasta", word)
		assert.Equal(t, 1, dist)
	})

	t.Run("exact match short-circuits", func(t *testing.T) {
		_, _, ok := s.NearestVocabularyWord("sushi")
		assert.False(t, ok, "an exact vocabulary match needs no replacement")
	})

	t.Run("too far", func(t *testing.T) {
		_, _, ok := s.NearestVocabularyWord("xyzxyz")
		assert.False(t, ok)
	})

	t.Run("empty token", func(t *testing.T) {
		_, _, ok := s.NearestVocabularyWord("")
		assert.False(t, ok)
	})

	t.Run("deterministic tie break", func(t *testing.T) {
		s, err := NewStore()
		require.NoError(t, err)
		s.AddVocabulary("cart", 1)
		s.AddVocabulary("care", 1)

		// Both candidates are distance 1 from "carp"; lexicographic order
		// must decide the same way on every scan.
		word, dist, ok := s.NearestVocabularyWord("carp")
		require.True(t, ok)
		assert.Equal(t, 1, dist)
		assert.Equal(t, "care", word)
	})
}

func TestLookup(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)
	s.AddVocabulary("burger", 10)
	s.AddVocabulary("burgers", 5)
	s.AddVocabulary("berger", 1)
	s.AddVocabulary("sushi", 20)

	t.Run("ranked by distance then frequency", func(t *testing.T) {
		got := s.Lookup("burgir", 3)
		require.Len(t, got, 3)
		assert.Equal(t, "burger", got[0].Term)
		assert.Equal(t, 1, got[0].Distance)
		assert.Equal(t, "burgers", got[1].Term, "equal distance breaks on higher frequency")
		assert.Equal(t, "berger", got[2].Term)
	})

	t.Run("exact match ranks first", func(t *testing.T) {
		got := s.Lookup("burger", 3)
		require.NotEmpty(t, got)
		assert.Equal(t, "burger", got[0].Term)
		assert.Equal(t, 0, got[0].Distance)
	})

	t.Run("respects max", func(t *testing.T) {
		got := s.Lookup("burgir", 1)
		assert.Len(t, got, 1)
	})

	t.Run("nothing in range", func(t *testing.T) {
		assert.Empty(t, s.Lookup("xylophone", 3))
	})
}

func TestSynsets(t *testing.T) {
	s := newTestStore(t)

	sets := s.Synsets("burger")
	require.Len(t, sets, 1)
	assert.Equal(t, []string{"hamburger", "beefburger"}, sets[0])

	assert.Nil(t, s.Synsets("biryani"))
}

func TestTrainingWords(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)
	s.AddVocabulary("burger", 1)
	s.AddMisspelling("chiken", "chicken")
	s.AddSynonyms("burger", []string{"hamburger"})

	words := s.TrainingWords()
	assert.ElementsMatch(t, []string{"burger", "chicken", "hamburger"}, words)
}

func TestApplyEntry(t *testing.T) {
	s, err := NewStore()
	require.NoError(t, err)

	entries := []*core.LexiconEntry{
		{Term: "ramen", Kind: core.KindVocabulary, Frequency: 4},
		{Term: "pho", Kind: core.KindProtected},
		{Term: "ramne", Kind: core.KindMisspelling, Canonical: "ramen"},
		{Term: "ramen", Kind: core.KindSynonym, Synsets: []core.SynonymSet{{Lemmas: []string{"noodles"}}}},
	}
	for _, entry := range entries {
		require.NoError(t, s.ApplyEntry(entry))
	}

	assert.True(t, s.IsProtected("pho"))
	canonical, ok := s.Canonical("ramne")
	require.True(t, ok)
	assert.Equal(t, "ramen", canonical)
	assert.Len(t, s.Synsets("ramen"), 1)

	got := s.Lookup("ramen", 1)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(4), got[0].Frequency)

	err = s.ApplyEntry(&core.LexiconEntry{Term: "", Kind: core.KindVocabulary})
	assert.ErrorIs(t, err, core.ErrEmptyTerm)
}

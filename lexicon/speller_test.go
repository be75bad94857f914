package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpeller(t *testing.T) *Speller {
	t.Helper()
	store := newTestStore(t)
	speller, err := NewSpeller(store)
	require.NoError(t, err)
	return speller
}

func TestSpellerCorrect(t *testing.T) {
	speller := newTestSpeller(t)

	t.Run("fixes close misspelling", func(t *testing.T) {
		assert.Equal(t, "pizza", speller.Correct("pizzq"))
	})

	t.Run("known word unchanged", func(t *testing.T) {
		assert.Equal(t, "sushi", speller.Correct("sushi"))
	})

	t.Run("unknown word falls through", func(t *testing.T) {
		// Nothing in the dictionary is near this token; the speller must
		// hand it back rather than guess.
		assert.Equal(t, "xyzxyz", speller.Correct("xyzxyz"))
	})

	t.Run("empty token", func(t *testing.T) {
		assert.Equal(t, "", speller.Correct(""))
	})

	t.Run("normalizes input", func(t *testing.T) {
		assert.Equal(t, "sushi", speller.Correct("  SUSHI "))
	})
}

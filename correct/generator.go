package correct

import (
	"log/slog"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/lexicon"
)

// maxLookupAlternatives bounds how many lexicon suggestions one token can
// contribute to the candidate pool.
const maxLookupAlternatives = 3

// generator is the first correction layer: cheap deterministic per-token
// rules. It produces a best-effort corrected string and the candidate pool
// the scoring layers work from. No rule here may fail a request; every
// sub-step falls back to leaving the token unchanged.
type generator struct {
	lexicon *lexicon.Store
	speller *lexicon.Speller
	logger  *slog.Logger
}

func newGenerator(lex *lexicon.Store, speller *lexicon.Speller, logger *slog.Logger) *generator {
	return &generator{
		lexicon: lex,
		speller: speller,
		logger:  logger,
	}
}

// Generate runs the per-token rule chain over text. Each token passes
// through, in order: gazetteer protection, the dictionary speller, the
// edit-distance lexicon lookup, and the misspelling map. Tokens no rule
// touched get a last-chance nearest-vocabulary-word scan. Replacement terms
// and lookup alternatives accumulate in the pool, as does the final
// corrected string.
func (g *generator) Generate(text string, pool *candidatePool) string {
	tokens := tokenize(text)

	for i, tok := range tokens {
		if tok.core == "" {
			continue
		}
		tokens[i].core = g.correctToken(tok.core, pool)
	}

	corrected := joinTokens(tokens)
	pool.Add(corrected)
	return corrected
}

func (g *generator) correctToken(tok string, pool *candidatePool) string {
	if g.lexicon.IsProtected(tok) {
		return tok
	}

	current := tok
	fired := false

	// Dictionary speller, fails open on any internal fault
	if g.speller != nil {
		if spelled := g.speller.Correct(current); spelled != "" && spelled != core.NormalizeText(current) {
			current = spelled
			fired = true
		}
	}

	// Edit-distance lexicon lookup: the best alternative replaces the
	// token, every alternative joins the pool
	if suggestions := g.lexicon.Lookup(current, maxLookupAlternatives); len(suggestions) > 0 {
		for _, s := range suggestions {
			pool.Add(s.Term)
		}
		if suggestions[0].Distance > 0 {
			current = suggestions[0].Term
			fired = true
		} else {
			// already a vocabulary word
			fired = true
		}
	}

	// Custom misspelling map
	if canonical, ok := g.lexicon.Canonical(current); ok {
		pool.Add(canonical)
		current = canonical
		fired = true
	}

	// Last chance: nearest vocabulary word by edit distance
	if !fired {
		if nearest, _, ok := g.lexicon.NearestVocabularyWord(current); ok {
			pool.Add(nearest)
			current = nearest
		}
	}

	return current
}

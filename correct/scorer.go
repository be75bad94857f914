package correct

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/nlp"
)

const (
	// maxMaskedTokens bounds how many leading tokens of a candidate are
	// mask-scored.
	maxMaskedTokens = 3

	// maskTopK is how many fill-in-the-blank predictions to consider per
	// masked token.
	maskTopK = 5

	// contextScore is the fixed score for a contextual-model suggestion.
	// It is a single authoritative signal, not fused with mask scoring.
	contextScore = 0.6

	// neutralScore replaces mask scoring when the model is unavailable.
	neutralScore = 0.3
)

// scoredCandidate is a Layer-2 output triple. Duplicate texts from
// different mechanisms stay distinct here; the reranker deduplicates.
type scoredCandidate struct {
	text   string
	score  float64
	source core.Source
}

// scorer is the second correction layer: context plausibility. A contextual
// suggestion model may add one authoritative candidate; a fill-in-the-blank
// model then scores every pool candidate by how predictable its leading
// tokens are from their surroundings.
type scorer struct {
	suggester nlp.Suggester
	predictor nlp.MaskPredictor
	pool      *ants.Pool
	logger    *slog.Logger
}

func newScorer(provider nlp.ModelProvider, workers *ants.Pool, logger *slog.Logger) *scorer {
	return &scorer{
		suggester: provider.Suggester(),
		predictor: provider.MaskPredictor(),
		pool:      workers,
		logger:    logger,
	}
}

// Score runs both context signals over the candidate pool and returns the
// scored triples. Model absence degrades to the documented defaults and
// never fails the request.
func (s *scorer) Score(ctx context.Context, text string, candidates *candidatePool) []scoredCandidate {
	var scored []scoredCandidate

	// Step A: contextual suggestion
	suggestion, err := s.suggester.SuggestCorrection(ctx, text)
	switch {
	case errors.Is(err, nlp.ErrModelUnavailable):
		// skipped, mask scoring still runs
	case err != nil:
		s.logger.Warn("contextual suggestion failed", "err", err)
	case suggestion != "" && core.NormalizeText(suggestion) != core.NormalizeText(text):
		scored = append(scored, scoredCandidate{
			text:   suggestion,
			score:  contextScore,
			source: core.SourceContext,
		})
		candidates.Add(suggestion)
	}

	// Step B: masked-token plausibility per candidate. The Layer-1 text
	// goes first so it wins score ties downstream (stable sort keeps
	// insertion order)
	normalized := core.NormalizeText(text)
	items := make([]string, 0, len(candidates.Items())+1)
	items = append(items, text)
	for _, cand := range candidates.Items() {
		if core.NormalizeText(cand) != normalized {
			items = append(items, cand)
		}
	}
	scores := make([]float64, len(items))
	unavailable := make([]bool, len(items))

	var wg sync.WaitGroup
	for i, cand := range items {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			scores[i], unavailable[i] = s.maskScore(ctx, cand)
		}
		if err := s.pool.Submit(task); err != nil {
			// pool rejected the task, run inline
			task()
		}
	}
	wg.Wait()

	for i, cand := range items {
		if unavailable[i] {
			// no model: every candidate gets the same neutral score
			scored = append(scored, scoredCandidate{
				text:   cand,
				score:  neutralScore,
				source: core.SourceHeuristic,
			})
			continue
		}
		scored = append(scored, scoredCandidate{
			text:   cand,
			score:  scores[i],
			source: core.SourceLexical,
		})
	}

	return scored
}

// maskScore estimates how fluent a candidate reads by masking each of its
// first tokens and checking whether the fill-in-the-blank model predicts
// the hidden token back. Rank r in the top predictions awards 1/r; the
// candidate score is the mean over sampled tokens. Reports unavailable when
// the model itself is absent; individual prediction errors only zero out
// their token.
func (s *scorer) maskScore(ctx context.Context, candidate string) (float64, bool) {
	tokens := strings.Fields(candidate)
	if len(tokens) == 0 {
		return 0, false
	}

	sampled := len(tokens)
	if sampled > maxMaskedTokens {
		sampled = maxMaskedTokens
	}

	sum := 0.0
	for i := 0; i < sampled; i++ {
		predictions, err := s.predictor.PredictMasked(ctx, tokens, i, maskTopK)
		if err != nil {
			if errors.Is(err, nlp.ErrModelUnavailable) {
				return 0, true
			}
			s.logger.Warn("mask prediction failed", "candidate", candidate, "index", i, "err", err)
			continue
		}

		hidden := core.NormalizeText(tokens[i])
		for rank, prediction := range predictions {
			if core.NormalizeText(prediction) == hidden {
				sum += 1.0 / float64(rank+1)
				break
			}
		}
	}

	return sum / float64(sampled), false
}

package correct

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/feedback"
	"github.com/HeshalD/Cuisinise/lexicon"
	"github.com/HeshalD/Cuisinise/nlp"
)

const (
	// maxSynsetsPerToken and maxLemmasPerSynset bound query expansion so a
	// polysemous token cannot flood the query vector.
	maxSynsetsPerToken = 2
	maxLemmasPerSynset = 2

	// fusionWeight splits the final score evenly between the context score
	// and embedding similarity. Deliberately simple: any ranking can be
	// explained by hand.
	fusionWeight = 0.5

	// stabilityBonus rewards keeping the original text.
	stabilityBonus = 0.05

	// boostStep is the score increment per recorded acceptance.
	boostStep = 0.02
)

// reranker is the third correction layer: domain-aware ranking. It fuses
// Layer-2 scores with embedding similarity against a synonym-expanded query
// vector, then applies the stability bonus and per-user feedback boosts.
type reranker struct {
	lexicon  *lexicon.Store
	embedder nlp.Embedder
	feedback *feedback.Store
	logger   *slog.Logger
}

func newReranker(lex *lexicon.Store, provider nlp.ModelProvider, fb *feedback.Store, logger *slog.Logger) *reranker {
	return &reranker{
		lexicon:  lex,
		embedder: provider.Embedder(),
		feedback: fb,
		logger:   logger,
	}
}

// Rerank deduplicates the scored triples, fuses in embedding similarity
// when the model is available, applies bonuses, and returns the top K
// candidates in descending score order.
func (r *reranker) Rerank(ctx context.Context, original string, scored []scoredCandidate, topK int, userID string) []core.Candidate {
	candidates := dedupe(scored)

	// The original text always survives to ranking, so correcting an
	// already-correct query can never drop it
	normalizedOriginal := core.NormalizeText(original)
	if !containsText(candidates, normalizedOriginal) {
		candidates = append(candidates, scoredCandidate{
			text:   original,
			score:  0,
			source: core.SourceRerank,
		})
	}

	similarities := r.embeddingSimilarities(ctx, original, candidates)

	results := make([]core.Candidate, 0, len(candidates))
	for i, cand := range candidates {
		score := cand.score
		if similarities != nil {
			score = fusionWeight*score + fusionWeight*similarities[i]
		}
		if core.NormalizeText(cand.text) == normalizedOriginal {
			score += stabilityBonus
		}
		score += boostStep * float64(r.feedback.BoostCount(userID, cand.text))

		results = append(results, core.Candidate{
			Text:   cand.text,
			Score:  score,
			Source: cand.source,
		})
	}

	// Stable: ties keep insertion order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// expansionTerms collects synonym lemmas for the original query's tokens.
func (r *reranker) expansionTerms(original string) []string {
	var terms []string
	seen := make(map[string]struct{})

	for _, tok := range strings.Fields(core.NormalizeText(original)) {
		sets := r.lexicon.Synsets(tok)
		if len(sets) > maxSynsetsPerToken {
			sets = sets[:maxSynsetsPerToken]
		}
		for _, set := range sets {
			lemmas := set
			if len(lemmas) > maxLemmasPerSynset {
				lemmas = lemmas[:maxLemmasPerSynset]
			}
			for _, lemma := range lemmas {
				if _, ok := seen[lemma]; ok {
					continue
				}
				seen[lemma] = struct{}{}
				terms = append(terms, lemma)
			}
		}
	}

	return terms
}

// embeddingSimilarities returns the cosine similarity of each candidate to
// the expanded query vector, or nil when the embedding model is absent or
// fails. A nil result means ranking proceeds on Layer-2 scores alone.
func (r *reranker) embeddingSimilarities(ctx context.Context, original string, candidates []scoredCandidate) []float64 {
	queries := append([]string{original}, r.expansionTerms(original)...)

	queryVectors, err := r.embedder.EmbedTexts(ctx, queries)
	if err != nil {
		r.logger.Debug("embedding unavailable, ranking on context scores", "err", err)
		return nil
	}
	if len(queryVectors) == 0 {
		return nil
	}

	queryVector := queryVectors[0]
	if len(queryVectors) > 1 {
		queryVector = blend(queryVector, meanVector(queryVectors[1:]))
	}

	texts := make([]string, len(candidates))
	for i, cand := range candidates {
		texts[i] = cand.text
	}

	candidateVectors, err := r.embedder.EmbedTexts(ctx, texts)
	if err != nil || len(candidateVectors) != len(candidates) {
		r.logger.Debug("candidate embedding failed, ranking on context scores", "err", err)
		return nil
	}

	similarities := make([]float64, len(candidates))
	for i, vec := range candidateVectors {
		similarities[i] = cosineSimilarity(queryVector, vec)
	}
	return similarities
}

// dedupe collapses triples with the same normalized text, keeping the
// highest score and its source at the first occurrence's position.
func dedupe(scored []scoredCandidate) []scoredCandidate {
	index := make(map[string]int)
	var out []scoredCandidate

	for _, cand := range scored {
		key := core.NormalizeText(cand.text)
		if pos, ok := index[key]; ok {
			if cand.score > out[pos].score {
				out[pos].score = cand.score
				out[pos].source = cand.source
			}
			continue
		}
		index[key] = len(out)
		out = append(out, cand)
	}

	return out
}

func containsText(candidates []scoredCandidate, normalized string) bool {
	for _, cand := range candidates {
		if core.NormalizeText(cand.text) == normalized {
			return true
		}
	}
	return false
}

// meanVector averages vectors element-wise.
func meanVector(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	mean := make([]float32, len(vectors[0]))
	for _, vec := range vectors {
		for i := range mean {
			if i < len(vec) {
				mean[i] += vec[i]
			}
		}
	}
	for i := range mean {
		mean[i] /= float32(len(vectors))
	}
	return mean
}

// blend averages two vectors.
func blend(a, b []float32) []float32 {
	if len(b) == 0 {
		return a
	}

	out := make([]float32, len(a))
	for i := range out {
		v := a[i]
		if i < len(b) {
			v = (v + b[i]) / 2
		}
		out[i] = v
	}
	return out
}

// cosineSimilarity computes the cosine of the angle between two vectors.
func cosineSimilarity(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

package lexicon

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/storage"
	"github.com/xrash/smetrics"
)

// maxEditDistance is the furthest a vocabulary word may be from a token to
// count as a correction.
const maxEditDistance = 2

// Store holds the domain lexicon: known-correct vocabulary, the
// protected-terms gazetteer, the custom misspelling map, and synonym sets
// for query expansion. A Store is built once at startup and read-only
// afterwards, so unsynchronized concurrent reads are safe.
type Store struct {
	vocab      map[string]uint64 // term -> relative frequency
	vocabWords []string          // sorted copy of vocab keys for deterministic scans
	protected  map[string]struct{}
	misspell   map[string]string
	synsets    map[string][][]string
	logger     *slog.Logger
}

// Suggestion is one ranked result of an edit-distance lexicon lookup.
type Suggestion struct {
	Term      string
	Distance  int
	Frequency uint64
}

// Stats summarizes the loaded lexicon for the capability report.
type Stats struct {
	Vocabulary   int
	Protected    int
	Misspellings int
	Synonyms     int
}

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewStore creates an empty lexicon store.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{
		vocab:     make(map[string]uint64),
		protected: make(map[string]struct{}),
		misspell:  make(map[string]string),
		synsets:   make(map[string][][]string),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Default creates a store populated with the built-in fallback lexicon,
// used when no precomputed vocabulary database is available. Startup never
// fails on a missing vocabulary resource.
func Default(opts ...Option) (*Store, error) {
	s, err := NewStore(opts...)
	if err != nil {
		return nil, err
	}

	for _, term := range defaultVocabulary {
		s.AddVocabulary(term, 1)
	}
	for _, term := range defaultProtected {
		s.AddProtected(term)
	}
	for term, canonical := range defaultMisspellings {
		s.AddMisspelling(term, canonical)
	}
	for term, sets := range defaultSynonyms {
		for _, lemmas := range sets {
			s.AddSynonyms(term, lemmas)
		}
	}

	s.logger.Debug("built default lexicon", "vocabulary", len(s.vocab))
	return s, nil
}

// Load creates a store from a precomputed lexicon repository.
// Entries that fail validation are skipped with a warning rather than
// aborting the load.
func Load(ctx context.Context, repo storage.LexiconRepository, opts ...Option) (*Store, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	s, err := NewStore(opts...)
	if err != nil {
		return nil, err
	}

	err = repo.ForEachEntry(ctx, func(entry *core.LexiconEntry) error {
		if err := s.ApplyEntry(entry); err != nil {
			s.logger.Warn("skipping invalid lexicon entry", "term", entry.Term, "err", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("loaded lexicon",
		"vocabulary", len(s.vocab),
		"protected", len(s.protected),
		"misspellings", len(s.misspell),
		"synonyms", len(s.synsets))
	return s, nil
}

// ApplyEntry adds a single lexicon entry to the store.
func (s *Store) ApplyEntry(entry *core.LexiconEntry) error {
	if err := core.ValidateLexiconEntry(entry); err != nil {
		return err
	}

	switch entry.Kind {
	case core.KindVocabulary:
		freq := entry.Frequency
		if freq == 0 {
			freq = 1
		}
		s.AddVocabulary(entry.Term, freq)
	case core.KindProtected:
		s.AddProtected(entry.Term)
	case core.KindMisspelling:
		s.AddMisspelling(entry.Term, entry.Canonical)
	case core.KindSynonym:
		for _, set := range entry.Synsets {
			s.AddSynonyms(entry.Term, set.Lemmas)
		}
	}
	return nil
}

// AddVocabulary adds a known-correct domain term.
func (s *Store) AddVocabulary(term string, frequency uint64) {
	term = core.NormalizeText(term)
	if term == "" {
		return
	}
	if _, exists := s.vocab[term]; !exists {
		idx, _ := slices.BinarySearch(s.vocabWords, term)
		s.vocabWords = slices.Insert(s.vocabWords, idx, term)
	}
	s.vocab[term] += frequency
}

// AddProtected adds a gazetteer term exempt from all correction.
func (s *Store) AddProtected(term string) {
	term = core.NormalizeText(term)
	if term == "" {
		return
	}
	s.protected[term] = struct{}{}
}

// AddMisspelling maps a literal misspelling to its canonical term.
func (s *Store) AddMisspelling(term, canonical string) {
	term = core.NormalizeText(term)
	canonical = core.NormalizeText(canonical)
	if term == "" || canonical == "" {
		return
	}
	s.misspell[term] = canonical
}

// AddSynonyms appends a synonym set for a term.
func (s *Store) AddSynonyms(term string, lemmas []string) {
	term = core.NormalizeText(term)
	if term == "" || len(lemmas) == 0 {
		return
	}
	set := make([]string, 0, len(lemmas))
	for _, lemma := range lemmas {
		lemma = core.NormalizeText(lemma)
		if lemma != "" {
			set = append(set, lemma)
		}
	}
	if len(set) > 0 {
		s.synsets[term] = append(s.synsets[term], set)
	}
}

// IsProtected reports whether the token is in the gazetteer.
func (s *Store) IsProtected(token string) bool {
	_, ok := s.protected[core.NormalizeText(token)]
	return ok
}

// Canonical returns the canonical form for a known misspelling.
func (s *Store) Canonical(token string) (string, bool) {
	canonical, ok := s.misspell[core.NormalizeText(token)]
	return canonical, ok
}

// Synsets returns the synonym sets recorded for a token, or nil.
func (s *Store) Synsets(token string) [][]string {
	return s.synsets[core.NormalizeText(token)]
}

// NearestVocabularyWord scans the full vocabulary for the word closest to
// token by edit distance, short-circuiting on an exact match. The result is
// accepted only if its distance is at most maxEditDistance and the word
// differs from the token. Ties prefer a phonetic (Soundex) match, then the
// lexicographically earlier word, so scans are deterministic.
func (s *Store) NearestVocabularyWord(token string) (string, int, bool) {
	t := core.NormalizeText(token)
	if t == "" {
		return "", 0, false
	}

	phonetic := smetrics.Soundex(t)
	best := ""
	bestDist := -1
	bestPhonetic := false

	for _, w := range s.vocabWords {
		d := smetrics.WagnerFischer(t, w, 1, 1, 1)
		if d == 0 {
			return w, 0, false // identical to a vocabulary word, nothing to fix
		}
		p := smetrics.Soundex(w) == phonetic
		if bestDist == -1 || d < bestDist || (d == bestDist && p && !bestPhonetic) {
			best = w
			bestDist = d
			bestPhonetic = p
		}
	}

	if best == "" || bestDist > maxEditDistance || best == t {
		return "", 0, false
	}
	return best, bestDist, true
}

// Lookup returns up to max vocabulary words within maxEditDistance of the
// token, ranked by distance, then descending frequency, then term order.
// An exact vocabulary match ranks first with distance 0.
func (s *Store) Lookup(token string, max int) []Suggestion {
	t := core.NormalizeText(token)
	if t == "" || max <= 0 {
		return nil
	}

	var found []Suggestion
	for _, w := range s.vocabWords {
		d := smetrics.WagnerFischer(t, w, 1, 1, 1)
		if d > maxEditDistance {
			continue
		}
		found = append(found, Suggestion{Term: w, Distance: d, Frequency: s.vocab[w]})
	}

	slices.SortStableFunc(found, func(a, b Suggestion) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		if a.Frequency != b.Frequency {
			if a.Frequency > b.Frequency {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Term, b.Term)
	})

	if len(found) > max {
		found = found[:max]
	}
	return found
}

// TrainingWords returns every distinct term the dictionary speller should
// know: the vocabulary, canonical misspelling targets, and synonym lemmas.
func (s *Store) TrainingWords() []string {
	seen := make(map[string]struct{}, len(s.vocab))
	words := make([]string, 0, len(s.vocab))

	add := func(w string) {
		if w == "" {
			return
		}
		if _, ok := seen[w]; ok {
			return
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	for _, w := range s.vocabWords {
		add(w)
	}
	for _, canonical := range s.misspell {
		add(canonical)
	}
	for _, sets := range s.synsets {
		for _, set := range sets {
			for _, lemma := range set {
				add(lemma)
			}
		}
	}

	slices.Sort(words)
	return words
}

// Stats returns entry counts for the capability report.
func (s *Store) Stats() Stats {
	return Stats{
		Vocabulary:   len(s.vocab),
		Protected:    len(s.protected),
		Misspellings: len(s.misspell),
		Synonyms:     len(s.synsets),
	}
}

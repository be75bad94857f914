package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for lexicon entries.
// It is generated using content-based hashing so identical terms
// always map to the same entry.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Source identifies the pipeline stage that produced a correction candidate.
type Source int

const (
	// SourceLexical marks candidates produced by token-level lexical correction.
	SourceLexical Source = iota + 1
	// SourceContext marks candidates produced or scored by the contextual model.
	SourceContext
	// SourceRerank marks candidates injected during reranking, such as the
	// original text restored to satisfy the stability guarantee.
	SourceRerank
	// SourceHeuristic marks candidates scored with the neutral fallback
	// when no contextual model is available.
	SourceHeuristic
)

// String returns the wire name of the source tag.
func (s Source) String() string {
	switch s {
	case SourceLexical:
		return "lexical"
	case SourceContext:
		return "context"
	case SourceRerank:
		return "rerank"
	case SourceHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// Candidate is a proposed correction with its score and originating stage.
// Scores are not normalized across sources prior to fusion; higher is better.
type Candidate struct {
	Text   string
	Score  float64
	Source Source
}

// CorrectionRequest describes a single correction call.
type CorrectionRequest struct {
	Text   string // raw user input, must be non-empty after trimming
	TopK   int    // number of ranked candidates requested, 1-10
	UserID string // opaque personalization key, "" for anonymous
}

// CorrectionResponse is the result of running the full pipeline.
type CorrectionResponse struct {
	Original   string
	Corrected  string
	Changed    bool // true iff Corrected differs from Original after normalization
	Candidates []Candidate
}

// FeedbackRecord captures the outcome of a suggested correction.
// Records are immutable once written; the feedback log is append-only.
type FeedbackRecord struct {
	UserID    string // "" is the anonymous bucket
	Original  string
	Suggested string
	Accepted  bool
}

// TermKind classifies a lexicon entry.
type TermKind int

const (
	// KindVocabulary is a known-correct domain term used for
	// nearest-neighbor correction.
	KindVocabulary TermKind = iota + 1
	// KindProtected is a gazetteer term that must never be corrected.
	KindProtected
	// KindMisspelling is a literal misspelling mapped to a canonical term.
	KindMisspelling
	// KindSynonym carries synonym sets used for query expansion.
	KindSynonym
)

// SynonymSet is a group of interchangeable lemma terms.
type SynonymSet struct {
	Lemmas []string
}

// LexiconEntry is a single record of the domain lexicon.
// Term is stored lowercase; Canonical is set only for KindMisspelling
// and Synsets only for KindSynonym.
type LexiconEntry struct {
	Id        ID
	Term      string
	Kind      TermKind
	Canonical string
	Synsets   []SynonymSet
	Frequency uint64 // relative weight for ranking suggestion lookups
}

// Tuple returns a string representation of the entry as "(Kind,Term)".
// This is used for generating deterministic IDs.
func (e *LexiconEntry) Tuple() string {
	return "(" + e.Kind.String() + "," + e.Term + ")"
}

// String returns the wire name of the term kind.
func (k TermKind) String() string {
	switch k {
	case KindVocabulary:
		return "vocabulary"
	case KindProtected:
		return "protected"
	case KindMisspelling:
		return "misspelling"
	case KindSynonym:
		return "synonym"
	default:
		return "unknown"
	}
}

// NormalizeText returns the canonical comparison form of a text:
// trimmed of surrounding whitespace and case-folded.
// Candidates are deduplicated and compared against the original in this form.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

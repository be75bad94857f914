package storage

import (
	"context"

	"github.com/HeshalD/Cuisinise/core"
)

// LexiconRepository persists precomputed lexicon entries. Implementations
// must be safe for concurrent use.
type LexiconRepository interface {
	// AddEntries stores entries in a single transaction. Entry IDs are
	// derived from content, so re-adding an identical entry is idempotent.
	AddEntries(ctx context.Context, entries []*core.LexiconEntry) error

	// GetEntry retrieves an entry by ID. Returns ErrNotFound if absent.
	GetEntry(ctx context.Context, id core.ID) (*core.LexiconEntry, error)

	// FindByTerm retrieves the entry for a (kind, term) pair.
	// Returns ErrNotFound if absent.
	FindByTerm(ctx context.Context, kind core.TermKind, term string) (*core.LexiconEntry, error)

	// ForEachEntry streams every stored entry to fn in key order. Iteration
	// stops on the first error fn returns, which is passed through.
	ForEachEntry(ctx context.Context, fn func(entry *core.LexiconEntry) error) error

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Close releases the underlying database.
	Close() error
}

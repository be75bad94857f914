package badger

import (
	"fmt"

	"github.com/HeshalD/Cuisinise/core"
)

// Key prefixes for different data types
const (
	lexiconEntryPrefix = "lexent"
	lexiconTermPrefix  = "lexterm"
)

// makeEntryKey generates the primary key for a lexicon entry by ID.
func makeEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", lexiconEntryPrefix, id))
}

// makeTermKey generates a composite key for entry lookup by (kind, term).
// Format: prefix:kind:term
func makeTermKey(kind core.TermKind, term string) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s", lexiconTermPrefix, kind, term))
}

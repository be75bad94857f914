package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/storage"
)

// LexiconRepository implements storage.LexiconRepository for BadgerDB.
type LexiconRepository struct {
	backend *Backend
}

var _ storage.LexiconRepository = (*LexiconRepository)(nil)

// NewLexiconRepository opens a lexicon database at the given path and
// returns it as a storage.LexiconRepository.
func NewLexiconRepository(path string) (storage.LexiconRepository, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &LexiconRepository{backend: backend}, nil
}

// newLexiconRepository wraps an existing backend. Used by tests that share
// one in-memory backend across repositories.
func newLexiconRepository(backend *Backend) *LexiconRepository {
	return &LexiconRepository{backend: backend}
}

// Close releases the underlying database.
func (r *LexiconRepository) Close() error {
	return r.backend.Close()
}

// AddEntries stores entries in a single transaction.
func (r *LexiconRepository) AddEntries(ctx context.Context, entries []*core.LexiconEntry) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := core.ValidateLexiconEntry(entry); err != nil {
				return err
			}

			// Content-based ID makes re-adding the same entry idempotent
			if entry.Id == 0 {
				entry.Id = core.IDFromContent(entry.Tuple())
			}

			key := makeEntryKey(entry.Id)
			if err := tx.Set(key, storage.MarshalLexiconEntry(entry)); err != nil {
				return err
			}

			termKey := makeTermKey(entry.Kind, entry.Term)
			if err := tx.Set(termKey, storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetEntry retrieves an entry by ID.
func (r *LexiconRepository) GetEntry(ctx context.Context, id core.ID) (*core.LexiconEntry, error) {
	var result *core.LexiconEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readEntry(tx, makeEntryKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// FindByTerm retrieves the entry for a (kind, term) pair via the term index.
func (r *LexiconRepository) FindByTerm(ctx context.Context, kind core.TermKind, term string) (*core.LexiconEntry, error) {
	var result *core.LexiconEntry
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeTermKey(kind, core.NormalizeText(term)))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var id core.ID
		err = item.Value(func(val []byte) error {
			id, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		result, err = readEntry(tx, makeEntryKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ForEachEntry streams every stored entry to fn in key order.
func (r *LexiconRepository) ForEachEntry(ctx context.Context, fn func(entry *core.LexiconEntry) error) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(lexiconEntryPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			item := iter.Item()

			var entry *core.LexiconEntry
			err := item.Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalLexiconEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			if entry == nil {
				continue
			}

			if err := fn(entry); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// Count returns the number of stored entries.
func (r *LexiconRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.ForEachEntry(ctx, func(*core.LexiconEntry) error {
		count++
		return nil
	})
	return count, err
}

// readEntry reads and deserializes an entry, returning nil if absent.
func readEntry(tx *badger.Txn, key []byte) (*core.LexiconEntry, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var entry *core.LexiconEntry
	err = item.Value(func(val []byte) error {
		var err error
		entry, err = storage.UnmarshalLexiconEntry(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

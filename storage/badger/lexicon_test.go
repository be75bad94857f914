package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/storage"
)

func TestLexiconBasics(t *testing.T) {
	repo, err := NewMemoryLexiconRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	entries := []*core.LexiconEntry{
		{Term: "burger", Kind: core.KindVocabulary, Frequency: 42},
		{Term: "biryani", Kind: core.KindProtected},
		{Term: "chiken", Kind: core.KindMisspelling, Canonical: "chicken"},
	}

	if err := repo.AddEntries(ctx, entries); err != nil {
		t.Fatalf("Failed to add entries: %v", err)
	}

	for _, entry := range entries {
		if entry.Id == 0 {
			t.Fatalf("Expected non-zero ID for %q", entry.Term)
		}
	}

	// Retrieve by ID
	got, err := repo.GetEntry(ctx, entries[0].Id)
	if err != nil {
		t.Fatalf("Failed to get entry: %v", err)
	}
	if got.Term != "burger" {
		t.Fatalf("Expected 'burger', got '%s'", got.Term)
	}
	if got.Frequency != 42 {
		t.Fatalf("Expected frequency 42, got %d", got.Frequency)
	}

	// Retrieve by (kind, term)
	found, err := repo.FindByTerm(ctx, core.KindMisspelling, "chiken")
	if err != nil {
		t.Fatalf("Failed to find entry: %v", err)
	}
	if found.Canonical != "chicken" {
		t.Fatalf("Expected 'chicken', got '%s'", found.Canonical)
	}
}

func TestLexiconNotFound(t *testing.T) {
	repo, err := NewMemoryLexiconRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	_, err = repo.GetEntry(ctx, core.ID(12345))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	_, err = repo.FindByTerm(ctx, core.KindVocabulary, "nothing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestLexiconIdempotentAdd(t *testing.T) {
	repo, err := NewMemoryLexiconRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	entry := &core.LexiconEntry{Term: "sushi", Kind: core.KindVocabulary, Frequency: 7}
	if err := repo.AddEntries(ctx, []*core.LexiconEntry{entry}); err != nil {
		t.Fatalf("Failed to add entry: %v", err)
	}
	firstID := entry.Id

	// Re-adding the same (kind, term) must map to the same content ID
	again := &core.LexiconEntry{Term: "sushi", Kind: core.KindVocabulary, Frequency: 7}
	if err := repo.AddEntries(ctx, []*core.LexiconEntry{again}); err != nil {
		t.Fatalf("Failed to re-add entry: %v", err)
	}
	if again.Id != firstID {
		t.Fatalf("Expected ID %d, got %d", firstID, again.Id)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 entry, got %d", count)
	}
}

func TestLexiconForEachEntry(t *testing.T) {
	repo, err := NewMemoryLexiconRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	entries := []*core.LexiconEntry{
		{Term: "pizza", Kind: core.KindVocabulary, Frequency: 10},
		{Term: "pasta", Kind: core.KindVocabulary, Frequency: 5},
		{Term: "burger", Kind: core.KindSynonym, Synsets: []core.SynonymSet{{Lemmas: []string{"hamburger"}}}},
	}
	if err := repo.AddEntries(ctx, entries); err != nil {
		t.Fatalf("Failed to add entries: %v", err)
	}

	seen := make(map[string]core.TermKind)
	err = repo.ForEachEntry(ctx, func(entry *core.LexiconEntry) error {
		seen[entry.Term] = entry.Kind
		return nil
	})
	if err != nil {
		t.Fatalf("ForEachEntry failed: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(seen))
	}
	if seen["burger"] != core.KindSynonym {
		t.Fatalf("Expected synonym kind for 'burger', got %v", seen["burger"])
	}

	// Callback errors stop iteration and propagate
	sentinel := errors.New("stop")
	err = repo.ForEachEntry(ctx, func(*core.LexiconEntry) error {
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Expected sentinel error, got %v", err)
	}
}

func TestLexiconInvalidEntryRejected(t *testing.T) {
	repo, err := NewMemoryLexiconRepository()
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()

	err = repo.AddEntries(ctx, []*core.LexiconEntry{
		{Term: "", Kind: core.KindVocabulary},
	})
	if !errors.Is(err, core.ErrEmptyTerm) {
		t.Fatalf("Expected ErrEmptyTerm, got %v", err)
	}

	// The failed transaction must not leave partial state behind
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if count != 0 {
		t.Fatalf("Expected empty repository, got %d entries", count)
	}
}

package feedback

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HeshalD/Cuisinise/core"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedback.tsv")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestRecordAndBoost(t *testing.T) {
	s, _ := openTestStore(t)

	record := &core.FeedbackRecord{
		UserID:    "u1",
		Original:  "chiken curry",
		Suggested: "chicken curry",
		Accepted:  true,
	}
	require.NoError(t, s.Record(record))

	assert.Equal(t, 1, s.BoostCount("u1", "chicken curry"))
	assert.Equal(t, 0, s.BoostCount("u2", "chicken curry"), "boosts are per user")
	assert.Equal(t, 0, s.BoostCount("u1", "burger"))
}

func TestBoostAccumulates(t *testing.T) {
	s, _ := openTestStore(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(&core.FeedbackRecord{
			UserID:    "u1",
			Original:  "berger",
			Suggested: "burger",
			Accepted:  true,
		}))
	}

	assert.Equal(t, 5, s.BoostCount("u1", "burger"))
}

func TestRejectionDoesNotBoost(t *testing.T) {
	s, path := openTestStore(t)

	require.NoError(t, s.Record(&core.FeedbackRecord{
		UserID:    "u1",
		Original:  "berger",
		Suggested: "burger",
		Accepted:  false,
	}))

	assert.Equal(t, 0, s.BoostCount("u1", "burger"))

	// The rejection is still on disk for audit
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "u1\tberger\tburger\t0\n", string(data))
}

func TestBoostCaseInsensitive(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Record(&core.FeedbackRecord{
		UserID:    "u1",
		Original:  "Berger",
		Suggested: "Burger",
		Accepted:  true,
	}))

	assert.Equal(t, 1, s.BoostCount("u1", "burger"))
	assert.Equal(t, 1, s.BoostCount("u1", "BURGER"))
}

func TestReplayOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.tsv")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(&core.FeedbackRecord{
		UserID: "u1", Original: "colmobo", Suggested: "colombo", Accepted: true,
	}))
	require.NoError(t, s.Record(&core.FeedbackRecord{
		UserID: "u1", Original: "colmobo", Suggested: "colombo", Accepted: true,
	}))
	require.NoError(t, s.Record(&core.FeedbackRecord{
		UserID: "u2", Original: "piza", Suggested: "pizza", Accepted: false,
	}))
	require.NoError(t, s.Close())

	// Reopen: accepted counts must survive, rejections must not appear
	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	assert.Equal(t, 2, s2.BoostCount("u1", "colombo"))
	assert.Equal(t, 0, s2.BoostCount("u2", "pizza"))
}

func TestReplaySkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.tsv")
	content := "u1\tberger\tburger\t1\n" +
		"torn line without tabs\n" +
		"u1\tberger\tburger\t1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, 2, s.BoostCount("u1", "burger"))
}

func TestSanitizesTSVBreakers(t *testing.T) {
	s, path := openTestStore(t)

	require.NoError(t, s.Record(&core.FeedbackRecord{
		UserID:    "u1",
		Original:  "chiken\tcurry",
		Suggested: "chicken\ncurry",
		Accepted:  true,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSuffix(string(data), "\n")
	assert.Len(t, strings.Split(line, "\t"), 4)
	assert.Equal(t, 1, s.BoostCount("u1", "chicken curry"))
}

func TestRecordValidation(t *testing.T) {
	s, _ := openTestStore(t)

	err := s.Record(&core.FeedbackRecord{UserID: "u1", Original: "", Suggested: "burger"})
	assert.ErrorIs(t, err, core.ErrInvalidFeedback)

	err = s.Record(&core.FeedbackRecord{UserID: "u1", Original: "berger", Suggested: "  "})
	assert.ErrorIs(t, err, core.ErrEmptySuggestion)

	err = s.Record(nil)
	assert.ErrorIs(t, err, core.ErrInvalidFeedback)
}

func TestMemoryOnlyStore(t *testing.T) {
	s, err := Open("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(&core.FeedbackRecord{
		UserID: "u1", Original: "berger", Suggested: "burger", Accepted: true,
	}))
	assert.Equal(t, 1, s.BoostCount("u1", "burger"))
}

func TestClosedStoreRejectsWrites(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Close())

	err := s.Record(&core.FeedbackRecord{
		UserID: "u1", Original: "berger", Suggested: "burger", Accepted: true,
	})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestConcurrentRecords(t *testing.T) {
	s, _ := openTestStore(t)

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				err := s.Record(&core.FeedbackRecord{
					UserID:    "u1",
					Original:  "berger",
					Suggested: "burger",
					Accepted:  true,
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, s.BoostCount("u1", "burger"))
}

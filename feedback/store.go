package feedback

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/HeshalD/Cuisinise/core"
)

// fieldsPerLine is the TSV layout: user, original, suggested, accepted.
const fieldsPerLine = 4

// Store records user feedback on suggested corrections and keeps an
// in-memory count of accepted suggestions per (user, suggestion) pair.
// Records are appended to a TSV log; the counts are rebuilt from the log on
// open, so accumulated preferences survive restarts.
//
// Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex // guards boosts
	wmu    sync.Mutex   // serializes log appends
	boosts map[string]int
	file   *os.File // nil in memory-only mode
	logger *slog.Logger
	closed bool
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

// Open creates a feedback store backed by the TSV log at path, creating the
// file if needed and replaying any existing records into the boost table.
// An empty path opens a memory-only store whose counts vanish on restart.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		boosts: make(map[string]int),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if path == "" {
		s.logger.Debug("feedback store running memory-only")
		return s, nil
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening feedback log: %w", err)
	}

	replayed, skipped, err := s.replay(file)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("replaying feedback log: %w", err)
	}

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		file.Close()
		return nil, fmt.Errorf("seeking feedback log: %w", err)
	}

	s.file = file
	s.logger.Info("opened feedback store", "path", path, "replayed", replayed, "skipped", skipped)
	return s, nil
}

// replay rebuilds the boost table from existing log lines. Malformed lines
// are skipped, not fatal: the log may end with a torn write from a crash.
func (s *Store) replay(r io.Reader) (replayed, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != fieldsPerLine {
			skipped++
			continue
		}

		replayed++
		if fields[3] == "1" {
			s.boosts[boostKey(fields[0], fields[2])]++
		}
	}
	return replayed, skipped, scanner.Err()
}

// Record validates and durably appends a feedback record, then updates the
// boost table. Accepted suggestions raise the (user, suggestion) count;
// rejections are logged for audit but carry no boost.
func (s *Store) Record(record *core.FeedbackRecord) error {
	if err := core.ValidateFeedbackRecord(record); err != nil {
		return err
	}

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return ErrStoreClosed
	}

	accepted := "0"
	if record.Accepted {
		accepted = "1"
	}
	line := strings.Join([]string{
		sanitizeField(record.UserID),
		sanitizeField(record.Original),
		sanitizeField(record.Suggested),
		accepted,
	}, "\t") + "\n"

	if s.file != nil {
		s.wmu.Lock()
		_, err := s.file.WriteString(line)
		if err == nil {
			err = s.file.Sync()
		}
		s.wmu.Unlock()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteFailed, err)
		}
	}

	if record.Accepted {
		s.mu.Lock()
		s.boosts[boostKey(sanitizeField(record.UserID), sanitizeField(record.Suggested))]++
		s.mu.Unlock()
	}

	s.logger.Debug("recorded feedback",
		"user", record.UserID,
		"suggested", record.Suggested,
		"accepted", record.Accepted)
	return nil
}

// BoostCount returns how many times the user accepted this suggestion.
// Unknown pairs return zero.
func (s *Store) BoostCount(userID, suggested string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.boosts[boostKey(sanitizeField(userID), sanitizeField(suggested))]
}

// Close flushes and closes the log file. The store rejects writes after
// Close; reads keep working on the last in-memory state.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	s.wmu.Lock()
	defer s.wmu.Unlock()
	if err := s.file.Sync(); err != nil {
		s.file.Close()
		return err
	}
	return s.file.Close()
}

// sanitizeField normalizes a value and strips the characters that would
// break the TSV layout.
func sanitizeField(v string) string {
	v = core.NormalizeText(v)
	v = strings.ReplaceAll(v, "\t", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	v = strings.ReplaceAll(v, "\r", " ")
	return v
}

// boostKey builds the map key for a (user, suggestion) pair. The suggestion
// side is normalized text, so lookups match regardless of casing.
func boostKey(userID, suggested string) string {
	return userID + "\x00" + suggested
}

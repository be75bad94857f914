package lexicon

import (
	"log/slog"

	"github.com/sajari/fuzzy"

	"github.com/HeshalD/Cuisinise/core"
)

// Speller wraps a trained fuzzy dictionary model. It is the first
// correction rule tried for an unknown token, ahead of the edit-distance
// lexicon scan.
type Speller struct {
	model  *fuzzy.Model
	logger *slog.Logger
}

// NewSpeller trains a dictionary speller on the store's training words.
func NewSpeller(store *Store, opts ...Option) (*Speller, error) {
	// Options are shared with Store so callers pass one logger for both.
	cfg, err := NewStore(opts...)
	if err != nil {
		return nil, err
	}

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(store.TrainingWords())

	return &Speller{
		model:  model,
		logger: cfg.logger,
	}, nil
}

// Correct returns the speller's suggestion for a token, or the token
// unchanged when the model has nothing better. The fuzzy model panics on
// some degenerate inputs, so Correct recovers and fails open: a speller
// fault never breaks a correction request.
func (s *Speller) Correct(token string) (corrected string) {
	token = core.NormalizeText(token)
	corrected = token

	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn("speller panicked, keeping token", "token", token, "panic", r)
			corrected = token
		}
	}()

	if token == "" {
		return token
	}

	suggestion := s.model.SpellCheck(token)
	if suggestion == "" {
		return token
	}
	return suggestion
}

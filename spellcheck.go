// Copyright 2025 Cuisinise
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package cuisinise

import (
	"context"
	"log/slog"
	"os"

	"github.com/HeshalD/Cuisinise/correct"
	"github.com/HeshalD/Cuisinise/feedback"
	"github.com/HeshalD/Cuisinise/lexicon"
	"github.com/HeshalD/Cuisinise/nlp"
	"github.com/HeshalD/Cuisinise/nlp/openai"
	"github.com/HeshalD/Cuisinise/storage/badger"
)

// Service wires the lexicon, model provider, feedback store, and correction
// pipeline into one handle.
type Service struct {
	lexicon  *lexicon.Store
	provider nlp.ModelProvider
	feedback *feedback.Store
	pipeline *correct.Pipeline
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	nlpConfig    *nlp.Config
	lexiconPath  string
	feedbackPath string
}

// WithNLPConfig supplies the model provider configuration.
// Default is nlp.DefaultConfig().
func WithNLPConfig(cfg *nlp.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.nlpConfig = cfg
	}
}

// WithLexiconPath points at a precomputed vocabulary database built by the
// vocabbuild tool. Absence of the database falls back to the built-in
// default lexicon rather than failing startup.
func WithLexiconPath(path string) ServiceOption {
	return func(o *serviceOptions) {
		o.lexiconPath = path
	}
}

// WithFeedbackPath sets the feedback log location.
// An empty path keeps feedback in memory only.
func WithFeedbackPath(path string) ServiceOption {
	return func(o *serviceOptions) {
		o.feedbackPath = path
	}
}

// NewService creates the correction service.
func NewService(ctx context.Context, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		nlpConfig: nlp.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default()

	// Load lexicon, falling back to the built-in defaults when no database
	// is present
	lex, err := loadLexicon(ctx, options.lexiconPath, logger)
	if err != nil {
		return nil, err
	}

	// Create model provider with configured settings
	provider, err := openai.NewProvider(options.nlpConfig)
	if err != nil {
		return nil, err
	}

	feedbackStore, err := feedback.Open(options.feedbackPath)
	if err != nil {
		provider.Close()
		return nil, err
	}

	pipeline, err := correct.NewPipeline(lex, provider, feedbackStore)
	if err != nil {
		feedbackStore.Close()
		provider.Close()
		return nil, err
	}

	return &Service{
		lexicon:  lex,
		provider: provider,
		feedback: feedbackStore,
		pipeline: pipeline,
		logger:   logger,
	}, nil
}

func loadLexicon(ctx context.Context, path string, logger *slog.Logger) (*lexicon.Store, error) {
	if path == "" {
		return lexicon.Default()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Warn("lexicon database not found, using built-in defaults", "path", path)
		return lexicon.Default()
	}

	repo, err := badger.NewLexiconRepository(path)
	if err != nil {
		return nil, err
	}
	defer repo.Close()

	return lexicon.Load(ctx, repo)
}

// Pipeline returns the correction pipeline.
func (s *Service) Pipeline() *correct.Pipeline {
	return s.pipeline
}

// Lexicon returns the loaded lexicon store.
func (s *Service) Lexicon() *lexicon.Store {
	return s.lexicon
}

// Close releases the pipeline, feedback store, and model provider.
func (s *Service) Close() error {
	s.pipeline.Release()

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing model provider", "err", err)
	}

	if err := s.feedback.Close(); err != nil {
		s.logger.Error("error closing feedback store", "err", err)
		return err
	}
	return nil
}

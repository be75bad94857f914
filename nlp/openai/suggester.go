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


package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/HeshalD/Cuisinise/nlp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Suggester implements nlp.Suggester using OpenAI-compatible chat APIs.
// It asks a conservative correction prompt and parses a structured response.
type Suggester struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// suggestion is an internal type used for JSON unmarshaling.
type suggestion struct {
	CorrectedText string `json:"corrected_text"`
}

// newSuggester is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSuggester(config *nlp.Config) (*Suggester, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.SuggesterModel),
	)
	if err != nil {
		return nil, err
	}

	return &Suggester{
		client:  client,
		timeout: config.RequestTimeout,
		logger:  slog.Default().With("component", "openai-suggester"),
	}, nil
}

// NewSuggester creates a new contextual suggester using the provided configuration.
//
// Returns nlp.Suggester interface to enforce abstraction.
func NewSuggester(config *nlp.Config) (nlp.Suggester, error) {
	return newSuggester(config)
}

// SuggestCorrection asks the model for a corrected rendering of text.
// Returns "" when the model leaves the text unchanged.
func (s *Suggester) SuggestCorrection(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSuggestionPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result suggestion
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			s.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return "", err
		}

		if len(response.Choices) < 1 {
			s.logger.Debug("no choices returned from model")
			return "", nil
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			s.logger.Warn("error parsing suggester response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		s.logger.Error("failed to parse suggester response after retries", "err", lastErr)
		return "", lastErr
	}

	corrected := strings.TrimSpace(result.CorrectedText)
	if corrected == "" || strings.EqualFold(corrected, strings.TrimSpace(text)) {
		return "", nil
	}

	s.logger.Debug("contextual suggestion", "text", text, "corrected", corrected)
	return corrected, nil
}

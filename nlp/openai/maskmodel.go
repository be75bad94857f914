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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/HeshalD/Cuisinise/nlp"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// maskToken is the placeholder substituted for the hidden token.
const maskToken = "[MASK]"

// MaskPredictor implements nlp.MaskPredictor using OpenAI-compatible chat APIs.
// It emulates fill-mask scoring by asking a chat model for the most likely
// fillers of a masked position.
type MaskPredictor struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// maskResult is an internal type used for JSON unmarshaling.
type maskResult struct {
	Predictions []string `json:"predictions"`
}

// newMaskPredictor is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newMaskPredictor(config *nlp.Config) (*MaskPredictor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.MaskModel),
	)
	if err != nil {
		return nil, err
	}

	return &MaskPredictor{
		client:  client,
		timeout: config.RequestTimeout,
		logger:  slog.Default().With("component", "openai-maskmodel"),
	}, nil
}

// NewMaskPredictor creates a new mask predictor using the provided configuration.
//
// Returns nlp.MaskPredictor interface to enforce abstraction.
func NewMaskPredictor(config *nlp.Config) (nlp.MaskPredictor, error) {
	return newMaskPredictor(config)
}

// PredictMasked masks tokens[index] and returns up to topK predicted fillers.
func (m *MaskPredictor) PredictMasked(ctx context.Context, tokens []string, index, topK int) ([]string, error) {
	if index < 0 || index >= len(tokens) {
		return nil, fmt.Errorf("mask index %d out of range for %d tokens", index, len(tokens))
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	masked := make([]string, len(tokens))
	copy(masked, tokens)
	masked[index] = maskToken

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildMaskPrompt(maskToken, topK)),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(strings.Join(masked, " ")),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result maskResult
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := m.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			m.logger.Error("failed to generate content", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			m.logger.Debug("no choices returned from model")
			return []string{}, nil
		}

		responseText := stripCodeFences(response.Choices[0].Content)
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			m.logger.Warn("error parsing mask response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		m.logger.Error("failed to parse mask response after retries", "err", lastErr)
		return nil, lastErr
	}

	predictions := make([]string, 0, topK)
	for _, p := range result.Predictions {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		predictions = append(predictions, p)
		if len(predictions) == topK {
			break
		}
	}

	return predictions, nil
}

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

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	cuisinise "github.com/HeshalD/Cuisinise"
	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/correct"
	"github.com/HeshalD/Cuisinise/nlp"
)

func main() {
	app := &cli.App{
		Name:  "cuisinise",
		Usage: "Layered spell correction for food search queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "correct",
				Usage:     "Run a query through the correction pipeline",
				ArgsUsage: "<query text>",
				Action:    correctCommand,
				Flags: append(serviceFlags(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of candidates to return (1-10)",
						Value:   core.DefaultTopK,
					},
					&cli.StringFlag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "User identifier for personalized ranking",
					},
					&cli.BoolFlag{
						Name:    "verbose",
						Aliases: []string{"v"},
						Usage:   "Print intermediate pipeline stages to stderr",
					},
				),
			},
			{
				Name:   "feedback",
				Usage:  "Record whether a suggested correction was accepted",
				Action: feedbackCommand,
				Flags: append(serviceFlags(),
					&cli.StringFlag{
						Name:     "original",
						Usage:    "The query text the user typed",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "suggested",
						Usage:    "The correction that was offered",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "accepted",
						Usage: "Whether the user accepted the suggestion",
					},
					&cli.StringFlag{
						Name:    "user",
						Aliases: []string{"u"},
						Usage:   "User identifier",
					},
				),
			},
			{
				Name:   "status",
				Usage:  "Report loaded models and lexicon statistics",
				Action: statusCommand,
				Flags:  serviceFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// serviceFlags are shared by every command that opens the service.
func serviceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "lexicon",
			Aliases: []string{"d"},
			Usage:   "Path to the vocabulary database built by vocabbuild",
			Value:   "./lexicon_db",
		},
		&cli.StringFlag{
			Name:  "feedback-log",
			Usage: "Path to the append-only feedback log",
			Value: "./feedback.tsv",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL for all models",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name (empty disables embeddings)",
			Value: "embeddinggemma",
		},
		&cli.StringFlag{
			Name:  "suggester-model",
			Usage: "Contextual suggestion model name (empty disables)",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:  "mask-model",
			Usage: "Fill-in-the-blank model name (empty disables)",
			Value: "qwen2.5:3b",
		},
	}
}

func openService(ctx context.Context, c *cli.Context) (*cuisinise.Service, error) {
	cfg := nlp.NewConfig(
		nlp.WithHost(c.String("host")),
		nlp.WithEmbeddingModel(c.String("embedding-model")),
		nlp.WithSuggesterModel(c.String("suggester-model")),
		nlp.WithMaskModel(c.String("mask-model")),
	)

	return cuisinise.NewService(ctx,
		cuisinise.WithNLPConfig(cfg),
		cuisinise.WithLexiconPath(c.String("lexicon")),
		cuisinise.WithFeedbackPath(c.String("feedback-log")),
	)
}

func correctCommand(c *cli.Context) error {
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("query text is required")
	}

	ctx := context.Background()
	svc, err := openService(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Close()

	req := &core.CorrectionRequest{
		Text:   text,
		TopK:   c.Int("top-k"),
		UserID: c.String("user"),
	}

	var monitor correct.CorrectionMonitor
	if c.Bool("verbose") {
		monitor = &stageReporter{out: os.Stderr}
	}

	resp, err := svc.Pipeline().CorrectWithMonitor(ctx, req, monitor)
	if err != nil {
		return err
	}

	fmt.Printf("original:  %s\n", resp.Original)
	fmt.Printf("corrected: %s\n", resp.Corrected)
	fmt.Printf("changed:   %t\n", resp.Changed)
	for i, cand := range resp.Candidates {
		fmt.Printf("%d: %q [%0.3f] (%s)\n", i+1, cand.Text, cand.Score, cand.Source)
	}
	return nil
}

// stageReporter prints intermediate pipeline output for --verbose.
type stageReporter struct {
	out io.Writer
}

func (r *stageReporter) Start(text string) {
	fmt.Fprintf(r.out, "stage: input %q\n", text)
}

func (r *stageReporter) AfterCandidateGeneration(corrected string, pool []string) {
	fmt.Fprintf(r.out, "stage: lexical correction %q, %d pooled candidates\n", corrected, len(pool))
	for _, cand := range pool {
		fmt.Fprintf(r.out, "  pooled: %q\n", cand)
	}
}

func (r *stageReporter) AfterContextScoring(count int) {
	fmt.Fprintf(r.out, "stage: %d candidates scored\n", count)
}

func (r *stageReporter) Finish(candidates []core.Candidate) {
	fmt.Fprintf(r.out, "stage: %d candidates ranked\n", len(candidates))
}

func feedbackCommand(c *cli.Context) error {
	ctx := context.Background()
	svc, err := openService(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Close()

	err = svc.Pipeline().Feedback(&core.FeedbackRecord{
		UserID:    c.String("user"),
		Original:  c.String("original"),
		Suggested: c.String("suggested"),
		Accepted:  c.Bool("accepted"),
	})
	if err != nil {
		return err
	}

	fmt.Println("feedback recorded")
	return nil
}

func statusCommand(c *cli.Context) error {
	ctx := context.Background()
	svc, err := openService(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Close()

	caps := svc.Pipeline().Capabilities()
	fmt.Printf("embedder:       %s\n", loadedLabel(caps.Embedder))
	fmt.Printf("suggester:      %s\n", loadedLabel(caps.Suggester))
	fmt.Printf("mask predictor: %s\n", loadedLabel(caps.MaskPredictor))
	fmt.Printf("lexicon: %d vocabulary, %d protected, %d misspellings, %d synonym entries\n",
		caps.Lexicon.Vocabulary,
		caps.Lexicon.Protected,
		caps.Lexicon.Misspellings,
		caps.Lexicon.Synonyms)
	return nil
}

func loadedLabel(loaded bool) string {
	if loaded {
		return "loaded"
	}
	return "not loaded"
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

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


// vocabbuild compiles plain-text word lists into the BadgerDB lexicon
// database the correction service loads at startup.
//
// Input formats, one entry per line, # comments and blank lines ignored:
//
//	--vocab:       term [<TAB> frequency]
//	--protected:   term
//	--misspell:    misspelling <TAB> canonical
//	--synonyms:    term <TAB> lemma,lemma[,...]
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/HeshalD/Cuisinise/core"
	"github.com/HeshalD/Cuisinise/storage"
	"github.com/HeshalD/Cuisinise/storage/badger"
)

const batchSize = 500

func main() {
	app := &cli.App{
		Name:   "vocabbuild",
		Usage:  "Build the domain vocabulary database for cuisinise",
		Action: buildCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "Output database directory",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "vocab",
				Usage: "Word list file(s): term, optionally followed by a tab and a frequency",
			},
			&cli.StringSliceFlag{
				Name:  "protected",
				Usage: "Gazetteer file(s): terms exempt from correction",
			},
			&cli.StringSliceFlag{
				Name:  "misspell",
				Usage: "Misspelling map file(s): misspelling, tab, canonical term",
			},
			&cli.StringSliceFlag{
				Name:  "synonyms",
				Usage: "Synonym file(s): term, tab, comma-separated lemmas",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func buildCommand(c *cli.Context) error {
	if len(c.StringSlice("vocab")) == 0 &&
		len(c.StringSlice("protected")) == 0 &&
		len(c.StringSlice("misspell")) == 0 &&
		len(c.StringSlice("synonyms")) == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	repo, err := badger.NewLexiconRepository(c.String("out"))
	if err != nil {
		return fmt.Errorf("failed to open output database: %w", err)
	}
	defer repo.Close()

	ctx := context.Background()
	b := &builder{repo: repo, logger: slog.Default()}

	for _, path := range c.StringSlice("vocab") {
		if err := b.loadFile(ctx, path, parseVocabLine); err != nil {
			return err
		}
	}
	for _, path := range c.StringSlice("protected") {
		if err := b.loadFile(ctx, path, parseProtectedLine); err != nil {
			return err
		}
	}
	for _, path := range c.StringSlice("misspell") {
		if err := b.loadFile(ctx, path, parseMisspellLine); err != nil {
			return err
		}
	}
	for _, path := range c.StringSlice("synonyms") {
		if err := b.loadFile(ctx, path, parseSynonymLine); err != nil {
			return err
		}
	}

	if err := b.flush(ctx); err != nil {
		return err
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Built %s: %d entries (%d lines skipped)\n",
		c.String("out"), count, b.skipped)
	return nil
}

type lineParser func(line string) (*core.LexiconEntry, error)

type builder struct {
	repo    storage.LexiconRepository
	pending []*core.LexiconEntry
	skipped int
	logger  *slog.Logger
}

func (b *builder) loadFile(ctx context.Context, path string, parse lineParser) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parse(line)
		if err != nil {
			b.logger.Warn("skipping line", "file", path, "line", lineNo, "err", err)
			b.skipped++
			continue
		}

		b.pending = append(b.pending, entry)
		if len(b.pending) >= batchSize {
			if err := b.flush(ctx); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return nil
}

func (b *builder) flush(ctx context.Context) error {
	if len(b.pending) == 0 {
		return nil
	}
	if err := b.repo.AddEntries(ctx, b.pending); err != nil {
		return fmt.Errorf("failed to store entries: %w", err)
	}
	b.pending = b.pending[:0]
	return nil
}

func parseVocabLine(line string) (*core.LexiconEntry, error) {
	fields := strings.Split(line, "\t")
	entry := &core.LexiconEntry{
		Term:      core.NormalizeText(fields[0]),
		Kind:      core.KindVocabulary,
		Frequency: 1,
	}
	if len(fields) > 1 {
		freq, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad frequency %q: %w", fields[1], err)
		}
		entry.Frequency = freq
	}
	return entry, core.ValidateLexiconEntry(entry)
}

func parseProtectedLine(line string) (*core.LexiconEntry, error) {
	entry := &core.LexiconEntry{
		Term: core.NormalizeText(line),
		Kind: core.KindProtected,
	}
	return entry, core.ValidateLexiconEntry(entry)
}

func parseMisspellLine(line string) (*core.LexiconEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return nil, fmt.Errorf("expected 'misspelling<TAB>canonical', got %q", line)
	}
	entry := &core.LexiconEntry{
		Term:      core.NormalizeText(fields[0]),
		Kind:      core.KindMisspelling,
		Canonical: core.NormalizeText(fields[1]),
	}
	if entry.Canonical == "" {
		return nil, fmt.Errorf("empty canonical term in %q", line)
	}
	return entry, core.ValidateLexiconEntry(entry)
}

func parseSynonymLine(line string) (*core.LexiconEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 2 {
		return nil, fmt.Errorf("expected 'term<TAB>lemma,lemma', got %q", line)
	}

	var lemmas []string
	for _, lemma := range strings.Split(fields[1], ",") {
		if lemma = core.NormalizeText(lemma); lemma != "" {
			lemmas = append(lemmas, lemma)
		}
	}
	if len(lemmas) == 0 {
		return nil, fmt.Errorf("no lemmas in %q", line)
	}

	entry := &core.LexiconEntry{
		Term:    core.NormalizeText(fields[0]),
		Kind:    core.KindSynonym,
		Synsets: []core.SynonymSet{{Lemmas: lemmas}},
	}
	return entry, core.ValidateLexiconEntry(entry)
}

// Copyright 2025 The Jotline Authors
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
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/jotline/jotline"
	"github.com/jotline/jotline/ai"
	"github.com/jotline/jotline/core"
	"github.com/jotline/jotline/reembed"
)

func main() {
	app := &cli.App{
		Name:   "jotline",
		Usage:  "Personal notes with hybrid lexical and semantic search",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:     "db",
				Aliases:  []string{"d"},
				Usage:    "Path to BadgerDB database directory",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "user",
				Aliases:  []string{"u"},
				Usage:    "User the operation is scoped to",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "embedding-host",
				Usage: "Embedding service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "embedding-model",
				Usage: "Embedding model name",
				Value: "embeddinggemma",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Add a note",
				ArgsUsage: "<content>",
				Action:    addCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "Note title",
					},
					&cli.StringSliceFlag{
						Name:  "tag",
						Usage: "Tag to attach (repeatable)",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search notes",
				ArgsUsage: "<query>",
				Action:    searchCommand,
			},
			{
				Name:   "reembed",
				Usage:  "Regenerate embeddings for all of a user's notes",
				Action: reembedCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of notes to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N notes",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openNotebook(c *cli.Context) (*jotline.Notebook, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	notebook, err := jotline.Open(c.String("db"), jotline.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open notebook: %w", err)
	}
	return notebook, nil
}

func addCommand(c *cli.Context) error {
	content := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if content == "" {
		return fmt.Errorf("note content is required")
	}

	notebook, err := openNotebook(c)
	if err != nil {
		return err
	}
	defer notebook.Close()

	pipeline, err := notebook.NewIngestionPipeline()
	if err != nil {
		return err
	}
	defer pipeline.Release()

	ctx := context.Background()
	userId := c.String("user")

	note := &core.Note{
		UserId:  userId,
		Title:   c.String("title"),
		Content: content,
		Tags:    c.StringSlice("tag"),
	}

	if err := pipeline.Ingest(ctx, note); err != nil {
		return err
	}

	fmt.Printf("Added note %s\n", note.Id)

	// Embedding happens in the background; give it a moment so the
	// note is searchable as soon as the command returns.
	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		stored, err := notebook.NoteRepository().GetNote(ctx, userId, note.Id)
		if err == nil && len(stored.Vector) > 0 {
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}

	fmt.Fprintln(os.Stderr, "Warning: note stored but not yet embedded; run reembed if the embedding service was down")
	return nil
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("search query is required")
	}

	notebook, err := openNotebook(c)
	if err != nil {
		return err
	}
	defer notebook.Close()

	results, err := notebook.Search(context.Background(), query, c.String("user"))
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No matching notes.")
		return nil
	}

	for i, result := range results {
		title := result.Note.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Printf("%d. %s  [%s, score %.2f]\n", i+1, title, result.MatchType, result.Score)
		fmt.Printf("   %s\n", firstLine(result.Note.Content))
	}

	return nil
}

func reembedCommand(c *cli.Context) error {
	notebook, err := openNotebook(c)
	if err != nil {
		return err
	}
	defer notebook.Close()

	config := &reembed.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	reembedder := notebook.NewReembedder(c.String("user"), config, os.Stderr)
	if err := reembedder.Run(context.Background()); err != nil {
		return fmt.Errorf("reembedding failed: %w", err)
	}

	return nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	const max = 120
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// Copyright 2025 Poiesic Systems
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

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/textsearch"
	"github.com/poiesic/textsearch/config"
	"github.com/poiesic/textsearch/core"
)

func main() {
	app := &cli.App{
		Name:   "textsearch",
		Usage:  "Whitespace-tolerant boolean keyword search over text files",
		Before: setupLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search files for a primary keyword plus AND-of-OR groups",
				ArgsUsage: "FILE...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Primary literal every matching file must contain",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "any",
						Aliases: []string{"a"},
						Usage:   "Comma-separated OR-group; repeat for additional groups",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Worker pool size (defaults to CPU count)",
					},
					&cli.BoolFlag{
						Name:    "ignore-case",
						Aliases: []string{"i"},
						Usage:   "Match regardless of letter case",
					},
					&cli.IntFlag{
						Name:  "context",
						Usage: "Print N bytes of context around the primary match",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "Path to YAML config file",
						Value: "config.yaml",
					},
					&cli.BoolFlag{
						Name:  "show-failed",
						Usage: "List files that could not be searched",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %s", c.String("log-level"))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("no files to search")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("ignore-case") {
		cfg.IgnoreCase = true
	}
	if c.IsSet("context") {
		cfg.ContextBefore = c.Int("context")
		cfg.ContextAfter = c.Int("context")
	}

	spec, err := textsearch.NewQueryGroup(c.String("query"), parseGroups(c.StringSlice("any")))
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	opts := []textsearch.SearchOption{textsearch.WithPoolSize(cfg.Workers)}
	if cfg.IgnoreCase {
		opts = append(opts, textsearch.WithCaseInsensitive())
	}
	if cfg.ContextBefore > 0 || cfg.ContextAfter > 0 {
		opts = append(opts, textsearch.WithContextWindow(cfg.ContextBefore, cfg.ContextAfter))
	}

	targets := textsearch.FilePaths(c.Args().Slice()...)
	result, err := textsearch.SearchText(context.Background(), spec, targets, opts...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	printResult(result, cfg.ContextBefore > 0 || cfg.ContextAfter > 0, c.Bool("show-failed"))

	if len(result.Matched) == 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// parseGroups splits each repeated --any value into its comma-separated
// member literals, dropping blanks.
func parseGroups(raw []string) [][]string {
	return lo.Map(raw, func(group string, _ int) []string {
		return lo.FilterMap(strings.Split(group, ","), func(literal string, _ int) (string, bool) {
			trimmed := strings.TrimSpace(literal)
			return trimmed, trimmed != ""
		})
	})
}

func printResult(result *core.SearchResult, withContext, showFailed bool) {
	contexts := lo.Associate(result.Matched, func(m core.FileMatch) (string, string) {
		return string(m.Target), m.Context
	})

	for _, path := range result.MatchedPaths() {
		if withContext && contexts[path] != "" {
			fmt.Printf("%s: %s\n", path, oneLine(contexts[path]))
		} else {
			fmt.Println(path)
		}
	}

	if showFailed {
		for _, failure := range result.Failed {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", failure.Target, failure.Reason)
		}
	}
}

// oneLine flattens a snippet for single-line output.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

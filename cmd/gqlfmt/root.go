/**
 * Copyright (c) 2018, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/botobag/gqlparse/graphql/parser"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// rootOptions holds the flags shared by every subcommand.
type rootOptions struct {
	verbose    bool
	color      string
	maxDepth   int
	executable bool

	// Set up by PersistentPreRunE
	useColor bool
	logger   *slog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gqlfmt",
		Short: "Format and check GraphQL documents",
		Long: `gqlfmt parses GraphQL type system documents (SDL) and executable documents (queries and
fragments), prints them in canonical form and reports syntax errors with source excerpts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log progress to stderr")
	flags.StringVar(&opts.color, "color", "auto", "Colorize diagnostics: auto, always or never")
	flags.IntVar(&opts.maxDepth, "max-depth", parser.DefaultMaxDepth,
		"Maximum nesting of selection sets and values")
	flags.BoolVarP(&opts.executable, "executable", "e", false,
		"Parse executable documents (operations and fragments) instead of SDL")

	cmd.AddCommand(newFmtCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newTokensCommand(opts))

	return cmd
}

func (opts *rootOptions) setup(cmd *cobra.Command) error {
	switch opts.color {
	case "auto":
		opts.useColor = !color.NoColor
	case "always":
		opts.useColor = true
	case "never":
		opts.useColor = false
	default:
		return fmt.Errorf(`invalid value %q for --color: expected "auto", "always" or "never"`, opts.color)
	}

	if opts.maxDepth < 1 {
		return fmt.Errorf("invalid value %d for --max-depth: must be positive", opts.maxDepth)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	opts.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !opts.useColor,
	}))

	return nil
}

func (opts *rootOptions) parserOptions(in input) []parser.Option {
	return []parser.Option{
		parser.WithMaxDepth(opts.maxDepth),
		parser.WithSourceName(in.name),
	}
}

// documentKind names the kind of documents being processed in log messages.
func (opts *rootOptions) documentKind() string {
	if opts.executable {
		return "executable"
	}
	return "type system"
}

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
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/botobag/gqlparse/graphql"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type checkOptions struct {
	*rootOptions

	json bool
	jobs int
}

// checkResult is the outcome of parsing one input.
type checkResult struct {
	File  string         `json:"file"`
	OK    bool           `json:"ok"`
	Error *graphql.Error `json:"error,omitempty"`

	err error
}

func newCheckCommand(root *rootOptions) *cobra.Command {
	opts := &checkOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "check [file ...]",
		Short: "Report syntax errors",
		Long: `Parse every file and report syntax errors. Files are parsed concurrently; results are
printed in the order the files were given. The command fails if any file fails to parse.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.json, "json", false, "Print results as JSON")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "Number of files parsed at a time")

	return cmd
}

func (opts *checkOptions) run(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	results, err := opts.checkAll(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	failed := 0
	for i, result := range results {
		if result.OK {
			continue
		}
		failed++
		if !opts.json {
			opts.report(cmd.ErrOrStderr(), inputs[i], result.err)
		}
	}

	if opts.json {
		output, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to parse", failed, len(inputs))
	}
	return nil
}

// checkAll parses inputs concurrently. The returned results are in the order of inputs.
func (opts *checkOptions) checkAll(ctx context.Context, inputs []input) ([]checkResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]checkResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			_, err := opts.format(in, false)
			result := checkResult{
				File: in.displayName(),
				OK:   err == nil,
				err:  err,
			}
			if err != nil {
				var e *graphql.Error
				if !errors.As(err, &e) {
					return err
				}
				result.Error = e
			}
			results[i] = result

			opts.logger.Debug("checked document",
				"file", result.File, "kind", opts.documentKind(), "ok", result.OK)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

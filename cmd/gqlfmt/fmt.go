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
	"io"
	"os"

	"github.com/spf13/cobra"
)

type fmtOptions struct {
	*rootOptions

	sorted bool
	write  bool
	list   bool
}

func newFmtCommand(root *rootOptions) *cobra.Command {
	opts := &fmtOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "fmt [file ...]",
		Short: "Print documents in canonical form",
		Long: `Print documents in canonical form. Definitions are separated by a blank line and nested
blocks are indented by two spaces. With --sorted, definitions, fields, arguments and enum values
are ordered by name; selections always keep their order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.sorted, "sorted", false, "Sort definitions and their members by name")
	flags.BoolVarP(&opts.write, "write", "w", false, "Write the result to the source file instead of stdout")
	flags.BoolVarP(&opts.list, "list", "l", false, "List files whose formatting differs")

	return cmd
}

func (opts *fmtOptions) run(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}

	failed := 0
	for _, in := range inputs {
		if err := opts.formatOne(cmd.OutOrStdout(), in); err != nil {
			opts.report(cmd.ErrOrStderr(), in, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed to parse", failed, len(inputs))
	}
	return nil
}

func (opts *fmtOptions) formatOne(out io.Writer, in input) error {
	formatted, err := opts.format(in, opts.sorted)
	if err != nil {
		return err
	}

	changed := formatted != in.text
	opts.logger.Debug("formatted document",
		"file", in.displayName(), "kind", opts.documentKind(), "changed", changed)

	if opts.list {
		if changed {
			fmt.Fprintln(out, in.displayName())
		}
		if !opts.write {
			return nil
		}
	}

	if opts.write && len(in.name) > 0 {
		if !changed {
			return nil
		}
		info, err := os.Stat(in.name)
		if err != nil {
			return err
		}
		if err := os.WriteFile(in.name, []byte(formatted), info.Mode().Perm()); err != nil {
			return err
		}
		opts.logger.Info("rewrote file", "file", in.name)
		return nil
	}

	_, err = io.WriteString(out, formatted)
	return err
}

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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/parser"

	"github.com/spf13/cobra"
)

// input is a document read from a file or from standard input.
type input struct {
	// name is the file path. It is empty for standard input.
	name string
	text string
}

// displayName returns the name used for the input in messages.
func (in input) displayName() string {
	if len(in.name) == 0 {
		return "<stdin>"
	}
	return in.name
}

// readInputs reads the files named in args. Standard input is read when args is empty or for an
// argument "-".
func readInputs(cmd *cobra.Command, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	inputs := make([]input, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			text, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return nil, fmt.Errorf("reading standard input: %w", err)
			}
			inputs = append(inputs, input{text: string(text)})
			continue
		}

		text, err := os.ReadFile(arg)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, input{name: arg, text: string(text)})
	}

	return inputs, nil
}

// format parses the input and returns it in canonical form.
func (opts *rootOptions) format(in input, sorted bool) (string, error) {
	if opts.executable {
		doc, err := parser.ParseExecutableDocument(in.text, opts.parserOptions(in)...)
		if err != nil {
			return "", err
		}
		printer := doc.Pretty()
		if sorted {
			printer = printer.Sorted()
		}
		return printer.String(), nil
	}

	doc, err := parser.ParseTypeSystemDocument(in.text, opts.parserOptions(in)...)
	if err != nil {
		return "", err
	}
	printer := doc.Pretty()
	if sorted {
		printer = printer.Sorted()
	}
	return printer.String(), nil
}

// report writes a diagnostic for an error that occurred while processing the input.
func (opts *rootOptions) report(w io.Writer, in input, err error) {
	var e *graphql.Error
	if !errors.As(err, &e) {
		fmt.Fprintf(w, "%s: %s\n", in.displayName(), err)
		return
	}

	var b strings.Builder
	e.ToReport(in.text).Render(&b, graphql.ReportOptions{Color: opts.useColor})
	fmt.Fprintln(w, strings.TrimSuffix(b.String(), "\n"))
}

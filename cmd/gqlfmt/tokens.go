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

	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/lexer"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/iterator"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

type tokensOptions struct {
	*rootOptions

	json bool
}

func newTokensCommand(root *rootOptions) *cobra.Command {
	opts := &tokensOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a document",
		Long: `Print the tokens of a document, one per line with its position, span and description.
Whitespace, commas and comments are skipped like the parser does.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print tokens as a JSON array")

	return cmd
}

func (opts *tokensOptions) run(cmd *cobra.Command, args []string) error {
	inputs, err := readInputs(cmd, args)
	if err != nil {
		return err
	}
	in := inputs[0]
	source := token.NewSource(in.name, in.text)

	var tokens []token.Token
	iter := lexer.Tokenize(in.text)
	for {
		tok, err := iter.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			var lexicalErr *lexer.LexicalError
			if errors.As(err, &lexicalErr) {
				err = graphql.NewLexicalError(source, lexicalErr)
			}
			opts.report(cmd.ErrOrStderr(), in, err)
			return fmt.Errorf("%s: lexing stopped after %d tokens", in.displayName(), len(tokens))
		}
		tokens = append(tokens, tok)
	}

	opts.logger.Debug("tokenized document", "file", in.displayName(), "tokens", len(tokens))

	if opts.json {
		return writeTokensJSON(cmd.OutOrStdout(), source, tokens)
	}
	return writeTokensText(cmd.OutOrStdout(), source, tokens)
}

// writeTokensText writes lines like "1:6	5..8	name 'Foo'".
func writeTokensText(w io.Writer, source *token.Source, tokens []token.Token) error {
	for _, tok := range tokens {
		info := source.LocationInfoOf(tok.Span.Start)
		if _, err := fmt.Fprintf(w, "%d:%d\t%s\t%s\n", info.Line, info.Column, tok.Span, tok.Description()); err != nil {
			return err
		}
	}
	return nil
}

func writeTokensJSON(w io.Writer, source *token.Source, tokens []token.Token) error {
	stream := jsoniter.NewStream(jsoniter.ConfigDefault, w, 4096)

	stream.WriteArrayStart()
	for i, tok := range tokens {
		if i > 0 {
			stream.WriteMore()
		}
		info := source.LocationInfoOf(tok.Span.Start)

		stream.WriteObjectStart()
		stream.WriteObjectField("kind")
		stream.WriteString(tok.Kind.Description())
		if len(tok.Value) > 0 {
			stream.WriteMore()
			stream.WriteObjectField("value")
			stream.WriteString(tok.Value)
		}
		stream.WriteMore()
		stream.WriteObjectField("line")
		stream.WriteInt(info.Line)
		stream.WriteMore()
		stream.WriteObjectField("column")
		stream.WriteInt(info.Column)
		stream.WriteMore()
		stream.WriteObjectField("start")
		stream.WriteInt(tok.Span.Start)
		stream.WriteMore()
		stream.WriteObjectField("end")
		stream.WriteInt(tok.Span.End)
		stream.WriteObjectEnd()
	}
	stream.WriteArrayEnd()
	stream.WriteRaw("\n")

	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}

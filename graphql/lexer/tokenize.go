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

package lexer

import (
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/iterator"
)

// TokenIterator iterates the tokens of a source text. The EOF token is not yielded.
type TokenIterator struct {
	lexer *Lexer
	done  bool
}

// Tokenize returns an iterator over the tokens in source.
func Tokenize(source string) *TokenIterator {
	return &TokenIterator{
		lexer: New(source),
	}
}

// Next returns the next token in the iteration. It returns iterator.Done when the end of input is
// reached. After a lexical error the iteration is over.
func (iter *TokenIterator) Next() (token.Token, error) {
	if iter.done {
		return token.Token{}, iterator.Done
	}

	tok, err := iter.lexer.Next()
	if err != nil {
		iter.done = true
		return token.Token{}, err
	}

	if tok.Kind == token.KindEOF {
		iter.done = true
		return token.Token{}, iterator.Done
	}

	return tok, nil
}

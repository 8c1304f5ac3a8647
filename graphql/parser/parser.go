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

package parser

import (
	"errors"

	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/lexer"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
)

// parser holds the state shared by the type system and the executable parsers. It reads one token
// ahead of what has been consumed.
type parser struct {
	// The lexer for tokenization
	lexer *lexer.Lexer

	// The text being parsed, used to compute line and column for errors
	source *token.Source

	// The configuration options
	options options

	// The next token to be consumed
	tok token.Token

	// End offset of the last consumed token
	prevEnd int

	// Number of nested selection sets, list values and object values being parsed
	depth int

	// Destination of values and interned strings
	store *values.Store

	// Set when parsing an executable document: tokens that only the type system grammar uses are
	// reported as invalid.
	executable bool
}

func newParser(text string, store *values.Store, opts []Option) (*parser, error) {
	return newParserWithLexer(lexer.New(text), store, opts)
}

func newParserWithLexer(l *lexer.Lexer, store *values.Store, opts []Option) (*parser, error) {
	text := l.Source()
	options := newOptions(opts)
	p := &parser{
		lexer:   l,
		source:  token.NewSource(options.sourceName, text),
		options: options,
		store:   store,
	}
	// Load the first token.
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance consumes the current token and lexes the next one.
func (p *parser) advance() error {
	p.prevEnd = p.tok.Span.End
	tok, err := p.lexer.Next()
	if err != nil {
		var lexicalErr *lexer.LexicalError
		if errors.As(err, &lexicalErr) {
			return graphql.NewLexicalError(p.source, lexicalErr)
		}
		return err
	}
	p.tok = tok
	return nil
}

// Peek return current token without consume it.
func (p *parser) peek() token.Token {
	return p.tok
}

// If the next token is of the given kind, return true after advancing the lexer. Otherwise, do not
// change the parser state and return false.
func (p *parser) skip(kind token.Kind) (bool, error) {
	if p.tok.Kind != kind {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

// If the next token is of the given kind, return that token after advancing the lexer. Otherwise,
// do not change the parser state and return an error.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, p.unexpected(kind.Description())
	}
	if err := p.advance(); err != nil {
		return tok, err
	}
	return tok, nil
}

// If the next token is a keyword with the given value, return true after advancing the lexer.
// Otherwise, do not change the parser state and return false.
func (p *parser) skipKeyword(keyword string) (bool, error) {
	if !p.tok.IsKeyword(keyword) {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

// If the next token is a keyword with the given value, advance the lexer. Otherwise, do not change
// the parser state and return an error.
func (p *parser) expectKeyword(keyword string) error {
	if !p.tok.IsKeyword(keyword) {
		return p.unexpected(describeKeyword(keyword))
	}
	return p.advance()
}

// unexpected creates an error for the current token, which isn't one of expected.
func (p *parser) unexpected(expected ...string) error {
	tok := p.tok
	switch {
	case tok.Kind == token.KindEOF:
		return graphql.NewUnrecognizedEOFError(p.source, tok.Span.Start, expected)
	case p.executable && (tok.Kind == token.KindAmp || tok.Kind == token.KindPipe):
		return graphql.NewInvalidTokenError(p.source, tok.Span.Start)
	}
	return graphql.NewUnrecognizedTokenError(p.source, tok, expected)
}

// extraToken creates an error for a token found where the document could have ended.
func (p *parser) extraToken() error {
	return graphql.NewExtraTokenError(p.source, p.tok)
}

// isClosingToken returns true for punctuators that close a construct. Such a token in place of a
// new definition means the document has more closing tokens than opening ones.
func isClosingToken(kind token.Kind) bool {
	switch kind {
	case token.KindRightBrace, token.KindRightBracket, token.KindRightParen:
		return true
	}
	return false
}

// enter is called when starting a nested construct. It fails once the maximum depth is exceeded.
// Every successful call must be paired with a call to leave.
func (p *parser) enter(what string) error {
	if p.depth >= p.options.maxDepth {
		return graphql.NewRecursionLimitError(p.source, p.tok.Span, what)
	}
	p.depth++
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// spanFrom returns the span from start to the end of the last consumed token.
func (p *parser) spanFrom(start int) token.Span {
	return token.NewSpan(start, p.prevEnd)
}

// name is a consumed Name token that has been interned.
type name struct {
	ID   arena.StringID
	Span token.Span
}

// Converts a name lex token into a name.
//
//	Name ::
//		/[_A-Za-z][_0-9A-Za-z]*/
func (p *parser) parseName() (name, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return name{}, err
	}
	return name{
		ID:   p.store.Intern(tok.Value),
		Span: tok.Span,
	}, nil
}

func describeKeyword(keyword string) string {
	return "'" + keyword + "'"
}

func describeKeywords(keywords ...string) []string {
	result := make([]string, len(keywords))
	for i, keyword := range keywords {
		result[i] = describeKeyword(keyword)
	}
	return result
}

func describeKinds(kinds ...token.Kind) []string {
	result := make([]string, len(kinds))
	for i, kind := range kinds {
		result[i] = kind.Description()
	}
	return result
}

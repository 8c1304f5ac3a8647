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

package graphql

import (
	"fmt"
	"strings"

	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/lexer"
	"github.com/botobag/gqlparse/graphql/token"
)

// NewInvalidTokenError reports a token that the grammar can't use anywhere. The error points at the
// start of the token.
func NewInvalidTokenError(source *token.Source, offset int) error {
	return NewError("invalid token", ErrKindInvalidToken, token.NewSpan(offset, offset), source)
}

// NewLexicalError wraps an error returned by the lexer.
func NewLexicalError(source *token.Source, err *lexer.LexicalError) error {
	return NewError("invalid token", ErrKindLexical, err.Span, source, err)
}

// NewUnrecognizedEOFError reports that the input ended while expected tokens were still missing.
func NewUnrecognizedEOFError(source *token.Source, offset int, expected []string) error {
	return NewError("unexpected eof", ErrKindUnrecognizedEOF, token.NewSpan(offset, offset), source, expected)
}

// NewUnrecognizedTokenError reports a token that doesn't fit the grammar at its position.
func NewUnrecognizedTokenError(source *token.Source, tok token.Token, expected []string) error {
	e := NewError("unexpected "+tok.Description(), ErrKindUnrecognizedToken, tok.Span, source, expected)
	if e, ok := e.(*Error); ok {
		e.Token = tok.Description()
	}
	return e
}

// NewExtraTokenError reports a token following a complete document.
func NewExtraTokenError(source *token.Source, tok token.Token) error {
	e := NewError("extra "+tok.Description(), ErrKindExtraToken, tok.Span, source)
	if e, ok := e.(*Error); ok {
		e.Token = tok.Description()
	}
	return e
}

// NewMalformedStringLiteralError reports a string literal that couldn't be decoded.
func NewMalformedStringLiteralError(source *token.Source, span token.Span, err error) error {
	return NewError(err.Error(), ErrKindMalformedStringLiteral, span, source, err)
}

// NewMalformedDirectiveLocationError reports an unknown location in a directive definition.
func NewMalformedDirectiveLocationError(source *token.Source, span token.Span, location string) error {
	message := fmt.Sprintf("unknown directive location: %s. expected one of %s",
		location, strings.Join(ast.DirectiveLocationNames(), ", "))
	e := NewError(message, ErrKindMalformedDirectiveLocation, span, source)
	if e, ok := e.(*Error); ok {
		e.Location = location
	}
	return e
}

// NewVariableInConstPositionError reports a variable used where only const values are allowed.
// name is given without the "$".
func NewVariableInConstPositionError(source *token.Source, span token.Span, name string) error {
	message := fmt.Sprintf("the variable $%s can't be used in a const position", name)
	e := NewError(message, ErrKindVariableInConstPosition, span, source)
	if e, ok := e.(*Error); ok {
		e.Variable = name
	}
	return e
}

// NewEmptyTypeSystemDocumentError reports a type system document without any definition.
func NewEmptyTypeSystemDocumentError() error {
	return NewError("the graphql document was empty, please provide at least one definition",
		ErrKindEmptyTypeSystemDocument)
}

// NewEmptyExecutableDocumentError reports an executable document without any definition.
func NewEmptyExecutableDocumentError() error {
	return NewError("the graphql document was empty, please provide an operation",
		ErrKindEmptyExecutableDocument)
}

// NewEmptySchemaCoordinateError reports a schema coordinate without any name.
func NewEmptySchemaCoordinateError() error {
	return NewError("the schema coordinate was empty, please provide a type or a directive",
		ErrKindEmptySchemaCoordinate)
}

// NewRecursionLimitError reports input nested deeper than the parser allows. what names the
// construct, like "selection set" or "list type".
func NewRecursionLimitError(source *token.Source, span token.Span, what string) error {
	return NewError(fmt.Sprintf("the %s is nested too deeply", what), ErrKindRecursionLimit, span, source)
}

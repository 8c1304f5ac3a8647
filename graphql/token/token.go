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

package token

import (
	"fmt"
)

// Kind describes the different kinds of tokens that the lexer emits.
type Kind int

// Enumeration of Kind
//
// Reference: https://spec.graphql.org/October2021/#sec-Appendix-Grammar-Summary.Lexical-Tokens
const (
	// <EOF>
	KindEOF Kind = iota + 1
	// !
	KindBang
	// $
	KindDollar
	// &
	KindAmp
	// (
	KindLeftParen
	// )
	KindRightParen
	// ...
	KindSpread
	// :
	KindColon
	// =
	KindEquals
	// @
	KindAt
	// [
	KindLeftBracket
	// ]
	KindRightBracket
	// {
	KindLeftBrace
	// |
	KindPipe
	// }
	KindRightBrace
	// Ref: https://spec.graphql.org/October2021/#Name
	KindName
	// Ref: https://spec.graphql.org/October2021/#IntValue
	KindInt
	// Ref: https://spec.graphql.org/October2021/#FloatValue
	KindFloat
	// Ref: https://spec.graphql.org/October2021/#StringValue
	KindString
	// Ref: https://spec.graphql.org/October2021/#BlockString
	KindBlockString
	// . (only in schema coordinates)
	KindDot
)

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	switch kind {
	case KindEOF:
		return "<EOF>"
	case KindBang:
		return "!"
	case KindDollar:
		return "$"
	case KindAmp:
		return "&"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindSpread:
		return "..."
	case KindColon:
		return ":"
	case KindEquals:
		return "="
	case KindAt:
		return "@"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftBrace:
		return "{"
	case KindPipe:
		return "|"
	case KindRightBrace:
		return "}"
	case KindName:
		return "Name"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBlockString:
		return "BlockString"
	case KindDot:
		return "."
	}
	return fmt.Sprintf("<unknown token kind %d>", int(kind))
}

// Description returns a human-readable noun phrase for the kind, used in error reports.
func (kind Kind) Description() string {
	switch kind {
	case KindEOF:
		return "end of file"
	case KindBang:
		return "exclamation mark ('!')"
	case KindDollar:
		return "dollar ('$')"
	case KindAmp:
		return "ampersand ('&')"
	case KindLeftParen:
		return "open parenthesis ('(')"
	case KindRightParen:
		return "closing paren (')')"
	case KindSpread:
		return "spread ('...')"
	case KindColon:
		return "colon (':')"
	case KindEquals:
		return "equals ('=')"
	case KindAt:
		return "at ('@')"
	case KindLeftBracket:
		return "open bracket ('[')"
	case KindRightBracket:
		return "closing bracket (']')"
	case KindLeftBrace:
		return "open brace ('{')"
	case KindPipe:
		return "pipe ('|')"
	case KindRightBrace:
		return "closing brace ('}')"
	case KindName:
		return "name"
	case KindInt:
		return "integer value"
	case KindFloat:
		return "floating point value"
	case KindString:
		return "string literal"
	case KindBlockString:
		return "block string"
	case KindDot:
		return "dot ('.')"
	}
	return kind.String()
}

// IsPunctuator returns true for the single-character and spread punctuators.
func (kind Kind) IsPunctuator() bool {
	return (kind >= KindBang && kind <= KindRightBrace) || kind == KindDot
}

// Token is a lexical token in a GraphQL document. Tokens carry the span they were lexed from and,
// for names, numbers and strings, the raw source text.
type Token struct {
	Kind Kind
	Span Span

	// Value is the raw text of Name, Int, Float, String and BlockString tokens. String tokens keep
	// their surrounding quotes and escape sequences.
	Value string
}

// Is returns true if the token is of the given kind.
func (token Token) Is(kind Kind) bool {
	return token.Kind == kind
}

// IsKeyword returns true if the token is a name with the given text.
func (token Token) IsKeyword(keyword string) bool {
	return token.Kind == KindName && token.Value == keyword
}

// Description returns a description of the token for use in error reports. Tokens holding a value
// mention it.
func (token Token) Description() string {
	switch token.Kind {
	case KindName, KindInt, KindFloat:
		return fmt.Sprintf("%s '%s'", token.Kind.Description(), token.Value)
	}
	return token.Kind.Description()
}

var _ fmt.Stringer = Token{}

// String implements fmt.Stringer.
func (token Token) String() string {
	if len(token.Value) > 0 {
		return fmt.Sprintf("%s %q", token.Kind, token.Value)
	}
	return token.Kind.String()
}

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
	"fmt"
	"unicode/utf8"

	"github.com/botobag/gqlparse/graphql/token"
)

// LexicalErrorKind classifies a LexicalError.
type LexicalErrorKind int

// Enumeration of LexicalErrorKind
const (
	// A character that cannot start any token.
	UnknownCharacter LexicalErrorKind = iota + 1
	// A string literal hits a line terminator or the end of input before its closing quote.
	UnterminatedString
	// A string literal contains a control character or an invalid escape sequence.
	UnsupportedStringCharacter
	// A block string reaches the end of input before its closing triple quote.
	UnterminatedBlockString
	// A number like "01" or "-00.5".
	NumberLeadingZero
	// A number immediately followed by a ".", a letter or an underscore, like "1.", "1e" or "2.3.4".
	NumberTrailingInvalid
	// A float like ".5" without its integer part.
	FloatMissingZero
)

var _ fmt.Stringer = LexicalErrorKind(0)

func (kind LexicalErrorKind) String() string {
	switch kind {
	case UnknownCharacter:
		return "unknown character"
	case UnterminatedString:
		return "unterminated string"
	case UnsupportedStringCharacter:
		return "unsupported character in string"
	case UnterminatedBlockString:
		return "unterminated block string"
	case NumberLeadingZero, NumberTrailingInvalid, FloatMissingZero:
		return "unsupported number (int or float) literal"
	}
	return fmt.Sprintf("<unknown lexical error %d>", int(kind))
}

// LexicalError is returned by the lexer when a byte sequence matches no token pattern.
type LexicalError struct {
	Kind LexicalErrorKind

	// Span of the offending text
	Span token.Span

	// The offending text
	Slice string
}

var _ error = (*LexicalError)(nil)

// Error implements Go's error interface.
func (err *LexicalError) Error() string {
	if err.Kind == UnknownCharacter {
		r, _ := utf8.DecodeRuneInString(err.Slice)
		switch {
		case r == '\'':
			return `unexpected single quote character ('), did you mean to use a double quote (")?`
		case r < 0x20 && r != '\t' && r != '\n' && r != '\r':
			return fmt.Sprintf("cannot contain the invalid character %s", describeRune(r))
		}
		return fmt.Sprintf("cannot parse the unexpected character %s", describeRune(r))
	}
	return err.Kind.String()
}

func describeRune(r rune) string {
	// Print as ASCII for printable range.
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

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

// Package lexer turns GraphQL source text into a stream of spanned tokens. Whitespace, commas,
// byte order marks and comments are skipped and never reach the parser.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/botobag/gqlparse/graphql/token"
)

// Lexer is a stateful token stream over a source text. Every call to Next returns the next token.
// Once the end of input is reached, Next keeps returning the same EOF token. A Lexer cannot be
// rewound; create a new one to lex the text again.
type Lexer struct {
	source string

	// Offset into source of the next byte to be examined
	pos int

	// Lex every "." as a KindDot token
	dots bool
}

// New initializes a Lexer for the given source text.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
	}
}

// NewSchemaCoordinate initializes a Lexer for a schema coordinate such as "Type.field(arg:)". It
// differs from New in that each "." is a KindDot token.
func NewSchemaCoordinate(source string) *Lexer {
	return &Lexer{
		source: source,
		dots:   true,
	}
}

// Source returns the text being lexed.
func (lexer *Lexer) Source() string {
	return lexer.source
}

// Offset returns the byte offset at which lexing continues.
func (lexer *Lexer) Offset() int {
	return lexer.pos
}

// Next lexes and returns the next token. On a byte sequence that matches no token pattern it
// returns a *LexicalError.
func (lexer *Lexer) Next() (token.Token, error) {
	lexer.skipTrivia()

	if lexer.pos >= len(lexer.source) {
		end := len(lexer.source)
		return token.Token{
			Kind: token.KindEOF,
			Span: token.NewSpan(end, end),
		}, nil
	}

	switch char := lexer.source[lexer.pos]; char {
	case '!':
		return lexer.lexPunctuator(token.KindBang, 1), nil
	case '$':
		return lexer.lexPunctuator(token.KindDollar, 1), nil
	case '&':
		return lexer.lexPunctuator(token.KindAmp, 1), nil
	case '(':
		return lexer.lexPunctuator(token.KindLeftParen, 1), nil
	case ')':
		return lexer.lexPunctuator(token.KindRightParen, 1), nil
	case ':':
		return lexer.lexPunctuator(token.KindColon, 1), nil
	case '=':
		return lexer.lexPunctuator(token.KindEquals, 1), nil
	case '@':
		return lexer.lexPunctuator(token.KindAt, 1), nil
	case '[':
		return lexer.lexPunctuator(token.KindLeftBracket, 1), nil
	case ']':
		return lexer.lexPunctuator(token.KindRightBracket, 1), nil
	case '{':
		return lexer.lexPunctuator(token.KindLeftBrace, 1), nil
	case '|':
		return lexer.lexPunctuator(token.KindPipe, 1), nil
	case '}':
		return lexer.lexPunctuator(token.KindRightBrace, 1), nil

	case '.':
		if lexer.dots {
			return lexer.lexPunctuator(token.KindDot, 1), nil
		}
		if strings.HasPrefix(lexer.source[lexer.pos:], "...") {
			return lexer.lexPunctuator(token.KindSpread, 3), nil
		}
		if isDigit(lexer.peekAt(1)) {
			return lexer.lexNumber()
		}
		// A lone "." or "..".
		n := 1
		if lexer.peekAt(1) == '.' {
			n = 2
		}
		return token.Token{}, lexer.newError(UnknownCharacter, lexer.pos, lexer.pos+n)

	case '"':
		if strings.HasPrefix(lexer.source[lexer.pos:], `"""`) {
			return lexer.lexBlockString()
		}
		return lexer.lexString()

	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return lexer.lexNumber()

	default:
		if isNameStart(char) {
			return lexer.lexName(), nil
		}
	}

	_, size := utf8.DecodeRuneInString(lexer.source[lexer.pos:])
	return token.Token{}, lexer.newError(UnknownCharacter, lexer.pos, lexer.pos+size)
}

// peekAt returns the byte at the given distance from the current position, or 0 past the end of
// input.
func (lexer *Lexer) peekAt(n int) byte {
	if lexer.pos+n >= len(lexer.source) {
		return 0
	}
	return lexer.source[lexer.pos+n]
}

func (lexer *Lexer) newError(kind LexicalErrorKind, start, end int) *LexicalError {
	if end > len(lexer.source) {
		end = len(lexer.source)
	}
	return &LexicalError{
		Kind:  kind,
		Span:  token.NewSpan(start, end),
		Slice: lexer.source[start:end],
	}
}

func (lexer *Lexer) makeToken(kind token.Kind, start int) token.Token {
	return token.Token{
		Kind:  kind,
		Span:  token.NewSpan(start, lexer.pos),
		Value: lexer.source[start:lexer.pos],
	}
}

func (lexer *Lexer) lexPunctuator(kind token.Kind, length int) token.Token {
	start := lexer.pos
	lexer.pos += length
	return token.Token{
		Kind: kind,
		Span: token.NewSpan(start, lexer.pos),
	}
}

// skipTrivia skips whitespace, line terminators, commas, byte order marks and comments.
//
//	Ignored ::
//		UnicodeBOM
//		WhiteSpace
//		LineTerminator
//		Comment
//		Comma
func (lexer *Lexer) skipTrivia() {
	source := lexer.source
	pos := lexer.pos

	for pos < len(source) {
		switch source[pos] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			pos++

		case '#':
			// CommentChar :: SourceCharacter but not LineTerminator
			for pos < len(source) && source[pos] != '\n' && source[pos] != '\r' {
				pos++
			}

		case '\xEF':
			// UTF-8 encoding of U+FEFF
			if strings.HasPrefix(source[pos:], "\xEF\xBB\xBF") {
				pos += 3
				continue
			}
			lexer.pos = pos
			return

		default:
			lexer.pos = pos
			return
		}
	}

	lexer.pos = pos
}

func (lexer *Lexer) consumeDigits() {
	for isDigit(lexer.peekAt(0)) {
		lexer.pos++
	}
}

// lexNumber reads an integer or a float. The grammar defines both as concatenations of fragments:
//
//	IntValue :: IntegerPart
//	FloatValue ::
//		IntegerPart FractionalPart
//		IntegerPart ExponentPart
//		IntegerPart FractionalPart ExponentPart
//	IntegerPart ::
//		NegativeSign? 0
//		NegativeSign? NonZeroDigit Digit*
//	FractionalPart :: . Digit+
//	ExponentPart :: ExponentIndicator Sign? Digit+
//
// Each fragment is recognized in turn and the concatenation is returned as one token. A number
// must not be followed by a "." or a NameStart character.
func (lexer *Lexer) lexNumber() (token.Token, error) {
	start := lexer.pos
	kind := token.KindInt

	if lexer.peekAt(0) == '-' {
		lexer.pos++
	}

	char := lexer.peekAt(0)
	if char == '.' && isDigit(lexer.peekAt(1)) {
		// FractionalPart without an IntegerPart.
		lexer.pos++
		lexer.consumeDigits()
		lexer.lexExponentPart()
		return token.Token{}, lexer.newError(FloatMissingZero, start, lexer.pos)
	}
	if !isDigit(char) {
		// A NegativeSign that isn't followed by a digit.
		return token.Token{}, lexer.newError(UnknownCharacter, start, start+1)
	}

	leadingZero := false
	lexer.pos++
	if char == '0' && isDigit(lexer.peekAt(0)) {
		leadingZero = true
	}
	if char != '0' || leadingZero {
		lexer.consumeDigits()
	}

	// FractionalPart
	if lexer.peekAt(0) == '.' && isDigit(lexer.peekAt(1)) {
		lexer.pos++
		lexer.consumeDigits()
		kind = token.KindFloat
	}

	if lexer.lexExponentPart() {
		kind = token.KindFloat
	}

	if leadingZero {
		return token.Token{}, lexer.newError(NumberLeadingZero, start, lexer.pos)
	}

	if next := lexer.peekAt(0); next == '.' || isNameStart(next) {
		return token.Token{}, lexer.newError(NumberTrailingInvalid, start, lexer.pos+1)
	}

	return lexer.makeToken(kind, start), nil
}

// lexExponentPart consumes an ExponentPart if one starts at the current position. Nothing is
// consumed if the indicator isn't followed by digits.
func (lexer *Lexer) lexExponentPart() bool {
	if char := lexer.peekAt(0); char != 'e' && char != 'E' {
		return false
	}

	n := 1
	if sign := lexer.peekAt(1); sign == '+' || sign == '-' {
		n++
	}
	if !isDigit(lexer.peekAt(n)) {
		return false
	}

	lexer.pos += n
	lexer.consumeDigits()
	return true
}

// lexString reads a string literal. The value keeps its quotes and escape sequences; decoding
// happens when the parser stores it.
//
//	StringValue ::
//		" StringCharacter* "
//
//	StringCharacter ::
//		SourceCharacter but not " or \ or LineTerminator
//		\u EscapedUnicode
//		\ EscapedCharacter
//
//	EscapedUnicode ::
//		/[0-9A-Fa-f]{4}/
//
//	EscapedCharacter :: one of
//		"	\	/	b	f	n	r	t
func (lexer *Lexer) lexString() (token.Token, error) {
	start := lexer.pos

	// Consume the opening quote.
	lexer.pos++

	for lexer.pos < len(lexer.source) {
		char := lexer.source[lexer.pos]
		switch {
		case char == '"':
			lexer.pos++
			return lexer.makeToken(token.KindString, start), nil

		case char == '\n' || char == '\r':
			return token.Token{}, lexer.newError(UnterminatedString, start, lexer.pos)

		case char == '\\':
			switch lexer.peekAt(1) {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				lexer.pos += 2
			case 'u':
				if !isHex(lexer.peekAt(2)) || !isHex(lexer.peekAt(3)) ||
					!isHex(lexer.peekAt(4)) || !isHex(lexer.peekAt(5)) {
					return token.Token{}, lexer.newError(UnsupportedStringCharacter, lexer.pos, lexer.pos+6)
				}
				lexer.pos += 6
			default:
				return token.Token{}, lexer.newError(UnsupportedStringCharacter, lexer.pos, lexer.pos+2)
			}

		case char < 0x20 && char != '\t':
			return token.Token{}, lexer.newError(UnsupportedStringCharacter, lexer.pos, lexer.pos+1)

		default:
			lexer.pos++
		}
	}

	return token.Token{}, lexer.newError(UnterminatedString, start, lexer.pos)
}

// lexBlockString reads a block string. The raw text is kept; the BlockStringValue algorithm is
// applied by readers on demand.
//
//	BlockStringCharacter ::
//		SourceCharacter but not """ or \"""
//		\"""
func (lexer *Lexer) lexBlockString() (token.Token, error) {
	start := lexer.pos

	// Consume the opening triple-quote.
	lexer.pos += 3

	for lexer.pos < len(lexer.source) {
		rest := lexer.source[lexer.pos:]
		switch {
		case strings.HasPrefix(rest, `\"""`):
			lexer.pos += 4

		case strings.HasPrefix(rest, `"""`):
			lexer.pos += 3
			return lexer.makeToken(token.KindBlockString, start), nil

		case rest[0] < 0x20 && rest[0] != '\t' && rest[0] != '\n' && rest[0] != '\r':
			return token.Token{}, lexer.newError(UnsupportedStringCharacter, lexer.pos, lexer.pos+1)

		default:
			lexer.pos++
		}
	}

	return token.Token{}, lexer.newError(UnterminatedBlockString, start, lexer.pos)
}

// lexName reads a Name token.
//
//	Name ::
//		/[_A-Za-z][_0-9A-Za-z]*/
func (lexer *Lexer) lexName() token.Token {
	start := lexer.pos
	lexer.pos++
	for {
		char := lexer.peekAt(0)
		if isNameStart(char) || isDigit(char) {
			lexer.pos++
			continue
		}
		break
	}
	return lexer.makeToken(token.KindName, start)
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

func isHex(char byte) bool {
	return isDigit(char) || (char >= 'a' && char <= 'f') || (char >= 'A' && char <= 'F')
}

func isNameStart(char byte) bool {
	return char == '_' || (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
}

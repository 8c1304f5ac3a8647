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

package lexer_test

import (
	"github.com/botobag/gqlparse/graphql/lexer"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/iterator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
	"github.com/onsi/gomega/types"
)

func lexOne(str string) (token.Token, error) {
	return lexer.New(str).Next()
}

func lexAll(str string) ([]token.Token, error) {
	var tokens []token.Token
	iter := lexer.Tokenize(str)
	for {
		tok, err := iter.Next()
		if err == iterator.Done {
			return tokens, nil
		} else if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

func MatchToken(kind token.Kind, start, end int, value string) types.GomegaMatcher {
	return MatchAllFields(Fields{
		"Kind":  Equal(kind),
		"Span":  Equal(token.NewSpan(start, end)),
		"Value": Equal(value),
	})
}

func MatchLexicalError(kind lexer.LexicalErrorKind, start, end int) types.GomegaMatcher {
	return PointTo(MatchFields(IgnoreExtras, Fields{
		"Kind": Equal(kind),
		"Span": Equal(token.NewSpan(start, end)),
	}))
}

func expectLexicalError(text string, kind lexer.LexicalErrorKind, start, end int) {
	_, err := lexOne(text)
	Expect(err).Should(BeAssignableToTypeOf(&lexer.LexicalError{}))
	Expect(err).Should(MatchLexicalError(kind, start, end))
}

var _ = Describe("Lexer", func() {
	It("disallows uncommon control characters", func() {
		_, err := lexOne("\u0007")
		Expect(err).Should(MatchError(`cannot contain the invalid character "\u0007"`))
		expectLexicalError("\u0007", lexer.UnknownCharacter, 0, 1)
	})

	It("hints about single quotes", func() {
		_, err := lexOne("'hello'")
		Expect(err).Should(MatchError(ContainSubstring("did you mean to use a double quote")))
	})

	It("reports multi-byte characters as one span", func() {
		expectLexicalError("\u203B", lexer.UnknownCharacter, 0, 3)
	})

	It("accepts BOM header", func() {
		Expect(lexOne("\uFEFF foo")).Should(MatchToken(token.KindName, 4, 7, "foo"))
	})

	It("skips whitespace, commas and comments", func() {
		Expect(lexOne("\n \r\n \r  foo\n")).Should(MatchToken(token.KindName, 8, 11, "foo"))
		Expect(lexOne("\n    #comment\n    foo#comment\n")).Should(MatchToken(token.KindName, 18, 21, "foo"))
		Expect(lexOne(",,,foo,,,")).Should(MatchToken(token.KindName, 3, 6, "foo"))
	})

	It("returns EOF repeatedly at the end of input", func() {
		l := lexer.New("  ")
		Expect(l.Next()).Should(MatchToken(token.KindEOF, 2, 2, ""))
		Expect(l.Next()).Should(MatchToken(token.KindEOF, 2, 2, ""))
		Expect(l.Offset()).Should(Equal(2))
	})

	DescribeTable("punctuation",
		func(text string, kind token.Kind) {
			Expect(lexOne(text)).Should(MatchToken(kind, 0, len(text), ""))
		},
		Entry("!", "!", token.KindBang),
		Entry("$", "$", token.KindDollar),
		Entry("&", "&", token.KindAmp),
		Entry("(", "(", token.KindLeftParen),
		Entry(")", ")", token.KindRightParen),
		Entry("...", "...", token.KindSpread),
		Entry(":", ":", token.KindColon),
		Entry("=", "=", token.KindEquals),
		Entry("@", "@", token.KindAt),
		Entry("[", "[", token.KindLeftBracket),
		Entry("]", "]", token.KindRightBracket),
		Entry("{", "{", token.KindLeftBrace),
		Entry("|", "|", token.KindPipe),
		Entry("}", "}", token.KindRightBrace),
	)

	It("rejects partial spreads", func() {
		expectLexicalError(".", lexer.UnknownCharacter, 0, 1)
		expectLexicalError("..", lexer.UnknownCharacter, 0, 2)
		expectLexicalError(".. x", lexer.UnknownCharacter, 0, 2)
	})

	DescribeTable("numbers",
		func(text string, kind token.Kind) {
			Expect(lexOne(text)).Should(MatchToken(kind, 0, len(text), text))
		},
		Entry("4", "4", token.KindInt),
		Entry("4.123", "4.123", token.KindFloat),
		Entry("-4", "-4", token.KindInt),
		Entry("9", "9", token.KindInt),
		Entry("0", "0", token.KindInt),
		Entry("-0", "-0", token.KindInt),
		Entry("-4.123", "-4.123", token.KindFloat),
		Entry("0.123", "0.123", token.KindFloat),
		Entry("123e4", "123e4", token.KindFloat),
		Entry("123E4", "123E4", token.KindFloat),
		Entry("123e-4", "123e-4", token.KindFloat),
		Entry("123e+4", "123e+4", token.KindFloat),
		Entry("-1.123e4", "-1.123e4", token.KindFloat),
		Entry("-1.123E4", "-1.123E4", token.KindFloat),
		Entry("-1.123e-4", "-1.123e-4", token.KindFloat),
		Entry("-1.123e+4", "-1.123e+4", token.KindFloat),
		Entry("-1.123e4567", "-1.123e4567", token.KindFloat),
	)

	DescribeTable("malformed numbers",
		func(text string, kind lexer.LexicalErrorKind, length int) {
			expectLexicalError(text, kind, 0, length)
		},
		Entry("00", "00", lexer.NumberLeadingZero, 2),
		Entry("01", "01", lexer.NumberLeadingZero, 2),
		Entry("-01", "-01", lexer.NumberLeadingZero, 3),
		Entry("01.23", "01.23", lexer.NumberLeadingZero, 5),
		Entry("+1", "+1", lexer.UnknownCharacter, 1),
		Entry("-A", "-A", lexer.UnknownCharacter, 1),
		Entry("1.", "1.", lexer.NumberTrailingInvalid, 2),
		Entry("1e", "1e", lexer.NumberTrailingInvalid, 2),
		Entry("1.e1", "1.e1", lexer.NumberTrailingInvalid, 2),
		Entry("1.A", "1.A", lexer.NumberTrailingInvalid, 2),
		Entry("1.0e", "1.0e", lexer.NumberTrailingInvalid, 4),
		Entry("1.0eA", "1.0eA", lexer.NumberTrailingInvalid, 4),
		Entry("1.2e3e", "1.2e3e", lexer.NumberTrailingInvalid, 6),
		Entry("1.2e3.4", "1.2e3.4", lexer.NumberTrailingInvalid, 6),
		Entry("1.23.4", "1.23.4", lexer.NumberTrailingInvalid, 5),
		Entry("1.23.{}", "1.23.{}", lexer.NumberTrailingInvalid, 5),
		Entry("1.23. foo", "1.23. foo", lexer.NumberTrailingInvalid, 5),
		Entry(".123", ".123", lexer.FloatMissingZero, 4),
		Entry("-.5e3", "-.5e3", lexer.FloatMissingZero, 5),
	)

	DescribeTable("strings",
		func(text string) {
			Expect(lexOne(text)).Should(MatchToken(token.KindString, 0, len(text), text))
		},
		Entry("empty", `""`),
		Entry("simple", `"simple"`),
		Entry("white space", `" white space "`),
		Entry("quote", `"quote \""`),
		Entry("escaped", `"escaped \n\r\b\t\f"`),
		Entry("slashes", `"slashes \\ \/"`),
		Entry("unicode", `"unicode \u1234\u5678\u90AB\uCDEF"`),
		Entry("non-ascii", "\"\u65e5\u672c\""),
	)

	DescribeTable("malformed strings",
		func(text string, kind lexer.LexicalErrorKind, start, end int) {
			expectLexicalError(text, kind, start, end)
		},
		Entry("unterminated at eof", `"`, lexer.UnterminatedString, 0, 1),
		Entry("unterminated text", `"no end quote`, lexer.UnterminatedString, 0, 13),
		Entry("line terminator", "\"multi\nline\"", lexer.UnterminatedString, 0, 6),
		Entry("carriage return", "\"multi\rline\"", lexer.UnterminatedString, 0, 6),
		Entry("control character", "\"contains \u0007 bell\"", lexer.UnsupportedStringCharacter, 10, 11),
		Entry("bad escape", `"bad \z esc"`, lexer.UnsupportedStringCharacter, 5, 7),
		Entry("bad unicode escape", `"bad \u1 esc"`, lexer.UnsupportedStringCharacter, 5, 11),
	)

	It("lexes block strings keeping the raw text", func() {
		text := "\"\"\"\n    spans\n      lines \\\"\"\" \n\"\"\""
		Expect(lexOne(text)).Should(MatchToken(token.KindBlockString, 0, len(text), text))
		Expect(lexOne(`""""""`)).Should(MatchToken(token.KindBlockString, 0, 6, `""""""`))
	})

	It("rejects unterminated block strings", func() {
		expectLexicalError(`"""no end`, lexer.UnterminatedBlockString, 0, 9)
		expectLexicalError(`"""ends \"""`, lexer.UnterminatedBlockString, 0, 12)
	})

	It("lexes names", func() {
		Expect(lexOne("_foo_Bar9 rest")).Should(MatchToken(token.KindName, 0, 9, "_foo_Bar9"))
	})

	It("lexes a whole query", func() {
		tokens, err := lexAll(`
			query EmptyQuery($id: ID!) {
				node(id: $id) {
					id @skip(if: false)
					...E1
				}
			}
		`)
		Expect(err).ShouldNot(HaveOccurred())

		var kinds []token.Kind
		var values []string
		for _, tok := range tokens {
			kinds = append(kinds, tok.Kind)
			if tok.Kind == token.KindName {
				values = append(values, tok.Value)
			}
		}

		Expect(kinds).Should(Equal([]token.Kind{
			token.KindName, token.KindName, token.KindLeftParen, token.KindDollar, token.KindName,
			token.KindColon, token.KindName, token.KindBang, token.KindRightParen, token.KindLeftBrace,
			token.KindName, token.KindLeftParen, token.KindName, token.KindColon, token.KindDollar,
			token.KindName, token.KindRightParen, token.KindLeftBrace,
			token.KindName, token.KindAt, token.KindName, token.KindLeftParen, token.KindName,
			token.KindColon, token.KindName, token.KindRightParen,
			token.KindSpread, token.KindName,
			token.KindRightBrace, token.KindRightBrace,
		}))
		Expect(values).Should(Equal([]string{
			"query", "EmptyQuery", "id", "ID", "node", "id", "id", "id", "skip", "if", "false", "E1",
		}))
	})

	It("lexes dots in schema coordinates", func() {
		l := lexer.NewSchemaCoordinate("Foo.bar(arg:) ...")
		Expect(l.Next()).Should(MatchToken(token.KindName, 0, 3, "Foo"))
		Expect(l.Next()).Should(MatchToken(token.KindDot, 3, 4, ""))
		Expect(l.Next()).Should(MatchToken(token.KindName, 4, 7, "bar"))
		Expect(l.Next()).Should(MatchToken(token.KindLeftParen, 7, 8, ""))
		Expect(l.Next()).Should(MatchToken(token.KindName, 8, 11, "arg"))
		Expect(l.Next()).Should(MatchToken(token.KindColon, 11, 12, ""))
		Expect(l.Next()).Should(MatchToken(token.KindRightParen, 12, 13, ""))
		for i := 14; i < 17; i++ {
			Expect(l.Next()).Should(MatchToken(token.KindDot, i, i+1, ""))
		}
		Expect(l.Next()).Should(MatchToken(token.KindEOF, 17, 17, ""))
	})

	It("stops iterating after an error", func() {
		iter := lexer.Tokenize("a ?")
		Expect(iter.Next()).Should(MatchToken(token.KindName, 0, 1, "a"))
		_, err := iter.Next()
		Expect(err).Should(MatchLexicalError(lexer.UnknownCharacter, 2, 3))
		_, err = iter.Next()
		Expect(err).Should(Equal(iterator.Done))
	})
})

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

package graphql_test

import (
	"encoding/json"
	"errors"

	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/lexer"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func newError(message string, args ...interface{}) *graphql.Error {
	e, ok := graphql.NewError(message, args...).(*graphql.Error)
	Expect(ok).Should(BeTrue())
	return e
}

func expectSerializationResult(e error, expected string) {
	s, err := json.Marshal(e)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(s).Should(MatchJSON(expected))
}

var _ = Describe("Error", func() {
	var source *token.Source

	BeforeEach(func() {
		source = token.NewSource("", "type Query {\n  a: Int\n  b: [\n}")
	})

	It("has a message", func() {
		e := newError("msg")
		Expect(e.Message).Should(Equal("msg"))
		Expect(e.Kind).Should(Equal(graphql.ErrKindOther))
		Expect(e.Error()).Should(Equal("msg"))
		expectSerializationResult(e, `{"message":"msg","kind":"other error","span":{"start":0,"end":0}}`)
	})

	It("computes the location from the source", func() {
		e := newError("msg", token.NewSpan(29, 30), source, graphql.ErrKindUnrecognizedToken, []string{"name"})
		Expect(e.Span).Should(Equal(token.NewSpan(29, 30)))
		Expect(e.Locations).Should(Equal([]graphql.ErrorLocation{{Line: 4, Column: 1}}))
		Expect(e.SourceName).Should(Equal(token.DefaultSourceName))
		Expect(e.Error()).Should(Equal("msg (line 4, column 1): expected name"))
		expectSerializationResult(e, `{
			"message": "msg",
			"kind": "unrecognized token",
			"locations": [{"line": 4, "column": 1}],
			"span": {"start": 29, "end": 30},
			"expected": ["name"]
		}`)
	})

	It("serializes into the documented JSON shape", func() {
		type location struct {
			Line   int `json:"line"`
			Column int `json:"column"`
		}
		type span struct {
			Start int `json:"start"`
			End   int `json:"end"`
		}
		type errorJSON struct {
			Message   string     `json:"message"`
			Kind      string     `json:"kind"`
			Locations []location `json:"locations"`
			Span      *span      `json:"span"`
			Expected  []string   `json:"expected"`
		}

		e := newError("msg", token.NewSpan(13, 15), source, graphql.ErrKindExtraToken)
		Expect(e).Should(testutil.SerializeToJSONAs(errorJSON{
			Message:   "msg",
			Kind:      "extra token",
			Locations: []location{{Line: 2, Column: 1}},
			Span:      &span{Start: 13, End: 15},
		}))

		Expect(graphql.NewEmptyExecutableDocumentError()).Should(testutil.SerializeToJSONAs(errorJSON{
			Message: "the graphql document was empty, please provide an operation",
			Kind:    "empty executable document",
		}))
	})

	It("lists at most five expected tokens", func() {
		e := newError("msg", []string{"a", "b", "c", "d", "e", "f"})
		Expect(e.Error()).Should(Equal("msg: expected a, b, c, d, or e"))
	})

	It("omits the span of empty documents", func() {
		e := graphql.NewEmptyTypeSystemDocumentError()
		expectSerializationResult(e,
			`{"message":"the graphql document was empty, please provide at least one definition","kind":"empty type system document"}`)

		e = graphql.NewEmptySchemaCoordinateError()
		expectSerializationResult(e,
			`{"message":"the schema coordinate was empty, please provide a type or a directive","kind":"empty schema coordinate"}`)
	})

	It("includes an underlying error", func() {
		lexicalErr := &lexer.LexicalError{
			Kind:  lexer.UnknownCharacter,
			Span:  token.NewSpan(13, 14),
			Slice: "?",
		}
		e := graphql.NewLexicalError(token.NewSource("", "type Query { ? }"), lexicalErr)
		Expect(e.Error()).Should(Equal(`invalid token (line 1, column 14): cannot parse the unexpected character "?"`))

		var target *lexer.LexicalError
		Expect(errors.As(e, &target)).Should(BeTrue())
		Expect(target).Should(Equal(lexicalErr))
		Expect(errors.Unwrap(e)).Should(Equal(lexicalErr))
	})

	It("pulls kind from underlying error", func() {
		inner := newError("inner", graphql.ErrKindRecursionLimit)
		e := newError("outer", inner)
		Expect(e.Kind).Should(Equal(graphql.ErrKindRecursionLimit))
		Expect(e.Error()).Should(Equal("outer: inner"))

		e = newError("outer", graphql.ErrKindLexical, inner)
		Expect(e.Kind).Should(Equal(graphql.ErrKindLexical))
	})

	It("throws error when building from unknown argument", func() {
		e := graphql.NewError("msg", 1)
		Expect(e).ShouldNot(BeNil())
		Expect(e.Error()).Should(Equal("unknown type int, value 1 in error call"))
	})

	Describe("constructors", func() {
		It("describes the offending token", func() {
			tok := token.Token{Kind: token.KindName, Span: token.NewSpan(0, 4), Value: "type"}

			e := graphql.NewUnrecognizedTokenError(source, tok, []string{"'query'"}).(*graphql.Error)
			Expect(e.Kind).Should(Equal(graphql.ErrKindUnrecognizedToken))
			Expect(e.Message).Should(Equal("unexpected name 'type'"))
			Expect(e.Token).Should(Equal("name 'type'"))
			Expect(e.Expected).Should(Equal([]string{"'query'"}))

			e = graphql.NewExtraTokenError(source, tok).(*graphql.Error)
			Expect(e.Kind).Should(Equal(graphql.ErrKindExtraToken))
			Expect(e.Message).Should(Equal("extra name 'type'"))
			Expect(e.Token).Should(Equal("name 'type'"))
		})

		It("points at positions", func() {
			e := graphql.NewUnrecognizedEOFError(source, 30, []string{"name"}).(*graphql.Error)
			Expect(e.Span).Should(Equal(token.NewSpan(30, 30)))
			Expect(e.Locations).Should(Equal([]graphql.ErrorLocation{{Line: 4, Column: 2}}))

			e = graphql.NewInvalidTokenError(source, 2).(*graphql.Error)
			Expect(e.Kind).Should(Equal(graphql.ErrKindInvalidToken))
			Expect(e.Span.IsEmpty()).Should(BeTrue())
		})

		It("records names", func() {
			e := graphql.NewMalformedDirectiveLocationError(source, token.NewSpan(0, 4), "FIELDS").(*graphql.Error)
			Expect(e.Location).Should(Equal("FIELDS"))
			Expect(e.Message).Should(ContainSubstring("unknown directive location: FIELDS. expected one of QUERY, MUTATION"))

			e = graphql.NewVariableInConstPositionError(source, token.NewSpan(0, 2), "v").(*graphql.Error)
			Expect(e.Variable).Should(Equal("v"))
			Expect(e.Message).Should(Equal("the variable $v can't be used in a const position"))
		})

		It("wraps string decoding errors", func() {
			cause := errors.New("bad escape")
			e := graphql.NewMalformedStringLiteralError(source, token.NewSpan(0, 4), cause).(*graphql.Error)
			Expect(e.Kind).Should(Equal(graphql.ErrKindMalformedStringLiteral))
			Expect(e.Message).Should(Equal("bad escape"))
			Expect(errors.Is(e, cause)).Should(BeTrue())
			Expect(e.Error()).Should(Equal("bad escape (line 1, column 1)"))
		})
	})

	It("names every kind", func() {
		for kind := graphql.ErrKindOther; kind <= graphql.ErrKindEmptySchemaCoordinate; kind++ {
			Expect(kind.String()).ShouldNot(Equal("unknown error kind"))
		}
		Expect(graphql.ErrKind(255).String()).Should(Equal("unknown error kind"))
	})
})

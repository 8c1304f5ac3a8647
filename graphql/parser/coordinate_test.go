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

package parser_test

import (
	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/coordinate"
	"github.com/botobag/gqlparse/graphql/parser"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func parseCoordinate(text string) coordinate.SchemaCoordinate {
	c, err := parser.ParseSchemaCoordinate(text)
	Expect(err).ShouldNot(HaveOccurred())
	return c
}

var _ = Describe("ParseSchemaCoordinate", func() {
	DescribeTable("parses every kind of coordinate",
		func(text string, expected coordinate.SchemaCoordinate) {
			c := parseCoordinate(text)
			Expect(c).Should(BeAssignableToTypeOf(expected))
			Expect(coordinate.Equal(c, expected)).Should(BeTrue())
		},

		Entry("type", "Foo", coordinate.NewType("Foo")),
		Entry("member", "Foo.bar", coordinate.NewMember("Foo", "bar")),
		Entry("argument", "Foo.bar(blah:)", coordinate.NewArgument("Foo", "bar", "blah")),
		Entry("directive", "@foo", coordinate.NewDirective("foo")),
		Entry("directive argument", "@foo(blah:)", coordinate.NewDirectiveArgument("foo", "blah")),
	)

	DescribeTable("prints coordinates back",
		func(text string) {
			Expect(parseCoordinate(text).String()).Should(Equal(text))
		},

		Entry("type", "Foo"),
		Entry("member", "Foo.bar"),
		Entry("argument", "Foo.bar(blah:)"),
		Entry("directive", "@foo"),
		Entry("directive argument", "@foo(blah:)"),
	)

	It("records spans", func() {
		argument := parseCoordinate("Foo.bar(blah:)").(coordinate.Argument)
		Expect(argument.Span()).Should(Equal(token.NewSpan(0, 14)))
		Expect(argument.Member.Span()).Should(Equal(token.NewSpan(0, 7)))
		Expect(argument.Member.Type.Name.Span).Should(Equal(token.NewSpan(0, 3)))
		Expect(argument.Member.Name.Span).Should(Equal(token.NewSpan(4, 7)))
		Expect(argument.Name.Span).Should(Equal(token.NewSpan(8, 12)))

		directive := parseCoordinate("@foo(blah:)").(coordinate.DirectiveArgument)
		Expect(directive.Span()).Should(Equal(token.NewSpan(0, 11)))
		Expect(directive.Directive.Span()).Should(Equal(token.NewSpan(0, 4)))
	})

	It("allows whitespace between the parts", func() {
		c := parseCoordinate(" Foo . bar ( blah : ) ")
		Expect(c.String()).Should(Equal("Foo.bar(blah:)"))
	})

	Describe("errors", func() {
		It("rejects empty input", func() {
			for _, text := range []string{"", "  ", "# nothing"} {
				_, err := parser.ParseSchemaCoordinate(text)
				Expect(err).Should(testutil.MatchGraphQLError(
					testutil.KindIs(graphql.ErrKindEmptySchemaCoordinate),
					testutil.MessageEqual("the schema coordinate was empty, please provide a type or a directive"),
				))
			}
		})

		It("expects a dot after the type name", func() {
			_, err := parser.ParseSchemaCoordinate("Foo::Bar")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindUnrecognizedToken),
				testutil.MessageEqual("unexpected colon (':')"),
				testutil.SpanEqual(3, 4),
				testutil.ExpectedContain("dot ('.')"),
			))
		})

		It("expects a member name after the dot", func() {
			_, err := parser.ParseSchemaCoordinate("Foo.")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindUnrecognizedEOF),
				testutil.SpanEqual(4, 4),
				testutil.ExpectedContain("name"),
			))
		})

		It("expects a colon after the argument name", func() {
			_, err := parser.ParseSchemaCoordinate("Foo.bar(blah)")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindUnrecognizedToken),
				testutil.SpanEqual(12, 13),
				testutil.ExpectedContain("colon (':')"),
			))
		})

		It("rejects anything after a complete coordinate", func() {
			_, err := parser.ParseSchemaCoordinate("@foo(blah:) x")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindExtraToken),
				testutil.MessageEqual("extra name 'x'"),
				testutil.SpanEqual(12, 13),
			))
		})

		It("rejects coordinates that start with something else", func() {
			_, err := parser.ParseSchemaCoordinate("{ Foo }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindUnrecognizedToken),
				testutil.SpanEqual(0, 1),
			))
			Expect(err.(*graphql.Error).Expected).Should(Equal([]string{"at ('@')", "name"}))
		})

		It("reports lexical errors", func() {
			_, err := parser.ParseSchemaCoordinate("Foo?")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindLexical),
				testutil.SpanEqual(3, 4),
			))
		})
	})
})

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
	"strings"

	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

var _ = Describe("Report", func() {
	unexpected := func(sourceName string, text string, start, end int, expected ...string) *graphql.Error {
		source := token.NewSource(sourceName, text)
		tok := token.Token{Kind: token.KindRightBrace, Span: token.NewSpan(start, end)}
		return graphql.NewUnrecognizedTokenError(source, tok, expected).(*graphql.Error)
	}

	It("labels the offending span", func() {
		e := unexpected("", "type Blah {}", 11, 12, "name")

		report := e.ToReport("type Blah {}")
		Expect(report.Message).Should(Equal("unexpected closing brace ('}')"))
		Expect(report.Label).ShouldNot(BeNil())
		Expect(report.Label.Span).Should(Equal(token.NewSpan(11, 12)))
		Expect(report.Label.Message).Should(Equal("didn't expect to see this"))
		Expect(report.Note).Should(Equal("expected one of name"))
		Expect(report.Help).Should(BeEmpty())

		Expect(report.String()).Should(Equal(lines(
			"Error: unexpected closing brace ('}')",
			"   ╭─[GraphQL request:1:12]",
			"   │",
			" 1 │ type Blah {}",
			"   │            ^ didn't expect to see this",
			"   │",
			"   │ Note: expected one of name",
			"───╯",
		)))
	})

	It("uses the source name", func() {
		e := unexpected("schema.graphql", "type Blah {}", 11, 12)
		Expect(e.ToReport("type Blah {}").String()).Should(Equal(lines(
			"Error: unexpected closing brace ('}')",
			"   ╭─[schema.graphql:1:12]",
			"   │",
			" 1 │ type Blah {}",
			"   │            ^ didn't expect to see this",
			"───╯",
		)))
	})

	It("widens the gutter for long line numbers", func() {
		text := strings.Repeat("\n", 9) + "type Blah {}"
		e := unexpected("", text, 20, 21)
		Expect(e.ToReport(text).String()).Should(Equal(lines(
			"Error: unexpected closing brace ('}')",
			"    ╭─[GraphQL request:10:12]",
			"    │",
			" 10 │ type Blah {}",
			"    │            ^ didn't expect to see this",
			"────╯",
		)))
	})

	It("aligns carets with tabs and wide characters", func() {
		e := unexpected("", "type\t{}", 5, 6)
		Expect(e.ToReport("type\t{}").String()).Should(ContainSubstring(lines(
			" 1 │ type    {}",
			"   │         ^ didn't expect to see this",
		)))

		text := `"日本" type {}`
		e = unexpected("", text, 14, 15)
		Expect(e.ToReport(text).String()).Should(ContainSubstring(lines(
			" 1 │ \"日本\" type {}",
			"   │             ^ didn't expect to see this",
		)))
	})

	It("underlines multi-character spans", func() {
		text := "directive @d on FIELDS"
		e := graphql.NewMalformedDirectiveLocationError(token.NewSource("", text), token.NewSpan(16, 22), "FIELDS").(*graphql.Error)

		report := e.ToReport(text)
		Expect(report.Help).Should(ContainSubstring("did you mean FIELD"))
		Expect(report.String()).Should(ContainSubstring("   │                 ^^^^^^ this is not a valid directive location\n"))
		Expect(report.String()).Should(ContainSubstring("   │ Help: did you mean FIELD"))
	})

	It("marks the end of input with a single caret", func() {
		text := "type Blah {"
		e := graphql.NewUnrecognizedEOFError(token.NewSource("", text), len(text), []string{"name"}).(*graphql.Error)
		Expect(e.ToReport(text).String()).Should(ContainSubstring(
			"   │            ^ expected another token here\n"))
	})

	It("renders errors without position on a single line", func() {
		e := graphql.NewEmptyExecutableDocumentError().(*graphql.Error)
		report := e.ToReport("")
		Expect(report.Label).Should(BeNil())
		Expect(report.String()).Should(Equal("Error: the graphql document was empty, please provide an operation"))
	})

	It("colors the output when asked", func() {
		e := unexpected("", "type Blah {}", 11, 12, "name")

		var colored strings.Builder
		Expect(e.ToReport("type Blah {}").Render(&colored, graphql.ReportOptions{Color: true})).Should(Succeed())
		Expect(colored.String()).Should(ContainSubstring("\x1b["))

		var plain strings.Builder
		Expect(e.ToReport("type Blah {}").Render(&plain, graphql.ReportOptions{})).Should(Succeed())
		Expect(plain.String()).ShouldNot(ContainSubstring("\x1b["))
	})
})

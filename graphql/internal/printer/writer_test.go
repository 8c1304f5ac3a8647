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

package printer_test

import (
	"github.com/botobag/gqlparse/graphql/internal/printer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer", func() {
	It("indents blocks", func() {
		var w printer.Writer
		w.WriteString("type A ")
		w.BeginBlock()
		w.NewLine()
		w.WriteString("a: Int")
		w.BlankLine()
		w.WriteString("b: Int")
		w.EndBlock()
		Expect(w.String()).Should(Equal("type A {\n  a: Int\n\n  b: Int\n}"))
	})

	DescribeTable("quoting",
		func(value string, expected string) {
			var w printer.Writer
			w.WriteQuoted(value)
			Expect(w.String()).Should(Equal(expected))
		},
		Entry("plain", "hello", `"hello"`),
		Entry("quotes and backslashes", `say "hi" \o/`, `"say \"hi\" \\o/"`),
		Entry("line terminators", "a\nb\rc\td", `"a\nb\rc\td"`),
		Entry("control characters", "\u0007", `"\u0007"`),
		Entry("html characters", "<a & b>", `"<a & b>"`),
		Entry("unicode", "été", `"été"`),
	)

	It("writes block strings verbatim", func() {
		var w printer.Writer
		w.WriteBlockString("\n  raw \\\"\"\" text\n")
		Expect(w.String()).Should(Equal("\"\"\"\n  raw \\\"\"\" text\n\"\"\""))
	})
})

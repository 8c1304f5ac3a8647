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

package util_test

import (
	"github.com/botobag/gqlparse/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Dedent", func() {
	DescribeTable("strips common indentation",
		func(input string, expected string) {
			Expect(util.Dedent(input)).Should(Equal(expected))
		},

		Entry("empty string", "", ""),

		Entry("no indentation", "type A\n", "type A\n"),

		Entry("typical raw string literal", `
    type Query {
      a: Int
    }
  `, "type Query {\n  a: Int\n}\n"),

		Entry("tabs", "\n\t\tquery {\n\t\t\ta\n\t\t}\n\t", "query {\n\ta\n}\n"),

		Entry("blank lines in between", "\n  a\n\n  b\n", "a\n\nb\n"),

		Entry("indentation of the first line only", "  a\n    b\n b", "a\n  b\n b"),

		Entry("escape sequences untouched", `
      field(arg: String = "wi\th"): String
    `, `field(arg: String = "wi\th"): String`+"\n"),
	)
})

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

package coordinate_test

import (
	"github.com/botobag/gqlparse/graphql/coordinate"
	"github.com/botobag/gqlparse/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("SchemaCoordinate", func() {
	DescribeTable("prints",
		func(c coordinate.SchemaCoordinate, expected string) {
			Expect(c.String()).Should(Equal(expected))
		},

		Entry("type", coordinate.NewType("Foo"), "Foo"),
		Entry("member", coordinate.NewMember("Foo", "bar"), "Foo.bar"),
		Entry("argument", coordinate.NewArgument("Foo", "bar", "blah"), "Foo.bar(blah:)"),
		Entry("directive", coordinate.NewDirective("foo"), "@foo"),
		Entry("directive argument", coordinate.NewDirectiveArgument("foo", "blah"), "@foo(blah:)"),
	)

	It("compares without spans", func() {
		parsed := coordinate.Member{
			Type: coordinate.Type{Name: coordinate.Name{Value: "Foo", Span: token.NewSpan(0, 3)}},
			Name: coordinate.Name{Value: "bar", Span: token.NewSpan(4, 7)},
		}
		Expect(parsed.Span()).Should(Equal(token.NewSpan(0, 7)))
		Expect(coordinate.Equal(parsed, coordinate.NewMember("Foo", "bar"))).Should(BeTrue())
		Expect(coordinate.Equal(parsed, coordinate.NewMember("Foo", "baz"))).Should(BeFalse())
		Expect(coordinate.Equal(parsed, nil)).Should(BeFalse())
		Expect(coordinate.Equal(nil, nil)).Should(BeTrue())
	})

	It("keeps a directive apart from a type of the same name", func() {
		Expect(coordinate.Equal(coordinate.NewType("foo"), coordinate.NewDirective("foo"))).Should(BeFalse())
	})
})

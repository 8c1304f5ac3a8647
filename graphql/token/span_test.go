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

package token_test

import (
	"github.com/botobag/gqlparse/graphql/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Span", func() {
	It("never reports overlap for zero-length spans", func() {
		Expect(token.NewSpan(0, 0).Overlaps(token.NewSpan(0, 0))).Should(BeFalse())
		Expect(token.NewSpan(0, 0).Overlaps(token.NewSpan(10, 10))).Should(BeFalse())
		Expect(token.NewSpan(5, 5).Overlaps(token.NewSpan(0, 10))).Should(BeFalse())
	})

	It("never reports overlap for inverted spans", func() {
		Expect(token.NewSpan(8, 2).Overlaps(token.NewSpan(0, 10))).Should(BeFalse())
		Expect(token.NewSpan(0, 10).Overlaps(token.NewSpan(8, 2))).Should(BeFalse())
	})

	DescribeTable("overlap",
		func(a, b token.Span, expected bool) {
			Expect(a.Overlaps(b)).Should(Equal(expected))
			Expect(b.Overlaps(a)).Should(Equal(expected), "overlap must be symmetric")
		},
		Entry("identical", token.NewSpan(1, 4), token.NewSpan(1, 4), true),
		Entry("nested", token.NewSpan(0, 10), token.NewSpan(3, 4), true),
		Entry("partial", token.NewSpan(0, 5), token.NewSpan(4, 8), true),
		Entry("adjacent", token.NewSpan(0, 5), token.NewSpan(5, 8), false),
		Entry("disjoint", token.NewSpan(0, 2), token.NewSpan(6, 8), false),
		Entry("empty inside", token.NewSpan(0, 10), token.NewSpan(4, 4), false),
	)

	It("is symmetric for every pair of small spans", func() {
		for a0 := 0; a0 < 5; a0++ {
			for a1 := 0; a1 < 5; a1++ {
				for b0 := 0; b0 < 5; b0++ {
					for b1 := 0; b1 < 5; b1++ {
						a, b := token.NewSpan(a0, a1), token.NewSpan(b0, b1)
						Expect(a.Overlaps(b)).Should(Equal(b.Overlaps(a)), "%s vs %s", a, b)
					}
				}
			}
		}
	})

	It("computes length and emptiness", func() {
		Expect(token.NewSpan(3, 7).Len()).Should(Equal(4))
		Expect(token.NewSpan(7, 3).Len()).Should(Equal(0))
		Expect(token.NewSpan(3, 3).IsEmpty()).Should(BeTrue())
		Expect(token.NewSpan(3, 4).IsEmpty()).Should(BeFalse())
	})

	It("merges spans", func() {
		Expect(token.NewSpan(3, 7).Merge(token.NewSpan(1, 4))).Should(Equal(token.NewSpan(1, 7)))
		Expect(token.NewSpan(3, 7).Merge(token.NewSpan(8, 9))).Should(Equal(token.NewSpan(3, 9)))
	})

	It("tests containment of offsets", func() {
		span := token.NewSpan(2, 4)
		Expect(span.Contains(1)).Should(BeFalse())
		Expect(span.Contains(2)).Should(BeTrue())
		Expect(span.Contains(3)).Should(BeTrue())
		Expect(span.Contains(4)).Should(BeFalse())
	})

	It("prints as a range", func() {
		Expect(token.NewSpan(2, 4).String()).Should(Equal("2..4"))
	})
})

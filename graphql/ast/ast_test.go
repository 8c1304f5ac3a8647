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

package ast_test

import (
	"slices"

	"github.com/botobag/gqlparse/graphql/ast"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("OperationType", func() {
	It("looks up keywords", func() {
		operationType, ok := ast.LookupOperationType("query")
		Expect(ok).Should(BeTrue())
		Expect(operationType).Should(Equal(ast.OperationTypeQuery))

		operationType, ok = ast.LookupOperationType("subscription")
		Expect(ok).Should(BeTrue())
		Expect(operationType).Should(Equal(ast.OperationTypeSubscription))

		_, ok = ast.LookupOperationType("fragment")
		Expect(ok).Should(BeFalse())
	})
})

var _ = Describe("DirectiveLocation", func() {
	It("has a closed set of locations", func() {
		Expect(ast.DirectiveLocations()).Should(HaveLen(19))
		Expect(ast.DirectiveLocationNames()[0]).Should(Equal("QUERY"))
		Expect(ast.DirectiveLocationNames()[18]).Should(Equal("VARIABLE_DEFINITION"))

		location, ok := ast.LookupDirectiveLocation("INPUT_FIELD_DEFINITION")
		Expect(ok).Should(BeTrue())
		Expect(location).Should(Equal(ast.DirectiveLocationInputFieldDefinition))

		_, ok = ast.LookupDirectiveLocation("BLAH")
		Expect(ok).Should(BeFalse())
		_, ok = ast.LookupDirectiveLocation("query")
		Expect(ok).Should(BeFalse())
	})

	It("tells executable locations apart", func() {
		Expect(ast.DirectiveLocationField.IsExecutable()).Should(BeTrue())
		Expect(ast.DirectiveLocationVariableDefinition.IsExecutable()).Should(BeTrue())
		Expect(ast.DirectiveLocationFieldDefinition.IsExecutable()).Should(BeFalse())
	})

	It("returns a copy of the locations", func() {
		locations := ast.DirectiveLocations()
		locations[0] = ast.DirectiveLocationEnum
		Expect(ast.DirectiveLocations()[0]).Should(Equal(ast.DirectiveLocationQuery))
	})
})

var _ = Describe("TypeWrappers", func() {
	nonNull, list := ast.WrappingTypeNonNull, ast.WrappingTypeList

	DescribeTable("formatting",
		func(wrappers []ast.WrappingType, expected string, isList bool, isNonNull bool) {
			w := ast.NewTypeWrappers(wrappers...)
			Expect(w.Len()).Should(Equal(len(wrappers)))
			Expect(w.Format("Int")).Should(Equal(expected))
			Expect(w.IsList()).Should(Equal(isList))
			Expect(w.IsNonNull()).Should(Equal(isNonNull))
			Expect(slices.Collect(w.All())).Should(Equal(wrappers))
		},
		Entry("named", []ast.WrappingType(nil), "Int", false, false),
		Entry("non-null", []ast.WrappingType{nonNull}, "Int!", false, true),
		Entry("list", []ast.WrappingType{list}, "[Int]", true, false),
		Entry("non-null list", []ast.WrappingType{nonNull, list}, "[Int]!", true, true),
		Entry("nested", []ast.WrappingType{nonNull, list, list, nonNull}, "[[Int!]]!", true, true),
	)

	It("wraps from the inside out", func() {
		w := ast.TypeWrappers{}
		w, _ = w.Wrap(nonNull)
		w, _ = w.Wrap(list)
		Expect(w.Format("String")).Should(Equal("[String!]"))
		Expect(w.At(0)).Should(Equal(list))
		Expect(w.At(1)).Should(Equal(nonNull))
	})

	It("has a limit", func() {
		w := ast.TypeWrappers{}
		for i := 0; i < ast.MaxTypeWrappers; i++ {
			var ok bool
			w, ok = w.Wrap(list)
			Expect(ok).Should(BeTrue())
		}
		_, ok := w.Wrap(list)
		Expect(ok).Should(BeFalse())
	})
})

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

package executable_test

import (
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/executable"
	"github.com/botobag/gqlparse/graphql/parser"
	"github.com/botobag/gqlparse/graphql/values"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Writer", func() {
	// query Q($n: Int = 3) { a { b } ...F }
	// fragment F on T { c }
	build := func() *executable.Document {
		w := executable.NewWriter()

		b := w.FieldSelection(executable.FieldSelectionRecord{Name: w.Intern("b")})
		a := w.FieldSelection(executable.FieldSelectionRecord{
			Name:         w.Intern("a"),
			SelectionSet: w.Selections([]executable.SelectionRecord{b}),
		})
		spread := w.FragmentSpread(executable.FragmentSpreadRecord{FragmentName: w.Intern("F")})
		selections := w.Selections([]executable.SelectionRecord{a, spread})

		three := w.Values().AppendConstValue(values.ValueRecord{Kind: values.KindInt, Text: w.Intern("3")})
		variables := w.VariableDefinitions([]executable.VariableDefinitionRecord{
			{
				Name:         w.Intern("n"),
				Type:         w.Type(executable.TypeRecord{Name: w.Intern("Int")}),
				DefaultValue: three,
			},
		})

		w.OperationDefinition(executable.OperationDefinitionRecord{
			OperationType:       ast.OperationTypeQuery,
			Name:                w.Intern("Q"),
			VariableDefinitions: variables,
			SelectionSet:        selections,
		})

		c := w.FieldSelection(executable.FieldSelectionRecord{Name: w.Intern("c")})
		w.FragmentDefinition(executable.FragmentDefinitionRecord{
			Name:          w.Intern("F"),
			TypeCondition: w.Intern("T"),
			SelectionSet:  w.Selections([]executable.SelectionRecord{c}),
		})
		Expect(w.NumDefinitions()).Should(Equal(2))

		return w.Finish()
	}

	It("builds documents bottom-up", func() {
		doc := build()
		Expect(doc.NumOperations()).Should(Equal(1))
		Expect(doc.NumFragments()).Should(Equal(1))
		Expect(doc.String()).Should(Equal("query Q($n: Int = 3) {\n  a {\n    b\n  }\n  ...F\n}\n\nfragment F on T {\n  c\n}\n"))
	})

	It("resolves fragment spreads", func() {
		doc := build()

		operation, ok := doc.Operation("")
		Expect(ok).Should(BeTrue())
		Expect(operation.Name()).Should(Equal("Q"))

		spread := operation.SelectionSet().At(1).(executable.FragmentSpread)
		fragment, ok := spread.Fragment()
		Expect(ok).Should(BeTrue())
		Expect(fragment.TypeCondition()).Should(Equal("T"))
	})
})

var _ = Describe("Document", func() {
	It("reads definitions by ID", func() {
		doc, err := parser.ParseExecutableDocument("fragment F on T { a } query { ...F }")
		Expect(err).ShouldNot(HaveOccurred())

		var kinds []string
		for id := range doc.Definitions().IDs().All() {
			switch doc.ReadDefinition(id).(type) {
			case executable.OperationDefinition:
				kinds = append(kinds, executable.DefinitionKindOperation.String())
			case executable.FragmentDefinition:
				kinds = append(kinds, executable.DefinitionKindFragment.String())
			}
		}
		Expect(kinds).Should(Equal([]string{"fragment", "operation"}))
	})

	It("doesn't use the shorthand form next to other definitions", func() {
		doc, err := parser.ParseExecutableDocument("{ a } fragment F on T { b }")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(doc.String()).Should(Equal("query {\n  a\n}\n\nfragment F on T {\n  b\n}\n"))
	})

	It("stores sibling selections contiguously", func() {
		doc, err := parser.ParseExecutableDocument("{ a { x y } b { z } }")
		Expect(err).ShouldNot(HaveOccurred())

		operation, _ := doc.Operation("")
		a := operation.SelectionSet().At(0).(executable.FieldSelection)
		b := operation.SelectionSet().At(1).(executable.FieldSelection)

		aChildren := a.SelectionSet().IDs()
		bChildren := b.SelectionSet().IDs()
		Expect(aChildren.Len()).Should(Equal(2))
		Expect(bChildren.Len()).Should(Equal(1))
		Expect(aChildren.Overlaps(bChildren)).Should(BeFalse())
		Expect(aChildren.Overlaps(operation.SelectionSet().IDs())).Should(BeFalse())

		// Nested selection sets are stored before the selection set holding them.
		Expect(aChildren.End()).Should(BeNumerically("<=", bChildren.Start()))
		Expect(bChildren.End()).Should(BeNumerically("<=", operation.SelectionSet().IDs().Start()))
	})

	It("reads type references of variables", func() {
		doc, err := parser.ParseExecutableDocument("query ($ids: [ID!]!) { a }")
		Expect(err).ShouldNot(HaveOccurred())

		operation, _ := doc.Operation("")
		t := operation.VariableDefinitions().At(0).Type()
		Expect(t.Name()).Should(Equal("ID"))
		Expect(t.IsList()).Should(BeTrue())
		Expect(t.IsNonNull()).Should(BeTrue())
		Expect(t.String()).Should(Equal("[ID!]!"))
		Expect(t.Wrappers().Len()).Should(Equal(3))
	})

	It("returns nothing for unknown names", func() {
		doc, err := parser.ParseExecutableDocument("{ a }")
		Expect(err).ShouldNot(HaveOccurred())

		_, ok := doc.Fragment("Missing")
		Expect(ok).Should(BeFalse())
		_, ok = doc.Operation("Missing")
		Expect(ok).Should(BeFalse())

		operation, _ := doc.Operation("")
		field := operation.SelectionSet().At(0).(executable.FieldSelection)
		_, ok = field.Argument("x")
		Expect(ok).Should(BeFalse())
		Expect(field.Arguments().IsEmpty()).Should(BeTrue())
	})
})

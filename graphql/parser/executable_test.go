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
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/executable"
	"github.com/botobag/gqlparse/graphql/parser"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
	"github.com/botobag/gqlparse/internal/testutil"
	"github.com/botobag/gqlparse/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func parseQuery(text string) *executable.Document {
	doc, err := parser.ParseExecutableDocument(text)
	Expect(err).ShouldNot(HaveOccurred())
	return doc
}

var _ = Describe("ParseExecutableDocument", func() {
	It("parses the query shorthand", func() {
		doc := parseQuery("{ a }")
		Expect(doc.NumDefinitions()).Should(Equal(1))
		Expect(doc.NumOperations()).Should(Equal(1))
		Expect(doc.String()).Should(Equal("{\n  a\n}\n"))

		operation, ok := doc.Operation("")
		Expect(ok).Should(BeTrue())
		Expect(operation.IsAnonymous()).Should(BeTrue())
		Expect(operation.Name()).Should(BeEmpty())
		Expect(operation.OperationType()).Should(Equal(ast.OperationTypeQuery))
		Expect(operation.Span()).Should(Equal(token.NewSpan(0, 5)))
	})

	It("parses operations", func() {
		doc := parseQuery(`
			query Hero($episode: Episode = JEDI, $withFriends: Boolean!) @live {
			  leader: hero(episode: $episode) {
			    name
			    friends @include(if: $withFriends) {
			      ...FriendFields
			    }
			    ... on Droid {
			      primaryFunction
			    }
			  }
			}
		`)

		operation, ok := doc.Operation("Hero")
		Expect(ok).Should(BeTrue())
		Expect(operation.Name()).Should(Equal("Hero"))

		_, ok = doc.Operation("Villain")
		Expect(ok).Should(BeFalse())

		variables := operation.VariableDefinitions()
		Expect(variables.Len()).Should(Equal(2))

		episode, ok := operation.VariableDefinition("episode")
		Expect(ok).Should(BeTrue())
		Expect(episode.Type().String()).Should(Equal("Episode"))
		defaultValue, ok := episode.DefaultValue()
		Expect(ok).Should(BeTrue())
		Expect(defaultValue.Kind()).Should(Equal(values.KindEnum))
		Expect(defaultValue.(values.EnumValue).Name()).Should(Equal("JEDI"))

		withFriends := variables.At(1)
		Expect(withFriends.Name()).Should(Equal("withFriends"))
		Expect(withFriends.Type().IsNonNull()).Should(BeTrue())
		_, ok = withFriends.DefaultValue()
		Expect(ok).Should(BeFalse())

		Expect(operation.Directives().At(0).Name()).Should(Equal("live"))

		selections := operation.SelectionSet()
		Expect(selections.Len()).Should(Equal(1))

		hero, ok := selections.At(0).(executable.FieldSelection)
		Expect(ok).Should(BeTrue())
		Expect(hero.Name()).Should(Equal("hero"))
		alias, ok := hero.Alias()
		Expect(ok).Should(BeTrue())
		Expect(alias).Should(Equal("leader"))
		Expect(hero.ResponseKey()).Should(Equal("leader"))

		argument, ok := hero.Argument("episode")
		Expect(ok).Should(BeTrue())
		Expect(argument.(values.VariableValue).Name()).Should(Equal("episode"))

		heroSelections := hero.SelectionSet()
		Expect(heroSelections.Len()).Should(Equal(3))

		name := heroSelections.At(0).(executable.FieldSelection)
		_, ok = name.Alias()
		Expect(ok).Should(BeFalse())
		Expect(name.ResponseKey()).Should(Equal("name"))
		Expect(name.SelectionSet().IsEmpty()).Should(BeTrue())

		friends := heroSelections.At(1).(executable.FieldSelection)
		spread, ok := friends.SelectionSet().At(0).(executable.FragmentSpread)
		Expect(ok).Should(BeTrue())
		Expect(spread.FragmentName()).Should(Equal("FriendFields"))
		_, ok = spread.Fragment()
		Expect(ok).Should(BeFalse())

		inline, ok := heroSelections.At(2).(executable.InlineFragment)
		Expect(ok).Should(BeTrue())
		typeCondition, ok := inline.TypeCondition()
		Expect(ok).Should(BeTrue())
		Expect(typeCondition).Should(Equal("Droid"))
	})

	It("parses fragments", func() {
		doc := parseQuery(`
			{ ...F }
			fragment F on User @d { id }
		`)
		Expect(doc.NumOperations()).Should(Equal(1))
		Expect(doc.NumFragments()).Should(Equal(1))

		fragment, ok := doc.Fragment("F")
		Expect(ok).Should(BeTrue())
		Expect(fragment.TypeCondition()).Should(Equal("User"))
		Expect(fragment.Directives().At(0).Name()).Should(Equal("d"))

		operation, _ := doc.Operation("")
		spread := operation.SelectionSet().At(0).(executable.FragmentSpread)
		target, ok := spread.Fragment()
		Expect(ok).Should(BeTrue())
		Expect(target.Name()).Should(Equal("F"))
	})

	It("parses inline fragments without type condition", func() {
		doc := parseQuery("query { ... @include(if: true) { a } }")

		operation, _ := doc.Operation("")
		inline, ok := operation.SelectionSet().At(0).(executable.InlineFragment)
		Expect(ok).Should(BeTrue())
		_, ok = inline.TypeCondition()
		Expect(ok).Should(BeFalse())
		Expect(inline.Directives().Len()).Should(Equal(1))

		// The query keyword doesn't survive printing.
		Expect(doc.String()).Should(Equal("{\n  ... @include(if: true) {\n    a\n  }\n}\n"))
	})

	It("selects the operation by name", func() {
		doc := parseQuery("query A { a } query B { b }")
		_, ok := doc.Operation("")
		Expect(ok).Should(BeFalse())

		b, ok := doc.Operation("B")
		Expect(ok).Should(BeTrue())
		Expect(b.SelectionSet().At(0).(executable.FieldSelection).Name()).Should(Equal("b"))

		var names []string
		for operation := range doc.Operations() {
			names = append(names, operation.Name())
		}
		Expect(names).Should(Equal([]string{"A", "B"}))
	})

	It("lists variables in order of use", func() {
		doc := parseQuery(`
			query Q($a: Int, $b: Int, $c: Boolean) {
			  f(x: $a, y: [$b, {z: $a}]) @skip(if: $c) {
			    g(h: $b)
			  }
			}
		`)

		operation, _ := doc.Operation("Q")
		var used []string
		for variable := range operation.VariablesUsed() {
			used = append(used, variable.Name())
		}
		Expect(used).Should(Equal([]string{"a", "b", "a", "c", "b"}))
	})

	It("records spans of variables", func() {
		doc := parseQuery("query ($a: Int = 1) { a }")
		operation, _ := doc.Operation("")
		variable := operation.VariableDefinitions().At(0)
		Expect(variable.NameSpan()).Should(Equal(token.NewSpan(7, 9)))
		Expect(variable.Span()).Should(Equal(token.NewSpan(7, 18)))
		Expect(variable.Type().Span()).Should(Equal(token.NewSpan(11, 14)))
	})

	DescribeTable("prints parsed documents back",
		func(query string) {
			query = util.Dedent(query)
			doc := parseQuery(query)
			Expect(doc.String()).Should(Equal(query))
			Expect(parseQuery(doc.String()).String()).Should(Equal(query))
		},

		Entry("shorthand", `
			{
			  a
			  b(x: 1)
			}
		`),

		Entry("anonymous mutation", `
			mutation {
			  like(id: "1") {
			    count
			  }
			}
		`),

		Entry("named query", `
			query Q($id: ID! = "4", $list: [Int!] = [1, 2]) @cached(ttl: 60) {
			  user(id: $id) {
			    first: name @upper
			    ...UserFields @defer
			    ... on Admin {
			      level
			    }
			    ... {
			      extra
			    }
			  }
			}
		`),

		Entry("fragments", `
			{
			  ...F
			}

			fragment F on T @d(filter: { a: [true, null], b: ENUM, c: 1.5 }) {
			  f
			}
		`),

		Entry("subscription with variable directives", `
			subscription S($v: Int @deprecated) {
			  s(v: $v)
			}
		`),
	)

	It("uses the shorthand when the only operation sits next to fragments", func() {
		doc := parseQuery("{ ...F }\nfragment F on T { f }")
		Expect(doc.NumOperations()).Should(Equal(1))
		Expect(doc.String()).Should(Equal("{\n  ...F\n}\n\nfragment F on T {\n  f\n}\n"))
		Expect(doc.Pretty().Sorted().String()).Should(Equal(doc.String()))

		doc = parseQuery("query { a } query B { b }")
		Expect(doc.String()).Should(Equal("query {\n  a\n}\n\nquery B {\n  b\n}\n"))
	})

	It("prints sorted documents", func() {
		doc := parseQuery(`
			fragment B on T { b }
			query Z($y: Int, $x: Int) { z(b: 1, a: 2) { d c } }
			fragment A on T { a }
			query Y { y }
		`)

		Expect(doc.Pretty().Sorted().String()).Should(Equal(util.Dedent(`
			query Y {
			  y
			}

			query Z($x: Int, $y: Int) {
			  z(a: 2, b: 1) {
			    d
			    c
			  }
			}

			fragment A on T {
			  a
			}

			fragment B on T {
			  b
			}
		`)))
	})

	Describe("errors", func() {
		It("rejects empty documents", func() {
			_, err := parser.ParseExecutableDocument(" \n ")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindEmptyExecutableDocument),
				testutil.MessageEqual("the graphql document was empty, please provide an operation"),
			))
		})

		It("rejects empty selection sets", func() {
			_, err := parser.ParseExecutableDocument("{ }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindUnrecognizedToken),
				testutil.SpanEqual(2, 3),
				testutil.ExpectedContain("name"),
			))
		})

		It("rejects extra closing braces", func() {
			_, err := parser.ParseExecutableDocument("{ a } }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindExtraToken),
				testutil.SpanEqual(6, 7),
			))
		})

		It("rejects type system definitions", func() {
			_, err := parser.ParseExecutableDocument("type Q { a: Int }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindUnrecognizedToken),
				testutil.ExpectedContain("'query'"),
				testutil.ExpectedContain("'fragment'"),
			))
		})

		It("rejects variables in default values", func() {
			_, err := parser.ParseExecutableDocument("query ($a: Int = $b) { a }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindVariableInConstPosition),
				testutil.SpanEqual(17, 19),
			))
			Expect(err.(*graphql.Error).Variable).Should(Equal("b"))
		})

		It("rejects fragments named on", func() {
			_, err := parser.ParseExecutableDocument("fragment on on T { a }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindUnrecognizedToken),
				testutil.SpanEqual(9, 11),
				testutil.ExpectedContain("fragment name"),
			))
		})

		It("rejects union and interface punctuators", func() {
			_, err := parser.ParseExecutableDocument("{ a | b }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindInvalidToken),
				testutil.SpanEqual(4, 4),
			))
		})

		It("limits the nesting of selection sets", func() {
			_, err := parser.ParseExecutableDocument("{ a { b { c } } }", parser.WithMaxDepth(2))
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindRecursionLimit),
				testutil.MessageEqual("the selection set is nested too deeply"),
			))

			_, err = parser.ParseExecutableDocument("{ a { b } }", parser.WithMaxDepth(2))
			Expect(err).ShouldNot(HaveOccurred())
		})

		It("reports lexical errors", func() {
			_, err := parser.ParseExecutableDocument("{ a ? }")
			Expect(err).Should(testutil.MatchGraphQLError(
				testutil.KindIs(graphql.ErrKindLexical),
				testutil.SpanEqual(4, 5),
			))
		})
	})
})

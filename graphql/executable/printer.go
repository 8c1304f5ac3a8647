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

package executable

import (
	"cmp"
	"slices"

	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/internal/printer"
	"github.com/botobag/gqlparse/graphql/values"
)

// PrettyPrinter prints a Document as GraphQL text.
type PrettyPrinter struct {
	doc    *Document
	sorted bool
}

// Pretty returns a printer for the document. Without options it prints the same text as String.
func (doc *Document) Pretty() PrettyPrinter {
	return PrettyPrinter{doc: doc}
}

// Sorted makes the printer order operations before fragments, definitions by name, and variables
// and arguments by name. Selections keep their order since it determines the order of fields in a
// response.
func (p PrettyPrinter) Sorted() PrettyPrinter {
	p.sorted = true
	return p
}

// String returns the printed document.
func (p PrettyPrinter) String() string {
	s := documentPrinter{sorted: p.sorted}
	s.document(p.doc)
	return s.w.String()
}

// String prints the document. Definitions are separated by a blank line and the output ends with
// a newline. When the document has exactly one operation and it is an anonymous query without
// variables and directives, that operation prints in the query shorthand form. Fragments don't
// count.
func (doc *Document) String() string {
	return doc.Pretty().String()
}

type documentPrinter struct {
	w      printer.Writer
	sorted bool
}

func (p *documentPrinter) document(doc *Document) {
	definitions := doc.Definitions().Collect()
	if p.sorted {
		slices.SortStableFunc(definitions, func(a, b Definition) int {
			aKind, aName := definitionSortKey(a)
			bKind, bName := definitionSortKey(b)
			if c := cmp.Compare(aKind, bKind); c != 0 {
				return c
			}
			return cmp.Compare(aName, bName)
		})
	}

	shorthand := doc.NumOperations() == 1
	for i, definition := range definitions {
		if i > 0 {
			p.w.BlankLine()
		}
		switch definition := definition.(type) {
		case OperationDefinition:
			p.operation(definition, shorthand)
		case FragmentDefinition:
			p.fragment(definition)
		}
	}

	if len(definitions) > 0 {
		p.w.WriteString("\n")
	}
}

func definitionSortKey(definition Definition) (DefinitionKind, string) {
	switch definition := definition.(type) {
	case OperationDefinition:
		return DefinitionKindOperation, definition.Name()
	case FragmentDefinition:
		return DefinitionKindFragment, definition.Name()
	}
	return 0, ""
}

func (p *documentPrinter) operation(operation OperationDefinition, shorthandAllowed bool) {
	variables := operation.VariableDefinitions().Collect()
	directives := operation.Directives()

	if shorthandAllowed && operation.OperationType() == ast.OperationTypeQuery &&
		operation.IsAnonymous() && len(variables) == 0 && directives.IsEmpty() {
		p.selectionSet(operation.SelectionSet())
		return
	}

	p.w.WriteString(operation.OperationType().String())
	if !operation.IsAnonymous() {
		p.w.WriteString(" ")
		p.w.WriteString(operation.Name())
	}

	if len(variables) > 0 {
		sortByName(p.sorted, variables, VariableDefinition.Name)
		p.w.WriteString("(")
		for i, variable := range variables {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.variableDefinition(variable)
		}
		p.w.WriteString(")")
	}

	p.directives(directives)
	p.w.WriteString(" ")
	p.selectionSet(operation.SelectionSet())
}

func (p *documentPrinter) variableDefinition(variable VariableDefinition) {
	p.w.WriteString("$")
	p.w.WriteString(variable.Name())
	p.w.WriteString(": ")
	p.w.WriteString(variable.Type().String())
	if defaultValue, ok := variable.DefaultValue(); ok {
		p.w.WriteString(" = ")
		values.Write(&p.w, defaultValue)
	}
	p.directives(variable.Directives())
}

func (p *documentPrinter) fragment(fragment FragmentDefinition) {
	p.w.WriteString("fragment ")
	p.w.WriteString(fragment.Name())
	p.w.WriteString(" on ")
	p.w.WriteString(fragment.TypeCondition())
	p.directives(fragment.Directives())
	p.w.WriteString(" ")
	p.selectionSet(fragment.SelectionSet())
}

func (p *documentPrinter) selectionSet(selections arena.Iter[SelectionID, Selection]) {
	p.w.BeginBlock()
	for selection := range selections.All() {
		p.w.NewLine()
		switch selection := selection.(type) {
		case FieldSelection:
			p.field(selection)

		case InlineFragment:
			p.w.WriteString("...")
			if typeCondition, ok := selection.TypeCondition(); ok {
				p.w.WriteString(" on ")
				p.w.WriteString(typeCondition)
			}
			p.directives(selection.Directives())
			p.w.WriteString(" ")
			p.selectionSet(selection.SelectionSet())

		case FragmentSpread:
			p.w.WriteString("...")
			p.w.WriteString(selection.FragmentName())
			p.directives(selection.Directives())
		}
	}
	p.w.EndBlock()
}

func (p *documentPrinter) field(field FieldSelection) {
	if alias, ok := field.Alias(); ok {
		p.w.WriteString(alias)
		p.w.WriteString(": ")
	}
	p.w.WriteString(field.Name())
	p.arguments(field.Arguments())
	p.directives(field.Directives())

	if selections := field.SelectionSet(); !selections.IsEmpty() {
		p.w.WriteString(" ")
		p.selectionSet(selections)
	}
}

func (p *documentPrinter) arguments(iter arena.Iter[ArgumentID, Argument]) {
	arguments := iter.Collect()
	if len(arguments) == 0 {
		return
	}
	sortByName(p.sorted, arguments, Argument.Name)

	p.w.WriteString("(")
	for i, argument := range arguments {
		if i > 0 {
			p.w.WriteString(", ")
		}
		p.w.WriteString(argument.Name())
		p.w.WriteString(": ")
		values.Write(&p.w, argument.Value())
	}
	p.w.WriteString(")")
}

func (p *documentPrinter) directives(directives arena.Iter[DirectiveID, Directive]) {
	for directive := range directives.All() {
		p.w.WriteString(" @")
		p.w.WriteString(directive.Name())
		p.arguments(directive.Arguments())
	}
}

func sortByName[T any](sorted bool, items []T, name func(T) string) {
	if sorted {
		slices.SortStableFunc(items, func(a, b T) int {
			return cmp.Compare(name(a), name(b))
		})
	}
}

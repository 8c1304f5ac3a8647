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
	"iter"

	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
)

// readContext pairs an ID with the document it belongs to. Every reader embeds one.
type readContext[I arena.ID] struct {
	doc *Document
	id  I
}

// ID returns the ID of the record being read.
func (ctx readContext[I]) ID() I {
	return ctx.id
}

// Document returns the document the record belongs to.
func (ctx readContext[I]) Document() *Document {
	return ctx.doc
}

// Definition is a top-level definition: either an OperationDefinition or a FragmentDefinition.
type Definition interface {
	Span() token.Span
	Directives() arena.Iter[DirectiveID, Directive]
	SelectionSet() arena.Iter[SelectionID, Selection]

	isDefinition()
}

var (
	_ Definition = OperationDefinition{}
	_ Definition = FragmentDefinition{}
)

// OperationDefinition reads a query, a mutation or a subscription.
type OperationDefinition struct {
	readContext[OperationDefinitionID]
}

// Read returns the reader for the operation.
func (id OperationDefinitionID) Read(doc *Document) OperationDefinition {
	return OperationDefinition{readContext[OperationDefinitionID]{doc, id}}
}

func (OperationDefinition) isDefinition() {}

func (operation OperationDefinition) record() *OperationDefinitionRecord {
	return operation.doc.operations.Lookup(operation.id)
}

// OperationType returns the kind of the operation. A query written in the shorthand form is a
// query.
func (operation OperationDefinition) OperationType() ast.OperationType {
	return operation.record().OperationType
}

// IsAnonymous returns true if the operation has no name.
func (operation OperationDefinition) IsAnonymous() bool {
	return operation.record().Name == 0
}

// Name returns the name of the operation, or an empty string for an anonymous operation.
func (operation OperationDefinition) Name() string {
	name := operation.record().Name
	if name == 0 {
		return ""
	}
	return operation.doc.lookupString(name)
}

// NameSpan returns the location of the name. It is empty for an anonymous operation.
func (operation OperationDefinition) NameSpan() token.Span {
	return operation.record().NameSpan
}

// Span returns the location of the operation.
func (operation OperationDefinition) Span() token.Span {
	return operation.record().Span
}

// VariableDefinitions returns the variables in source order.
func (operation OperationDefinition) VariableDefinitions() arena.Iter[VariableDefinitionID, VariableDefinition] {
	return arena.NewIter(operation.record().VariableDefinitions, operation.doc.ReadVariableDefinition)
}

// VariableDefinition returns the variable with the given name (without "$").
func (operation OperationDefinition) VariableDefinition(name string) (VariableDefinition, bool) {
	for variable := range operation.VariableDefinitions().All() {
		if variable.Name() == name {
			return variable, true
		}
	}
	return VariableDefinition{}, false
}

// Directives returns the directives applied to the operation.
func (operation OperationDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return operation.doc.readDirectives(operation.record().Directives)
}

// SelectionSet returns the top-level selections.
func (operation OperationDefinition) SelectionSet() arena.Iter[SelectionID, Selection] {
	return operation.doc.readSelections(operation.record().SelectionSet)
}

// VariablesUsed iterates over every variable reference in the arguments of the operation's
// selections and directives, including repeated references, depth-first. Fragment spreads are not
// followed.
func (operation OperationDefinition) VariablesUsed() iter.Seq[values.VariableValue] {
	return func(yield func(values.VariableValue) bool) {
		if !walkDirectiveVariables(operation.Directives(), yield) {
			return
		}
		walkSelectionVariables(operation.SelectionSet(), yield)
	}
}

// FragmentDefinition reads a named fragment like "fragment F on T { f }".
type FragmentDefinition struct {
	readContext[FragmentDefinitionID]
}

// Read returns the reader for the fragment definition.
func (id FragmentDefinitionID) Read(doc *Document) FragmentDefinition {
	return FragmentDefinition{readContext[FragmentDefinitionID]{doc, id}}
}

func (FragmentDefinition) isDefinition() {}

func (fragment FragmentDefinition) record() *FragmentDefinitionRecord {
	return fragment.doc.fragments.Lookup(fragment.id)
}

// Name returns the name of the fragment.
func (fragment FragmentDefinition) Name() string {
	return fragment.doc.lookupString(fragment.record().Name)
}

// NameSpan returns the location of the name.
func (fragment FragmentDefinition) NameSpan() token.Span {
	return fragment.record().NameSpan
}

// TypeCondition returns the name of the type the fragment applies to.
func (fragment FragmentDefinition) TypeCondition() string {
	return fragment.doc.lookupString(fragment.record().TypeCondition)
}

// TypeConditionSpan returns the location of the type condition's named type.
func (fragment FragmentDefinition) TypeConditionSpan() token.Span {
	return fragment.record().TypeConditionSpan
}

// Span returns the location of the fragment definition.
func (fragment FragmentDefinition) Span() token.Span {
	return fragment.record().Span
}

// Directives returns the directives applied to the fragment.
func (fragment FragmentDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return fragment.doc.readDirectives(fragment.record().Directives)
}

// SelectionSet returns the top-level selections.
func (fragment FragmentDefinition) SelectionSet() arena.Iter[SelectionID, Selection] {
	return fragment.doc.readSelections(fragment.record().SelectionSet)
}

func (doc *Document) readDirectives(ids arena.Range[DirectiveID]) arena.Iter[DirectiveID, Directive] {
	return arena.NewIter(ids, doc.ReadDirective)
}

func (doc *Document) readArguments(ids arena.Range[ArgumentID]) arena.Iter[ArgumentID, Argument] {
	return arena.NewIter(ids, doc.ReadArgument)
}

func (doc *Document) readSelections(ids arena.Range[SelectionID]) arena.Iter[SelectionID, Selection] {
	return arena.NewIter(ids, doc.ReadSelection)
}

func walkArgumentVariables(arguments arena.Iter[ArgumentID, Argument], yield func(values.VariableValue) bool) bool {
	for argument := range arguments.All() {
		for variable := range values.VariablesUsed(argument.Value()) {
			if !yield(variable) {
				return false
			}
		}
	}
	return true
}

func walkDirectiveVariables(directives arena.Iter[DirectiveID, Directive], yield func(values.VariableValue) bool) bool {
	for directive := range directives.All() {
		if !walkArgumentVariables(directive.Arguments(), yield) {
			return false
		}
	}
	return true
}

func walkSelectionVariables(selections arena.Iter[SelectionID, Selection], yield func(values.VariableValue) bool) bool {
	for selection := range selections.All() {
		switch selection := selection.(type) {
		case FieldSelection:
			if !walkArgumentVariables(selection.Arguments(), yield) ||
				!walkDirectiveVariables(selection.Directives(), yield) ||
				!walkSelectionVariables(selection.SelectionSet(), yield) {
				return false
			}
		case InlineFragment:
			if !walkDirectiveVariables(selection.Directives(), yield) ||
				!walkSelectionVariables(selection.SelectionSet(), yield) {
				return false
			}
		case FragmentSpread:
			if !walkDirectiveVariables(selection.Directives(), yield) {
				return false
			}
		}
	}
	return true
}

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
	"github.com/botobag/gqlparse/graphql/values"
)

// Document is a parsed executable document. It is immutable once returned by the parser and safe
// for concurrent use by multiple goroutines.
type Document struct {
	values *values.Store

	definitions arena.Arena[DefinitionID, DefinitionRecord]
	operations  arena.Arena[OperationDefinitionID, OperationDefinitionRecord]
	fragments   arena.Arena[FragmentDefinitionID, FragmentDefinitionRecord]

	selections      arena.Arena[SelectionID, SelectionRecord]
	fields          arena.Arena[FieldSelectionID, FieldSelectionRecord]
	inlineFragments arena.Arena[InlineFragmentID, InlineFragmentRecord]
	fragmentSpreads arena.Arena[FragmentSpreadID, FragmentSpreadRecord]

	variableDefinitions arena.Arena[VariableDefinitionID, VariableDefinitionRecord]
	types               arena.Arena[TypeID, TypeRecord]
	directives          arena.Arena[DirectiveID, DirectiveRecord]
	arguments           arena.Arena[ArgumentID, ArgumentRecord]
}

// Values returns the store holding the values and interned strings of the document.
func (doc *Document) Values() *values.Store {
	return doc.values
}

func (doc *Document) lookupString(id arena.StringID) string {
	return doc.values.LookupString(id)
}

// Definitions returns the operations and fragments in source order.
func (doc *Document) Definitions() arena.Iter[DefinitionID, Definition] {
	ids := arena.NewRange(DefinitionID(1), arena.FromIndex[DefinitionID](doc.definitions.Len()))
	return arena.NewIter(ids, doc.ReadDefinition)
}

// NumDefinitions returns the number of top-level definitions.
func (doc *Document) NumDefinitions() int {
	return doc.definitions.Len()
}

// ReadDefinition returns the reader for a top-level definition.
func (doc *Document) ReadDefinition(id DefinitionID) Definition {
	record := doc.definitions.Lookup(id)
	switch record.Kind {
	case DefinitionKindOperation:
		return OperationDefinitionID(record.id).Read(doc)
	case DefinitionKindFragment:
		return FragmentDefinitionID(record.id).Read(doc)
	}
	panic("executable: unknown definition kind")
}

// Operations iterates over the operations in source order.
func (doc *Document) Operations() iter.Seq[OperationDefinition] {
	return func(yield func(OperationDefinition) bool) {
		for id := range doc.operations.All() {
			if !yield(id.Read(doc)) {
				return
			}
		}
	}
}

// Fragments iterates over the fragment definitions in source order.
func (doc *Document) Fragments() iter.Seq[FragmentDefinition] {
	return func(yield func(FragmentDefinition) bool) {
		for id := range doc.fragments.All() {
			if !yield(id.Read(doc)) {
				return
			}
		}
	}
}

// NumOperations returns the number of operations.
func (doc *Document) NumOperations() int {
	return doc.operations.Len()
}

// NumFragments returns the number of fragment definitions.
func (doc *Document) NumFragments() int {
	return doc.fragments.Len()
}

// Operation returns the operation with the given name. An empty name selects the anonymous
// operation, or the only operation of the document when there is exactly one.
func (doc *Document) Operation(name string) (OperationDefinition, bool) {
	if len(name) == 0 {
		if doc.operations.Len() == 1 {
			return OperationDefinitionID(1).Read(doc), true
		}
		for operation := range doc.Operations() {
			if operation.IsAnonymous() {
				return operation, true
			}
		}
		return OperationDefinition{}, false
	}

	id, ok := doc.values.Strings().Find(name)
	if !ok {
		return OperationDefinition{}, false
	}
	for operation := range doc.Operations() {
		if operation.record().Name == id {
			return operation, true
		}
	}
	return OperationDefinition{}, false
}

// Fragment returns the first fragment definition with the given name.
func (doc *Document) Fragment(name string) (FragmentDefinition, bool) {
	id, ok := doc.values.Strings().Find(name)
	if !ok {
		return FragmentDefinition{}, false
	}
	for fragment := range doc.Fragments() {
		if fragment.record().Name == id {
			return fragment, true
		}
	}
	return FragmentDefinition{}, false
}

// ReadOperationDefinition returns the reader for an operation.
func (doc *Document) ReadOperationDefinition(id OperationDefinitionID) OperationDefinition {
	return id.Read(doc)
}

// ReadFragmentDefinition returns the reader for a fragment definition.
func (doc *Document) ReadFragmentDefinition(id FragmentDefinitionID) FragmentDefinition {
	return id.Read(doc)
}

// ReadSelection returns the reader for an entry of a selection set.
func (doc *Document) ReadSelection(id SelectionID) Selection {
	return id.Read(doc)
}

// ReadFieldSelection returns the reader for a field.
func (doc *Document) ReadFieldSelection(id FieldSelectionID) FieldSelection {
	return id.Read(doc)
}

// ReadInlineFragment returns the reader for an inline fragment.
func (doc *Document) ReadInlineFragment(id InlineFragmentID) InlineFragment {
	return id.Read(doc)
}

// ReadFragmentSpread returns the reader for a fragment spread.
func (doc *Document) ReadFragmentSpread(id FragmentSpreadID) FragmentSpread {
	return id.Read(doc)
}

// ReadVariableDefinition returns the reader for a variable definition.
func (doc *Document) ReadVariableDefinition(id VariableDefinitionID) VariableDefinition {
	return id.Read(doc)
}

// ReadType returns the reader for a type reference.
func (doc *Document) ReadType(id TypeID) Type {
	return id.Read(doc)
}

// ReadDirective returns the reader for an applied directive.
func (doc *Document) ReadDirective(id DirectiveID) Directive {
	return id.Read(doc)
}

// ReadArgument returns the reader for an argument.
func (doc *Document) ReadArgument(id ArgumentID) Argument {
	return id.Read(doc)
}

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
	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
)

// Selection is an entry of a selection set: a FieldSelection, an InlineFragment or a
// FragmentSpread.
type Selection interface {
	Span() token.Span
	Directives() arena.Iter[DirectiveID, Directive]

	isSelection()
}

var (
	_ Selection = FieldSelection{}
	_ Selection = InlineFragment{}
	_ Selection = FragmentSpread{}
)

// Read returns the reader for the selection.
func (id SelectionID) Read(doc *Document) Selection {
	record := doc.selections.Lookup(id)
	switch record.Kind {
	case SelectionKindField:
		return FieldSelectionID(record.id).Read(doc)
	case SelectionKindInlineFragment:
		return InlineFragmentID(record.id).Read(doc)
	case SelectionKindFragmentSpread:
		return FragmentSpreadID(record.id).Read(doc)
	}
	panic("executable: unknown selection kind")
}

// FieldSelection reads a selected field like "alias: name(arg: 1) @dir { subfield }".
type FieldSelection struct {
	readContext[FieldSelectionID]
}

// Read returns the reader for the field.
func (id FieldSelectionID) Read(doc *Document) FieldSelection {
	return FieldSelection{readContext[FieldSelectionID]{doc, id}}
}

func (FieldSelection) isSelection() {}

func (field FieldSelection) record() *FieldSelectionRecord {
	return field.doc.fields.Lookup(field.id)
}

// Alias returns the alias of the field if any.
func (field FieldSelection) Alias() (string, bool) {
	alias := field.record().Alias
	if alias == 0 {
		return "", false
	}
	return field.doc.lookupString(alias), true
}

// AliasSpan returns the location of the alias. It is empty when there's no alias.
func (field FieldSelection) AliasSpan() token.Span {
	return field.record().AliasSpan
}

// Name returns the name of the field.
func (field FieldSelection) Name() string {
	return field.doc.lookupString(field.record().Name)
}

// NameSpan returns the location of the name.
func (field FieldSelection) NameSpan() token.Span {
	return field.record().NameSpan
}

// ResponseKey returns the key under which the field appears in a response: its alias if it has
// one, its name otherwise.
func (field FieldSelection) ResponseKey() string {
	if alias, ok := field.Alias(); ok {
		return alias
	}
	return field.Name()
}

// Span returns the location of the field including its selection set.
func (field FieldSelection) Span() token.Span {
	return field.record().Span
}

// Arguments returns the arguments in source order.
func (field FieldSelection) Arguments() arena.Iter[ArgumentID, Argument] {
	return field.doc.readArguments(field.record().Arguments)
}

// Argument returns the value of the argument with the given name.
func (field FieldSelection) Argument(name string) (values.Value, bool) {
	return findArgument(field.Arguments(), name)
}

// Directives returns the directives applied to the field.
func (field FieldSelection) Directives() arena.Iter[DirectiveID, Directive] {
	return field.doc.readDirectives(field.record().Directives)
}

// SelectionSet returns the subfield selections. It is empty for a leaf field.
func (field FieldSelection) SelectionSet() arena.Iter[SelectionID, Selection] {
	return field.doc.readSelections(field.record().SelectionSet)
}

// InlineFragment reads an inline fragment like "... on T @dir { f }".
type InlineFragment struct {
	readContext[InlineFragmentID]
}

// Read returns the reader for the inline fragment.
func (id InlineFragmentID) Read(doc *Document) InlineFragment {
	return InlineFragment{readContext[InlineFragmentID]{doc, id}}
}

func (InlineFragment) isSelection() {}

func (fragment InlineFragment) record() *InlineFragmentRecord {
	return fragment.doc.inlineFragments.Lookup(fragment.id)
}

// TypeCondition returns the name of the type the fragment applies to if specified.
func (fragment InlineFragment) TypeCondition() (string, bool) {
	name := fragment.record().TypeCondition
	if name == 0 {
		return "", false
	}
	return fragment.doc.lookupString(name), true
}

// TypeConditionSpan returns the location of the type condition's named type. It is empty when
// there's no type condition.
func (fragment InlineFragment) TypeConditionSpan() token.Span {
	return fragment.record().TypeConditionSpan
}

// Span returns the location of the inline fragment starting from the "...".
func (fragment InlineFragment) Span() token.Span {
	return fragment.record().Span
}

// Directives returns the directives applied to the fragment.
func (fragment InlineFragment) Directives() arena.Iter[DirectiveID, Directive] {
	return fragment.doc.readDirectives(fragment.record().Directives)
}

// SelectionSet returns the selections of the fragment.
func (fragment InlineFragment) SelectionSet() arena.Iter[SelectionID, Selection] {
	return fragment.doc.readSelections(fragment.record().SelectionSet)
}

// FragmentSpread reads a fragment spread like "...F @dir".
type FragmentSpread struct {
	readContext[FragmentSpreadID]
}

// Read returns the reader for the fragment spread.
func (id FragmentSpreadID) Read(doc *Document) FragmentSpread {
	return FragmentSpread{readContext[FragmentSpreadID]{doc, id}}
}

func (FragmentSpread) isSelection() {}

func (spread FragmentSpread) record() *FragmentSpreadRecord {
	return spread.doc.fragmentSpreads.Lookup(spread.id)
}

// FragmentName returns the name of the spread fragment.
func (spread FragmentSpread) FragmentName() string {
	return spread.doc.lookupString(spread.record().FragmentName)
}

// FragmentNameSpan returns the location of the fragment name.
func (spread FragmentSpread) FragmentNameSpan() token.Span {
	return spread.record().FragmentNameSpan
}

// Fragment returns the definition of the spread fragment in the same document.
func (spread FragmentSpread) Fragment() (FragmentDefinition, bool) {
	name := spread.record().FragmentName
	for fragment := range spread.doc.Fragments() {
		if fragment.record().Name == name {
			return fragment, true
		}
	}
	return FragmentDefinition{}, false
}

// Span returns the location of the spread starting from the "...".
func (spread FragmentSpread) Span() token.Span {
	return spread.record().Span
}

// Directives returns the directives applied to the spread.
func (spread FragmentSpread) Directives() arena.Iter[DirectiveID, Directive] {
	return spread.doc.readDirectives(spread.record().Directives)
}

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
	"github.com/botobag/gqlparse/graphql/values"
)

// Writer builds a Document. The parser appends records bottom-up: nested selection sets are
// appended before the selection that owns them, and the entries of one selection set are appended
// in a single batch.
type Writer struct {
	doc *Document
}

// NewWriter creates a Writer for an empty document.
func NewWriter() *Writer {
	return &Writer{
		doc: &Document{
			values: values.NewStore(),
		},
	}
}

// Finish returns the built document. The Writer must not be used afterward.
func (w *Writer) Finish() *Document {
	doc := w.doc
	w.doc = nil
	return doc
}

// Values returns the value store of the document under construction.
func (w *Writer) Values() *values.Store {
	return w.doc.values
}

// Intern interns s into the document.
func (w *Writer) Intern(s string) arena.StringID {
	return w.doc.values.Intern(s)
}

// NumDefinitions returns the number of top-level definitions appended so far.
func (w *Writer) NumDefinitions() int {
	return w.doc.definitions.Len()
}

// OperationDefinition appends an operation.
func (w *Writer) OperationDefinition(record OperationDefinitionRecord) OperationDefinitionID {
	id := w.doc.operations.Append(record)
	w.doc.definitions.Append(DefinitionRecord{
		Kind: DefinitionKindOperation,
		id:   uint32(id),
	})
	return id
}

// FragmentDefinition appends a fragment definition.
func (w *Writer) FragmentDefinition(record FragmentDefinitionRecord) FragmentDefinitionID {
	id := w.doc.fragments.Append(record)
	w.doc.definitions.Append(DefinitionRecord{
		Kind: DefinitionKindFragment,
		id:   uint32(id),
	})
	return id
}

// FieldSelection appends a field. The returned record is to be passed to Selections along with
// its siblings.
func (w *Writer) FieldSelection(record FieldSelectionRecord) SelectionRecord {
	id := w.doc.fields.Append(record)
	return SelectionRecord{Kind: SelectionKindField, id: uint32(id)}
}

// InlineFragment appends an inline fragment. The returned record is to be passed to Selections
// along with its siblings.
func (w *Writer) InlineFragment(record InlineFragmentRecord) SelectionRecord {
	id := w.doc.inlineFragments.Append(record)
	return SelectionRecord{Kind: SelectionKindInlineFragment, id: uint32(id)}
}

// FragmentSpread appends a fragment spread. The returned record is to be passed to Selections
// along with its siblings.
func (w *Writer) FragmentSpread(record FragmentSpreadRecord) SelectionRecord {
	id := w.doc.fragmentSpreads.Append(record)
	return SelectionRecord{Kind: SelectionKindFragmentSpread, id: uint32(id)}
}

// Selections appends the entries of a selection set.
func (w *Writer) Selections(records []SelectionRecord) arena.Range[SelectionID] {
	return w.doc.selections.AppendAll(records)
}

// VariableDefinitions appends the variables of an operation.
func (w *Writer) VariableDefinitions(records []VariableDefinitionRecord) arena.Range[VariableDefinitionID] {
	return w.doc.variableDefinitions.AppendAll(records)
}

// Type appends a type reference.
func (w *Writer) Type(record TypeRecord) TypeID {
	return w.doc.types.Append(record)
}

// Directives appends the directives applied to one node.
func (w *Writer) Directives(records []DirectiveRecord) arena.Range[DirectiveID] {
	return w.doc.directives.AppendAll(records)
}

// Arguments appends the arguments of one field or directive.
func (w *Writer) Arguments(records []ArgumentRecord) arena.Range[ArgumentID] {
	return w.doc.arguments.AppendAll(records)
}

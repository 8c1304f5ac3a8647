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

package typesystem

import (
	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/values"
)

// Writer builds a Document. It is used by the parser: records are appended bottom-up, children
// before their parent, and the children of one parent are appended in a single batch so that they
// occupy a contiguous range.
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

func appendDefinition[I arena.ID, R any](w *Writer, definitions *arena.Arena[I, R], kind DefinitionKind, extension bool, record R) I {
	id := definitions.Append(record)
	w.doc.definitions.Append(DefinitionRecord{
		Kind:      kind,
		Extension: extension,
		id:        uint32(id),
	})
	return id
}

// SchemaDefinition appends a schema definition or extension.
func (w *Writer) SchemaDefinition(record SchemaDefinitionRecord, extension bool) SchemaDefinitionID {
	return appendDefinition(w, &w.doc.schemaDefinitions, DefinitionKindSchema, extension, record)
}

// ScalarDefinition appends a scalar definition or extension.
func (w *Writer) ScalarDefinition(record ScalarDefinitionRecord, extension bool) ScalarDefinitionID {
	return appendDefinition(w, &w.doc.scalarDefinitions, DefinitionKindScalar, extension, record)
}

// ObjectDefinition appends an object definition or extension.
func (w *Writer) ObjectDefinition(record ObjectDefinitionRecord, extension bool) ObjectDefinitionID {
	return appendDefinition(w, &w.doc.objectDefinitions, DefinitionKindObject, extension, record)
}

// InterfaceDefinition appends an interface definition or extension.
func (w *Writer) InterfaceDefinition(record InterfaceDefinitionRecord, extension bool) InterfaceDefinitionID {
	return appendDefinition(w, &w.doc.interfaceDefinitions, DefinitionKindInterface, extension, record)
}

// UnionDefinition appends a union definition or extension.
func (w *Writer) UnionDefinition(record UnionDefinitionRecord, extension bool) UnionDefinitionID {
	return appendDefinition(w, &w.doc.unionDefinitions, DefinitionKindUnion, extension, record)
}

// EnumDefinition appends an enum definition or extension.
func (w *Writer) EnumDefinition(record EnumDefinitionRecord, extension bool) EnumDefinitionID {
	return appendDefinition(w, &w.doc.enumDefinitions, DefinitionKindEnum, extension, record)
}

// InputObjectDefinition appends an input object definition or extension.
func (w *Writer) InputObjectDefinition(record InputObjectDefinitionRecord, extension bool) InputObjectDefinitionID {
	return appendDefinition(w, &w.doc.inputObjectDefinitions, DefinitionKindInputObject, extension, record)
}

// DirectiveDefinition appends a directive definition.
func (w *Writer) DirectiveDefinition(record DirectiveDefinitionRecord) DirectiveDefinitionID {
	return appendDefinition(w, &w.doc.directiveDefinitions, DefinitionKindDirective, false, record)
}

// RootOperationTypeDefinitions appends the root operation types of a schema definition.
func (w *Writer) RootOperationTypeDefinitions(records []RootOperationTypeDefinitionRecord) arena.Range[RootOperationTypeDefinitionID] {
	return w.doc.rootOperationTypeDefinitions.AppendAll(records)
}

// FieldDefinitions appends the fields of an object or an interface.
func (w *Writer) FieldDefinitions(records []FieldDefinitionRecord) arena.Range[FieldDefinitionID] {
	return w.doc.fieldDefinitions.AppendAll(records)
}

// InputValueDefinitions appends argument definitions or the fields of an input object.
func (w *Writer) InputValueDefinitions(records []InputValueDefinitionRecord) arena.Range[InputValueDefinitionID] {
	return w.doc.inputValueDefinitions.AppendAll(records)
}

// EnumValueDefinitions appends the values of an enum.
func (w *Writer) EnumValueDefinitions(records []EnumValueDefinitionRecord) arena.Range[EnumValueDefinitionID] {
	return w.doc.enumValueDefinitions.AppendAll(records)
}

// UnionMembers appends the members of a union.
func (w *Writer) UnionMembers(records []UnionMemberRecord) arena.Range[UnionMemberID] {
	return w.doc.unionMembers.AppendAll(records)
}

// InterfaceReferences appends the implements list of an object or an interface.
func (w *Writer) InterfaceReferences(records []InterfaceReferenceRecord) arena.Range[InterfaceReferenceID] {
	return w.doc.interfaceReferences.AppendAll(records)
}

// DirectiveLocations appends the locations of a directive definition.
func (w *Writer) DirectiveLocations(records []DirectiveLocationRecord) arena.Range[DirectiveLocationID] {
	return w.doc.directiveLocations.AppendAll(records)
}

// Type appends a type reference.
func (w *Writer) Type(record TypeRecord) TypeID {
	return w.doc.types.Append(record)
}

// Directives appends the directives applied to one definition.
func (w *Writer) Directives(records []DirectiveRecord) arena.Range[DirectiveID] {
	return w.doc.directives.AppendAll(records)
}

// Arguments appends the arguments of one directive.
func (w *Writer) Arguments(records []ArgumentRecord) arena.Range[ArgumentID] {
	return w.doc.arguments.AppendAll(records)
}

// Description appends a description.
func (w *Writer) Description(record DescriptionRecord) DescriptionID {
	return w.doc.descriptions.Append(record)
}

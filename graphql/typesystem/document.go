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
	"iter"

	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/values"
)

// Document is a parsed type system document. It is immutable once returned by the parser and safe
// for concurrent use by multiple goroutines.
type Document struct {
	values *values.Store

	definitions arena.Arena[DefinitionID, DefinitionRecord]

	schemaDefinitions      arena.Arena[SchemaDefinitionID, SchemaDefinitionRecord]
	scalarDefinitions      arena.Arena[ScalarDefinitionID, ScalarDefinitionRecord]
	objectDefinitions      arena.Arena[ObjectDefinitionID, ObjectDefinitionRecord]
	interfaceDefinitions   arena.Arena[InterfaceDefinitionID, InterfaceDefinitionRecord]
	unionDefinitions       arena.Arena[UnionDefinitionID, UnionDefinitionRecord]
	enumDefinitions        arena.Arena[EnumDefinitionID, EnumDefinitionRecord]
	inputObjectDefinitions arena.Arena[InputObjectDefinitionID, InputObjectDefinitionRecord]
	directiveDefinitions   arena.Arena[DirectiveDefinitionID, DirectiveDefinitionRecord]

	rootOperationTypeDefinitions arena.Arena[RootOperationTypeDefinitionID, RootOperationTypeDefinitionRecord]
	fieldDefinitions             arena.Arena[FieldDefinitionID, FieldDefinitionRecord]
	inputValueDefinitions        arena.Arena[InputValueDefinitionID, InputValueDefinitionRecord]
	enumValueDefinitions         arena.Arena[EnumValueDefinitionID, EnumValueDefinitionRecord]
	unionMembers                 arena.Arena[UnionMemberID, UnionMemberRecord]
	interfaceReferences          arena.Arena[InterfaceReferenceID, InterfaceReferenceRecord]
	directiveLocations           arena.Arena[DirectiveLocationID, DirectiveLocationRecord]

	types        arena.Arena[TypeID, TypeRecord]
	directives   arena.Arena[DirectiveID, DirectiveRecord]
	arguments    arena.Arena[ArgumentID, ArgumentRecord]
	descriptions arena.Arena[DescriptionID, DescriptionRecord]
}

// Values returns the store holding the values and interned strings of the document.
func (doc *Document) Values() *values.Store {
	return doc.values
}

func (doc *Document) lookupString(id arena.StringID) string {
	return doc.values.LookupString(id)
}

// Definitions returns the top-level definitions in source order, extensions included.
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
	var typeDefinition TypeDefinition
	switch record.Kind {
	case DefinitionKindSchema:
		schema := SchemaDefinition{readContext[SchemaDefinitionID]{doc, SchemaDefinitionID(record.id)}}
		if record.Extension {
			return SchemaExtension{schema}
		}
		return schema
	case DefinitionKindDirective:
		return DirectiveDefinition{readContext[DirectiveDefinitionID]{doc, DirectiveDefinitionID(record.id)}}
	case DefinitionKindScalar:
		typeDefinition = ScalarDefinition{readContext[ScalarDefinitionID]{doc, ScalarDefinitionID(record.id)}}
	case DefinitionKindObject:
		typeDefinition = ObjectDefinition{readContext[ObjectDefinitionID]{doc, ObjectDefinitionID(record.id)}}
	case DefinitionKindInterface:
		typeDefinition = InterfaceDefinition{readContext[InterfaceDefinitionID]{doc, InterfaceDefinitionID(record.id)}}
	case DefinitionKindUnion:
		typeDefinition = UnionDefinition{readContext[UnionDefinitionID]{doc, UnionDefinitionID(record.id)}}
	case DefinitionKindEnum:
		typeDefinition = EnumDefinition{readContext[EnumDefinitionID]{doc, EnumDefinitionID(record.id)}}
	case DefinitionKindInputObject:
		typeDefinition = InputObjectDefinition{readContext[InputObjectDefinitionID]{doc, InputObjectDefinitionID(record.id)}}
	default:
		panic("typesystem: unknown definition kind")
	}
	if record.Extension {
		return TypeExtension{typeDefinition}
	}
	return typeDefinition
}

// TypeDefinitions iterates over the type definitions of the document, skipping extensions.
func (doc *Document) TypeDefinitions() iter.Seq[TypeDefinition] {
	return func(yield func(TypeDefinition) bool) {
		for definition := range doc.Definitions().All() {
			if typeDefinition, ok := definition.(TypeDefinition); ok {
				if !yield(typeDefinition) {
					return
				}
			}
		}
	}
}

// DirectiveDefinitions iterates over the directive definitions of the document.
func (doc *Document) DirectiveDefinitions() iter.Seq[DirectiveDefinition] {
	return func(yield func(DirectiveDefinition) bool) {
		for id := range doc.directiveDefinitions.All() {
			if !yield(id.Read(doc)) {
				return
			}
		}
	}
}

// SchemaDefinition returns the first schema definition that is not an extension.
func (doc *Document) SchemaDefinition() (SchemaDefinition, bool) {
	for definition := range doc.Definitions().All() {
		if schema, ok := definition.(SchemaDefinition); ok {
			return schema, true
		}
	}
	return SchemaDefinition{}, false
}

// LookupType iterates over the definitions (not extensions) of types named name. A valid schema
// defines each type once but a document may contain duplicates.
func (doc *Document) LookupType(name string) iter.Seq[TypeDefinition] {
	return func(yield func(TypeDefinition) bool) {
		id, ok := doc.values.Strings().Find(name)
		if !ok {
			return
		}
		for definition := range doc.TypeDefinitions() {
			if typeDefinitionNameID(definition) == id && !yield(definition) {
				return
			}
		}
	}
}

func typeDefinitionNameID(definition TypeDefinition) arena.StringID {
	switch definition := definition.(type) {
	case ScalarDefinition:
		return definition.record().Name
	case ObjectDefinition:
		return definition.record().Name
	case InterfaceDefinition:
		return definition.record().Name
	case UnionDefinition:
		return definition.record().Name
	case EnumDefinition:
		return definition.record().Name
	case InputObjectDefinition:
		return definition.record().Name
	}
	return 0
}

// ReadSchemaDefinition returns the reader for a schema definition.
func (doc *Document) ReadSchemaDefinition(id SchemaDefinitionID) SchemaDefinition {
	return id.Read(doc)
}

// ReadScalarDefinition returns the reader for a scalar definition.
func (doc *Document) ReadScalarDefinition(id ScalarDefinitionID) ScalarDefinition {
	return id.Read(doc)
}

// ReadObjectDefinition returns the reader for an object definition.
func (doc *Document) ReadObjectDefinition(id ObjectDefinitionID) ObjectDefinition {
	return id.Read(doc)
}

// ReadInterfaceDefinition returns the reader for an interface definition.
func (doc *Document) ReadInterfaceDefinition(id InterfaceDefinitionID) InterfaceDefinition {
	return id.Read(doc)
}

// ReadUnionDefinition returns the reader for a union definition.
func (doc *Document) ReadUnionDefinition(id UnionDefinitionID) UnionDefinition {
	return id.Read(doc)
}

// ReadEnumDefinition returns the reader for an enum definition.
func (doc *Document) ReadEnumDefinition(id EnumDefinitionID) EnumDefinition {
	return id.Read(doc)
}

// ReadInputObjectDefinition returns the reader for an input object definition.
func (doc *Document) ReadInputObjectDefinition(id InputObjectDefinitionID) InputObjectDefinition {
	return id.Read(doc)
}

// ReadDirectiveDefinition returns the reader for a directive definition.
func (doc *Document) ReadDirectiveDefinition(id DirectiveDefinitionID) DirectiveDefinition {
	return id.Read(doc)
}

// ReadFieldDefinition returns the reader for a field definition.
func (doc *Document) ReadFieldDefinition(id FieldDefinitionID) FieldDefinition {
	return id.Read(doc)
}

// ReadInputValueDefinition returns the reader for an argument or input field definition.
func (doc *Document) ReadInputValueDefinition(id InputValueDefinitionID) InputValueDefinition {
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

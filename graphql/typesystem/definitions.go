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
	"github.com/botobag/gqlparse/graphql/token"
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

// Definition is a top-level definition: one of SchemaDefinition, SchemaExtension, TypeExtension,
// DirectiveDefinition, or a TypeDefinition (ScalarDefinition, ObjectDefinition,
// InterfaceDefinition, UnionDefinition, EnumDefinition and InputObjectDefinition).
type Definition interface {
	Span() token.Span
	Description() (Description, bool)
	Directives() arena.Iter[DirectiveID, Directive]

	isDefinition()
}

// TypeDefinition is a definition of a named type. Extensions of types are wrapped in a
// TypeExtension and don't satisfy this interface.
type TypeDefinition interface {
	Definition

	Name() string
	NameSpan() token.Span
	Kind() DefinitionKind

	isTypeDefinition()
}

var (
	_ Definition = SchemaDefinition{}
	_ Definition = SchemaExtension{}
	_ Definition = TypeExtension{}
	_ Definition = DirectiveDefinition{}

	_ TypeDefinition = ScalarDefinition{}
	_ TypeDefinition = ObjectDefinition{}
	_ TypeDefinition = InterfaceDefinition{}
	_ TypeDefinition = UnionDefinition{}
	_ TypeDefinition = EnumDefinition{}
	_ TypeDefinition = InputObjectDefinition{}
)

// SchemaExtension is an "extend schema" definition.
type SchemaExtension struct {
	SchemaDefinition
}

// TypeExtension is an "extend scalar", "extend type", "extend interface", "extend union",
// "extend enum" or "extend input" definition.
type TypeExtension struct {
	definition TypeDefinition
}

// Definition returns the reader for the extension itself, which has the same shape as a
// definition of the extended kind.
func (ext TypeExtension) Definition() TypeDefinition {
	return ext.definition
}

// Name returns the name of the extended type.
func (ext TypeExtension) Name() string {
	return ext.definition.Name()
}

// Kind returns the kind of the extended type.
func (ext TypeExtension) Kind() DefinitionKind {
	return ext.definition.Kind()
}

// Span returns the location of the extension.
func (ext TypeExtension) Span() token.Span {
	return ext.definition.Span()
}

// Description returns the description of the extension. Extensions parsed from source never have
// one.
func (ext TypeExtension) Description() (Description, bool) {
	return ext.definition.Description()
}

// Directives returns the directives added by the extension.
func (ext TypeExtension) Directives() arena.Iter[DirectiveID, Directive] {
	return ext.definition.Directives()
}

func (TypeExtension) isDefinition() {}

var definitionKindNames = [...]string{
	DefinitionKindSchema:      "schema",
	DefinitionKindScalar:      "scalar",
	DefinitionKindObject:      "type",
	DefinitionKindInterface:   "interface",
	DefinitionKindUnion:       "union",
	DefinitionKindEnum:        "enum",
	DefinitionKindInputObject: "input",
	DefinitionKindDirective:   "directive",
}

// String returns the keyword introducing definitions of the kind.
func (kind DefinitionKind) String() string {
	if int(kind) < len(definitionKindNames) && kind != 0 {
		return definitionKindNames[kind]
	}
	return "<unknown definition kind>"
}

func (doc *Document) readDescription(id DescriptionID) (Description, bool) {
	if id == 0 {
		return Description{}, false
	}
	return Description{readContext[DescriptionID]{doc, id}}, true
}

func (doc *Document) readDirectives(ids arena.Range[DirectiveID]) arena.Iter[DirectiveID, Directive] {
	return arena.NewIter(ids, doc.ReadDirective)
}

func (doc *Document) readInputValues(ids arena.Range[InputValueDefinitionID]) arena.Iter[InputValueDefinitionID, InputValueDefinition] {
	return arena.NewIter(ids, doc.ReadInputValueDefinition)
}

func (doc *Document) readFields(ids arena.Range[FieldDefinitionID]) arena.Iter[FieldDefinitionID, FieldDefinition] {
	return arena.NewIter(ids, doc.ReadFieldDefinition)
}

func (doc *Document) readInterfaceReferences(ids arena.Range[InterfaceReferenceID]) arena.Iter[InterfaceReferenceID, InterfaceReference] {
	return arena.NewIter(ids, func(id InterfaceReferenceID) InterfaceReference {
		return InterfaceReference{readContext[InterfaceReferenceID]{doc, id}}
	})
}

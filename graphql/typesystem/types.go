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
	"github.com/botobag/gqlparse/graphql/values"
)

//===----------------------------------------------------------------------------------------====//
// Scalar
//===----------------------------------------------------------------------------------------====//

// ScalarDefinition reads a scalar type definition.
type ScalarDefinition struct {
	readContext[ScalarDefinitionID]
}

// Read returns the reader for the scalar definition.
func (id ScalarDefinitionID) Read(doc *Document) ScalarDefinition {
	return ScalarDefinition{readContext[ScalarDefinitionID]{doc, id}}
}

func (scalar ScalarDefinition) record() *ScalarDefinitionRecord {
	return scalar.doc.scalarDefinitions.Lookup(scalar.id)
}

// Name returns the name of the scalar.
func (scalar ScalarDefinition) Name() string {
	return scalar.doc.lookupString(scalar.record().Name)
}

// NameSpan returns the location of the name.
func (scalar ScalarDefinition) NameSpan() token.Span {
	return scalar.record().NameSpan
}

// Kind returns DefinitionKindScalar.
func (ScalarDefinition) Kind() DefinitionKind {
	return DefinitionKindScalar
}

// Span returns the location of the definition.
func (scalar ScalarDefinition) Span() token.Span {
	return scalar.record().Span
}

// Description returns the description of the scalar if any.
func (scalar ScalarDefinition) Description() (Description, bool) {
	return scalar.doc.readDescription(scalar.record().Description)
}

// Directives returns the directives applied to the scalar.
func (scalar ScalarDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return scalar.doc.readDirectives(scalar.record().Directives)
}

// SpecifiedByURL returns the url argument of the @specifiedBy directive if present.
func (scalar ScalarDefinition) SpecifiedByURL() (string, bool) {
	for directive := range scalar.Directives().All() {
		if directive.Name() != "specifiedBy" {
			continue
		}
		if value, ok := directive.Argument("url"); ok {
			if url, ok := value.(values.StringValue); ok {
				return url.Value(), true
			}
		}
	}
	return "", false
}

func (ScalarDefinition) isDefinition()     {}
func (ScalarDefinition) isTypeDefinition() {}

//===----------------------------------------------------------------------------------------====//
// Object
//===----------------------------------------------------------------------------------------====//

// ObjectDefinition reads an object type definition.
type ObjectDefinition struct {
	readContext[ObjectDefinitionID]
}

// Read returns the reader for the object definition.
func (id ObjectDefinitionID) Read(doc *Document) ObjectDefinition {
	return ObjectDefinition{readContext[ObjectDefinitionID]{doc, id}}
}

func (object ObjectDefinition) record() *ObjectDefinitionRecord {
	return object.doc.objectDefinitions.Lookup(object.id)
}

// Name returns the name of the object.
func (object ObjectDefinition) Name() string {
	return object.doc.lookupString(object.record().Name)
}

// NameSpan returns the location of the name.
func (object ObjectDefinition) NameSpan() token.Span {
	return object.record().NameSpan
}

// Kind returns DefinitionKindObject.
func (ObjectDefinition) Kind() DefinitionKind {
	return DefinitionKindObject
}

// Span returns the location of the definition.
func (object ObjectDefinition) Span() token.Span {
	return object.record().Span
}

// Description returns the description of the object if any.
func (object ObjectDefinition) Description() (Description, bool) {
	return object.doc.readDescription(object.record().Description)
}

// ImplementsInterfaces returns the interfaces the object implements in source order.
func (object ObjectDefinition) ImplementsInterfaces() arena.Iter[InterfaceReferenceID, InterfaceReference] {
	return object.doc.readInterfaceReferences(object.record().ImplementsInterfaces)
}

// Directives returns the directives applied to the object.
func (object ObjectDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return object.doc.readDirectives(object.record().Directives)
}

// Fields returns the fields of the object in source order.
func (object ObjectDefinition) Fields() arena.Iter[FieldDefinitionID, FieldDefinition] {
	return object.doc.readFields(object.record().Fields)
}

// Field returns the field with the given name.
func (object ObjectDefinition) Field(name string) (FieldDefinition, bool) {
	return findField(object.Fields(), name)
}

func (ObjectDefinition) isDefinition()     {}
func (ObjectDefinition) isTypeDefinition() {}

//===----------------------------------------------------------------------------------------====//
// Interface
//===----------------------------------------------------------------------------------------====//

// InterfaceDefinition reads an interface type definition.
type InterfaceDefinition struct {
	readContext[InterfaceDefinitionID]
}

// Read returns the reader for the interface definition.
func (id InterfaceDefinitionID) Read(doc *Document) InterfaceDefinition {
	return InterfaceDefinition{readContext[InterfaceDefinitionID]{doc, id}}
}

func (iface InterfaceDefinition) record() *InterfaceDefinitionRecord {
	return iface.doc.interfaceDefinitions.Lookup(iface.id)
}

// Name returns the name of the interface.
func (iface InterfaceDefinition) Name() string {
	return iface.doc.lookupString(iface.record().Name)
}

// NameSpan returns the location of the name.
func (iface InterfaceDefinition) NameSpan() token.Span {
	return iface.record().NameSpan
}

// Kind returns DefinitionKindInterface.
func (InterfaceDefinition) Kind() DefinitionKind {
	return DefinitionKindInterface
}

// Span returns the location of the definition.
func (iface InterfaceDefinition) Span() token.Span {
	return iface.record().Span
}

// Description returns the description of the interface if any.
func (iface InterfaceDefinition) Description() (Description, bool) {
	return iface.doc.readDescription(iface.record().Description)
}

// ImplementsInterfaces returns the interfaces the interface implements in source order.
func (iface InterfaceDefinition) ImplementsInterfaces() arena.Iter[InterfaceReferenceID, InterfaceReference] {
	return iface.doc.readInterfaceReferences(iface.record().ImplementsInterfaces)
}

// Directives returns the directives applied to the interface.
func (iface InterfaceDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return iface.doc.readDirectives(iface.record().Directives)
}

// Fields returns the fields of the interface in source order.
func (iface InterfaceDefinition) Fields() arena.Iter[FieldDefinitionID, FieldDefinition] {
	return iface.doc.readFields(iface.record().Fields)
}

// Field returns the field with the given name.
func (iface InterfaceDefinition) Field(name string) (FieldDefinition, bool) {
	return findField(iface.Fields(), name)
}

func (InterfaceDefinition) isDefinition()     {}
func (InterfaceDefinition) isTypeDefinition() {}

// InterfaceReference reads a name in the implements list of an object or an interface.
type InterfaceReference struct {
	readContext[InterfaceReferenceID]
}

// Name returns the name of the implemented interface.
func (ref InterfaceReference) Name() string {
	return ref.doc.lookupString(ref.doc.interfaceReferences.Lookup(ref.id).Name)
}

// Span returns the location of the name.
func (ref InterfaceReference) Span() token.Span {
	return ref.doc.interfaceReferences.Lookup(ref.id).Span
}

//===----------------------------------------------------------------------------------------====//
// Union
//===----------------------------------------------------------------------------------------====//

// UnionDefinition reads a union type definition.
type UnionDefinition struct {
	readContext[UnionDefinitionID]
}

// Read returns the reader for the union definition.
func (id UnionDefinitionID) Read(doc *Document) UnionDefinition {
	return UnionDefinition{readContext[UnionDefinitionID]{doc, id}}
}

func (union UnionDefinition) record() *UnionDefinitionRecord {
	return union.doc.unionDefinitions.Lookup(union.id)
}

// Name returns the name of the union.
func (union UnionDefinition) Name() string {
	return union.doc.lookupString(union.record().Name)
}

// NameSpan returns the location of the name.
func (union UnionDefinition) NameSpan() token.Span {
	return union.record().NameSpan
}

// Kind returns DefinitionKindUnion.
func (UnionDefinition) Kind() DefinitionKind {
	return DefinitionKindUnion
}

// Span returns the location of the definition.
func (union UnionDefinition) Span() token.Span {
	return union.record().Span
}

// Description returns the description of the union if any.
func (union UnionDefinition) Description() (Description, bool) {
	return union.doc.readDescription(union.record().Description)
}

// Directives returns the directives applied to the union.
func (union UnionDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return union.doc.readDirectives(union.record().Directives)
}

// Members returns the member types in source order.
func (union UnionDefinition) Members() arena.Iter[UnionMemberID, UnionMember] {
	return arena.NewIter(union.record().Members, func(id UnionMemberID) UnionMember {
		return UnionMember{readContext[UnionMemberID]{union.doc, id}}
	})
}

func (UnionDefinition) isDefinition()     {}
func (UnionDefinition) isTypeDefinition() {}

// UnionMember reads a member type of a union.
type UnionMember struct {
	readContext[UnionMemberID]
}

// Name returns the name of the member type.
func (member UnionMember) Name() string {
	return member.doc.lookupString(member.doc.unionMembers.Lookup(member.id).Name)
}

// Span returns the location of the name.
func (member UnionMember) Span() token.Span {
	return member.doc.unionMembers.Lookup(member.id).Span
}

//===----------------------------------------------------------------------------------------====//
// Enum
//===----------------------------------------------------------------------------------------====//

// EnumDefinition reads an enum type definition.
type EnumDefinition struct {
	readContext[EnumDefinitionID]
}

// Read returns the reader for the enum definition.
func (id EnumDefinitionID) Read(doc *Document) EnumDefinition {
	return EnumDefinition{readContext[EnumDefinitionID]{doc, id}}
}

func (enum EnumDefinition) record() *EnumDefinitionRecord {
	return enum.doc.enumDefinitions.Lookup(enum.id)
}

// Name returns the name of the enum.
func (enum EnumDefinition) Name() string {
	return enum.doc.lookupString(enum.record().Name)
}

// NameSpan returns the location of the name.
func (enum EnumDefinition) NameSpan() token.Span {
	return enum.record().NameSpan
}

// Kind returns DefinitionKindEnum.
func (EnumDefinition) Kind() DefinitionKind {
	return DefinitionKindEnum
}

// Span returns the location of the definition.
func (enum EnumDefinition) Span() token.Span {
	return enum.record().Span
}

// Description returns the description of the enum if any.
func (enum EnumDefinition) Description() (Description, bool) {
	return enum.doc.readDescription(enum.record().Description)
}

// Directives returns the directives applied to the enum.
func (enum EnumDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return enum.doc.readDirectives(enum.record().Directives)
}

// Values returns the values of the enum in source order.
func (enum EnumDefinition) Values() arena.Iter[EnumValueDefinitionID, EnumValueDefinition] {
	return arena.NewIter(enum.record().Values, enum.doc.ReadEnumValueDefinition)
}

// Value returns the enum value with the given name.
func (enum EnumDefinition) Value(name string) (EnumValueDefinition, bool) {
	for value := range enum.Values().All() {
		if value.Value() == name {
			return value, true
		}
	}
	return EnumValueDefinition{}, false
}

func (EnumDefinition) isDefinition()     {}
func (EnumDefinition) isTypeDefinition() {}

//===----------------------------------------------------------------------------------------====//
// Input Object
//===----------------------------------------------------------------------------------------====//

// InputObjectDefinition reads an input object type definition.
type InputObjectDefinition struct {
	readContext[InputObjectDefinitionID]
}

// Read returns the reader for the input object definition.
func (id InputObjectDefinitionID) Read(doc *Document) InputObjectDefinition {
	return InputObjectDefinition{readContext[InputObjectDefinitionID]{doc, id}}
}

func (input InputObjectDefinition) record() *InputObjectDefinitionRecord {
	return input.doc.inputObjectDefinitions.Lookup(input.id)
}

// Name returns the name of the input object.
func (input InputObjectDefinition) Name() string {
	return input.doc.lookupString(input.record().Name)
}

// NameSpan returns the location of the name.
func (input InputObjectDefinition) NameSpan() token.Span {
	return input.record().NameSpan
}

// Kind returns DefinitionKindInputObject.
func (InputObjectDefinition) Kind() DefinitionKind {
	return DefinitionKindInputObject
}

// Span returns the location of the definition.
func (input InputObjectDefinition) Span() token.Span {
	return input.record().Span
}

// Description returns the description of the input object if any.
func (input InputObjectDefinition) Description() (Description, bool) {
	return input.doc.readDescription(input.record().Description)
}

// Directives returns the directives applied to the input object.
func (input InputObjectDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return input.doc.readDirectives(input.record().Directives)
}

// Fields returns the input fields in source order.
func (input InputObjectDefinition) Fields() arena.Iter[InputValueDefinitionID, InputValueDefinition] {
	return input.doc.readInputValues(input.record().Fields)
}

// Field returns the input field with the given name.
func (input InputObjectDefinition) Field(name string) (InputValueDefinition, bool) {
	return findInputValue(input.Fields(), name)
}

func (InputObjectDefinition) isDefinition()     {}
func (InputObjectDefinition) isTypeDefinition() {}

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

// FieldDefinition reads a field of an object or an interface.
type FieldDefinition struct {
	readContext[FieldDefinitionID]
}

// Read returns the reader for the field definition.
func (id FieldDefinitionID) Read(doc *Document) FieldDefinition {
	return FieldDefinition{readContext[FieldDefinitionID]{doc, id}}
}

func (field FieldDefinition) record() *FieldDefinitionRecord {
	return field.doc.fieldDefinitions.Lookup(field.id)
}

// Name returns the name of the field.
func (field FieldDefinition) Name() string {
	return field.doc.lookupString(field.record().Name)
}

// NameSpan returns the location of the name.
func (field FieldDefinition) NameSpan() token.Span {
	return field.record().NameSpan
}

// Span returns the location of the field definition.
func (field FieldDefinition) Span() token.Span {
	return field.record().Span
}

// Description returns the description of the field if any.
func (field FieldDefinition) Description() (Description, bool) {
	return field.doc.readDescription(field.record().Description)
}

// Arguments returns the argument definitions in source order.
func (field FieldDefinition) Arguments() arena.Iter[InputValueDefinitionID, InputValueDefinition] {
	return field.doc.readInputValues(field.record().Arguments)
}

// Argument returns the argument definition with the given name.
func (field FieldDefinition) Argument(name string) (InputValueDefinition, bool) {
	return findInputValue(field.Arguments(), name)
}

// Type returns the type of the field.
func (field FieldDefinition) Type() Type {
	return field.record().Type.Read(field.doc)
}

// Directives returns the directives applied to the field.
func (field FieldDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return field.doc.readDirectives(field.record().Directives)
}

func findField(fields arena.Iter[FieldDefinitionID, FieldDefinition], name string) (FieldDefinition, bool) {
	for field := range fields.All() {
		if field.Name() == name {
			return field, true
		}
	}
	return FieldDefinition{}, false
}

// InputValueDefinition reads an argument definition or a field of an input object.
type InputValueDefinition struct {
	readContext[InputValueDefinitionID]
}

// Read returns the reader for the input value definition.
func (id InputValueDefinitionID) Read(doc *Document) InputValueDefinition {
	return InputValueDefinition{readContext[InputValueDefinitionID]{doc, id}}
}

func (value InputValueDefinition) record() *InputValueDefinitionRecord {
	return value.doc.inputValueDefinitions.Lookup(value.id)
}

// Name returns the name of the input value.
func (value InputValueDefinition) Name() string {
	return value.doc.lookupString(value.record().Name)
}

// NameSpan returns the location of the name.
func (value InputValueDefinition) NameSpan() token.Span {
	return value.record().NameSpan
}

// Span returns the location of the input value definition.
func (value InputValueDefinition) Span() token.Span {
	return value.record().Span
}

// Description returns the description of the input value if any.
func (value InputValueDefinition) Description() (Description, bool) {
	return value.doc.readDescription(value.record().Description)
}

// Type returns the type of the input value.
func (value InputValueDefinition) Type() Type {
	return value.record().Type.Read(value.doc)
}

// DefaultValue returns the default value if one is given.
func (value InputValueDefinition) DefaultValue() (values.Value, bool) {
	id := value.record().DefaultValue
	if id == 0 {
		return nil, false
	}
	return id.Read(value.doc.values), true
}

// Directives returns the directives applied to the input value.
func (value InputValueDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return value.doc.readDirectives(value.record().Directives)
}

func findInputValue(inputValues arena.Iter[InputValueDefinitionID, InputValueDefinition], name string) (InputValueDefinition, bool) {
	for value := range inputValues.All() {
		if value.Name() == name {
			return value, true
		}
	}
	return InputValueDefinition{}, false
}

// EnumValueDefinition reads a value of an enum.
type EnumValueDefinition struct {
	readContext[EnumValueDefinitionID]
}

// Read returns the reader for the enum value definition.
func (id EnumValueDefinitionID) Read(doc *Document) EnumValueDefinition {
	return EnumValueDefinition{readContext[EnumValueDefinitionID]{doc, id}}
}

// ReadEnumValueDefinition returns the reader for an enum value definition.
func (doc *Document) ReadEnumValueDefinition(id EnumValueDefinitionID) EnumValueDefinition {
	return id.Read(doc)
}

func (value EnumValueDefinition) record() *EnumValueDefinitionRecord {
	return value.doc.enumValueDefinitions.Lookup(value.id)
}

// Value returns the name of the enum value.
func (value EnumValueDefinition) Value() string {
	return value.doc.lookupString(value.record().Value)
}

// ValueSpan returns the location of the name.
func (value EnumValueDefinition) ValueSpan() token.Span {
	return value.record().ValueSpan
}

// Span returns the location of the enum value definition.
func (value EnumValueDefinition) Span() token.Span {
	return value.record().Span
}

// Description returns the description of the enum value if any.
func (value EnumValueDefinition) Description() (Description, bool) {
	return value.doc.readDescription(value.record().Description)
}

// Directives returns the directives applied to the enum value.
func (value EnumValueDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return value.doc.readDirectives(value.record().Directives)
}

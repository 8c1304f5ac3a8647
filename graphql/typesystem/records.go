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
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
)

// DefinitionKind identifies the arena a top-level definition lives in.
type DefinitionKind uint8

// Enumeration of DefinitionKind
const (
	DefinitionKindSchema DefinitionKind = iota + 1
	DefinitionKindScalar
	DefinitionKindObject
	DefinitionKindInterface
	DefinitionKindUnion
	DefinitionKindEnum
	DefinitionKindInputObject
	DefinitionKindDirective
)

// DefinitionRecord is an entry in the ordered list of top-level definitions. It points into the
// arena for its kind.
type DefinitionRecord struct {
	Kind      DefinitionKind
	Extension bool
	id        uint32
}

// SchemaDefinitionRecord stores a schema definition or extension.
type SchemaDefinitionRecord struct {
	Description    DescriptionID
	Directives     arena.Range[DirectiveID]
	RootOperations arena.Range[RootOperationTypeDefinitionID]
	Span           token.Span
}

// RootOperationTypeDefinitionRecord stores an entry like "query: Query" of a schema definition.
type RootOperationTypeDefinitionRecord struct {
	OperationType ast.OperationType
	NamedType     arena.StringID
	NamedTypeSpan token.Span
	Span          token.Span
}

// ScalarDefinitionRecord stores a scalar definition or extension.
type ScalarDefinitionRecord struct {
	Name        arena.StringID
	NameSpan    token.Span
	Description DescriptionID
	Directives  arena.Range[DirectiveID]
	Span        token.Span
}

// ObjectDefinitionRecord stores an object type definition or extension.
type ObjectDefinitionRecord struct {
	Name                 arena.StringID
	NameSpan             token.Span
	Description          DescriptionID
	ImplementsInterfaces arena.Range[InterfaceReferenceID]
	Directives           arena.Range[DirectiveID]
	Fields               arena.Range[FieldDefinitionID]
	Span                 token.Span
}

// InterfaceDefinitionRecord stores an interface definition or extension.
type InterfaceDefinitionRecord struct {
	Name                 arena.StringID
	NameSpan             token.Span
	Description          DescriptionID
	ImplementsInterfaces arena.Range[InterfaceReferenceID]
	Directives           arena.Range[DirectiveID]
	Fields               arena.Range[FieldDefinitionID]
	Span                 token.Span
}

// InterfaceReferenceRecord stores a name in an implements list.
type InterfaceReferenceRecord struct {
	Name arena.StringID
	Span token.Span
}

// UnionDefinitionRecord stores a union definition or extension.
type UnionDefinitionRecord struct {
	Name        arena.StringID
	NameSpan    token.Span
	Description DescriptionID
	Directives  arena.Range[DirectiveID]
	Members     arena.Range[UnionMemberID]
	Span        token.Span
}

// UnionMemberRecord stores a member type of a union.
type UnionMemberRecord struct {
	Name arena.StringID
	Span token.Span
}

// EnumDefinitionRecord stores an enum definition or extension.
type EnumDefinitionRecord struct {
	Name        arena.StringID
	NameSpan    token.Span
	Description DescriptionID
	Directives  arena.Range[DirectiveID]
	Values      arena.Range[EnumValueDefinitionID]
	Span        token.Span
}

// EnumValueDefinitionRecord stores a value of an enum.
type EnumValueDefinitionRecord struct {
	Value       arena.StringID
	ValueSpan   token.Span
	Description DescriptionID
	Directives  arena.Range[DirectiveID]
	Span        token.Span
}

// InputObjectDefinitionRecord stores an input object definition or extension.
type InputObjectDefinitionRecord struct {
	Name        arena.StringID
	NameSpan    token.Span
	Description DescriptionID
	Directives  arena.Range[DirectiveID]
	Fields      arena.Range[InputValueDefinitionID]
	Span        token.Span
}

// DirectiveDefinitionRecord stores a directive definition.
type DirectiveDefinitionRecord struct {
	Name        arena.StringID
	NameSpan    token.Span
	Description DescriptionID
	Arguments   arena.Range[InputValueDefinitionID]
	Repeatable  bool
	Locations   arena.Range[DirectiveLocationID]
	Span        token.Span
}

// DirectiveLocationRecord stores a location listed in a directive definition.
type DirectiveLocationRecord struct {
	Location ast.DirectiveLocation
	Span     token.Span
}

// FieldDefinitionRecord stores a field of an object or an interface.
type FieldDefinitionRecord struct {
	Name        arena.StringID
	NameSpan    token.Span
	Description DescriptionID
	Arguments   arena.Range[InputValueDefinitionID]
	Type        TypeID
	Directives  arena.Range[DirectiveID]
	Span        token.Span
}

// InputValueDefinitionRecord stores an argument definition or a field of an input object.
type InputValueDefinitionRecord struct {
	Name         arena.StringID
	NameSpan     token.Span
	Description  DescriptionID
	Type         TypeID
	DefaultValue values.ConstValueID
	Directives   arena.Range[DirectiveID]
	Span         token.Span
}

// TypeRecord stores a type reference like "[Int!]!".
type TypeRecord struct {
	Name     arena.StringID
	NameSpan token.Span
	Wrappers ast.TypeWrappers
	Span     token.Span
}

// DirectiveRecord stores an applied directive. Arguments of directives in type system documents
// are always const.
type DirectiveRecord struct {
	Name      arena.StringID
	NameSpan  token.Span
	Arguments arena.Range[ArgumentID]
	Span      token.Span
}

// ArgumentRecord stores an argument of an applied directive.
type ArgumentRecord struct {
	Name     arena.StringID
	NameSpan token.Span
	Value    values.ConstValueID
	Span     token.Span
}

// DescriptionRecord stores the string literal preceding a definition. Exactly one of Text and
// BlockString is set.
type DescriptionRecord struct {
	Text        arena.StringID
	BlockString values.BlockStringID
	Span        token.Span
}

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

// Package typesystem holds parsed GraphQL type system documents (SDL). A Document stores every
// definition in flat per-kind arenas addressed by typed IDs; readers such as ObjectDefinition and
// FieldDefinition are cheap views pairing an ID with the Document.
package typesystem

// Each ID is the 1-based index of a record in the Document arena of the same kind. The zero value
// refers to nothing.
type (
	// DefinitionID refers to an entry in the ordered list of top-level definitions.
	DefinitionID uint32

	SchemaDefinitionID      uint32
	ScalarDefinitionID      uint32
	ObjectDefinitionID      uint32
	InterfaceDefinitionID   uint32
	UnionDefinitionID       uint32
	EnumDefinitionID        uint32
	InputObjectDefinitionID uint32
	DirectiveDefinitionID   uint32

	RootOperationTypeDefinitionID uint32
	FieldDefinitionID             uint32
	InputValueDefinitionID        uint32
	EnumValueDefinitionID         uint32
	UnionMemberID                 uint32
	InterfaceReferenceID          uint32
	DirectiveLocationID           uint32

	TypeID        uint32
	DirectiveID   uint32
	ArgumentID    uint32
	DescriptionID uint32
)

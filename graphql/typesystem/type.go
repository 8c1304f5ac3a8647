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

	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
)

// Type reads a type reference like "[Int!]!".
type Type struct {
	readContext[TypeID]
}

// Read returns the reader for the type reference.
func (id TypeID) Read(doc *Document) Type {
	return Type{readContext[TypeID]{doc, id}}
}

func (t Type) record() *TypeRecord {
	return t.doc.types.Lookup(t.id)
}

// Name returns the name of the innermost named type.
func (t Type) Name() string {
	return t.doc.lookupString(t.record().Name)
}

// NameSpan returns the location of the named type.
func (t Type) NameSpan() token.Span {
	return t.record().NameSpan
}

// Span returns the location of the whole type reference.
func (t Type) Span() token.Span {
	return t.record().Span
}

// Wrappers returns the list and non-null modifiers from the outermost to the innermost.
func (t Type) Wrappers() ast.TypeWrappers {
	return t.record().Wrappers
}

// IsList returns true if the type is a list, possibly non-null.
func (t Type) IsList() bool {
	return t.record().Wrappers.IsList()
}

// IsNonNull returns true if the outermost modifier is non-null.
func (t Type) IsNonNull() bool {
	return t.record().Wrappers.IsNonNull()
}

// String returns the type reference as written in GraphQL.
func (t Type) String() string {
	return t.record().Wrappers.Format(t.Name())
}

// Definitions iterates over the definitions of the named type in the same document. Extensions
// are skipped.
func (t Type) Definitions() iter.Seq[TypeDefinition] {
	name := t.record().Name
	return func(yield func(TypeDefinition) bool) {
		for definition := range t.doc.TypeDefinitions() {
			if typeDefinitionNameID(definition) == name && !yield(definition) {
				return
			}
		}
	}
}

// Definition returns the first definition of the named type in the same document.
func (t Type) Definition() (TypeDefinition, bool) {
	for definition := range t.Definitions() {
		return definition, true
	}
	return nil, false
}

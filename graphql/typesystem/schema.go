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
)

// SchemaDefinition reads a schema definition like "schema { query: Query }". Schema extensions are
// read through SchemaExtension which embeds it.
type SchemaDefinition struct {
	readContext[SchemaDefinitionID]
}

// Read returns the reader for the schema definition.
func (id SchemaDefinitionID) Read(doc *Document) SchemaDefinition {
	return SchemaDefinition{readContext[SchemaDefinitionID]{doc, id}}
}

func (schema SchemaDefinition) record() *SchemaDefinitionRecord {
	return schema.doc.schemaDefinitions.Lookup(schema.id)
}

// Span returns the location of the definition.
func (schema SchemaDefinition) Span() token.Span {
	return schema.record().Span
}

// Description returns the description of the schema if any.
func (schema SchemaDefinition) Description() (Description, bool) {
	return schema.doc.readDescription(schema.record().Description)
}

// Directives returns the directives applied to the schema.
func (schema SchemaDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return schema.doc.readDirectives(schema.record().Directives)
}

// RootOperations returns the root operation types in source order.
func (schema SchemaDefinition) RootOperations() arena.Iter[RootOperationTypeDefinitionID, RootOperationTypeDefinition] {
	return arena.NewIter(schema.record().RootOperations, func(id RootOperationTypeDefinitionID) RootOperationTypeDefinition {
		return RootOperationTypeDefinition{readContext[RootOperationTypeDefinitionID]{schema.doc, id}}
	})
}

// RootOperation returns the name of the root type for the given operation type.
func (schema SchemaDefinition) RootOperation(operationType ast.OperationType) (string, bool) {
	for root := range schema.RootOperations().All() {
		if root.OperationType() == operationType {
			return root.NamedType(), true
		}
	}
	return "", false
}

// QueryType returns the name of the query root type.
func (schema SchemaDefinition) QueryType() (string, bool) {
	return schema.RootOperation(ast.OperationTypeQuery)
}

// MutationType returns the name of the mutation root type.
func (schema SchemaDefinition) MutationType() (string, bool) {
	return schema.RootOperation(ast.OperationTypeMutation)
}

// SubscriptionType returns the name of the subscription root type.
func (schema SchemaDefinition) SubscriptionType() (string, bool) {
	return schema.RootOperation(ast.OperationTypeSubscription)
}

func (SchemaDefinition) isDefinition() {}

// RootOperationTypeDefinition reads an entry like "query: Query" in a schema definition.
type RootOperationTypeDefinition struct {
	readContext[RootOperationTypeDefinitionID]
}

func (root RootOperationTypeDefinition) record() *RootOperationTypeDefinitionRecord {
	return root.doc.rootOperationTypeDefinitions.Lookup(root.id)
}

// OperationType returns the operation type being assigned.
func (root RootOperationTypeDefinition) OperationType() ast.OperationType {
	return root.record().OperationType
}

// NamedType returns the name of the root type.
func (root RootOperationTypeDefinition) NamedType() string {
	return root.doc.lookupString(root.record().NamedType)
}

// NamedTypeSpan returns the location of the name of the root type.
func (root RootOperationTypeDefinition) NamedTypeSpan() token.Span {
	return root.record().NamedTypeSpan
}

// Span returns the location of the entry.
func (root RootOperationTypeDefinition) Span() token.Span {
	return root.record().Span
}

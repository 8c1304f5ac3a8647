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
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
)

// VariableDefinition reads a variable of an operation like "$id: ID! = 1".
type VariableDefinition struct {
	readContext[VariableDefinitionID]
}

// Read returns the reader for the variable definition.
func (id VariableDefinitionID) Read(doc *Document) VariableDefinition {
	return VariableDefinition{readContext[VariableDefinitionID]{doc, id}}
}

func (variable VariableDefinition) record() *VariableDefinitionRecord {
	return variable.doc.variableDefinitions.Lookup(variable.id)
}

// Name returns the name of the variable without "$".
func (variable VariableDefinition) Name() string {
	return variable.doc.lookupString(variable.record().Name)
}

// NameSpan returns the location of the variable including "$".
func (variable VariableDefinition) NameSpan() token.Span {
	return variable.record().NameSpan
}

// Span returns the location of the variable definition.
func (variable VariableDefinition) Span() token.Span {
	return variable.record().Span
}

// Type returns the type of the variable.
func (variable VariableDefinition) Type() Type {
	return variable.record().Type.Read(variable.doc)
}

// DefaultValue returns the default value of the variable if any.
func (variable VariableDefinition) DefaultValue() (values.Value, bool) {
	id := variable.record().DefaultValue
	if id == 0 {
		return nil, false
	}
	return id.Read(variable.doc.values), true
}

// Directives returns the directives applied to the variable.
func (variable VariableDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return variable.doc.readDirectives(variable.record().Directives)
}

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

// Directive reads an applied directive like "@include(if: $cond)".
type Directive struct {
	readContext[DirectiveID]
}

// Read returns the reader for the directive.
func (id DirectiveID) Read(doc *Document) Directive {
	return Directive{readContext[DirectiveID]{doc, id}}
}

func (directive Directive) record() *DirectiveRecord {
	return directive.doc.directives.Lookup(directive.id)
}

// Name returns the name of the directive without "@".
func (directive Directive) Name() string {
	return directive.doc.lookupString(directive.record().Name)
}

// NameSpan returns the location of the name.
func (directive Directive) NameSpan() token.Span {
	return directive.record().NameSpan
}

// Span returns the location of the directive.
func (directive Directive) Span() token.Span {
	return directive.record().Span
}

// Arguments returns the arguments in source order.
func (directive Directive) Arguments() arena.Iter[ArgumentID, Argument] {
	return directive.doc.readArguments(directive.record().Arguments)
}

// Argument returns the value of the argument with the given name.
func (directive Directive) Argument(name string) (values.Value, bool) {
	return findArgument(directive.Arguments(), name)
}

// Argument reads an argument of a field or a directive.
type Argument struct {
	readContext[ArgumentID]
}

// Read returns the reader for the argument.
func (id ArgumentID) Read(doc *Document) Argument {
	return Argument{readContext[ArgumentID]{doc, id}}
}

func (argument Argument) record() *ArgumentRecord {
	return argument.doc.arguments.Lookup(argument.id)
}

// Name returns the name of the argument.
func (argument Argument) Name() string {
	return argument.doc.lookupString(argument.record().Name)
}

// NameSpan returns the location of the name.
func (argument Argument) NameSpan() token.Span {
	return argument.record().NameSpan
}

// Span returns the location of the argument.
func (argument Argument) Span() token.Span {
	return argument.record().Span
}

// Value returns the value of the argument. It may be or contain variables.
func (argument Argument) Value() values.Value {
	return argument.record().Value.Read(argument.doc.values)
}

func findArgument(arguments arena.Iter[ArgumentID, Argument], name string) (values.Value, bool) {
	for argument := range arguments.All() {
		if argument.Name() == name {
			return argument.Value(), true
		}
	}
	return nil, false
}

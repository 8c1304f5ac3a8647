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

// DirectiveDefinition reads a directive definition like "directive @skip(if: Boolean!) on FIELD".
type DirectiveDefinition struct {
	readContext[DirectiveDefinitionID]
}

// Read returns the reader for the directive definition.
func (id DirectiveDefinitionID) Read(doc *Document) DirectiveDefinition {
	return DirectiveDefinition{readContext[DirectiveDefinitionID]{doc, id}}
}

func (directive DirectiveDefinition) record() *DirectiveDefinitionRecord {
	return directive.doc.directiveDefinitions.Lookup(directive.id)
}

// Name returns the name of the directive without the "@".
func (directive DirectiveDefinition) Name() string {
	return directive.doc.lookupString(directive.record().Name)
}

// NameSpan returns the location of the name.
func (directive DirectiveDefinition) NameSpan() token.Span {
	return directive.record().NameSpan
}

// Span returns the location of the definition.
func (directive DirectiveDefinition) Span() token.Span {
	return directive.record().Span
}

// Description returns the description of the directive if any.
func (directive DirectiveDefinition) Description() (Description, bool) {
	return directive.doc.readDescription(directive.record().Description)
}

// Directives always returns an empty sequence: directive definitions can't have directives applied.
func (directive DirectiveDefinition) Directives() arena.Iter[DirectiveID, Directive] {
	return directive.doc.readDirectives(arena.EmptyRange[DirectiveID]())
}

// Arguments returns the argument definitions in source order.
func (directive DirectiveDefinition) Arguments() arena.Iter[InputValueDefinitionID, InputValueDefinition] {
	return directive.doc.readInputValues(directive.record().Arguments)
}

// Argument returns the argument definition with the given name.
func (directive DirectiveDefinition) Argument(name string) (InputValueDefinition, bool) {
	return findInputValue(directive.Arguments(), name)
}

// IsRepeatable returns true if the directive was declared repeatable.
func (directive DirectiveDefinition) IsRepeatable() bool {
	return directive.record().Repeatable
}

// Locations returns the locations the directive may be applied at, in source order.
func (directive DirectiveDefinition) Locations() arena.Iter[DirectiveLocationID, DirectiveLocation] {
	return arena.NewIter(directive.record().Locations, func(id DirectiveLocationID) DirectiveLocation {
		return DirectiveLocation{readContext[DirectiveLocationID]{directive.doc, id}}
	})
}

// HasLocation returns true if the directive may be applied at location.
func (directive DirectiveDefinition) HasLocation(location ast.DirectiveLocation) bool {
	for l := range directive.Locations().All() {
		if l.Location() == location {
			return true
		}
	}
	return false
}

func (DirectiveDefinition) isDefinition() {}

// DirectiveLocation reads a location listed in a directive definition.
type DirectiveLocation struct {
	readContext[DirectiveLocationID]
}

// Location returns the location.
func (location DirectiveLocation) Location() ast.DirectiveLocation {
	return location.doc.directiveLocations.Lookup(location.id).Location
}

// Span returns where the location was written.
func (location DirectiveLocation) Span() token.Span {
	return location.doc.directiveLocations.Lookup(location.id).Span
}

// Directive reads an applied directive like "@deprecated(reason: "no")".
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

// Name returns the name of the directive without the "@".
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
	return arena.NewIter(directive.record().Arguments, func(id ArgumentID) Argument {
		return Argument{readContext[ArgumentID]{directive.doc, id}}
	})
}

// Argument returns the value of the argument with the given name.
func (directive Directive) Argument(name string) (values.Value, bool) {
	for argument := range directive.Arguments().All() {
		if argument.Name() == name {
			return argument.Value(), true
		}
	}
	return nil, false
}

// Argument reads an argument of an applied directive.
type Argument struct {
	readContext[ArgumentID]
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

// Value returns the value of the argument. It never contains variables.
func (argument Argument) Value() values.Value {
	return argument.record().Value.Read(argument.doc.values)
}

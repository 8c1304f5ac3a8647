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

// Package coordinate defines schema coordinates: short strings such as "Query.user(id:)" that
// name a type, a field or enum value, an argument, a directive or a directive argument of a
// schema. Use parser.ParseSchemaCoordinate to read one from text.
//
// Reference: https://spec.graphql.org/September2025/#sec-Schema-Coordinates
package coordinate

import (
	"fmt"

	"github.com/botobag/gqlparse/graphql/token"
)

// SchemaCoordinate is one of Type, Member, Argument, Directive and DirectiveArgument.
type SchemaCoordinate interface {
	fmt.Stringer

	// Span returns the range of the coordinate in the text it was parsed from. Coordinates built
	// with the New functions have empty spans.
	Span() token.Span

	isSchemaCoordinate()
}

var (
	_ SchemaCoordinate = Type{}
	_ SchemaCoordinate = Member{}
	_ SchemaCoordinate = Argument{}
	_ SchemaCoordinate = Directive{}
	_ SchemaCoordinate = DirectiveArgument{}
)

// Name is a name in a schema coordinate together with where it was written.
type Name struct {
	Value string
	Span  token.Span
}

// Type names a named type, like "Query".
type Type struct {
	Name Name
}

// NewType creates a coordinate for the named type.
func NewType(name string) Type {
	return Type{Name{Value: name}}
}

func (Type) isSchemaCoordinate() {}

// Span implements SchemaCoordinate.
func (c Type) Span() token.Span {
	return c.Name.Span
}

func (c Type) String() string {
	return c.Name.Value
}

// Member names a field of an object, interface or input object type, or a value of an enum type,
// like "Query.user".
type Member struct {
	Type Type
	Name Name
}

// NewMember creates a coordinate for a field or an enum value.
func NewMember(typeName, member string) Member {
	return Member{
		Type: NewType(typeName),
		Name: Name{Value: member},
	}
}

func (Member) isSchemaCoordinate() {}

// Span implements SchemaCoordinate.
func (c Member) Span() token.Span {
	return c.Type.Span().Merge(c.Name.Span)
}

func (c Member) String() string {
	return c.Type.String() + "." + c.Name.Value
}

// Argument names an argument of a field, like "Query.user(id:)".
type Argument struct {
	Member Member
	Name   Name

	// End offset of the closing parenthesis
	End int
}

// NewArgument creates a coordinate for a field argument.
func NewArgument(typeName, field, argument string) Argument {
	return Argument{
		Member: NewMember(typeName, field),
		Name:   Name{Value: argument},
	}
}

func (Argument) isSchemaCoordinate() {}

// Span implements SchemaCoordinate.
func (c Argument) Span() token.Span {
	return token.NewSpan(c.Member.Span().Start, c.End)
}

func (c Argument) String() string {
	return c.Member.String() + "(" + c.Name.Value + ":)"
}

// Directive names a directive, like "@deprecated".
type Directive struct {
	Name Name

	// Offset of the "@"
	Start int
}

// NewDirective creates a coordinate for a directive. The name doesn't include the "@".
func NewDirective(name string) Directive {
	return Directive{Name: Name{Value: name}}
}

func (Directive) isSchemaCoordinate() {}

// Span implements SchemaCoordinate.
func (c Directive) Span() token.Span {
	return token.NewSpan(c.Start, c.Name.Span.End)
}

func (c Directive) String() string {
	return "@" + c.Name.Value
}

// DirectiveArgument names an argument of a directive, like "@deprecated(reason:)".
type DirectiveArgument struct {
	Directive Directive
	Name      Name

	// End offset of the closing parenthesis
	End int
}

// NewDirectiveArgument creates a coordinate for a directive argument.
func NewDirectiveArgument(directive, argument string) DirectiveArgument {
	return DirectiveArgument{
		Directive: NewDirective(directive),
		Name:      Name{Value: argument},
	}
}

func (DirectiveArgument) isSchemaCoordinate() {}

// Span implements SchemaCoordinate.
func (c DirectiveArgument) Span() token.Span {
	return token.NewSpan(c.Directive.Start, c.End)
}

func (c DirectiveArgument) String() string {
	return c.Directive.String() + "(" + c.Name.Value + ":)"
}

// Equal returns true if a and b name the same schema element. Spans are ignored.
func Equal(a, b SchemaCoordinate) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.String() == b.String()
}

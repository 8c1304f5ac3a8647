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
	"fmt"

	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
)

// DefinitionKind tells operations and fragments apart.
type DefinitionKind uint8

// Enumeration of DefinitionKind
const (
	DefinitionKindOperation DefinitionKind = iota + 1
	DefinitionKindFragment
)

var _ fmt.Stringer = DefinitionKind(0)

func (kind DefinitionKind) String() string {
	switch kind {
	case DefinitionKindOperation:
		return "operation"
	case DefinitionKindFragment:
		return "fragment"
	}
	return fmt.Sprintf("<unknown definition kind %d>", uint8(kind))
}

// DefinitionRecord locates a top-level definition in the arena of its kind.
type DefinitionRecord struct {
	Kind DefinitionKind
	id   uint32
}

// OperationDefinitionRecord stores a query, a mutation or a subscription.
type OperationDefinitionRecord struct {
	OperationType ast.OperationType

	// Name is zero for an anonymous operation.
	Name     arena.StringID
	NameSpan token.Span

	VariableDefinitions arena.Range[VariableDefinitionID]
	Directives          arena.Range[DirectiveID]
	SelectionSet        arena.Range[SelectionID]
	Span                token.Span
}

// FragmentDefinitionRecord stores a named fragment.
type FragmentDefinitionRecord struct {
	Name              arena.StringID
	NameSpan          token.Span
	TypeCondition     arena.StringID
	TypeConditionSpan token.Span
	Directives        arena.Range[DirectiveID]
	SelectionSet      arena.Range[SelectionID]
	Span              token.Span
}

// SelectionKind describes the kind of a selection.
type SelectionKind uint8

// Enumeration of SelectionKind
const (
	SelectionKindField SelectionKind = iota + 1
	SelectionKindInlineFragment
	SelectionKindFragmentSpread
)

// SelectionRecord is an entry of a selection set. It locates the field, inline fragment or
// fragment spread record in the arena of its kind.
type SelectionRecord struct {
	Kind SelectionKind
	id   uint32
}

// FieldSelectionRecord stores a selected field.
type FieldSelectionRecord struct {
	// Alias is zero when the field isn't aliased.
	Alias     arena.StringID
	AliasSpan token.Span

	Name         arena.StringID
	NameSpan     token.Span
	Arguments    arena.Range[ArgumentID]
	Directives   arena.Range[DirectiveID]
	SelectionSet arena.Range[SelectionID]
	Span         token.Span
}

// InlineFragmentRecord stores an inline fragment.
type InlineFragmentRecord struct {
	// TypeCondition is zero when the fragment has no type condition.
	TypeCondition     arena.StringID
	TypeConditionSpan token.Span

	Directives   arena.Range[DirectiveID]
	SelectionSet arena.Range[SelectionID]
	Span         token.Span
}

// FragmentSpreadRecord stores a fragment spread.
type FragmentSpreadRecord struct {
	FragmentName     arena.StringID
	FragmentNameSpan token.Span
	Directives       arena.Range[DirectiveID]
	Span             token.Span
}

// VariableDefinitionRecord stores a variable of an operation.
type VariableDefinitionRecord struct {
	// Name of the variable without "$"
	Name     arena.StringID
	NameSpan token.Span
	Type     TypeID

	// DefaultValue is zero when there's no default value.
	DefaultValue values.ConstValueID

	Directives arena.Range[DirectiveID]
	Span       token.Span
}

// TypeRecord stores a type reference.
type TypeRecord struct {
	Name     arena.StringID
	NameSpan token.Span
	Wrappers ast.TypeWrappers
	Span     token.Span
}

// DirectiveRecord stores an applied directive.
type DirectiveRecord struct {
	Name      arena.StringID
	NameSpan  token.Span
	Arguments arena.Range[ArgumentID]
	Span      token.Span
}

// ArgumentRecord stores an argument of a field or a directive. Its value may refer to variables.
type ArgumentRecord struct {
	Name     arena.StringID
	NameSpan token.Span
	Value    values.ValueID
	Span     token.Span
}

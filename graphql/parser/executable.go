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

package parser

import (
	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/executable"
	"github.com/botobag/gqlparse/graphql/token"
)

var (
	executableDefinitionStartTokens = append(
		describeKinds(token.KindLeftBrace),
		describeKeywords("query", "mutation", "subscription", "fragment")...)

	selectionStartTokens = describeKinds(token.KindName, token.KindSpread)
)

// executableParser lowers an executable document into an executable.Writer.
type executableParser struct {
	*parser
	w *executable.Writer
}

//	ExecutableDocument ::
//		ExecutableDefinition+
func (p *executableParser) parseDocument() error {
	if p.peek().Kind == token.KindEOF {
		return graphql.NewEmptyExecutableDocumentError()
	}

	for p.peek().Kind != token.KindEOF {
		if isClosingToken(p.peek().Kind) {
			return p.extraToken()
		}
		if err := p.parseDefinition(); err != nil {
			return err
		}
	}

	return nil
}

//	ExecutableDefinition ::
//		OperationDefinition
//		FragmentDefinition
func (p *executableParser) parseDefinition() error {
	tok := p.peek()
	switch tok.Kind {
	case token.KindLeftBrace:
		return p.parseQueryShorthand()

	case token.KindName:
		switch tok.Value {
		case "query", "mutation", "subscription":
			return p.parseOperationDefinition()
		case "fragment":
			return p.parseFragmentDefinition()
		}
	}

	return p.unexpected(executableDefinitionStartTokens...)
}

// Parse a "Query Shorthand" which is a query operation represented in a shorthand form. It only
// specifies a SelectionSet, omitting the query keyword, query name and any others.
//
// For example: "{ field }"
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Operations
func (p *executableParser) parseQueryShorthand() error {
	start := p.peek().Span.Start

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return err
	}

	p.w.OperationDefinition(executable.OperationDefinitionRecord{
		OperationType: ast.OperationTypeQuery,
		SelectionSet:  selectionSet,
		Span:          p.spanFrom(start),
	})
	return nil
}

//	OperationDefinition ::
//		OperationType Name? VariableDefinitions? Directives? SelectionSet
//
//	OperationType : one of
//		query mutation subscription
func (p *executableParser) parseOperationDefinition() error {
	tok := p.peek()
	operationType, ok := ast.LookupOperationType(tok.Value)
	if tok.Kind != token.KindName || !ok {
		return p.unexpected(operationTypeKeywords...)
	}
	if err := p.advance(); err != nil {
		return err
	}

	record := executable.OperationDefinitionRecord{
		OperationType: operationType,
	}

	if p.peek().Kind == token.KindName {
		operationName, err := p.parseName()
		if err != nil {
			return err
		}
		record.Name = operationName.ID
		record.NameSpan = operationName.Span
	}

	var err error
	if record.VariableDefinitions, err = p.parseVariableDefinitions(); err != nil {
		return err
	}

	if record.Directives, err = p.parseOptionalDirectives(false /* isConst */); err != nil {
		return err
	}

	if record.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return err
	}

	record.Span = p.spanFrom(tok.Span.Start)
	p.w.OperationDefinition(record)
	return nil
}

//	VariableDefinitions ::
//		( VariableDefinition+ )
//
// An empty range is returned if the next token isn't "(".
func (p *executableParser) parseVariableDefinitions() (arena.Range[executable.VariableDefinitionID], error) {
	var empty arena.Range[executable.VariableDefinitionID]

	if isOpen, err := p.skip(token.KindLeftParen); err != nil || !isOpen {
		return empty, err
	}

	var records []executable.VariableDefinitionRecord
	for {
		variableDefinition, err := p.parseVariableDefinition()
		if err != nil {
			return empty, err
		}
		records = append(records, variableDefinition)

		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return empty, err
		} else if stop {
			break
		}

		// Continue parsing a VariableDefinition node.
	}

	return p.w.VariableDefinitions(records), nil
}

//	VariableDefinition ::
//		Variable : Type DefaultValue? Directives[Const]?
//
//	DefaultValue ::
//		= Value[Const]
func (p *executableParser) parseVariableDefinition() (executable.VariableDefinitionRecord, error) {
	variable, err := p.parseVariable()
	if err != nil {
		return executable.VariableDefinitionRecord{}, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return executable.VariableDefinitionRecord{}, err
	}

	variableType, err := p.parseTypeID()
	if err != nil {
		return executable.VariableDefinitionRecord{}, err
	}

	record := executable.VariableDefinitionRecord{
		Name:     variable.ID,
		NameSpan: variable.Span,
		Type:     variableType,
	}

	if hasDefault, err := p.skip(token.KindEquals); err != nil {
		return executable.VariableDefinitionRecord{}, err
	} else if hasDefault {
		if record.DefaultValue, err = p.parseConstValueID(); err != nil {
			return executable.VariableDefinitionRecord{}, err
		}
	}

	if record.Directives, err = p.parseOptionalDirectives(true /* isConst */); err != nil {
		return executable.VariableDefinitionRecord{}, err
	}

	record.Span = p.spanFrom(variable.Span.Start)
	return record, nil
}

//	FragmentDefinition ::
//		fragment FragmentName TypeCondition Directives? SelectionSet
func (p *executableParser) parseFragmentDefinition() error {
	start := p.peek().Span.Start
	if err := p.expectKeyword("fragment"); err != nil {
		return err
	}

	fragmentName, err := p.parseFragmentName()
	if err != nil {
		return err
	}

	typeCondition, err := p.parseTypeCondition()
	if err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives(false /* isConst */)
	if err != nil {
		return err
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return err
	}

	p.w.FragmentDefinition(executable.FragmentDefinitionRecord{
		Name:              fragmentName.ID,
		NameSpan:          fragmentName.Span,
		TypeCondition:     typeCondition.ID,
		TypeConditionSpan: typeCondition.Span,
		Directives:        directives,
		SelectionSet:      selectionSet,
		Span:              p.spanFrom(start),
	})
	return nil
}

//	FragmentName ::
//		Name but not on
func (p *executableParser) parseFragmentName() (name, error) {
	if p.peek().IsKeyword("on") {
		return name{}, p.unexpected("fragment name")
	}
	return p.parseName()
}

//	TypeCondition ::
//		on NamedType
func (p *executableParser) parseTypeCondition() (name, error) {
	if err := p.expectKeyword("on"); err != nil {
		return name{}, err
	}
	return p.parseName()
}

//	SelectionSet ::
//		{ Selection+ }
func (p *executableParser) parseSelectionSet() (arena.Range[executable.SelectionID], error) {
	var empty arena.Range[executable.SelectionID]

	if err := p.enter("selection set"); err != nil {
		return empty, err
	}
	defer p.leave()

	// Expect {.
	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return empty, err
	}

	var selections []executable.SelectionRecord
	for {
		selection, err := p.parseSelection()
		if err != nil {
			return empty, err
		}
		selections = append(selections, selection)

		// Stop on } token.
		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return empty, err
		} else if stop {
			break
		}
	}

	return p.w.Selections(selections), nil
}

//	Selection ::
//		Field
//		FragmentSpread
//		InlineFragment
//
//	FragmentSpread ::
//		... FragmentName Directives?
//
//	InlineFragment ::
//		... TypeCondition? Directives? SelectionSet
func (p *executableParser) parseSelection() (executable.SelectionRecord, error) {
	switch tok := p.peek(); tok.Kind {
	case token.KindSpread:
		// Both FragmentSpread and InlineFragment start with "...".
		if err := p.advance(); err != nil {
			return executable.SelectionRecord{}, err
		}

		// Peek the next token to determine which rule should we go.
		if next := p.peek(); next.Kind != token.KindName || next.Value == "on" {
			// Must be a InlineFragment.
			return p.parseInlineFragment(tok.Span.Start)
		}
		return p.parseFragmentSpread(tok.Span.Start)

	case token.KindName:
		return p.parseField()
	}

	return executable.SelectionRecord{}, p.unexpected(selectionStartTokens...)
}

//	Field ::
//		Alias? Name Arguments? Directives? SelectionSet?
//
//	Alias ::
//		Name :
func (p *executableParser) parseField() (executable.SelectionRecord, error) {
	nameOrAlias, err := p.parseName()
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	var record executable.FieldSelectionRecord

	hasColon, err := p.skip(token.KindColon)
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	if !hasColon {
		record.Name = nameOrAlias.ID
		record.NameSpan = nameOrAlias.Span
	} else {
		record.Alias = nameOrAlias.ID
		record.AliasSpan = nameOrAlias.Span

		fieldName, err := p.parseName()
		if err != nil {
			return executable.SelectionRecord{}, err
		}
		record.Name = fieldName.ID
		record.NameSpan = fieldName.Span
	}

	if p.peek().Kind == token.KindLeftParen {
		if record.Arguments, err = p.parseArguments(false /* isConst */); err != nil {
			return executable.SelectionRecord{}, err
		}
	}

	if record.Directives, err = p.parseOptionalDirectives(false /* isConst */); err != nil {
		return executable.SelectionRecord{}, err
	}

	if p.peek().Kind == token.KindLeftBrace {
		if record.SelectionSet, err = p.parseSelectionSet(); err != nil {
			return executable.SelectionRecord{}, err
		}
	}

	record.Span = p.spanFrom(nameOrAlias.Span.Start)
	return p.w.FieldSelection(record), nil
}

//	FragmentSpread
//		... FragmentName Directives?
//
// Note that this function assumes "..." has been consumed (see parseSelection, it needs a lookahead
// for distinguish between InlineFragment.)
func (p *executableParser) parseFragmentSpread(start int) (executable.SelectionRecord, error) {
	fragmentName, err := p.parseFragmentName()
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	directives, err := p.parseOptionalDirectives(false /* isConst */)
	if err != nil {
		return executable.SelectionRecord{}, err
	}

	return p.w.FragmentSpread(executable.FragmentSpreadRecord{
		FragmentName:     fragmentName.ID,
		FragmentNameSpan: fragmentName.Span,
		Directives:       directives,
		Span:             p.spanFrom(start),
	}), nil
}

//	InlineFragment
//		... TypeCondition? Directives? SelectionSet
//
// Like parseFragmentSpread, "..." has been consumed.
func (p *executableParser) parseInlineFragment(start int) (executable.SelectionRecord, error) {
	var (
		record executable.InlineFragmentRecord
		err    error
	)

	if p.peek().IsKeyword("on") {
		typeCondition, err := p.parseTypeCondition()
		if err != nil {
			return executable.SelectionRecord{}, err
		}
		record.TypeCondition = typeCondition.ID
		record.TypeConditionSpan = typeCondition.Span
	}

	if record.Directives, err = p.parseOptionalDirectives(false /* isConst */); err != nil {
		return executable.SelectionRecord{}, err
	}

	if record.SelectionSet, err = p.parseSelectionSet(); err != nil {
		return executable.SelectionRecord{}, err
	}

	record.Span = p.spanFrom(start)
	return p.w.InlineFragment(record), nil
}

// parseTypeID parses a type and stores it.
func (p *executableParser) parseTypeID() (executable.TypeID, error) {
	t, err := p.parseType()
	if err != nil {
		return 0, err
	}
	return p.w.Type(executable.TypeRecord{
		Name:     t.name.ID,
		NameSpan: t.name.Span,
		Wrappers: t.wrappers,
		Span:     t.span,
	}), nil
}

//	Directives[Const] ::
//		Directive[?Const]+
//
// An empty range is returned if the next token isn't "@".
func (p *executableParser) parseOptionalDirectives(isConst bool) (arena.Range[executable.DirectiveID], error) {
	var records []executable.DirectiveRecord
	for p.peek().Kind == token.KindAt {
		directive, err := p.parseDirective(isConst)
		if err != nil {
			return arena.Range[executable.DirectiveID]{}, err
		}
		records = append(records, directive)
	}
	if len(records) == 0 {
		return arena.Range[executable.DirectiveID]{}, nil
	}
	return p.w.Directives(records), nil
}

//	Directive[Const] ::
//		@ Name Arguments[?Const]?
func (p *executableParser) parseDirective(isConst bool) (executable.DirectiveRecord, error) {
	at, err := p.expect(token.KindAt)
	if err != nil {
		return executable.DirectiveRecord{}, err
	}

	directiveName, err := p.parseName()
	if err != nil {
		return executable.DirectiveRecord{}, err
	}

	var arguments arena.Range[executable.ArgumentID]
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArguments(isConst); err != nil {
			return executable.DirectiveRecord{}, err
		}
	}

	return executable.DirectiveRecord{
		Name:      directiveName.ID,
		NameSpan:  directiveName.Span,
		Arguments: arguments,
		Span:      p.spanFrom(at.Span.Start),
	}, nil
}

//	Arguments[Const] ::
//		( Argument[?Const]+ )
//
//	Argument[Const] ::
//		Name : Value[?Const]
func (p *executableParser) parseArguments(isConst bool) (arena.Range[executable.ArgumentID], error) {
	var empty arena.Range[executable.ArgumentID]

	if _, err := p.expect(token.KindLeftParen); err != nil {
		return empty, err
	}

	var records []executable.ArgumentRecord
	for {
		argumentName, err := p.parseName()
		if err != nil {
			return empty, err
		}

		if _, err := p.expect(token.KindColon); err != nil {
			return empty, err
		}

		record := executable.ArgumentRecord{
			Name:     argumentName.ID,
			NameSpan: argumentName.Span,
		}

		if isConst {
			value, err := p.parseConstValueID()
			if err != nil {
				return empty, err
			}
			record.Value = value.Value()
		} else if record.Value, err = p.parseValueID(); err != nil {
			return empty, err
		}

		record.Span = p.spanFrom(argumentName.Span.Start)
		records = append(records, record)

		// Stop on ) token.
		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return empty, err
		} else if stop {
			break
		}
	}

	return p.w.Arguments(records), nil
}

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
	"github.com/botobag/gqlparse/graphql/internal/literal"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/values"
)

var valueStartTokens = describeKinds(
	token.KindDollar,
	token.KindInt,
	token.KindFloat,
	token.KindString,
	token.KindBlockString,
	token.KindName,
	token.KindLeftBracket,
	token.KindLeftBrace,
)

var constValueStartTokens = valueStartTokens[1:]

// parseValueID parses a value and stores it.
func (p *parser) parseValueID() (values.ValueID, error) {
	record, err := p.parseValue(false /* isConst */)
	if err != nil {
		return 0, err
	}
	return p.store.AppendValue(record), nil
}

// parseConstValueID parses a value in a const position and stores it.
func (p *parser) parseConstValueID() (values.ConstValueID, error) {
	record, err := p.parseValue(true /* isConst */)
	if err != nil {
		return 0, err
	}
	return p.store.AppendConstValue(record), nil
}

// parseValue returns the record of a value without storing it, so that the items of a list can be
// stored contiguously. Nested items and fields are stored.
//
//	Value[Const] ::
//		[~Const] Variable
//		IntValue
//		FloatValue
//		StringValue
//		BooleanValue
//		NullValue
//		EnumValue
//		ListValue[?Const]
//		ObjectValue[?Const]
//
//	BooleanValue ::
//		true or false
//
//	NullValue ::
//		null
//
//	EnumValue ::
//		Name but not true or false or null
func (p *parser) parseValue(isConst bool) (values.ValueRecord, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KindDollar:
		variable, err := p.parseVariable()
		if err != nil {
			return values.ValueRecord{}, err
		}
		if isConst {
			return values.ValueRecord{}, graphql.NewVariableInConstPositionError(
				p.source, variable.Span, p.store.LookupString(variable.ID))
		}
		return values.ValueRecord{
			Kind: values.KindVariable,
			Span: variable.Span,
			Text: variable.ID,
		}, nil

	case token.KindInt, token.KindFloat:
		if err := p.advance(); err != nil {
			return values.ValueRecord{}, err
		}
		kind := values.KindInt
		if tok.Kind == token.KindFloat {
			kind = values.KindFloat
		}
		return values.ValueRecord{
			Kind: kind,
			Span: tok.Span,
			Text: p.store.Intern(tok.Value),
		}, nil

	case token.KindString, token.KindBlockString:
		return p.parseStringValue()

	case token.KindName:
		if err := p.advance(); err != nil {
			return values.ValueRecord{}, err
		}

		switch tok.Value {
		case "true", "false":
			return values.ValueRecord{
				Kind:    values.KindBoolean,
				Span:    tok.Span,
				Boolean: tok.Value == "true",
			}, nil

		case "null":
			return values.ValueRecord{
				Kind: values.KindNull,
				Span: tok.Span,
			}, nil

		default:
			return values.ValueRecord{
				Kind: values.KindEnum,
				Span: tok.Span,
				Text: p.store.Intern(tok.Value),
			}, nil
		}

	case token.KindLeftBracket:
		return p.parseListValue(isConst)

	case token.KindLeftBrace:
		return p.parseObjectValue(isConst)
	}

	if isConst {
		return values.ValueRecord{}, p.unexpected(constValueStartTokens...)
	}
	return values.ValueRecord{}, p.unexpected(valueStartTokens...)
}

// parseStringValue reads a string or a block string literal. Block strings are kept raw.
func (p *parser) parseStringValue() (values.ValueRecord, error) {
	tok := p.peek()
	lit, err := p.parseStringLiteral()
	if err != nil {
		return values.ValueRecord{}, err
	}
	return values.ValueRecord{
		Kind:        values.KindString,
		Span:        tok.Span,
		Text:        lit.text,
		BlockString: lit.blockString,
	}, nil
}

// stringLiteral is a string literal in the form it is stored: either interned decoded text or the
// raw text of a block string.
type stringLiteral struct {
	text        arena.StringID
	blockString values.BlockStringID
	span        token.Span
}

func (p *parser) parseStringLiteral() (stringLiteral, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KindString:
		value, err := literal.StringValue(tok.Value)
		if err != nil {
			return stringLiteral{}, graphql.NewMalformedStringLiteralError(p.source, tok.Span, err)
		}
		if err := p.advance(); err != nil {
			return stringLiteral{}, err
		}
		return stringLiteral{
			text: p.store.Intern(value),
			span: tok.Span,
		}, nil

	case token.KindBlockString:
		if err := p.advance(); err != nil {
			return stringLiteral{}, err
		}
		raw := tok.Value[len(`"""`) : len(tok.Value)-len(`"""`)]
		return stringLiteral{
			blockString: p.store.AppendBlockString(raw),
			span:        tok.Span,
		}, nil
	}
	return stringLiteral{}, p.unexpected(describeKinds(token.KindString, token.KindBlockString)...)
}

//	ListValue[Const] ::
//		[ ]
//		[ Value[?Const]+ ]
func (p *parser) parseListValue(isConst bool) (values.ValueRecord, error) {
	if err := p.enter("list value"); err != nil {
		return values.ValueRecord{}, err
	}
	defer p.leave()

	startToken, err := p.expect(token.KindLeftBracket)
	if err != nil {
		return values.ValueRecord{}, err
	}

	var items []values.ValueRecord
	for {
		// Stop on ] token.
		stop, err := p.skip(token.KindRightBracket)
		if err != nil {
			return values.ValueRecord{}, err
		}
		if stop {
			break
		}

		item, err := p.parseValue(isConst)
		if err != nil {
			return values.ValueRecord{}, err
		}
		items = append(items, item)
	}

	return values.ValueRecord{
		Kind:  values.KindList,
		Span:  p.spanFrom(startToken.Span.Start),
		Items: p.store.AppendValues(items),
	}, nil
}

//	ObjectValue[Const] ::
//		{ }
//		{ ObjectField[?Const]+ }
func (p *parser) parseObjectValue(isConst bool) (values.ValueRecord, error) {
	if err := p.enter("object value"); err != nil {
		return values.ValueRecord{}, err
	}
	defer p.leave()

	startToken, err := p.expect(token.KindLeftBrace)
	if err != nil {
		return values.ValueRecord{}, err
	}

	var fields []values.FieldRecord
	for {
		// Stop on } token.
		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return values.ValueRecord{}, err
		}
		if stop {
			break
		}

		// Parse an ObjectField.
		field, err := p.parseObjectField(isConst)
		if err != nil {
			return values.ValueRecord{}, err
		}
		fields = append(fields, field)
	}

	return values.ValueRecord{
		Kind:   values.KindObject,
		Span:   p.spanFrom(startToken.Span.Start),
		Fields: p.store.AppendFields(fields),
	}, nil
}

//	ObjectField[Const] ::
//		Name : Value[?Const]
func (p *parser) parseObjectField(isConst bool) (values.FieldRecord, error) {
	fieldName, err := p.parseName()
	if err != nil {
		return values.FieldRecord{}, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return values.FieldRecord{}, err
	}

	value, err := p.parseValue(isConst)
	if err != nil {
		return values.FieldRecord{}, err
	}

	return values.FieldRecord{
		Name:     fieldName.ID,
		NameSpan: fieldName.Span,
		Value:    p.store.AppendValue(value),
		Span:     p.spanFrom(fieldName.Span.Start),
	}, nil
}

// parseVariable returns the name of a variable with the span covering the "$".
//
//	Variable ::
//		$ Name
func (p *parser) parseVariable() (name, error) {
	dollar, err := p.expect(token.KindDollar)
	if err != nil {
		return name{}, err
	}

	variableName, err := p.parseName()
	if err != nil {
		return name{}, err
	}

	return name{
		ID:   variableName.ID,
		Span: p.spanFrom(dollar.Span.Start),
	}, nil
}

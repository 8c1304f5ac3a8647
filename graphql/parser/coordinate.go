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
	"github.com/botobag/gqlparse/graphql/coordinate"
	"github.com/botobag/gqlparse/graphql/lexer"
	"github.com/botobag/gqlparse/graphql/token"
)

// ParseSchemaCoordinate parses a schema coordinate, like "Query.user(id:)" or
// "@deprecated(reason:)". Whitespace and comments between the parts are allowed.
//
// Reference: https://spec.graphql.org/September2025/#sec-Schema-Coordinates
func ParseSchemaCoordinate(text string, opts ...Option) (coordinate.SchemaCoordinate, error) {
	p, err := newParserWithLexer(lexer.NewSchemaCoordinate(text), nil, opts)
	if err != nil {
		return nil, err
	}

	if p.peek().Kind == token.KindEOF {
		return nil, graphql.NewEmptySchemaCoordinateError()
	}

	c, err := (&coordinateParser{p}).parseSchemaCoordinate()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return c, nil
}

type coordinateParser struct {
	*parser
}

// SchemaCoordinate :
//   - TypeCoordinate
//   - MemberCoordinate
//   - ArgumentCoordinate
//   - DirectiveCoordinate
//   - DirectiveArgumentCoordinate
func (p *coordinateParser) parseSchemaCoordinate() (coordinate.SchemaCoordinate, error) {
	if p.peek().Kind == token.KindAt {
		return p.parseDirectiveCoordinate()
	}

	if p.peek().Kind != token.KindName {
		return nil, p.unexpected(describeKinds(token.KindAt, token.KindName)...)
	}

	// TypeCoordinate : Name
	typeName, err := p.parseCoordinateName()
	if err != nil {
		return nil, err
	}
	ty := coordinate.Type{Name: typeName}

	if done, err := p.atEndOr(token.KindDot); done || err != nil {
		return ty, err
	}

	// MemberCoordinate : Name . Name
	if _, err := p.expect(token.KindDot); err != nil {
		return nil, err
	}
	memberName, err := p.parseCoordinateName()
	if err != nil {
		return nil, err
	}
	member := coordinate.Member{Type: ty, Name: memberName}

	if done, err := p.atEndOr(token.KindLeftParen); done || err != nil {
		return member, err
	}

	// ArgumentCoordinate : Name . Name ( Name : )
	argumentName, end, err := p.parseArgumentCoordinate()
	if err != nil {
		return nil, err
	}
	return coordinate.Argument{Member: member, Name: argumentName, End: end}, nil
}

// DirectiveCoordinate : @ Name
// DirectiveArgumentCoordinate : @ Name ( Name : )
func (p *coordinateParser) parseDirectiveCoordinate() (coordinate.SchemaCoordinate, error) {
	at, err := p.expect(token.KindAt)
	if err != nil {
		return nil, err
	}
	name, err := p.parseCoordinateName()
	if err != nil {
		return nil, err
	}
	directive := coordinate.Directive{Name: name, Start: at.Span.Start}

	if done, err := p.atEndOr(token.KindLeftParen); done || err != nil {
		return directive, err
	}

	argumentName, end, err := p.parseArgumentCoordinate()
	if err != nil {
		return nil, err
	}
	return coordinate.DirectiveArgument{Directive: directive, Name: argumentName, End: end}, nil
}

// Parses "( Name : )" and returns the name and the end offset of the closing parenthesis.
func (p *coordinateParser) parseArgumentCoordinate() (coordinate.Name, int, error) {
	if _, err := p.expect(token.KindLeftParen); err != nil {
		return coordinate.Name{}, 0, err
	}
	name, err := p.parseCoordinateName()
	if err != nil {
		return coordinate.Name{}, 0, err
	}
	if _, err := p.expect(token.KindColon); err != nil {
		return coordinate.Name{}, 0, err
	}
	closing, err := p.expect(token.KindRightParen)
	if err != nil {
		return coordinate.Name{}, 0, err
	}
	return name, closing.Span.End, nil
}

func (p *coordinateParser) parseCoordinateName() (coordinate.Name, error) {
	tok, err := p.expect(token.KindName)
	if err != nil {
		return coordinate.Name{}, err
	}
	return coordinate.Name{Value: tok.Value, Span: tok.Span}, nil
}

// atEndOr returns true when the input ends at the current token. Otherwise the current token must
// be of the given kind, the only one that can continue the coordinate.
func (p *coordinateParser) atEndOr(kind token.Kind) (bool, error) {
	switch p.peek().Kind {
	case token.KindEOF:
		return true, nil
	case kind:
		return false, nil
	}
	return false, p.unexpected(kind.Description())
}

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
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
)

// typeReference is a parsed type in the form shared by the TypeRecord of both document kinds.
type typeReference struct {
	name     name
	wrappers ast.TypeWrappers
	span     token.Span
}

//	Type ::
//		NamedType
//		ListType
//		NonNullType
//
//	NamedType ::
//		Name
//
//	ListType ::
//		[ Type ]
//
//	NonNullType ::
//		NamedType !
//		ListType !
func (p *parser) parseType() (typeReference, error) {
	start := p.peek().Span.Start

	// See how many level are the innermost named type nested in the list.
	listLevel := 0
	for {
		isOpeningList, err := p.skip(token.KindLeftBracket)
		if err != nil {
			return typeReference{}, err
		} else if !isOpeningList {
			break
		}
		listLevel++
		if listLevel > ast.MaxTypeWrappers {
			return typeReference{}, graphql.NewRecursionLimitError(p.source, p.spanFrom(start), "list type")
		}
	}

	// Must be a Name.
	namedType, err := p.parseName()
	if err != nil {
		return typeReference{}, err
	}

	// Wrap from the innermost named type outward.
	var wrappers ast.TypeWrappers
	wrap := func(t ast.WrappingType) error {
		var ok bool
		if wrappers, ok = wrappers.Wrap(t); !ok {
			return graphql.NewRecursionLimitError(p.source, p.spanFrom(start), "list type")
		}
		return nil
	}

	for {
		isNonNull, err := p.skip(token.KindBang)
		if err != nil {
			return typeReference{}, err
		} else if isNonNull {
			if err := wrap(ast.WrappingTypeNonNull); err != nil {
				return typeReference{}, err
			}
		}

		if listLevel == 0 {
			break
		}

		if _, err := p.expect(token.KindRightBracket); err != nil {
			return typeReference{}, err
		}
		if err := wrap(ast.WrappingTypeList); err != nil {
			return typeReference{}, err
		}
		listLevel--
	}

	return typeReference{
		name:     namedType,
		wrappers: wrappers,
		span:     p.spanFrom(start),
	}, nil
}

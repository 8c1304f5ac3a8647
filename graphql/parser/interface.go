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

// Package parser implements a recursive-descent parser for GraphQL type system documents (SDL) and
// executable documents. The parser doesn't build a tree: it appends records to the arenas of a
// typesystem.Document or an executable.Document as it goes. Parsing stops at the first error,
// which is always a *graphql.Error.
package parser

import (
	"github.com/botobag/gqlparse/graphql/executable"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/typesystem"
	"github.com/botobag/gqlparse/graphql/values"
)

// ParseTypeSystemDocument parses a type system document, like a schema written in SDL.
func ParseTypeSystemDocument(text string, opts ...Option) (*typesystem.Document, error) {
	w := typesystem.NewWriter()
	p, err := newParser(text, w.Values(), opts)
	if err != nil {
		return nil, err
	}

	if err := (&typeSystemParser{p, w}).parseDocument(); err != nil {
		return nil, err
	}

	return w.Finish(), nil
}

// ParseExecutableDocument parses an executable document made of operations and fragments.
func ParseExecutableDocument(text string, opts ...Option) (*executable.Document, error) {
	w := executable.NewWriter()
	p, err := newParser(text, w.Values(), opts)
	if err != nil {
		return nil, err
	}
	p.executable = true

	if err := (&executableParser{p, w}).parseDocument(); err != nil {
		return nil, err
	}

	return w.Finish(), nil
}

// ParseValue parses a string containing a GraphQL value (e.g., `[42]`). The value may refer to
// variables.
func ParseValue(text string, opts ...Option) (values.Value, error) {
	store := values.NewStore()
	p, err := newParser(text, store, opts)
	if err != nil {
		return nil, err
	}

	id, err := p.parseValueID()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return id.Read(store), nil
}

// ParseConstValue parses a string containing a GraphQL value that doesn't refer to variables, like
// the default value of an argument.
func ParseConstValue(text string, opts ...Option) (values.Value, error) {
	store := values.NewStore()
	p, err := newParser(text, store, opts)
	if err != nil {
		return nil, err
	}

	id, err := p.parseConstValueID()
	if err != nil {
		return nil, err
	}

	if err := p.expectEOF(); err != nil {
		return nil, err
	}

	return id.Read(store), nil
}

// ParseType parses a string containing a GraphQL type reference (e.g., `[Int!]`). The returned
// reader belongs to a type system document holding nothing but the type.
func ParseType(text string, opts ...Option) (typesystem.Type, error) {
	w := typesystem.NewWriter()
	p, err := newParser(text, w.Values(), opts)
	if err != nil {
		return typesystem.Type{}, err
	}

	id, err := (&typeSystemParser{p, w}).parseTypeID()
	if err != nil {
		return typesystem.Type{}, err
	}

	if err := p.expectEOF(); err != nil {
		return typesystem.Type{}, err
	}

	return id.Read(w.Finish()), nil
}

// expectEOF returns an error if any token remains.
func (p *parser) expectEOF() error {
	if p.peek().Kind != token.KindEOF {
		return p.extraToken()
	}
	return nil
}

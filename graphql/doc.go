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

// Package graphql holds the error type shared by the GraphQL parsers in its subpackages.
//
// Documents are parsed by package parser into one of two document kinds: a type system document
// (package typesystem) describing a schema in SDL, or an executable document (package executable)
// holding operations and fragments. Both store their nodes in flat arenas (package arena) and hand
// out small reader values that refer to nodes by ID. Input values shared by both kinds live in
// package values. Package parser also reads schema coordinates like "Query.user(id:)" into the
// values of package coordinate.
//
// A parse stops at the first problem and returns an *Error. Error.Kind classifies the failure and
// Error.ToReport renders it against the source text:
//
//	Error: unexpected closing brace ('}')
//	   ╭─[GraphQL request:1:12]
//	   │
//	 1 │ type Blah {}
//	   │            ^ didn't expect to see this
//	   │
//	   │ Note: expected one of string literal, block string, name
//	───╯
package graphql

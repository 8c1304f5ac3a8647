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

// DefaultMaxDepth is the default limit on the nesting of selection sets, list values and object
// values.
const DefaultMaxDepth = 128

// Option configures the parser.
type Option func(*options)

// options contains configuration options to control parser behavior.
type options struct {
	maxDepth   int
	sourceName string
}

func newOptions(opts []Option) options {
	options := options{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// WithMaxDepth limits how deeply selection sets, list values and object values may nest. Parsing
// input that nests deeper fails with an error of kind graphql.ErrKindRecursionLimit. A depth less
// than 1 is treated as 1.
func WithMaxDepth(depth int) Option {
	return func(options *options) {
		if depth < 1 {
			depth = 1
		}
		options.maxDepth = depth
	}
}

// WithSourceName sets the name of the parsed text, like a file name. It is recorded in errors. The
// default is "GraphQL request".
func WithSourceName(name string) Option {
	return func(options *options) {
		options.sourceName = name
	}
}

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

// Package iterator documents the iteration conventions used across the module.
//
// Two kinds of iteration appear. Collections that are cheap to re-derive, such as the children of
// a definition stored as an ID range in a document arena, expose Go 1.23 range functions
// (iter.Seq) together with Len and At so that callers can loop over them as often as they like:
//
//	for field := range object.Fields().All() {
//		...
//	}
//
// Stateful streams that can fail part way through, like the token stream of the lexer, follow the
// Iterator Guidelines established for Google Cloud Client Libraries for Go [0] instead. Such an
// iterator has a single method Next that returns the next element and an error. The special error
// Done marks the end of the stream:
//
//	iter := lexer.Tokenize(source)
//	for {
//		tok, err := iter.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			handleError(err)
//		}
//		process(tok)
//	}
//
// A stream that returned an error other than Done is finished; subsequent calls return Done.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator

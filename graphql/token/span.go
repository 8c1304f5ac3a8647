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

package token

import "fmt"

// Span identifies a region of a source text as a half-open range [Start, End) of byte offsets.
// Every definition, directive, argument and type reference in a document carries one so that
// diagnostics can point at it.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a Span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered by the span. Inverted spans have no length.
func (span Span) Len() int {
	if span.End < span.Start {
		return 0
	}
	return span.End - span.Start
}

// IsEmpty returns true if the span covers no byte. This includes zero-length and inverted spans.
func (span Span) IsEmpty() bool {
	return span.Start >= span.End
}

// Overlaps returns true if both spans are non-empty and share at least one byte. The relation is
// symmetric and a zero-length or inverted span never overlaps anything, not even itself.
func (span Span) Overlaps(other Span) bool {
	if span.IsEmpty() || other.IsEmpty() {
		return false
	}
	return span.Start < other.End && other.Start < span.End
}

// Contains returns true if the byte at the given offset lies within the span.
func (span Span) Contains(offset int) bool {
	return span.Start <= offset && offset < span.End
}

// Merge returns the smallest span covering both spans.
func (span Span) Merge(other Span) Span {
	result := span
	if other.Start < result.Start {
		result.Start = other.Start
	}
	if other.End > result.End {
		result.End = other.End
	}
	return result
}

var _ fmt.Stringer = Span{}

// String implements fmt.Stringer.
func (span Span) String() string {
	return fmt.Sprintf("%d..%d", span.Start, span.End)
}

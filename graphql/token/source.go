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

import (
	"sort"
)

// DefaultSourceName is the name given to a Source that isn't named.
const DefaultSourceName = "GraphQL request"

// SourceLocationInfo describes a byte offset in a Source as source name, line and column number.
// Line and column are both 1-based. Column counts bytes.
type SourceLocationInfo struct {
	Name   string
	Line   int
	Column int
}

// Source represents a GraphQL source text together with a table of line starts so that offsets
// in spans can be mapped back to lines and columns.
type Source struct {
	name       string
	body       string
	lineStarts []int
}

// NewSource initializes a Source for the given text. An empty name is replaced by
// DefaultSourceName.
func NewSource(name string, body string) *Source {
	if len(name) == 0 {
		name = DefaultSourceName
	}

	lineStarts := []int{0}
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '\r':
			// "\r\n" is a single line terminator.
			if i+1 < len(body) && body[i+1] == '\n' {
				i++
			}
			lineStarts = append(lineStarts, i+1)
		case '\n':
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &Source{
		name:       name,
		body:       body,
		lineStarts: lineStarts,
	}
}

// Name returns the name of the source.
func (source *Source) Name() string {
	return source.name
}

// Body returns the source text.
func (source *Source) Body() string {
	return source.body
}

// Slice returns the text covered by the span. Out-of-range bounds are clamped.
func (source *Source) Slice(span Span) string {
	start, end := source.clamp(span.Start), source.clamp(span.End)
	if end < start {
		return ""
	}
	return source.body[start:end]
}

// NumLines returns the number of lines in the source.
func (source *Source) NumLines() int {
	return len(source.lineStarts)
}

// Line returns the text of the given 1-based line without its line terminator.
func (source *Source) Line(line int) string {
	if line < 1 || line > len(source.lineStarts) {
		return ""
	}
	start := source.lineStarts[line-1]
	end := len(source.body)
	if line < len(source.lineStarts) {
		end = source.lineStarts[line]
	}
	for end > start && (source.body[end-1] == '\n' || source.body[end-1] == '\r') {
		end--
	}
	return source.body[start:end]
}

// LineStart returns the byte offset at which the given 1-based line starts.
func (source *Source) LineStart(line int) int {
	if line < 1 {
		return 0
	}
	if line > len(source.lineStarts) {
		return len(source.body)
	}
	return source.lineStarts[line-1]
}

// LocationInfoOf computes the line and column of the given byte offset. Offsets past the end of
// the body are clamped to the end.
func (source *Source) LocationInfoOf(offset int) SourceLocationInfo {
	offset = source.clamp(offset)

	// Index of the first line starting after offset.
	line := sort.Search(len(source.lineStarts), func(i int) bool {
		return source.lineStarts[i] > offset
	})

	return SourceLocationInfo{
		Name:   source.name,
		Line:   line,
		Column: offset - source.lineStarts[line-1] + 1,
	}
}

func (source *Source) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(source.body) {
		return len(source.body)
	}
	return offset
}

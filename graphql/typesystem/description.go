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

package typesystem

import (
	"github.com/botobag/gqlparse/graphql/internal/literal"
	"github.com/botobag/gqlparse/graphql/internal/printer"
	"github.com/botobag/gqlparse/graphql/token"
)

// Description reads the string literal describing a definition.
type Description struct {
	readContext[DescriptionID]
}

func (description Description) record() *DescriptionRecord {
	return description.doc.descriptions.Lookup(description.id)
}

// Span returns the location of the literal including its quotes.
func (description Description) Span() token.Span {
	return description.record().Span
}

// IsBlockString returns true if the description was written as a block string.
func (description Description) IsBlockString() bool {
	return description.record().BlockString != 0
}

// Value returns the text of the description. Block strings are trimmed as described in
// https://spec.graphql.org/October2021/#BlockStringValue() on every call.
func (description Description) Value() string {
	record := description.record()
	if record.BlockString != 0 {
		return literal.BlockStringValue(description.doc.values.LookupBlockString(record.BlockString))
	}
	return description.doc.lookupString(record.Text)
}

// Raw returns the text between the triple quotes of a block string, or the decoded text of an
// ordinary string.
func (description Description) Raw() string {
	record := description.record()
	if record.BlockString != 0 {
		return description.doc.values.LookupBlockString(record.BlockString)
	}
	return description.doc.lookupString(record.Text)
}

// String returns the literal as it would be printed.
func (description Description) String() string {
	var w printer.Writer
	writeDescriptionLiteral(&w, description)
	return w.String()
}

func writeDescriptionLiteral(w *printer.Writer, description Description) {
	if description.IsBlockString() {
		w.WriteBlockString(description.Raw())
	} else {
		w.WriteQuoted(description.Raw())
	}
}

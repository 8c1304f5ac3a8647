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

// Package printer provides the indentation-aware text writer shared by the document printers.
package printer

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// GraphQL string values use the same escapes as JSON strings. HTML escaping is turned off so that
// characters like "<" and "&" print as themselves.
var jsonConfig = jsoniter.Config{
	EscapeHTML: false,
}.Froze()

// Writer accumulates printed text. Nested blocks are indented by two spaces per level.
type Writer struct {
	buf         strings.Builder
	indentLevel int
}

// WriteString appends s verbatim.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) error {
	return w.buf.WriteByte(b)
}

// WriteQuoted appends s as a double-quoted string literal, escaping it like JSON.stringify does.
func (w *Writer) WriteQuoted(s string) {
	stream := jsonConfig.BorrowStream(nil)
	stream.WriteString(s)
	w.buf.Write(stream.Buffer())
	jsonConfig.ReturnStream(stream)
}

// WriteBlockString appends a block string with the given raw text between its triple quotes.
func (w *Writer) WriteBlockString(raw string) {
	w.buf.WriteString(`"""`)
	w.buf.WriteString(raw)
	w.buf.WriteString(`"""`)
}

// BeginBlock opens a brace-delimited block and increases the indentation.
func (w *Writer) BeginBlock() {
	w.buf.WriteString("{")
	w.indentLevel++
}

// EndBlock decreases the indentation and closes the block on a line of its own.
func (w *Writer) EndBlock() {
	w.indentLevel--
	w.NewLine()
	w.buf.WriteString("}")
}

// NewLine starts a new line at the current indentation.
func (w *Writer) NewLine() {
	w.buf.WriteString("\n")
	for i := 0; i < w.indentLevel; i++ {
		w.buf.WriteString("  ")
	}
}

// BlankLine inserts an empty line and starts a new line at the current indentation.
func (w *Writer) BlankLine() {
	w.buf.WriteString("\n")
	w.NewLine()
}

// Indent increases the indentation of subsequent lines.
func (w *Writer) Indent() {
	w.indentLevel++
}

// Dedent decreases the indentation of subsequent lines.
func (w *Writer) Dedent() {
	w.indentLevel--
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// String returns the accumulated text.
func (w *Writer) String() string {
	return w.buf.String()
}

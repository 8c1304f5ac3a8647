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

package values

import (
	"github.com/botobag/gqlparse/graphql/internal/printer"
)

// Write prints value as GraphQL source: lists as [a, b], objects as { a: b } and strings with
// JSON-style escapes. Block strings keep their raw text.
func Write(w *printer.Writer, value Value) {
	switch value := value.(type) {
	case StringValue:
		if value.IsBlockString() {
			w.WriteBlockString(value.Raw())
		} else {
			w.WriteQuoted(value.Value())
		}

	case ListValue:
		w.WriteString("[")
		for i := 0; i < value.Len(); i++ {
			if i > 0 {
				w.WriteString(", ")
			}
			Write(w, value.Items().At(i))
		}
		w.WriteString("]")

	case ObjectValue:
		fields := value.Fields()
		if fields.IsEmpty() {
			w.WriteString("{}")
			return
		}
		w.WriteString("{ ")
		for i := 0; i < fields.Len(); i++ {
			if i > 0 {
				w.WriteString(", ")
			}
			field := fields.At(i)
			w.WriteString(field.Name())
			w.WriteString(": ")
			Write(w, field.Value())
		}
		w.WriteString(" }")

	default:
		w.WriteString(value.String())
	}
}

func sprint(value Value) string {
	var w printer.Writer
	Write(&w, value)
	return w.String()
}

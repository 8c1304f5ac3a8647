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

// Package literal decodes the raw source text of GraphQL string and block string literals into
// their values.
package literal

import (
	"strings"
)

// BlockStringValue produces the value of a block string from the raw text between its triple
// quotes. Escaped triple quotes (\""") are unescaped, the common indentation of all lines but the
// first is removed and leading and trailing blank lines are dropped.
//
// Reference: https://spec.graphql.org/October2021/#BlockStringValue()
func BlockStringValue(raw string) string {
	raw = strings.Replace(raw, `\"""`, `"""`, -1)

	lines := splitLines(raw)

	commonIndent := -1
	for i, line := range lines {
		if i == 0 {
			continue
		}
		indent := leadingWhitespaceLen(line)
		if indent == len(line) {
			continue
		}
		if commonIndent == -1 || indent < commonIndent {
			commonIndent = indent
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = ""
			} else {
				lines[i] = lines[i][commonIndent:]
			}
		}
	}

	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}

// splitLines splits s on "\r\n", "\n" and "\r".
func splitLines(s string) []string {
	var (
		lines []string
		begin int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[begin:i])
			begin = i + 1
		case '\r':
			lines = append(lines, s[begin:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			begin = i + 1
		}
	}
	return append(lines, s[begin:])
}

func leadingWhitespaceLen(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}

func isBlank(line string) bool {
	return leadingWhitespaceLen(line) == len(line)
}

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

package literal

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// StringValue decodes a quoted string literal (including its surrounding quotes) into its value,
// resolving escape sequences. The lexer has already verified the overall shape of the literal, so
// errors here concern escape sequences that don't denote a valid character.
func StringValue(quoted string) (string, error) {
	if len(quoted) < 2 || quoted[0] != '"' || quoted[len(quoted)-1] != '"' {
		return "", fmt.Errorf("string literal must be enclosed in double quotes")
	}
	body := quoted[1 : len(quoted)-1]

	// Fast path: nothing to unescape.
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}

	var value strings.Builder
	value.Grow(len(body))

	for i := 0; i < len(body); i++ {
		char := body[i]
		if char != '\\' {
			value.WriteByte(char)
			continue
		}

		i++
		if i >= len(body) {
			return "", fmt.Errorf("string literal ends with an unfinished escape sequence")
		}

		switch body[i] {
		case '"':
			value.WriteByte('"')
		case '\\':
			value.WriteByte('\\')
		case '/':
			value.WriteByte('/')
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')

		case 'u':
			r, n, err := decodeEscapedUnicode(body[i+1:])
			if err != nil {
				return "", err
			}
			value.WriteRune(r)
			i += n

		default:
			return "", fmt.Errorf("bad escaped character %q", body[i])
		}
	}

	return value.String(), nil
}

// decodeEscapedUnicode decodes the hex digits following a "\u". A UTF-16 surrogate pair written as
// two consecutive escapes is combined into a single character. It returns the character and the
// number of bytes consumed from s.
func decodeEscapedUnicode(s string) (rune, int, error) {
	if len(s) < 4 {
		return 0, 0, fmt.Errorf(`\u must have 4 characters after it, only found '%s'`, s)
	}

	r := uniCharCode(s[0], s[1], s[2], s[3])
	if r < 0 {
		return 0, 0, fmt.Errorf("%s is not a valid unicode code point", s[:4])
	}

	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}

	// A leading surrogate must be followed by a trailing one.
	if len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		trail := uniCharCode(s[6], s[7], s[8], s[9])
		if combined := utf16.DecodeRune(r, trail); combined != utf8.RuneError {
			return combined, 10, nil
		}
	}

	return 0, 0, fmt.Errorf("%s is not a valid unicode code point", s[:4])
}

// uniCharCode converts four hexadecimal chars to the integer that the string represents. For
// example, uniCharCode('0','0','0','f') returns 15.
//
// Returns a negative number if any char is not a hex digit: char2hex returns -1 in that case and
// ORing it into the result keeps the result negative.
func uniCharCode(a byte, b byte, c byte, d byte) rune {
	return (char2hex(a) << 12) | (char2hex(b) << 8) | (char2hex(c) << 4) | char2hex(d)
}

func char2hex(a byte) rune {
	switch {
	case a >= '0' && a <= '9':
		return rune(a - '0')
	case a >= 'A' && a <= 'F':
		return rune(a-'A') + 10
	case a >= 'a' && a <= 'f':
		return rune(a-'a') + 10
	}
	return -1
}

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

package arena

// StringID is a handle to a string in a Strings interner. Equal strings share the same ID, so
// comparing IDs compares the strings.
type StringID uint32

// Strings is a deduplicating, ordered set of strings. IDs are handed out in order of first
// insertion.
type Strings struct {
	index  map[string]StringID
	values []string
}

// NewStrings creates an empty interner.
func NewStrings() *Strings {
	return &Strings{
		index: map[string]StringID{},
	}
}

// Intern returns the ID of s, adding it to the set first if needed.
func (strings *Strings) Intern(s string) StringID {
	if id, exists := strings.index[s]; exists {
		return id
	}
	strings.values = append(strings.values, s)
	id := FromIndex[StringID](len(strings.values) - 1)
	strings.index[s] = id
	return id
}

// Find returns the ID of s if it has been interned.
func (strings *Strings) Find(s string) (StringID, bool) {
	id, exists := strings.index[s]
	return id, exists
}

// Lookup returns the string with the given ID. It panics for an ID that was not handed out by this
// interner.
func (strings *Strings) Lookup(id StringID) string {
	return strings.values[Index(id)]
}

// Len returns the number of distinct strings.
func (strings *Strings) Len() int {
	return len(strings.values)
}

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

package ast

import (
	"fmt"
	"iter"
	"strings"
)

//===----------------------------------------------------------------------------------------====//
// Type Wrappers
//===----------------------------------------------------------------------------------------====//
// A type reference like [[Int!]]! is a named type wrapped by a sequence of list and non-null
// modifiers. Rather than a recursive tree, the modifiers are packed into a single word.
//
// Reference: https://spec.graphql.org/October2021/#sec-Type-References

// WrappingType is a modifier applied to a type reference.
type WrappingType uint8

// Enumeration of WrappingType
const (
	WrappingTypeNonNull WrappingType = iota
	WrappingTypeList
)

var _ fmt.Stringer = WrappingType(0)

func (t WrappingType) String() string {
	switch t {
	case WrappingTypeNonNull:
		return "NonNull"
	case WrappingTypeList:
		return "List"
	}
	return fmt.Sprintf("<unknown wrapping type %d>", uint8(t))
}

// MaxTypeWrappers is the maximum number of wrappers a type reference can carry.
const MaxTypeWrappers = 32

// TypeWrappers is a packed sequence of WrappingType from the outermost to the innermost. Bit i of
// bits holds the i-th wrapper counted from the innermost one.
type TypeWrappers struct {
	bits uint32
	len  uint8
}

// NewTypeWrappers packs the given wrappers listed from the outermost to the innermost. It panics if
// more than MaxTypeWrappers are given.
func NewTypeWrappers(outermostFirst ...WrappingType) TypeWrappers {
	var wrappers TypeWrappers
	for i := len(outermostFirst) - 1; i >= 0; i-- {
		var ok bool
		wrappers, ok = wrappers.Wrap(outermostFirst[i])
		if !ok {
			panic("ast: too many type wrappers")
		}
	}
	return wrappers
}

// Wrap returns the wrappers with t added as the new outermost wrapper. It returns false if the
// sequence is already full.
func (wrappers TypeWrappers) Wrap(t WrappingType) (TypeWrappers, bool) {
	if wrappers.len >= MaxTypeWrappers {
		return wrappers, false
	}
	if t == WrappingTypeList {
		wrappers.bits |= 1 << wrappers.len
	}
	wrappers.len++
	return wrappers, true
}

// Len returns the number of wrappers.
func (wrappers TypeWrappers) Len() int {
	return int(wrappers.len)
}

// At returns the i-th wrapper counted from the outermost one.
func (wrappers TypeWrappers) At(i int) WrappingType {
	if i < 0 || i >= wrappers.Len() {
		panic(fmt.Sprintf("ast: wrapper index %d out of range [0, %d)", i, wrappers.len))
	}
	bit := wrappers.len - 1 - uint8(i)
	if wrappers.bits&(1<<bit) != 0 {
		return WrappingTypeList
	}
	return WrappingTypeNonNull
}

// All iterates from the outermost to the innermost wrapper.
func (wrappers TypeWrappers) All() iter.Seq[WrappingType] {
	return func(yield func(WrappingType) bool) {
		for i := 0; i < wrappers.Len(); i++ {
			if !yield(wrappers.At(i)) {
				return
			}
		}
	}
}

// IsNonNull returns true if the outermost wrapper is non-null.
func (wrappers TypeWrappers) IsNonNull() bool {
	return wrappers.len > 0 && wrappers.At(0) == WrappingTypeNonNull
}

// IsList returns true if the type is a list, possibly non-null.
func (wrappers TypeWrappers) IsList() bool {
	return wrappers.bits != 0
}

// Format writes the type reference to name wrapped by the wrappers, for example "[[Int!]]!".
func (wrappers TypeWrappers) Format(name string) string {
	var b strings.Builder
	for t := range wrappers.All() {
		if t == WrappingTypeList {
			b.WriteByte('[')
		}
	}
	b.WriteString(name)
	for i := wrappers.Len() - 1; i >= 0; i-- {
		if wrappers.At(i) == WrappingTypeList {
			b.WriteByte(']')
		} else {
			b.WriteByte('!')
		}
	}
	return b.String()
}

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

import (
	"iter"
)

// Iter is a restartable view of the readers for a range of IDs. It holds no state besides the
// range, so every call to All walks the children again from the start.
type Iter[I ID, T any] struct {
	ids  Range[I]
	read func(I) T
}

// NewIter creates an Iter that produces read(id) for every id in ids.
func NewIter[I ID, T any](ids Range[I], read func(I) T) Iter[I, T] {
	return Iter[I, T]{ids, read}
}

// IDs returns the underlying range.
func (it Iter[I, T]) IDs() Range[I] {
	return it.ids
}

// Len returns the number of items.
func (it Iter[I, T]) Len() int {
	return it.ids.Len()
}

// IsEmpty returns true if there is no item.
func (it Iter[I, T]) IsEmpty() bool {
	return it.ids.IsEmpty()
}

// At returns the i-th item. It panics if i is out of bounds.
func (it Iter[I, T]) At(i int) T {
	return it.read(it.ids.At(i))
}

// All iterates over the items in order.
func (it Iter[I, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := range it.ids.All() {
			if !yield(it.read(id)) {
				return
			}
		}
	}
}

// Backward iterates over the items in reverse order.
func (it Iter[I, T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for id := range it.ids.Backward() {
			if !yield(it.read(id)) {
				return
			}
		}
	}
}

// Collect returns the items in a slice.
func (it Iter[I, T]) Collect() []T {
	result := make([]T, 0, it.Len())
	for item := range it.All() {
		result = append(result, item)
	}
	return result
}

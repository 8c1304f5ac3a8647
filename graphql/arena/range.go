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
	"fmt"
	"iter"
)

// Range is a half-open run [Start, End) of IDs. Children of one parent are appended contiguously
// to their arena, so the parent only records the boundaries.
type Range[I ID] struct {
	start I
	end   I
}

// NewRange creates a range covering [start, end). It panics if end precedes start.
func NewRange[I ID](start, end I) Range[I] {
	if end < start {
		panic(fmt.Sprintf("arena: invalid range [%d, %d)", start, end))
	}
	return Range[I]{start, end}
}

// EmptyRange returns a range without any ID.
func EmptyRange[I ID]() Range[I] {
	return Range[I]{}
}

// Start returns the first ID in the range.
func (r Range[I]) Start() I {
	return r.start
}

// End returns the ID one past the last in the range.
func (r Range[I]) End() I {
	return r.end
}

// Len returns the number of IDs in the range.
func (r Range[I]) Len() int {
	return Distance(r.start, r.end)
}

// IsEmpty returns true if the range contains no ID.
func (r Range[I]) IsEmpty() bool {
	return r.start == r.end
}

// At returns the i-th ID in the range. It panics if i is out of bounds.
func (r Range[I]) At(i int) I {
	if i < 0 || i >= r.Len() {
		panic(fmt.Sprintf("arena: index %d out of range [0, %d)", i, r.Len()))
	}
	return r.start + I(i)
}

// Contains returns true if id lies in the range.
func (r Range[I]) Contains(id I) bool {
	return r.start <= id && id < r.end
}

// Overlaps returns true if the two ranges share an ID. Empty ranges never overlap.
func (r Range[I]) Overlaps(other Range[I]) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.start < other.end && other.start < r.end
}

// All iterates over the IDs from first to last.
func (r Range[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		for id := r.start; id < r.end; id = Forward(id) {
			if !yield(id) {
				return
			}
		}
	}
}

// Backward iterates over the IDs from last to first.
func (r Range[I]) Backward() iter.Seq[I] {
	return func(yield func(I) bool) {
		for id := r.end; id > r.start; {
			id = Back(id)
			if !yield(id) {
				return
			}
		}
	}
}

var _ fmt.Stringer = Range[uint32]{}

// String implements fmt.Stringer.
func (r Range[I]) String() string {
	return fmt.Sprintf("[%d, %d)", r.start, r.end)
}

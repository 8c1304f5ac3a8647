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

// Package arena provides the storage primitives shared by GraphQL documents: typed IDs addressing
// flat per-kind record arenas, ranges of IDs for contiguous children, reader iterators over such
// ranges and a string interner.
//
// An ID is the index of its record plus one. The zero ID therefore never refers to a record and
// is used to denote "none" wherever a reference is optional.
package arena

import (
	"fmt"
	"iter"
)

// ID is the constraint satisfied by every typed handle into an Arena.
type ID interface {
	~uint32
}

// FromIndex returns the ID of the record stored at the given index.
func FromIndex[I ID](index int) I {
	return I(index + 1)
}

// Index returns the index of the record referred by id. It panics for the zero ID, which refers to
// nothing.
func Index[I ID](id I) int {
	if id == 0 {
		panic("arena: zero ID does not refer to any record")
	}
	return int(id) - 1
}

// Forward returns the ID that follows id.
func Forward[I ID](id I) I {
	return id + 1
}

// Back returns the ID that precedes id.
func Back[I ID](id I) I {
	return id - 1
}

// Distance returns the number of IDs from lhs to rhs. It is negative when rhs precedes lhs.
func Distance[I ID](lhs, rhs I) int {
	return int(rhs) - int(lhs)
}

// Arena is an append-only store of records of one kind. Records are addressed by ID and never
// move or disappear once appended.
type Arena[I ID, R any] struct {
	records []R
}

// Append stores a record and returns its ID.
func (arena *Arena[I, R]) Append(record R) I {
	arena.records = append(arena.records, record)
	return FromIndex[I](len(arena.records) - 1)
}

// AppendAll stores records in order and returns the range of their IDs.
func (arena *Arena[I, R]) AppendAll(records []R) Range[I] {
	start := arena.Next()
	arena.records = append(arena.records, records...)
	return NewRange(start, arena.Next())
}

// Next returns the ID the next appended record will receive.
func (arena *Arena[I, R]) Next() I {
	return FromIndex[I](len(arena.records))
}

// Len returns the number of records.
func (arena *Arena[I, R]) Len() int {
	return len(arena.records)
}

// Lookup returns the record with the given ID. The record may be modified only while the owning
// document is being built. It panics for an ID that doesn't belong to the arena.
func (arena *Arena[I, R]) Lookup(id I) *R {
	index := Index(id)
	if index >= len(arena.records) {
		panic(fmt.Sprintf("arena: ID %d out of range (%d records)", id, len(arena.records)))
	}
	return &arena.records[index]
}

// All iterates over every record together with its ID.
func (arena *Arena[I, R]) All() iter.Seq2[I, *R] {
	return func(yield func(I, *R) bool) {
		for i := range arena.records {
			if !yield(FromIndex[I](i), &arena.records[i]) {
				return
			}
		}
	}
}

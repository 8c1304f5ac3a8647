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

// Package values stores GraphQL input values (literals, lists, objects and variables) in flat
// arenas and provides reader views over them. Type system and executable documents each own a
// Store, which also holds the document's interned strings.
package values

import (
	"fmt"

	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/token"
)

// ValueID refers to a value in a Store.
type ValueID uint32

// ConstValueID refers to a value that is guaranteed not to contain any variable. It is minted only
// by Store.AppendConstValue.
type ConstValueID uint32

// Value returns the same value as a ValueID.
func (id ConstValueID) Value() ValueID {
	return ValueID(id)
}

// FieldID refers to a field of an object value.
type FieldID uint32

// BlockStringID refers to the raw text of a block string literal.
type BlockStringID uint32

// Kind describes the kind of a value.
type Kind uint8

// Enumeration of Kind
const (
	KindVariable Kind = iota + 1
	KindInt
	KindFloat
	KindString
	KindBoolean
	KindNull
	KindEnum
	KindList
	KindObject
)

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	switch kind {
	case KindVariable:
		return "Variable"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBoolean:
		return "Boolean"
	case KindNull:
		return "Null"
	case KindEnum:
		return "Enum"
	case KindList:
		return "List"
	case KindObject:
		return "Object"
	}
	return fmt.Sprintf("<unknown value kind %d>", uint8(kind))
}

// ValueRecord is the stored form of a value. Which fields are meaningful depends on Kind.
type ValueRecord struct {
	Kind Kind
	Span token.Span

	// Raw text of an Int or Float, decoded text of a String that isn't a block string, name of an
	// Enum value or a Variable
	Text arena.StringID

	// Raw text of a String written as a block string
	BlockString BlockStringID

	// Value of a Boolean
	Boolean bool

	// Items of a List
	Items arena.Range[ValueID]

	// Fields of an Object
	Fields arena.Range[FieldID]
}

// FieldRecord is the stored form of a field in an object value.
type FieldRecord struct {
	Name     arena.StringID
	NameSpan token.Span
	Value    ValueID
	Span     token.Span
}

// Store holds values, object fields, block strings and the interned strings of a document.
type Store struct {
	strings      *arena.Strings
	blockStrings arena.Arena[BlockStringID, string]
	values       arena.Arena[ValueID, ValueRecord]
	fields       arena.Arena[FieldID, FieldRecord]
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		strings: arena.NewStrings(),
	}
}

// Strings returns the string interner.
func (store *Store) Strings() *arena.Strings {
	return store.strings
}

// Intern interns s.
func (store *Store) Intern(s string) arena.StringID {
	return store.strings.Intern(s)
}

// LookupString returns the interned string with the given ID.
func (store *Store) LookupString(id arena.StringID) string {
	return store.strings.Lookup(id)
}

// AppendBlockString stores the raw text of a block string.
func (store *Store) AppendBlockString(raw string) BlockStringID {
	return store.blockStrings.Append(raw)
}

// LookupBlockString returns the raw text of a block string.
func (store *Store) LookupBlockString(id BlockStringID) string {
	return *store.blockStrings.Lookup(id)
}

// AppendValue stores a value. The items or fields of a list or object must have been appended
// beforehand with AppendValues and AppendFields.
func (store *Store) AppendValue(record ValueRecord) ValueID {
	return store.values.Append(record)
}

// AppendConstValue stores a value known not to contain variables. Callers guarantee that nested
// items and fields are variable-free as well; a variable at the top level is a programming error.
func (store *Store) AppendConstValue(record ValueRecord) ConstValueID {
	if record.Kind == KindVariable {
		panic("values: variable stored as a const value")
	}
	return ConstValueID(store.values.Append(record))
}

// AppendValues stores the items of a list contiguously.
func (store *Store) AppendValues(records []ValueRecord) arena.Range[ValueID] {
	return store.values.AppendAll(records)
}

// AppendFields stores the fields of an object contiguously.
func (store *Store) AppendFields(records []FieldRecord) arena.Range[FieldID] {
	return store.fields.AppendAll(records)
}

// LookupValue returns the record of a value.
func (store *Store) LookupValue(id ValueID) *ValueRecord {
	return store.values.Lookup(id)
}

// LookupField returns the record of an object field.
func (store *Store) LookupField(id FieldID) *FieldRecord {
	return store.fields.Lookup(id)
}

// NumValues returns the number of stored values.
func (store *Store) NumValues() int {
	return store.values.Len()
}

// NumFields returns the number of stored object fields.
func (store *Store) NumFields() int {
	return store.fields.Len()
}

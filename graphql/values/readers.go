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
	"iter"
	"strconv"

	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/internal/literal"
	"github.com/botobag/gqlparse/graphql/token"
)

// Value is a reader over a stored value. The concrete type is one of IntValue, FloatValue,
// StringValue, BooleanValue, NullValue, EnumValue, VariableValue, ListValue and ObjectValue;
// switch on it to access kind-specific data.
type Value interface {
	ID() ValueID
	Kind() Kind
	Span() token.Span

	// String returns the value printed as GraphQL source.
	String() string

	isValue()
}

// Read returns the reader for the value with the given ID.
func Read(store *Store, id ValueID) Value {
	ctx := valueContext{store, id}
	switch kind := store.LookupValue(id).Kind; kind {
	case KindInt:
		return IntValue{ctx}
	case KindFloat:
		return FloatValue{ctx}
	case KindString:
		return StringValue{ctx}
	case KindBoolean:
		return BooleanValue{ctx}
	case KindNull:
		return NullValue{ctx}
	case KindEnum:
		return EnumValue{ctx}
	case KindVariable:
		return VariableValue{ctx}
	case KindList:
		return ListValue{ctx}
	case KindObject:
		return ObjectValue{ctx}
	default:
		panic("values: unknown value kind " + kind.String())
	}
}

// Read returns the reader for the value.
func (id ValueID) Read(store *Store) Value {
	return Read(store, id)
}

// Read returns the reader for the value. The result never is, nor contains, a VariableValue.
func (id ConstValueID) Read(store *Store) Value {
	return Read(store, ValueID(id))
}

type valueContext struct {
	store *Store
	id    ValueID
}

func (ctx valueContext) record() *ValueRecord {
	return ctx.store.LookupValue(ctx.id)
}

// ID returns the ID of the value.
func (ctx valueContext) ID() ValueID {
	return ctx.id
}

// Kind returns the kind of the value.
func (ctx valueContext) Kind() Kind {
	return ctx.record().Kind
}

// Span returns the location of the value in the source.
func (ctx valueContext) Span() token.Span {
	return ctx.record().Span
}

func (ctx valueContext) text() string {
	return ctx.store.LookupString(ctx.record().Text)
}

func (valueContext) isValue() {}

// IntValue is an integer literal.
type IntValue struct {
	valueContext
}

// Text returns the literal as written.
func (value IntValue) Text() string {
	return value.text()
}

// Int64 parses the literal.
func (value IntValue) Int64() (int64, error) {
	return strconv.ParseInt(value.text(), 10, 64)
}

// Int32 parses the literal. GraphQL's Int is a signed 32-bit integer. A literal out of that range
// returns math.MaxInt32 or math.MinInt32, clamped toward its sign, together with a
// *strconv.NumError wrapping strconv.ErrRange.
func (value IntValue) Int32() (int32, error) {
	i, err := strconv.ParseInt(value.text(), 10, 32)
	return int32(i), err
}

func (value IntValue) String() string {
	return value.text()
}

// FloatValue is a floating point literal.
type FloatValue struct {
	valueContext
}

// Text returns the literal as written.
func (value FloatValue) Text() string {
	return value.text()
}

// Float64 parses the literal.
func (value FloatValue) Float64() (float64, error) {
	return strconv.ParseFloat(value.text(), 64)
}

func (value FloatValue) String() string {
	return value.text()
}

// StringValue is a string or block string literal.
type StringValue struct {
	valueContext
}

// IsBlockString returns true if the literal was written as a block string.
func (value StringValue) IsBlockString() bool {
	return value.record().BlockString != 0
}

// Value returns the string the literal denotes. Block strings are trimmed on every call.
func (value StringValue) Value() string {
	record := value.record()
	if record.BlockString != 0 {
		return literal.BlockStringValue(value.store.LookupBlockString(record.BlockString))
	}
	return value.store.LookupString(record.Text)
}

// Raw returns the raw text between the triple quotes of a block string, or the decoded value of an
// ordinary string.
func (value StringValue) Raw() string {
	record := value.record()
	if record.BlockString != 0 {
		return value.store.LookupBlockString(record.BlockString)
	}
	return value.store.LookupString(record.Text)
}

func (value StringValue) String() string {
	return sprint(value)
}

// BooleanValue is true or false.
type BooleanValue struct {
	valueContext
}

// Value returns the boolean.
func (value BooleanValue) Value() bool {
	return value.record().Boolean
}

func (value BooleanValue) String() string {
	return strconv.FormatBool(value.Value())
}

// NullValue is the null literal.
type NullValue struct {
	valueContext
}

func (value NullValue) String() string {
	return "null"
}

// EnumValue is an enum value like RED.
type EnumValue struct {
	valueContext
}

// Name returns the name of the enum value.
func (value EnumValue) Name() string {
	return value.text()
}

func (value EnumValue) String() string {
	return value.text()
}

// VariableValue is a reference to a variable like $id. It only appears in executable documents.
type VariableValue struct {
	valueContext
}

// Name returns the name of the variable without the "$".
func (value VariableValue) Name() string {
	return value.text()
}

func (value VariableValue) String() string {
	return "$" + value.text()
}

// ListValue is a list literal.
type ListValue struct {
	valueContext
}

// Items returns the items of the list.
func (value ListValue) Items() arena.Iter[ValueID, Value] {
	return arena.NewIter(value.record().Items, value.read)
}

// Len returns the number of items.
func (value ListValue) Len() int {
	return value.record().Items.Len()
}

func (value ListValue) read(id ValueID) Value {
	return Read(value.store, id)
}

func (value ListValue) String() string {
	return sprint(value)
}

// ObjectValue is an input object literal.
type ObjectValue struct {
	valueContext
}

// Fields returns the fields of the object in source order.
func (value ObjectValue) Fields() arena.Iter[FieldID, ObjectField] {
	return arena.NewIter(value.record().Fields, func(id FieldID) ObjectField {
		return ObjectField{value.store, id}
	})
}

// Get returns the value of the first field with the given name.
func (value ObjectValue) Get(name string) (Value, bool) {
	for field := range value.Fields().All() {
		if field.Name() == name {
			return field.Value(), true
		}
	}
	return nil, false
}

func (value ObjectValue) String() string {
	return sprint(value)
}

// ObjectField is a field of an object value.
type ObjectField struct {
	store *Store
	id    FieldID
}

func (field ObjectField) record() *FieldRecord {
	return field.store.LookupField(field.id)
}

// ID returns the ID of the field.
func (field ObjectField) ID() FieldID {
	return field.id
}

// Name returns the name of the field.
func (field ObjectField) Name() string {
	return field.store.LookupString(field.record().Name)
}

// NameSpan returns the location of the field name.
func (field ObjectField) NameSpan() token.Span {
	return field.record().NameSpan
}

// Span returns the location of the whole field.
func (field ObjectField) Span() token.Span {
	return field.record().Span
}

// Value returns the value of the field.
func (field ObjectField) Value() Value {
	return Read(field.store, field.record().Value)
}

// VariablesUsed iterates over every variable referenced anywhere in value, depth first. A variable
// referenced twice is yielded twice.
func VariablesUsed(value Value) iter.Seq[VariableValue] {
	return func(yield func(VariableValue) bool) {
		walkVariables(value, yield)
	}
}

func walkVariables(value Value, yield func(VariableValue) bool) bool {
	switch value := value.(type) {
	case VariableValue:
		return yield(value)
	case ListValue:
		for item := range value.Items().All() {
			if !walkVariables(item, yield) {
				return false
			}
		}
	case ObjectValue:
		for field := range value.Fields().All() {
			if !walkVariables(field.Value(), yield) {
				return false
			}
		}
	}
	return true
}

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

package graphql

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/internal/util"

	"github.com/json-iterator/go"
)

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of ErrKind
const (
	ErrKindOther                      ErrKind = iota // Unclassified error
	ErrKindInvalidToken                              // A token the grammar can't use at all
	ErrKindLexical                                   // The lexer couldn't recognize a token
	ErrKindUnrecognizedEOF                           // The input ended in the middle of a definition
	ErrKindUnrecognizedToken                         // A token that doesn't fit the grammar at its position
	ErrKindExtraToken                                // A token after the end of a complete document
	ErrKindMalformedStringLiteral                    // A string literal with an invalid escape sequence
	ErrKindMalformedDirectiveLocation                // An unknown location in a directive definition
	ErrKindVariableInConstPosition                   // A variable where only const values are allowed
	ErrKindEmptyTypeSystemDocument                   // A type system document without any definition
	ErrKindEmptyExecutableDocument                   // An executable document without any definition
	ErrKindRecursionLimit                            // Input nested deeper than the parser allows
	ErrKindEmptySchemaCoordinate                     // A schema coordinate without any name
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindInvalidToken:
		return "invalid token"
	case ErrKindLexical:
		return "lexical error"
	case ErrKindUnrecognizedEOF:
		return "unrecognized eof"
	case ErrKindUnrecognizedToken:
		return "unrecognized token"
	case ErrKindExtraToken:
		return "extra token"
	case ErrKindMalformedStringLiteral:
		return "malformed string literal"
	case ErrKindMalformedDirectiveLocation:
		return "malformed directive location"
	case ErrKindVariableInConstPosition:
		return "variable in const position"
	case ErrKindEmptyTypeSystemDocument:
		return "empty type system document"
	case ErrKindEmptyExecutableDocument:
		return "empty executable document"
	case ErrKindRecursionLimit:
		return "recursion limit exceeded"
	case ErrKindEmptySchemaCoordinate:
		return "empty schema coordinate"
	}
	return "unknown error kind"
}

// isEmptyInput returns true for the kinds reporting input with nothing in it. Errors of these kinds
// don't point at any position.
func (k ErrKind) isEmptyInput() bool {
	switch k {
	case ErrKindEmptyTypeSystemDocument, ErrKindEmptyExecutableDocument, ErrKindEmptySchemaCoordinate:
		return true
	}
	return false
}

// ErrorLocation contains a line number and a column number to point out the beginning of an
// associated syntax element.
type ErrorLocation struct {
	// Both line and column are positive numbers starting from 1
	Line   int
	Column int
}

// An Error describes a failure to parse a GraphQL document. Parsing stops at the first error, so a
// parse produces at most one.
//
// Kind tells what went wrong; which of the other fields are set depends on it. Use ToReport to
// render the error against its source text for humans.
type Error struct {
	// Message describes the error. It doesn't include the location.
	Message string

	// Locations contains the line and column of Span.Start when the error was created with a
	// source.
	Locations []ErrorLocation

	// SourceName is the name of the source the error was created with, like a file name.
	SourceName string

	// Kind is the class of error
	Kind ErrKind

	// Span is the offending range of the source. It is empty for errors pointing at a position
	// rather than a token, like the end of input.
	Span token.Span

	// Token describes the offending token for ErrKindUnrecognizedToken and ErrKindExtraToken.
	Token string

	// Expected lists descriptions of the tokens that would have been accepted.
	Expected []string

	// Location is the unrecognized name for ErrKindMalformedDirectiveLocation.
	Location string

	// Variable is the name of the variable for ErrKindVariableInConstPosition.
	Variable string

	// The underlying error that triggered this one
	Err error
}

var _ error = (*Error)(nil)

// NewError builds an error value from arguments in the manner of upspin.io/errors [0]. The
// arguments are matched by type:
//
//   - ErrKind sets Kind
//   - token.Span sets Span
//   - *token.Source computes Locations from the span; give it after the span
//   - []string sets Expected
//   - error sets Err
//
// [0]: https://commandcenter.blogspot.com/2017/12/error-handling-in-upspin.html.
func NewError(message string, args ...interface{}) error {
	e := &Error{
		Message: message,
	}

	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrKind:
			e.Kind = arg

		case token.Span:
			e.Span = arg

		case *token.Source:
			info := arg.LocationInfoOf(e.Span.Start)
			e.Locations = []ErrorLocation{{Line: info.Line, Column: info.Column}}
			e.SourceName = arg.Name()

		case []string:
			e.Expected = arg

		case error:
			e.Err = arg
			// Pull kind from underlying error.
			if prev, ok := arg.(*Error); ok && e.Kind == ErrKindOther {
				e.Kind = prev.Kind
			}

		default:
			return fmt.Errorf("unknown type %T, value %v in error call", arg, arg)
		}
	}

	return e
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)

	if len(e.Locations) > 0 {
		fmt.Fprintf(&b, " (line %d, column %d)", e.Locations[0].Line, e.Locations[0].Column)
	}

	if len(e.Expected) > 0 {
		b.WriteString(": expected ")
		b.WriteString(util.OrList(e.Expected, 5, false))
	}

	if e.Err != nil && e.Err.Error() != e.Message {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	stream.WriteMore()
	stream.WriteObjectField("kind")
	stream.WriteString(err.Kind.String())

	numLocations := len(err.Locations)
	if numLocations > 0 {
		stream.WriteMore()
		stream.WriteObjectField("locations")
		stream.WriteArrayStart()
		for i := range err.Locations {
			location := &err.Locations[i]
			stream.WriteObjectStart()
			stream.WriteObjectField("line")
			stream.WriteInt(location.Line)
			stream.WriteMore()
			stream.WriteObjectField("column")
			stream.WriteInt(location.Column)
			stream.WriteObjectEnd()
			if i != numLocations-1 {
				stream.WriteMore()
			}
		}
		stream.WriteArrayEnd()
	}

	if !err.Kind.isEmptyInput() {
		stream.WriteMore()
		stream.WriteObjectField("span")
		stream.WriteObjectStart()
		stream.WriteObjectField("start")
		stream.WriteInt(err.Span.Start)
		stream.WriteMore()
		stream.WriteObjectField("end")
		stream.WriteInt(err.Span.End)
		stream.WriteObjectEnd()
	}

	numExpected := len(err.Expected)
	if numExpected > 0 {
		stream.WriteMore()
		stream.WriteObjectField("expected")
		stream.WriteArrayStart()
		for i, expected := range err.Expected {
			stream.WriteString(expected)
			if i != numExpected-1 {
				stream.WriteMore()
			}
		}
		stream.WriteArrayEnd()
	}

	stream.WriteObjectEnd()
}

func init() {
	jsoniter.RegisterTypeEncoder("graphql.Error", errorMarshaller{})
}

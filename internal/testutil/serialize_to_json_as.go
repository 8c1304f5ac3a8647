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

package testutil

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"github.com/onsi/gomega/types"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type serializeToJSONAsMatcher[T any] struct {
	expected T
}

// SerializeToJSONAs returns a matcher that encodes both the actual and the expected value as JSON,
// decodes each result into a T and compares the two. T is meant to be a struct type with json tags
// describing the expected shape, so key order and whitespace don't matter. Avoid map types: the
// pinned reflect2 can't iterate maps on recent Go runtimes.
func SerializeToJSONAs[T any](expected T) types.GomegaMatcher {
	return serializeToJSONAsMatcher[T]{expected}
}

func roundTrip[T any](value interface{}, what string) (T, error) {
	var decoded T
	data, err := json.Marshal(value)
	if err != nil {
		return decoded, fmt.Errorf("SerializeToJSONAs matcher cannot encode %s into JSON: %s", what, err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return decoded, fmt.Errorf("SerializeToJSONAs matcher cannot decode %s from JSON into %T: %s", what, decoded, err)
	}
	return decoded, nil
}

// Match implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher[T]) Match(actual interface{}) (bool, error) {
	decodedActual, err := roundTrip[T](actual, "actual")
	if err != nil {
		return false, err
	}
	decodedExpected, err := roundTrip[T](matcher.expected, "expected")
	if err != nil {
		return false, err
	}
	return reflect.DeepEqual(decodedActual, decodedExpected), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher[T]) FailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n\t%#v\nto serialize to JSON value as\n\t%#v", actual, matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher serializeToJSONAsMatcher[T]) NegatedFailureMessage(actual interface{}) string {
	return fmt.Sprintf("Expected\n\t%#v\nnot to serialize to JSON value as\n\t%#v", actual, matcher.expected)
}

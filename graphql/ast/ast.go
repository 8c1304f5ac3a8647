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

// Package ast defines the syntax-level enumerations shared by type system and executable
// documents: operation types, directive locations and the wrappers of type references.
package ast

import (
	"fmt"
)

//===----------------------------------------------------------------------------------------====//
// Operation Type
//===----------------------------------------------------------------------------------------====//
// There are three types of operations that GraphQL models:
//
//	* query – a read-only fetch.
//	* mutation – a write followed by a fetch.
//	* subscription – a long-lived request that fetches data in response to source events.
//
// Reference: https://spec.graphql.org/October2021/#sec-Language.Operations

// OperationType specifies the type of operation model.
//
// Reference: https://spec.graphql.org/October2021/#OperationType
type OperationType string

// Enumeration of OperationType
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// LookupOperationType returns the OperationType spelled by keyword.
func LookupOperationType(keyword string) (OperationType, bool) {
	switch OperationType(keyword) {
	case OperationTypeQuery, OperationTypeMutation, OperationTypeSubscription:
		return OperationType(keyword), true
	}
	return "", false
}

var _ fmt.Stringer = OperationType("")

func (t OperationType) String() string {
	return string(t)
}

//===----------------------------------------------------------------------------------------====//
// Directive Location
//===----------------------------------------------------------------------------------------====//

// DirectiveLocation specifies a location at which a directive may be used.
//
// Reference: https://spec.graphql.org/October2021/#DirectiveLocations
type DirectiveLocation string

// Enumeration of DirectiveLocation
const (
	// Executable directive locations
	DirectiveLocationQuery              DirectiveLocation = "QUERY"
	DirectiveLocationMutation           DirectiveLocation = "MUTATION"
	DirectiveLocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	DirectiveLocationField              DirectiveLocation = "FIELD"
	DirectiveLocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	DirectiveLocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	DirectiveLocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"

	// Type system directive locations
	DirectiveLocationSchema               DirectiveLocation = "SCHEMA"
	DirectiveLocationScalar               DirectiveLocation = "SCALAR"
	DirectiveLocationObject               DirectiveLocation = "OBJECT"
	DirectiveLocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	DirectiveLocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	DirectiveLocationInterface            DirectiveLocation = "INTERFACE"
	DirectiveLocationUnion                DirectiveLocation = "UNION"
	DirectiveLocationEnum                 DirectiveLocation = "ENUM"
	DirectiveLocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	DirectiveLocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	DirectiveLocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"

	// Executable directive location added in the October 2021 edition
	DirectiveLocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"
)

// directiveLocations is the closed set of valid locations, in the order they are listed in
// diagnostics.
var directiveLocations = []DirectiveLocation{
	DirectiveLocationQuery,
	DirectiveLocationMutation,
	DirectiveLocationSubscription,
	DirectiveLocationField,
	DirectiveLocationFragmentDefinition,
	DirectiveLocationFragmentSpread,
	DirectiveLocationInlineFragment,
	DirectiveLocationSchema,
	DirectiveLocationScalar,
	DirectiveLocationObject,
	DirectiveLocationFieldDefinition,
	DirectiveLocationArgumentDefinition,
	DirectiveLocationInterface,
	DirectiveLocationUnion,
	DirectiveLocationEnum,
	DirectiveLocationEnumValue,
	DirectiveLocationInputObject,
	DirectiveLocationInputFieldDefinition,
	DirectiveLocationVariableDefinition,
}

var directiveLocationSet = func() map[string]DirectiveLocation {
	set := make(map[string]DirectiveLocation, len(directiveLocations))
	for _, location := range directiveLocations {
		set[string(location)] = location
	}
	return set
}()

// DirectiveLocations returns every valid directive location.
func DirectiveLocations() []DirectiveLocation {
	return append([]DirectiveLocation(nil), directiveLocations...)
}

// DirectiveLocationNames returns the names of every valid directive location.
func DirectiveLocationNames() []string {
	names := make([]string, len(directiveLocations))
	for i, location := range directiveLocations {
		names[i] = string(location)
	}
	return names
}

// LookupDirectiveLocation returns the DirectiveLocation with the given name.
func LookupDirectiveLocation(name string) (DirectiveLocation, bool) {
	location, ok := directiveLocationSet[name]
	return location, ok
}

var _ fmt.Stringer = DirectiveLocation("")

func (location DirectiveLocation) String() string {
	return string(location)
}

// IsExecutable returns true for locations in executable documents.
func (location DirectiveLocation) IsExecutable() bool {
	switch location {
	case DirectiveLocationQuery,
		DirectiveLocationMutation,
		DirectiveLocationSubscription,
		DirectiveLocationField,
		DirectiveLocationFragmentDefinition,
		DirectiveLocationFragmentSpread,
		DirectiveLocationInlineFragment,
		DirectiveLocationVariableDefinition:
		return true
	}
	return false
}

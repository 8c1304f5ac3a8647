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

package parser

import (
	"github.com/botobag/gqlparse/graphql"
	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/graphql/typesystem"
)

var (
	definitionKeywords = describeKeywords(
		"schema", "scalar", "type", "interface", "union", "enum", "input", "directive")

	typeSystemDefinitionStartTokens = append(
		describeKinds(token.KindString, token.KindBlockString),
		append(definitionKeywords, describeKeyword("extend"))...)

	extensionKeywords = describeKeywords(
		"schema", "scalar", "type", "interface", "union", "enum", "input")

	operationTypeKeywords = describeKeywords("query", "mutation", "subscription")

	describedNameTokens = describeKinds(token.KindString, token.KindBlockString, token.KindName)
)

// typeSystemParser lowers a type system document into a typesystem.Writer.
type typeSystemParser struct {
	*parser
	w *typesystem.Writer
}

//	TypeSystemDocument ::
//		TypeSystemDefinitionOrExtension+
func (p *typeSystemParser) parseDocument() error {
	if p.peek().Kind == token.KindEOF {
		return graphql.NewEmptyTypeSystemDocumentError()
	}

	for p.peek().Kind != token.KindEOF {
		if isClosingToken(p.peek().Kind) {
			return p.extraToken()
		}
		if err := p.parseDefinition(); err != nil {
			return err
		}
	}

	return nil
}

//	TypeSystemDefinitionOrExtension ::
//		TypeSystemDefinition
//		TypeSystemExtension
//
//	TypeSystemDefinition ::
//		SchemaDefinition
//		TypeDefinition
//		DirectiveDefinition
//
//	TypeSystemExtension ::
//		SchemaExtension
//		TypeExtension
func (p *typeSystemParser) parseDefinition() error {
	start := p.peek().Span.Start

	description, err := p.parseDescription()
	if err != nil {
		return err
	}

	tok := p.peek()
	if tok.Kind != token.KindName {
		if description != 0 {
			return p.unexpected(definitionKeywords...)
		}
		return p.unexpected(typeSystemDefinitionStartTokens...)
	}

	switch tok.Value {
	case "schema":
		return p.parseSchemaDefinition(start, description, false)
	case "scalar":
		return p.parseScalarDefinition(start, description, false)
	case "type":
		return p.parseObjectDefinition(start, description, false)
	case "interface":
		return p.parseInterfaceDefinition(start, description, false)
	case "union":
		return p.parseUnionDefinition(start, description, false)
	case "enum":
		return p.parseEnumDefinition(start, description, false)
	case "input":
		return p.parseInputObjectDefinition(start, description, false)
	case "directive":
		return p.parseDirectiveDefinition(start, description)
	case "extend":
		// Extensions can't be described.
		if description == 0 {
			return p.parseExtension(start)
		}
		return p.unexpected(definitionKeywords...)
	}

	if description != 0 {
		return p.unexpected(definitionKeywords...)
	}
	return p.unexpected(typeSystemDefinitionStartTokens...)
}

//	SchemaExtension ::
//		extend schema Directives[Const]? { RootOperationTypeDefinition+ }
//		extend schema Directives[Const]
//
//	TypeExtension ::
//		ScalarTypeExtension
//		ObjectTypeExtension
//		InterfaceTypeExtension
//		UnionTypeExtension
//		EnumTypeExtension
//		InputObjectTypeExtension
func (p *typeSystemParser) parseExtension(start int) error {
	if err := p.expectKeyword("extend"); err != nil {
		return err
	}

	tok := p.peek()
	if tok.Kind == token.KindName {
		switch tok.Value {
		case "schema":
			return p.parseSchemaDefinition(start, 0, true)
		case "scalar":
			return p.parseScalarDefinition(start, 0, true)
		case "type":
			return p.parseObjectDefinition(start, 0, true)
		case "interface":
			return p.parseInterfaceDefinition(start, 0, true)
		case "union":
			return p.parseUnionDefinition(start, 0, true)
		case "enum":
			return p.parseEnumDefinition(start, 0, true)
		case "input":
			return p.parseInputObjectDefinition(start, 0, true)
		}
	}
	return p.unexpected(extensionKeywords...)
}

//	Description ::
//		StringValue
//
// parseDescription returns zero when the next token isn't a string.
func (p *typeSystemParser) parseDescription() (typesystem.DescriptionID, error) {
	tok := p.peek()
	if tok.Kind != token.KindString && tok.Kind != token.KindBlockString {
		return 0, nil
	}

	lit, err := p.parseStringLiteral()
	if err != nil {
		return 0, err
	}

	return p.w.Description(typesystem.DescriptionRecord{
		Text:        lit.text,
		BlockString: lit.blockString,
		Span:        lit.span,
	}), nil
}

//	SchemaDefinition ::
//		Description? schema Directives[Const]? { RootOperationTypeDefinition+ }
func (p *typeSystemParser) parseSchemaDefinition(start int, description typesystem.DescriptionID, extension bool) error {
	if err := p.expectKeyword("schema"); err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return err
	}

	var rootOperations arena.Range[typesystem.RootOperationTypeDefinitionID]
	if !extension || p.peek().Kind == token.KindLeftBrace || directives.IsEmpty() {
		if rootOperations, err = p.parseRootOperationTypeDefinitions(); err != nil {
			return err
		}
	}

	p.w.SchemaDefinition(typesystem.SchemaDefinitionRecord{
		Description:    description,
		Directives:     directives,
		RootOperations: rootOperations,
		Span:           p.spanFrom(start),
	}, extension)
	return nil
}

//	{ RootOperationTypeDefinition+ }
//
//	RootOperationTypeDefinition ::
//		OperationType : NamedType
func (p *typeSystemParser) parseRootOperationTypeDefinitions() (arena.Range[typesystem.RootOperationTypeDefinitionID], error) {
	var empty arena.Range[typesystem.RootOperationTypeDefinitionID]

	if _, err := p.expect(token.KindLeftBrace); err != nil {
		return empty, err
	}

	var records []typesystem.RootOperationTypeDefinitionRecord
	for {
		tok := p.peek()
		operationType, ok := ast.LookupOperationType(tok.Value)
		if tok.Kind != token.KindName || !ok {
			return empty, p.unexpected(operationTypeKeywords...)
		}
		if err := p.advance(); err != nil {
			return empty, err
		}

		if _, err := p.expect(token.KindColon); err != nil {
			return empty, err
		}

		namedType, err := p.parseName()
		if err != nil {
			return empty, err
		}

		records = append(records, typesystem.RootOperationTypeDefinitionRecord{
			OperationType: operationType,
			NamedType:     namedType.ID,
			NamedTypeSpan: namedType.Span,
			Span:          p.spanFrom(tok.Span.Start),
		})

		// Stop on } token.
		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return empty, err
		} else if stop {
			break
		}
	}

	return p.w.RootOperationTypeDefinitions(records), nil
}

//	ScalarTypeDefinition ::
//		Description? scalar Name Directives[Const]?
//
//	ScalarTypeExtension ::
//		extend scalar Name Directives[Const]
func (p *typeSystemParser) parseScalarDefinition(start int, description typesystem.DescriptionID, extension bool) error {
	if err := p.expectKeyword("scalar"); err != nil {
		return err
	}

	scalarName, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return err
	}

	p.w.ScalarDefinition(typesystem.ScalarDefinitionRecord{
		Name:        scalarName.ID,
		NameSpan:    scalarName.Span,
		Description: description,
		Directives:  directives,
		Span:        p.spanFrom(start),
	}, extension)
	return nil
}

//	ObjectTypeDefinition ::
//		Description? type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
//
//	ObjectTypeExtension ::
//		extend type Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend type Name ImplementsInterfaces? Directives[Const]
//		extend type Name ImplementsInterfaces
func (p *typeSystemParser) parseObjectDefinition(start int, description typesystem.DescriptionID, extension bool) error {
	if err := p.expectKeyword("type"); err != nil {
		return err
	}

	objectName, err := p.parseName()
	if err != nil {
		return err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return err
	}

	p.w.ObjectDefinition(typesystem.ObjectDefinitionRecord{
		Name:                 objectName.ID,
		NameSpan:             objectName.Span,
		Description:          description,
		ImplementsInterfaces: interfaces,
		Directives:           directives,
		Fields:               fields,
		Span:                 p.spanFrom(start),
	}, extension)
	return nil
}

//	InterfaceTypeDefinition ::
//		Description? interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition?
//
//	InterfaceTypeExtension ::
//		extend interface Name ImplementsInterfaces? Directives[Const]? FieldsDefinition
//		extend interface Name ImplementsInterfaces? Directives[Const]
//		extend interface Name ImplementsInterfaces
func (p *typeSystemParser) parseInterfaceDefinition(start int, description typesystem.DescriptionID, extension bool) error {
	if err := p.expectKeyword("interface"); err != nil {
		return err
	}

	interfaceName, err := p.parseName()
	if err != nil {
		return err
	}

	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return err
	}

	fields, err := p.parseFieldsDefinition()
	if err != nil {
		return err
	}

	p.w.InterfaceDefinition(typesystem.InterfaceDefinitionRecord{
		Name:                 interfaceName.ID,
		NameSpan:             interfaceName.Span,
		Description:          description,
		ImplementsInterfaces: interfaces,
		Directives:           directives,
		Fields:               fields,
		Span:                 p.spanFrom(start),
	}, extension)
	return nil
}

//	ImplementsInterfaces ::
//		ImplementsInterfaces & NamedType
//		implements &? NamedType
func (p *typeSystemParser) parseImplementsInterfaces() (arena.Range[typesystem.InterfaceReferenceID], error) {
	var empty arena.Range[typesystem.InterfaceReferenceID]

	if hasImplements, err := p.skipKeyword("implements"); err != nil || !hasImplements {
		return empty, err
	}

	// Allow a leading "&".
	if _, err := p.skip(token.KindAmp); err != nil {
		return empty, err
	}

	var records []typesystem.InterfaceReferenceRecord
	for {
		interfaceName, err := p.parseName()
		if err != nil {
			return empty, err
		}
		records = append(records, typesystem.InterfaceReferenceRecord{
			Name: interfaceName.ID,
			Span: interfaceName.Span,
		})

		more, err := p.skip(token.KindAmp)
		if err != nil {
			return empty, err
		} else if !more {
			break
		}
	}

	return p.w.InterfaceReferences(records), nil
}

//	FieldsDefinition ::
//		{ FieldDefinition+ }
//
// An empty range is returned if the next token isn't "{".
func (p *typeSystemParser) parseFieldsDefinition() (arena.Range[typesystem.FieldDefinitionID], error) {
	var empty arena.Range[typesystem.FieldDefinitionID]

	if hasFields, err := p.skip(token.KindLeftBrace); err != nil || !hasFields {
		return empty, err
	}

	var records []typesystem.FieldDefinitionRecord
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return empty, err
		}
		records = append(records, field)

		// Stop on } token.
		stop, err := p.skip(token.KindRightBrace)
		if err != nil {
			return empty, err
		} else if stop {
			break
		}
	}

	return p.w.FieldDefinitions(records), nil
}

//	FieldDefinition ::
//		Description? Name ArgumentsDefinition? : Type Directives[Const]?
func (p *typeSystemParser) parseFieldDefinition() (typesystem.FieldDefinitionRecord, error) {
	start := p.peek().Span.Start

	description, err := p.parseDescription()
	if err != nil {
		return typesystem.FieldDefinitionRecord{}, err
	}

	if p.peek().Kind != token.KindName {
		if description != 0 {
			return typesystem.FieldDefinitionRecord{}, p.unexpected(token.KindName.Description())
		}
		return typesystem.FieldDefinitionRecord{}, p.unexpected(describedNameTokens...)
	}

	fieldName, err := p.parseName()
	if err != nil {
		return typesystem.FieldDefinitionRecord{}, err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return typesystem.FieldDefinitionRecord{}, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return typesystem.FieldDefinitionRecord{}, err
	}

	fieldType, err := p.parseTypeID()
	if err != nil {
		return typesystem.FieldDefinitionRecord{}, err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return typesystem.FieldDefinitionRecord{}, err
	}

	return typesystem.FieldDefinitionRecord{
		Name:        fieldName.ID,
		NameSpan:    fieldName.Span,
		Description: description,
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
		Span:        p.spanFrom(start),
	}, nil
}

//	ArgumentsDefinition ::
//		( InputValueDefinition+ )
//
// An empty range is returned if the next token isn't "(".
func (p *typeSystemParser) parseArgumentsDefinition() (arena.Range[typesystem.InputValueDefinitionID], error) {
	return p.parseInputValueDefinitions(token.KindLeftParen, token.KindRightParen)
}

//	InputFieldsDefinition ::
//		{ InputValueDefinition+ }
//
// An empty range is returned if the next token isn't "{".
func (p *typeSystemParser) parseInputFieldsDefinition() (arena.Range[typesystem.InputValueDefinitionID], error) {
	return p.parseInputValueDefinitions(token.KindLeftBrace, token.KindRightBrace)
}

func (p *typeSystemParser) parseInputValueDefinitions(openKind token.Kind, closeKind token.Kind) (arena.Range[typesystem.InputValueDefinitionID], error) {
	var empty arena.Range[typesystem.InputValueDefinitionID]

	if isOpen, err := p.skip(openKind); err != nil || !isOpen {
		return empty, err
	}

	var records []typesystem.InputValueDefinitionRecord
	for {
		inputValue, err := p.parseInputValueDefinition()
		if err != nil {
			return empty, err
		}
		records = append(records, inputValue)

		stop, err := p.skip(closeKind)
		if err != nil {
			return empty, err
		} else if stop {
			break
		}
	}

	return p.w.InputValueDefinitions(records), nil
}

//	InputValueDefinition ::
//		Description? Name : Type DefaultValue? Directives[Const]?
//
//	DefaultValue ::
//		= Value[Const]
func (p *typeSystemParser) parseInputValueDefinition() (typesystem.InputValueDefinitionRecord, error) {
	start := p.peek().Span.Start

	description, err := p.parseDescription()
	if err != nil {
		return typesystem.InputValueDefinitionRecord{}, err
	}

	if p.peek().Kind != token.KindName {
		if description != 0 {
			return typesystem.InputValueDefinitionRecord{}, p.unexpected(token.KindName.Description())
		}
		return typesystem.InputValueDefinitionRecord{}, p.unexpected(describedNameTokens...)
	}

	valueName, err := p.parseName()
	if err != nil {
		return typesystem.InputValueDefinitionRecord{}, err
	}

	if _, err := p.expect(token.KindColon); err != nil {
		return typesystem.InputValueDefinitionRecord{}, err
	}

	valueType, err := p.parseTypeID()
	if err != nil {
		return typesystem.InputValueDefinitionRecord{}, err
	}

	record := typesystem.InputValueDefinitionRecord{
		Name:        valueName.ID,
		NameSpan:    valueName.Span,
		Description: description,
		Type:        valueType,
	}

	if hasDefault, err := p.skip(token.KindEquals); err != nil {
		return typesystem.InputValueDefinitionRecord{}, err
	} else if hasDefault {
		if record.DefaultValue, err = p.parseConstValueID(); err != nil {
			return typesystem.InputValueDefinitionRecord{}, err
		}
	}

	if record.Directives, err = p.parseOptionalDirectives(); err != nil {
		return typesystem.InputValueDefinitionRecord{}, err
	}

	record.Span = p.spanFrom(start)
	return record, nil
}

//	UnionTypeDefinition ::
//		Description? union Name Directives[Const]? UnionMemberTypes?
//
//	UnionMemberTypes ::
//		UnionMemberTypes | NamedType
//		= |? NamedType
//
//	UnionTypeExtension ::
//		extend union Name Directives[Const]? UnionMemberTypes
//		extend union Name Directives[Const]
func (p *typeSystemParser) parseUnionDefinition(start int, description typesystem.DescriptionID, extension bool) error {
	if err := p.expectKeyword("union"); err != nil {
		return err
	}

	unionName, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return err
	}

	var members arena.Range[typesystem.UnionMemberID]
	if hasMembers, err := p.skip(token.KindEquals); err != nil {
		return err
	} else if hasMembers {
		// Allow a leading "|".
		if _, err := p.skip(token.KindPipe); err != nil {
			return err
		}

		var records []typesystem.UnionMemberRecord
		for {
			memberName, err := p.parseName()
			if err != nil {
				return err
			}
			records = append(records, typesystem.UnionMemberRecord{
				Name: memberName.ID,
				Span: memberName.Span,
			})

			more, err := p.skip(token.KindPipe)
			if err != nil {
				return err
			} else if !more {
				break
			}
		}
		members = p.w.UnionMembers(records)
	}

	p.w.UnionDefinition(typesystem.UnionDefinitionRecord{
		Name:        unionName.ID,
		NameSpan:    unionName.Span,
		Description: description,
		Directives:  directives,
		Members:     members,
		Span:        p.spanFrom(start),
	}, extension)
	return nil
}

//	EnumTypeDefinition ::
//		Description? enum Name Directives[Const]? EnumValuesDefinition?
//
//	EnumValuesDefinition ::
//		{ EnumValueDefinition+ }
//
//	EnumTypeExtension ::
//		extend enum Name Directives[Const]? EnumValuesDefinition
//		extend enum Name Directives[Const]
func (p *typeSystemParser) parseEnumDefinition(start int, description typesystem.DescriptionID, extension bool) error {
	if err := p.expectKeyword("enum"); err != nil {
		return err
	}

	enumName, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return err
	}

	var enumValues arena.Range[typesystem.EnumValueDefinitionID]
	if hasValues, err := p.skip(token.KindLeftBrace); err != nil {
		return err
	} else if hasValues {
		var records []typesystem.EnumValueDefinitionRecord
		for {
			enumValue, err := p.parseEnumValueDefinition()
			if err != nil {
				return err
			}
			records = append(records, enumValue)

			// Stop on } token.
			stop, err := p.skip(token.KindRightBrace)
			if err != nil {
				return err
			} else if stop {
				break
			}
		}
		enumValues = p.w.EnumValueDefinitions(records)
	}

	p.w.EnumDefinition(typesystem.EnumDefinitionRecord{
		Name:        enumName.ID,
		NameSpan:    enumName.Span,
		Description: description,
		Directives:  directives,
		Values:      enumValues,
		Span:        p.spanFrom(start),
	}, extension)
	return nil
}

//	EnumValueDefinition ::
//		Description? EnumValue Directives[Const]?
//
//	EnumValue ::
//		Name but not true or false or null
func (p *typeSystemParser) parseEnumValueDefinition() (typesystem.EnumValueDefinitionRecord, error) {
	start := p.peek().Span.Start

	description, err := p.parseDescription()
	if err != nil {
		return typesystem.EnumValueDefinitionRecord{}, err
	}

	switch tok := p.peek(); {
	case tok.IsKeyword("true"), tok.IsKeyword("false"), tok.IsKeyword("null"):
		return typesystem.EnumValueDefinitionRecord{}, p.unexpected("enum value")
	case tok.Kind != token.KindName && description == 0:
		return typesystem.EnumValueDefinitionRecord{}, p.unexpected(describedNameTokens...)
	}

	enumValue, err := p.parseName()
	if err != nil {
		return typesystem.EnumValueDefinitionRecord{}, err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return typesystem.EnumValueDefinitionRecord{}, err
	}

	return typesystem.EnumValueDefinitionRecord{
		Value:       enumValue.ID,
		ValueSpan:   enumValue.Span,
		Description: description,
		Directives:  directives,
		Span:        p.spanFrom(start),
	}, nil
}

//	InputObjectTypeDefinition ::
//		Description? input Name Directives[Const]? InputFieldsDefinition?
//
//	InputObjectTypeExtension ::
//		extend input Name Directives[Const]? InputFieldsDefinition
//		extend input Name Directives[Const]
func (p *typeSystemParser) parseInputObjectDefinition(start int, description typesystem.DescriptionID, extension bool) error {
	if err := p.expectKeyword("input"); err != nil {
		return err
	}

	inputName, err := p.parseName()
	if err != nil {
		return err
	}

	directives, err := p.parseOptionalDirectives()
	if err != nil {
		return err
	}

	fields, err := p.parseInputFieldsDefinition()
	if err != nil {
		return err
	}

	p.w.InputObjectDefinition(typesystem.InputObjectDefinitionRecord{
		Name:        inputName.ID,
		NameSpan:    inputName.Span,
		Description: description,
		Directives:  directives,
		Fields:      fields,
		Span:        p.spanFrom(start),
	}, extension)
	return nil
}

//	DirectiveDefinition ::
//		Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
//
//	DirectiveLocations ::
//		DirectiveLocations | DirectiveLocation
//		|? DirectiveLocation
func (p *typeSystemParser) parseDirectiveDefinition(start int, description typesystem.DescriptionID) error {
	if err := p.expectKeyword("directive"); err != nil {
		return err
	}

	if _, err := p.expect(token.KindAt); err != nil {
		return err
	}

	directiveName, err := p.parseName()
	if err != nil {
		return err
	}

	arguments, err := p.parseArgumentsDefinition()
	if err != nil {
		return err
	}

	repeatable, err := p.skipKeyword("repeatable")
	if err != nil {
		return err
	}

	if !p.peek().IsKeyword("on") {
		if repeatable {
			return p.unexpected(describeKeyword("on"))
		}
		return p.unexpected(describeKeywords("repeatable", "on")...)
	}
	if err := p.advance(); err != nil {
		return err
	}

	// Allow a leading "|".
	if _, err := p.skip(token.KindPipe); err != nil {
		return err
	}

	var locations []typesystem.DirectiveLocationRecord
	for {
		tok, err := p.expect(token.KindName)
		if err != nil {
			return err
		}

		location, ok := ast.LookupDirectiveLocation(tok.Value)
		if !ok {
			return graphql.NewMalformedDirectiveLocationError(p.source, tok.Span, tok.Value)
		}
		locations = append(locations, typesystem.DirectiveLocationRecord{
			Location: location,
			Span:     tok.Span,
		})

		more, err := p.skip(token.KindPipe)
		if err != nil {
			return err
		} else if !more {
			break
		}
	}

	p.w.DirectiveDefinition(typesystem.DirectiveDefinitionRecord{
		Name:        directiveName.ID,
		NameSpan:    directiveName.Span,
		Description: description,
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   p.w.DirectiveLocations(locations),
		Span:        p.spanFrom(start),
	})
	return nil
}

// parseTypeID parses a type and stores it.
func (p *typeSystemParser) parseTypeID() (typesystem.TypeID, error) {
	t, err := p.parseType()
	if err != nil {
		return 0, err
	}
	return p.w.Type(typesystem.TypeRecord{
		Name:     t.name.ID,
		NameSpan: t.name.Span,
		Wrappers: t.wrappers,
		Span:     t.span,
	}), nil
}

// parseOptionalDirectives parses the directives applied to a definition. All arguments of
// directives in a type system document are const.
//
//	Directives[Const] ::
//		Directive[?Const]+
func (p *typeSystemParser) parseOptionalDirectives() (arena.Range[typesystem.DirectiveID], error) {
	var records []typesystem.DirectiveRecord
	for p.peek().Kind == token.KindAt {
		directive, err := p.parseDirective()
		if err != nil {
			return arena.Range[typesystem.DirectiveID]{}, err
		}
		records = append(records, directive)
	}
	if len(records) == 0 {
		return arena.Range[typesystem.DirectiveID]{}, nil
	}
	return p.w.Directives(records), nil
}

//	Directive[Const] ::
//		@ Name Arguments[?Const]?
func (p *typeSystemParser) parseDirective() (typesystem.DirectiveRecord, error) {
	at, err := p.expect(token.KindAt)
	if err != nil {
		return typesystem.DirectiveRecord{}, err
	}

	directiveName, err := p.parseName()
	if err != nil {
		return typesystem.DirectiveRecord{}, err
	}

	var arguments arena.Range[typesystem.ArgumentID]
	if p.peek().Kind == token.KindLeftParen {
		if arguments, err = p.parseArguments(); err != nil {
			return typesystem.DirectiveRecord{}, err
		}
	}

	return typesystem.DirectiveRecord{
		Name:      directiveName.ID,
		NameSpan:  directiveName.Span,
		Arguments: arguments,
		Span:      p.spanFrom(at.Span.Start),
	}, nil
}

//	Arguments[Const] ::
//		( Argument[?Const]+ )
//
//	Argument[Const] ::
//		Name : Value[?Const]
func (p *typeSystemParser) parseArguments() (arena.Range[typesystem.ArgumentID], error) {
	var empty arena.Range[typesystem.ArgumentID]

	if _, err := p.expect(token.KindLeftParen); err != nil {
		return empty, err
	}

	var records []typesystem.ArgumentRecord
	for {
		argumentName, err := p.parseName()
		if err != nil {
			return empty, err
		}

		if _, err := p.expect(token.KindColon); err != nil {
			return empty, err
		}

		value, err := p.parseConstValueID()
		if err != nil {
			return empty, err
		}

		records = append(records, typesystem.ArgumentRecord{
			Name:     argumentName.ID,
			NameSpan: argumentName.Span,
			Value:    value,
			Span:     p.spanFrom(argumentName.Span.Start),
		})

		// Stop on ) token.
		stop, err := p.skip(token.KindRightParen)
		if err != nil {
			return empty, err
		} else if stop {
			break
		}
	}

	return p.w.Arguments(records), nil
}

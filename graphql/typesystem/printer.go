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

package typesystem

import (
	"cmp"
	"slices"

	"github.com/botobag/gqlparse/graphql/arena"
	"github.com/botobag/gqlparse/graphql/internal/printer"
	"github.com/botobag/gqlparse/graphql/values"
)

// PrettyPrinter prints a Document as SDL.
type PrettyPrinter struct {
	doc    *Document
	sorted bool
}

// Pretty returns a printer for the document. Without options it prints the same text as ToSDL.
func (doc *Document) Pretty() PrettyPrinter {
	return PrettyPrinter{doc: doc}
}

// Sorted makes the printer order definitions by kind then name, and fields, arguments and enum
// values by name, so that the output of equivalent schemas can be diffed.
func (p PrettyPrinter) Sorted() PrettyPrinter {
	p.sorted = true
	return p
}

// String returns the printed document.
func (p PrettyPrinter) String() string {
	s := sdlPrinter{sorted: p.sorted}
	s.document(p.doc)
	return s.w.String()
}

// ToSDL prints the document as SDL. Definitions are separated by a blank line and the output ends
// with a newline. Parsing the output yields a document with the same content.
func (doc *Document) ToSDL() string {
	return doc.Pretty().String()
}

func (doc *Document) String() string {
	return doc.ToSDL()
}

type sdlPrinter struct {
	w      printer.Writer
	sorted bool
}

func (p *sdlPrinter) document(doc *Document) {
	definitions := doc.Definitions().Collect()
	if p.sorted {
		slices.SortStableFunc(definitions, func(a, b Definition) int {
			aKind, aName := definitionSortKey(a)
			bKind, bName := definitionSortKey(b)
			if c := cmp.Compare(aKind, bKind); c != 0 {
				return c
			}
			return cmp.Compare(aName, bName)
		})
	}

	for i, definition := range definitions {
		if i > 0 {
			p.w.BlankLine()
		}
		p.definition(definition)
	}

	if len(definitions) > 0 {
		p.w.WriteString("\n")
	}
}

func definitionSortKey(definition Definition) (DefinitionKind, string) {
	switch definition := definition.(type) {
	case SchemaDefinition, SchemaExtension:
		return DefinitionKindSchema, ""
	case DirectiveDefinition:
		return DefinitionKindDirective, definition.Name()
	case TypeExtension:
		return definition.Kind(), definition.Name()
	case TypeDefinition:
		return definition.Kind(), definition.Name()
	}
	return 0, ""
}

func (p *sdlPrinter) definition(definition Definition) {
	switch definition := definition.(type) {
	case SchemaDefinition:
		p.schema(definition)
	case SchemaExtension:
		p.w.WriteString("extend ")
		p.schema(definition.SchemaDefinition)
	case TypeExtension:
		p.w.WriteString("extend ")
		p.typeDefinition(definition.Definition())
	case TypeDefinition:
		p.typeDefinition(definition)
	case DirectiveDefinition:
		p.directiveDefinition(definition)
	}
}

func (p *sdlPrinter) description(description Description, ok bool) {
	if ok {
		writeDescriptionLiteral(&p.w, description)
		p.w.NewLine()
	}
}

func (p *sdlPrinter) schema(schema SchemaDefinition) {
	p.description(schema.Description())
	p.w.WriteString("schema")
	p.directives(schema.Directives())

	roots := schema.RootOperations()
	if roots.IsEmpty() {
		return
	}
	p.w.WriteString(" ")
	p.w.BeginBlock()
	for root := range roots.All() {
		p.w.NewLine()
		p.w.WriteString(root.OperationType().String())
		p.w.WriteString(": ")
		p.w.WriteString(root.NamedType())
	}
	p.w.EndBlock()
}

func (p *sdlPrinter) typeDefinition(definition TypeDefinition) {
	p.description(definition.Description())
	p.w.WriteString(definition.Kind().String())
	p.w.WriteString(" ")
	p.w.WriteString(definition.Name())

	switch definition := definition.(type) {
	case ScalarDefinition:
		p.directives(definition.Directives())

	case ObjectDefinition:
		p.implements(definition.ImplementsInterfaces())
		p.directives(definition.Directives())
		p.fields(definition.Fields())

	case InterfaceDefinition:
		p.implements(definition.ImplementsInterfaces())
		p.directives(definition.Directives())
		p.fields(definition.Fields())

	case UnionDefinition:
		p.directives(definition.Directives())
		members := definition.Members()
		if !members.IsEmpty() {
			p.w.WriteString(" =")
			for i := 0; i < members.Len(); i++ {
				if i > 0 {
					p.w.WriteString(" |")
				}
				p.w.WriteString(" ")
				p.w.WriteString(members.At(i).Name())
			}
		}

	case EnumDefinition:
		p.directives(definition.Directives())
		p.enumValues(definition.Values())

	case InputObjectDefinition:
		p.directives(definition.Directives())
		inputFields := definition.Fields().Collect()
		if len(inputFields) > 0 {
			sortByName(p.sorted, inputFields, InputValueDefinition.Name)
			p.w.WriteString(" ")
			p.w.BeginBlock()
			for i, field := range inputFields {
				p.separate(i, field.Description)
				p.inputValue(field)
			}
			p.w.EndBlock()
		}
	}
}

func (p *sdlPrinter) implements(interfaces arena.Iter[InterfaceReferenceID, InterfaceReference]) {
	if interfaces.IsEmpty() {
		return
	}
	p.w.WriteString(" implements ")
	for i := 0; i < interfaces.Len(); i++ {
		if i > 0 {
			p.w.WriteString(" & ")
		}
		p.w.WriteString(interfaces.At(i).Name())
	}
}

// separate starts the line for the i-th entry of a block. Entries with a description are set apart
// from the previous entry by a blank line.
func (p *sdlPrinter) separate(i int, description func() (Description, bool)) {
	if _, ok := description(); ok && i > 0 {
		p.w.WriteString("\n")
	}
	p.w.NewLine()
}

func (p *sdlPrinter) fields(iter arena.Iter[FieldDefinitionID, FieldDefinition]) {
	fields := iter.Collect()
	if len(fields) == 0 {
		return
	}
	sortByName(p.sorted, fields, FieldDefinition.Name)

	p.w.WriteString(" ")
	p.w.BeginBlock()
	for i, field := range fields {
		p.separate(i, field.Description)
		p.description(field.Description())
		p.w.WriteString(field.Name())
		p.argumentDefinitions(field.Arguments())
		p.w.WriteString(": ")
		p.w.WriteString(field.Type().String())
		p.directives(field.Directives())
	}
	p.w.EndBlock()
}

func (p *sdlPrinter) enumValues(iter arena.Iter[EnumValueDefinitionID, EnumValueDefinition]) {
	enumValues := iter.Collect()
	if len(enumValues) == 0 {
		return
	}
	sortByName(p.sorted, enumValues, EnumValueDefinition.Value)

	p.w.WriteString(" ")
	p.w.BeginBlock()
	for i, value := range enumValues {
		p.separate(i, value.Description)
		p.description(value.Description())
		p.w.WriteString(value.Value())
		p.directives(value.Directives())
	}
	p.w.EndBlock()
}

// argumentDefinitions prints arguments on one line unless one of them is described, in which case
// each argument gets a line of its own.
func (p *sdlPrinter) argumentDefinitions(iter arena.Iter[InputValueDefinitionID, InputValueDefinition]) {
	arguments := iter.Collect()
	if len(arguments) == 0 {
		return
	}
	sortByName(p.sorted, arguments, InputValueDefinition.Name)

	multiline := slices.ContainsFunc(arguments, func(argument InputValueDefinition) bool {
		_, ok := argument.Description()
		return ok
	})

	p.w.WriteString("(")
	if multiline {
		p.w.Indent()
		for i, argument := range arguments {
			p.separate(i, argument.Description)
			p.inputValue(argument)
		}
		p.w.Dedent()
		p.w.NewLine()
	} else {
		for i, argument := range arguments {
			if i > 0 {
				p.w.WriteString(", ")
			}
			p.inputValue(argument)
		}
	}
	p.w.WriteString(")")
}

func (p *sdlPrinter) inputValue(value InputValueDefinition) {
	p.description(value.Description())
	p.w.WriteString(value.Name())
	p.w.WriteString(": ")
	p.w.WriteString(value.Type().String())
	if defaultValue, ok := value.DefaultValue(); ok {
		p.w.WriteString(" = ")
		values.Write(&p.w, defaultValue)
	}
	p.directives(value.Directives())
}

func (p *sdlPrinter) directiveDefinition(directive DirectiveDefinition) {
	p.description(directive.Description())
	p.w.WriteString("directive @")
	p.w.WriteString(directive.Name())
	p.argumentDefinitions(directive.Arguments())
	if directive.IsRepeatable() {
		p.w.WriteString(" repeatable")
	}
	p.w.WriteString(" on")
	for i, location := range directive.Locations().Collect() {
		if i > 0 {
			p.w.WriteString(" |")
		}
		p.w.WriteString(" ")
		p.w.WriteString(location.Location().String())
	}
}

func (p *sdlPrinter) directives(directives arena.Iter[DirectiveID, Directive]) {
	for directive := range directives.All() {
		p.w.WriteString(" @")
		p.w.WriteString(directive.Name())

		arguments := directive.Arguments()
		if arguments.IsEmpty() {
			continue
		}
		p.w.WriteString("(")
		for i := 0; i < arguments.Len(); i++ {
			if i > 0 {
				p.w.WriteString(", ")
			}
			argument := arguments.At(i)
			p.w.WriteString(argument.Name())
			p.w.WriteString(": ")
			values.Write(&p.w, argument.Value())
		}
		p.w.WriteString(")")
	}
}

func sortByName[T any](sorted bool, items []T, name func(T) string) {
	if sorted {
		slices.SortStableFunc(items, func(a, b T) int {
			return cmp.Compare(name(a), name(b))
		})
	}
}

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
	"io"
	"strconv"
	"strings"

	"github.com/botobag/gqlparse/graphql/ast"
	"github.com/botobag/gqlparse/graphql/token"
	"github.com/botobag/gqlparse/internal/util"

	"github.com/fatih/color"
	"github.com/rivo/uniseg"
)

// Label points at a span of the source with a short explanation.
type Label struct {
	Span    token.Span
	Message string
}

// Report is a human-readable diagnostic for an Error. It is a presentation of the error and has
// no effect on parsing.
type Report struct {
	// Message is the headline of the report.
	Message string

	// Label is the annotated span. It is nil for errors that aren't tied to a position in the source.
	Label *Label

	// Note lists the tokens that would have been accepted.
	Note string

	// Help suggests a fix.
	Help string

	source *token.Source
}

// ReportOptions configures Report.Render.
type ReportOptions struct {
	// Color enables ANSI colors in the output.
	Color bool
}

// ToReport builds a Report for the error against the text it was parsed from.
func (e *Error) ToReport(source string) *Report {
	report := &Report{
		Message: e.Message,
		source:  token.NewSource(e.SourceName, source),
	}

	label := func(message string) {
		report.Label = &Label{Span: e.Span, Message: message}
	}

	switch e.Kind {
	case ErrKindInvalidToken:
		label("could not understand this token")

	case ErrKindLexical:
		label("could not parse a token here")

	case ErrKindUnrecognizedEOF:
		label("expected another token here")

	case ErrKindUnrecognizedToken:
		label("didn't expect to see this")

	case ErrKindExtraToken:
		label("we expected the document to end here")

	case ErrKindMalformedStringLiteral:
		label("error occurred here")

	case ErrKindMalformedDirectiveLocation:
		label("this is not a valid directive location")
		if suggestions := util.SuggestionList(e.Location, ast.DirectiveLocationNames()); len(suggestions) > 0 {
			report.Help = fmt.Sprintf("did you mean %s?", util.OrList(suggestions, 3, false))
		}

	case ErrKindVariableInConstPosition:
		label("only non-variable values can be used here")

	case ErrKindRecursionLimit:
		label("the limit was reached here")
	}

	if len(e.Expected) > 0 {
		report.Note = "expected one of " + strings.Join(e.Expected, ", ")
	}

	return report
}

// String renders the report without colors.
func (r *Report) String() string {
	var b strings.Builder
	r.Render(&b, ReportOptions{})
	return b.String()
}

type reportStyle struct {
	header *color.Color
	gutter *color.Color
	label  *color.Color
	note   *color.Color
}

func newReportStyle(enabled bool) reportStyle {
	style := reportStyle{
		header: color.New(color.FgRed, color.Bold),
		gutter: color.New(color.FgBlue),
		label:  color.New(color.FgRed),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{style.header, style.gutter, style.label, style.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return style
}

// Render writes the report to w. Reports with a label show the source line under a header giving
// its location, with carets under the labeled span:
//
//	Error: unexpected closing brace ('}')
//	   ╭─[GraphQL request:1:12]
//	   │
//	 1 │ type Blah {}
//	   │            ^ didn't expect to see this
//	   │
//	   │ Note: expected one of string literal, block string, name
//	───╯
func (r *Report) Render(w io.Writer, opts ReportOptions) error {
	style := newReportStyle(opts.Color)

	var b strings.Builder
	b.WriteString(style.header.Sprint("Error:"))
	b.WriteString(" ")
	b.WriteString(r.Message)
	b.WriteString("\n")

	if r.Label == nil {
		_, err := io.WriteString(w, strings.TrimSuffix(b.String(), "\n"))
		return err
	}

	info := r.source.LocationInfoOf(r.Label.Span.Start)
	lineNumber := strconv.Itoa(info.Line)
	pad := strings.Repeat(" ", len(lineNumber)+1)
	gutter := func(prefix string) {
		b.WriteString(style.gutter.Sprint(prefix))
	}

	gutter(fmt.Sprintf("%s ╭─[%s:%d:%d]", pad, info.Name, info.Line, info.Column))
	b.WriteString("\n")
	gutter(pad + " │")
	b.WriteString("\n")

	// The label covers at most the rest of the line the span starts on.
	lineStart := r.source.LineStart(info.Line)
	line := r.source.Line(info.Line)
	start := r.Label.Span.Start - lineStart
	if start > len(line) {
		start = len(line)
	}
	end := r.Label.Span.End - lineStart
	if end > len(line) {
		end = len(line)
	}
	if end < start {
		end = start
	}

	gutter(" " + lineNumber + " │")
	b.WriteString(" ")
	b.WriteString(expandTabs(line))
	b.WriteString("\n")

	gutter(pad + " │")
	b.WriteString(" ")
	b.WriteString(strings.Repeat(" ", displayWidth(line[:start])))
	carets := displayWidth(line[start:end])
	if carets == 0 {
		carets = 1
	}
	b.WriteString(style.label.Sprint(strings.Repeat("^", carets) + " " + r.Label.Message))
	b.WriteString("\n")

	if len(r.Note) > 0 || len(r.Help) > 0 {
		gutter(pad + " │")
		b.WriteString("\n")
	}
	if len(r.Note) > 0 {
		gutter(pad + " │")
		b.WriteString(" ")
		b.WriteString(style.note.Sprint("Note:"))
		b.WriteString(" ")
		b.WriteString(r.Note)
		b.WriteString("\n")
	}
	if len(r.Help) > 0 {
		gutter(pad + " │")
		b.WriteString(" ")
		b.WriteString(style.note.Sprint("Help:"))
		b.WriteString(" ")
		b.WriteString(r.Help)
		b.WriteString("\n")
	}

	gutter(strings.Repeat("─", len(pad)+1) + "╯")
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

const tabWidth = 4

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// displayWidth returns the number of terminal columns taken by s.
func displayWidth(s string) int {
	return uniseg.StringWidth(expandTabs(s))
}

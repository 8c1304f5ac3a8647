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

// Package executable holds parsed GraphQL executable documents: operations and fragments. Like the
// typesystem package, a Document keeps its records in flat arenas addressed by typed IDs, and
// readers are cheap views over them.
package executable

// Each ID is the 1-based index of a record in the Document arena of the same kind. The zero value
// refers to nothing.
type (
	// DefinitionID refers to an entry in the ordered list of top-level definitions.
	DefinitionID uint32

	OperationDefinitionID uint32
	FragmentDefinitionID  uint32

	// SelectionID refers to an entry of a selection set. Entries of one selection set are
	// contiguous.
	SelectionID uint32

	FieldSelectionID uint32
	InlineFragmentID uint32
	FragmentSpreadID uint32

	VariableDefinitionID uint32
	TypeID               uint32
	DirectiveID          uint32
	ArgumentID           uint32
)

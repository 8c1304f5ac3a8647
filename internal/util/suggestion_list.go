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

package util

import (
	"cmp"
	"slices"
	"strings"
)

// SuggestionList returns the options that look like a misspelling of input, closest first. Options
// at the same distance keep their relative order.
func SuggestionList(input string, options []string) []string {
	type candidate struct {
		option   string
		distance int
	}

	var candidates []candidate
	for _, option := range options {
		distance := lexicalDistance(input, option)
		// distance <= max(len(input)/2, len(option)/2, 1)
		if 2*distance <= max(len(input), len(option), 2) {
			candidates = append(candidates, candidate{option, distance})
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(a.distance, b.distance)
	})

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.option
	}
	return result
}

// lexicalDistance computes the optimal string alignment distance between a and b: the number of
// insertions, deletions, substitutions and adjacent transpositions needed to turn one into the
// other. Strings that differ only in case are one edit apart.
func lexicalDistance(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))
	if slices.Equal(ra, rb) {
		return 1
	}

	// Only the last three rows of the distance matrix are needed.
	prev2 := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d = min(d, prev2[j-2]+cost)
			}
			curr[j] = d
		}
		prev2, prev, curr = prev, curr, prev2
	}

	return prev[len(rb)]
}

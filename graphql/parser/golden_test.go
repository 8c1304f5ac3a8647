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

package parser_test

import (
	"os"
	"path/filepath"

	"github.com/botobag/gqlparse/graphql/parser"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func readTestdata(name string) string {
	content, err := os.ReadFile(filepath.Join("testdata", name))
	Expect(err).ShouldNot(HaveOccurred())
	return string(content)
}

var _ = Describe("Golden files", func() {
	It("prints the kitchen sink schema", func() {
		doc, err := parser.ParseTypeSystemDocument(readTestdata("kitchen_sink.graphql"),
			parser.WithSourceName("kitchen_sink.graphql"))
		Expect(err).ShouldNot(HaveOccurred())

		golden := readTestdata("kitchen_sink.golden.graphql")
		Expect(doc.ToSDL()).Should(Equal(golden))
		Expect(doc.Pretty().Sorted().String()).Should(Equal(readTestdata("kitchen_sink.sorted.graphql")))

		// Printing is idempotent.
		reparsed, err := parser.ParseTypeSystemDocument(golden)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(reparsed.ToSDL()).Should(Equal(golden))
	})

	It("prints operations", func() {
		doc, err := parser.ParseExecutableDocument(readTestdata("operations.graphql"))
		Expect(err).ShouldNot(HaveOccurred())

		golden := readTestdata("operations.golden.graphql")
		Expect(doc.String()).Should(Equal(golden))

		reparsed, err := parser.ParseExecutableDocument(golden)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(reparsed.String()).Should(Equal(golden))
	})
})

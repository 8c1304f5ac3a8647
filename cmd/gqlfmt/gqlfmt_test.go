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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(stdin string, args ...string) result {
	cmd := newRootCommand()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--color=never"))

	err := cmd.Execute()
	return result{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
	}
}

var _ = Describe("gqlfmt", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "gqlfmt")
		Expect(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).Should(Succeed())
	})

	writeFile := func(name string, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0644)).Should(Succeed())
		return path
	}

	readFile := func(path string) string {
		content, err := os.ReadFile(path)
		Expect(err).ShouldNot(HaveOccurred())
		return string(content)
	}

	Describe("fmt", func() {
		It("formats standard input", func() {
			r := run("type  Query{a:Int b( x :Int=1):[ String! ]}", "fmt")
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stdout).Should(Equal("type Query {\n  a: Int\n  b(x: Int = 1): [String!]\n}\n"))
			Expect(r.stderr).Should(BeEmpty())
		})

		It("sorts definitions", func() {
			r := run("type B { b: Int } type A { z: Int a: Int }", "fmt", "--sorted")
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stdout).Should(Equal("type A {\n  a: Int\n  z: Int\n}\n\ntype B {\n  b: Int\n}\n"))
		})

		It("formats executable documents", func() {
			r := run("query { a { b } }", "fmt", "--executable")
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stdout).Should(Equal("{\n  a {\n    b\n  }\n}\n"))
		})

		It("reports syntax errors", func() {
			r := run("type Blah {}", "fmt")
			Expect(r.err).Should(MatchError("1 of 1 documents failed to parse"))
			Expect(r.stdout).Should(BeEmpty())
			Expect(r.stderr).Should(ContainSubstring(strings.Join([]string{
				"Error: unexpected closing brace ('}')",
				"   ╭─[GraphQL request:1:12]",
				"   │",
				" 1 │ type Blah {}",
				"   │            ^ didn't expect to see this",
			}, "\n")))
		})

		It("rewrites files", func() {
			messy := writeFile("messy.graphql", "scalar   Date")
			clean := writeFile("clean.graphql", "scalar Time\n")

			r := run("", "fmt", "-w", messy, clean)
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stdout).Should(BeEmpty())
			Expect(readFile(messy)).Should(Equal("scalar Date\n"))
			Expect(readFile(clean)).Should(Equal("scalar Time\n"))
		})

		It("lists files that need formatting", func() {
			messy := writeFile("messy.graphql", "scalar   Date")
			clean := writeFile("clean.graphql", "scalar Time\n")

			r := run("", "fmt", "-l", messy, clean)
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stdout).Should(Equal(messy + "\n"))
			Expect(readFile(messy)).Should(Equal("scalar   Date"))
		})

		It("logs progress when verbose", func() {
			r := run("scalar Date", "fmt", "--verbose")
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stderr).Should(ContainSubstring("formatted document"))
		})

		It("honors the maximum depth", func() {
			r := run("{ a { b { c } } }", "fmt", "-e", "--max-depth=2")
			Expect(r.err).Should(HaveOccurred())
			Expect(r.stderr).Should(ContainSubstring("the selection set is nested too deeply"))
		})
	})

	Describe("check", func() {
		It("reports every failing file", func() {
			good := writeFile("good.graphql", "type Query { a: Int }")
			bad := writeFile("bad.graphql", "type Blah {}")
			empty := writeFile("empty.graphql", "  ")

			r := run("", "check", good, bad, empty)
			Expect(r.err).Should(MatchError("2 of 3 documents failed to parse"))
			Expect(r.stdout).Should(BeEmpty())
			Expect(r.stderr).Should(ContainSubstring(fmt.Sprintf("[%s:1:12]", bad)))
			Expect(r.stderr).Should(ContainSubstring(
				"Error: the graphql document was empty, please provide at least one definition\n"))
		})

		It("succeeds when every file parses", func() {
			a := writeFile("a.graphql", "{ a }")
			b := writeFile("b.graphql", "fragment F on T { b }")

			r := run("", "check", "-e", "-j", "1", a, b)
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stderr).Should(BeEmpty())
		})

		It("prints results as JSON", func() {
			good := writeFile("good.graphql", "type Query { a: Int }")
			bad := writeFile("bad.graphql", "type Blah {}")

			r := run("", "check", "--json", good, bad)
			Expect(r.err).Should(HaveOccurred())
			Expect(r.stderr).Should(BeEmpty())
			Expect(r.stdout).Should(MatchJSON(fmt.Sprintf(`[
				{"file": %q, "ok": true},
				{
					"file": %q,
					"ok": false,
					"error": {
						"message": "unexpected closing brace ('}')",
						"kind": "unrecognized token",
						"locations": [{"line": 1, "column": 12}],
						"span": {"start": 11, "end": 12},
						"expected": ["string literal", "block string", "name"]
					}
				}
			]`, good, bad)))
		})
	})

	Describe("tokens", func() {
		It("prints tokens", func() {
			r := run("type Foo {\n  bar: [Int!]\n}", "tokens")
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stdout).Should(Equal(strings.Join([]string{
				"1:1\t0..4\tname 'type'",
				"1:6\t5..8\tname 'Foo'",
				"1:10\t9..10\topen brace ('{')",
				"2:3\t13..16\tname 'bar'",
				"2:6\t16..17\tcolon (':')",
				"2:8\t18..19\topen bracket ('[')",
				"2:9\t19..22\tname 'Int'",
				"2:12\t22..23\texclamation mark ('!')",
				"2:13\t23..24\tclosing bracket (']')",
				"3:1\t25..26\tclosing brace ('}')",
				"",
			}, "\n")))
		})

		It("prints tokens as JSON", func() {
			r := run(`scalar "x" 1.5`, "tokens", "--json")
			Expect(r.err).ShouldNot(HaveOccurred())
			Expect(r.stdout).Should(MatchJSON(`[
				{"kind": "name", "value": "scalar", "line": 1, "column": 1, "start": 0, "end": 6},
				{"kind": "string literal", "value": "\"x\"", "line": 1, "column": 8, "start": 7, "end": 10},
				{"kind": "floating point value", "value": "1.5", "line": 1, "column": 12, "start": 11, "end": 14}
			]`))
		})

		It("stops at lexical errors", func() {
			r := run("type ?", "tokens")
			Expect(r.err).Should(MatchError("<stdin>: lexing stopped after 1 tokens"))
			Expect(r.stderr).Should(ContainSubstring("could not parse a token here"))
		})

		It("reads at most one file", func() {
			r := run("", "tokens", "a.graphql", "b.graphql")
			Expect(r.err).Should(HaveOccurred())
		})
	})

	It("rejects unknown color modes", func() {
		cmd := newRootCommand()
		cmd.SetArgs([]string{"fmt", "--color=sometimes"})
		cmd.SetIn(strings.NewReader("scalar S"))
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		Expect(cmd.Execute()).Should(MatchError(ContainSubstring("invalid value \"sometimes\" for --color")))
	})
})

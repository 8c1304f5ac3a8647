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

package arena_test

import (
	"slices"

	"github.com/botobag/gqlparse/graphql/arena"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type widgetID uint32

type widget struct {
	name string
}

var _ = Describe("Arena", func() {
	var widgets *arena.Arena[widgetID, widget]

	BeforeEach(func() {
		widgets = &arena.Arena[widgetID, widget]{}
	})

	It("hands out non-zero IDs in order", func() {
		Expect(widgets.Next()).Should(Equal(widgetID(1)))
		Expect(widgets.Append(widget{"a"})).Should(Equal(widgetID(1)))
		Expect(widgets.Append(widget{"b"})).Should(Equal(widgetID(2)))
		Expect(widgets.Len()).Should(Equal(2))
		Expect(widgets.Lookup(2).name).Should(Equal("b"))
	})

	It("appends a batch contiguously", func() {
		widgets.Append(widget{"first"})
		r := widgets.AppendAll([]widget{{"x"}, {"y"}, {"z"}})
		Expect(r.Start()).Should(Equal(widgetID(2)))
		Expect(r.End()).Should(Equal(widgetID(5)))
		Expect(r.Len()).Should(Equal(3))
		Expect(widgets.Lookup(r.At(2)).name).Should(Equal("z"))
	})

	It("allows modifying records in place", func() {
		id := widgets.Append(widget{"draft"})
		widgets.Lookup(id).name = "final"
		Expect(widgets.Lookup(id).name).Should(Equal("final"))
	})

	It("iterates over every record", func() {
		widgets.AppendAll([]widget{{"x"}, {"y"}})
		var names []string
		for id, record := range widgets.All() {
			Expect(widgets.Lookup(id)).Should(BeIdenticalTo(record))
			names = append(names, record.name)
		}
		Expect(names).Should(Equal([]string{"x", "y"}))
	})

	It("panics for IDs that refer to nothing", func() {
		widgets.Append(widget{"a"})
		Expect(func() { widgets.Lookup(0) }).Should(Panic())
		Expect(func() { widgets.Lookup(2) }).Should(Panic())
	})
})

var _ = Describe("Range", func() {
	It("is half-open", func() {
		r := arena.NewRange[widgetID](3, 6)
		Expect(r.Len()).Should(Equal(3))
		Expect(r.IsEmpty()).Should(BeFalse())
		Expect(r.Contains(3)).Should(BeTrue())
		Expect(r.Contains(5)).Should(BeTrue())
		Expect(r.Contains(6)).Should(BeFalse())
		Expect(r.String()).Should(Equal("[3, 6)"))
	})

	It("iterates in both directions", func() {
		r := arena.NewRange[widgetID](3, 6)
		Expect(slices.Collect(r.All())).Should(Equal([]widgetID{3, 4, 5}))
		Expect(slices.Collect(r.Backward())).Should(Equal([]widgetID{5, 4, 3}))
	})

	It("supports early termination", func() {
		var seen []widgetID
		for id := range arena.NewRange[widgetID](1, 10).All() {
			if id == 3 {
				break
			}
			seen = append(seen, id)
		}
		Expect(seen).Should(Equal([]widgetID{1, 2}))
	})

	It("has empty ranges", func() {
		Expect(arena.EmptyRange[widgetID]().Len()).Should(Equal(0))
		Expect(arena.EmptyRange[widgetID]().IsEmpty()).Should(BeTrue())
		Expect(slices.Collect(arena.EmptyRange[widgetID]().All())).Should(BeEmpty())
		Expect(arena.NewRange[widgetID](4, 4).IsEmpty()).Should(BeTrue())
	})

	It("rejects inverted ranges", func() {
		Expect(func() { arena.NewRange[widgetID](4, 3) }).Should(Panic())
	})

	It("tests overlap", func() {
		Expect(arena.NewRange[widgetID](1, 3).Overlaps(arena.NewRange[widgetID](2, 5))).Should(BeTrue())
		Expect(arena.NewRange[widgetID](1, 3).Overlaps(arena.NewRange[widgetID](3, 5))).Should(BeFalse())
		Expect(arena.NewRange[widgetID](2, 2).Overlaps(arena.NewRange[widgetID](1, 5))).Should(BeFalse())
	})

	It("provides ID operations", func() {
		Expect(arena.Forward[widgetID](4)).Should(Equal(widgetID(5)))
		Expect(arena.Back[widgetID](4)).Should(Equal(widgetID(3)))
		Expect(arena.Distance[widgetID](4, 9)).Should(Equal(5))
		Expect(arena.Distance[widgetID](9, 4)).Should(Equal(-5))
		Expect(arena.Index[widgetID](1)).Should(Equal(0))
		Expect(arena.FromIndex[widgetID](0)).Should(Equal(widgetID(1)))
	})
})

var _ = Describe("Iter", func() {
	It("reads every ID of its range", func() {
		names := []string{"", "zero", "one", "two", "three"}
		it := arena.NewIter(arena.NewRange[widgetID](2, 5), func(id widgetID) string {
			return names[id]
		})
		Expect(it.Len()).Should(Equal(3))
		Expect(it.At(0)).Should(Equal("one"))
		Expect(it.Collect()).Should(Equal([]string{"one", "two", "three"}))
		Expect(slices.Collect(it.Backward())).Should(Equal([]string{"three", "two", "one"}))

		// Restartable
		Expect(it.Collect()).Should(Equal([]string{"one", "two", "three"}))
	})
})

var _ = Describe("Strings", func() {
	It("interns strings", func() {
		strings := arena.NewStrings()
		a := strings.Intern("String")
		b := strings.Intern("Int")
		Expect(strings.Intern("String")).Should(Equal(a))
		Expect(a).ShouldNot(Equal(b))
		Expect(a).Should(Equal(arena.StringID(1)))
		Expect(strings.Lookup(b)).Should(Equal("Int"))
		Expect(strings.Len()).Should(Equal(2))

		id, found := strings.Find("Int")
		Expect(found).Should(BeTrue())
		Expect(id).Should(Equal(b))

		_, found = strings.Find("Float")
		Expect(found).Should(BeFalse())
	})
})

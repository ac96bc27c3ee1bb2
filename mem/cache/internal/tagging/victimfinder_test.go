package tagging

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func fullSet(tags ...uint64) *Set {
	set := &Set{NumWays: len(tags)}
	for _, t := range tags {
		set.Append(Block{Tag: t, IsValid: true})
	}

	return set
}

var _ = Describe("VictimFinder", func() {
	Context("FIFO", func() {
		var finder *FIFOVictimFinder

		BeforeEach(func() {
			finder = NewFIFOVictimFinder()
		})

		It("should not reorder on visit", func() {
			set := fullSet(1, 2, 3)

			finder.Visit(set, 0)

			Expect(tagsOf(set)).To(Equal([]uint64{1, 2, 3}))
		})

		It("should evict the oldest block", func() {
			set := fullSet(1, 2, 3)

			victim := finder.FindVictim(set)

			Expect(victim.Tag).To(Equal(uint64(1)))
			Expect(tagsOf(set)).To(Equal([]uint64{2, 3, 1}))
		})

		It("should prefer an invalid block", func() {
			set := fullSet(1, 2, 3)
			set.Blocks[1].IsValid = false

			victim := finder.FindVictim(set)

			Expect(victim.Tag).To(Equal(uint64(2)))
			Expect(tagsOf(set)).To(Equal([]uint64{1, 3, 2}))
		})
	})

	Context("LRU", func() {
		var finder *LRUVictimFinder

		BeforeEach(func() {
			finder = NewLRUVictimFinder()
		})

		It("should move the visited block to the back", func() {
			set := fullSet(1, 2, 3, 4)

			finder.Visit(set, 0)

			Expect(tagsOf(set)).To(Equal([]uint64{2, 3, 4, 1}))
		})

		It("should evict the least recently used block", func() {
			set := fullSet(1, 2, 3, 4)
			finder.Visit(set, 0)

			victim := finder.FindVictim(set)

			Expect(victim.Tag).To(Equal(uint64(2)))
		})
	})

	Context("Random", func() {
		It("should evict a block of the set", func() {
			finder := NewRandomVictimFinder(1)
			set := fullSet(1, 2, 3, 4)

			victim := finder.FindVictim(set)

			Expect(victim).To(BeIdenticalTo(set.Back()))
			Expect(tagsOf(set)).To(ConsistOf(uint64(1), uint64(2), uint64(3), uint64(4)))
		})

		It("should be reproducible with the same seed", func() {
			a := NewRandomVictimFinder(42)
			b := NewRandomVictimFinder(42)
			setA := fullSet(1, 2, 3, 4, 5, 6, 7, 8)
			setB := fullSet(1, 2, 3, 4, 5, 6, 7, 8)

			for i := 0; i < 16; i++ {
				Expect(a.FindVictim(setA).Tag).To(Equal(b.FindVictim(setB).Tag))
			}
		})

		It("should prefer an invalid block", func() {
			finder := NewRandomVictimFinder(7)
			set := fullSet(1, 2, 3, 4)
			set.Blocks[2].IsValid = false

			Expect(finder.FindVictim(set).Tag).To(Equal(uint64(3)))
		})
	})
})

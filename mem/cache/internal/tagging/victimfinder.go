package tagging

import "math/rand/v2"

// A VictimFinder decides which block should be evicted and keeps the order of
// a set up to date when its blocks are used.
type VictimFinder interface {
	// Visit is called when the block at way hits.
	Visit(set *Set, way int)

	// FindVictim reorders a full set so that the victim is at the back and
	// returns it.
	FindVictim(set *Set) *Block
}

// An invalid block is empty, so it is always chosen before a valid one.
func findEmpty(set *Set) (*Block, bool) {
	way, found := set.firstInvalid()
	if !found {
		return nil, false
	}

	set.MoveToBack(way)

	return set.Back(), true
}

// FIFOVictimFinder evicts the block that was inserted first.
type FIFOVictimFinder struct {
}

// NewFIFOVictimFinder returns a newly constructed FIFO victim finder.
func NewFIFOVictimFinder() *FIFOVictimFinder {
	return new(FIFOVictimFinder)
}

// Visit does nothing. Hits do not change the insertion order.
func (e *FIFOVictimFinder) Visit(_ *Set, _ int) {
}

// FindVictim returns the oldest block in the set.
func (e *FIFOVictimFinder) FindVictim(set *Set) *Block {
	if block, ok := findEmpty(set); ok {
		return block
	}

	set.MoveToBack(0)

	return set.Back()
}

// LRUVictimFinder evicts the least recently used block.
type LRUVictimFinder struct {
}

// NewLRUVictimFinder returns a newly constructed lru evictor
func NewLRUVictimFinder() *LRUVictimFinder {
	return new(LRUVictimFinder)
}

// Visit moves the block to the most recently used end of the set.
func (e *LRUVictimFinder) Visit(set *Set, way int) {
	set.MoveToBack(way)
}

// FindVictim returns the least recently used block in a set
func (e *LRUVictimFinder) FindVictim(set *Set) *Block {
	if block, ok := findEmpty(set); ok {
		return block
	}

	set.MoveToBack(0)

	return set.Back()
}

// RandomVictimFinder evicts a uniformly chosen block.
type RandomVictimFinder struct {
	rand *rand.Rand
}

// NewRandomVictimFinder creates a random victim finder driven by the given
// seed.
func NewRandomVictimFinder(seed uint64) *RandomVictimFinder {
	return &RandomVictimFinder{
		rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Visit does nothing.
func (e *RandomVictimFinder) Visit(_ *Set, _ int) {
}

// FindVictim shuffles the set and returns the block that lands at the back.
func (e *RandomVictimFinder) FindVictim(set *Set) *Block {
	if block, ok := findEmpty(set); ok {
		return block
	}

	e.rand.Shuffle(len(set.Blocks), func(i, j int) {
		set.Blocks[i], set.Blocks[j] = set.Blocks[j], set.Blocks[i]
	})

	return set.Back()
}

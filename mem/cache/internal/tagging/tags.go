package tagging

// A Block of a cache is the information that is associated with a cache line.
type Block struct {
	Tag     uint64
	Offset  uint64
	IsValid bool
	IsDirty bool
}

// A Set is an ordered list of the blocks that a certain piece of memory can be
// stored at. The front holds the oldest (FIFO) or least recently used (LRU)
// block and the back holds the newest or most recently used one.
type Set struct {
	Blocks  []Block
	NumWays int
}

// Lookup returns the position of the valid block that holds tag.
func (s *Set) Lookup(tag uint64) (way int, found bool) {
	for i, block := range s.Blocks {
		if block.IsValid && block.Tag == tag {
			return i, true
		}
	}

	return 0, false
}

// IsFull returns true if no more blocks can be appended to the set.
func (s *Set) IsFull() bool {
	return len(s.Blocks) >= s.NumWays
}

// Append adds a block at the back of the set.
func (s *Set) Append(block Block) {
	if s.IsFull() {
		panic("appending to a full set")
	}

	s.Blocks = append(s.Blocks, block)
}

// Back returns the block at the back of the set.
func (s *Set) Back() *Block {
	return &s.Blocks[len(s.Blocks)-1]
}

// MoveToBack rotates the block at way to the back of the set. The relative
// order of the other blocks is preserved.
func (s *Set) MoveToBack(way int) {
	if way == len(s.Blocks)-1 {
		return
	}

	block := s.Blocks[way]
	copy(s.Blocks[way:], s.Blocks[way+1:])
	s.Blocks[len(s.Blocks)-1] = block
}

func (s *Set) firstInvalid() (way int, found bool) {
	for i, block := range s.Blocks {
		if !block.IsValid {
			return i, true
		}
	}

	return 0, false
}

// A TagArray holds the sets of a cache.
type TagArray interface {
	GetSet(setID uint64) *Set
	NumSets() int
	NumWays() int
	Invalidate()
	Reset()
}

// NewTagArray creates a tag array with empty sets.
func NewTagArray(numSets, numWays int) TagArray {
	t := &tagArrayImpl{
		numSets: numSets,
		numWays: numWays,
	}

	t.Reset()

	return t
}

type tagArrayImpl struct {
	numSets int
	numWays int
	sets    []Set
}

func (t *tagArrayImpl) GetSet(setID uint64) *Set {
	return &t.sets[setID]
}

func (t *tagArrayImpl) NumSets() int {
	return t.numSets
}

func (t *tagArrayImpl) NumWays() int {
	return t.numWays
}

// Invalidate clears the valid bit of every block. Tags, dirty bits and the
// order of the blocks are left as they are.
func (t *tagArrayImpl) Invalidate() {
	for i := range t.sets {
		for j := range t.sets[i].Blocks {
			t.sets[i].Blocks[j].IsValid = false
		}
	}
}

// Reset empties every set.
func (t *tagArrayImpl) Reset() {
	t.sets = make([]Set, t.numSets)
	for i := range t.sets {
		t.sets[i] = Set{
			Blocks:  make([]Block, 0, t.numWays),
			NumWays: t.numWays,
		}
	}
}

package cache

import (
	"math/rand/v2"

	"github.com/sarchlab/cachesim/mem/cache/internal/tagging"
	"github.com/sarchlab/cachesim/mem/mem"
)

// Builder can build caches. Sizes are given as powers of two and are
// expected to be validated before Build is called.
type Builder struct {
	log2BlockSize        uint
	log2WayAssociativity uint
	log2TotalSize        uint
	policy               ReplacementPolicy
	latency              uint64
	lowModule            mem.Module
	randSeed             *uint64
}

// MakeBuilder creates a new builder. The default is a 16KB, 4-way cache with
// 64B blocks and LRU replacement.
func MakeBuilder() Builder {
	return Builder{
		log2BlockSize:        6,
		log2WayAssociativity: 2,
		log2TotalSize:        14,
		policy:               LRU,
		latency:              1,
	}
}

// WithLog2BlockSize sets the log2 of the block size in bytes.
func (b Builder) WithLog2BlockSize(n uint) Builder {
	b.log2BlockSize = n
	return b
}

// WithLog2WayAssociativity sets the log2 of the number of blocks per set.
func (b Builder) WithLog2WayAssociativity(n uint) Builder {
	b.log2WayAssociativity = n
	return b
}

// WithLog2TotalSize sets the log2 of the capacity in bytes.
func (b Builder) WithLog2TotalSize(n uint) Builder {
	b.log2TotalSize = n
	return b
}

// WithPolicy sets the replacement policy.
func (b Builder) WithPolicy(policy ReplacementPolicy) Builder {
	b.policy = policy
	return b
}

// WithLatency sets the number of cycles a hit takes.
func (b Builder) WithLatency(latency uint64) Builder {
	b.latency = latency
	return b
}

// WithLowModule sets the module that misses are forwarded to.
func (b Builder) WithLowModule(m mem.Module) Builder {
	b.lowModule = m
	return b
}

// WithRandSeed fixes the seed of the random replacement policy. Without a
// seed, each cache draws one from the runtime's entropy source.
func (b Builder) WithRandSeed(seed uint64) Builder {
	b.randSeed = &seed
	return b
}

// Build creates a new cache.
func (b Builder) Build(name string) *Comp {
	blockSize := uint64(1) << b.log2BlockSize
	numWays := 1 << b.log2WayAssociativity
	numSets := uint64(1) << (b.log2TotalSize - b.log2BlockSize - b.log2WayAssociativity)

	c := &Comp{
		name:      name,
		log2Block: b.log2BlockSize,
		log2Ways:  b.log2WayAssociativity,
		log2Total: b.log2TotalSize,
		policy:    b.policy,
		latency:   b.latency,
		lowModule: b.lowModule,
		mapper: AddressMapper{
			BlockSize: blockSize,
			NumSets:   numSets,
		},
		tags: tagging.NewTagArray(int(numSets), numWays),
	}

	c.victimFinder = b.buildVictimFinder()

	return c
}

func (b Builder) buildVictimFinder() tagging.VictimFinder {
	switch b.policy {
	case FIFO:
		return tagging.NewFIFOVictimFinder()
	case LRU:
		return tagging.NewLRUVictimFinder()
	case Random:
		seed := rand.Uint64()
		if b.randSeed != nil {
			seed = *b.randSeed
		}

		return tagging.NewRandomVictimFinder(seed)
	default:
		panic("unknown replacement policy " + b.policy.String())
	}
}

// Package cache models one level of a set-associative, write-back,
// write-allocate cache.
package cache

import (
	"fmt"

	"github.com/sarchlab/cachesim/mem/cache/internal/tagging"
	"github.com/sarchlab/cachesim/mem/mem"
	"github.com/sarchlab/cachesim/sim/hooking"
)

// Comp is a cache level. It resolves accesses against its own tag array and
// forwards misses and dirty evictions to the module below.
type Comp struct {
	hooking.HookableBase

	name         string
	log2Block    uint
	log2Ways     uint
	log2Total    uint
	policy       ReplacementPolicy
	latency      uint64
	mapper       AddressMapper
	tags         tagging.TagArray
	victimFinder tagging.VictimFinder
	lowModule    mem.Module
	stats        Statistics
}

// Name returns the name of the cache.
func (c *Comp) Name() string {
	return c.name
}

// Policy returns the replacement policy of the cache.
func (c *Comp) Policy() ReplacementPolicy {
	return c.policy
}

// Latency returns the number of cycles a hit takes.
func (c *Comp) Latency() uint64 {
	return c.latency
}

// BlockSize returns the size of a block in bytes.
func (c *Comp) BlockSize() uint64 {
	return c.mapper.BlockSize
}

// NumSets returns the number of sets.
func (c *Comp) NumSets() int {
	return c.tags.NumSets()
}

// WayAssociativity returns the number of blocks per set.
func (c *Comp) WayAssociativity() int {
	return c.tags.NumWays()
}

// TotalSize returns the capacity of the cache in bytes.
func (c *Comp) TotalSize() uint64 {
	return uint64(1) << c.log2Total
}

// Geometry returns the log2 block size, log2 way associativity and log2
// total size the cache was built with.
func (c *Comp) Geometry() (log2Block, log2Ways, log2Total uint) {
	return c.log2Block, c.log2Ways, c.log2Total
}

// LowModule returns the module that misses are forwarded to.
func (c *Comp) LowModule() mem.Module {
	return c.lowModule
}

// SetLowModule sets the module that misses are forwarded to.
func (c *Comp) SetLowModule(m mem.Module) {
	c.lowModule = m
}

// Stats returns a copy of the counters.
func (c *Comp) Stats() Statistics {
	return c.stats
}

// Access performs a load or a store and returns the cycles it took. An
// invalid kind is rejected before any state changes.
func (c *Comp) Access(address uint64, kind mem.AccessKind) (uint64, error) {
	if err := kind.MustBeValid(); err != nil {
		return 0, fmt.Errorf("%s: %w", c.name, err)
	}

	loc := c.mapper.Decompose(address)
	set := c.tags.GetSet(loc.SetID)

	if way, hit := set.Lookup(loc.Tag); hit {
		c.hit(set, way, loc, kind)
		c.invokeAccessHook(address, kind, true, c.latency)

		return c.latency, nil
	}

	cycles, err := c.miss(set, loc, address, kind)
	if err != nil {
		return 0, err
	}

	c.invokeAccessHook(address, kind, false, cycles)

	return cycles, nil
}

func (c *Comp) hit(
	set *tagging.Set,
	way int,
	loc Location,
	kind mem.AccessKind,
) {
	c.stats.countHit(kind)

	if kind == mem.Store {
		set.Blocks[way].IsDirty = true
		set.Blocks[way].Offset = loc.Offset
	}

	c.victimFinder.Visit(set, way)
}

func (c *Comp) miss(
	set *tagging.Set,
	loc Location,
	address uint64,
	kind mem.AccessKind,
) (uint64, error) {
	c.stats.countMiss(kind)

	cycles := c.latency
	block := tagging.Block{
		Tag:     loc.Tag,
		Offset:  loc.Offset,
		IsValid: true,
		IsDirty: kind == mem.Store,
	}

	if !set.IsFull() {
		set.Append(block)
	} else {
		victim := c.victimFinder.FindVictim(set)

		if victim.IsValid && victim.IsDirty {
			writeBackCycles, err := c.writeBack(victim, loc.SetID)
			if err != nil {
				return 0, err
			}

			cycles += writeBackCycles
		}

		*victim = block
	}

	fillCycles, err := c.lowModule.Access(address, mem.Load)
	if err != nil {
		return 0, fmt.Errorf("%s: fill 0x%x: %w", c.name, address, err)
	}

	return cycles + fillCycles, nil
}

func (c *Comp) writeBack(victim *tagging.Block, setID uint64) (uint64, error) {
	address := c.mapper.Reconstruct(Location{
		Tag:    victim.Tag,
		SetID:  setID,
		Offset: victim.Offset,
	})

	cycles, err := c.lowModule.Access(address, mem.Store)
	if err != nil {
		return 0, fmt.Errorf("%s: write back 0x%x: %w", c.name, address, err)
	}

	c.stats.DirtyEvictions++

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    mem.HookPosWriteBack,
		Item: mem.WriteBackEvent{
			Module:  c.name,
			Address: address,
			Cycles:  cycles,
		},
	})

	return cycles, nil
}

func (c *Comp) invokeAccessHook(
	address uint64,
	kind mem.AccessKind,
	hit bool,
	cycles uint64,
) {
	if c.NumHooks() == 0 {
		return
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    mem.HookPosAccess,
		Item: mem.AccessEvent{
			Module:  c.name,
			Address: address,
			Kind:    kind,
			Hit:     hit,
			Cycles:  cycles,
		},
	})
}

// AverageAccessTime returns the AMAT of this level, recursing into the
// modules below. A level that has not been accessed reports its own latency.
func (c *Comp) AverageAccessTime() float64 {
	if c.stats.Accesses() == 0 {
		return float64(c.latency)
	}

	return float64(c.latency) +
		c.stats.MissRatio()*c.lowModule.AverageAccessTime()
}

// Invalidate clears the valid bit of every block. It should be called when
// the trace changes, but not when the same trace is replayed.
func (c *Comp) Invalidate() {
	c.tags.Invalidate()
}

// ResetStatistics zeroes all the counters.
func (c *Comp) ResetStatistics() {
	c.stats = Statistics{}
}

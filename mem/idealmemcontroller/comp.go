// Package idealmemcontroller provides the main memory at the end of a cache
// hierarchy.
package idealmemcontroller

import (
	"github.com/sarchlab/cachesim/mem/mem"
	"github.com/sarchlab/cachesim/sim/hooking"
)

// Comp is an ideal memory controller. It answers every access in a fixed
// number of cycles, never misses and holds no blocks.
type Comp struct {
	hooking.HookableBase

	name    string
	latency uint64

	numLoads  uint64
	numStores uint64
}

// Name returns the name of the memory.
func (c *Comp) Name() string {
	return c.name
}

// Latency returns the number of cycles every access takes.
func (c *Comp) Latency() uint64 {
	return c.latency
}

// Access returns the latency of the memory.
func (c *Comp) Access(address uint64, kind mem.AccessKind) (uint64, error) {
	if err := kind.MustBeValid(); err != nil {
		return 0, err
	}

	if kind == mem.Store {
		c.numStores++
	} else {
		c.numLoads++
	}

	if c.NumHooks() > 0 {
		c.InvokeHook(hooking.HookCtx{
			Domain: c,
			Pos:    mem.HookPosAccess,
			Item: mem.AccessEvent{
				Module:  c.name,
				Address: address,
				Kind:    kind,
				Hit:     true,
				Cycles:  c.latency,
			},
		})
	}

	return c.latency, nil
}

// AverageAccessTime is always the latency.
func (c *Comp) AverageAccessTime() float64 {
	return float64(c.latency)
}

// NumLoads returns the number of loads served since the last reset.
func (c *Comp) NumLoads() uint64 {
	return c.numLoads
}

// NumStores returns the number of stores served since the last reset.
func (c *Comp) NumStores() uint64 {
	return c.numStores
}

// ResetStatistics zeroes the load and store counters.
func (c *Comp) ResetStatistics() {
	c.numLoads = 0
	c.numStores = 0
}

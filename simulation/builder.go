package simulation

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sarchlab/cachesim/config"
	"github.com/sarchlab/cachesim/mem/cache"
	"github.com/sarchlab/cachesim/mem/idealmemcontroller"
	"github.com/sarchlab/cachesim/mem/mem"
)

// Builder can be used to build a simulation.
type Builder struct {
	hierarchy config.Hierarchy
	recorder  *Recorder
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{}
}

// WithHierarchy sets the memory hierarchy to simulate.
func (b Builder) WithHierarchy(h config.Hierarchy) Builder {
	b.hierarchy = h
	return b
}

// WithRecorder makes the simulation store the result of every run.
func (b Builder) WithRecorder(r *Recorder) Builder {
	b.recorder = r
	return b
}

// Build validates the hierarchy and connects the caches from L1 down to the
// main memory.
func (b Builder) Build() (*Simulation, error) {
	if err := b.hierarchy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hierarchy: %w", err)
	}

	s := &Simulation{
		id:       xid.New().String(),
		recorder: b.recorder,
	}

	s.memory = idealmemcontroller.MakeBuilder().
		WithLatency(b.hierarchy.MemoryLatency).
		Build("Memory")

	for i, l := range b.hierarchy.Levels {
		policy, _ := l.ReplacementPolicy()

		builder := cache.MakeBuilder().
			WithLog2BlockSize(l.BlockSize).
			WithLog2WayAssociativity(l.Associativity).
			WithLog2TotalSize(l.TotalSize).
			WithPolicy(policy).
			WithLatency(l.HitLatency)

		if l.Seed != nil {
			builder = builder.WithRandSeed(*l.Seed)
		}

		s.levels = append(s.levels, builder.Build(fmt.Sprintf("L%d", i+1)))
	}

	for i, level := range s.levels {
		var low mem.Module = s.memory
		if i+1 < len(s.levels) {
			low = s.levels[i+1]
		}

		level.SetLowModule(low)
	}

	return s, nil
}

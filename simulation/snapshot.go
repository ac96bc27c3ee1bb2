package simulation

import "github.com/sarchlab/cachesim/mem/cache"

// LevelSnapshot is the state of one cache level at a point in time.
type LevelSnapshot struct {
	Name             string           `json:"name"`
	Policy           string           `json:"policy"`
	BlockSize        uint64           `json:"block_size"`
	NumSets          int              `json:"num_sets"`
	WayAssociativity int              `json:"way_associativity"`
	TotalSize        uint64           `json:"total_size"`
	Latency          uint64           `json:"latency"`
	Stats            cache.Statistics `json:"stats"`
	HitRatio         float64          `json:"hit_ratio"`
	AMAT             float64          `json:"amat"`
}

// Snapshot is the state of the whole hierarchy at a point in time.
type Snapshot struct {
	SimulationID  string          `json:"simulation_id"`
	Levels        []LevelSnapshot `json:"levels"`
	MemoryLatency uint64          `json:"memory_latency"`
	MemoryLoads   uint64          `json:"memory_loads"`
	MemoryStores  uint64          `json:"memory_stores"`
	LastResult    *Result         `json:"last_result,omitempty"`
}

// Snapshot copies the statistics of every level. It is safe to call while a
// trace is being replayed.
func (s *Simulation) Snapshot() Snapshot {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.snapshot()
}

func (s *Simulation) snapshot() Snapshot {
	snap := Snapshot{
		SimulationID:  s.id,
		MemoryLatency: s.memory.Latency(),
		MemoryLoads:   s.memory.NumLoads(),
		MemoryStores:  s.memory.NumStores(),
	}

	for _, l := range s.levels {
		snap.Levels = append(snap.Levels, LevelSnapshot{
			Name:             l.Name(),
			Policy:           l.Policy().String(),
			BlockSize:        l.BlockSize(),
			NumSets:          l.NumSets(),
			WayAssociativity: l.WayAssociativity(),
			TotalSize:        l.TotalSize(),
			Latency:          l.Latency(),
			Stats:            l.Stats(),
			HitRatio:         l.Stats().HitRatio(),
			AMAT:             l.AverageAccessTime(),
		})
	}

	if s.lastResult != nil {
		result := *s.lastResult
		snap.LastResult = &result
	}

	return snap
}

// Level returns the snapshot of the named level.
func (snap Snapshot) Level(name string) (LevelSnapshot, bool) {
	for _, l := range snap.Levels {
		if l.Name == name {
			return l, true
		}
	}

	return LevelSnapshot{}, false
}

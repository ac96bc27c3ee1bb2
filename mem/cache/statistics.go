package cache

import "github.com/sarchlab/cachesim/mem/mem"

// Statistics counts what happened at one cache level.
type Statistics struct {
	LoadHits       uint64 `json:"load_hits"`
	LoadMisses     uint64 `json:"load_misses"`
	StoreHits      uint64 `json:"store_hits"`
	StoreMisses    uint64 `json:"store_misses"`
	DirtyEvictions uint64 `json:"dirty_evictions"`
}

// Accesses returns the number of loads and stores seen.
func (s Statistics) Accesses() uint64 {
	return s.LoadHits + s.LoadMisses + s.StoreHits + s.StoreMisses
}

// Misses returns the number of loads and stores that missed.
func (s Statistics) Misses() uint64 {
	return s.LoadMisses + s.StoreMisses
}

// HitRatio returns the fraction of accesses that hit, or 0 before the first
// access.
func (s Statistics) HitRatio() float64 {
	if s.Accesses() == 0 {
		return 0
	}

	return float64(s.LoadHits+s.StoreHits) / float64(s.Accesses())
}

// MissRatio returns the fraction of accesses that missed, or 0 before the
// first access.
func (s Statistics) MissRatio() float64 {
	if s.Accesses() == 0 {
		return 0
	}

	return float64(s.Misses()) / float64(s.Accesses())
}

func (s *Statistics) countHit(kind mem.AccessKind) {
	if kind == mem.Store {
		s.StoreHits++
	} else {
		s.LoadHits++
	}
}

func (s *Statistics) countMiss(kind mem.AccessKind) {
	if kind == mem.Store {
		s.StoreMisses++
	} else {
		s.LoadMisses++
	}
}

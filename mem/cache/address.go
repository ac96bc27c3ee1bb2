package cache

// A Location is where an address lives inside a cache.
type Location struct {
	Tag    uint64
	SetID  uint64
	Offset uint64
}

// AddressMapper splits byte addresses into tag, set index and block offset and
// puts them back together.
type AddressMapper struct {
	BlockSize uint64
	NumSets   uint64
}

// Decompose returns the location of an address.
func (m AddressMapper) Decompose(address uint64) Location {
	blockNumber := address / m.BlockSize

	return Location{
		Tag:    blockNumber / m.NumSets,
		SetID:  blockNumber % m.NumSets,
		Offset: address % m.BlockSize,
	}
}

// Reconstruct returns the address that a location was decomposed from. Caches
// below may use different block sizes, so a written-back block is always sent
// with its full byte address.
func (m AddressMapper) Reconstruct(loc Location) uint64 {
	return loc.Tag*m.NumSets*m.BlockSize + loc.SetID*m.BlockSize + loc.Offset
}

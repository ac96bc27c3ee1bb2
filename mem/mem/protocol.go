// Package mem defines the protocol shared by every level of a simulated
// memory hierarchy.
package mem

import (
	"errors"
	"fmt"

	"github.com/sarchlab/cachesim/sim/hooking"
)

// ErrInvalidInstruction is returned when an access names an instruction that
// is neither a load nor a store.
var ErrInvalidInstruction = errors.New("invalid instruction")

// AccessKind is the instruction carried by an access. Its values are the
// characters used in trace files.
type AccessKind byte

const (
	// Load reads a block.
	Load AccessKind = 'l'

	// Store writes a block.
	Store AccessKind = 's'
)

// IsValid returns true if the kind is a load or a store.
func (k AccessKind) IsValid() bool {
	return k == Load || k == Store
}

func (k AccessKind) String() string {
	switch k {
	case Load:
		return "load"
	case Store:
		return "store"
	default:
		return fmt.Sprintf("invalid(%q)", byte(k))
	}
}

// MustBeValid returns an error wrapping ErrInvalidInstruction if the kind is
// not a load or a store.
func (k AccessKind) MustBeValid() error {
	if k.IsValid() {
		return nil
	}

	return fmt.Errorf("%w %q", ErrInvalidInstruction, byte(k))
}

// A Module is one level of the memory hierarchy. It is either a cache that
// forwards to another Module or the main memory at the end of the chain.
type Module interface {
	// Name returns the name of the module.
	Name() string

	// Access performs a load or a store and returns the number of cycles it
	// took, including the cycles spent in the modules below.
	Access(address uint64, kind AccessKind) (uint64, error)

	// AverageAccessTime returns the average memory access time observed at
	// this module.
	AverageAccessTime() float64
}

// HookPosAccess marks that a module has completed an access.
var HookPosAccess = &hooking.HookPos{Name: "Access"}

// HookPosWriteBack marks that a cache has written a dirty block back to the
// module below it.
var HookPosWriteBack = &hooking.HookPos{Name: "WriteBack"}

// AccessEvent is the hook item of HookPosAccess.
type AccessEvent struct {
	Module  string
	Address uint64
	Kind    AccessKind
	Hit     bool
	Cycles  uint64
}

// WriteBackEvent is the hook item of HookPosWriteBack.
type WriteBackEvent struct {
	Module  string
	Address uint64
	Cycles  uint64
}

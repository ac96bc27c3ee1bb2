package trace

import (
	"sync"

	"github.com/sarchlab/cachesim/mem/mem"
	"github.com/sarchlab/cachesim/sim/hooking"
)

// AccessFilter selects the accesses a tracer counts.
type AccessFilter func(e mem.AccessEvent) bool

// TotalAvgCyclesTracer collects the total and average cycles of the accesses
// served by each module. The cycles of an access include everything below
// the module.
type TotalAvgCyclesTracer struct {
	filter AccessFilter
	lock   sync.Mutex

	moduleNames []string
	totalCycles map[string]uint64
	count       map[string]uint64
}

// NewTotalAvgCyclesTracer creates a new TotalAvgCyclesTracer. A nil filter
// counts every access.
func NewTotalAvgCyclesTracer(filter AccessFilter) *TotalAvgCyclesTracer {
	if filter == nil {
		filter = func(mem.AccessEvent) bool { return true }
	}

	return &TotalAvgCyclesTracer{
		filter:      filter,
		totalCycles: make(map[string]uint64),
		count:       make(map[string]uint64),
	}
}

// Func counts an access.
func (t *TotalAvgCyclesTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != mem.HookPosAccess {
		return
	}

	e := ctx.Item.(mem.AccessEvent)
	if !t.filter(e) {
		return
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if _, ok := t.count[e.Module]; !ok {
		t.moduleNames = append(t.moduleNames, e.Module)
	}

	t.totalCycles[e.Module] += e.Cycles
	t.count[e.Module]++
}

// ModuleNames returns the modules in the order they were first seen.
func (t *TotalAvgCyclesTracer) ModuleNames() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	return append([]string(nil), t.moduleNames...)
}

// TotalCycles returns the cycles spent in accesses served by a module.
func (t *TotalAvgCyclesTracer) TotalCycles(module string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.totalCycles[module]
}

// TotalCount returns the number of accesses served by a module.
func (t *TotalAvgCyclesTracer) TotalCount(module string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.count[module]
}

// AverageCycles returns the observed cycles per access of a module, or 0 if
// the module has not been accessed.
func (t *TotalAvgCyclesTracer) AverageCycles(module string) float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.count[module] == 0 {
		return 0
	}

	return float64(t.totalCycles[module]) / float64(t.count[module])
}

// Reset forgets everything counted so far.
func (t *TotalAvgCyclesTracer) Reset() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.moduleNames = nil
	t.totalCycles = make(map[string]uint64)
	t.count = make(map[string]uint64)
}

// StartRun resets the tracer so that each run is measured on its own.
func (t *TotalAvgCyclesTracer) StartRun(string) {
	t.Reset()
}

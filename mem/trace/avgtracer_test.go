package trace

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/cachesim/mem/mem"
	"github.com/sarchlab/cachesim/sim/hooking"
)

var _ = Describe("TotalAvgCyclesTracer", func() {
	access := func(module string, kind mem.AccessKind, cycles uint64) hooking.HookCtx {
		return hooking.HookCtx{
			Pos: mem.HookPosAccess,
			Item: mem.AccessEvent{
				Module: module,
				Kind:   kind,
				Cycles: cycles,
			},
		}
	}

	It("should average the cycles of each module", func() {
		t := NewTotalAvgCyclesTracer(nil)

		t.Func(access("L1", mem.Load, 101))
		t.Func(access("L1", mem.Load, 1))
		t.Func(access("Memory", mem.Load, 100))
		t.Func(hooking.HookCtx{
			Pos:  mem.HookPosWriteBack,
			Item: mem.WriteBackEvent{Module: "L1", Cycles: 100},
		})

		Expect(t.ModuleNames()).To(Equal([]string{"L1", "Memory"}))
		Expect(t.TotalCount("L1")).To(Equal(uint64(2)))
		Expect(t.TotalCycles("L1")).To(Equal(uint64(102)))
		Expect(t.AverageCycles("L1")).To(Equal(51.0))
		Expect(t.AverageCycles("L2")).To(BeZero())
	})

	It("should only count filtered accesses", func() {
		t := NewTotalAvgCyclesTracer(func(e mem.AccessEvent) bool {
			return e.Kind == mem.Store
		})

		t.Func(access("L1", mem.Load, 101))
		t.Func(access("L1", mem.Store, 1))

		Expect(t.TotalCount("L1")).To(Equal(uint64(1)))
	})

	It("should start over on every run", func() {
		t := NewTotalAvgCyclesTracer(nil)
		t.Func(access("L1", mem.Load, 101))

		t.StartRun("run")

		Expect(t.ModuleNames()).To(BeEmpty())
		Expect(t.TotalCount("L1")).To(BeZero())
	})
})

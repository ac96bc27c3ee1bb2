// Package trace reads memory-access traces and records what the memory
// hierarchy does with them.
package trace

import (
	"log"

	"github.com/rs/xid"
	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/mem/mem"
	"github.com/sarchlab/cachesim/sim/hooking"
)

// accessEntry represents a completed access in the database
type accessEntry struct {
	ID       string
	RunID    string
	Seq      uint64
	Location string
	What     string
	Address  uint64
	Hit      bool
	Cycles   uint64
}

// writeBackEntry represents a dirty eviction in the database
type writeBackEntry struct {
	ID       string
	RunID    string
	Seq      uint64
	Location string
	Address  uint64
	Cycles   uint64
}

// Table names used by the DBTracer.
const (
	AccessTable    = "cache_accesses"
	WriteBackTable = "cache_write_backs"
)

// A LogTracer is a hook that prints the actions of the memory modules.
type LogTracer struct {
	logger *log.Logger
}

// NewLogTracer creates a new LogTracer.
func NewLogTracer(logger *log.Logger) *LogTracer {
	return &LogTracer{logger: logger}
}

// Func prints access and write-back events.
func (t *LogTracer) Func(ctx hooking.HookCtx) {
	switch item := ctx.Item.(type) {
	case mem.AccessEvent:
		result := "miss"
		if item.Hit {
			result = "hit"
		}

		t.logger.Printf("access, %s, 0x%x, %s, %s, %d\n",
			item.Module, item.Address, item.Kind, result, item.Cycles)
	case mem.WriteBackEvent:
		t.logger.Printf("writeback, %s, 0x%x, %d\n",
			item.Module, item.Address, item.Cycles)
	}
}

// A DBTracer is a hook that records the actions of the memory modules into
// a database using the data recorder.
type DBTracer struct {
	dataRecorder datarecording.DataRecorder
	runID        string
	seq          uint64
}

// NewDBTracer creates a new database-based tracer.
func NewDBTracer(dataRecorder datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{
		dataRecorder: dataRecorder,
	}

	t.dataRecorder.CreateTable(AccessTable, accessEntry{})
	t.dataRecorder.CreateTable(WriteBackTable, writeBackEntry{})

	return t
}

// StartRun tags the following events with a run ID and restarts the
// sequence numbers.
func (t *DBTracer) StartRun(runID string) {
	t.runID = runID
	t.seq = 0
}

// Func records access and write-back events.
func (t *DBTracer) Func(ctx hooking.HookCtx) {
	switch item := ctx.Item.(type) {
	case mem.AccessEvent:
		t.seq++
		t.dataRecorder.InsertData(AccessTable, accessEntry{
			ID:       xid.New().String(),
			RunID:    t.runID,
			Seq:      t.seq,
			Location: item.Module,
			What:     item.Kind.String(),
			Address:  item.Address,
			Hit:      item.Hit,
			Cycles:   item.Cycles,
		})
	case mem.WriteBackEvent:
		t.seq++
		t.dataRecorder.InsertData(WriteBackTable, writeBackEntry{
			ID:       xid.New().String(),
			RunID:    t.runID,
			Seq:      t.seq,
			Location: item.Module,
			Address:  item.Address,
			Cycles:   item.Cycles,
		})
	}
}

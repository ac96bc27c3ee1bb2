package simulation

import (
	"github.com/sarchlab/cachesim/datarecording"
)

// Table names written by the Recorder.
const (
	RunTable   = "runs"
	LevelTable = "levels"
)

// RunEntry is a row of the runs table.
type RunEntry struct {
	RunID        string
	SimulationID string
	Trace        string
	Accesses     uint64
	TotalCycles  uint64
	Warm         bool
	Completed    bool
}

// LevelEntry is a row of the levels table.
type LevelEntry struct {
	RunID          string
	Level          string
	LoadHits       uint64
	LoadMisses     uint64
	StoreHits      uint64
	StoreMisses    uint64
	DirtyEvictions uint64
	HitRatio       float64
	AMAT           float64
}

// A Recorder stores the result of each run and the statistics of each level.
type Recorder struct {
	dataRecorder datarecording.DataRecorder
}

// NewRecorder creates the tables of a recorder.
func NewRecorder(dataRecorder datarecording.DataRecorder) *Recorder {
	r := &Recorder{dataRecorder: dataRecorder}

	dataRecorder.CreateTable(RunTable, RunEntry{})
	dataRecorder.CreateTable(LevelTable, LevelEntry{})

	return r
}

// Record buffers one run.
func (r *Recorder) Record(result Result, snap Snapshot) {
	r.dataRecorder.InsertData(RunTable, RunEntry{
		RunID:        result.RunID,
		SimulationID: snap.SimulationID,
		Trace:        result.TraceName,
		Accesses:     result.Accesses,
		TotalCycles:  result.TotalCycles,
		Warm:         result.Warm,
		Completed:    result.Completed,
	})

	for _, l := range snap.Levels {
		r.dataRecorder.InsertData(LevelTable, LevelEntry{
			RunID:          result.RunID,
			Level:          l.Name,
			LoadHits:       l.Stats.LoadHits,
			LoadMisses:     l.Stats.LoadMisses,
			StoreHits:      l.Stats.StoreHits,
			StoreMisses:    l.Stats.StoreMisses,
			DirtyEvictions: l.Stats.DirtyEvictions,
			HitRatio:       l.HitRatio,
			AMAT:           l.AMAT,
		})
	}
}

// Flush writes the buffered runs.
func (r *Recorder) Flush() {
	r.dataRecorder.Flush()
}

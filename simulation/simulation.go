// Package simulation replays memory-access traces through a cache hierarchy.
package simulation

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/xid"
	"github.com/sarchlab/cachesim/mem/cache"
	"github.com/sarchlab/cachesim/mem/idealmemcontroller"
	"github.com/sarchlab/cachesim/mem/trace"
	"github.com/sarchlab/cachesim/sim/hooking"
)

// ErrNoSimulation is returned when a report is requested before any trace
// has been run.
var ErrNoSimulation = errors.New("no simulation has been run")

// A ProgressReporter is told how many trace records have been replayed.
type ProgressReporter interface {
	IncrementFinished(amount uint64)
}

// A RunListener is told when a run starts.
type RunListener interface {
	StartRun(runID string)
}

// Result summarizes one replay of a trace.
type Result struct {
	RunID       string `json:"run_id"`
	TraceName   string `json:"trace_name"`
	Accesses    uint64 `json:"accesses"`
	TotalCycles uint64 `json:"total_cycles"`
	Warm        bool   `json:"warm"`
	Completed   bool   `json:"completed"`
}

// A Simulation owns a cache hierarchy and replays traces through it.
type Simulation struct {
	lock sync.Mutex

	id        string
	levels    []*cache.Comp
	memory    *idealmemcontroller.Comp
	recorder  *Recorder
	progress  ProgressReporter
	listeners []RunListener

	lastTrace  string
	lastResult *Result
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Levels returns the caches from L1 downwards.
func (s *Simulation) Levels() []*cache.Comp {
	return s.levels
}

// Memory returns the main memory.
func (s *Simulation) Memory() *idealmemcontroller.Comp {
	return s.memory
}

// AcceptHook registers a hook with every cache and the memory. Hooks that
// also implement RunListener are told when each run starts.
func (s *Simulation) AcceptHook(hook hooking.Hook) {
	for _, l := range s.levels {
		l.AcceptHook(hook)
	}

	s.memory.AcceptHook(hook)

	if listener, ok := hook.(RunListener); ok {
		s.listeners = append(s.listeners, listener)
	}
}

// SetProgressReporter sets where the replay progress is reported.
func (s *Simulation) SetProgressReporter(p ProgressReporter) {
	s.progress = p
}

// RunFile replays the trace stored in a file. If the file cannot be opened,
// nothing changes.
func (s *Simulation) RunFile(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	return s.Run(filepath.Clean(path), f)
}

// Run replays a trace. The caches are invalidated if traceName differs from
// the previous run so that a replay of the same trace starts warm. The
// statistics are always reset. The run stops at the first record that cannot
// be parsed or that carries an invalid instruction.
func (s *Simulation) Run(traceName string, r io.Reader) (Result, error) {
	result := s.startRun(traceName)

	reader := trace.NewReader(r)

	var runErr error

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			runErr = err
			break
		}

		if err := s.step(&result, rec); err != nil {
			runErr = fmt.Errorf("trace record %d: %w", reader.Count(), err)
			break
		}
	}

	result.Completed = runErr == nil

	s.finishRun(result)

	return result, runErr
}

func (s *Simulation) startRun(traceName string) Result {
	s.lock.Lock()
	defer s.lock.Unlock()

	warm := s.lastResult != nil && traceName == s.lastTrace

	for _, l := range s.levels {
		if !warm {
			l.Invalidate()
		}

		l.ResetStatistics()
	}

	s.memory.ResetStatistics()
	s.lastTrace = traceName

	result := Result{
		RunID:     xid.New().String(),
		TraceName: traceName,
		Warm:      warm,
	}

	for _, listener := range s.listeners {
		listener.StartRun(result.RunID)
	}

	return result
}

func (s *Simulation) step(result *Result, rec trace.Record) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	cycles, err := s.levels[0].Access(rec.Address, rec.Kind)
	if err != nil {
		return err
	}

	result.Accesses++
	result.TotalCycles += cycles + rec.ExtraCycles

	if s.progress != nil {
		s.progress.IncrementFinished(1)
	}

	return nil
}

func (s *Simulation) finishRun(result Result) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.lastResult = &result

	if s.recorder != nil {
		s.recorder.Record(result, s.snapshot())
	}
}

// LastResult returns the result of the latest run.
func (s *Simulation) LastResult() (Result, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.lastResult == nil {
		return Result{}, false
	}

	return *s.lastResult, true
}

package simulation

import (
	"fmt"
	"io"
)

// Report writes the statistics of every level and the total cycles of the
// latest run.
func (s *Simulation) Report(w io.Writer) error {
	snap := s.Snapshot()
	if snap.LastResult == nil {
		return ErrNoSimulation
	}

	fmt.Fprintln(w, "Report for each memory level:")

	for i, l := range snap.Levels {
		fmt.Fprintf(w, "Cache level %d:\n", i+1)
		fmt.Fprintf(w, "%-20s%10d\t%-20s%10d\n",
			"Load hit count:", l.Stats.LoadHits,
			"Load miss count:", l.Stats.LoadMisses)
		fmt.Fprintf(w, "%-20s%10d\t%-20s%10d\n",
			"Store hit count:", l.Stats.StoreHits,
			"Store miss count:", l.Stats.StoreMisses)
		fmt.Fprintf(w, "%-20s%10d\t%-20s%10.4f\n",
			"Dirty evictions:", l.Stats.DirtyEvictions,
			"Hit ratio:", l.HitRatio)
		fmt.Fprintf(w, "%-20s%10.4f\n\n", "Average Access Time:", l.AMAT)
	}

	fmt.Fprintf(w, "%-20s%10d\n", "Total cycles:", snap.LastResult.TotalCycles)

	if !snap.LastResult.Completed {
		fmt.Fprintf(w, "Run stopped after %d accesses.\n",
			snap.LastResult.Accesses)
	}

	return nil
}

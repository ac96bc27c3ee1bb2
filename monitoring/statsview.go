package monitoring

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// StatsViewPath is where the runtime charts are served.
const StatsViewPath = "/debug/statsview"

// LaunchStatsView serves charts of the Go runtime of the simulator on addr.
func LaunchStatsView(addr string, output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(addr))
		mgr := statsview.New()
		mgr.Start()
	}()

	fmt.Fprintf(output, "runtime stats available at http://%s%s\n",
		addr, StatsViewPath)
}

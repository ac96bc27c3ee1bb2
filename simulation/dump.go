package simulation

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
)

type hierarchyNode struct {
	Name     string
	Geometry string
	Policy   string
	Latency  uint64
	Next     *hierarchyNode
}

// DumpHierarchy writes the chain of modules as a Graphviz dot graph.
func (s *Simulation) DumpHierarchy(w io.Writer) {
	root := &hierarchyNode{
		Name:    s.memory.Name(),
		Latency: s.memory.Latency(),
	}

	for i := len(s.levels) - 1; i >= 0; i-- {
		l := s.levels[i]
		root = &hierarchyNode{
			Name: l.Name(),
			Geometry: fmt.Sprintf("%dB x %d-way x %d sets",
				l.BlockSize(), l.WayAssociativity(), l.NumSets()),
			Policy:  l.Policy().String(),
			Latency: l.Latency(),
			Next:    root,
		}
	}

	memviz.Map(w, root)
}

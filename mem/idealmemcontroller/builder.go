package idealmemcontroller

// Builder can build ideal memory controllers.
type Builder struct {
	latency uint64
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{
		latency: 400,
	}
}

// WithLatency sets the latency of the memory controller
func (b Builder) WithLatency(latency uint64) Builder {
	b.latency = latency
	return b
}

// Build creates a new memory controller.
func (b Builder) Build(name string) *Comp {
	return &Comp{
		name:    name,
		latency: b.latency,
	}
}

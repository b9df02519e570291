package core

// Builder can create new disassemblers.
type Builder struct {
	workers int
	origin  int
}

// WithWorkers sets how many goroutines render words. One renders
// sequentially.
func (b Builder) WithWorkers(workers int) Builder {
	if workers < 1 {
		panic("Need at least 1 worker")
	}
	b.workers = workers
	return b
}

// WithOrigin sets the address of the first word.
func (b Builder) WithOrigin(origin int) Builder {
	if origin < 0 {
		panic("Origin cannot be negative")
	}
	b.origin = origin
	return b
}

func NewBuilder() Builder {
	return Builder{
		workers: 1,
		origin:  DefaultOrigin,
	}
}

// Build creates a disassembler.
func (b Builder) Build(name string) *Disassembler {
	return &Disassembler{
		name:    name,
		workers: b.workers,
		origin:  b.origin,
	}
}

package acapacity

// Snapshot is an opaque, immutable capture of an Engine's bit vector and
// allocation index, suitable for cheap speculative exploration above the
// engine (spec §4.4.6).
type Snapshot struct {
	horizonBegin int64
	horizonEnd   int64
	bits         []bool
	allocations  map[string]*AllocationRecord
}

// Snapshot captures e's current state.
func (e *Engine) Snapshot() *Snapshot {
	bits := make([]bool, len(e.bits))
	copy(bits, e.bits)

	allocations := make(map[string]*AllocationRecord, len(e.allocations))
	for k, v := range e.allocations {
		cp := *v
		cp.Spans = cloneSpans(v.Spans)
		allocations[k] = &cp
	}

	return &Snapshot{
		horizonBegin: e.horizonBegin,
		horizonEnd:   e.horizonEnd,
		bits:         bits,
		allocations:  allocations,
	}
}

// Restore replaces e's bits and allocation index with snap's captured
// state. The snapshot's size must match e's current horizon size, else
// SnapshotSizeError (spec §4.4.6).
func (e *Engine) Restore(snap *Snapshot) error {
	if len(snap.bits) != len(e.bits) {
		return NewSnapshotSizeError(len(e.bits), len(snap.bits))
	}

	bits := make([]bool, len(snap.bits))
	copy(bits, snap.bits)

	allocations := make(map[string]*AllocationRecord, len(snap.allocations))
	for k, v := range snap.allocations {
		cp := *v
		cp.Spans = cloneSpans(v.Spans)
		allocations[k] = &cp
	}

	e.horizonBegin = snap.horizonBegin
	e.horizonEnd = snap.horizonEnd
	e.bits = bits
	e.allocations = allocations
	return nil
}

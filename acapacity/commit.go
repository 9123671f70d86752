package acapacity

// Commit validates rec against e and marks its spans occupied, inserting
// rec into the allocation index (spec §4.4.3). On any validation failure
// engine state is left unchanged.
func (e *Engine) Commit(rec *AllocationRecord) (*AllocationRecord, error) {
	if rec.ResourceID != e.ResourceID {
		return nil, NewResourceMismatchError(e.ResourceID, rec.ResourceID)
	}
	if _, exists := e.allocations[rec.OperationID]; exists {
		return nil, NewInvalidOperationError("commit", "operation \""+rec.OperationID+"\" is already committed")
	}
	for _, s := range rec.Spans {
		for i := s.Begin - e.horizonBegin; i < s.End-e.horizonBegin; i++ {
			if i < 0 || i >= int64(len(e.bits)) || !e.bits[i] {
				return nil, NewInvalidOperationError("commit", "span is not entirely free")
			}
		}
	}
	for _, s := range rec.Spans {
		for i := s.Begin - e.horizonBegin; i < s.End-e.horizonBegin; i++ {
			e.bits[i] = false
		}
	}
	committed := *rec
	committed.Spans = cloneSpans(rec.Spans)
	e.allocations[rec.OperationID] = &committed
	return &committed, nil
}

// Release validates rec against e, marks its spans free again, and removes
// it from the allocation index (spec §4.4.3). Release is the exact
// bitwise inverse of Commit applied to the same record.
func (e *Engine) Release(rec *AllocationRecord) error {
	if rec.ResourceID != e.ResourceID {
		return NewResourceMismatchError(e.ResourceID, rec.ResourceID)
	}
	existing, ok := e.allocations[rec.OperationID]
	if !ok {
		return NewInvalidOperationError("release", "operation \""+rec.OperationID+"\" is not committed")
	}
	for _, s := range existing.Spans {
		for i := s.Begin - e.horizonBegin; i < s.End-e.horizonBegin; i++ {
			if i >= 0 && i < int64(len(e.bits)) {
				e.bits[i] = true
			}
		}
	}
	delete(e.allocations, rec.OperationID)
	return nil
}

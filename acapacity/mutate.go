package acapacity

// SetUnavailable clears every free bit in [begin, end) and returns every
// live AllocationRecord whose spans intersect the range. It does not
// release those records — the caller decides what to do with the conflict
// (spec §4.4.4).
func (e *Engine) SetUnavailable(begin, end int64) ([]*AllocationRecord, error) {
	if end <= begin {
		return nil, NewInvalidOperationError("set_unavailable", "end must be after begin")
	}
	if end > e.horizonEnd {
		if err := e.ensureMaterializedThrough(end); err != nil {
			return nil, err
		}
	}
	for i := begin - e.horizonBegin; i < end-e.horizonBegin; i++ {
		if i >= 0 && i < int64(len(e.bits)) {
			e.bits[i] = false
		}
	}

	var affected []*AllocationRecord
	for _, rec := range e.allocations {
		if recordIntersects(rec, begin, end) {
			affected = append(affected, rec)
		}
	}
	return affected, nil
}

// SetAvailable frees every bit in [begin, end) that is currently occupied
// and not covered by a live AllocationRecord's spans. Bits belonging to a
// committed allocation are left unchanged — additive capacity cannot
// overwrite a committed allocation (spec §4.4.4, Open Question (a)).
func (e *Engine) SetAvailable(begin, end int64) error {
	if end <= begin {
		return NewInvalidOperationError("set_available", "end must be after begin")
	}
	if end > e.horizonEnd {
		if err := e.ensureMaterializedThrough(end); err != nil {
			return err
		}
	}
	occupiedByAllocation := make([]bool, end-begin)
	for _, rec := range e.allocations {
		for _, s := range rec.Spans {
			lo := s.Begin
			if lo < begin {
				lo = begin
			}
			hi := s.End
			if hi > end {
				hi = end
			}
			for i := lo; i < hi; i++ {
				occupiedByAllocation[i-begin] = true
			}
		}
	}
	for i := begin - e.horizonBegin; i < end-e.horizonBegin; i++ {
		if i < 0 || i >= int64(len(e.bits)) {
			continue
		}
		abs := i + e.horizonBegin
		if !occupiedByAllocation[abs-begin] {
			e.bits[i] = true
		}
	}
	return nil
}

func recordIntersects(rec *AllocationRecord, begin, end int64) bool {
	for _, s := range rec.Spans {
		if s.Begin < end && begin < s.End {
			return true
		}
	}
	return false
}

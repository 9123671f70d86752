package acapacity

// FindSlotOptions configures FindSlot/Allocate (spec §4.4.2).
type FindSlotOptions struct {
	AllowSplit  bool
	MinSplit    int   // only meaningful when AllowSplit is true; defaults to 1
	Deadline    int64 // absolute resolution unit; meaningful only when HasDeadline
	HasDeadline bool
}

// FindSlot locates a placement for workUnits of work on e's resource
// without mutating engine state (spec §4.4.2). With no deadline, it
// auto-extends the horizon on demand, bounded by a lookahead proportional
// to workUnits (spec §4.4.5). With a deadline, it materialises bits through
// the deadline up front and never extends further.
func (e *Engine) FindSlot(operationID string, earliestStart int64, workUnits int, opts FindSlotOptions) (*AllocationRecord, error) {
	if workUnits < 1 {
		return nil, NewInvalidOperationError("find_slot", "work_units must be >= 1")
	}
	minSplit := opts.MinSplit
	if minSplit < 1 {
		minSplit = 1
	}
	if opts.HasDeadline && opts.Deadline <= earliestStart {
		return nil, NewInvalidOperationError("find_slot", "deadline must be after earliest_start")
	}

	start := earliestStart
	if start < e.horizonBegin {
		start = e.horizonBegin
	}

	if opts.HasDeadline {
		if err := e.ensureMaterializedThrough(opts.Deadline); err != nil {
			return nil, err
		}
	}

	p := start - e.horizonBegin
	if p < 0 {
		p = 0
	}
	remaining := workUnits
	var spans []Span
	var first int64
	haveFirst := false

	for remaining > 0 {
		var limit int64
		if opts.HasDeadline {
			limit = opts.Deadline - e.horizonBegin
		} else {
			limit = e.horizonEnd - e.horizonBegin
		}

		if p >= limit {
			if opts.HasDeadline {
				return nil, NewInfeasibleError(operationID, workUnits, remaining, "deadline")
			}
			extended, err := e.autoExtend(workUnits)
			if err != nil {
				return nil, err
			}
			if !extended {
				return nil, NewInfeasibleError(operationID, workUnits, remaining, "horizon")
			}
			continue
		}

		if !e.bits[p] {
			p++
			continue
		}

		q := p
		for q < limit && e.bits[q] {
			q++
		}
		runLen := q - p

		if !opts.AllowSplit && int64(remaining) > runLen {
			p = q
			continue
		}
		if opts.AllowSplit && runLen < int64(minSplit) {
			p = q
			continue
		}

		take := runLen
		if int64(remaining) < take {
			take = int64(remaining)
		}
		begin := e.horizonBegin + p
		end := begin + take
		spans = append(spans, Span{Begin: begin, End: end})
		if !haveFirst {
			first = begin
			haveFirst = true
		}
		remaining -= int(take)
		p += take
	}

	last := spans[len(spans)-1]
	return &AllocationRecord{
		OperationID: operationID,
		ResourceID:  e.ResourceID,
		Start:       first,
		Finish:      last.End,
		WorkUnits:   workUnits,
		AllowSplit:  opts.AllowSplit,
		Spans:       spans,
	}, nil
}

// Allocate finds a slot and commits it atomically.
func (e *Engine) Allocate(operationID string, earliestStart int64, workUnits int, opts FindSlotOptions) (*AllocationRecord, error) {
	rec, err := e.FindSlot(operationID, earliestStart, workUnits, opts)
	if err != nil {
		return nil, err
	}
	return e.Commit(rec)
}

package acapacity

import (
	"time"

	"github.com/jpfluger/schedprim/acalendar"
	"github.com/jpfluger/schedprim/alog"
	"github.com/jpfluger/schedprim/atime"
)

// Engine is mutable per-resource capacity state: a free/occupied bit vector
// over an integer horizon, plus the allocation index needed for conflict
// detection on dynamic capacity mutation. Construct with FromCalendar.
type Engine struct {
	ResourceID string

	horizonBegin int64 // inclusive, absolute resolution units from epoch
	horizonEnd   int64 // exclusive
	bits         []bool

	pattern    *acalendar.Pattern
	resolution atime.Resolution
	epoch      time.Time

	allocations map[string]*AllocationRecord // keyed by OperationID
}

// FromCalendar materialises an Engine over [horizonStart, horizonEnd) from
// pattern, by resolving working periods and setting their corresponding
// bits to free (spec §4.4.1).
func FromCalendar(pattern *acalendar.Pattern, horizonStart, horizonEnd time.Time, epoch time.Time, res atime.Resolution) (*Engine, error) {
	if horizonStart.Location() != time.UTC && horizonStart.Location() != time.Local {
		return nil, acalendar.NewTimezoneError(horizonStart)
	}
	if horizonEnd.Location() != time.UTC && horizonEnd.Location() != time.Local {
		return nil, acalendar.NewTimezoneError(horizonEnd)
	}
	if horizonEnd.Before(horizonStart) {
		return nil, NewInvalidOperationError("from_calendar", "horizonEnd must not be before horizonStart")
	}

	begin, err := atime.ToInt(horizonStart, epoch, res)
	if err != nil {
		return nil, err
	}
	end, err := atime.ToInt(horizonEnd, epoch, res)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		ResourceID:   pattern.PatternID,
		horizonBegin: begin,
		horizonEnd:   end,
		bits:         make([]bool, end-begin),
		pattern:      pattern,
		resolution:   res,
		epoch:        epoch.UTC(),
		allocations:  map[string]*AllocationRecord{},
	}

	if err := e.markWorkingBits(horizonStart, horizonEnd); err != nil {
		return nil, err
	}
	return e, nil
}

// markWorkingBits resolves pattern's working periods over [from, to) and
// sets the corresponding bits to free (true).
func (e *Engine) markWorkingBits(from, to time.Time) error {
	it, err := e.pattern.WorkingIntervalsInRange(from, to)
	if err != nil {
		return err
	}
	for {
		per, ok := it.Next()
		if !ok {
			break
		}
		t1, err := atime.ToInt(per.Start, e.epoch, e.resolution)
		if err != nil {
			return err
		}
		t2, err := atime.ToInt(per.End, e.epoch, e.resolution)
		if err != nil {
			return err
		}
		for i := t1 - e.horizonBegin; i < t2-e.horizonBegin; i++ {
			if i >= 0 && i < int64(len(e.bits)) {
				e.bits[i] = true
			}
		}
	}
	return it.Err()
}

// HorizonBegin returns the inclusive lower bound of the materialised
// horizon, in absolute resolution units from epoch.
func (e *Engine) HorizonBegin() int64 { return e.horizonBegin }

// HorizonEnd returns the exclusive upper bound of the materialised horizon.
func (e *Engine) HorizonEnd() int64 { return e.horizonEnd }

// FreeCount returns the number of currently free bits in the horizon.
func (e *Engine) FreeCount() int {
	n := 0
	for _, b := range e.bits {
		if b {
			n++
		}
	}
	return n
}

func (e *Engine) logExtended(newEnd int64) {
	alog.LOGGER(alog.LOGGER_APP).Debug().
		Str("resourceId", e.ResourceID).
		Int64("newHorizonEnd", newEnd).
		Msg("acapacity: extended horizon")
}

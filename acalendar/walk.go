package acalendar

import "time"

// MaxNonWorkingDayLookahead bounds how many consecutive non-working days a
// forward/backward walk will scan before concluding the pattern cannot
// satisfy the request (spec §9, Open Question (c): the exact bound is left
// to the implementer subject to guaranteed termination).
var MaxNonWorkingDayLookahead = 1500

// unit is the walk's atomic grain: one minute, matching TimeOfDay's "HH:MM"
// granularity. The Capacity Engine's atime.Resolution is a separate,
// independent integer-domain unit used only at the engine boundary.
const unit = time.Minute

// AddUnits advances start by units working minutes, skipping non-working
// time, and returns the resulting datetime (spec §4.3, "Forward").
func (p *Pattern) AddUnits(start time.Time, units int64) (time.Time, error) {
	if start.Location() != time.UTC && start.Location() != time.Local {
		return time.Time{}, NewTimezoneError(start)
	}
	if units < 0 {
		return time.Time{}, NewInvalidExceptionError(dateKey(start), "units must be non-negative")
	}
	cur := start.UTC()
	day := cur.Truncate(24 * time.Hour)
	remaining := units
	nonWorkingDays := 0

	for remaining > 0 {
		periods, err := p.PeriodsForDate(day)
		if err != nil {
			return time.Time{}, err
		}
		usedAny := false
		for _, per := range periods {
			if !per.End.After(cur) {
				continue
			}
			effectiveStart := cur
			if effectiveStart.Before(per.Start) {
				effectiveStart = per.Start
			}
			if !effectiveStart.Before(per.End) {
				continue
			}
			usedAny = true
			available := int64(per.End.Sub(effectiveStart) / unit)
			if remaining <= available {
				return effectiveStart.Add(time.Duration(remaining) * unit), nil
			}
			remaining -= available
			cur = per.End
		}
		if !usedAny {
			nonWorkingDays++
			if nonWorkingDays > MaxNonWorkingDayLookahead {
				return time.Time{}, NewInfeasibleWalkError(nonWorkingDays)
			}
		} else {
			nonWorkingDays = 0
		}
		day = day.AddDate(0, 0, 1)
		cur = day
	}
	return cur, nil
}

// SubtractUnits retreats end by units working minutes, skipping non-working
// time, and returns the resulting datetime (spec §4.3, "Backward").
func (p *Pattern) SubtractUnits(end time.Time, units int64) (time.Time, error) {
	if end.Location() != time.UTC && end.Location() != time.Local {
		return time.Time{}, NewTimezoneError(end)
	}
	if units < 0 {
		return time.Time{}, NewInvalidExceptionError(dateKey(end), "units must be non-negative")
	}
	cur := end.UTC()
	day := cur.Truncate(24 * time.Hour)
	remaining := units
	nonWorkingDays := 0

	for remaining > 0 {
		periods, err := p.PeriodsForDate(day)
		if err != nil {
			return time.Time{}, err
		}
		usedAny := false
		for i := len(periods) - 1; i >= 0; i-- {
			per := periods[i]
			if !per.Start.Before(cur) {
				continue
			}
			effectiveEnd := cur
			if effectiveEnd.After(per.End) {
				effectiveEnd = per.End
			}
			if !effectiveEnd.After(per.Start) {
				continue
			}
			usedAny = true
			available := int64(effectiveEnd.Sub(per.Start) / unit)
			if remaining <= available {
				return effectiveEnd.Add(-time.Duration(remaining) * unit), nil
			}
			remaining -= available
			cur = per.Start
		}
		if !usedAny {
			nonWorkingDays++
			if nonWorkingDays > MaxNonWorkingDayLookahead {
				return time.Time{}, NewInfeasibleWalkError(nonWorkingDays)
			}
		} else {
			nonWorkingDays = 0
		}
		day = day.AddDate(0, 0, -1)
		cur = day.AddDate(0, 0, 1)
	}
	return cur, nil
}

// WorkingUnitsBetween sums the clipped working overlap of every period with
// [a, b) (spec §4.3, "Counting"). Requires a <= b.
func (p *Pattern) WorkingUnitsBetween(a, b time.Time) (int64, error) {
	if a.Location() != time.UTC && a.Location() != time.Local {
		return 0, NewTimezoneError(a)
	}
	if b.Location() != time.UTC && b.Location() != time.Local {
		return 0, NewTimezoneError(b)
	}
	a, b = a.UTC(), b.UTC()
	if b.Before(a) {
		return 0, NewInvalidExceptionError(dateKey(a), "b must not be before a")
	}
	var total int64
	day := a.Truncate(24 * time.Hour)
	for day.Before(b) {
		periods, err := p.PeriodsForDate(day)
		if err != nil {
			return 0, err
		}
		for _, per := range periods {
			start := per.Start
			if start.Before(a) {
				start = a
			}
			end := per.End
			if end.After(b) {
				end = b
			}
			if end.After(start) {
				total += int64(end.Sub(start) / unit)
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return total, nil
}

// IntervalIter yields each resolved period's clipped overlap with a
// requested [a, b) range, in order, one call to Next() at a time. An
// IntervalIter is single-use: exhausting it (Next returning ok=false) is
// terminal.
type IntervalIter struct {
	pattern    *Pattern
	cursor     time.Time
	rangeStart time.Time
	end        time.Time
	queue      []Period
	err        error
}

// WorkingIntervalsInRange returns an iterator over every working period's
// clipped overlap with [a, b), computed day-by-day on demand (spec §4.3,
// "Enumeration").
func (p *Pattern) WorkingIntervalsInRange(a, b time.Time) (*IntervalIter, error) {
	if a.Location() != time.UTC && a.Location() != time.Local {
		return nil, NewTimezoneError(a)
	}
	if b.Location() != time.UTC && b.Location() != time.Local {
		return nil, NewTimezoneError(b)
	}
	a, b = a.UTC(), b.UTC()
	if b.Before(a) {
		return nil, NewInvalidExceptionError(dateKey(a), "b must not be before a")
	}
	return &IntervalIter{pattern: p, cursor: a.Truncate(24 * time.Hour), rangeStart: a, end: b}, nil
}

// Err returns the first error encountered while materialising periods, if any.
func (it *IntervalIter) Err() error { return it.err }

// Next returns the next clipped period and true, or the zero Period and
// false when the range is exhausted (or an error occurred; check Err).
func (it *IntervalIter) Next() (Period, bool) {
	for {
		if len(it.queue) > 0 {
			per := it.queue[0]
			it.queue = it.queue[1:]
			return per, true
		}
		if !it.cursor.Before(it.end) {
			return Period{}, false
		}
		periods, err := it.pattern.PeriodsForDate(it.cursor)
		if err != nil {
			it.err = err
			return Period{}, false
		}
		for _, per := range periods {
			clippedStart := per.Start
			clippedEnd := per.End
			if clippedStart.Before(it.rangeStart) {
				clippedStart = it.rangeStart
			}
			if clippedEnd.After(it.end) {
				clippedEnd = it.end
			}
			if clippedEnd.After(clippedStart) {
				it.queue = append(it.queue, Period{Start: clippedStart, End: clippedEnd})
			}
		}
		it.cursor = it.cursor.AddDate(0, 0, 1)
	}
}

package acalendar

import (
	"fmt"
	"sort"
	"time"
)

// Period is a single resolved working window within one calendar day,
// [Start, End) in UTC-equivalent naive local time.
type Period struct {
	Start time.Time
	End   time.Time
}

// dateKey formats d (assumed already truncated to a UTC day boundary) as
// the "YYYY-MM-DD" key Exception.Date uses.
func dateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// PeriodsForDate resolves the ordered, non-overlapping working periods for
// the calendar day containing d (d's time-of-day component is ignored; the
// day boundary is taken in UTC). This is the single source of truth for
// "what is working on this day" used by both the lazy walk and engine
// materialisation (spec §4.2).
func (p *Pattern) PeriodsForDate(d time.Time) ([]Period, error) {
	day := d.UTC().Truncate(24 * time.Hour)
	base := p.basePeriodMinutesForWeekday(day.Weekday())

	key := dateKey(day)
	excs := p.exceptionsByDate[key]

	periods := make([]minutePeriod, len(base))
	copy(periods, base)

	fullDayRemoved := false
	for _, e := range excs {
		if !e.IsWorking && e.Start == nil {
			periods = nil
			fullDayRemoved = true
			break
		}
	}
	_ = fullDayRemoved

	for _, e := range excs {
		if !e.IsWorking && e.Start != nil {
			periods = subtractWindow(periods, minutePeriod{begin: e.Start.Minutes, end: e.End.Minutes})
		}
	}
	for _, e := range excs {
		if e.IsWorking {
			var err error
			periods, err = insertWindow(periods, minutePeriod{begin: e.Start.Minutes, end: e.End.Minutes})
			if err != nil {
				return nil, NewInvalidExceptionError(key, err.Error())
			}
		}
	}

	sort.Slice(periods, func(i, j int) bool { return periods[i].begin < periods[j].begin })
	for i := 1; i < len(periods); i++ {
		if periods[i].begin < periods[i-1].end {
			return nil, NewInvalidExceptionError(key, "exception produced overlapping periods")
		}
	}

	result := make([]Period, 0, len(periods))
	for _, mp := range periods {
		if mp.begin >= mp.end {
			continue
		}
		result = append(result, Period{
			Start: day.Add(time.Duration(mp.begin) * time.Minute),
			End:   day.Add(time.Duration(mp.end) * time.Minute),
		})
	}
	return result, nil
}

// subtractWindow removes [rem.begin, rem.end) from every period in periods,
// splitting a period into two when the window falls strictly inside it.
func subtractWindow(periods []minutePeriod, rem minutePeriod) []minutePeriod {
	var out []minutePeriod
	for _, mp := range periods {
		if rem.end <= mp.begin || rem.begin >= mp.end {
			// no overlap
			out = append(out, mp)
			continue
		}
		if rem.begin > mp.begin {
			out = append(out, minutePeriod{begin: mp.begin, end: rem.begin})
		}
		if rem.end < mp.end {
			out = append(out, minutePeriod{begin: rem.end, end: mp.end})
		}
	}
	return out
}

// insertWindow adds [add.begin, add.end) to periods, merging it with any
// periods it touches or overlaps contiguously, and rejects the insert if it
// strictly overlaps (rather than merely touches) an existing period's
// interior in a way that cannot be resolved as a clean union.
func insertWindow(periods []minutePeriod, add minutePeriod) ([]minutePeriod, error) {
	merged := add
	var kept []minutePeriod
	for _, mp := range periods {
		switch {
		case mp.end < merged.begin || mp.begin > merged.end:
			// disjoint, no touch
			kept = append(kept, mp)
		case mp.end == merged.begin || mp.begin == merged.end:
			// adjacent: merge into one contiguous window
			if mp.begin < merged.begin {
				merged.begin = mp.begin
			}
			if mp.end > merged.end {
				merged.end = mp.end
			}
		default:
			return nil, fmt.Errorf("window [%d,%d) overlaps existing period [%d,%d)", add.begin, add.end, mp.begin, mp.end)
		}
	}
	kept = append(kept, merged)
	sort.Slice(kept, func(i, j int) bool { return kept[i].begin < kept[j].begin })
	return kept, nil
}

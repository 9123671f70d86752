package acalendar

import (
	"time"

	"github.com/robfig/cron/v3"
)

// BlackoutRule describes a recurring non-working window anchored to a
// standard five-field cron expression: each firing of CronExpr opens a
// window of Duration that ExpandBlackoutRules turns into is_working=false
// Exception rows. Useful for things like a recurring nightly maintenance
// window that a WeeklyRule table can't express because it doesn't align to
// week boundaries (e.g. "first of the month").
type BlackoutRule struct {
	CronExpr string        `json:"cronExpr"`
	Duration time.Duration `json:"duration"`
}

// ExpandBlackoutRules materialises each BlackoutRule's cron firings in
// [from, to) into Exception rows. A window that spans a calendar day
// boundary produces one Exception per day it touches, each clipped to that
// day, since Exception.Start/End are within-day TimeOfDay bounds.
func ExpandBlackoutRules(rules []BlackoutRule, from, to time.Time) ([]Exception, error) {
	var out []Exception
	for _, r := range rules {
		sched, err := cron.ParseStandard(r.CronExpr)
		if err != nil {
			return nil, NewInvalidExceptionError("", "malformed blackout cron expression: "+err.Error())
		}
		for cursor := from; cursor.Before(to); {
			next := sched.Next(cursor)
			if next.IsZero() || !next.Before(to) {
				break
			}
			windowEnd := next.Add(r.Duration)
			out = append(out, splitAcrossDays(next, windowEnd)...)
			cursor = next.Add(time.Nanosecond)
		}
	}
	return out, nil
}

// splitAcrossDays turns a [start, end) wall-clock window into one
// is_working=false Exception per calendar day it overlaps, each clipped to
// that day's bounds.
func splitAcrossDays(start, end time.Time) []Exception {
	var out []Exception
	day := start.UTC().Truncate(24 * time.Hour)
	for day.Before(end) {
		dayEnd := day.Add(24 * time.Hour)
		clipStart := start
		if clipStart.Before(day) {
			clipStart = day
		}
		clipEnd := end
		if clipEnd.After(dayEnd) {
			clipEnd = dayEnd
		}
		startTod := TimeOfDay{Minutes: int(clipStart.Sub(day).Minutes())}
		endTod := TimeOfDay{Minutes: int(clipEnd.Sub(day).Minutes())}
		if endTod.Minutes > startTod.Minutes {
			out = append(out, Exception{
				Date:      dateKey(day),
				IsWorking: false,
				Start:     &startTod,
				End:       &endTod,
			})
		}
		day = dayEnd
	}
	return out
}

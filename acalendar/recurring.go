package acalendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// RecurringException describes a dated exception that recurs according to
// an RFC 5545 recurrence rule string (e.g. "FREQ=MONTHLY;BYDAY=1MO") instead
// of being listed one date at a time. ExpandRecurringExceptions materialises
// it into concrete Exception rows over a bounded window.
type RecurringException struct {
	RRule     string     `json:"rrule"`
	IsWorking bool       `json:"isWorking"`
	Start     *TimeOfDay `json:"start,omitempty"`
	End       *TimeOfDay `json:"end,omitempty"`
}

// ExpandRecurringExceptions materialises each RecurringException's
// recurrence into individual dated Exception rows falling in [from, to),
// suitable for passing to NewPattern alongside any one-off exceptions.
// An unbounded recurrence rule (no COUNT or UNTIL) is safe to expand this
// way because Between itself is bounded by the [from, to) window. Each
// rule's recurrence is anchored to DTSTART=from unless RRule already
// supplies its own DTSTART line.
func ExpandRecurringExceptions(recs []RecurringException, from, to time.Time) ([]Exception, error) {
	var out []Exception
	for _, r := range recs {
		raw := r.RRule
		if !strings.Contains(raw, "DTSTART") {
			raw = "DTSTART:" + from.UTC().Format("20060102T150405Z") + "\nRRULE:" + raw
		}
		rule, err := rrule.StrToRRule(raw)
		if err != nil {
			return nil, NewInvalidExceptionError("", fmt.Sprintf("malformed rrule %q: %s", r.RRule, err.Error()))
		}
		for _, occ := range rule.Between(from, to, true) {
			out = append(out, Exception{
				Date:      dateKey(occ),
				IsWorking: r.IsWorking,
				Start:     r.Start,
				End:       r.End,
			})
		}
	}
	return out, nil
}

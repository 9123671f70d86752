package acalendar

import (
	"time"

	cal "github.com/rickar/cal/v2"
	cal_us "github.com/rickar/cal/v2/us"
)

// BusinessCalendar resolves which calendar dates are holidays for a single
// jurisdiction. It wraps rickar/cal/v2's calendar so NewPatternFromBusinessCalendar
// can fold holiday dates into a Pattern's exception table without every
// caller re-deriving the rickar/cal wiring.
type BusinessCalendar struct {
	cal *cal.BusinessCalendar
}

// NewBusinessCalendar builds a BusinessCalendar for the given ISO jurisdiction
// code. Only "us" is wired today; additional jurisdictions register their
// own rickar/cal/v2 holiday sets the same way.
func NewBusinessCalendar(iso string) (*BusinessCalendar, error) {
	bc := cal.NewBusinessCalendar()
	switch iso {
	case "us", "US":
		bc.AddHoliday(cal_us.Holidays...)
	default:
		return nil, NewInvalidExceptionError(iso, "unsupported business calendar jurisdiction")
	}
	return &BusinessCalendar{cal: bc}, nil
}

// IsHoliday reports whether d is a holiday, either on its actual calendar
// date or on the date it is observed.
func (b *BusinessCalendar) IsHoliday(d time.Time) (actual, observed bool) {
	actual, observed, _ = b.cal.IsHoliday(d)
	return actual, observed
}

// NewPatternFromBusinessCalendar builds a Pattern from rules plus a
// holiday-seeded exception table: every holiday date (actual or observed)
// between fromYear and toYear inclusive is folded in as a full-day,
// is_working=false Exception, merged with any caller-supplied exceptions
// for the same date (a caller exception for a holiday date wins, since it
// is appended after and PeriodsForDate applies false-exceptions before
// true-exceptions regardless of table order).
func NewPatternFromBusinessCalendar(patternID string, rules []WeeklyRule, bc *BusinessCalendar, fromYear, toYear int, exceptions []Exception) (*Pattern, error) {
	seeded := make([]Exception, 0, len(exceptions))
	have := map[string]bool{}
	for y := fromYear; y <= toYear; y++ {
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			actual, observed := bc.IsHoliday(d)
			if !actual && !observed {
				continue
			}
			key := dateKey(d)
			if have[key] {
				continue
			}
			have[key] = true
			seeded = append(seeded, Exception{Date: key, IsWorking: false})
		}
	}
	seeded = append(seeded, exceptions...)
	return NewPattern(patternID, rules, seeded)
}

package acalendar

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is a within-day wall-clock bound expressed in minutes since
// midnight, parsed from and rendered as "HH:MM". A rule's TimeOfDay never
// itself carries a date; the resolver attaches dates.
type TimeOfDay struct {
	Minutes int `json:"-"`
}

// Midnight is the zero TimeOfDay, 00:00.
var Midnight = TimeOfDay{Minutes: 0}

// EndOfDay is 24:00, one past the last minute of a day. Rules and exceptions
// use it as the implicit upper bound of an overnight period's first half.
var EndOfDay = TimeOfDay{Minutes: 24 * 60}

// ParseTimeOfDay parses a "HH:MM" string where HH is 00-24 and MM is 00-59,
// with the single exception that "24:00" is accepted to mean EndOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time-of-day %q: want HH:MM", s)
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 24 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in time-of-day %q", s)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in time-of-day %q", s)
	}
	if hh == 24 && mm != 0 {
		return TimeOfDay{}, fmt.Errorf("invalid time-of-day %q: only 24:00 is valid at hour 24", s)
	}
	return TimeOfDay{Minutes: hh*60 + mm}, nil
}

// String renders the TimeOfDay back into "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Minutes/60, t.Minutes%60)
}

// Before reports whether t sorts strictly before o.
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.Minutes < o.Minutes }

// After reports whether t sorts strictly after o.
func (t TimeOfDay) After(o TimeOfDay) bool { return t.Minutes > o.Minutes }

// Equal reports whether t and o denote the same minute.
func (t TimeOfDay) Equal(o TimeOfDay) bool { return t.Minutes == o.Minutes }

// MarshalJSON renders the TimeOfDay as its "HH:MM" string form.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON parses a "HH:MM" JSON string into a TimeOfDay.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

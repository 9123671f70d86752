package acalendar

import (
	"time"

	"github.com/jpfluger/schedprim/aerr"
)

// TimezoneError reports a zone-aware datetime crossing a boundary that only
// accepts naive (UTC-equivalent) local time.
type TimezoneError struct {
	*aerr.Error
	At time.Time
}

// NewTimezoneError builds a TimezoneError for the given offending time.
func NewTimezoneError(at time.Time) *TimezoneError {
	return &TimezoneError{
		Error: aerr.Newf("time %s carries a non-UTC zone; calendar boundaries accept naive local time only", at.Format(time.RFC3339)),
		At:    at,
	}
}

// InvalidRuleError reports a malformed WeeklyRule: an unknown weekday, an
// invalid HH:MM bound, or an overlap with another rule on the same weekday
// after overnight splitting.
type InvalidRuleError struct {
	*aerr.Error
	Weekday time.Weekday
	Reason  string
}

// NewInvalidRuleError builds an InvalidRuleError.
func NewInvalidRuleError(weekday time.Weekday, reason string) *InvalidRuleError {
	return &InvalidRuleError{
		Error:   aerr.Newf("invalid weekly rule for %s: %s", weekday, reason),
		Weekday: weekday,
		Reason:  reason,
	}
}

// InfeasibleWalkError reports that a forward/backward walk exhausted its
// bounded lookahead of consecutive non-working days without satisfying the
// requested unit count — the walk-level counterpart of acapacity's
// InfeasibleError, which instead carries an operation id and work-unit
// counts that only make sense once a search is bound to an engine.
type InfeasibleWalkError struct {
	*aerr.Error
	DaysScanned int
}

// NewInfeasibleWalkError builds an InfeasibleWalkError.
func NewInfeasibleWalkError(daysScanned int) *InfeasibleWalkError {
	return &InfeasibleWalkError{
		Error:       aerr.Newf("walk exhausted %d consecutive non-working days without completing", daysScanned),
		DaysScanned: daysScanned,
	}
}

// InvalidExceptionError reports a malformed Exception or one that conflicts
// with the resolved period list for its date (e.g. an is_working=true window
// overlapping an existing period).
type InvalidExceptionError struct {
	*aerr.Error
	Date   string
	Reason string
}

// NewInvalidExceptionError builds an InvalidExceptionError.
func NewInvalidExceptionError(date string, reason string) *InvalidExceptionError {
	return &InvalidExceptionError{
		Error:  aerr.Newf("invalid exception for %s: %s", date, reason),
		Date:   date,
		Reason: reason,
	}
}

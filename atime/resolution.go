package atime

import (
	"fmt"
	"time"

	"github.com/jpfluger/schedprim/aerr"
)

// Resolution names the integer time unit a Pattern or Engine counts in.
// Everything downstream of the resolver (bit-vectors, allocation math,
// fixture documents) works in these integer units instead of raw
// time.Duration so that arithmetic stays exact.
type Resolution struct {
	UnitSeconds int64  `json:"unitSeconds"`
	Label       string `json:"label,omitempty"`
}

// Minute is the predefined one-minute resolution.
var Minute = Resolution{UnitSeconds: 60, Label: "minute"}

// Hour is the predefined one-hour resolution.
var Hour = Resolution{UnitSeconds: 3600, Label: "hour"}

// IsValid reports whether the resolution has a positive unit size.
func (r Resolution) IsValid() bool {
	return r.UnitSeconds > 0
}

// ToInt converts a wall-clock time into an integer count of resolution
// units elapsed since epoch. dt must carry either time.UTC or time.Local;
// any other zone is rejected with a TimezoneError rather than silently
// coerced, since the resolver is meant to work in naive local time. epoch
// is normalized to UTC before the difference is taken.
// It returns a MisalignmentError if the elapsed duration is not an exact
// multiple of the resolution's unit size.
func ToInt(dt time.Time, epoch time.Time, res Resolution) (int64, error) {
	if !res.IsValid() {
		return 0, fmt.Errorf("resolution must have a positive unitSeconds")
	}
	if dt.Location() != time.UTC && dt.Location() != time.Local {
		return 0, NewTimezoneError(dt)
	}
	elapsed := dt.UTC().Sub(epoch.UTC())
	if elapsed%time.Second != 0 {
		// sub-second component present: never aligns to a whole unit.
		return 0, NewMisalignmentError(dt, epoch, res.UnitSeconds)
	}
	seconds := int64(elapsed / time.Second)
	if seconds%res.UnitSeconds != 0 {
		return 0, NewMisalignmentError(dt, epoch, res.UnitSeconds)
	}
	return seconds / res.UnitSeconds, nil
}

// ToDatetime converts an integer count of resolution units elapsed since
// epoch back into a UTC wall-clock time. It is the exact inverse of ToInt
// for any value ToInt itself returned.
func ToDatetime(n int64, epoch time.Time, res Resolution) time.Time {
	return epoch.UTC().Add(time.Duration(n*res.UnitSeconds) * time.Second)
}

// MisalignmentError indicates a time value does not fall on a Resolution's
// unit boundary relative to the epoch in use.
type MisalignmentError struct {
	*aerr.Error
	Time        time.Time
	Epoch       time.Time
	UnitSeconds int64
}

// NewMisalignmentError builds a MisalignmentError for the given offending time.
func NewMisalignmentError(dt time.Time, epoch time.Time, unitSeconds int64) *MisalignmentError {
	return &MisalignmentError{
		Error: aerr.Newf("time %s does not align to a %d-second unit boundary from epoch %s",
			dt.UTC().Format(time.RFC3339), unitSeconds, epoch.UTC().Format(time.RFC3339)),
		Time:        dt,
		Epoch:       epoch,
		UnitSeconds: unitSeconds,
	}
}

// TimezoneError reports a time value carrying a zone other than UTC or
// Local where ToInt requires naive local time.
type TimezoneError struct {
	*aerr.Error
	Time time.Time
}

// NewTimezoneError builds a TimezoneError for the given offending time.
func NewTimezoneError(dt time.Time) *TimezoneError {
	return &TimezoneError{
		Error: aerr.Newf("time %s carries a non-UTC, non-Local zone; ToInt accepts naive local time only", dt.Format(time.RFC3339)),
		Time:  dt,
	}
}

package acalendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdayPattern(t *testing.T, exceptions []Exception) *Pattern {
	t.Helper()
	rules := []WeeklyRule{
		{Weekday: time.Monday, Start: mustTOD(t, "09:00"), End: mustTOD(t, "17:00")},
		{Weekday: time.Tuesday, Start: mustTOD(t, "09:00"), End: mustTOD(t, "17:00")},
		{Weekday: time.Wednesday, Start: mustTOD(t, "09:00"), End: mustTOD(t, "17:00")},
		{Weekday: time.Thursday, Start: mustTOD(t, "09:00"), End: mustTOD(t, "17:00")},
		{Weekday: time.Friday, Start: mustTOD(t, "09:00"), End: mustTOD(t, "17:00")},
	}
	p, err := NewPattern("weekdays", rules, exceptions)
	require.NoError(t, err)
	return p
}

func TestPeriodsForDate_WeekendIsEmpty(t *testing.T) {
	p := weekdayPattern(t, nil)
	sat := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC) // a Saturday
	periods, err := p.PeriodsForDate(sat)
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestPeriodsForDate_FullDayException(t *testing.T) {
	mon := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	p := weekdayPattern(t, []Exception{{Date: dateKey(mon), IsWorking: false}})
	periods, err := p.PeriodsForDate(mon)
	require.NoError(t, err)
	assert.Empty(t, periods)
}

func TestPeriodsForDate_PartialSubtraction(t *testing.T) {
	mon := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	lunchStart := mustTOD(t, "12:00")
	lunchEnd := mustTOD(t, "13:00")
	p := weekdayPattern(t, []Exception{{Date: dateKey(mon), IsWorking: false, Start: &lunchStart, End: &lunchEnd}})
	periods, err := p.PeriodsForDate(mon)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, mon.Add(9*time.Hour), periods[0].Start)
	assert.Equal(t, mon.Add(12*time.Hour), periods[0].End)
	assert.Equal(t, mon.Add(13*time.Hour), periods[1].Start)
	assert.Equal(t, mon.Add(17*time.Hour), periods[1].End)
}

func TestPeriodsForDate_AddsWorkingWindowOnWeekend(t *testing.T) {
	sat := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	satStart := mustTOD(t, "10:00")
	satEnd := mustTOD(t, "14:00")
	p := weekdayPattern(t, []Exception{{Date: dateKey(sat), IsWorking: true, Start: &satStart, End: &satEnd}})
	periods, err := p.PeriodsForDate(sat)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, sat.Add(10*time.Hour), periods[0].Start)
	assert.Equal(t, sat.Add(14*time.Hour), periods[0].End)
}

func TestPeriodsForDate_AdjacentAdditionMerges(t *testing.T) {
	mon := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	extStart := mustTOD(t, "17:00")
	extEnd := mustTOD(t, "19:00")
	p := weekdayPattern(t, []Exception{{Date: dateKey(mon), IsWorking: true, Start: &extStart, End: &extEnd}})
	periods, err := p.PeriodsForDate(mon)
	require.NoError(t, err)
	require.Len(t, periods, 1)
	assert.Equal(t, mon.Add(9*time.Hour), periods[0].Start)
	assert.Equal(t, mon.Add(19*time.Hour), periods[0].End)
}

func TestPeriodsForDate_OverlappingAdditionRejected(t *testing.T) {
	mon := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	overlapStart := mustTOD(t, "10:00")
	overlapEnd := mustTOD(t, "20:00")
	p := weekdayPattern(t, []Exception{{Date: dateKey(mon), IsWorking: true, Start: &overlapStart, End: &overlapEnd}})
	_, err := p.PeriodsForDate(mon)
	require.Error(t, err)
	var invalid *InvalidExceptionError
	assert.ErrorAs(t, err, &invalid)
}

package atime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInt_AlignedUTC(t *testing.T) {
	epoch := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	dt := epoch.Add(90 * time.Minute)

	n, err := ToInt(dt, epoch, Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(90), n)
}

func TestToInt_AlignedLocal(t *testing.T) {
	epoch := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	dt := epoch.Add(2 * time.Hour).In(time.Local)

	n, err := ToInt(dt, epoch, Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(120), n)
}

func TestToInt_RejectsNonUTCNonLocalZone(t *testing.T) {
	epoch := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	dt := epoch.Add(time.Hour).In(loc)

	_, err = ToInt(dt, epoch, Minute)
	require.Error(t, err)
	var tzErr *TimezoneError
	assert.True(t, errors.As(err, &tzErr))
}

func TestToInt_RejectsSubUnitResidual(t *testing.T) {
	epoch := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	dt := epoch.Add(90*time.Minute + 30*time.Second)

	_, err := ToInt(dt, epoch, Minute)
	require.Error(t, err)
	var misErr *MisalignmentError
	assert.True(t, errors.As(err, &misErr))
}

func TestToInt_RejectsSubSecondResidual(t *testing.T) {
	epoch := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	dt := epoch.Add(time.Minute + 500*time.Millisecond)

	_, err := ToInt(dt, epoch, Minute)
	require.Error(t, err)
	var misErr *MisalignmentError
	assert.True(t, errors.As(err, &misErr))
}

func TestToInt_RejectsInvalidResolution(t *testing.T) {
	epoch := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	_, err := ToInt(epoch, epoch, Resolution{UnitSeconds: 0})
	assert.Error(t, err)
}

func TestToDatetime_IsInverseOfToInt(t *testing.T) {
	epoch := time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)
	dt := epoch.Add(3 * time.Hour)

	n, err := ToInt(dt, epoch, Minute)
	require.NoError(t, err)
	assert.True(t, ToDatetime(n, epoch, Minute).Equal(dt))
}

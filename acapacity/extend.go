package acapacity

import (
	"time"

	"github.com/jpfluger/schedprim/atime"
)

// MaxAutoExtendMultiplier bounds how many multiples of the calendar's
// weekly working-unit total the engine will search forward before
// concluding a FindSlot request cannot be satisfied (spec §4.4.5, §9 Open
// Question (c): the exact bound is left to the implementer subject to the
// termination guarantee).
var MaxAutoExtendMultiplier int64 = 20

// autoExtendChunkDays is how many calendar days autoExtend materialises per
// call, keeping each extension cheap while still making steady progress
// toward the bound above.
const autoExtendChunkDays = 30

// weeklyWorkingUnits estimates the pattern's working units over the 7-day
// week starting at the current horizon begin. Used only to size the
// auto-extension lookahead bound, not for any exact accounting.
func (e *Engine) weeklyWorkingUnits() (int64, error) {
	weekStart := e.absToDatetime(e.horizonBegin)
	weekEnd := weekStart.AddDate(0, 0, 7)
	return e.pattern.WorkingUnitsBetween(weekStart, weekEnd)
}

func (e *Engine) absToDatetime(n int64) time.Time {
	return atime.ToDatetime(n, e.epoch, e.resolution)
}

// autoExtend grows the horizon by one chunk, bounded by a lookahead
// proportional to workUnits/weeklyWorkingUnits (spec §4.4.5). It returns
// extended=false once the bound is exceeded, signalling FindSlot should
// raise InfeasibleError("horizon") rather than loop unboundedly against an
// effectively empty future.
func (e *Engine) autoExtend(workUnits int) (bool, error) {
	weekly, err := e.weeklyWorkingUnits()
	if err != nil {
		return false, err
	}
	if weekly <= 0 {
		weekly = 1
	}
	weeksNeeded := (int64(workUnits) + weekly - 1) / weekly
	maxHorizonEnd := e.horizonBegin + weeksNeeded*weekly*MaxAutoExtendMultiplier

	if e.horizonEnd >= maxHorizonEnd {
		return false, nil
	}

	oldEnd := e.horizonEnd
	newEndDatetime := e.absToDatetime(oldEnd).AddDate(0, 0, autoExtendChunkDays)
	newEnd, err := atime.ToInt(newEndDatetime, e.epoch, e.resolution)
	if err != nil {
		return false, err
	}
	if newEnd > maxHorizonEnd {
		newEnd = maxHorizonEnd
	}
	if newEnd <= oldEnd {
		return false, nil
	}
	if err := e.growTo(newEnd); err != nil {
		return false, err
	}
	e.logExtended(newEnd)
	return true, nil
}

// ensureMaterializedThrough grows the horizon directly to cover absolute
// unit target, with no bounded-lookahead infeasibility check: the caller
// already knows the exact position it needs (a deadline, or an explicit
// dynamic-mutation range), unlike autoExtend's open-ended search.
func (e *Engine) ensureMaterializedThrough(target int64) error {
	if target <= e.horizonEnd {
		return nil
	}
	return e.growTo(target)
}

// EnsureHorizon grows e's materialised horizon directly to cover absolute
// unit target, with no bounded-lookahead infeasibility check. It is the
// public entry point acron's rolling-horizon maintenance task uses to keep
// an engine's horizon a fixed distance past its horizon begin (spec §4.4.5).
func (e *Engine) EnsureHorizon(target int64) error {
	return e.ensureMaterializedThrough(target)
}

// growTo extends bits to cover [horizonBegin, newEnd), marking the newly
// materialised range's working periods free.
func (e *Engine) growTo(newEnd int64) error {
	oldEnd := e.horizonEnd
	oldEndDatetime := e.absToDatetime(oldEnd)
	newEndDatetime := e.absToDatetime(newEnd)

	grown := make([]bool, newEnd-e.horizonBegin)
	copy(grown, e.bits)
	e.bits = grown
	e.horizonEnd = newEnd

	return e.markWorkingBits(oldEndDatetime, newEndDatetime)
}

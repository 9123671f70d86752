package acapacity

import (
	"github.com/jpfluger/schedprim/aerr"
)

// InfeasibleError reports that FindSlot/Allocate could not satisfy a
// request within the deadline (if any) or within the auto-extension
// lookahead bound.
type InfeasibleError struct {
	*aerr.Error
	OperationID        string
	WorkUnitsRequested int
	WorkUnitsRemaining int
	Reason             string // "deadline" or "horizon"
}

// NewInfeasibleError builds an InfeasibleError.
func NewInfeasibleError(operationID string, requested, remaining int, reason string) *InfeasibleError {
	return &InfeasibleError{
		Error:              aerr.Newf("operation %q infeasible (%s): %d of %d work units unplaced", operationID, reason, remaining, requested),
		OperationID:        operationID,
		WorkUnitsRequested: requested,
		WorkUnitsRemaining: remaining,
		Reason:             reason,
	}
}

// ResourceMismatchError reports an AllocationRecord presented to an Engine
// whose ResourceID it does not belong to.
type ResourceMismatchError struct {
	*aerr.Error
	Expected string
	Got      string
}

// NewResourceMismatchError builds a ResourceMismatchError.
func NewResourceMismatchError(expected, got string) *ResourceMismatchError {
	return &ResourceMismatchError{
		Error:    aerr.Newf("record resource %q does not match engine resource %q", got, expected),
		Expected: expected,
		Got:      got,
	}
}

// SnapshotSizeError reports a Restore() call whose snapshot's bit length
// does not match the engine's current bit length.
type SnapshotSizeError struct {
	*aerr.Error
	Expected int
	Got      int
}

// NewSnapshotSizeError builds a SnapshotSizeError.
func NewSnapshotSizeError(expected, got int) *SnapshotSizeError {
	return &SnapshotSizeError{
		Error:    aerr.Newf("snapshot size %d does not match engine size %d", got, expected),
		Expected: expected,
		Got:      got,
	}
}

// InvalidOperationError reports a double-commit, a release of an unknown
// record, or any other operation requested in a state that forbids it.
type InvalidOperationError struct {
	*aerr.Error
	Op     string
	Detail string
}

// NewInvalidOperationError builds an InvalidOperationError.
func NewInvalidOperationError(op, detail string) *InvalidOperationError {
	return &InvalidOperationError{
		Error:  aerr.Newf("invalid operation %q: %s", op, detail),
		Op:     op,
		Detail: detail,
	}
}

package engine

import (
	"fmt"
	"time"
)

// ErrUnknownAxis indicates a graded outcome referenced an axis outside
// the closed skill set, a caller bug rejected before any state change.
type ErrUnknownAxis struct {
	Axis string
}

func (e *ErrUnknownAxis) Error() string {
	return fmt.Sprintf("unknown skill axis %q", e.Axis)
}

// ErrOutOfOrderOutcome indicates an outcome observed before the item's
// stored last review. Writes are applied in observation order; a stale
// outcome is rejected rather than letting a late writer win.
type ErrOutOfOrderOutcome struct {
	ItemID       string
	ObservedAt   time.Time
	LastReviewed time.Time
}

func (e *ErrOutOfOrderOutcome) Error() string {
	return fmt.Sprintf("outcome for item %q observed at %s precedes last review at %s",
		e.ItemID, e.ObservedAt.Format(time.RFC3339), e.LastReviewed.Format(time.RFC3339))
}

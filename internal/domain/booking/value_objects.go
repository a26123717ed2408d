package booking

import (
	"errors"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow validates a requested window against now. Every temporal rule
// is checked and all violations are reported together.
func NewTimeWindow(start, end, now time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, errs.Mark(ErrMissingTime, errs.ErrValidation)
	}
	if start.Equal(end) {
		return TimeWindow{}, errs.Mark(ErrEmptyWindow, errs.ErrValidation)
	}

	var violations []error
	if !end.After(now) {
		violations = append(violations, ErrEndInPast)
	}
	if !end.After(start) {
		violations = append(violations, ErrEndBeforeStart)
	}
	if start.Before(now) {
		violations = append(violations, ErrStartInPast)
	}
	if len(violations) > 0 {
		return TimeWindow{}, errs.Mark(errors.Join(violations...), errs.ErrValidation)
	}

	return TimeWindow{start: start, end: end}, nil
}

// ReconstructTimeWindow skips validation for stored values.
func ReconstructTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{start: start, end: end}
}

func (w TimeWindow) Start() time.Time { return w.start }
func (w TimeWindow) End() time.Time   { return w.end }

// Slot is the compact booking summary used by item projections and comment
// eligibility.
type Slot struct {
	ID       uuid.UUID
	BookerID uuid.UUID
	Start    time.Time
	End      time.Time
	Status   Status
}

package booking

import (
	"errors"

	"shareit/internal/pkg/errs"
)

// Temporal rule violations. They are joined when several apply and the
// result is marked as a validation failure.
var (
	ErrEmptyWindow     = errors.New("start and end must differ")
	ErrMissingTime     = errors.New("start and end are required")
	ErrEndInPast       = errors.New("end must be in the future")
	ErrEndBeforeStart  = errors.New("end must be after start")
	ErrStartInPast     = errors.New("start must not be in the past")
	ErrMissingItem     = errs.Validation("item id is required")
	ErrInvalidStatus   = errs.Validation("invalid booking status")
	ErrItemUnavailable = errs.Validation("item is not available for booking")
	ErrAlreadyApproved = errs.Validation("booking already approved")
	ErrAlreadyRejected = errs.Validation("booking already rejected")

	ErrNotFound       = errs.NotFound("booking not found")
	ErrOwnItem        = errs.NotFound("item belongs to requester")
	ErrSelfDecision   = errs.NotFound("booker cannot decide own booking")
	ErrNotParticipant = errs.NotFound("booking not found for this user")
	ErrUnknownState   = errs.NotFound("Unknown state: UNSUPPORTED_STATUS")

	ErrDecisionConflict = errs.Conflict("booking status was changed concurrently")
)

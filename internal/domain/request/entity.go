package request

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxDescriptionLength = 2000

var (
	ErrEmptyDescription   = errs.Validation("request description cannot be empty")
	ErrDescriptionTooLong = errs.Validation("request description exceeds maximum length")
	ErrNotFound           = errs.NotFound("item request not found")
)

// ItemRequest is a user's public ask for an item nobody has listed yet.
type ItemRequest struct {
	id          uuid.UUID
	requestorID uuid.UUID
	description string
	createdAt   time.Time
}

func NewItemRequest(requestorID uuid.UUID, description string, now time.Time) (*ItemRequest, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return nil, ErrEmptyDescription
	}
	if len(d) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	return &ItemRequest{
		id:          uuid.New(),
		requestorID: requestorID,
		description: d,
		createdAt:   now,
	}, nil
}

func (r *ItemRequest) ID() uuid.UUID          { return r.id }
func (r *ItemRequest) RequestorID() uuid.UUID { return r.requestorID }
func (r *ItemRequest) Description() string    { return r.description }
func (r *ItemRequest) CreatedAt() time.Time   { return r.createdAt }

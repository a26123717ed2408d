package item

import (
	"strings"
	"time"

	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 2000
)

var (
	ErrEmptyName           = errs.Validation("item name cannot be empty")
	ErrNameTooLong         = errs.Validation("item name exceeds maximum length")
	ErrEmptyDescription    = errs.Validation("item description cannot be empty")
	ErrDescriptionTooLong  = errs.Validation("item description exceeds maximum length")
	ErrAvailabilityMissing = errs.Validation("item availability is required")

	ErrNotFound = errs.NotFound("item not found")
	ErrNotOwner = errs.NotFound("item not found for this owner")
)

type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	available   bool
	requestID   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

// NewItem takes available as a pointer because an omitted flag is an error,
// not false.
func NewItem(ownerID uuid.UUID, name, description string, available *bool, requestID *uuid.UUID, now time.Time) (*Item, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	d, err := validateDescription(description)
	if err != nil {
		return nil, err
	}
	if available == nil {
		return nil, ErrAvailabilityMissing
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        n,
		description: d,
		available:   *available,
		requestID:   requestID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	name, description string,
	available bool,
	requestID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
		requestID:   requestID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Patch applies a partial update on behalf of actorID. Absent or blank text
// fields keep their current value.
func (i *Item) Patch(actorID uuid.UUID, name, description *string, available *bool, now time.Time) error {
	if actorID != i.ownerID {
		return ErrNotOwner
	}
	n, err := validateName(patch.CoalesceNonBlank(name, i.name))
	if err != nil {
		return err
	}
	d, err := validateDescription(patch.CoalesceNonBlank(description, i.description))
	if err != nil {
		return err
	}

	i.name = n
	i.description = d
	i.available = patch.Coalesce(available, i.available)
	i.updatedAt = now
	return nil
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) OwnerID() uuid.UUID    { return i.ownerID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) Available() bool       { return i.available }
func (i *Item) RequestID() *uuid.UUID { return i.requestID }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
func (i *Item) UpdatedAt() time.Time  { return i.updatedAt }

func validateName(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyName
	}
	if len(t) > MaxNameLength {
		return "", ErrNameTooLong
	}
	return t, nil
}

func validateDescription(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyDescription
	}
	if len(t) > MaxDescriptionLength {
		return "", ErrDescriptionTooLong
	}
	return t, nil
}

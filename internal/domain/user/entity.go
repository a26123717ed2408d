package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id        uuid.UUID
	name      string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name, email string, now time.Time) (*User, error) {
	n, err := validateName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	return &User{
		id:        uuid.New(),
		name:      n,
		email:     e,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Patch updates the fields that are present; an absent field keeps its value.
func (u *User) Patch(name, email *string, now time.Time) error {
	if name != nil {
		n, err := validateName(*name)
		if err != nil {
			return err
		}
		u.name = n
	}
	if email != nil {
		e, err := NewEmail(*email)
		if err != nil {
			return err
		}
		u.email = e
	}
	u.updatedAt = now
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

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

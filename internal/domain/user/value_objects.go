package user

import (
	"regexp"
	"strings"

	"shareit/internal/pkg/errs"
)

const MaxNameLength = 255

var (
	ErrInvalidEmail = errs.Validation("invalid email format")
	ErrEmptyName    = errs.Validation("user name cannot be empty")
	ErrNameTooLong  = errs.Validation("user name exceeds maximum length")
	ErrNotFound     = errs.NotFound("user not found")
	ErrEmailTaken   = errs.Conflict("email already registered")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

// ReconstructEmail wraps a stored, already validated address.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}

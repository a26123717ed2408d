package booking

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further decision may be taken.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Perspective scopes a booking list to the caller as booker or as item owner.
type Perspective int

const (
	AsBooker Perspective = iota + 1
	AsOwner
)

func (p Perspective) String() string {
	switch p {
	case AsBooker:
		return "BOOKER"
	case AsOwner:
		return "OWNER"
	default:
		return "UNKNOWN"
	}
}

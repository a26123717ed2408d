package booking

// StateFilter partitions bookings by time window or by status.
type StateFilter int

const (
	StateAll StateFilter = iota + 1
	StateCurrent
	StatePast
	StateFuture
	StateWaiting
	StateApproved
	StateRejected
)

var stateNames = map[string]StateFilter{
	"ALL":      StateAll,
	"CURRENT":  StateCurrent,
	"PAST":     StatePast,
	"FUTURE":   StateFuture,
	"WAITING":  StateWaiting,
	"APPROVED": StateApproved,
	"REJECTED": StateRejected,
}

// ParseStateFilter maps a filter keyword to its filter. An empty keyword
// means ALL; keywords are case-sensitive.
func ParseStateFilter(s string) (StateFilter, error) {
	if s == "" {
		return StateAll, nil
	}
	f, ok := stateNames[s]
	if !ok {
		return 0, ErrUnknownState
	}
	return f, nil
}

func (f StateFilter) String() string {
	for name, v := range stateNames {
		if v == f {
			return name
		}
	}
	return "UNSUPPORTED_STATUS"
}

// Status returns the status a status-based filter selects on.
func (f StateFilter) Status() (Status, bool) {
	switch f {
	case StateWaiting:
		return StatusWaiting, true
	case StateApproved:
		return StatusApproved, true
	case StateRejected:
		return StatusRejected, true
	default:
		return "", false
	}
}

// OrderByEnd reports whether results are ordered by end instead of start.
// Both orders are descending.
func (f StateFilter) OrderByEnd() bool {
	return f == StatePast
}

// TimeScope returns the window part of the filter. Status filters are not
// restricted in time and scope to ALL.
func (f StateFilter) TimeScope() StateFilter {
	switch f {
	case StateCurrent, StatePast, StateFuture:
		return f
	default:
		return StateAll
	}
}

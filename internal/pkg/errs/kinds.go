package errs

// Kind markers. Every business failure carries exactly one of them so the
// transport layer can pick a status code without knowing concrete sentinels.
var (
	ErrValidation = New("kind: validation")
	ErrNotFound   = New("kind: not found")
	ErrConflict   = New("kind: conflict")
)

type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindNotFound   Kind = "NOT_FOUND"
	KindConflict   Kind = "CONFLICT"
	KindInternal   Kind = "INTERNAL"
)

func Validation(msg string) error { return Mark(New(msg), ErrValidation) }
func NotFound(msg string) error   { return Mark(New(msg), ErrNotFound) }
func Conflict(msg string) error   { return Mark(New(msg), ErrConflict) }

func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case Is(err, ErrValidation):
		return KindValidation
	case Is(err, ErrNotFound):
		return KindNotFound
	case Is(err, ErrConflict):
		return KindConflict
	default:
		return KindInternal
	}
}

package domain

import "errors"

// ErrorKind classifies an expected business failure. It is also the "code"
// reported in failure envelopes.
type ErrorKind string

const (
	KindNotFound           ErrorKind = "not_found"
	KindDuplicateEmail     ErrorKind = "duplicate_email"
	KindInvalidCredentials ErrorKind = "invalid_credentials"
	KindUnauthenticated    ErrorKind = "unauthenticated"
	KindForbidden          ErrorKind = "forbidden"
	KindInvalidInput       ErrorKind = "invalid_input"
)

// Error is an expected business failure. Two Errors match under errors.Is
// when their kinds are equal, so a specific error such as ErrEventNotFound
// also matches ErrNotFound.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError returns an Error of the given kind.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Sentinel errors, one per kind.
var (
	ErrNotFound           = NewError(KindNotFound, "not found")
	ErrDuplicateEmail     = NewError(KindDuplicateEmail, "email already in use")
	ErrInvalidCredentials = NewError(KindInvalidCredentials, "invalid email or password")
	ErrUnauthenticated    = NewError(KindUnauthenticated, "authentication required")
	ErrForbidden          = NewError(KindForbidden, "forbidden")
	ErrInvalidInput       = NewError(KindInvalidInput, "invalid input")
)

var (
	ErrEventNotFound     = NewError(KindNotFound, "event not found")
	ErrUserNotFound      = NewError(KindNotFound, "user not found")
	ErrOrganizerNotFound = NewError(KindNotFound, "organizer not found")
)

// ErrStorageUnavailable marks failures of the persistence medium. It is the
// only failure that services return as a Go error instead of a failure
// envelope.
var ErrStorageUnavailable = errors.New("storage unavailable")

// InvalidInput returns an InvalidInput error carrying message.
func InvalidInput(message string) *Error {
	return NewError(KindInvalidInput, message)
}

// AsError reports whether err is (or wraps) a business Error and returns it.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

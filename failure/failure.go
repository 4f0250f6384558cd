// Package failure holds the typed errors returned by the services layer and
// their mapping onto HTTP status codes.
package failure

import (
	"errors"
	"net/http"
)

// Kind groups failures by how the caller should react to them.
type Kind int

const (
	KindStorage Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "storage"
	}
}

// Failure is an error with a kind, a stable code and a human-readable message.
type Failure struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

var (
	ErrMissingField        = &Failure{Kind: KindValidation, Code: "missing_field", Message: "missing required field"}
	ErrInvalidDate         = &Failure{Kind: KindValidation, Code: "invalid_date", Message: "invalid date"}
	ErrInvalidDateRange    = &Failure{Kind: KindValidation, Code: "invalid_date_range", Message: "Check-out date must be after check-in date."}
	ErrRoomNotFound        = &Failure{Kind: KindNotFound, Code: "room_not_found", Message: "Room not found."}
	ErrBookingNotFound     = &Failure{Kind: KindNotFound, Code: "booking_not_found", Message: "Booking not found."}
	ErrDuplicateRoomNumber = &Failure{Kind: KindConflict, Code: "duplicate_room_number", Message: "Room number already exists"}
	ErrDuplicateEmail      = &Failure{Kind: KindConflict, Code: "duplicate_email", Message: "A customer with this email already exists"}
)

func (f *Failure) Error() string {
	if f.Kind == KindStorage && f.Err != nil {
		return f.Err.Error()
	}
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is matches failures by code so that a sentinel with a custom message still
// compares equal to its template.
func (f *Failure) Is(target error) bool {
	var t *Failure
	if !errors.As(target, &t) {
		return false
	}
	return f.Code != "" && f.Code == t.Code
}

// WithMessage returns a copy of f carrying msg.
func (f *Failure) WithMessage(msg string) *Failure {
	cp := *f
	cp.Message = msg
	return &cp
}

// Validation returns a validation failure with the given message.
func Validation(msg string) error {
	return &Failure{Kind: KindValidation, Code: "validation", Message: msg}
}

// Storage wraps an underlying data-store error.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return err
	}
	return &Failure{Kind: KindStorage, Code: "storage", Message: "storage error", Err: err}
}

// KindOf reports the kind of err; unknown errors count as storage failures.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindStorage
}

// HTTPStatus maps err onto a response status code. Conflicts are reported as
// 400 like the other client errors.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

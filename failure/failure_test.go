package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking/failure"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: failure.ErrInvalidDateRange, want: http.StatusBadRequest},
		{name: "missing field", err: failure.ErrMissingField.WithMessage("All fields are required"), want: http.StatusBadRequest},
		{name: "not found", err: failure.ErrRoomNotFound, want: http.StatusNotFound},
		{name: "conflict", err: failure.ErrDuplicateRoomNumber, want: http.StatusBadRequest},
		{name: "storage", err: failure.Storage(errors.New("connection refused")), want: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("update: %w", failure.ErrBookingNotFound), want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.HTTPStatus(tt.err))
		})
	}
}

func TestFailure_IsMatchesByCode(t *testing.T) {
	err := failure.ErrMissingField.WithMessage("status is required")

	assert.ErrorIs(t, err, failure.ErrMissingField)
	assert.NotErrorIs(t, err, failure.ErrInvalidDateRange)
	assert.Equal(t, "status is required", err.Error())
}

func TestStorage_PassesRawMessageThrough(t *testing.T) {
	raw := errors.New("Error 1146: Table 'rooms' doesn't exist")
	err := failure.Storage(raw)

	assert.Equal(t, raw.Error(), err.Error())
	assert.ErrorIs(t, err, raw)
	assert.Equal(t, failure.KindStorage, failure.KindOf(err))
}

func TestStorage_KeepsExistingFailure(t *testing.T) {
	err := failure.Storage(failure.ErrDuplicateEmail)

	assert.Equal(t, failure.KindConflict, failure.KindOf(err))
	assert.Nil(t, failure.Storage(nil))
}

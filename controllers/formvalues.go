package controllers

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// The admin page posts form fields as JSON strings ("1", "12.50"), so ids
// and amounts accept either a JSON number or a numeric string.

type formID uint

func (id *formID) UnmarshalJSON(b []byte) error {
	raw, ok, err := formScalar(b)
	if err != nil || !ok {
		*id = 0
		return err
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a positive integer, got %q", raw)
	}
	*id = formID(n)
	return nil
}

func (id formID) value() uint {
	return uint(id)
}

// formAmount is an optional money value; Set is false when the field was
// absent, null or an empty string.
type formAmount struct {
	Value float64
	Set   bool
}

func (a *formAmount) UnmarshalJSON(b []byte) error {
	raw, ok, err := formScalar(b)
	if err != nil || !ok {
		*a = formAmount{}
		return err
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("amount must be a number, got %q", raw)
	}
	*a = formAmount{Value: f, Set: true}
	return nil
}

// ptr hands the amount to services that treat nil as "not supplied".
func (a formAmount) ptr() *float64 {
	if !a.Set {
		return nil
	}
	v := a.Value
	return &v
}

// formScalar unquotes b and reports whether it carried a value at all.
func formScalar(b []byte) (string, bool, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", false, nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(raw)
		if err != nil {
			return "", false, fmt.Errorf("invalid string value %s", raw)
		}
		raw = s
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != "", nil
}

package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinel errors for errors.Is() checking. Adapters map them onto transport
// statuses; the store and components only ever wrap them.
var (
	// ErrNotFound reports an unknown component, handler name or route.
	ErrNotFound = errors.New("not found")
	// ErrValidation reports an action or request the store refuses to reduce.
	ErrValidation = errors.New("validation error")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	// ErrUnavailable reports a closed store or live hub, or an unreachable shop.
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError carries one message per rejected field. Use
// errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// reach verr.Fields.
type ValidationError struct {
	Fields map[string]string
}

// Invalid returns a ValidationError rejecting a single field.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add records msg for field. The first message recorded for a field wins.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Err returns e when at least one field was rejected and nil otherwise, so
// callers can collect fields and return the result directly.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// FieldNames returns the rejected field names in sorted order.
func (e *ValidationError) FieldNames() []string {
	return slices.Sorted(maps.Keys(e.Fields))
}

// Error lists the fields in sorted order so the message is stable across calls.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	b.WriteString(": ")
	for i, field := range e.FieldNames() {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

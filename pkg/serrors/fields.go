package serrors

import (
	"errors"
	"sort"
	"strings"
)

// FieldError is a BAD_REQUEST error listing the problems found per input field.
type FieldError struct {
	Fields map[string][]string
}

// NewFieldError returns an empty FieldError; use Add to collect problems.
func NewFieldError() *FieldError {
	return &FieldError{Fields: map[string][]string{}}
}

// Add records a problem for the given field.
func (f *FieldError) Add(field, msg string) *FieldError {
	f.Fields[field] = append(f.Fields[field], msg)

	return f
}

// Empty reports whether no problem was recorded.
func (f *FieldError) Empty() bool { return len(f.Fields) == 0 }

// Err returns nil when no problem was recorded, otherwise a BAD_REQUEST error wrapping f.
func (f *FieldError) Err() error {
	if f.Empty() {
		return nil
	}

	return Wrap(ErrBadRequest, f, "invalid input")
}

func (f *FieldError) Error() string {
	keys := make([]string, 0, len(f.Fields))
	for k := range f.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(f.Fields[k], "; "))
	}

	return strings.Join(parts, ", ")
}

// Fields extracts the per-field problems carried by err, if any.
func Fields(err error) map[string][]string {
	var f *FieldError
	if errors.As(err, &f) {
		return f.Fields
	}

	return nil
}

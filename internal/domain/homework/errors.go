package homework

import "fmt"

// MissingFieldError reports a required key absent from the API payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing expected key %q in API response", e.Field)
}

// TypeMismatchError reports an API payload element of the wrong JSON shape.
type TypeMismatchError struct {
	Field string
	Want  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("API response key %q is not %s", e.Field, e.Want)
}

// UnknownStatusError reports a homework status outside the recognized set.
type UnknownStatusError struct {
	Status Status
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q in API response", string(e.Status))
}

// InvalidStatusError reports a record whose status cannot be rendered.
type InvalidStatusError struct {
	Status Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("empty or undocumented homework status %q", string(e.Status))
}

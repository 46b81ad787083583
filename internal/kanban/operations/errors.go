package operations

import (
	"errors"
	"fmt"
)

// ValidationError reports a missing or malformed field on a command
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// NotFoundError reports a command that references an absent task or column
type NotFoundError struct {
	Kind string // "task" or "column"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func taskNotFound(id string) error {
	return &NotFoundError{Kind: "task", ID: id}
}

func columnNotFound(id string) error {
	return &NotFoundError{Kind: "column", ID: id}
}

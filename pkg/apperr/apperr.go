// Package apperr defines the recoverable error kinds returned by the
// application core. No kind is fatal: every error is reported
// synchronously at the offending call and is safe to surface to the user.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed input to a create, edit or
// preference-set call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation: " + e.Reason
	}
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation that referenced an id not present
// in the registry.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

// PermissionError reports an operation attempted on an entity the
// current session does not own, or an operation that requires an active
// session. The view layer should never let these happen; the core
// enforces them regardless.
type PermissionError struct {
	Op     string
	Reason string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// InvalidViewError reports navigation to an unknown view token. It
// indicates a caller bug and is logged as well as returned.
type InvalidViewError struct {
	Token string
}

func (e *InvalidViewError) Error() string {
	return fmt.Sprintf("invalid view token %q", e.Token)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var v *NotFoundError
	return errors.As(err, &v)
}

func IsPermission(err error) bool {
	var v *PermissionError
	return errors.As(err, &v)
}

func IsInvalidView(err error) bool {
	var v *InvalidViewError
	return errors.As(err, &v)
}

// Kind returns a short stable label for an error, suitable for metrics
// and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return "none"
	case IsValidation(err):
		return "validation"
	case IsNotFound(err):
		return "not_found"
	case IsPermission(err):
		return "permission"
	case IsInvalidView(err):
		return "invalid_view"
	default:
		return "internal"
	}
}
